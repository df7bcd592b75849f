package commands

import (
	"errors"

	"orders/internal/pkg/guard"
)

var ErrPromotePendingOrdersCommandIsNotConstructed = errors.New(
	"PromotePendingOrdersCommand must be created via NewPromotePendingOrdersCommand constructor",
)

// PromotePendingOrdersCommand requests the bulk transition of every PENDING
// order to PROCESSING. It is a parameterless command issued by the promotion
// job on each tick; it is exposed as a regular command for testability.
type PromotePendingOrdersCommand struct {
	guard guard.ConstructorGuard
}

// NewPromotePendingOrdersCommand creates the promotion command.
func NewPromotePendingOrdersCommand() PromotePendingOrdersCommand {
	return PromotePendingOrdersCommand{guard: guard.NewConstructorGuard()}
}

// Validate ensures the command was created through the constructor.
func (c PromotePendingOrdersCommand) Validate() error {
	return c.guard.Validate(ErrPromotePendingOrdersCommandIsNotConstructed)
}
