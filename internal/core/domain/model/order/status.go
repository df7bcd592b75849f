package order

import (
	"fmt"

	"orders/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure orders
// follow the correct business workflow.
//
// State transitions exposed by this service:
//
//	Pending ──┬──> Processing   (promotion job, batched)
//	          └──> Canceled     (explicit cancel request)
//
// Shipped exists as a value because the store may contain orders shipped by
// an external fulfillment system, but no operation here transitions into it.
// Canceled is terminal.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status assigned at creation. Pending orders
	// are eligible for promotion and are the only orders that can be
	// canceled.
	Pending

	// Processing indicates the order has been picked up by the promotion
	// job and is being fulfilled.
	Processing

	// Shipped indicates the order left fulfillment. It is written by an
	// external subsystem; nothing in this service produces it.
	Shipped

	// Canceled indicates the order was canceled while still Pending.
	// This is a final state with no further transitions allowed.
	Canceled
)

// getStatusStrings returns a map of Status values to their wire names.
// Names are uppercase because they double as the persisted representation.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "UNKNOWN",
		Pending:    "PENDING",
		Processing: "PROCESSING",
		Shipped:    "SHIPPED",
		Canceled:   "CANCELED",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation and parsing.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:    "PENDING",
		Processing: "PROCESSING",
		Shipped:    "SHIPPED",
		Canceled:   "CANCELED",
	}
}

// ParseStatus converts a wire name (e.g. "PENDING") back into a Status.
// Returns an error for names that do not match a valid status.
func ParseStatus(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a valid status", s),
	)
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Pending, Processing, Shipped, Canceled.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%d is not a valid status", s),
		)
	}
	return nil
}

// String returns the wire name of the status ("PENDING", "PROCESSING",
// "SHIPPED", "CANCELED") or "UNKNOWN" for invalid values.
// It implements fmt.Stringer and is safe on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// Promote transitions the status to Processing.
//
// Valid transitions:
//   - Pending -> Processing
//
// Any other current status is rejected. The promotion job reads only
// Pending orders, so in practice this guard is a consistency check.
func (s Status) Promote() (Status, error) {
	if s != Pending {
		return 0, errs.NewBusinessRuleErrorWithCause(
			"ORDER_NOT_PENDING",
			"only PENDING orders can be promoted",
			fmt.Errorf("current status is %s", s),
		)
	}

	return Processing, nil
}

// Cancel transitions the status to Canceled.
//
// Valid transitions:
//   - Pending -> Canceled
//
// Cancellation from any other status is a business-rule violation, not a
// not-found condition; the order stays in its current state.
func (s Status) Cancel() (Status, error) {
	if s != Pending {
		return 0, errs.NewBusinessRuleErrorWithCause(
			"ORDER_NOT_PENDING",
			"cannot cancel order unless it is in PENDING",
			fmt.Errorf("current status is %s", s),
		)
	}

	return Canceled, nil
}
