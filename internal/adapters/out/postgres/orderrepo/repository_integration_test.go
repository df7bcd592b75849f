package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"orders/internal/adapters/out/postgres/orderrepo"
	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// OrderRepositoryIntegrationTestSuite provides integration tests for OrderRepository
// using PostgreSQL containers to verify database persistence behavior.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.ItemDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders, order_items CASCADE").Error)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_ValidOrder_AssignsID() {
	ctx := context.Background()

	testOrder := suite.createTestOrder("customer-1")

	persisted, err := suite.repository.Add(ctx, testOrder)
	suite.Require().NoError(err)

	suite.Positive(persisted.ID())
	suite.Equal("customer-1", persisted.CustomerID())
	suite.Equal(order.Pending, persisted.Status())
	suite.Len(persisted.Items(), 2)
	suite.assertOrderCount(1)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_InvalidOrder_ReturnsError() {
	ctx := context.Background()

	_, err := suite.repository.Add(ctx, &order.Order{})

	suite.Require().Error(err)
	suite.ErrorIs(err, order.ErrOrderIsNotConstructed)
	suite.assertOrderCount(0)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_ExistingOrder_ReturnsAggregateWithLines() {
	ctx := context.Background()

	persisted, err := suite.repository.Add(ctx, suite.createTestOrder("customer-2"))
	suite.Require().NoError(err)

	found, err := suite.repository.Get(ctx, persisted.ID())
	suite.Require().NoError(err)

	suite.Equal(persisted.ID(), found.ID())
	suite.Equal("customer-2", found.CustomerID())
	suite.Equal(order.Pending, found.Status())
	suite.Require().Len(found.Items(), 2)
	suite.Equal("SKU-100", found.Items()[0].SKU())
	suite.True(found.Total().Equal(decimal.RequireFromString("64.97")))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_MissingOrder_ReturnsNotFound() {
	ctx := context.Background()

	found, err := suite.repository.Get(ctx, 424242)

	suite.Require().Error(err)
	suite.Nil(found)
	suite.ErrorIs(err, errs.ErrObjectNotFound)

	var notFound *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFound)
	suite.Equal("ORDER_NOT_FOUND", notFound.Code)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_ExistingOrder_PersistsStatusChange() {
	ctx := context.Background()

	persisted, err := suite.repository.Add(ctx, suite.createTestOrder("customer-3"))
	suite.Require().NoError(err)

	suite.Require().NoError(persisted.Cancel())
	suite.Require().NoError(suite.repository.Update(ctx, persisted))

	found, err := suite.repository.Get(ctx, persisted.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Canceled, found.Status())
	suite.False(found.UpdatedAt().Before(found.CreatedAt()))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_MissingOrder_ReturnsNotFound() {
	ctx := context.Background()

	ghost, err := order.RestoreOrder(
		999999, "customer-x", order.Pending, time.Now().UTC(), time.Now().UTC(),
		[]order.Item{suite.mustItem("SKU-1", "Widget", 1, "9.99")})
	suite.Require().NoError(err)

	err = suite.repository.Update(ctx, ghost)

	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllInPendingStatus_ReturnsOnlyPending() {
	ctx := context.Background()

	first, err := suite.repository.Add(ctx, suite.createTestOrder("customer-4"))
	suite.Require().NoError(err)
	_, err = suite.repository.Add(ctx, suite.createTestOrder("customer-4"))
	suite.Require().NoError(err)

	suite.Require().NoError(first.Cancel())
	suite.Require().NoError(suite.repository.Update(ctx, first))

	pending, err := suite.repository.GetAllInPendingStatus(ctx)
	suite.Require().NoError(err)

	suite.Require().Len(pending, 1)
	suite.Equal(order.Pending, pending[0].Status())
	suite.NotEqual(first.ID(), pending[0].ID())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdateAll_PersistsEveryAggregate() {
	ctx := context.Background()

	first, err := suite.repository.Add(ctx, suite.createTestOrder("customer-5"))
	suite.Require().NoError(err)
	second, err := suite.repository.Add(ctx, suite.createTestOrder("customer-5"))
	suite.Require().NoError(err)

	suite.Require().NoError(first.Promote())
	suite.Require().NoError(second.Promote())

	suite.Require().NoError(suite.repository.UpdateAll(ctx, []*order.Order{first, second}))

	pending, err := suite.repository.GetAllInPendingStatus(ctx)
	suite.Require().NoError(err)
	suite.Empty(pending)
}

func (suite *OrderRepositoryIntegrationTestSuite) createTestOrder(customerID string) *order.Order {
	items := []order.Item{
		suite.mustItem("SKU-100", "Mechanical Keyboard", 1, "44.99"),
		suite.mustItem("SKU-200", "Mouse Pad", 2, "9.99"),
	}

	testOrder, err := order.NewOrder(customerID, items)
	suite.Require().NoError(err)

	return testOrder
}

func (suite *OrderRepositoryIntegrationTestSuite) mustItem(sku, name string, quantity int, price string) order.Item {
	item, err := order.NewItem(sku, name, quantity, decimal.RequireFromString(price))
	suite.Require().NoError(err)

	return item
}

func (suite *OrderRepositoryIntegrationTestSuite) assertOrderCount(expected int64) {
	var count int64
	suite.Require().NoError(suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error)
	suite.Equal(expected, count)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
