package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"grocery/internal/adapters/out/postgres/migrations"
	"grocery/internal/adapters/out/postgres/orderrepo"
	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/core/domain/model/order"
	"grocery/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of the aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(aggregate any) {
	m.Called(aggregate)
}

// OrderRepositoryIntegrationTestSuite provides integration tests for OrderRepository
// using PostgreSQL containers to verify database persistence behavior.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
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

	sqlDB, err := db.DB()
	suite.Require().NoError(err)
	suite.Require().NoError(migrations.Up(sqlDB))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE order_lines, orders").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_Get_RoundTrip() {
	ctx := context.Background()

	placed := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", placed).Once()

	suite.Require().NoError(suite.repository.Add(ctx, placed))

	retrieved, err := suite.repository.Get(ctx, placed.Number())
	suite.Require().NoError(err)

	suite.True(placed.Number().IsEqual(retrieved.Number()))
	suite.Equal(placed.Vendor().Name(), retrieved.Vendor().Name())
	suite.Equal(order.Processing, retrieved.Status())
	suite.Equal(placed.Subtotal(), retrieved.Subtotal())
	suite.Equal(placed.Total(), retrieved.Total())
	suite.Equal(placed.Version(), retrieved.Version())

	suite.Require().Len(retrieved.Lines(), len(placed.Lines()))
	for i, original := range placed.Lines() {
		suite.Equal(original.ProductID(), retrieved.Lines()[i].ProductID())
		suite.Equal(original.Quantity(), retrieved.Lines()[i].Quantity())
	}

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NonExistentOrder_ReturnsNotFoundError() {
	ctx := context.Background()

	retrieved, err := suite.repository.Get(ctx, kernel.NewRandomOrderNumber())

	suite.Nil(retrieved)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_AdvancesLifecycle() {
	ctx := context.Background()

	placed := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", mock.Anything)

	suite.Require().NoError(suite.repository.Add(ctx, placed))

	advanced, err := placed.Advance(time.Now())
	suite.Require().NoError(err)
	suite.True(advanced)

	suite.Require().NoError(suite.repository.Update(ctx, placed))

	retrieved, err := suite.repository.Get(ctx, placed.Number())
	suite.Require().NoError(err)

	suite.Equal(order.Preparing, retrieved.Status())
	suite.Equal(placed.Version()+1, retrieved.Version())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_StaleVersion_ReturnsConflict() {
	ctx := context.Background()

	placed := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", mock.Anything)

	suite.Require().NoError(suite.repository.Add(ctx, placed))

	_, err := placed.Advance(time.Now())
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Update(ctx, placed))

	// The in-memory aggregate still carries the version it was placed with,
	// so a second write loses the race against the first.
	err = suite.repository.Update(ctx, placed)
	suite.Require().ErrorIs(err, orderrepo.ErrConcurrentModification)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllUndelivered_SkipsDeliveredOrders() {
	ctx := context.Background()

	inFlight := suite.createTestOrder()
	delivered := suite.createDeliveredOrder(false)
	suite.tracker.On("TrackAggregate", mock.Anything)

	suite.Require().NoError(suite.repository.Add(ctx, inFlight))
	suite.Require().NoError(suite.repository.Add(ctx, delivered))

	undelivered, err := suite.repository.GetAllUndelivered(ctx)
	suite.Require().NoError(err)

	suite.Require().Len(undelivered, 1)
	suite.True(inFlight.Number().IsEqual(undelivered[0].Number()))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllDeliveredUnprompted_SkipsPromptedOrders() {
	ctx := context.Background()

	unprompted := suite.createDeliveredOrder(false)
	prompted := suite.createDeliveredOrder(true)
	suite.tracker.On("TrackAggregate", mock.Anything)

	suite.Require().NoError(suite.repository.Add(ctx, unprompted))
	suite.Require().NoError(suite.repository.Add(ctx, prompted))

	pending, err := suite.repository.GetAllDeliveredUnprompted(ctx)
	suite.Require().NoError(err)

	suite.Require().Len(pending, 1)
	suite.True(unprompted.Number().IsEqual(pending[0].Number()))
}

// createTestOrder places an order with two line items.
func (suite *OrderRepositoryIntegrationTestSuite) createTestOrder() *order.Order {
	vendorRef, err := order.NewVendorRef(kernel.NewUUID(), "Fresh Market", "123 Main St, Anytown")
	suite.Require().NoError(err)

	milkPrice, err := kernel.MoneyFromCents(299)
	suite.Require().NoError(err)
	milk, err := order.NewLine(kernel.NewUUID(), "Whole Milk", milkPrice, 2)
	suite.Require().NoError(err)

	eggsPrice, err := kernel.MoneyFromCents(499)
	suite.Require().NoError(err)
	eggs, err := order.NewLine(kernel.NewUUID(), "Free Range Eggs", eggsPrice, 1)
	suite.Require().NoError(err)

	quote, err := kernel.NewDeliveryQuote("42 Maple Dr, Anytown", 5.0)
	suite.Require().NoError(err)

	placed, err := order.NewOrder(kernel.NewRandomOrderNumber(), vendorRef, []order.Line{milk, eggs}, quote, time.Now())
	suite.Require().NoError(err)

	return placed
}

// createDeliveredOrder walks a fresh order through the lifecycle to Delivered,
// optionally marking it as prompted for verification.
func (suite *OrderRepositoryIntegrationTestSuite) createDeliveredOrder(prompted bool) *order.Order {
	placed := suite.createTestOrder()

	for {
		advanced, err := placed.Advance(time.Now())
		suite.Require().NoError(err)
		if !advanced {
			break
		}
	}

	if prompted {
		marked, err := placed.MarkAwaitingVerification()
		suite.Require().NoError(err)
		suite.True(marked)
	}

	return placed
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
