package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"backoffice/internal/adapters/out/postgres/orderrepo"
	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/order"
	"backoffice/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

var placedAt = time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

// OrderRepositoryIntegrationTestSuite runs the repository against a real PostgreSQL container.
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

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.OrderLogDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders, order_logs").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_ValidOrder_Success() {
	ctx := context.Background()
	testOrder := suite.createShippingOrder()
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()

	err := suite.repository.Add(ctx, testOrder)

	suite.Require().NoError(err)
	suite.assertCount(&orderrepo.OrderDTO{}, 1)
	suite.assertCount(&orderrepo.OrderLogDTO{}, 1)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_NotConstructedOrder_ReturnsError() {
	err := suite.repository.Add(context.Background(), &order.Order{})

	suite.Require().ErrorIs(err, order.ErrOrderIsNotConstructed)
	suite.assertCount(&orderrepo.OrderDTO{}, 0)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_ExistingOrder_ReturnsOrder() {
	ctx := context.Background()
	original := suite.createShippingOrder()
	suite.tracker.On("TrackAggregate", original.ID(), original).Once()
	suite.Require().NoError(suite.repository.Add(ctx, original))

	retrieved, err := suite.repository.Get(ctx, original.ID())

	suite.Require().NoError(err)
	suite.True(retrieved.ID().IsEqual(original.ID()))
	suite.True(retrieved.UserID().IsEqual(original.UserID()))
	suite.Equal(order.Pending, retrieved.Status())
	suite.Equal(order.Shipping, retrieved.ShippingMethod())
	suite.Equal(int64(150000), retrieved.TotalAmount())
	suite.True(placedAt.Equal(retrieved.CreatedAt()))

	suite.Require().Len(retrieved.Items(), 1)
	suite.Equal("Rice 5kg", retrieved.Items()[0].Name())
	suite.Equal(2, retrieved.Items()[0].Quantity())

	suite.Require().NotNil(retrieved.ShippingAddress())
	suite.Equal("Bandung", retrieved.ShippingAddress().City)
	suite.Require().NotNil(retrieved.ShippingAddress().Lat)
	suite.InDelta(-6.9, *retrieved.ShippingAddress().Lat, 0.0001)

	logs := retrieved.Logs()
	suite.Require().Len(logs, 1)
	suite.Equal(order.Pending, logs[0].Status())
	suite.Nil(logs[0].By())
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_PickupOrderWithoutAddress() {
	ctx := context.Background()
	original := suite.createPickupOrder()
	suite.tracker.On("TrackAggregate", original.ID(), original).Once()
	suite.Require().NoError(suite.repository.Add(ctx, original))

	retrieved, err := suite.repository.Get(ctx, original.ID())

	suite.Require().NoError(err)
	suite.Equal(order.Pickup, retrieved.ShippingMethod())
	suite.Nil(retrieved.ShippingAddress())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NonExistentOrder_ReturnsNotFoundError() {
	retrieved, err := suite.repository.Get(context.Background(), kernel.NewUUID())

	suite.Nil(retrieved)
	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_AppendsHistory() {
	ctx := context.Background()
	testOrder := suite.createPickupOrder()
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Times(3)
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	staffID := kernel.NewUUID()
	suite.Require().NoError(testOrder.ChangeStatus(
		order.Processing, "Payment received via manual transfer", &staffID, placedAt.Add(time.Hour),
	))
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	suite.Require().NoError(testOrder.ChangeStatus(order.ReadyForPickup, "", &staffID, placedAt.Add(2*time.Hour)))
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	retrieved, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.ReadyForPickup, retrieved.Status())
	suite.True(placedAt.Add(2 * time.Hour).Equal(retrieved.UpdatedAt()))

	logs := retrieved.Logs()
	suite.Require().Len(logs, 3)
	suite.Equal(order.Pending, logs[0].Status())
	suite.Equal(order.Processing, logs[1].Status())
	suite.Equal("Payment received via manual transfer", logs[1].Note())
	suite.Require().NotNil(logs[1].By())
	suite.True(logs[1].By().IsEqual(staffID))
	suite.Equal(order.ReadyForPickup, logs[2].Status())
	suite.assertCount(&orderrepo.OrderLogDTO{}, 3)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_Twice_DoesNotDuplicateHistory() {
	ctx := context.Background()
	testOrder := suite.createPickupOrder()
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Times(3)
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))
	suite.Require().NoError(testOrder.ChangeStatus(order.Cancelled, "", nil, placedAt.Add(time.Minute)))

	suite.Require().NoError(suite.repository.Update(ctx, testOrder))
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	suite.assertCount(&orderrepo.OrderLogDTO{}, 2)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_NonExistentOrder_ReturnsNotFoundError() {
	err := suite.repository.Update(context.Background(), suite.createPickupOrder())

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	suite.assertCount(&orderrepo.OrderLogDTO{}, 0)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_StaleCopy_ReturnsTransitionNotAllowed() {
	ctx := context.Background()
	testOrder := suite.createPickupOrder()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	first, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	second, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	suite.Require().NoError(first.ChangeStatus(order.Processing, "", nil, placedAt.Add(time.Hour)))
	suite.Require().NoError(suite.repository.Update(ctx, first))

	suite.Require().NoError(second.ChangeStatus(order.Cancelled, "", nil, placedAt.Add(time.Hour)))
	err = suite.repository.Update(ctx, second)

	suite.Require().ErrorIs(err, errs.ErrTransitionIsNotAllowed)
	retrieved, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Processing, retrieved.Status())
	suite.Len(retrieved.Logs(), 2)
	suite.assertCount(&orderrepo.OrderLogDTO{}, 2)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_StaleCopyBehindSeveralChanges_ReturnsTransitionNotAllowed() {
	ctx := context.Background()
	testOrder := suite.createPickupOrder()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	stale, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	suite.Require().NoError(testOrder.ChangeStatus(order.Processing, "", nil, placedAt.Add(time.Hour)))
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))
	suite.Require().NoError(testOrder.ChangeStatus(order.ReadyForPickup, "", nil, placedAt.Add(2*time.Hour)))
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	suite.Require().NoError(stale.ChangeStatus(order.Cancelled, "", nil, placedAt.Add(3*time.Hour)))
	err = suite.repository.Update(ctx, stale)

	suite.Require().ErrorIs(err, errs.ErrTransitionIsNotAllowed)
	retrieved, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.ReadyForPickup, retrieved.Status())
	suite.Len(retrieved.Logs(), 3)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_InconsistentRow_ReturnsError() {
	ctx := context.Background()
	testOrder := suite.createPickupOrder()
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	suite.Require().NoError(suite.db.Exec(
		"UPDATE orders SET status = ? WHERE id = ?", "shipped", testOrder.ID().Bytes(),
	).Error)

	_, err := suite.repository.Get(ctx, testOrder.ID())

	suite.Require().ErrorIs(err, order.ErrLogIsInconsistent)
}

func (suite *OrderRepositoryIntegrationTestSuite) newItem() order.Item {
	item, err := order.NewItem("prod-1", "SKU-RICE-5", "Rice 5kg", 75000, 2, "sack")
	suite.Require().NoError(err)
	return item
}

func (suite *OrderRepositoryIntegrationTestSuite) createShippingOrder() *order.Order {
	lat, lon := -6.9, 107.6
	address := &order.Address{
		Street: "Jl. Merdeka 1",
		City:   "Bandung",
		Phone:  "0812000000",
		Lat:    &lat,
		Lon:    &lon,
	}
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), []order.Item{suite.newItem()}, order.Shipping, address, placedAt)
	suite.Require().NoError(err)
	return o
}

func (suite *OrderRepositoryIntegrationTestSuite) createPickupOrder() *order.Order {
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), []order.Item{suite.newItem()}, order.Pickup, nil, placedAt)
	suite.Require().NoError(err)
	return o
}

func (suite *OrderRepositoryIntegrationTestSuite) assertCount(model any, expected int64) {
	var count int64
	suite.Require().NoError(suite.db.Model(model).Count(&count).Error)
	suite.Equal(expected, count)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	testcontainers.SkipIfProviderIsNotHealthy(t)
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
