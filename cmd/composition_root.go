package cmd

import (
	"fmt"
	"log/slog"

	httpin "serviceordering/internal/adapters/in/http"
	"serviceordering/internal/adapters/out/memstore"
	"serviceordering/internal/adapters/out/postgres"
	"serviceordering/internal/adapters/out/postgres/listenerrepo"
	"serviceordering/internal/adapters/out/postgres/orderrepo"
	"serviceordering/internal/adapters/out/webhook"
	"serviceordering/internal/core/application/usecases/commands"
	"serviceordering/internal/core/application/usecases/queries"
	"serviceordering/internal/core/ports"
	"serviceordering/internal/jobs"
)

// CompositionRoot wires adapters into use case handlers. All handlers share
// the same repositories and the single notification publisher, so every
// instance observes the same store and the hub sees one ordered event stream.
type CompositionRoot struct {
	config    Config
	orders    ports.OrderRepository
	listeners ports.ListenerRepository
	publisher *webhook.Publisher
	logger    *slog.Logger
}

// NewCompositionRoot builds the object graph for the configured store driver.
func NewCompositionRoot(config Config, logger *slog.Logger) (*CompositionRoot, error) {
	var (
		orders    ports.OrderRepository
		listeners ports.ListenerRepository
	)

	switch config.StoreDriver {
	case StoreDriverPostgres:
		dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			config.DBHost, config.DBPort, config.DBUser, config.DBPassword, config.DBName, config.DBSslMode)

		db, err := postgres.Open(dsn)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to postgres: %w", err)
		}
		if err = postgres.Migrate(db); err != nil {
			return nil, fmt.Errorf("failed to migrate database: %w", err)
		}

		orders = orderrepo.NewGormOrderRepository(db)
		listeners = listenerrepo.NewGormListenerRepository(db)
	case StoreDriverMemory, "":
		store := memstore.NewStore()
		orders = store.Orders()
		listeners = store.Listeners()
	default:
		return nil, fmt.Errorf("unknown store driver %q", config.StoreDriver)
	}

	timeout := config.DeliveryTimeout
	if timeout <= 0 {
		timeout = webhook.DefaultDeliveryTimeout
	}

	return &CompositionRoot{
		config:    config,
		orders:    orders,
		listeners: listeners,
		publisher: webhook.NewPublisher(listeners, timeout, logger),
		logger:    logger,
	}, nil
}

// Close stops the notification publisher after draining queued events.
func (c *CompositionRoot) Close() {
	c.publisher.Close()
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orders, c.publisher, c.config.OrderBasePath)
}

func (c *CompositionRoot) CreatePatchOrderCommandHandler() commands.PatchOrderCommandHandler {
	return commands.NewPatchOrderCommandHandler(c.orders, c.publisher)
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	return commands.NewDeleteOrderCommandHandler(c.orders, c.publisher)
}

func (c *CompositionRoot) CreateRegisterListenerCommandHandler() commands.RegisterListenerCommandHandler {
	return commands.NewRegisterListenerCommandHandler(c.listeners, c.config.HubBasePath)
}

func (c *CompositionRoot) CreateUnregisterListenerCommandHandler() commands.UnregisterListenerCommandHandler {
	return commands.NewUnregisterListenerCommandHandler(c.listeners)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.orders)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.orders)
}

// CreateHTTPServer assembles the HTTP adapter over all use case handlers.
func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(
		c.CreateCreateOrderCommandHandler(),
		c.CreatePatchOrderCommandHandler(),
		c.CreateDeleteOrderCommandHandler(),
		c.CreateRegisterListenerCommandHandler(),
		c.CreateUnregisterListenerCommandHandler(),
		c.CreateGetOrderQueryHandler(),
		c.CreateListOrdersQueryHandler(),
	)
}

// CreateJobManager assembles the background job manager.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.orders, c.listeners, c.config.StoreStatsSchedule, c.logger)
}
