package cmd

import (
	"log/slog"

	"bakery/internal/adapters/out/kafka"
	"bakery/internal/adapters/out/notify"
	"bakery/internal/adapters/out/postgres"
	"bakery/internal/core/application/usecases/commands"
	"bakery/internal/core/application/usecases/queries"
	"bakery/internal/core/domain/services"
	"bakery/internal/core/ports"
	"bakery/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config Config
	store  *postgres.GormStore
	logger *slog.Logger

	notifier ports.Notifier
	closers  []func() error
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) *CompositionRoot {
	root := &CompositionRoot{
		config: config,
		store:  postgres.NewGormStore(gormDB),
		logger: logger,
	}
	root.notifier = root.createNotifier()
	return root
}

// createNotifier picks Kafka when a broker is configured, a log-only
// notifier otherwise.
func (c *CompositionRoot) createNotifier() ports.Notifier {
	if c.config.KafkaHost == "" || c.config.KafkaOrderEventsTopic == "" {
		return notify.NewSlogNotifier(c.logger)
	}

	notifier := kafka.NewNotifier(c.config.KafkaHost, c.config.KafkaOrderEventsTopic)
	c.closers = append(c.closers, notifier.Close)
	return notifier
}

func (c *CompositionRoot) CreateTransitionOrderCommandHandler() commands.TransitionOrderCommandHandler {
	return commands.NewTransitionOrderCommandHandler(
		c.store.OrderRepository(),
		c.store.HistoryRepository(),
		c.notifier,
		services.NewOrderStateMachine(),
		c.logger,
	)
}

func (c *CompositionRoot) CreateProcessOrderTimeoutsCommandHandler() commands.ProcessOrderTimeoutsCommandHandler {
	executor := c.CreateTransitionOrderCommandHandler()
	return commands.NewProcessOrderTimeoutsCommandHandler(
		c.store.OrderRepository(),
		executor,
		c.logger,
	)
}

func (c *CompositionRoot) CreateGetAvailableTransitionsQueryHandler() queries.GetAvailableTransitionsQueryHandler {
	return queries.NewGetAvailableTransitionsQueryHandler(
		c.store.OrderRepository(),
		services.NewOrderStateMachine(),
	)
}

func (c *CompositionRoot) CreateGetOrderHistoryQueryHandler() queries.GetOrderHistoryQueryHandler {
	return queries.NewGetOrderHistoryQueryHandler(c.store.DB())
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateProcessOrderTimeoutsCommandHandler(), c.logger)
}

// Migrate creates or updates the database schema.
func (c *CompositionRoot) Migrate() error {
	return c.store.Migrate()
}

// Close releases adapter resources, the Kafka writer in particular.
func (c *CompositionRoot) Close() error {
	var firstErr error
	for _, close := range c.closers {
		if err := close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
