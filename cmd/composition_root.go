package cmd

import (
	"fmt"
	"log/slog"
	"time"

	"swiftdrop/internal/adapters/out/memstore"
	"swiftdrop/internal/adapters/out/postgres"
	"swiftdrop/internal/adapters/out/seed"
	"swiftdrop/internal/core/application/session"
	"swiftdrop/internal/core/application/usecases/commands"
	"swiftdrop/internal/core/application/usecases/queries"
	"swiftdrop/internal/core/domain/model/kernel"
	"swiftdrop/internal/core/domain/services"
	"swiftdrop/internal/core/ports"
	"swiftdrop/internal/jobs"

	"gorm.io/gorm"
)

const defaultStaleOrderTTL = 15 * time.Minute

type CompositionRoot struct {
	uowFactory    ports.UnitOfWorkFactory
	directory     *seed.Directory
	catalog       *seed.Catalog
	pricing       services.PricingService
	staleOrderTTL time.Duration
	logger        *slog.Logger
}

// NewCompositionRoot wires the application graph. When gormDB is nil the
// in-memory store backs the unit of work, which is the mode the seed-only
// deployment runs in.
func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) (CompositionRoot, error) {
	directory, err := seed.NewDirectory()
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("seed directory: %w", err)
	}
	catalog, err := seed.NewCatalog()
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("seed catalog: %w", err)
	}

	deliveryFee, err := kernel.MoneyFromString(config.DeliveryFee)
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("delivery fee: %w", err)
	}
	serviceFee, err := kernel.MoneyFromString(config.ServiceFee)
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("service fee: %w", err)
	}
	fees, err := services.NewFlatFeeSchedule(deliveryFee, serviceFee)
	if err != nil {
		return CompositionRoot{}, err
	}
	pricing, err := services.NewPricingService(fees)
	if err != nil {
		return CompositionRoot{}, err
	}

	staleOrderTTL := defaultStaleOrderTTL
	if config.StaleOrderTTL != "" {
		staleOrderTTL, err = time.ParseDuration(config.StaleOrderTTL)
		if err != nil {
			return CompositionRoot{}, fmt.Errorf("stale order ttl: %w", err)
		}
	}

	var uowFactory ports.UnitOfWorkFactory
	if gormDB != nil {
		uowFactory = postgres.NewGormUnitOfWorkFactory(gormDB)
	} else {
		uowFactory = memstore.NewUnitOfWorkFactory(memstore.NewStore())
	}

	return CompositionRoot{
		uowFactory:    uowFactory,
		directory:     directory,
		catalog:       catalog,
		pricing:       pricing,
		staleOrderTTL: staleOrderTTL,
		logger:        logger,
	}, nil
}

func (c *CompositionRoot) CreateCheckoutCommandHandler() commands.CheckoutCommandHandler {
	return commands.NewCheckoutCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateSendParcelCommandHandler() commands.SendParcelCommandHandler {
	return commands.NewSendParcelCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateTransitionOrderCommandHandler() commands.TransitionOrderCommandHandler {
	return commands.NewTransitionOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCancelStaleOrdersCommandHandler() commands.CancelStaleOrdersCommandHandler {
	return commands.NewCancelStaleOrdersCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.uowFactory.Create().OrderRepository())
}

// CreateSessionStore assembles the session facade the HTTP adapter serves.
func (c *CompositionRoot) CreateSessionStore() (*session.Store, error) {
	return session.NewStore(
		c.directory,
		c.catalog,
		c.pricing,
		c.CreateCheckoutCommandHandler(),
		c.CreateSendParcelCommandHandler(),
		c.CreateTransitionOrderCommandHandler(),
		c.CreateListOrdersQueryHandler(),
	)
}

// CreateJobManager assembles the background jobs. The stale order sweep acts
// as the seeded platform owner.
func (c *CompositionRoot) CreateJobManager() (*jobs.JobManager, error) {
	owner, err := seed.PlatformOwner()
	if err != nil {
		return nil, err
	}
	return jobs.NewJobManager(
		c.CreateCancelStaleOrdersCommandHandler(),
		c.staleOrderTTL,
		owner,
		c.logger,
	), nil
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
