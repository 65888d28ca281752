package cmd

import (
	"time"

	"mealorder/internal/adapters/out/geo"
	"mealorder/internal/adapters/out/memlock"
	"mealorder/internal/adapters/out/postgres"
	"mealorder/internal/adapters/out/postgres/coderepo"
	"mealorder/internal/adapters/out/postgres/orderrepo"
	"mealorder/internal/adapters/out/postgres/userrepo"
	"mealorder/internal/adapters/out/redislock"
	"mealorder/internal/core/application/usecases/commands"
	"mealorder/internal/core/application/usecases/queries"
	"mealorder/internal/core/domain/model/kernel"
	"mealorder/internal/core/domain/services"
	"mealorder/internal/core/ports"

	goredis "github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const geoClientTimeout = 10 * time.Second

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	lockStore  ports.LockStore
	clock      kernel.Clock
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) CompositionRoot {
	var lockStore ports.LockStore = memlock.NewLockStore()
	if config.RedisAddr != "" {
		lockStore = redislock.NewLockStore(goredis.NewClient(&goredis.Options{
			Addr: config.RedisAddr,
		}))
	}

	var location *time.Location
	if config.TimeZone != "" {
		if loc, err := time.LoadLocation(config.TimeZone); err == nil {
			location = loc
		}
	}

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		lockStore:  lockStore,
		clock:      kernel.NewSystemClock(location),
	}
}

func (c *CompositionRoot) Clock() kernel.Clock {
	return c.clock
}

func (c *CompositionRoot) CreateProcessMessageCommandHandler(config Config) commands.ProcessMessageCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	conversation := services.NewConversation(geo.NewClient(config.GeoServiceURL, geoClientTimeout), c.clock)
	return commands.NewProcessMessageCommandHandler(f, conversation)
}

func (c *CompositionRoot) CreateAcquireOrderCommandHandler() commands.AcquireOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAcquireOrderCommandHandler(f, c.lockStore)
}

func (c *CompositionRoot) CreateCompleteOrderCommandHandler() commands.CompleteOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCompleteOrderCommandHandler(f, c.lockStore)
}

func (c *CompositionRoot) CreateResetOrderCommandHandler() commands.ResetOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewResetOrderCommandHandler(f, c.lockStore)
}

func (c *CompositionRoot) CreateReleaseOrderLockCommandHandler() commands.ReleaseOrderLockCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewReleaseOrderLockCommandHandler(f, c.lockStore)
}

func (c *CompositionRoot) CreatePurgeIdleDraftsCommandHandler() commands.PurgeIdleDraftsCommandHandler {
	var f commands.DraftUoWFactory = FuncDraftUoWFactory(func() commands.DraftUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPurgeIdleDraftsCommandHandler(f)
}

func (c *CompositionRoot) CreateCountAvailableOrdersQueryHandler() queries.CountAvailableOrdersQueryHandler {
	return queries.NewCountAvailableOrdersQueryHandler(c.gormDB, c.lockStore)
}

func (c *CompositionRoot) CreateGetDailyQuotaQueryHandler() queries.GetDailyQuotaQueryHandler {
	return queries.NewGetDailyQuotaQueryHandler(
		userrepo.NewGormUserRepository(c.gormDB),
		orderrepo.NewGormOrderRepository(c.gormDB, noopTracker{}),
		coderepo.NewGormActivationCodeRepository(c.gormDB),
		c.clock,
	)
}

// noopTracker satisfies the repository's aggregate tracking outside a unit
// of work; read paths have nothing to track.
type noopTracker struct{}

func (noopTracker) TrackAggregate(kernel.ID, any) {}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncDraftUoWFactory func() commands.DraftUoW

func (f FuncDraftUoWFactory) Create() commands.DraftUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
