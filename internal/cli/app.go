package cli

import (
	"context"
	"errors"
	"fmt"
	"log"

	"startlabx/internal/adapter/persistence/cache"
	"startlabx/internal/adapter/persistence/repository"
	"startlabx/internal/adapter/persistence/sqlite"
	"startlabx/internal/config"
	"startlabx/internal/infrastructure/database"
	"startlabx/internal/infrastructure/notifications"
	"startlabx/internal/usecase"
	"startlabx/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

type repositories struct {
	offers        interfaces.IEquityOfferRepository
	capTable      interfaces.ICapTableRepository
	startups      interfaces.IStartupRepository
	notifications interfaces.INotificationRepository
}

// app is the wired service graph shared by the commands.
type app struct {
	cfg        config.Config
	dispatcher *notifications.Dispatcher

	offers        *usecase.EquityOfferUseCase
	capTable      *usecase.CapTableUseCase
	calculator    *usecase.CalculatorUseCase
	startups      *usecase.StartupUseCase
	notifications *usecase.NotificationUseCase

	closers []func(context.Context) error
}

func buildApp(ctx context.Context, cfg config.Config) (*app, error) {
	a := &app{cfg: cfg}

	repos, err := a.openStorage(ctx)
	if err != nil {
		return nil, err
	}
	startups := cache.NewCachedStartupRepository(repos.startups, cfg.OwnershipCacheTTL)

	var publisher interfaces.INotificationPublisher
	if cfg.Redis.Addr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr, Password: cfg.Redis.Password, DB: cfg.Redis.DB})
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Printf("[app][cli] redis unavailable, live fan-out disabled addr=%s err=%v", cfg.Redis.Addr, err)
			_ = rdb.Close()
		} else {
			publisher = notifications.NewRedisPublisher(rdb)
			a.closers = append(a.closers, func(context.Context) error { return rdb.Close() })
		}
	}

	a.dispatcher = notifications.NewDispatcher(repos.notifications, publisher, cfg.NotificationBuffer)
	// The dispatcher drains before storage closes.
	a.closers = append([]func(context.Context) error{a.dispatcher.Close}, a.closers...)

	a.offers = usecase.NewEquityOfferUseCase(repos.offers, startups, a.dispatcher, cfg.OfferExpiryWindow)
	a.capTable = usecase.NewCapTableUseCase(repos.capTable, startups)
	a.calculator = usecase.NewCalculatorUseCase()
	a.startups = usecase.NewStartupUseCase(startups, repos.capTable)
	a.notifications = usecase.NewNotificationUseCase(repos.notifications)
	return a, nil
}

func (a *app) openStorage(ctx context.Context) (repositories, error) {
	switch a.cfg.StorageDriver {
	case config.StorageDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx, a.cfg.DynamoDB)
		if err != nil {
			return repositories{}, err
		}
		tables := repository.Tables{
			Offers:        a.cfg.DynamoDB.OffersTable,
			CapTable:      a.cfg.DynamoDB.CapTableTable,
			Allocations:   a.cfg.DynamoDB.AllocationsTable,
			Startups:      a.cfg.DynamoDB.StartupsTable,
			Notifications: a.cfg.DynamoDB.NotificationsTable,
		}
		log.Printf("[app][cli] storage ready driver=dynamodb region=%s", a.cfg.DynamoDB.Region)
		return repositories{
			offers:        repository.NewEquityOfferDynamoRepository(ddb, tables),
			capTable:      repository.NewCapTableDynamoRepository(ddb, tables),
			startups:      repository.NewStartupDynamoRepository(ddb, tables),
			notifications: repository.NewNotificationDynamoRepository(ddb, tables),
		}, nil
	case config.StorageSQLite:
		store, err := sqlite.Open(a.cfg.SQLitePath)
		if err != nil {
			return repositories{}, err
		}
		a.closers = append(a.closers, func(context.Context) error { return store.Close() })
		log.Printf("[app][cli] storage ready driver=sqlite path=%s", a.cfg.SQLitePath)
		return repositories{
			offers:        sqlite.NewEquityOfferRepository(store),
			capTable:      sqlite.NewCapTableRepository(store),
			startups:      sqlite.NewStartupRepository(store),
			notifications: sqlite.NewNotificationRepository(store),
		}, nil
	default:
		return repositories{}, fmt.Errorf("unsupported storage driver %q", a.cfg.StorageDriver)
	}
}

// Close runs the closers in order and joins their errors.
func (a *app) Close(ctx context.Context) error {
	var errs []error
	for _, c := range a.closers {
		if err := c(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
