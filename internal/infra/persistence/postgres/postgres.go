package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"sync"
	"time"

	"vidshare/config"
	domainerrors "vidshare/internal/domain/errors"
	"vidshare/internal/domain/lifecycle"
	"vidshare/internal/errors"
	"vidshare/internal/infra/persistence/migrations"

	"github.com/pressly/goose/v3"
	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

const (
	dbPoolMonitorInterval       = 5 * time.Second
	dbPoolWarnDurationThreshold = 50 * time.Millisecond

	connectKey = "postgres"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

type openFunc func(ctx context.Context) (*gorm.DB, error)

// Connector owns the process-wide connection pool. The pool is opened by the first caller;
// concurrent first callers share that attempt, and a failed attempt is not remembered.
type Connector struct {
	logger    *slog.Logger
	open      openFunc
	opTimeout time.Duration

	group singleflight.Group

	mu            sync.RWMutex
	db            *gorm.DB
	cancelMonitor context.CancelFunc
}

// NewConnector creates the connector and registers migrations and shutdown with the lifecycle.
func NewConnector(params Params) *Connector {
	c := newConnector(params.Logger, params.Config.Storage.OperationTimeout, nil)
	c.open = c.openPostgres(params.Config)

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			if !params.Config.Storage.AutoMigrate {
				return nil
			}

			return c.Migrate(startCtx)
		},
		OnStop: func(_ context.Context) error {
			return c.Close()
		},
	})

	return c
}

func newConnector(logger *slog.Logger, opTimeout time.Duration, open openFunc) *Connector {
	return &Connector{
		logger:    logger,
		open:      open,
		opTimeout: opTimeout,
	}
}

// DB returns the shared handle, connecting on first use. Callers stop waiting when ctx ends,
// but the connection attempt itself keeps running for the other waiters.
func (c *Connector) DB(ctx context.Context) (*gorm.DB, error) {
	if db := c.cached(); db != nil {
		return db, nil
	}

	resultCh := c.group.DoChan(connectKey, func() (any, error) {
		if db := c.cached(); db != nil {
			return db, nil
		}

		db, err := c.open(context.WithoutCancel(ctx))
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		c.db = db
		c.mu.Unlock()

		return db, nil
	})

	select {
	case <-ctx.Done():
		return nil, errors.Wrap(domainerrors.ErrStorageUnavailable, ctx.Err().Error())
	case res := <-resultCh:
		if res.Err != nil {
			c.logger.Error("Failed to connect to PostgreSQL", slog.Any("error", res.Err))

			return nil, errors.Wrap(domainerrors.ErrStorageUnavailable, res.Err.Error())
		}

		return res.Val.(*gorm.DB), nil
	}
}

// WithTimeout bounds a single storage operation.
func (c *Connector) WithTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.opTimeout <= 0 {
		return context.WithCancel(ctx)
	}

	return context.WithTimeout(ctx, c.opTimeout)
}

// Migrate applies the embedded schema with goose.
func (c *Connector) Migrate(ctx context.Context) error {
	db, err := c.DB(ctx)
	if err != nil {
		return err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return errors.Wrap(err, "goose dialect")
	}
	if err := goose.UpContext(ctx, sqlDB, "."); err != nil {
		return errors.Wrap(err, "apply migrations")
	}
	c.logger.Info("Database migrations applied")

	return nil
}

// Close releases the pool if it was ever opened.
func (c *Connector) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cancelMonitor != nil {
		c.cancelMonitor()
		c.cancelMonitor = nil
	}
	if c.db == nil {
		return nil
	}

	sqlDB, err := c.db.DB()
	c.db = nil
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(sqlDB.Close())
}

func (c *Connector) cached() *gorm.DB {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.db
}

func (c *Connector) openPostgres(cfg *config.Config) openFunc {
	return func(ctx context.Context) (*gorm.DB, error) {
		if cfg.Postgres == nil {
			return nil, errors.New("postgres configuration is missing")
		}

		db, err := pgLib.New(cfg.Postgres)
		if err != nil {
			return nil, errors.Wrap(err, "failed to create PostgreSQL client")
		}
		// Surface unique violations as gorm.ErrDuplicatedKey.
		db.Config.TranslateError = true
		db = db.Session(&gorm.Session{
			// Every write is a single statement, so GORM's implicit transaction is not needed.
			SkipDefaultTransaction: true,
			Logger:                 newGormSlogLogger(c.logger, cfg),
		})

		sqlDB, err := db.DB()
		if err != nil {
			return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
		}
		sqlDB.SetMaxOpenConns(cfg.Storage.MaxPoolSize)
		sqlDB.SetMaxIdleConns(cfg.Storage.MaxPoolSize)

		pingCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
		defer cancel()

		if err := sqlDB.PingContext(pingCtx); err != nil {
			_ = sqlDB.Close()

			return nil, errors.Wrap(err, "failed to ping PostgreSQL")
		}

		monitorCtx, cancelMonitor := context.WithCancel(context.Background())
		c.mu.Lock()
		c.cancelMonitor = cancelMonitor
		c.mu.Unlock()
		go monitorDBPool(monitorCtx, c.logger, sqlDB, dbPoolMonitorInterval)

		c.logger.Info("Connected to PostgreSQL", slog.Int("maxPoolSize", cfg.Storage.MaxPoolSize))

		return db, nil
	}
}

func monitorDBPool(ctx context.Context, logger *slog.Logger, sqlDB *sql.DB, interval time.Duration) {
	if logger == nil || sqlDB == nil {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	prev := sqlDB.Stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cur := sqlDB.Stats()
			waitDelta := cur.WaitCount - prev.WaitCount
			waitDurationDelta := cur.WaitDuration - prev.WaitDuration

			if waitDelta > 0 {
				attrs := []slog.Attr{
					slog.Int64("waitCountDelta", waitDelta),
					slog.Duration("waitDurationDelta", waitDurationDelta),
					slog.Duration("avgWait", waitDurationDelta/time.Duration(waitDelta)),
					slog.Int("maxOpenConns", cur.MaxOpenConnections),
					slog.Int("inUseConns", cur.InUse),
					slog.Int64("waitCountTotal", cur.WaitCount),
				}
				if waitDurationDelta >= dbPoolWarnDurationThreshold {
					logger.LogAttrs(ctx, slog.LevelWarn, "Postgres pool wait detected", attrs...)
				} else {
					logger.LogAttrs(ctx, slog.LevelDebug, "Postgres pool wait observed", attrs...)
				}
			}

			prev = cur
		}
	}
}
