// Package app wires the process: it owns the single catalog, session,
// ledger and stores, and hands them to the transport and the CLI.
package app

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"google.golang.org/grpc"

	"github.com/Madhavee/PizzaOrderingSystem/internal/checkout"
	"github.com/Madhavee/PizzaOrderingSystem/internal/config"
	"github.com/Madhavee/PizzaOrderingSystem/internal/favorites"
	"github.com/Madhavee/PizzaOrderingSystem/internal/order"
	"github.com/Madhavee/PizzaOrderingSystem/internal/pizzeria"
	"github.com/Madhavee/PizzaOrderingSystem/internal/product"
	"github.com/Madhavee/PizzaOrderingSystem/internal/promotion"
	"github.com/Madhavee/PizzaOrderingSystem/internal/session"
	"github.com/Madhavee/PizzaOrderingSystem/internal/storage"
	"github.com/Madhavee/PizzaOrderingSystem/internal/tracking"
	"github.com/Madhavee/PizzaOrderingSystem/internal/transport"
)

// Name identifies the service in logs.
const Name = "pizzeria"

// App holds the process-wide instances.
type App struct {
	Config    config.Config
	Logger    *zap.Logger
	Menu      product.Menu
	Catalog   *promotion.Catalog
	Session   *session.Session
	Favorites *favorites.Book
	Checkout  *checkout.Service
	Tracker   *tracking.Tracker

	closers []func() error
}

// NewLogger builds a production zap logger at the given level.
func NewLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	return cfg.Build()
}

// New builds every component from cfg. Call Close when done.
func New(cfg config.Config, logger *zap.Logger) (*App, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	menu, err := cfg.Menu.ProductMenu()
	if err != nil {
		return nil, err
	}
	a := &App{Config: cfg, Logger: logger, Menu: menu}

	promoStore, favStore, err := a.openStores()
	if err != nil {
		a.Close()
		return nil, err
	}

	a.Catalog = promotion.NewCatalog(promoStore, promotion.WithLogger(logger.Named("promotions")))
	a.Catalog.AddListener(newCatalogLogger(logger.Named("promotions")))
	a.Session = session.New(cfg.Loyalty.StartingPoints)
	a.Favorites = favorites.NewBook(favStore, logger.Named("favorites"))
	a.Tracker = tracking.NewTracker(cfg.Tracking.Interval, logger.Named("tracking"))

	observers := []order.Observer{tracking.NewLogObserver(logger.Named("orders"))}
	if cfg.NATS.URL != "" {
		pub, err := tracking.NewNATSPublisher(cfg.NATS.URL)
		if err != nil {
			a.Close()
			return nil, err
		}
		a.closers = append(a.closers, pub.Close)
		observers = append(observers, tracking.NewNATSObserver(pub, cfg.NATS.Subject, logger.Named("nats")))
		logger.Info("publishing order status events", zap.String("subject", cfg.NATS.Subject))
	}

	a.Checkout = checkout.NewService(checkout.Deps{
		Auth:       a.Session,
		Chain:      product.DefaultChain(logger.Named("validation")),
		Promotions: a.Catalog,
		Ledger:     a.Session.Ledger(),
		Favorites:  a.Favorites,
		Observers:  observers,
		Logger:     logger.Named("checkout"),
	})
	return a, nil
}

func (a *App) openStores() (promotion.Store, storage.Store[favorites.Favorite], error) {
	s := a.Config.Storage
	switch s.Driver {
	case config.DriverMemory:
		return storage.NewMemoryStore[promotion.Promotion](), storage.NewMemoryStore[favorites.Favorite](), nil
	case config.DriverFile:
		return storage.NewFileStore[promotion.Promotion](filepath.Join(s.Dir, "promotions.yaml")),
			storage.NewFileStore[favorites.Favorite](filepath.Join(s.Dir, "favorites.json")),
			nil
	case config.DriverSQLite:
		db, err := storage.OpenSQLite(s.Path)
		if err != nil {
			return nil, nil, err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, nil, fmt.Errorf("sqlite handle: %w", err)
		}
		a.closers = append(a.closers, sqlDB.Close)
		return storage.NewSQLStore[promotion.Promotion](db, "promotions"),
			storage.NewSQLStore[favorites.Favorite](db, "favorites"),
			nil
	}
	return nil, nil, fmt.Errorf("unknown storage driver %q", s.Driver)
}

// Register attaches the gRPC services.
func (a *App) Register(s *grpc.Server) {
	transport.Register(s, a.Catalog, a.Session.Ledger(), a.Logger.Named("grpc"))
}

// Serve runs the gRPC server until ctx is cancelled.
func (a *App) Serve(ctx context.Context) error {
	return pizzeria.RunServer(ctx, pizzeria.ServerConfig{Name: Name, Port: a.Config.Port}, a.Logger, a.Register)
}

// Close releases connections in reverse order of opening.
func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}

type catalogLogger struct {
	logger *zap.Logger
}

func newCatalogLogger(logger *zap.Logger) *catalogLogger {
	return &catalogLogger{logger: logger}
}

func (c *catalogLogger) Notify(change promotion.Change) {
	c.logger.Info("promotion catalog changed",
		zap.String("change", change.Kind.String()),
		zap.String("code", change.Promotion.Code),
		zap.Bool("active", change.Promotion.Active),
	)
}
