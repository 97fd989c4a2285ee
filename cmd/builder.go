package cmd

import (
	"fmt"
	"net/http"
	"time"

	"userdir/api"
	"userdir/api/health"
	apiuser "userdir/api/user"
	userapp "userdir/application/user"
	"userdir/config"
	userdomain "userdir/domain/user"
	"userdir/infrastructure/persistence/memory"
	"userdir/infrastructure/persistence/mysql"
	"userdir/pkg/logger"
	"userdir/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// AppBuilder builds an App with customizable components
type AppBuilder struct {
	cfg      *config.Config
	userRepo userdomain.Repository
	registry *prometheus.Registry
	clock    func() time.Time
}

// NewBuilder creates a new AppBuilder
func NewBuilder(cfg *config.Config) *AppBuilder {
	return &AppBuilder{
		cfg:   cfg,
		clock: time.Now,
	}
}

// WithRepository skips storage setup and uses repo instead
func (b *AppBuilder) WithRepository(repo userdomain.Repository) *AppBuilder {
	b.userRepo = repo
	return b
}

// WithRegistry registers metrics on reg instead of the default registry
func (b *AppBuilder) WithRegistry(reg *prometheus.Registry) *AppBuilder {
	b.registry = reg
	return b
}

// WithClock sets the source of "today" for birth date rules
func (b *AppBuilder) WithClock(clock func() time.Time) *AppBuilder {
	b.clock = clock
	return b
}

// Build creates the App instance
func (b *AppBuilder) Build() (*App, error) {
	logger.Info("Starting application",
		zap.String("app", b.cfg.App.Name),
		zap.String("version", b.cfg.App.Version),
		zap.String("env", b.cfg.App.Env),
		zap.String("storage", b.cfg.Database.Type))

	var db *gorm.DB
	userRepo := b.userRepo
	if userRepo == nil {
		var err error
		db, userRepo, err = b.initStorage()
		if err != nil {
			return nil, err
		}
	}

	var (
		registerer prometheus.Registerer = prometheus.DefaultRegisterer
		gatherer   prometheus.Gatherer   = prometheus.DefaultGatherer
	)
	if b.registry != nil {
		registerer, gatherer = b.registry, b.registry
	}
	m := metrics.New(registerer)

	validators := userapp.NewValidators(b.cfg.Validation.MinAge, b.clock)
	userService := userapp.NewApplicationService(userRepo, validators, m)

	var pinger health.Pinger
	if db != nil {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
		}
		pinger = sqlDB
	}

	router := api.NewRouter(
		b.cfg,
		health.NewController(b.cfg, pinger),
		apiuser.NewController(userService),
		promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}),
	)
	router.SetupRoutes()

	server := &http.Server{
		Addr:         ":" + b.cfg.Server.Port,
		Handler:      router.GetEngine(),
		ReadTimeout:  b.cfg.Server.ReadTimeout,
		WriteTimeout: b.cfg.Server.WriteTimeout,
	}

	return &App{
		config: b.cfg,
		router: router,
		server: server,
		db:     db,
	}, nil
}

func (b *AppBuilder) initStorage() (*gorm.DB, userdomain.Repository, error) {
	if b.cfg.Database.Type != config.DatabaseMySQL {
		logger.Info("Using in-memory persistence layer")
		return nil, memory.NewUserRepository(), nil
	}

	logger.Info("Using MySQL/GORM persistence layer")

	db, err := mysql.NewConfig(&b.cfg.Database).Connect()
	if err != nil {
		return nil, nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		return nil, nil, fmt.Errorf("failed to ping MySQL: %w", err)
	}

	logger.Info("Connected to MySQL successfully")

	// Auto migration in development environment
	if b.cfg.IsDevelopment() {
		if err := mysql.AutoMigrate(db); err != nil {
			return nil, nil, err
		}
	}

	return db, mysql.NewUserRepository(db), nil
}
