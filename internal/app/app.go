package app

import (
	"fmt"
	"os"
	"time"
	_ "time/tzdata"

	"github.com/asaskevich/EventBus"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/upgradeats/upgradeats/config"
	"github.com/upgradeats/upgradeats/internal/backoffice"
	"github.com/upgradeats/upgradeats/internal/gateway"
)

type Application struct {
	appConfig *config.AppConfig
	gormDB    *gorm.DB
	sched     *cron.Cron
	bus       EventBus.Bus
	gw        gateway.Gateway
	console   *backoffice.Console
}

// Ensure Application implements all interfaces
var (
	_ DBProvider      = (*Application)(nil)
	_ ConfigProvider  = (*Application)(nil)
	_ GatewayProvider = (*Application)(nil)
	_ AppContext      = (*Application)(nil)
)

func NewApplication(appConfig *config.AppConfig) *Application {
	return &Application{appConfig: appConfig}
}

func (a *Application) Config() *config.AppConfig {
	return a.appConfig
}

func (a *Application) DB() *gorm.DB {
	return a.gormDB
}

// OverrideDB replaces the application's database handle (used in tests).
func (a *Application) OverrideDB(db *gorm.DB) {
	a.gormDB = db
	a.gw = gateway.NewStore(db)
}

func (a *Application) Gateway() gateway.Gateway {
	return a.gw
}

func (a *Application) Console() *backoffice.Console {
	return a.console
}

func (a *Application) Bus() EventBus.Bus {
	return a.bus
}

func (a *Application) Scheduler() *cron.Cron {
	return a.sched
}

func (a *Application) Init(cfg *config.AppConfig) {
	loc, err := time.LoadLocation(cfg.System.Location)
	if err != nil {
		zap.S().Error("timezone config error")
	} else {
		time.Local = loc
	}

	// Initialize zap logger
	var zapConfig zap.Config
	if cfg.Logger.Mode == "production" {
		zapConfig = zap.NewProductionConfig()
	} else {
		zapConfig = zap.NewDevelopmentConfig()
	}

	zapConfig.OutputPaths = []string{"stdout"}
	if cfg.Logger.FileEnable {
		zapConfig.OutputPaths = append(zapConfig.OutputPaths, cfg.Logger.Filename)
	}

	// Build logger with file rotation if enabled
	var logger *zap.Logger
	if cfg.Logger.FileEnable {
		lumberJackLogger := &lumberjack.Logger{
			Filename:   cfg.Logger.Filename,
			MaxSize:    64,
			MaxBackups: 7,
			MaxAge:     7,
			Compress:   false,
		}

		core := zapcore.NewTee(
			zapcore.NewCore(
				zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
				zapcore.AddSync(lumberJackLogger),
				zapConfig.Level,
			),
			zapcore.NewCore(
				zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
				zapcore.AddSync(os.Stdout),
				zapConfig.Level,
			),
		)
		logger = zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1))
	} else {
		logger, err = zapConfig.Build(zap.AddCaller(), zap.AddCallerSkip(1))
		if err != nil {
			panic(err)
		}
	}

	zap.ReplaceGlobals(logger)

	a.gormDB = a.connectDatabase(cfg)
	a.gw = gateway.NewStore(a.gormDB)
	a.bus = EventBus.New()
	a.console = backoffice.NewConsole(a.gw, a.bus)

	if err := a.MigrateDB(); err != nil {
		zap.L().Error("migrate database error", zap.Error(err))
	}
	a.InitDb()
	a.initJob()
}

func (a *Application) connectDatabase(cfg *config.AppConfig) *gorm.DB {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=disable TimeZone=%s",
		cfg.Database.Host, cfg.Database.User, cfg.Database.Passwd,
		cfg.Database.Name, cfg.Database.Port, cfg.System.Location)

	logLevel := gormlogger.Warn
	if cfg.System.Debug {
		logLevel = gormlogger.Info
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(logLevel),
	})
	if err != nil {
		zap.S().Panicf("connect database error: %s", err.Error())
	}

	sqlDB, err := db.DB()
	if err == nil {
		sqlDB.SetMaxOpenConns(cfg.Database.MaxConn)
		sqlDB.SetMaxIdleConns(cfg.Database.IdleConn)
		sqlDB.SetConnMaxLifetime(time.Hour)
	}
	return db
}

// Stop shuts down the scheduler; the HTTP server is stopped by main.
func (a *Application) Stop() {
	if a.sched != nil {
		a.sched.Stop()
	}
	_ = zap.L().Sync()
}
