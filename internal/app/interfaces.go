package app

import (
	"github.com/asaskevich/EventBus"
	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	"github.com/upgradeats/upgradeats/config"
	"github.com/upgradeats/upgradeats/internal/backoffice"
	"github.com/upgradeats/upgradeats/internal/gateway"
)

// DBProvider provides database access
type DBProvider interface {
	DB() *gorm.DB
}

// ConfigProvider provides application configuration
type ConfigProvider interface {
	Config() *config.AppConfig
}

// GatewayProvider provides the data gateway
type GatewayProvider interface {
	Gateway() gateway.Gateway
}

// SchedulerProvider provides task scheduling capability
type SchedulerProvider interface {
	Scheduler() *cron.Cron
}

// AppContext combines all provider interfaces for full application context.
// Services should depend on specific providers or this combined interface.
type AppContext interface {
	DBProvider
	ConfigProvider
	GatewayProvider
	SchedulerProvider

	Console() *backoffice.Console
	Bus() EventBus.Bus

	// Application lifecycle methods
	MigrateDB() error
	InitDb()
	Stop()
}
