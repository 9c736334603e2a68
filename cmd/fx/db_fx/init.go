package db_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"yatra/internal/infra"
)

var Module = fx.Provide(
	provideDB)

func provideDB(cfg infra.AppConfig) *gorm.DB {
	return infra.InitDatabase(cfg)
}
