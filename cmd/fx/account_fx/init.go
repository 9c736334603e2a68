package account_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"yatra/internal/infra"
	"yatra/internal/repositories"
	"yatra/internal/services"
)

var Module = fx.Provide(
	provideAccountService, provideAccountRepo)

func provideAccountRepo(db *gorm.DB) repositories.AccountRepository {
	return repositories.NewAccountRepository(db)
}

func provideAccountService(accountRepo repositories.AccountRepository, cfg infra.AppConfig) services.AccountServiceInterface {
	return services.NewAccountService(accountRepo, []byte(cfg.JWTSecret))
}
