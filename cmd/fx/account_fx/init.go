package account_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"qrfleet/internal/repositories"
	"qrfleet/internal/services"
)

var Module = fx.Provide(
	provideAccountService, provideAccountRepo)

func provideAccountRepo(db *gorm.DB) repositories.AccountRepository {
	return repositories.NewAccountRepository(db)
}

func provideAccountService(accountRepo repositories.AccountRepository, sessions services.SessionServiceInterface) services.AccountServiceInterface {
	return services.NewAccountService(accountRepo, sessions)
}
