package session_fx

import (
	"go.uber.org/fx"

	"qrfleet/internal/repositories"
	"qrfleet/internal/services"
)

var Module = fx.Provide(
	provideSessionService)

func provideSessionService(accountRepo repositories.AccountRepository) services.SessionServiceInterface {
	return services.NewSessionService(accountRepo)
}
