package services

import (
	"github.com/ghuser/bizzy/pkg/app"
	"github.com/ghuser/bizzy/services/account/infrastructure/persistence/postgres"
)

// Services is the application-layer service container for the account context.
type Services struct {
	Account *AccountService
}

// New wires the account services with infrastructure from the Application container.
func New(a *app.Application) *Services {
	return &Services{
		Account: NewAccountService(postgres.NewAccountRepository(a.Db)),
	}
}
