package services

import (
	"github.com/ghuser/bizzy/pkg/app"
	"github.com/ghuser/bizzy/pkg/business"
	inventorysvcs "github.com/ghuser/bizzy/services/inventory/application/services"
	"github.com/ghuser/bizzy/services/transaction/infrastructure/persistence/postgres"
)

// Services is the application-layer service container for the transaction context.
type Services struct {
	Transaction *TransactionService
}

// New wires the transaction services. Sales adjust stock through inventory.
func New(a *app.Application, sectors business.SectorLookup, inventory *inventorysvcs.InventoryService) *Services {
	repo := postgres.NewTransactionRepository(a.Db)
	return &Services{
		Transaction: NewTransactionService(repo, sectors, inventoryAdapter{svc: inventory}, a.Logger),
	}
}
