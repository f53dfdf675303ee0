package services

// Services is the application-layer service container for the dashboard context.
type Services struct {
	Dashboard *DashboardService
}

// New wires the dashboard over the task, transaction and inventory services.
func New(tasks TaskSource, finance FinanceSource, stock StockSource) *Services {
	return &Services{Dashboard: NewDashboardService(tasks, finance, stock)}
}
