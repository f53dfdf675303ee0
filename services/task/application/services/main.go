package services

import (
	"github.com/ghuser/bizzy/pkg/app"
	"github.com/ghuser/bizzy/services/task/infrastructure/persistence/postgres"
)

// Services is the application-layer service container for the task context.
type Services struct {
	Task *TaskService
}

// New wires the task services with infrastructure from the Application container.
func New(a *app.Application) *Services {
	return &Services{
		Task: NewTaskService(postgres.NewTaskRepository(a.Db)),
	}
}
