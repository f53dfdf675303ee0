package services

import (
	"strings"

	"github.com/ghuser/bizzy/pkg/app"
	"github.com/ghuser/bizzy/services/notification/infrastructure/persistence/postgres"
	"github.com/ghuser/bizzy/services/notification/infrastructure/realtime"
)

// Services is the application-layer service container for the notification context.
type Services struct {
	Notification *NotificationService
	// Hub serves the realtime stream; the API process runs its Redis relay.
	Hub *realtime.Hub
}

// New wires the notification services. Notifications are pushed over Redis
// when a.Redis is set.
func New(a *app.Application) *Services {
	var pub Publisher
	if a.Redis != nil {
		pub = realtime.NewPublisher(a.Redis)
	}
	origins := strings.Split(a.Config.CORSAllowedOrigins, ",")
	for i := range origins {
		origins[i] = strings.TrimSpace(origins[i])
	}
	return &Services{
		Notification: NewNotificationService(postgres.NewNotificationRepository(a.Db), pub, a.Logger),
		Hub:          realtime.NewHub(origins, a.Logger),
	}
}
