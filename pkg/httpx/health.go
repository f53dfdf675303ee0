package httpx

import (
	"context"
	"net/http"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

const healthTimeout = 2 * time.Second

// HealthChecker is anything the health endpoint can ping: the database pool,
// Redis, the event bus and the document store all qualify.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// Probe names one dependency reported by the health endpoint.
type Probe struct {
	Name    string
	Checker HealthChecker
}

// HealthResponse is the body served by HealthHandler.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
} // @name HealthResponse

// HealthHandler pings every probe in parallel and answers 503 with status
// "degraded" when any of them fails. A probe with a nil Checker is reported
// as "disabled".
func HealthHandler(probes ...Probe) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
		defer cancel()

		resp := HealthResponse{Status: "ok", Checks: make(map[string]string, len(probes))}
		var mu sync.Mutex
		var g errgroup.Group
		for _, p := range probes {
			if p.Checker == nil {
				resp.Checks[p.Name] = "disabled"
				continue
			}
			g.Go(func() error {
				state := "ok"
				if err := p.Checker.Ping(ctx); err != nil {
					state = "unreachable"
				}
				mu.Lock()
				defer mu.Unlock()
				resp.Checks[p.Name] = state
				if state != "ok" {
					resp.Status = "degraded"
				}
				return nil
			})
		}
		_ = g.Wait()

		status := http.StatusOK
		if resp.Status != "ok" {
			status = http.StatusServiceUnavailable
		}
		JSON(w, status, resp)
	}
}
