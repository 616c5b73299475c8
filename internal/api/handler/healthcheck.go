package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

// HealthCheck verifica uma dependência; o nome aparece na resposta
type HealthCheck struct {
	Name  string
	Check func(ctx context.Context) error
}

func HealthcheckHandler(checks ...HealthCheck) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		status := http.StatusOK
		response := map[string]any{
			"status": "ok",
			"time":   time.Now().Format(time.RFC3339),
		}

		for _, check := range checks {
			if err := check.Check(ctx); err != nil {
				logrus.WithError(err).WithField("check", check.Name).Warn("healthcheck: dependência indisponível")
				status = http.StatusServiceUnavailable
				response["status"] = "degraded"
				response[check.Name] = err.Error()
				continue
			}
			response[check.Name] = "ok"
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logrus.WithError(err).Warn("error responding to healthcheck")
		}
	})
}
