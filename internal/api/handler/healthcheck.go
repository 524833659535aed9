package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthcheckHandler responde 503 quando o banco não responde
func HealthcheckHandler(db Pinger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{
			"time":     time.Now().Format(time.RFC3339),
			"database": "ok",
		}
		code := http.StatusOK

		if db != nil {
			ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
			defer cancel()

			if err := db.Ping(ctx); err != nil {
				logrus.WithError(err).Warn("healthcheck: banco de dados indisponível")
				status["database"] = "indisponível"
				code = http.StatusServiceUnavailable
			}
		}

		writeJSON(w, r, code, status)
	})
}
