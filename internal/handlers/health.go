package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/jeremyjsx/folio/internal/posts"
	amqp "github.com/rabbitmq/amqp091-go"
)

type HealthDeps struct {
	Source      posts.Source
	RabbitMQURL string
	// Dial defaults to amqp.Dial.
	Dial func(url string) (*amqp.Connection, error)
}

type healthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

func Health(deps *HealthDeps) http.HandlerFunc {
	dial := deps.Dial
	if dial == nil {
		dial = amqp.Dial
	}

	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		checks := map[string]string{}
		status := "healthy"

		if err := posts.Ping(ctx, deps.Source); err != nil {
			checks["posts"] = "unhealthy"
			status = "unhealthy"
		} else {
			checks["posts"] = "ok"
		}

		if deps.RabbitMQURL != "" {
			conn, err := dial(deps.RabbitMQURL)
			if err != nil {
				checks["rabbitmq"] = "unhealthy"
				if status == "healthy" {
					status = "degraded"
				}
			} else {
				_ = conn.Close()
				checks["rabbitmq"] = "ok"
			}
		} else {
			checks["rabbitmq"] = "skipped"
		}

		code := http.StatusOK
		if status == "unhealthy" {
			code = http.StatusServiceUnavailable
		}
		writeJSON(w, code, healthResponse{Status: status, Checks: checks})
	}
}
