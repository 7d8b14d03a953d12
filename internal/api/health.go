package api

import (
	"net/http"
	"time"

	"github.com/jmoiron/sqlx"

	"jamii-hub/mtaani/internal/models/entities"
)

// HealthCheckHandler handles GET /healthCheck. db is nil when the
// server runs on the in-memory backend.
func HealthCheckHandler(db *sqlx.DB, upSince time.Time) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		services := make(map[string]entities.ServiceStatus)

		if db != nil {
			pgStatus := "ok"
			pgDetails := "Postgres Connected"
			if err := db.Ping(); err != nil {
				pgStatus = "down"
				pgDetails = err.Error()
			}
			services["postgres"] = entities.ServiceStatus{
				Status:  pgStatus,
				Details: pgDetails,
			}
		} else {
			services["store"] = entities.ServiceStatus{
				Status:  "ok",
				Details: "In-memory store",
			}
		}

		overallStatus := "ok"
		for _, svc := range services {
			if svc.Status != "ok" {
				overallStatus = "down"
				break
			}
		}

		uptime := time.Since(upSince).Round(time.Second).String()

		respondJSON(w, http.StatusOK, entities.HealthCheckResponse{
			Services: services,
			Status:   overallStatus,
			Uptime:   uptime,
		})
	}
}
