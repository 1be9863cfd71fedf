package health

import (
	"net/http"

	"github.com/MonkyMars/gecho"
)

// GetOverallHealth is the load-balancer probe, it degrades to 503 when the
// database is unreachable. Cache state is reported but never fails the probe.
func (hrm *HealthRoutesManager) GetOverallHealth(w http.ResponseWriter, r *http.Request) {
	server := hrm.healthService.GetServerHealthStatus()

	db, dbErr := hrm.healthService.GetDatabaseHealthStatus()
	cache, cacheErr := hrm.healthService.GetCacheHealthStatus()

	data := map[string]any{
		"server":   server,
		"database": db,
		"cache":    cache,
	}

	if dbErr != nil {
		gecho.ServiceUnavailable(w,
			gecho.WithMessage("Database unreachable"),
			gecho.WithData(data),
			gecho.Send(),
		)
		return
	}
	if cacheErr != nil {
		data["cache"] = map[string]string{"status": "unreachable"}
	}

	gecho.Success(w,
		gecho.WithData(data),
		gecho.Send(),
	)
}

func (hrm *HealthRoutesManager) GetServerHealth(w http.ResponseWriter, r *http.Request) {
	healthStatus := hrm.healthService.GetServerHealthStatus()
	gecho.Success(w,
		gecho.WithData(healthStatus),
		gecho.Send(),
	)
}

func (hrm *HealthRoutesManager) GetDatabaseHealth(w http.ResponseWriter, r *http.Request) {
	dbHealthStatus, err := hrm.healthService.GetDatabaseHealthStatus()
	if err != nil {
		gecho.InternalServerError(w,
			gecho.WithMessage("Database health check failed"),
			gecho.Send(),
		)
		return
	}
	gecho.Success(w,
		gecho.WithData(dbHealthStatus),
		gecho.Send(),
	)
}

func (hrm *HealthRoutesManager) GetCacheHealth(w http.ResponseWriter, r *http.Request) {
	cacheHealthStatus, err := hrm.healthService.GetCacheHealthStatus()
	if err != nil {
		gecho.InternalServerError(w,
			gecho.WithMessage("Cache health check failed"),
			gecho.Send(),
		)
		return
	}
	gecho.Success(w,
		gecho.WithData(cacheHealthStatus),
		gecho.Send(),
	)
}
