package http

import (
	"net/http"
	"time"

	"github.com/aussiebroadwan/yup/internal/rsvp/store"
	"github.com/aussiebroadwan/yup/pkg/httpx"
	"github.com/aussiebroadwan/yup/pkg/jwtx"
	"github.com/aussiebroadwan/yup/pkg/yupsdk"
)

// LivezHandler godoc
//
//	@Summary		Liveness probe
//	@Description	Returns 200 while the process is running, with uptime and build version.
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	yupsdk.HealthResponse	"status, uptime, version"
//	@Router			/livez [get]
func LivezHandler(startTime time.Time, version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, yupsdk.HealthResponse{
			Status:  "ok",
			Uptime:  time.Since(startTime).String(),
			Version: version,
		})
	}
}

// ReadyzHandler godoc
//
//	@Summary		Readiness probe
//	@Description	Checks the database and the session signing key.
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	yupsdk.HealthResponse	"status, uptime, version, checks"
//	@Failure		503	{object}	yupsdk.HealthResponse	"status, uptime, version, checks - service not ready"
//	@Router			/readyz [get]
func ReadyzHandler(startTime time.Time, version string, st store.Store, keys *jwtx.KeyManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		checks := map[string]string{
			"database": "ok",
			"signer":   "ok",
		}
		status := "ok"
		code := http.StatusOK

		if err := st.Ping(r.Context()); err != nil {
			checks["database"] = "error: " + err.Error()
			status = "degraded"
			code = http.StatusServiceUnavailable
		}

		if keys == nil || !keys.IsReady() {
			checks["signer"] = "error: no keys loaded"
			status = "degraded"
			code = http.StatusServiceUnavailable
		}

		httpx.WriteJSON(w, code, yupsdk.HealthResponse{
			Status:  status,
			Uptime:  time.Since(startTime).String(),
			Version: version,
			Checks:  checks,
		})
	}
}
