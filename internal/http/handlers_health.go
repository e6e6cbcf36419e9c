package httpx

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"
)

const healthProbeTimeout = 2 * time.Second

// HealthProbe reports whether a backing dependency (the session store) is usable.
type HealthProbe func(ctx context.Context) error

type healthStatus struct {
	Status string `json:"status"`
}

// healthHandler answers liveness checks. With a probe, a failing dependency turns the answer into 503.
func healthHandler(probe HealthProbe, logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status, code := healthStatus{Status: "ok"}, http.StatusOK
		if probe != nil {
			ctx, cancel := context.WithTimeout(r.Context(), healthProbeTimeout)
			err := probe(ctx)
			cancel()
			if err != nil {
				logger.WarnContext(r.Context(), "health probe failed", "error", err)
				status, code = healthStatus{Status: "unavailable"}, http.StatusServiceUnavailable
			}
		}
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Cache-Control", "no-store")
		w.WriteHeader(code)
		if r.Method == http.MethodHead {
			return
		}
		// Nothing more to do if the client connection is gone.
		_ = json.NewEncoder(w).Encode(status)
	}
}
