package http

import (
	"context"
	"net/http"
	"time"

	"github.com/tasknest/tasknest/pkg/httpx"
	"github.com/tasknest/tasknest/pkg/taskapi"
)

// pinger is the health-check slice of the store.
type pinger interface {
	Ping(ctx context.Context) error
}

// PingHandler reports liveness and confirms the database answers.
//
//	@Summary	Health check
//	@Tags		System
//	@Produce	json
//	@Success	200	{object}	taskapi.PingResponse
//	@Failure	503	{object}	taskapi.ErrorResponse	"Database unreachable"
//	@Router		/ping [get].
func PingHandler(db pinger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := db.Ping(ctx); err != nil {
			httpx.WriteError(w, http.StatusServiceUnavailable, "database unreachable")
			return
		}
		httpx.WriteJSON(w, http.StatusOK, taskapi.PingResponse{Status: "ok"})
	})
}
