package http

import (
	"net/http"

	"github.com/tasknest/tasknest/internal/domain"
	"github.com/tasknest/tasknest/pkg/httpx"
	"github.com/tasknest/tasknest/pkg/slogx"
)

// writeDomainError is the single translation point from domain error kinds
// to HTTP statuses. Anything without a kind is an internal failure: logged
// with detail server-side, opaque to the client.
func writeDomainError(w http.ResponseWriter, r *http.Request, err error) {
	switch domain.KindOf(err) {
	case domain.KindValidation:
		httpx.WriteError(w, http.StatusBadRequest, err.Error())
	case domain.KindConflict:
		httpx.WriteError(w, http.StatusConflict, err.Error())
	case domain.KindAuth, domain.KindInvalidOTP, domain.KindUnauthenticated:
		httpx.WriteError(w, http.StatusUnauthorized, err.Error())
	case domain.KindForbidden:
		httpx.WriteError(w, http.StatusForbidden, err.Error())
	case domain.KindNotFound:
		httpx.WriteError(w, http.StatusNotFound, err.Error())
	default:
		slogx.FromContext(r.Context()).Error("request failed", "method", r.Method, "path", r.URL.Path, "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "internal server error")
	}
}

func writeInvalidBody(w http.ResponseWriter) {
	httpx.WriteError(w, http.StatusBadRequest, "invalid JSON body")
}
