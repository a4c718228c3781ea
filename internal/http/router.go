package http

import (
	"log/slog"
	"net/http"

	"github.com/tasknest/tasknest/internal/service"
	"github.com/tasknest/tasknest/internal/store"
	"github.com/tasknest/tasknest/pkg/httpx"
	"github.com/tasknest/tasknest/pkg/jwtx"
	"github.com/tasknest/tasknest/pkg/slogx"

	_ "github.com/tasknest/tasknest/api" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	verifier *jwtx.Verifier
	logger   *slog.Logger
	store    store.Store

	AuthService  *service.AuthService
	TaskService  *service.TaskService
	AdminService *service.AdminService
}

func NewRouter(verifier *jwtx.Verifier, st store.Store, logger *slog.Logger) *Router {
	r := &Router{
		Mux:      http.NewServeMux(),
		verifier: verifier,
		store:    st,
		logger:   logger,
	}

	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerMFA()
	r.registerTasks()
	r.registerAdmin()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Task Tracker API
//	@version		0.1.0
//	@description	Nested task tracking with JWT sessions and an optional TOTP
//	@description	second factor at login. Tokens are EdDSA-signed and ephemeral:
//	@description	a restart invalidates everything outstanding.
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAuth() {
	h := &AuthHandler{AuthService: r.AuthService}

	// Credential endpoints take the strict limit keyed by IP to slow down
	// enumeration and brute force.
	r.Mux.Handle("POST /register",
		httpx.Chain(http.HandlerFunc(h.HandleRegister),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
	r.Mux.Handle("POST /login",
		httpx.Chain(http.HandlerFunc(h.HandleLogin),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerMFA() {
	h := &MFAHandler{AuthService: r.AuthService, Verifier: r.verifier}

	// Pending-token verification happens inside the handlers; the session
	// authn middleware would reject these callers by design.
	r.Mux.Handle("POST /auth/mfa/setup",
		httpx.Chain(http.HandlerFunc(h.HandleSetup),
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)

	// OTP checks are strictly limited to blunt code brute force.
	r.Mux.Handle("POST /auth/mfa/verify",
		httpx.Chain(http.HandlerFunc(h.HandleVerifySetup),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
	r.Mux.Handle("POST /auth/mfa/login",
		httpx.Chain(http.HandlerFunc(h.HandleVerifyLogin),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerTasks() {
	h := &TasksHandler{TaskService: r.TaskService}

	r.Mux.Handle("GET /todos",
		httpx.Chain(http.HandlerFunc(h.HandleList),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("POST /todos",
		httpx.Chain(http.HandlerFunc(h.HandleCreate),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("PUT /todos/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleUpdate),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("DELETE /todos/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleDelete),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerAdmin() {
	h := &AdminHandler{AdminService: r.AdminService}

	secured := func(next http.HandlerFunc, limit httpx.RateLimitConfig) http.Handler {
		return httpx.Chain(next,
			httpx.AuthnMiddleware(r.verifier),
			httpx.RequireRole("ADMIN"),
			httpx.RateLimitByUser(limit),
		)
	}

	r.Mux.Handle("GET /admin/users", secured(h.HandleList, httpx.LenientLimit))
	r.Mux.Handle("POST /admin/users", secured(h.HandleCreate, httpx.ModerateLimit))
	r.Mux.Handle("PATCH /admin/users/{id}", secured(h.HandleUpdateRole, httpx.ModerateLimit))
	r.Mux.Handle("DELETE /admin/users/{id}", secured(h.HandleDelete, httpx.ModerateLimit))
	r.Mux.Handle("GET /admin/users/{id}/logins", secured(h.HandleLoginHistory, httpx.LenientLimit))
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /ping",
		httpx.Chain(PingHandler(r.store),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
}
