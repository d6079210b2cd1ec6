package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/tabtodo/internal/todo/service"
	"github.com/aussiebroadwan/tabtodo/internal/todo/store"
	"github.com/aussiebroadwan/tabtodo/pkg/httpx"
	"github.com/aussiebroadwan/tabtodo/pkg/slogx"

	_ "github.com/aussiebroadwan/tabtodo/api/todo" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux     *http.ServeMux
	handler http.Handler

	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store store.Store
	API   *service.API
}

// NewRouter builds the router and its middleware chain. Request logging is
// always outermost; extra middlewares run inside it in the order given.
func NewRouter(
	api *service.API,
	st store.Store,
	buildVersion string,
	logger *slog.Logger,
	extra ...httpx.Middleware,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		API:          api,
		logger:       logger,
	}

	middlewares := append([]httpx.Middleware{slogx.HTTPMiddleware(r.logger)}, extra...)
	r.handler = httpx.Chain(r.Mux, middlewares...)

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerUsers()
	r.registerTodos()
	r.registerTags()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router through the middleware chain
// built in NewRouter.
//
//	@title			TabTodo API
//	@version		0.1.0
//	@description	Multi-user todo service. Users register, log in for a bearer token and manage
//	@description	their own todos. Tags are shared between all users.
//
//	@contact.name				AussieBroadWAN Team
//	@contact.url				https://github.com/aussiebroadwan/tabtodo
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT access token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.handler.ServeHTTP(w, req)
}

func secured(h http.HandlerFunc) http.Handler {
	return httpx.Chain(h, httpx.BearerMiddleware())
}

func (r *Router) registerUsers() {
	h := &UserHandler{API: r.API}

	r.Mux.Handle("POST /v1/users", http.HandlerFunc(h.HandleRegister))
	r.Mux.Handle("POST /v1/token", http.HandlerFunc(h.HandleToken))
	r.Mux.Handle("GET /v1/users/me", secured(h.HandleWhoAmI))
}

func (r *Router) registerTodos() {
	h := &TodoHandler{API: r.API}

	r.Mux.Handle("POST /v1/todos", secured(h.HandleCreate))
	r.Mux.Handle("GET /v1/todos", secured(h.HandleList))
	r.Mux.Handle("GET /v1/todos/{id}", secured(h.HandleGet))
	r.Mux.Handle("PUT /v1/todos/{id}", secured(h.HandleUpdate))
	r.Mux.Handle("DELETE /v1/todos/{id}", secured(h.HandleDelete))
	r.Mux.Handle("POST /v1/todos/{id}/toggle", secured(h.HandleToggle))
	r.Mux.Handle("GET /v1/todos/{id}/tags", secured(h.HandleListTags))
	r.Mux.Handle("POST /v1/todos/{id}/tags/{tagID}", secured(h.HandleAttachTag))
}

func (r *Router) registerTags() {
	h := &TagHandler{API: r.API}

	r.Mux.Handle("POST /v1/tags", secured(h.HandleCreate))
	r.Mux.Handle("GET /v1/tags", secured(h.HandleList))
	r.Mux.Handle("GET /v1/tags/{id}", secured(h.HandleGet))
	r.Mux.Handle("PUT /v1/tags/{id}", secured(h.HandleUpdate))
	r.Mux.Handle("DELETE /v1/tags/{id}", secured(h.HandleDelete))
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez", LivezHandler(r.startTime, r.buildVersion))
	r.Mux.Handle("GET /readyz", ReadyzHandler(r.startTime, r.buildVersion, r.store))
}
