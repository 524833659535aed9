package router

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/salon-manager-api/pkg/apiErrors"
)

// WithRoutes registra um grupo de rotas, normalmente vindo de handler.Metrics, handler.Records etc.
func WithRoutes(routes ...Route) ConfigRouter {
	return func(router *Router) {
		router.AddRoutes(routes...)
	}
}

type Route struct {
	Path        string
	Method      string
	Handler     http.Handler
	Middlewares []func(http.Handler) http.Handler // aplicados na ordem da lista, o primeiro é o mais externo
}

type Router struct {
	router *httprouter.Router
}

type ConfigRouter func(router *Router)

// New cria o roteador com respostas 404 e 405 no mesmo formato de erro da API
func New(configs ...ConfigRouter) *Router {
	rt := httprouter.New()
	rt.NotFound = http.HandlerFunc(notFound)
	rt.MethodNotAllowed = http.HandlerFunc(methodNotAllowed)

	router := &Router{router: rt}
	for _, config := range configs {
		config(router)
	}

	return router
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.router.ServeHTTP(w, req)
}

func (r *Router) AddRoutes(routes ...Route) {
	for _, route := range routes {
		r.router.Handler(route.Method, route.Path, chain(route.Handler, route.Middlewares))
	}
}

func chain(handler http.Handler, middlewares []func(http.Handler) http.Handler) http.Handler {
	for i := len(middlewares) - 1; i >= 0; i-- {
		handler = middlewares[i](handler)
	}
	return handler
}

func notFound(w http.ResponseWriter, r *http.Request) {
	apiErrors.WriteError(w, apiErrors.ErrNotFound, "Rota não encontrada", map[string]any{"path": r.URL.Path})
}

// methodNotAllowed roda depois do httprouter preencher o cabeçalho Allow
func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	apiErrors.WriteError(w, apiErrors.ErrMethodNotAllowed, "Método não permitido", map[string]any{
		"method": r.Method,
		"allow":  w.Header().Get("Allow"),
	})
}
