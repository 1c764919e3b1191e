package router

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

// Route vincula um método e um caminho a um handler, com middlewares
// específicos da rota aplicados sobre a cadeia global
type Route struct {
	Path        string
	Method      string
	Handler     http.Handler
	Middlewares []func(http.Handler) http.Handler
}

type Option func(*Router)

// WithRoutes registra um grupo de rotas no router
func WithRoutes(routes ...Route) Option {
	return func(r *Router) {
		r.addRoutes(routes...)
	}
}

type Router struct {
	router *httprouter.Router
}

func New(opts ...Option) Router {
	r := &Router{
		router: httprouter.New(),
	}

	for _, opt := range opts {
		opt(r)
	}

	return *r
}

func (r Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.router.ServeHTTP(w, req)
}

func (r *Router) addRoutes(routes ...Route) {
	for _, route := range routes {
		handler := route.Handler

		// middlewares da rota aplicados do último para o primeiro
		for i := len(route.Middlewares) - 1; i >= 0; i-- {
			handler = route.Middlewares[i](handler)
		}

		r.router.Handler(route.Method, route.Path, handler)
	}
}
