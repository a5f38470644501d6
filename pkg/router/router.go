package router

import (
	"net/http"

	"github.com/sidequests/backend/config"
	"github.com/sidequests/backend/pkg/logger"
	"github.com/sidequests/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type HandlerFunc[Request, Response any] func(ctx xcontext.Context, req *Request) (*Response, error)

// MiddlewareFunc runs before (or after) a handler. Returning an error stops
// the chain and the error is written as the response.
type MiddlewareFunc func(ctx xcontext.Context) error

// CloserFunc always runs at the end of a request, after the response has been
// written.
type CloserFunc func(ctx xcontext.Context)

type Router struct {
	mux    *http.ServeMux
	cfg    config.Configs
	logger logger.Logger
	db     *gorm.DB

	befores []MiddlewareFunc
	afters  []MiddlewareFunc
	closers []CloserFunc
}

func New(db *gorm.DB, cfg config.Configs, logger logger.Logger) *Router {
	return &Router{
		mux:    http.NewServeMux(),
		cfg:    cfg,
		logger: logger,
		db:     db,
	}
}

// Branch returns a new Router sharing the same mux but with independent
// middleware chains, inherited from the current ones.
func (r *Router) Branch() *Router {
	return &Router{
		mux:     r.mux,
		cfg:     r.cfg,
		logger:  r.logger,
		db:      r.db,
		befores: append([]MiddlewareFunc{}, r.befores...),
		afters:  append([]MiddlewareFunc{}, r.afters...),
		closers: append([]CloserFunc{}, r.closers...),
	}
}

func (r *Router) Before(m MiddlewareFunc) {
	r.befores = append(r.befores, m)
}

func (r *Router) After(m MiddlewareFunc) {
	r.afters = append(r.afters, m)
}

func (r *Router) AddCloser(c CloserFunc) {
	r.closers = append(r.closers, c)
}

func (r *Router) Static(pattern, root string) {
	r.mux.Handle(pattern, http.FileServer(http.Dir(root)))
}

func (r *Router) Handler() http.Handler {
	return r.mux
}

func GET[Request, Response any](r *Router, pattern string, handler HandlerFunc[Request, Response]) {
	r.mux.HandleFunc(pattern, wrapHandler(r, http.MethodGet, handler))
}

func POST[Request, Response any](r *Router, pattern string, handler HandlerFunc[Request, Response]) {
	r.mux.HandleFunc(pattern, wrapHandler(r, http.MethodPost, handler))
}
