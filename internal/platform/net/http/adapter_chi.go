package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// verbs carries the per-method registration shared by the root mux and
// every chi subtree
type verbs struct{ r chi.Router }

func (v verbs) method(m, p string, h Handler) { v.r.Method(m, p, http.HandlerFunc(h)) }

func (v verbs) Get(p string, h Handler)     { v.method(http.MethodGet, p, h) }
func (v verbs) Post(p string, h Handler)    { v.method(http.MethodPost, p, h) }
func (v verbs) Put(p string, h Handler)     { v.method(http.MethodPut, p, h) }
func (v verbs) Patch(p string, h Handler)   { v.method(http.MethodPatch, p, h) }
func (v verbs) Delete(p string, h Handler)  { v.method(http.MethodDelete, p, h) }
func (v verbs) Head(p string, h Handler)    { v.method(http.MethodHead, p, h) }
func (v verbs) Options(p string, h Handler) { v.method(http.MethodOptions, p, h) }

func (v verbs) Handle(p string, h http.Handler)           { v.r.Handle(p, h) }
func (v verbs) Use(mw ...func(http.Handler) http.Handler) { v.r.Use(mw...) }

// chiRoot adapts a *chi.Mux to the Router seam
type chiRoot struct {
	verbs
	m *chi.Mux
}

// AdaptChi wraps a *chi.Mux in the Router seam
func AdaptChi(m *chi.Mux) Router { return chiRoot{verbs: verbs{r: m}, m: m} }

func (c chiRoot) Group(fn func(Router)) {
	c.m.Group(func(sub chi.Router) { fn(chiSub{verbs: verbs{r: sub}, parent: c.m}) })
}

func (c chiRoot) Route(pattern string, fn func(Router)) {
	c.m.Route(pattern, func(sub chi.Router) { fn(chiSub{verbs: verbs{r: sub}, parent: c.m}) })
}

func (c chiRoot) Mux() http.Handler { return c.m }

// chiSub adapts a chi subtree, keeping the top-level mux reachable
type chiSub struct {
	verbs
	parent *chi.Mux
}

func (c chiSub) Group(fn func(Router)) {
	c.r.Group(func(sub chi.Router) { fn(chiSub{verbs: verbs{r: sub}, parent: c.parent}) })
}

func (c chiSub) Route(pattern string, fn func(Router)) {
	c.r.Route(pattern, func(sub chi.Router) { fn(chiSub{verbs: verbs{r: sub}, parent: c.parent}) })
}

// chi.Router is itself an http.Handler
func (c chiSub) Mux() http.Handler { return c.r }
