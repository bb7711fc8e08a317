package httpkit

import (
	"net/http"

	phttp "padala/internal/platform/net/http"
)

// routeCall is one recorded registration on a spyRouter
type routeCall struct {
	verb string
	path string
	ph   phttp.Handler
	h    http.Handler
}

// spyRouter satisfies Router and records everything mounted on it so the
// mount helpers can be asserted without a real mux
type spyRouter struct {
	prefixes []string
	useCalls int
	mwLens   []int
	routes   []routeCall
}

func (s *spyRouter) Route(prefix string, fn func(Router)) {
	s.prefixes = append(s.prefixes, prefix)
	fn(s)
}

func (s *spyRouter) Group(fn func(Router)) { fn(s) }

func (s *spyRouter) Use(mw ...func(http.Handler) http.Handler) {
	s.useCalls++
	s.mwLens = append(s.mwLens, len(mw))
}

func (s *spyRouter) Mux() http.Handler { return http.NewServeMux() }

func (s *spyRouter) add(verb, path string, ph phttp.Handler, h http.Handler) {
	s.routes = append(s.routes, routeCall{verb: verb, path: path, ph: ph, h: h})
}

func (s *spyRouter) Handle(path string, h http.Handler) { s.add("HANDLE", path, nil, h) }

func (s *spyRouter) Get(path string, h phttp.Handler)     { s.add("GET", path, h, nil) }
func (s *spyRouter) Post(path string, h phttp.Handler)    { s.add("POST", path, h, nil) }
func (s *spyRouter) Put(path string, h phttp.Handler)     { s.add("PUT", path, h, nil) }
func (s *spyRouter) Patch(path string, h phttp.Handler)   { s.add("PATCH", path, h, nil) }
func (s *spyRouter) Delete(path string, h phttp.Handler)  { s.add("DELETE", path, h, nil) }
func (s *spyRouter) Head(path string, h phttp.Handler)    { s.add("HEAD", path, h, nil) }
func (s *spyRouter) Options(path string, h phttp.Handler) { s.add("OPTIONS", path, h, nil) }

var _ Router = (*spyRouter)(nil)
