package modkit

import (
	"net/http"
	"reflect"
	"testing"

	"padala/internal/modkit/httpkit"
)

func TestBuild_Defaults(t *testing.T) {
	t.Parallel()

	b := Build()

	switch {
	case b.Name != "":
		t.Fatalf("default Name = %q, want empty", b.Name)
	case b.Prefix != "":
		t.Fatalf("default Prefix = %q, want empty", b.Prefix)
	case b.Ports != nil:
		t.Fatalf("default Ports = %v, want nil", b.Ports)
	case b.SwaggerOn:
		t.Fatal("default SwaggerOn should be false")
	case len(b.Mw) != 0:
		t.Fatalf("default Mw length = %d, want 0", len(b.Mw))
	}

	// hooks default to identity and no-op; neither may be nil or panic
	var r httpkit.Router
	if out := b.Subrouter(r); out != r {
		t.Fatal("default Subrouter is not the identity")
	}
	b.Register(r)
}

func TestBuild_FlattensOptionsAndCopiesMiddleware(t *testing.T) {
	t.Parallel()

	fnPtr := func(f func(http.Handler) http.Handler) uintptr {
		return reflect.ValueOf(f).Pointer()
	}

	mwA := func(next http.Handler) http.Handler { return next }
	mwB := func(next http.Handler) http.Handler { return next }
	mid := []func(http.Handler) http.Handler{mwA, mwB}

	subCalled, regCalled := 0, 0

	type ports struct {
		Days    int
		Courier string
	}
	p := ports{Days: 3, Courier: "LBC"}

	// hooks wired through a same-package custom Option
	hooks := Option(func(c *modCfg) {
		c.subrouter = func(in httpkit.Router) httpkit.Router {
			subCalled++
			return in
		}
		c.register = func(httpkit.Router) { regCalled++ }
		c.swaggerOn = true
	})

	b := Build(
		WithName("rates"),
		WithPrefix("/api/v1/rates"),
		WithMiddlewares(mid...),
		WithPorts[ports](p),
		hooks,
	)

	if b.Name != "rates" || b.Prefix != "/api/v1/rates" || !b.SwaggerOn {
		t.Fatalf("Built = %+v, want rates module settings", b)
	}
	if got, ok := b.Ports.(ports); !ok || got != p {
		t.Fatalf("Ports = %v, want %v", b.Ports, p)
	}

	if len(b.Mw) != 2 || fnPtr(b.Mw[0]) != fnPtr(mwA) || fnPtr(b.Mw[1]) != fnPtr(mwB) {
		t.Fatalf("Mw = %d entries, want [mwA mwB] preserved in order", len(b.Mw))
	}

	// mutating the source slice after Build must not reach Built.Mw
	mid[0] = func(next http.Handler) http.Handler { return next }
	if fnPtr(b.Mw[0]) != fnPtr(mwA) {
		t.Fatal("Built.Mw aliases the caller's slice")
	}

	var r httpkit.Router
	if out := b.Subrouter(r); out != r {
		t.Fatal("Subrouter did not return its input")
	}
	b.Register(r)
	if subCalled != 1 || regCalled != 1 {
		t.Fatalf("hook invocations = sub %d / reg %d, want 1 each", subCalled, regCalled)
	}
}
