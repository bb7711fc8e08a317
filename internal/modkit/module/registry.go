package module

import "github.com/puzpuzpuz/xsync/v4"

// process-wide port registry used for cross wiring during bootstrap
// single process composition only; tests can Reset it
var reg = xsync.NewMap[string, any]()

// Register stores a port set for a module name, replacing any previous value
func Register(name string, ports any) { reg.Store(name, ports) }

// PortsAs fetches and type asserts a port set for name
func PortsAs[T any](name string) (T, bool) {
	var zero T
	v, ok := reg.Load(name)
	if !ok {
		return zero, false
	}
	out, ok := v.(T)
	if !ok {
		return zero, false
	}
	return out, true
}

// Reset clears the registry for tests
func Reset() { reg.Clear() }
