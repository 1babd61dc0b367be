package module

import "sync"

// process wide registry of port sets, filled while mounting modules
var (
	mu  sync.RWMutex
	reg = map[string]any{}
)

// Register stores a port set under a module name; nil port sets are skipped
func Register(name string, ports any) {
	if ports == nil {
		return
	}
	mu.Lock()
	reg[name] = ports
	mu.Unlock()
}

// PortsAs fetches the port set for name as T
func PortsAs[T any](name string) (T, bool) {
	mu.RLock()
	v, ok := reg[name]
	mu.RUnlock()
	if !ok {
		var zero T
		return zero, false
	}
	out, ok := v.(T)
	return out, ok
}

// Lookup is PortsAs that also searches the exported fields of the stored port set
func Lookup[T any](name string) (T, bool) {
	mu.RLock()
	v := reg[name]
	mu.RUnlock()
	return find[T](v)
}

// Reset clears the registry for tests
func Reset() {
	mu.Lock()
	reg = map[string]any{}
	mu.Unlock()
}
