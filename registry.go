package sensitive

import (
	"context"
	"reflect"
	"sync"
)

// registration holds the renderers declared for a contained type.
type registration struct {
	renderer any // Renderer[T]
	alt      any // Renderer[T]
}

var (
	renderers   = make(map[reflect.Type]registration)
	renderersMu sync.RWMutex

	scrubbers   = make(map[reflect.Type]any)
	scrubbersMu sync.RWMutex
)

// Register declares the renderers for contained type T, so that Wrap can
// build values of T without repeating the strategy at every construction
// site. A nil alternate falls back to the primary. Registering again for
// the same type replaces the previous entry.
//
// Renderers registered here are shared singletons; they must be pure.
func Register[T any](primary, alternate Renderer[T]) {
	typ := reflect.TypeFor[T]()

	renderersMu.Lock()
	renderers[typ] = registration{renderer: primary, alt: alternate}
	renderersMu.Unlock()

	emitRendererRegistered(context.Background(), typ.String())
}

// Wrap creates a Value for the given raw value using the renderers
// registered for its type. With no registration the Value renders as empty
// text for every directive.
func Wrap[T any](value T) *Value[T] {
	return WrapSource(Static(value))
}

// WrapSource is Wrap for a lazily-supplied value.
func WrapSource[T any](source Source[T]) *Value[T] {
	typ := reflect.TypeFor[T]()

	renderersMu.RLock()
	reg, ok := renderers[typ]
	renderersMu.RUnlock()

	if !ok {
		return NewFromSource(source)
	}

	var opts []Option[T]
	if r, _ := reg.renderer.(Renderer[T]); r != nil {
		opts = append(opts, WithRenderer(r))
	}
	if r, _ := reg.alt.(Renderer[T]); r != nil {
		opts = append(opts, WithAltRenderer(r))
	}
	return NewFromSource(source, opts...)
}

// Use returns a cached scrubber for T, building one on first use.
// T must implement Cloner[T].
func Use[T Cloner[T]]() (*Scrubber[T], error) {
	typ := reflect.TypeFor[T]()

	// Fast path: read-lock cache check
	scrubbersMu.RLock()
	if cached, ok := scrubbers[typ]; ok {
		scrubbersMu.RUnlock()
		return cached.(*Scrubber[T]), nil
	}
	scrubbersMu.RUnlock()

	// Slow path: build and cache with write-lock
	scrubbersMu.Lock()
	defer scrubbersMu.Unlock()

	// Double-check pattern
	if cached, ok := scrubbers[typ]; ok {
		return cached.(*Scrubber[T]), nil
	}

	scrubber, err := NewScrubber[T]()
	if err != nil {
		return nil, err
	}

	scrubbers[typ] = scrubber
	return scrubber, nil
}

// Reset clears the renderer registrations and the scrubber cache.
// This is primarily useful for test isolation.
func Reset() {
	renderersMu.Lock()
	renderers = make(map[reflect.Type]registration)
	renderersMu.Unlock()

	scrubbersMu.Lock()
	scrubbers = make(map[reflect.Type]any)
	scrubbersMu.Unlock()
}
