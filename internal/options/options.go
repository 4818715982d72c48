// Package options implements the functional option pattern used to configure
// the compression pipeline and its decoders.
package options

// Option configures a target of type T. Options are applied in order and the
// first error aborts the rest.
type Option[T any] interface {
	apply(T) error
}

// Func adapts a plain function to Option.
type Func[T any] struct {
	applyFunc func(T) error
}

func (f *Func[T]) apply(target T) error {
	return f.applyFunc(target)
}

// New wraps fn as an Option. fn may reject the value it is configuring.
func New[T any](fn func(T) error) *Func[T] {
	return &Func[T]{applyFunc: fn}
}

// NoError wraps an fn that cannot fail.
func NoError[T any](fn func(T)) *Func[T] {
	return &Func[T]{
		applyFunc: func(target T) error {
			fn(target)
			return nil
		},
	}
}

// Apply applies opts to target in order, stopping at the first error.
func Apply[T any](target T, opts ...Option[T]) error {
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt.apply(target); err != nil {
			return err
		}
	}

	return nil
}
