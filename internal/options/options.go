// Package options implements the generic functional-option pattern used by the
// quadrature study and chart rendering configuration.
package options

// Option configures a target of type T. Options are applied in order and the
// first failing option aborts the application.
type Option[T any] interface {
	apply(T) error
}

type optionFunc[T any] func(T) error

func (f optionFunc[T]) apply(target T) error {
	return f(target)
}

// New wraps a validating setter as an Option.
func New[T any](fn func(T) error) Option[T] {
	return optionFunc[T](fn)
}

// NoError wraps a setter that cannot fail as an Option.
func NoError[T any](fn func(T)) Option[T] {
	return optionFunc[T](func(target T) error {
		fn(target)
		return nil
	})
}

// Apply applies opts to target in order. Nil options are skipped.
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
