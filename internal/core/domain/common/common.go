package common

import "fmt"

type Optional[T any] struct {
	Value     T
	IsPresent bool
}

func NewOptional[T any](value T, isPresent bool) Optional[T] {
	return Optional[T]{Value: value, IsPresent: isPresent}
}

func Some[T any](value T) Optional[T] {
	return Optional[T]{Value: value, IsPresent: true}
}

func (p Optional[T]) String() string {
	if !p.IsPresent {
		return "[-]"
	}
	return fmt.Sprintf("[%v]", p.Value)
}

// Pointer returns nil for an absent value, which renders as JSON null.
func (p Optional[T]) Pointer() *T {
	if !p.IsPresent {
		return nil
	}
	v := p.Value
	return &v
}
