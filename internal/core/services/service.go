package services

import "context"

// Service is a single use case. Input and Result are plain data.
type Service[Input any, Result any] interface {
	Run(ctx context.Context, input Input) (Result, error)
}

// Func adapts a function to Service.
type Func[Input any, Result any] func(ctx context.Context, input Input) (Result, error)

func (f Func[Input, Result]) Run(ctx context.Context, input Input) (Result, error) {
	return f(ctx, input)
}
