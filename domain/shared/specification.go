package shared

import "context"

// Specification encapsulates a query rule over entities of type T.
// IsSatisfiedBy is used for in-memory filtering; persistence adapters translate
// concrete specifications into their own query language.
type Specification[T any] interface {
	IsSatisfiedBy(ctx context.Context, entity T) bool
}

// AndSpecification logical AND of two specifications
type AndSpecification[T any] struct {
	Left  Specification[T]
	Right Specification[T]
}

func (spec AndSpecification[T]) IsSatisfiedBy(ctx context.Context, entity T) bool {
	return spec.Left.IsSatisfiedBy(ctx, entity) && spec.Right.IsSatisfiedBy(ctx, entity)
}

// And combines two specifications.
func And[T any](left, right Specification[T]) Specification[T] {
	return AndSpecification[T]{Left: left, Right: right}
}
