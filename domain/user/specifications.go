package user

import (
	"context"

	"userdir/domain/shared"
)

type ByEmailSpecification struct {
	Email string
}

func (spec ByEmailSpecification) IsSatisfiedBy(ctx context.Context, entity *User) bool {
	return SameEmail(entity.Email(), spec.Email)
}

// BornOnOrAfterSpecification birthDate >= Date
type BornOnOrAfterSpecification struct {
	Date Date
}

func (spec BornOnOrAfterSpecification) IsSatisfiedBy(ctx context.Context, entity *User) bool {
	return !entity.BirthDate().Before(spec.Date)
}

// BornOnOrBeforeSpecification birthDate <= Date
type BornOnOrBeforeSpecification struct {
	Date Date
}

func (spec BornOnOrBeforeSpecification) IsSatisfiedBy(ctx context.Context, entity *User) bool {
	return !entity.BirthDate().After(spec.Date)
}

func NewByEmailSpecification(email string) shared.Specification[*User] {
	return ByEmailSpecification{Email: email}
}

// NewBirthDateRangeSpecification inclusive on both ends
func NewBirthDateRangeSpecification(r DateRange) shared.Specification[*User] {
	return shared.And[*User](
		BornOnOrAfterSpecification{Date: r.From},
		BornOnOrBeforeSpecification{Date: r.To},
	)
}
