package specification

import (
	"errors"
	"fmt"

	"userdir/domain/shared"
	"userdir/domain/user"

	"gorm.io/gorm"
)

// ErrUnsupported the specification has no SQL form
var ErrUnsupported = errors.New("unsupported specification")

// Scope narrows a gorm query
type Scope = func(*gorm.DB) *gorm.DB

// UserTranslator converts user specifications to gorm scopes over the users
// table. Unknown specifications are rejected rather than matching everything.
type UserTranslator struct{}

func NewUserTranslator() *UserTranslator {
	return &UserTranslator{}
}

func (t *UserTranslator) Translate(spec shared.Specification[*user.User]) (Scope, error) {
	switch s := spec.(type) {
	case shared.AndSpecification[*user.User]:
		return t.translateAnd(s)
	case user.ByEmailSpecification:
		return func(db *gorm.DB) *gorm.DB {
			return db.Where("email = ?", s.Email)
		}, nil
	case user.BornOnOrAfterSpecification:
		return func(db *gorm.DB) *gorm.DB {
			return db.Where("birth_date >= ?", s.Date.Time())
		}, nil
	case user.BornOnOrBeforeSpecification:
		return func(db *gorm.DB) *gorm.DB {
			return db.Where("birth_date <= ?", s.Date.Time())
		}, nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupported, spec)
	}
}

func (t *UserTranslator) translateAnd(spec shared.AndSpecification[*user.User]) (Scope, error) {
	left, err := t.Translate(spec.Left)
	if err != nil {
		return nil, err
	}
	right, err := t.Translate(spec.Right)
	if err != nil {
		return nil, err
	}
	return func(db *gorm.DB) *gorm.DB {
		return right(left(db))
	}, nil
}
