/*
Package user defines the user directory domain.
*/
package user

import (
	"fmt"

	"userdir/domain/shared"
	"userdir/pkg/validation"
)

const entityName = "user"

// NewUserNotFoundError no user is stored under email.
func NewUserNotFoundError(email string) error {
	return shared.NewDomainError(shared.ErrNotFound, entityName,
		fmt.Sprintf("User with email %s not found", email), nil)
}

// NewUserAlreadyExistsError email already belongs to a stored user.
func NewUserAlreadyExistsError(email string) error {
	return shared.NewDomainError(shared.ErrConflict, entityName,
		fmt.Sprintf("User with email %s already exists", email), nil)
}

// NewUserNotUpdatedError a patch could not be applied to the user stored under
// email. cause stays reachable through errors.Is/As.
func NewUserNotUpdatedError(email string, cause error) error {
	return shared.NewDomainError(shared.ErrNotUpdated, entityName,
		fmt.Sprintf("User with email %s not updated", email), cause)
}

// NewInvalidDataError wraps aggregated rule violations; the message is the
// aggregated "field - message;" string.
func NewInvalidDataError(errs validation.Errors) error {
	return shared.NewDomainError(shared.ErrInvalidInput, entityName, errs.Error(), errs)
}
