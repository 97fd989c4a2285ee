package user

import (
	"time"

	"userdir/domain/user"
	"userdir/pkg/validation"
)

// Validators concrete validators wired by role
type Validators struct {
	User      validation.Validator[UserDTO]
	DateRange validation.Validator[DateRangeDTO]
}

// NewValidators builds the default user and date range validators.
// now supplies "today" for the temporal rules.
func NewValidators(minAge int, now validation.Clock) Validators {
	return Validators{
		User:      NewUserValidator(minAge, now),
		DateRange: NewDateRangeValidator(),
	}
}

// NewUserValidator rules are reported in declaration order.
func NewUserValidator(minAge int, now validation.Clock) *validation.RuleSet[UserDTO] {
	birthDate := func(d UserDTO) time.Time { return d.BirthDate.Time() }

	return validation.NewRuleSet(
		validation.Required("email", func(d UserDTO) string { return d.Email }),
		validation.Email("email", func(d UserDTO) string { return d.Email }),
		validation.MaxLength("email", func(d UserDTO) string { return d.Email }, user.MaxEmailLength),
		validation.Required("firstName", func(d UserDTO) string { return d.FirstName }),
		validation.MaxLength("firstName", func(d UserDTO) string { return d.FirstName }, user.MaxNameLength),
		validation.Required("lastName", func(d UserDTO) string { return d.LastName }),
		validation.MaxLength("lastName", func(d UserDTO) string { return d.LastName }, user.MaxNameLength),
		validation.Present("birthDate", func(d UserDTO) bool { return !d.BirthDate.IsZero() }),
		validation.Past("birthDate", birthDate, now),
		validation.MinAge("birthDate", birthDate, minAge, now),
		validation.MaxLength("address", func(d UserDTO) string { return d.Address }, user.MaxAddressLength),
		validation.MaxLength("phoneNumber", func(d UserDTO) string { return d.PhoneNumber }, user.MaxPhoneLength),
	)
}

func NewDateRangeValidator() *validation.RuleSet[DateRangeDTO] {
	return validation.NewRuleSet(
		validation.Present("from", func(d DateRangeDTO) bool { return !d.From.IsZero() }),
		validation.Present("to", func(d DateRangeDTO) bool { return !d.To.IsZero() }),
		validation.Before("from",
			func(d DateRangeDTO) time.Time { return d.From.Time() },
			func(d DateRangeDTO) time.Time { return d.To.Time() },
		),
	)
}
