package validation

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

const (
	MsgRequired   = "Should not be empty"
	MsgEmail      = "must be a well-formed email address"
	MsgPast       = "date has to be in past"
	MsgTooYoung   = "You are too young!!!"
	MsgRangeOrder = "'From' date should be before 'to' date"
	MsgTooLong    = "Should not be longer than %d characters"
)

var fieldValidator = validator.New()

// Clock returns the current instant; rules derive "today" from it.
type Clock func() time.Time

// Check builds a rule from an arbitrary predicate.
func Check[T any](field, message string, ok func(T) bool) Rule[T] {
	return RuleFunc[T](func(target T) *FieldError {
		if ok(target) {
			return nil
		}
		return &FieldError{Field: field, Message: message}
	})
}

// Required fails when the string is empty or only whitespace.
func Required[T any](field string, get func(T) string) Rule[T] {
	return Check(field, MsgRequired, func(target T) bool {
		return strings.TrimSpace(get(target)) != ""
	})
}

// Present fails when isSet reports the value is missing.
func Present[T any](field string, isSet func(T) bool) Rule[T] {
	return Check(field, MsgRequired, isSet)
}

// Email fails when a non-blank value is not a valid address. Blank values pass;
// pair with Required.
func Email[T any](field string, get func(T) string) Rule[T] {
	return Check(field, MsgEmail, func(target T) bool {
		v := get(target)
		if strings.TrimSpace(v) == "" {
			return true
		}
		return fieldValidator.Var(v, "required,email") == nil
	})
}

// MaxLength fails when the value has more than limit characters.
func MaxLength[T any](field string, get func(T) string, limit int) Rule[T] {
	return Check(field, fmt.Sprintf(MsgTooLong, limit), func(target T) bool {
		return utf8.RuneCountInString(get(target)) <= limit
	})
}

// Past fails when the date is not strictly before today. Zero dates pass.
func Past[T any](field string, get func(T) time.Time, now Clock) Rule[T] {
	return Check(field, MsgPast, func(target T) bool {
		d := get(target)
		if d.IsZero() {
			return true
		}
		return dayOf(d).Before(dayOf(now()))
	})
}

// MinAge fails when fewer than minAge full years separate the date from today.
// Zero dates pass.
func MinAge[T any](field string, get func(T) time.Time, minAge int, now Clock) Rule[T] {
	return Check(field, MsgTooYoung, func(target T) bool {
		d := get(target)
		if d.IsZero() {
			return true
		}
		return !dayOf(d).AddDate(minAge, 0, 0).After(dayOf(now()))
	})
}

// Before fails when from is not strictly earlier than to. The violation is
// reported on field. Zero bounds pass.
func Before[T any](field string, from, to func(T) time.Time) Rule[T] {
	return Check(field, MsgRangeOrder, func(target T) bool {
		f, t := from(target), to(target)
		if f.IsZero() || t.IsZero() {
			return true
		}
		return dayOf(f).Before(dayOf(t))
	})
}

func dayOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
