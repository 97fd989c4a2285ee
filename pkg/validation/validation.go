/*
Package validation evaluates ordered field rules and aggregates every violation
into one reportable error.

A RuleSet never stops at the first failing rule. The rendered message is a
contract consumed verbatim by clients:

	email - Should not be empty;birthDate - You are too young!!!;
*/
package validation

import "strings"

// FieldError a single rule violation keyed by field name
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Errors ordered rule violations, in rule-declaration order
type Errors []FieldError

// Error renders "field - message;" for every entry.
func (e Errors) Error() string {
	var b strings.Builder
	for _, fe := range e {
		b.WriteString(fe.Field)
		b.WriteString(" - ")
		b.WriteString(fe.Message)
		b.WriteString(";")
	}
	return b.String()
}

// Validator validates a target and returns nil when it satisfies every rule.
type Validator[T any] interface {
	Validate(target T) Errors
}

// Rule checks one aspect of a target. It returns nil when satisfied.
type Rule[T any] interface {
	Check(target T) *FieldError
}

// RuleFunc adapts a plain function to Rule.
type RuleFunc[T any] func(target T) *FieldError

func (f RuleFunc[T]) Check(target T) *FieldError { return f(target) }

// RuleSet runs its rules in order and collects all violations.
type RuleSet[T any] struct {
	rules []Rule[T]
}

// NewRuleSet builds a rule set evaluated in the given order.
func NewRuleSet[T any](rules ...Rule[T]) *RuleSet[T] {
	return &RuleSet[T]{rules: rules}
}

// Validate returns nil when the target is valid.
func (s *RuleSet[T]) Validate(target T) Errors {
	var errs Errors
	for _, r := range s.rules {
		if fe := r.Check(target); fe != nil {
			errs = append(errs, *fe)
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

var _ Validator[struct{}] = (*RuleSet[struct{}])(nil)
