package validation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type person struct {
	Email string
	Name  string
	Born  time.Time
}

type window struct {
	From time.Time
	To   time.Time
}

var fixedNow = time.Date(2024, time.June, 15, 13, 30, 0, 0, time.UTC)

func clock() time.Time { return fixedNow }

func personRules(minAge int) *RuleSet[person] {
	return NewRuleSet(
		Required("email", func(p person) string { return p.Email }),
		Email("email", func(p person) string { return p.Email }),
		Required("name", func(p person) string { return p.Name }),
		Present("born", func(p person) bool { return !p.Born.IsZero() }),
		Past("born", func(p person) time.Time { return p.Born }, clock),
		MinAge("born", func(p person) time.Time { return p.Born }, minAge, clock),
	)
}

func TestRuleSetValid(t *testing.T) {
	errs := personRules(18).Validate(person{
		Email: "john@example.com",
		Name:  "John",
		Born:  time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC),
	})
	assert.Nil(t, errs)
}

func TestRuleSetCollectsEveryViolationInOrder(t *testing.T) {
	errs := personRules(18).Validate(person{Name: "  "})
	require.Len(t, errs, 3)
	assert.Equal(t, "email - Should not be empty;name - Should not be empty;born - Should not be empty;", errs.Error())
}

func TestEmailRule(t *testing.T) {
	rule := Email("email", func(s string) string { return s })

	assert.Nil(t, rule.Check("a@x.com"))
	assert.Nil(t, rule.Check(""), "blank values are left to Required")

	fe := rule.Check("not-an-email")
	require.NotNil(t, fe)
	assert.Equal(t, FieldError{Field: "email", Message: MsgEmail}, *fe)
}

func TestPastRule(t *testing.T) {
	rule := Past("d", func(d time.Time) time.Time { return d }, clock)

	assert.Nil(t, rule.Check(fixedNow.AddDate(0, 0, -1)))
	assert.Nil(t, rule.Check(time.Time{}))

	today := time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)
	require.NotNil(t, rule.Check(today), "today is not strictly in the past")
	require.NotNil(t, rule.Check(fixedNow.AddDate(0, 0, 1)))
	assert.Equal(t, MsgPast, rule.Check(today).Message)
}

func TestMinAgeRule(t *testing.T) {
	rule := MinAge("d", func(d time.Time) time.Time { return d }, 18, clock)

	tests := []struct {
		name  string
		born  time.Time
		valid bool
	}{
		{"twenty years old", fixedNow.AddDate(-20, 0, 0), true},
		{"turns eighteen today", time.Date(2006, time.June, 15, 0, 0, 0, 0, time.UTC), true},
		{"turns eighteen tomorrow", time.Date(2006, time.June, 16, 0, 0, 0, 0, time.UTC), false},
		{"ten years old", fixedNow.AddDate(-10, 0, 0), false},
		{"unset", time.Time{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fe := rule.Check(tt.born)
			if tt.valid {
				assert.Nil(t, fe)
				return
			}
			require.NotNil(t, fe)
			assert.Equal(t, "d", fe.Field)
			assert.Equal(t, MsgTooYoung, fe.Message)
		})
	}
}

func TestBeforeRule(t *testing.T) {
	rules := NewRuleSet(Before("from",
		func(w window) time.Time { return w.From },
		func(w window) time.Time { return w.To },
	))
	yesterday := fixedNow.AddDate(0, 0, -1)

	assert.Nil(t, rules.Validate(window{From: yesterday, To: fixedNow}))

	errs := rules.Validate(window{From: fixedNow, To: fixedNow})
	assert.Equal(t, "from - 'From' date should be before 'to' date;", errs.Error())

	errs = rules.Validate(window{From: fixedNow, To: yesterday})
	assert.Equal(t, "from - 'From' date should be before 'to' date;", errs.Error())
}

func TestErrorsEmptyRendering(t *testing.T) {
	var errs Errors
	assert.Equal(t, "", errs.Error())
}
