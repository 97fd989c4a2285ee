package user

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("01.02.2000")
	require.NoError(t, err)
	assert.Equal(t, NewDate(2000, time.February, 1), d)
	assert.Equal(t, "01.02.2000", d.String())

	for _, bad := range []string{"2000-02-01", "1.2.2000", "32.01.2000", ""} {
		_, err := ParseDate(bad)
		assert.Error(t, err, bad)
	}
}

func TestDateJSON(t *testing.T) {
	type holder struct {
		BirthDate Date `json:"birthDate"`
	}

	out, err := json.Marshal(holder{BirthDate: NewDate(2000, time.January, 1)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"birthDate":"01.01.2000"}`, string(out))

	out, err = json.Marshal(holder{})
	require.NoError(t, err)
	assert.JSONEq(t, `{"birthDate":null}`, string(out))

	var h holder
	require.NoError(t, json.Unmarshal([]byte(`{"birthDate":"31.12.1999"}`), &h))
	assert.Equal(t, NewDate(1999, time.December, 31), h.BirthDate)

	h = holder{BirthDate: NewDate(2000, 1, 1)}
	require.NoError(t, json.Unmarshal([]byte(`{"birthDate":null}`), &h))
	assert.True(t, h.BirthDate.IsZero())

	assert.Error(t, json.Unmarshal([]byte(`{"birthDate":"1999-12-31"}`), &h))
	assert.Error(t, json.Unmarshal([]byte(`{"birthDate":19991231}`), &h))
}

func TestDateOfDropsTimeOfDay(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)
	d := DateOf(time.Date(2020, time.March, 5, 23, 59, 0, 0, loc))
	assert.Equal(t, NewDate(2020, time.March, 5), d)
	assert.True(t, DateOf(time.Time{}).IsZero())
}

func TestDateRangeContainsIsInclusive(t *testing.T) {
	r := DateRange{From: NewDate(2000, 1, 1), To: NewDate(2000, 12, 31)}

	assert.True(t, r.Contains(NewDate(2000, 1, 1)))
	assert.True(t, r.Contains(NewDate(2000, 6, 15)))
	assert.True(t, r.Contains(NewDate(2000, 12, 31)))
	assert.False(t, r.Contains(NewDate(1999, 12, 31)))
	assert.False(t, r.Contains(NewDate(2001, 1, 1)))
}

func TestBirthDateRangeSpecification(t *testing.T) {
	ctx := context.Background()
	spec := NewBirthDateRangeSpecification(DateRange{From: NewDate(1990, 1, 1), To: NewDate(1999, 12, 31)})

	inside := NewUser(Profile{Email: "in@x.com", BirthDate: NewDate(1995, 5, 5)})
	edge := NewUser(Profile{Email: "edge@x.com", BirthDate: NewDate(1999, 12, 31)})
	outside := NewUser(Profile{Email: "out@x.com", BirthDate: NewDate(2000, 1, 1)})

	assert.True(t, spec.IsSatisfiedBy(ctx, inside))
	assert.True(t, spec.IsSatisfiedBy(ctx, edge))
	assert.False(t, spec.IsSatisfiedBy(ctx, outside))
	assert.True(t, NewByEmailSpecification("in@x.com").IsSatisfiedBy(ctx, inside))
}

func TestUserReplaceProfile(t *testing.T) {
	u := NewUser(Profile{Email: " a@x.com ", FirstName: "John", LastName: "Obama", BirthDate: NewDate(2000, 1, 1)})
	assert.Equal(t, "a@x.com", u.Email())

	u.ReplaceProfile(Profile{Email: "b@x.com", FirstName: "Jane", LastName: "Doe", BirthDate: NewDate(1990, 1, 1), Address: "Kyiv, 25"})
	assert.Equal(t, Profile{Email: "b@x.com", FirstName: "Jane", LastName: "Doe", BirthDate: NewDate(1990, 1, 1), Address: "Kyiv, 25"}, u.Profile())

	c := u.Clone()
	c.ReplaceProfile(Profile{Email: "c@x.com"})
	assert.Equal(t, "b@x.com", u.Email())
}
