package user

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"userdir/domain/user"
)

func TestDocumentMappingRoundTrip(t *testing.T) {
	dto := validUser("a@x.com")

	back, err := fromDocument(toDocument(dto))
	require.NoError(t, err)
	assert.Equal(t, dto, back)

	doc := toDocument(UserDTO{})
	assert.Nil(t, doc["birthDate"])
	assert.Len(t, doc, len(documentFields))
}

func TestFromDocumentRejectsUnknownAndMistyped(t *testing.T) {
	_, err := fromDocument(map[string]any{"email": "a@x.com", "age": 3.0})
	assert.ErrorContains(t, err, `unknown field "age"`)

	_, err = fromDocument(map[string]any{"firstName": 42.0})
	assert.ErrorContains(t, err, "firstName: expected a string")

	_, err = fromDocument(map[string]any{"birthDate": "2000-01-01"})
	assert.Error(t, err)
}

func TestApplySetsOneFieldAndKeepsOthers(t *testing.T) {
	current := validUser("a@x.com")
	applier := NewPatchApplier()

	tests := []struct {
		name   string
		patch  string
		mutate func(*UserDTO)
	}{
		{
			name:   "replace email",
			patch:  `[{"op":"replace","path":"/email","value":"new@x.com"}]`,
			mutate: func(d *UserDTO) { d.Email = "new@x.com" },
		},
		{
			name:   "replace birth date",
			patch:  `[{"op":"replace","path":"/birthDate","value":"24.12.1999"}]`,
			mutate: func(d *UserDTO) { d.BirthDate = user.NewDate(1999, time.December, 24) },
		},
		{
			name:   "remove address",
			patch:  `[{"op":"remove","path":"/address"}]`,
			mutate: func(d *UserDTO) { d.Address = "" },
		},
		{
			name:   "copy first name into last name",
			patch:  `[{"op":"copy","from":"/firstName","path":"/lastName"}]`,
			mutate: func(d *UserDTO) { d.LastName = d.FirstName },
		},
		{
			name:   "explicit null clears birth date",
			patch:  `[{"op":"replace","path":"/birthDate","value":null}]`,
			mutate: func(d *UserDTO) { d.BirthDate = user.Date{} },
		},
		{
			name:   "test then replace",
			patch:  `[{"op":"test","path":"/firstName","value":"John"},{"op":"replace","path":"/phoneNumber","value":"555"}]`,
			mutate: func(d *UserDTO) { d.PhoneNumber = "555" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want := current
			tt.mutate(&want)

			got, err := applier.Apply(current, []byte(tt.patch))
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestApplyFailures(t *testing.T) {
	current := validUser("a@x.com")
	applier := NewPatchApplier()

	tests := []struct {
		name  string
		patch string
	}{
		{"not json", `{{`},
		{"not an array", `{"op":"replace","path":"/email","value":"x"}`},
		{"unknown path", `[{"op":"replace","path":"/wrong","value":"x"}]`},
		{"nested path", `[{"op":"replace","path":"/email/0","value":"x"}]`},
		{"missing op", `[{"path":"/email","value":"x"}]`},
		{"unknown move source", `[{"op":"move","from":"/nope","path":"/email"}]`},
		{"failing test op", `[{"op":"test","path":"/firstName","value":"Someone"}]`},
		{"wrong value type", `[{"op":"replace","path":"/firstName","value":7}]`},
		{"bad date", `[{"op":"replace","path":"/birthDate","value":"2000-01-01"}]`},
		{"null patch", `null`},
		{"empty body", ``},
		{"add without value", `[{"op":"add","path":"/address"}]`},
		{"replace without value", `[{"op":"replace","path":"/firstName"}]`},
		{"test without value", `[{"op":"test","path":"/firstName"}]`},
		{"move without from", `[{"op":"move","path":"/address"}]`},
		{"copy without from", `[{"op":"copy","path":"/lastName"}]`},
		{"unknown op", `[{"op":"merge","path":"/address","value":"x"}]`},
		{"second op invalid", `[{"op":"replace","path":"/firstName","value":"X"},{"op":"replace","path":"/wrong","value":"x"}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := current
			_, err := applier.Apply(current, []byte(tt.patch))
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrPatchNotApplied))
			assert.Equal(t, before, current)
		})
	}
}
