package user

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"userdir/domain/user"
)

func TestUserValidatorMessages(t *testing.T) {
	v := NewUserValidator(18, fixedClock)

	tests := []struct {
		name   string
		mutate func(*UserDTO)
		want   string
	}{
		{"valid", func(*UserDTO) {}, ""},
		{"blank email", func(d *UserDTO) { d.Email = "  " }, "email - Should not be empty;"},
		{"malformed email", func(d *UserDTO) { d.Email = "a@" }, "email - must be a well-formed email address;"},
		{"missing names", func(d *UserDTO) { d.FirstName, d.LastName = "", "" },
			"firstName - Should not be empty;lastName - Should not be empty;"},
		{"missing birth date", func(d *UserDTO) { d.BirthDate = user.Date{} }, "birthDate - Should not be empty;"},
		{"born today", func(d *UserDTO) { d.BirthDate = user.DateOf(today) },
			"birthDate - date has to be in past;birthDate - You are too young!!!;"},
		{"one day short of 18", func(d *UserDTO) { d.BirthDate = user.NewDate(2006, time.June, 16) },
			"birthDate - You are too young!!!;"},
		{"exactly 18", func(d *UserDTO) { d.BirthDate = user.NewDate(2006, time.June, 15) }, ""},
		{"address and phone optional", func(d *UserDTO) { d.Address, d.PhoneNumber = "", "" }, ""},
		{"first name at limit", func(d *UserDTO) { d.FirstName = strings.Repeat("a", user.MaxNameLength) }, ""},
		{"first name too long", func(d *UserDTO) { d.FirstName = strings.Repeat("a", user.MaxNameLength+1) },
			"firstName - Should not be longer than 100 characters;"},
		{"multibyte name counts characters", func(d *UserDTO) { d.LastName = strings.Repeat("é", user.MaxNameLength) }, ""},
		{"phone too long", func(d *UserDTO) { d.PhoneNumber = strings.Repeat("1", user.MaxPhoneLength+1) },
			"phoneNumber - Should not be longer than 32 characters;"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dto := validUser("a@x.com")
			tt.mutate(&dto)
			assert.Equal(t, tt.want, v.Validate(dto).Error())
		})
	}
}

func TestUserValidatorMinAgeIsConfigurable(t *testing.T) {
	dto := validUser("a@x.com")
	dto.BirthDate = user.NewDate(2004, time.January, 1)

	assert.Empty(t, NewUserValidator(18, fixedClock).Validate(dto))
	assert.Equal(t, "birthDate - You are too young!!!;", NewUserValidator(21, fixedClock).Validate(dto).Error())
}

func TestDateRangeValidatorMessages(t *testing.T) {
	v := NewDateRangeValidator()
	day := user.NewDate(2000, time.January, 1)

	tests := []struct {
		name string
		dr   DateRangeDTO
		want string
	}{
		{"ordered", DateRangeDTO{From: day, To: day.AddDays(1)}, ""},
		{"equal", DateRangeDTO{From: day, To: day}, "from - 'From' date should be before 'to' date;"},
		{"inverted", DateRangeDTO{From: day, To: day.AddDays(-1)}, "from - 'From' date should be before 'to' date;"},
		{"missing", DateRangeDTO{}, "from - Should not be empty;to - Should not be empty;"},
		{"missing to", DateRangeDTO{From: day}, "to - Should not be empty;"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, v.Validate(tt.dr).Error())
		})
	}
}
