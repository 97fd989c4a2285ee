package user

import (
	"userdir/domain/user"
)

// UserDTO external representation of a user; also the patchable document.
type UserDTO struct {
	Email       string    `json:"email"`
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	BirthDate   user.Date `json:"birthDate"`
	Address     string    `json:"address"`
	PhoneNumber string    `json:"phoneNumber"`
}

// DateRangeDTO birth date search request
type DateRangeDTO struct {
	From user.Date `json:"from"`
	To   user.Date `json:"to"`
}
