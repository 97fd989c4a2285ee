package user

import (
	"strings"
	"time"
)

// Profile the mutable attributes of a user, email included
type Profile struct {
	Email       string
	FirstName   string
	LastName    string
	BirthDate   Date
	Address     string
	PhoneNumber string
}

// User aggregate root of the directory.
// The email is the business identity: lookups, updates and deletes address a
// user by it. id is the storage surrogate key and is assigned on create.
type User struct {
	id          uint64
	email       string
	firstName   string
	lastName    string
	birthDate   Date
	address     string
	phoneNumber string
	createdAt   time.Time
	updatedAt   time.Time
}

// Attribute limits, mirrored by the users table columns.
const (
	MaxEmailLength   = 255
	MaxNameLength    = 100
	MaxAddressLength = 255
	MaxPhoneLength   = 32
)

// SameEmail addresses are matched without regard to letter case.
func SameEmail(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}

// NewUser builds a user that has not been persisted yet.
// Validation happens before this point, on the external representation.
func NewUser(p Profile) *User {
	now := time.Now()
	u := &User{createdAt: now, updatedAt: now}
	u.apply(p)
	return u
}

// ReplaceProfile overwrites every mutable attribute, email included.
func (u *User) ReplaceProfile(p Profile) {
	u.apply(p)
	u.updatedAt = time.Now()
}

func (u *User) apply(p Profile) {
	u.email = strings.TrimSpace(p.Email)
	u.firstName = p.FirstName
	u.lastName = p.LastName
	u.birthDate = p.BirthDate
	u.address = p.Address
	u.phoneNumber = p.PhoneNumber
}

func (u *User) ID() uint64           { return u.id }
func (u *User) Email() string        { return u.email }
func (u *User) FirstName() string    { return u.firstName }
func (u *User) LastName() string     { return u.lastName }
func (u *User) BirthDate() Date      { return u.birthDate }
func (u *User) Address() string      { return u.address }
func (u *User) PhoneNumber() string  { return u.phoneNumber }
func (u *User) CreatedAt() time.Time { return u.createdAt }
func (u *User) UpdatedAt() time.Time { return u.updatedAt }

// Profile snapshot of the mutable attributes
func (u *User) Profile() Profile {
	return Profile{
		Email:       u.email,
		FirstName:   u.firstName,
		LastName:    u.lastName,
		BirthDate:   u.birthDate,
		Address:     u.address,
		PhoneNumber: u.phoneNumber,
	}
}

// Clone returns an independent copy; repositories hand out clones so callers
// never share state with the store.
func (u *User) Clone() *User {
	c := *u
	return &c
}

// ReconstructionDTO rebuild data for repositories only
type ReconstructionDTO struct {
	ID          uint64
	Email       string
	FirstName   string
	LastName    string
	BirthDate   Date
	Address     string
	PhoneNumber string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// RebuildFromDTO restores a persisted user. Repository use only.
func RebuildFromDTO(dto ReconstructionDTO) *User {
	return &User{
		id:          dto.ID,
		email:       dto.Email,
		firstName:   dto.FirstName,
		lastName:    dto.LastName,
		birthDate:   dto.BirthDate,
		address:     dto.Address,
		phoneNumber: dto.PhoneNumber,
		createdAt:   dto.CreatedAt,
		updatedAt:   dto.UpdatedAt,
	}
}
