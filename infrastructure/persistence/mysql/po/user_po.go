package po

import (
	"time"

	"userdir/domain/user"
)

// UserPO column sizes follow the user.Max*Length limits. The default _ci
// collation makes the email index case-insensitive, like user.SameEmail.
type UserPO struct {
	ID          uint64    `gorm:"primaryKey;autoIncrement"`
	Email       string    `gorm:"size:255;uniqueIndex;not null"`
	FirstName   string    `gorm:"size:100;not null"`
	LastName    string    `gorm:"size:100;not null"`
	BirthDate   time.Time `gorm:"type:date;index;not null"`
	Address     string    `gorm:"size:255"`
	PhoneNumber string    `gorm:"size:32"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}

func (UserPO) TableName() string {
	return "users"
}

func FromUserDomain(u *user.User) *UserPO {
	return &UserPO{
		ID:          u.ID(),
		Email:       u.Email(),
		FirstName:   u.FirstName(),
		LastName:    u.LastName(),
		BirthDate:   u.BirthDate().Time(),
		Address:     u.Address(),
		PhoneNumber: u.PhoneNumber(),
		CreatedAt:   u.CreatedAt(),
		UpdatedAt:   u.UpdatedAt(),
	}
}

// ToDomain DATE columns come back as midnight in the connection location;
// only the calendar date is kept.
func (po *UserPO) ToDomain() *user.User {
	return user.RebuildFromDTO(user.ReconstructionDTO{
		ID:          po.ID,
		Email:       po.Email,
		FirstName:   po.FirstName,
		LastName:    po.LastName,
		BirthDate:   user.DateOf(po.BirthDate),
		Address:     po.Address,
		PhoneNumber: po.PhoneNumber,
		CreatedAt:   po.CreatedAt,
		UpdatedAt:   po.UpdatedAt,
	})
}
