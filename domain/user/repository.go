package user

import "context"

// Repository User persistence port. Implementations:
//   - Create fails with NewUserAlreadyExistsError on a duplicate email
//   - Update and Delete fail with NewUserNotFoundError when email is absent
//   - returned users are detached copies
type Repository interface {
	// FindByEmail returns nil, nil when no user has this email.
	FindByEmail(ctx context.Context, email string) (*User, error)

	// Create persists a new user and returns it with its assigned id.
	Create(ctx context.Context, u *User) (*User, error)

	// Update replaces the user stored under email with u, email included.
	Update(ctx context.Context, email string, u *User) (*User, error)

	Delete(ctx context.Context, email string) error

	// FindAll returns users in creation order.
	FindAll(ctx context.Context) ([]*User, error)

	// FindByBirthDateRange returns users born within the closed range, in
	// creation order.
	FindByBirthDateRange(ctx context.Context, r DateRange) ([]*User, error)
}
