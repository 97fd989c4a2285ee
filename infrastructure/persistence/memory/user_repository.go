package memory

import (
	"context"
	"sync"
	"time"

	"userdir/domain/shared"
	"userdir/domain/user"
)

// UserRepository in-process user store. Users are kept in creation order and
// handed out as clones.
type UserRepository struct {
	mu     sync.RWMutex
	users  []*user.User
	nextID uint64
}

func NewUserRepository() *UserRepository {
	return &UserRepository{users: make([]*user.User, 0), nextID: 1}
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if i := r.indexOf(ctx, email); i >= 0 {
		return r.users[i].Clone(), nil
	}
	return nil, nil
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) (*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.indexOf(ctx, u.Email()) >= 0 {
		return nil, user.NewUserAlreadyExistsError(u.Email())
	}

	stored := withID(u, r.nextID)
	r.nextID++
	r.users = append(r.users, stored)
	return stored.Clone(), nil
}

// Update keeps the stored id, creation time and position.
func (r *UserRepository) Update(ctx context.Context, email string, u *user.User) (*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(ctx, email)
	if i < 0 {
		return nil, user.NewUserNotFoundError(email)
	}
	if !user.SameEmail(u.Email(), email) {
		if j := r.indexOf(ctx, u.Email()); j >= 0 && j != i {
			return nil, user.NewUserAlreadyExistsError(u.Email())
		}
	}

	current := r.users[i]
	stored := user.RebuildFromDTO(user.ReconstructionDTO{
		ID:          current.ID(),
		Email:       u.Email(),
		FirstName:   u.FirstName(),
		LastName:    u.LastName(),
		BirthDate:   u.BirthDate(),
		Address:     u.Address(),
		PhoneNumber: u.PhoneNumber(),
		CreatedAt:   current.CreatedAt(),
		UpdatedAt:   time.Now(),
	})
	r.users[i] = stored
	return stored.Clone(), nil
}

func (r *UserRepository) Delete(ctx context.Context, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(ctx, email)
	if i < 0 {
		return user.NewUserNotFoundError(email)
	}
	r.users = append(r.users[:i], r.users[i+1:]...)
	return nil
}

func (r *UserRepository) FindAll(ctx context.Context) ([]*user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*user.User, len(r.users))
	for i, u := range r.users {
		result[i] = u.Clone()
	}
	return result, nil
}

func (r *UserRepository) FindByBirthDateRange(ctx context.Context, dr user.DateRange) ([]*user.User, error) {
	return r.findBySpecification(ctx, user.NewBirthDateRangeSpecification(dr))
}

func (r *UserRepository) findBySpecification(ctx context.Context, spec shared.Specification[*user.User]) ([]*user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*user.User, 0)
	for _, u := range r.users {
		if spec.IsSatisfiedBy(ctx, u) {
			result = append(result, u.Clone())
		}
	}
	return result, nil
}

// indexOf caller holds the lock
func (r *UserRepository) indexOf(ctx context.Context, email string) int {
	spec := user.NewByEmailSpecification(email)
	for i, u := range r.users {
		if spec.IsSatisfiedBy(ctx, u) {
			return i
		}
	}
	return -1
}

func withID(u *user.User, id uint64) *user.User {
	return user.RebuildFromDTO(user.ReconstructionDTO{
		ID:          id,
		Email:       u.Email(),
		FirstName:   u.FirstName(),
		LastName:    u.LastName(),
		BirthDate:   u.BirthDate(),
		Address:     u.Address(),
		PhoneNumber: u.PhoneNumber(),
		CreatedAt:   u.CreatedAt(),
		UpdatedAt:   u.UpdatedAt(),
	})
}

var _ user.Repository = (*UserRepository)(nil)
