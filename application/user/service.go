package user

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"userdir/domain/shared"
	"userdir/domain/user"
	"userdir/pkg/logger"
	"userdir/pkg/metrics"
)

// ApplicationService User application service - coordinates the create, update,
// patch, delete and search flows. It holds no per-request state.
type ApplicationService struct {
	userRepo   user.Repository
	validators Validators
	patcher    *PatchApplier
	metrics    *metrics.Metrics
}

// NewApplicationService Create user application service. m may be nil.
func NewApplicationService(
	userRepo user.Repository,
	validators Validators,
	m *metrics.Metrics,
) *ApplicationService {
	return &ApplicationService{
		userRepo:   userRepo,
		validators: validators,
		patcher:    NewPatchApplier(),
		metrics:    m,
	}
}

// CreateUser Create user
func (s *ApplicationService) CreateUser(ctx context.Context, dto UserDTO) (*UserDTO, error) {
	if errs := s.validators.User.Validate(dto); len(errs) > 0 {
		return nil, s.fail(ctx, "create", user.NewInvalidDataError(errs))
	}

	existing, err := s.userRepo.FindByEmail(ctx, dto.Email)
	if err != nil {
		return nil, s.fail(ctx, "create", err)
	}
	if existing != nil {
		return nil, s.fail(ctx, "create", user.NewUserAlreadyExistsError(dto.Email))
	}

	created, err := s.userRepo.Create(ctx, user.NewUser(toProfile(dto)))
	if err != nil {
		return nil, s.fail(ctx, "create", err)
	}

	s.metrics.IncrementUsersCreated()
	logger.FromContext(ctx).Info("user created",
		zap.Uint64("user_id", created.ID()),
		zap.String("email", created.Email()))

	result := toDTO(created)
	return &result, nil
}

// ListUsers all users in storage order
func (s *ApplicationService) ListUsers(ctx context.Context) ([]UserDTO, error) {
	users, err := s.userRepo.FindAll(ctx)
	if err != nil {
		return nil, s.fail(ctx, "list", err)
	}
	return toDTOList(users), nil
}

// UpdateUser full replacement of the user stored under email
func (s *ApplicationService) UpdateUser(ctx context.Context, email string, dto UserDTO) (*UserDTO, error) {
	existing, err := s.lookup(ctx, email)
	if err != nil {
		return nil, s.fail(ctx, "update", err)
	}

	if errs := s.validators.User.Validate(dto); len(errs) > 0 {
		return nil, s.fail(ctx, "update", user.NewInvalidDataError(errs))
	}

	updated, err := s.replace(ctx, email, existing, dto)
	if err != nil {
		return nil, s.fail(ctx, "update", err)
	}

	s.metrics.IncrementUsersUpdated(metrics.ModeFull)
	return updated, nil
}

// PatchUser applies an RFC 6902 patch to the user stored under email.
// Looked up, patched, validated, persisted; the first failing stage ends the
// request and nothing is written.
func (s *ApplicationService) PatchUser(ctx context.Context, email string, patch []byte) (*UserDTO, error) {
	existing, err := s.lookup(ctx, email)
	if err != nil {
		return nil, s.fail(ctx, "patch", err)
	}

	candidate, err := s.patcher.Apply(toDTO(existing), patch)
	if err != nil {
		return nil, s.fail(ctx, "patch", user.NewUserNotUpdatedError(email, err))
	}

	if errs := s.validators.User.Validate(candidate); len(errs) > 0 {
		return nil, s.fail(ctx, "patch", user.NewInvalidDataError(errs))
	}

	updated, err := s.replace(ctx, email, existing, candidate)
	if err != nil {
		return nil, s.fail(ctx, "patch", err)
	}

	s.metrics.IncrementUsersUpdated(metrics.ModePatch)
	return updated, nil
}

// DeleteUser Delete user
func (s *ApplicationService) DeleteUser(ctx context.Context, email string) error {
	if _, err := s.lookup(ctx, email); err != nil {
		return s.fail(ctx, "delete", err)
	}
	if err := s.userRepo.Delete(ctx, email); err != nil {
		return s.fail(ctx, "delete", err)
	}

	s.metrics.IncrementUsersDeleted()
	logger.FromContext(ctx).Info("user deleted", zap.String("email", email))
	return nil
}

// SearchByBirthDateRange users born within [from, to], both ends inclusive
func (s *ApplicationService) SearchByBirthDateRange(ctx context.Context, dto DateRangeDTO) ([]UserDTO, error) {
	if errs := s.validators.DateRange.Validate(dto); len(errs) > 0 {
		return nil, s.fail(ctx, "search", user.NewInvalidDataError(errs))
	}

	users, err := s.userRepo.FindByBirthDateRange(ctx, toDateRange(dto))
	if err != nil {
		return nil, s.fail(ctx, "search", err)
	}

	s.metrics.IncrementSearches()
	return toDTOList(users), nil
}

func (s *ApplicationService) lookup(ctx context.Context, email string) (*user.User, error) {
	u, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, user.NewUserNotFoundError(email)
	}
	return u, nil
}

// replace persists a validated candidate over the user stored under key.
// The candidate may carry a new email; it must not belong to another user.
func (s *ApplicationService) replace(ctx context.Context, key string, existing *user.User, candidate UserDTO) (*UserDTO, error) {
	newEmail := strings.TrimSpace(candidate.Email)
	if !user.SameEmail(newEmail, existing.Email()) {
		owner, err := s.userRepo.FindByEmail(ctx, newEmail)
		if err != nil {
			return nil, err
		}
		if owner != nil {
			return nil, user.NewUserAlreadyExistsError(newEmail)
		}
	}

	next := existing.Clone()
	next.ReplaceProfile(toProfile(candidate))

	updated, err := s.userRepo.Update(ctx, key, next)
	if err != nil {
		return nil, err
	}

	fields := []zap.Field{zap.Uint64("user_id", updated.ID()), zap.String("email", updated.Email())}
	if updated.Email() != key {
		fields = append(fields, zap.String("previous_email", key))
	}
	logger.FromContext(ctx).Info("user updated", fields...)

	result := toDTO(updated)
	return &result, nil
}

// fail records the failure and hands err back unchanged.
func (s *ApplicationService) fail(ctx context.Context, operation string, err error) error {
	kind := failureKind(err)
	s.metrics.RecordFailure(operation, kind)

	log := logger.FromContext(ctx)
	if kind == "internal" {
		log.Error("user operation failed", zap.String("operation", operation), zap.Error(err))
	} else {
		log.Debug("user operation rejected",
			zap.String("operation", operation),
			zap.String("kind", kind),
			zap.String("reason", err.Error()))
	}
	return err
}

func failureKind(err error) string {
	switch {
	case errors.Is(err, shared.ErrInvalidInput):
		return "invalid_data"
	case errors.Is(err, shared.ErrNotFound):
		return "not_found"
	case errors.Is(err, shared.ErrConflict):
		return "already_exists"
	case errors.Is(err, shared.ErrNotUpdated):
		return "not_updated"
	default:
		return "internal"
	}
}
