package mysql

import (
	"context"
	"errors"
	"time"

	"userdir/domain/shared"
	"userdir/domain/user"
	"userdir/infrastructure/persistence"
	"userdir/infrastructure/persistence/mysql/po"
	"userdir/infrastructure/persistence/specification"

	mysqldriver "github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// mysqlDuplicateEntry ER_DUP_ENTRY
const mysqlDuplicateEntry = 1062

type UserRepository struct {
	db         *gorm.DB
	translator *specification.UserTranslator
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db, translator: specification.NewUserTranslator()}
}

func (r *UserRepository) getDB(ctx context.Context) *gorm.DB {
	if tx := persistence.TxFromContext(ctx); tx != nil {
		return tx
	}
	return r.db.WithContext(ctx)
}

func isDuplicateKeyError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var mysqlErr *mysqldriver.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDuplicateEntry
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	return r.findOneBySpecification(ctx, user.NewByEmailSpecification(email))
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) (*user.User, error) {
	userPO := po.FromUserDomain(u)
	userPO.ID = 0

	if err := r.getDB(ctx).Create(userPO).Error; err != nil {
		if isDuplicateKeyError(err) {
			return nil, user.NewUserAlreadyExistsError(userPO.Email)
		}
		return nil, err
	}
	return userPO.ToDomain(), nil
}

// Update locks the row found under email and rewrites it, email included,
// in one transaction.
func (r *UserRepository) Update(ctx context.Context, email string, u *user.User) (*user.User, error) {
	var updated *user.User

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txCtx := persistence.ContextWithTx(ctx, tx)

		var current po.UserPO
		err := r.getDB(txCtx).
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("email = ?", email).
			First(&current).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return user.NewUserNotFoundError(email)
			}
			return err
		}

		next := po.FromUserDomain(u)
		next.ID = current.ID
		next.CreatedAt = current.CreatedAt
		next.UpdatedAt = time.Now()

		result := r.getDB(txCtx).Model(&po.UserPO{}).
			Where("id = ?", current.ID).
			Updates(map[string]interface{}{
				"email":        next.Email,
				"first_name":   next.FirstName,
				"last_name":    next.LastName,
				"birth_date":   next.BirthDate,
				"address":      next.Address,
				"phone_number": next.PhoneNumber,
				"updated_at":   next.UpdatedAt,
			})
		if result.Error != nil {
			if isDuplicateKeyError(result.Error) {
				return user.NewUserAlreadyExistsError(next.Email)
			}
			return result.Error
		}

		updated = next.ToDomain()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (r *UserRepository) Delete(ctx context.Context, email string) error {
	result := r.getDB(ctx).Where("email = ?", email).Delete(&po.UserPO{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return user.NewUserNotFoundError(email)
	}
	return nil
}

func (r *UserRepository) FindAll(ctx context.Context) ([]*user.User, error) {
	var userPOs []po.UserPO
	if err := r.getDB(ctx).Order("id ASC").Find(&userPOs).Error; err != nil {
		return nil, err
	}
	return toDomainList(userPOs), nil
}

func (r *UserRepository) FindByBirthDateRange(ctx context.Context, dr user.DateRange) ([]*user.User, error) {
	return r.FindBySpecification(ctx, user.NewBirthDateRangeSpecification(dr))
}

// FindBySpecification results in creation order
func (r *UserRepository) FindBySpecification(ctx context.Context, spec shared.Specification[*user.User]) ([]*user.User, error) {
	scope, err := r.translator.Translate(spec)
	if err != nil {
		return nil, err
	}

	var userPOs []po.UserPO
	if err := r.getDB(ctx).Scopes(scope).Order("id ASC").Find(&userPOs).Error; err != nil {
		return nil, err
	}
	return toDomainList(userPOs), nil
}

func (r *UserRepository) findOneBySpecification(ctx context.Context, spec shared.Specification[*user.User]) (*user.User, error) {
	scope, err := r.translator.Translate(spec)
	if err != nil {
		return nil, err
	}

	var userPO po.UserPO
	result := r.getDB(ctx).Scopes(scope).First(&userPO)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return userPO.ToDomain(), nil
}

func toDomainList(userPOs []po.UserPO) []*user.User {
	users := make([]*user.User, len(userPOs))
	for i := range userPOs {
		users[i] = userPOs[i].ToDomain()
	}
	return users
}

var _ user.Repository = (*UserRepository)(nil)
