package postgres

import (
	"context"

	"fittrack/internal/domain/entity"
	domainerrors "fittrack/internal/domain/errors"
	"fittrack/internal/domain/repository"
	"fittrack/internal/errors"
	"fittrack/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// accountRepository implements the repository.AccountRepository interface using GORM.
type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository is the constructor for accountRepository.
// It returns the repository as a repository.AccountRepository interface, adhering to dependency inversion.
func NewAccountRepository(db *gorm.DB) repository.AccountRepository {
	return &accountRepository{db: db}
}

// FindByID retrieves a single account by its surrogate identifier.
func (repo *accountRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	var accountM model.AccountModel

	err := repo.db.WithContext(ctx).
		Preload("Workouts").
		Where("id = ?", id).
		First(&accountM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find account by id")
	}

	return toAccountDomain(&accountM), nil
}

// FindByUsername retrieves a single account by its unique username.
func (repo *accountRepository) FindByUsername(ctx context.Context, username string) (*entity.Account, error) {
	var accountM model.AccountModel

	err := repo.db.WithContext(ctx).
		Preload("Workouts").
		Where("username = ?", username).
		First(&accountM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find account by username")
	}

	return toAccountDomain(&accountM), nil
}

// FindByEmail retrieves a single account by its unique email address.
func (repo *accountRepository) FindByEmail(ctx context.Context, email string) (*entity.Account, error) {
	var accountM model.AccountModel

	err := repo.db.WithContext(ctx).
		Preload("Workouts").
		Where("email = ?", email).
		First(&accountM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find account by email")
	}

	return toAccountDomain(&accountM), nil
}

// Insert persists a new account. The unique indexes decide any race the
// service-level pre-check missed; their violations come back as the
// taken-key domain errors.
func (repo *accountRepository) Insert(ctx context.Context, account *entity.Account) error {
	accountM := fromAccountDomain(account)
	if accountM.ID == uuid.Nil {
		accountM.ID = uuid.New()
	}

	if err := repo.db.WithContext(ctx).Create(accountM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return uniqueViolationError(err)
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to insert account")
	}

	account.ID = accountM.ID
	account.CreatedAt = accountM.CreatedAt
	account.UpdatedAt = accountM.UpdatedAt

	return nil
}

// UpdateByUsername applies fields to the account identified by
// oldUsername and returns the updated record. The update is a single
// statement, so it either fully applies or not at all.
func (repo *accountRepository) UpdateByUsername(ctx context.Context, oldUsername string, fields repository.AccountFields) (*entity.Account, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.AccountModel{}).
		Where("username = ?", oldUsername).
		Updates(map[string]any{
			"username": fields.Username,
			"email":    fields.Email,
			"first":    fields.First,
			"last":     fields.Last,
			"weight":   fields.Weight,
			"admin":    fields.Admin,
		})
	if err := result.Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return nil, uniqueViolationError(err)
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to update account")
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrAccountNotFound
	}

	return repo.FindByUsername(ctx, fields.Username)
}

// DeleteByUsername removes the account matching username.
func (repo *accountRepository) DeleteByUsername(ctx context.Context, username string) error {
	result := repo.db.WithContext(ctx).
		Where("username = ?", username).
		Delete(&model.AccountModel{})
	if err := result.Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete account")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAccountNotFound
	}

	return nil
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

// toAccountDomain converts a GORM AccountModel to a domain Account entity.
func toAccountDomain(data *model.AccountModel) *entity.Account {
	if data == nil {
		return nil
	}

	workouts := make([]entity.Workout, 0, len(data.Workouts))
	for _, w := range data.Workouts {
		workouts = append(workouts, entity.Workout{ID: w.ID, AccountID: w.AccountID})
	}

	return &entity.Account{
		ID:           data.ID,
		Username:     data.Username,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		First:        data.First,
		Last:         data.Last,
		Weight:       data.Weight,
		Admin:        data.Admin,
		Workouts:     workouts,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// fromAccountDomain converts a domain Account entity to a GORM AccountModel for persistence.
func fromAccountDomain(data *entity.Account) *model.AccountModel {
	if data == nil {
		return nil
	}

	workouts := make([]model.WorkoutModel, 0, len(data.Workouts))
	for _, w := range data.Workouts {
		workouts = append(workouts, model.WorkoutModel{ID: w.ID, AccountID: w.AccountID})
	}

	return &model.AccountModel{
		ID:           data.ID,
		Username:     data.Username,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		First:        data.First,
		Last:         data.Last,
		Weight:       data.Weight,
		Admin:        data.Admin,
		Workouts:     workouts,
	}
}
