package postgres

import (
	"context"
	"time"

	"todo/internal/domain/entity"
	domainerrors "todo/internal/domain/errors"
	"todo/internal/domain/repository"
	"todo/internal/errors"
	"todo/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

// userRepository implements repository.UserRepository on the 'users' table.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return repo.findByEmail(repo.db.WithContext(ctx), email)
}

func (repo *userRepository) findByEmail(db *gorm.DB, email string) (*entity.User, error) {
	var userM model.UserModel
	if err := db.Where("email = ?", email).First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find user by email")
	}

	return toUserDomain(&userM), nil
}

func (repo *userRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("email = ?", email).
		Limit(1).
		Count(&count).Error; err != nil {
		return false, domainerrors.NewDatabaseExecuteError(err, "failed to check user email")
	}

	return count > 0, nil
}

func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)
	if userM.ID == uuid.Nil {
		userM.ID = newID()
	}

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrEmailTaken.WrapMessage("failed to create user")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WithDetails("missing required user information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// CreateIfAbsent inserts with ON CONFLICT (email) DO NOTHING and falls back
// to reading the row that won the race. The re-read is pinned to the primary.
func (repo *userRepository) CreateIfAbsent(ctx context.Context, user *entity.User) (*entity.User, bool, error) {
	userM := fromUserDomain(user)
	if userM.ID == uuid.Nil {
		userM.ID = newID()
	}

	result := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "email"}},
			DoNothing: true,
		}).
		Create(userM)
	if result.Error != nil {
		return nil, false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to create user")
	}

	if result.RowsAffected == 1 {
		return toUserDomain(userM), true, nil
	}

	existing, err := repo.findByEmail(repo.db.WithContext(ctx).Clauses(dbresolver.Write), user.Email)
	if err != nil {
		return nil, false, errors.WithMessage(err, "re-read user after insert conflict")
	}

	return existing, false, nil
}

func (repo *userRepository) UpdatePasswordHash(ctx context.Context, id uuid.UUID, passwordHash string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"password_hash": passwordHash,
			"updated_at":    time.Now(),
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update password")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

func (repo *userRepository) UpdateAvatarIfEmpty(ctx context.Context, id uuid.UUID, avatarURL string) (bool, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ? AND (avatar_url IS NULL OR avatar_url = '')", id).
		Updates(map[string]any{
			"avatar_url": avatarURL,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to update avatar")
	}

	return result.RowsAffected > 0, nil
}

func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:           data.ID,
		Email:        data.Email,
		Name:         data.Name,
		PasswordHash: data.PasswordHash,
		AvatarURL:    data.AvatarURL,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		ID:           data.ID,
		Email:        data.Email,
		Name:         data.Name,
		PasswordHash: data.PasswordHash,
		AvatarURL:    data.AvatarURL,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// newID returns a time-ordered UUIDv7, falling back to v4 if the clock source fails.
func newID() uuid.UUID {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New()
	}

	return id
}
