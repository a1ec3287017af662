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
	"gorm.io/plugin/dbresolver"
)

// otpRepository implements repository.OtpRepository on the 'otps' table.
type otpRepository struct {
	db *gorm.DB
}

// NewOtpRepository is the constructor for otpRepository.
func NewOtpRepository(db *gorm.DB) repository.OtpRepository {
	return &otpRepository{db: db}
}

// AcquireEmailLock takes a transaction-scoped advisory lock keyed by the email
// hash. Concurrent reset, verify and change calls for one email queue here.
func (repo *otpRepository) AcquireEmailLock(ctx context.Context, email string) error {
	if err := repo.db.WithContext(ctx).
		Exec("SELECT pg_advisory_xact_lock(hashtext(?))", "otp:"+email).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to acquire otp lock")
	}

	return nil
}

func (repo *otpRepository) Create(ctx context.Context, otp *entity.Otp) error {
	otpM := fromOtpDomain(otp)
	if otpM.ID == uuid.Nil {
		otpM.ID = newID()
	}

	if err := repo.db.WithContext(ctx).Create(otpM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create otp")
	}

	otp.ID = otpM.ID
	otp.CreatedAt = otpM.CreatedAt

	return nil
}

func (repo *otpRepository) FindByEmailAndCode(ctx context.Context, email, code string) (*entity.Otp, error) {
	var otpM model.OtpModel
	err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("email = ? AND code = ?", email, code).
		Order("created_at DESC").
		First(&otpM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOtpNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find otp")
	}

	return toOtpDomain(&otpM), nil
}

func (repo *otpRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.OtpModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete otp")
	}

	return nil
}

func (repo *otpRepository) DeleteByEmail(ctx context.Context, email string) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("email = ?", email).
		Delete(&model.OtpModel{})
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete otps by email")
	}

	return result.RowsAffected, nil
}

func (repo *otpRepository) DeleteExpiredBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("expires_at < ?", cutoff).
		Delete(&model.OtpModel{})
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete expired otps")
	}

	return result.RowsAffected, nil
}

func toOtpDomain(data *model.OtpModel) *entity.Otp {
	return &entity.Otp{
		ID:        data.ID,
		Email:     data.Email,
		Code:      data.Code,
		CreatedAt: data.CreatedAt,
		ExpiresAt: data.ExpiresAt,
	}
}

func fromOtpDomain(data *entity.Otp) *model.OtpModel {
	return &model.OtpModel{
		ID:        data.ID,
		Email:     data.Email,
		Code:      data.Code,
		CreatedAt: data.CreatedAt,
		ExpiresAt: data.ExpiresAt,
	}
}
