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

// resetTicketRepository implements repository.ResetTicketRepository.
type resetTicketRepository struct {
	db *gorm.DB
}

// NewResetTicketRepository is the constructor for resetTicketRepository.
func NewResetTicketRepository(db *gorm.DB) repository.ResetTicketRepository {
	return &resetTicketRepository{db: db}
}

func (repo *resetTicketRepository) Create(ctx context.Context, ticket *entity.ResetTicket) error {
	ticketM := &model.ResetTicketModel{
		ID:        ticket.ID,
		Email:     ticket.Email,
		TokenHash: ticket.TokenHash,
		CreatedAt: ticket.CreatedAt,
		ExpiresAt: ticket.ExpiresAt,
	}
	if ticketM.ID == uuid.Nil {
		ticketM.ID = newID()
	}

	if err := repo.db.WithContext(ctx).Create(ticketM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create reset ticket")
	}

	ticket.ID = ticketM.ID
	ticket.CreatedAt = ticketM.CreatedAt

	return nil
}

func (repo *resetTicketRepository) FindByEmailAndHash(ctx context.Context, email, tokenHash string) (*entity.ResetTicket, error) {
	var ticketM model.ResetTicketModel
	err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("email = ? AND token_hash = ?", email, tokenHash).
		First(&ticketM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrResetTicketNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find reset ticket")
	}

	return &entity.ResetTicket{
		ID:        ticketM.ID,
		Email:     ticketM.Email,
		TokenHash: ticketM.TokenHash,
		CreatedAt: ticketM.CreatedAt,
		ExpiresAt: ticketM.ExpiresAt,
	}, nil
}

func (repo *resetTicketRepository) DeleteByEmail(ctx context.Context, email string) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("email = ?", email).
		Delete(&model.ResetTicketModel{})
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete reset tickets")
	}

	return result.RowsAffected, nil
}

func (repo *resetTicketRepository) DeleteExpiredBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("expires_at < ?", cutoff).
		Delete(&model.ResetTicketModel{})
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete expired reset tickets")
	}

	return result.RowsAffected, nil
}
