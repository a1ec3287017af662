package memory

import (
	"context"
	"time"

	"todo/internal/domain/entity"
	"todo/internal/domain/repository"

	"github.com/google/uuid"
)

type resetTicketRepository struct {
	store *Store
	inTx  bool
}

// NewResetTicketRepository returns a ResetTicketRepository over store.
func NewResetTicketRepository(store *Store) repository.ResetTicketRepository {
	return &resetTicketRepository{store: store}
}

func (repo *resetTicketRepository) Create(_ context.Context, ticket *entity.ResetTicket) error {
	repo.store.do(repo.inTx, func(st *state) {
		if ticket.ID == uuid.Nil {
			ticket.ID = newID()
		}
		if ticket.CreatedAt.IsZero() {
			ticket.CreatedAt = time.Now()
		}
		st.tickets[ticket.ID] = *ticket
	})

	return nil
}

func (repo *resetTicketRepository) FindByEmailAndHash(_ context.Context, email, tokenHash string) (*entity.ResetTicket, error) {
	var found *entity.ResetTicket
	repo.store.do(repo.inTx, func(st *state) {
		for _, t := range st.tickets {
			if t.Email == email && t.TokenHash == tokenHash {
				match := t
				found = &match

				return
			}
		}
	})
	if found == nil {
		return nil, repository.ErrResetTicketNotFound
	}

	return found, nil
}

func (repo *resetTicketRepository) DeleteByEmail(_ context.Context, email string) (int64, error) {
	var n int64
	repo.store.do(repo.inTx, func(st *state) {
		for id, t := range st.tickets {
			if t.Email == email {
				delete(st.tickets, id)
				n++
			}
		}
	})

	return n, nil
}

func (repo *resetTicketRepository) DeleteExpiredBefore(_ context.Context, cutoff time.Time) (int64, error) {
	var n int64
	repo.store.do(repo.inTx, func(st *state) {
		for id, t := range st.tickets {
			if t.ExpiresAt.Before(cutoff) {
				delete(st.tickets, id)
				n++
			}
		}
	})

	return n, nil
}
