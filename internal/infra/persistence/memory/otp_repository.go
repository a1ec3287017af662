package memory

import (
	"context"
	"time"

	"todo/internal/domain/entity"
	"todo/internal/domain/repository"

	"github.com/google/uuid"
)

type otpRepository struct {
	store *Store
	inTx  bool
}

// NewOtpRepository returns an OtpRepository over store.
func NewOtpRepository(store *Store) repository.OtpRepository {
	return &otpRepository{store: store}
}

// AcquireEmailLock is satisfied by the transaction holding the store lock.
func (repo *otpRepository) AcquireEmailLock(context.Context, string) error {
	return nil
}

func (repo *otpRepository) Create(_ context.Context, otp *entity.Otp) error {
	repo.store.do(repo.inTx, func(st *state) {
		if otp.ID == uuid.Nil {
			otp.ID = newID()
		}
		if otp.CreatedAt.IsZero() {
			otp.CreatedAt = time.Now()
		}
		st.otps[otp.ID] = *otp
	})

	return nil
}

func (repo *otpRepository) FindByEmailAndCode(_ context.Context, email, code string) (*entity.Otp, error) {
	var found *entity.Otp
	repo.store.do(repo.inTx, func(st *state) {
		for _, o := range st.otps {
			if o.Email != email || o.Code != code {
				continue
			}
			if found == nil || o.CreatedAt.After(found.CreatedAt) {
				match := o
				found = &match
			}
		}
	})
	if found == nil {
		return nil, repository.ErrOtpNotFound
	}

	return found, nil
}

func (repo *otpRepository) Delete(_ context.Context, id uuid.UUID) error {
	repo.store.do(repo.inTx, func(st *state) {
		delete(st.otps, id)
	})

	return nil
}

func (repo *otpRepository) DeleteByEmail(_ context.Context, email string) (int64, error) {
	var n int64
	repo.store.do(repo.inTx, func(st *state) {
		for id, o := range st.otps {
			if o.Email == email {
				delete(st.otps, id)
				n++
			}
		}
	})

	return n, nil
}

func (repo *otpRepository) DeleteExpiredBefore(_ context.Context, cutoff time.Time) (int64, error) {
	var n int64
	repo.store.do(repo.inTx, func(st *state) {
		for id, o := range st.otps {
			if o.ExpiresAt.Before(cutoff) {
				delete(st.otps, id)
				n++
			}
		}
	})

	return n, nil
}
