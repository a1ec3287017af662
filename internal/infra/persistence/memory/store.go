// Package memory is an in-process implementation of the repositories, selected
// with storage.driver "memory". Transactions hold the store lock for their whole
// duration and restore a snapshot when they fail.
package memory

import (
	"context"
	"maps"
	"sync"

	"todo/internal/domain/entity"
	"todo/internal/domain/repository"

	"github.com/google/uuid"
)

type state struct {
	users        map[uuid.UUID]entity.User
	usersByEmail map[string]uuid.UUID
	otps         map[uuid.UUID]entity.Otp
	tickets      map[uuid.UUID]entity.ResetTicket
}

func newState() *state {
	return &state{
		users:        make(map[uuid.UUID]entity.User),
		usersByEmail: make(map[string]uuid.UUID),
		otps:         make(map[uuid.UUID]entity.Otp),
		tickets:      make(map[uuid.UUID]entity.ResetTicket),
	}
}

func (s *state) clone() *state {
	return &state{
		users:        maps.Clone(s.users),
		usersByEmail: maps.Clone(s.usersByEmail),
		otps:         maps.Clone(s.otps),
		tickets:      maps.Clone(s.tickets),
	}
}

// Store holds every table of the auth subsystem.
type Store struct {
	mu    sync.Mutex
	state *state
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{state: newState()}
}

// do runs fn against the current state. Repositories bound to a transaction
// already hold the lock.
func (s *Store) do(inTx bool, fn func(st *state)) {
	if !inTx {
		s.mu.Lock()
		defer s.mu.Unlock()
	}

	fn(s.state)
}

// OtpCount returns how many OTP rows exist for email.
func (s *Store) OtpCount(email string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for _, o := range s.state.otps {
		if o.Email == email {
			n++
		}
	}

	return n
}

// UserCount returns the number of stored users.
func (s *Store) UserCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.state.users)
}

type transactionManager struct {
	store *Store
}

// NewTransactionManager returns a TransactionManager over store.
func NewTransactionManager(store *Store) repository.TransactionManager {
	return &transactionManager{store: store}
}

func (tm *transactionManager) Execute(ctx context.Context, fn func(txRepoFactory repository.RepositoryFactory) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	tm.store.mu.Lock()
	defer tm.store.mu.Unlock()

	snapshot := tm.store.state.clone()
	defer func() {
		if r := recover(); r != nil {
			tm.store.state = snapshot
			panic(r)
		}
	}()

	if err := fn(&repositoryFactory{store: tm.store}); err != nil {
		tm.store.state = snapshot

		return err
	}

	return nil
}

type repositoryFactory struct {
	store *Store
}

func (f *repositoryFactory) NewUserRepository() repository.UserRepository {
	return &userRepository{store: f.store, inTx: true}
}

func (f *repositoryFactory) NewOtpRepository() repository.OtpRepository {
	return &otpRepository{store: f.store, inTx: true}
}

func (f *repositoryFactory) NewResetTicketRepository() repository.ResetTicketRepository {
	return &resetTicketRepository{store: f.store, inTx: true}
}

func newID() uuid.UUID {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New()
	}

	return id
}
