package memory

import (
	"context"
	"time"

	"todo/internal/domain/entity"
	domainerrors "todo/internal/domain/errors"
	"todo/internal/domain/repository"

	"github.com/google/uuid"
)

type userRepository struct {
	store *Store
	inTx  bool
}

// NewUserRepository returns a UserRepository over store.
func NewUserRepository(store *Store) repository.UserRepository {
	return &userRepository{store: store}
}

func (repo *userRepository) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	var (
		found *entity.User
		err   error
	)
	repo.store.do(repo.inTx, func(st *state) {
		id, ok := st.usersByEmail[email]
		if !ok {
			err = repository.ErrUserNotFound

			return
		}
		found = cloneUser(st.users[id])
	})

	return found, err
}

func (repo *userRepository) ExistsByEmail(_ context.Context, email string) (bool, error) {
	var exists bool
	repo.store.do(repo.inTx, func(st *state) {
		_, exists = st.usersByEmail[email]
	})

	return exists, nil
}

func (repo *userRepository) Create(_ context.Context, user *entity.User) error {
	var err error
	repo.store.do(repo.inTx, func(st *state) {
		if _, taken := st.usersByEmail[user.Email]; taken {
			err = domainerrors.ErrEmailTaken.WrapMessage("failed to create user")

			return
		}
		insertUser(st, user)
	})

	return err
}

func (repo *userRepository) CreateIfAbsent(_ context.Context, user *entity.User) (*entity.User, bool, error) {
	var (
		stored  *entity.User
		created bool
	)
	repo.store.do(repo.inTx, func(st *state) {
		if id, taken := st.usersByEmail[user.Email]; taken {
			stored = cloneUser(st.users[id])

			return
		}
		insertUser(st, user)
		stored = cloneUser(st.users[user.ID])
		created = true
	})

	return stored, created, nil
}

func (repo *userRepository) UpdatePasswordHash(_ context.Context, id uuid.UUID, passwordHash string) error {
	var err error
	repo.store.do(repo.inTx, func(st *state) {
		u, ok := st.users[id]
		if !ok {
			err = repository.ErrUserNotFound

			return
		}
		u.PasswordHash = &passwordHash
		u.UpdatedAt = time.Now()
		st.users[id] = u
	})

	return err
}

func (repo *userRepository) UpdateAvatarIfEmpty(_ context.Context, id uuid.UUID, avatarURL string) (bool, error) {
	var updated bool
	repo.store.do(repo.inTx, func(st *state) {
		u, ok := st.users[id]
		if !ok || u.HasAvatar() {
			return
		}
		u.AvatarURL = &avatarURL
		u.UpdatedAt = time.Now()
		st.users[id] = u
		updated = true
	})

	return updated, nil
}

func insertUser(st *state, user *entity.User) {
	if user.ID == uuid.Nil {
		user.ID = newID()
	}
	now := time.Now()
	if user.CreatedAt.IsZero() {
		user.CreatedAt = now
	}
	user.UpdatedAt = now

	st.users[user.ID] = *cloneUser(*user)
	st.usersByEmail[user.Email] = user.ID
}

func cloneUser(u entity.User) *entity.User {
	if u.PasswordHash != nil {
		hash := *u.PasswordHash
		u.PasswordHash = &hash
	}
	if u.AvatarURL != nil {
		avatar := *u.AvatarURL
		u.AvatarURL = &avatar
	}

	return &u
}
