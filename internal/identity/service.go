package identity

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/taskflowhq/taskflow/internal/domain/user"
)

var (
	ErrDuplicateEmail     = errors.New("email already exists")
	ErrDuplicateUsername  = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// UserStore is the persistence surface the service needs. Both the postgres
// and the in-memory implementations satisfy it.
type UserStore interface {
	Create(ctx context.Context, u user.User) (user.User, error)
	GetByEmail(ctx context.Context, email string) (user.User, error)
	GetByUsername(ctx context.Context, username string) (user.User, error)
}

type Service struct {
	store UserStore
	log   *slog.Logger
}

func NewService(store UserStore, log *slog.Logger) *Service {
	return &Service{store: store, log: log}
}

// Register persists a new account after checking that the email and username
// are unused. The existence checks and the insert are not atomic: two
// concurrent registrations with the same email can both pass the check. The
// last writer wins the row; callers treat that window as acceptable.
func (s *Service) Register(ctx context.Context, u user.User) (user.User, error) {
	_, err := s.store.GetByEmail(ctx, u.Email)
	if err == nil {
		return user.User{}, ErrDuplicateEmail
	}
	if !errors.Is(err, user.ErrNotFound) {
		s.log.Error("registering user", "err", err)
		return user.User{}, err
	}

	_, err = s.store.GetByUsername(ctx, u.Username)
	if err == nil {
		return user.User{}, ErrDuplicateUsername
	}
	if !errors.Is(err, user.ErrNotFound) {
		s.log.Error("registering user", "err", err)
		return user.User{}, err
	}

	u.CreatedAt = time.Now().UTC()

	created, err := s.store.Create(ctx, u)
	if err != nil {
		s.log.Error("registering user", "err", err)
		return user.User{}, err
	}

	return created, nil
}

// Login verifies the digest sent by the client against the stored one by
// direct equality; the client hashes before transmission, the server never
// re-hashes. Unknown email and wrong digest are indistinguishable here.
func (s *Service) Login(ctx context.Context, email, passwordDigest string) (user.User, error) {
	found, err := s.store.GetByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, user.ErrNotFound) {
			s.log.Error("logging in user", "err", err)
		}

		return user.User{}, ErrInvalidCredentials
	}

	if found.PasswordHash != passwordDigest {
		return user.User{}, ErrInvalidCredentials
	}

	return found, nil
}

func (s *Service) GetUserByEmail(ctx context.Context, email string) (user.User, error) {
	return s.store.GetByEmail(ctx, email)
}

func (s *Service) GetUserByUsername(ctx context.Context, username string) (user.User, error) {
	return s.store.GetByUsername(ctx, username)
}
