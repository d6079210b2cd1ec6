package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"

	"github.com/aussiebroadwan/tabtodo/internal/todo/domain"
	"github.com/aussiebroadwan/tabtodo/internal/todo/store"
	"github.com/aussiebroadwan/tabtodo/pkg/cryptox"
	"github.com/aussiebroadwan/tabtodo/pkg/slogx"
)

type UserService struct {
	Store store.Store
}

var (
	dummyOnce sync.Once
	dummyHash string
)

// burnVerify pays one argon2 verification for a username that does not exist.
func burnVerify(password string) {
	dummyOnce.Do(func() {
		dummyHash, _ = cryptox.HashPassword("tabtodo-dummy-password")
	})
	_ = cryptox.VerifyPassword(password, dummyHash)
}

// Create registers a user. The username is trimmed and must be non-empty;
// the password is hashed before it reaches the store.
func (s *UserService) Create(ctx context.Context, username, password string) (domain.User, error) {
	log := slogx.FromContext(ctx)

	username = strings.TrimSpace(username)
	if username == "" {
		return domain.User{}, invalid("username must not be empty")
	}

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		if errors.Is(err, cryptox.ErrEmptyPassword) {
			return domain.User{}, invalid("password must not be empty")
		}
		return domain.User{}, classify(err, nil)
	}

	var user domain.User
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		// Fast path only; the unique index is what actually guards the race.
		n, err := tx.Users().CountUsersByUsername(ctx, username)
		if err != nil {
			return err
		}
		if n > 0 {
			return ErrDuplicateUsername
		}

		user, err = tx.Users().CreateUser(ctx, domain.User{
			Username:     username,
			PasswordHash: hash,
			Active:       true,
		})
		return err
	})
	if err != nil {
		return domain.User{}, classify(err, ErrDuplicateUsername)
	}

	log.Info("user registered", slog.Int64("user_id", user.ID))
	return user, nil
}

func (s *UserService) GetByID(ctx context.Context, id int64) (domain.User, error) {
	u, err := s.Store.Users().GetUserByID(ctx, id)
	return u, classify(err, nil)
}

func (s *UserService) GetByUsername(ctx context.Context, username string) (domain.User, error) {
	u, err := s.Store.Users().GetUserByUsername(ctx, strings.TrimSpace(username))
	return u, classify(err, nil)
}

// Authenticate checks a username/password pair. Unknown users, wrong
// passwords and inactive accounts all yield ErrInvalidCredentials.
func (s *UserService) Authenticate(ctx context.Context, username, password string) (domain.User, error) {
	log := slogx.FromContext(ctx)

	user, err := s.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			burnVerify(password)
			log.Info("login rejected")
			return domain.User{}, ErrInvalidCredentials
		}
		return domain.User{}, err
	}

	if cryptox.VerifyPassword(password, user.PasswordHash) != nil {
		log.Info("login rejected", slog.Int64("user_id", user.ID))
		return domain.User{}, ErrInvalidCredentials
	}

	if !user.Active {
		log.Info("login rejected for inactive user", slog.Int64("user_id", user.ID))
		return domain.User{}, ErrInvalidCredentials
	}

	return user, nil
}
