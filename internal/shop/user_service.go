package shop

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"
)

const MinPasswordLength = 7

type UserService struct {
	Users  UserRepo
	Carts  CartRepo
	Hasher PasswordHasher
	Log    *zap.Logger
}

// FindByID returns the user with its cart loaded.
func (s *UserService) FindByID(ctx context.Context, id int64) (User, error) {
	u, err := s.Users.FindByID(ctx, id)
	if err != nil {
		return User{}, err
	}
	return s.withCart(ctx, u)
}

func (s *UserService) FindByUsername(ctx context.Context, username string) (User, error) {
	u, err := s.Users.FindByUsername(ctx, username)
	if err != nil {
		return User{}, err
	}
	return s.withCart(ctx, u)
}

// CreateUser validates the request completely before anything is persisted,
// so a rejected request never leaves a cart behind.
func (s *UserService) CreateUser(ctx context.Context, req CreateUserRequest) (User, error) {
	if strings.TrimSpace(req.Username) == "" || req.Password == "" || req.ConfirmPassword == "" {
		s.Log.Warn("create user rejected: missing field",
			zap.Bool("username_missing", strings.TrimSpace(req.Username) == ""),
			zap.Bool("password_missing", req.Password == ""),
			zap.Bool("confirm_missing", req.ConfirmPassword == ""))
		return User{}, ErrMissingField
	}
	if len(req.Password) < MinPasswordLength || req.Password != req.ConfirmPassword {
		s.Log.Warn("create user rejected: weak or mismatched password",
			zap.String("username", req.Username),
			zap.Int("password_length", len(req.Password)))
		return User{}, ErrWeakPassword
	}

	if _, err := s.Users.FindByUsername(ctx, req.Username); err == nil {
		s.Log.Warn("create user rejected: username taken", zap.String("username", req.Username))
		return User{}, ErrUsernameTaken
	} else if !errors.Is(err, ErrNotFound) {
		return User{}, err
	}

	hash, err := s.Hasher.Hash(req.Password)
	if err != nil {
		return User{}, err
	}

	cart, err := s.Carts.Create(ctx)
	if err != nil {
		return User{}, err
	}
	s.Log.Debug("cart allocated", zap.Int64("cart_id", cart.ID))

	u, err := s.Users.Create(ctx, User{Username: req.Username, Password: hash, CartID: cart.ID})
	if err != nil {
		return User{}, err
	}
	cart.UserID, cart.Username = u.ID, u.Username
	u.Cart = &cart

	s.Log.Info("user created", zap.Int64("user_id", u.ID), zap.String("username", u.Username), zap.Int64("cart_id", cart.ID))
	return u, nil
}

// Authenticate checks a username/password pair against the stored hash.
func (s *UserService) Authenticate(ctx context.Context, username, password string) (User, error) {
	u, err := s.Users.FindByUsername(ctx, username)
	if err != nil {
		return User{}, err
	}
	if err := s.Hasher.Verify(u.Password, password); err != nil {
		return User{}, ErrInvalidCredentials
	}
	return u, nil
}

func (s *UserService) withCart(ctx context.Context, u User) (User, error) {
	cart, err := s.Carts.Get(ctx, u.CartID)
	if err != nil {
		return User{}, err
	}
	u.Cart = &cart
	return u, nil
}
