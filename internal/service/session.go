package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/samandr77/microservices/dashboard/internal/entity"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=session.go -destination=../mocks/session.go -package=mocks -typed

const (
	// SlotKey is the single persisted slot holding the signed-in user.
	SlotKey = "dashboard-user"
	// DefaultPassword is accepted for every known account.
	DefaultPassword = "password123"
)

type SlotStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

type Users interface {
	UserByEmail(ctx context.Context, email string) (entity.User, error)
}

// Session holds at most one authenticated user and mirrors it into the slot store.
type Session struct {
	mu           sync.Mutex
	users        Users
	slots        SlotStore
	codec        *SlotCodec
	passwordHash []byte
	latency      time.Duration
	user         *entity.User
}

func NewSession(users Users, slots SlotStore, secret string, latency time.Duration) (*Session, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(DefaultPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash default password: %w", err)
	}

	return &Session{
		users:        users,
		slots:        slots,
		codec:        NewSlotCodec(secret),
		passwordHash: hash,
		latency:      latency,
	}, nil
}

// Restore loads the persisted user. An unreadable slot is cleared and the
// session stays signed out.
func (s *Session) Restore(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := s.slots.Get(ctx, SlotKey)
	if errors.Is(err, entity.ErrNotFound) {
		s.user = nil
		return nil
	}

	if err != nil {
		return fmt.Errorf("read session slot: %w", err)
	}

	user, err := s.codec.Decode(raw)
	if err != nil {
		slog.WarnContext(ctx, fmt.Sprintf("discarding session slot: %s", err))

		s.user = nil

		if err := s.slots.Delete(ctx, SlotKey); err != nil {
			return fmt.Errorf("clear session slot: %w", err)
		}

		return nil
	}

	s.user = &user

	return nil
}

// Login waits the configured latency, then checks the email and the password.
// Nothing changes unless both match.
func (s *Session) Login(ctx context.Context, email, password string) (entity.User, error) {
	if err := wait(ctx, s.latency); err != nil {
		return entity.User{}, fmt.Errorf("login cancelled: %w", err)
	}

	user, err := s.users.UserByEmail(ctx, email)
	if errors.Is(err, entity.ErrNotFound) {
		return entity.User{}, fmt.Errorf("%w: %s", entity.ErrInvalidEmail, email)
	}

	if err != nil {
		return entity.User{}, fmt.Errorf("find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password)); err != nil {
		return entity.User{}, entity.ErrInvalidPassword
	}

	encoded, err := s.codec.Encode(user)
	if err != nil {
		return entity.User{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return entity.User{}, fmt.Errorf("login cancelled: %w", err)
	}

	if err := s.slots.Set(ctx, SlotKey, encoded); err != nil {
		return entity.User{}, fmt.Errorf("write session slot: %w", err)
	}

	s.user = &user

	slog.InfoContext(ctx, fmt.Sprintf("user %s signed in as %s", user.Email, user.Role))

	return user, nil
}

// Logout is idempotent.
func (s *Session) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = nil

	if err := s.slots.Delete(ctx, SlotKey); err != nil {
		return fmt.Errorf("clear session slot: %w", err)
	}

	return nil
}

func (s *Session) User() (entity.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return entity.User{}, false
	}

	return *s.user, true
}

type slotClaims struct {
	User entity.User `json:"user"`
	jwt.RegisteredClaims
}

// SlotCodec signs the stored user so a tampered slot is rejected on restore.
type SlotCodec struct {
	secret []byte
}

func NewSlotCodec(secret string) *SlotCodec {
	return &SlotCodec{secret: []byte(secret)}
}

func (c *SlotCodec) Encode(user entity.User) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, slotClaims{
		User: user,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:  user.ID,
			IssuedAt: jwt.NewNumericDate(time.Now()),
		},
	})

	signed, err := token.SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("sign session slot: %w", err)
	}

	return signed, nil
}

func (c *SlotCodec) Decode(raw string) (entity.User, error) {
	var claims slotClaims

	_, err := jwt.ParseWithClaims(raw, &claims, func(*jwt.Token) (any, error) {
		return c.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return entity.User{}, fmt.Errorf("%w: %w", entity.ErrMalformedSession, err)
	}

	if claims.User.ID == "" || !claims.User.Role.IsValid() {
		return entity.User{}, fmt.Errorf("%w: incomplete user", entity.ErrMalformedSession)
	}

	return claims.User, nil
}

func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
