package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"time"

	"patron/internal/domain/entity"
	"patron/internal/domain/repository"
	"patron/internal/domain/service"

	"github.com/google/uuid"
)

// fakeUserRepo is an in-memory UserRepository used across the service tests.
// Injectable errors simulate store failures.
type fakeUserRepo struct {
	mu    sync.Mutex
	users map[uuid.UUID]*entity.User

	findErr   error
	createErr error
	updateErr error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[uuid.UUID]*entity.User{}}
}

func (r *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.findErr != nil {
		return nil, r.findErr
	}
	if user, ok := r.users[id]; ok {
		cloned := *user

		return &cloned, nil
	}

	return nil, repository.ErrUserNotFound
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.findErr != nil {
		return nil, r.findErr
	}
	for _, user := range r.users {
		if user.Email == email {
			cloned := *user

			return &cloned, nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (r *fakeUserRepo) FindByReferralCode(_ context.Context, code string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.findErr != nil {
		return nil, r.findErr
	}
	for _, user := range r.users {
		if user.ReferralCode == code {
			cloned := *user

			return &cloned, nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (r *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.createErr != nil {
		return r.createErr
	}
	user.ID = uuid.New()
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	cloned := *user
	r.users[user.ID] = &cloned

	return nil
}

func (r *fakeUserRepo) Update(_ context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.updateErr != nil {
		return r.updateErr
	}
	cloned := *user
	cloned.UpdatedAt = time.Now()
	r.users[user.ID] = &cloned

	return nil
}

// balanceOf reads an account's balance directly from the store.
func (r *fakeUserRepo) balanceOf(id uuid.UUID) float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.users[id].Balance
}

// fakeTokenService issues predictable tokens so tests can assert the bound identity.
type fakeTokenService struct {
	generateErr error
}

func (s *fakeTokenService) GenerateToken(userID uuid.UUID, _ string) (string, error) {
	if s.generateErr != nil {
		return "", s.generateErr
	}

	return "token-" + userID.String(), nil
}

func (s *fakeTokenService) ValidateToken(string) (*service.Claims, error) {
	panic("not used in these tests")
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
