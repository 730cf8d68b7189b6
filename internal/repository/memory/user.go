package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/whiskersm-users/internal/model"
)

var _ model.UserStore = (*UserRepository)(nil)

// UserRepository keeps users in process memory.
// Email uniqueness is enforced under the write lock.
type UserRepository struct {
	mu      sync.RWMutex
	byID    map[uuid.UUID]model.User
	byEmail map[string]uuid.UUID
	now     func() time.Time
}

func NewUserRepository() *UserRepository {
	return &UserRepository{
		byID:    make(map[uuid.UUID]model.User),
		byEmail: make(map[string]uuid.UUID),
		now:     time.Now,
	}
}

func (r *UserRepository) GetByID(_ context.Context, id uuid.UUID) (model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.byID[id]
	if !ok {
		return model.User{}, model.ErrNotFound
	}
	return user, nil
}

func (r *UserRepository) GetByEmail(_ context.Context, email string) (model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[email]
	if !ok {
		return model.User{}, model.ErrNotFound
	}
	return r.byID[id], nil
}

// List returns users ordered by creation time, then email.
func (r *UserRepository) List(_ context.Context) ([]model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]model.User, 0, len(r.byID))
	for _, u := range r.byID {
		users = append(users, u)
	}
	sort.Slice(users, func(i, j int) bool {
		if users[i].CreatedAt.Equal(users[j].CreatedAt) {
			return users[i].Email < users[j].Email
		}
		return users[i].CreatedAt.Before(users[j].CreatedAt)
	})

	return users, nil
}

func (r *UserRepository) Create(_ context.Context, user model.User) (model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.byEmail[user.Email]; taken {
		return model.User{}, model.ErrDuplicateEmail
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}

	now := r.now()
	user.CreatedAt = now
	user.UpdatedAt = now

	r.byID[user.ID] = user
	r.byEmail[user.Email] = user.ID

	return user, nil
}

// Save upserts the full record by id.
func (r *UserRepository) Save(_ context.Context, user model.User) (model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if owner, taken := r.byEmail[user.Email]; taken && owner != user.ID {
		return model.User{}, model.ErrDuplicateEmail
	}

	now := r.now()
	if existing, ok := r.byID[user.ID]; ok {
		user.CreatedAt = existing.CreatedAt
		if existing.Email != user.Email {
			delete(r.byEmail, existing.Email)
		}
	} else {
		user.CreatedAt = now
	}
	user.UpdatedAt = now

	r.byID[user.ID] = user
	r.byEmail[user.Email] = user.ID

	return user, nil
}

func (r *UserRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.byID[id]
	if !ok {
		return model.ErrNotFound
	}

	delete(r.byID, id)
	delete(r.byEmail, user.Email)

	return nil
}
