package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/skillsage/skillsage-service/internal/models"
	"github.com/skillsage/skillsage-service/internal/repositories"
)

type userMemory struct {
	mu    sync.RWMutex
	users map[string]*models.User
}

func NewUserMemory() repositories.UserRepository {
	return &userMemory{users: make(map[string]*models.User)}
}

func (r *userMemory) GetByID(ctx context.Context, id string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return nil, fmt.Errorf("get user by id %q: %w", id, repositories.ErrNotFound)
	}
	clone := *user
	return &clone, nil
}

func (r *userMemory) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, user := range r.users {
		if strings.EqualFold(user.Email, email) {
			clone := *user
			return &clone, nil
		}
	}
	return nil, fmt.Errorf("get user by email %q: %w", email, repositories.ErrNotFound)
}

func (r *userMemory) Create(ctx context.Context, user *models.User) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *user
	applyUserDefaults(&stored)
	now := time.Now()
	stored.CreatedAt = now
	stored.UpdatedAt = now

	r.users[stored.ID] = &stored
	clone := stored
	return &clone, nil
}

func (r *userMemory) Update(ctx context.Context, id string, upd models.UserUpdate) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]
	if !ok {
		return nil, fmt.Errorf("update user %q: %w", id, repositories.ErrNotFound)
	}

	applyUserUpdate(user, upd)
	user.UpdatedAt = time.Now()

	clone := *user
	return &clone, nil
}

func (r *userMemory) List(ctx context.Context, filters repositories.UserFilters) ([]*models.User, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matched []*models.User
	q := strings.ToLower(filters.Query)
	for _, user := range r.users {
		if q != "" &&
			!strings.Contains(strings.ToLower(user.FullName), q) &&
			!strings.Contains(strings.ToLower(user.Email), q) {
			continue
		}
		if filters.Role != nil && user.Role != *filters.Role {
			continue
		}
		if filters.IsActive != nil && user.IsActive != *filters.IsActive {
			continue
		}
		clone := *user
		matched = append(matched, &clone)
	}

	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.Before(matched[j].CreatedAt)
	})

	total := int64(len(matched))
	return paginate(matched, filters.Limit, filters.Offset), total, nil
}

func (r *userMemory) SetActive(ctx context.Context, id string, active bool) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]
	if !ok {
		return nil, fmt.Errorf("set user %q active: %w", id, repositories.ErrNotFound)
	}

	user.IsActive = active
	user.UpdatedAt = time.Now()

	clone := *user
	return &clone, nil
}

// applyUserDefaults fills the server-defaulted fields on create:
// role "student", counters zeroed by the zero value, active true.
func applyUserDefaults(user *models.User) {
	if user.Role == "" {
		user.Role = models.RoleStudent
	}
	user.IsActive = true
}

func applyUserUpdate(user *models.User, upd models.UserUpdate) {
	if upd.FullName != nil {
		user.FullName = *upd.FullName
	}
	if upd.AvatarURL != nil {
		user.AvatarURL = upd.AvatarURL
	}
	if upd.Role != nil {
		user.Role = *upd.Role
	}
	if upd.Skills != nil {
		user.Skills = marshalSkills(upd.Skills)
	}
	if upd.Credits != nil {
		user.Credits = *upd.Credits
	}
	if upd.InternshipHours != nil {
		user.InternshipHours = *upd.InternshipHours
	}
	if upd.Certificates != nil {
		user.Certificates = *upd.Certificates
	}
}
