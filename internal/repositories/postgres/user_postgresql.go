package postgres

import (
	"context"
	"encoding/json"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/skillsage/skillsage-service/internal/cache"
	"github.com/skillsage/skillsage-service/internal/models"
	"github.com/skillsage/skillsage-service/internal/repositories"
)

type userRepository struct {
	db        *gorm.DB
	userCache *cache.CacheHelper
}

// NewUserPostgreSQL creates the relational user repository. Lookups by id
// are cached because the auth middleware resolves the principal on every
// request.
func NewUserPostgreSQL(db *gorm.DB, userCache *cache.CacheHelper) repositories.UserRepository {
	return &userRepository{db: db, userCache: userCache}
}

// ===== BASIC CRUD OPERATIONS =====

func (r *userRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	var cached models.User
	if err := r.userCache.Get(ctx, &cached, "id", id); err == nil {
		return &cached, nil
	}

	var user models.User
	if err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		return nil, handleDBError(err, "get user by id")
	}

	cache.SafeSet(ctx, r.userCache, &user, "id", id)
	return &user, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, "lower(email) = lower(?)", email).Error; err != nil {
		return nil, handleDBError(err, "get user by email")
	}
	return &user, nil
}

func (r *userRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	stored := *user
	if stored.Role == "" {
		stored.Role = models.RoleStudent
	}
	stored.IsActive = true

	if err := r.db.WithContext(ctx).Create(&stored).Error; err != nil {
		return nil, handleDBError(err, "create user")
	}
	return &stored, nil
}

func (r *userRepository) Update(ctx context.Context, id string, upd models.UserUpdate) (*models.User, error) {
	updates := map[string]interface{}{}
	if upd.FullName != nil {
		updates["full_name"] = *upd.FullName
	}
	if upd.AvatarURL != nil {
		updates["avatar_url"] = *upd.AvatarURL
	}
	if upd.Role != nil {
		updates["role"] = *upd.Role
	}
	if upd.Skills != nil {
		raw, err := json.Marshal(upd.Skills)
		if err != nil {
			return nil, handleDBError(err, "encode user skills")
		}
		updates["skills"] = datatypes.JSON(raw)
	}
	if upd.Credits != nil {
		updates["credits"] = *upd.Credits
	}
	if upd.InternshipHours != nil {
		updates["internship_hours"] = *upd.InternshipHours
	}
	if upd.Certificates != nil {
		updates["certificates"] = *upd.Certificates
	}

	if len(updates) > 0 {
		result := r.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).Updates(updates)
		if result.Error != nil {
			return nil, handleDBError(result.Error, "update user")
		}
		if result.RowsAffected == 0 {
			return nil, handleDBError(gorm.ErrRecordNotFound, "update user")
		}
	}

	cache.SafeDelete(ctx, r.userCache, "id:"+id)

	var user models.User
	if err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		return nil, handleDBError(err, "reload updated user")
	}
	return &user, nil
}

// ===== QUERY OPERATIONS =====

func (r *userRepository) List(ctx context.Context, filters repositories.UserFilters) ([]*models.User, int64, error) {
	var users []*models.User
	var total int64

	query := r.db.WithContext(ctx).Model(&models.User{})
	if filters.Query != "" {
		pattern := "%" + filters.Query + "%"
		query = query.Where("full_name ILIKE ? OR email ILIKE ?", pattern, pattern)
	}
	if filters.Role != nil {
		query = query.Where("role = ?", *filters.Role)
	}
	if filters.IsActive != nil {
		query = query.Where("is_active = ?", *filters.IsActive)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, handleDBError(err, "count users")
	}

	query = applyPagination(query.Order("created_at ASC"), filters.Limit, filters.Offset)
	if err := query.Find(&users).Error; err != nil {
		return nil, 0, handleDBError(err, "list users")
	}
	return users, total, nil
}

func (r *userRepository) SetActive(ctx context.Context, id string, active bool) (*models.User, error) {
	result := r.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).Update("is_active", active)
	if result.Error != nil {
		return nil, handleDBError(result.Error, "set user active")
	}
	if result.RowsAffected == 0 {
		return nil, handleDBError(gorm.ErrRecordNotFound, "set user active")
	}

	cache.SafeDelete(ctx, r.userCache, "id:"+id)

	var user models.User
	if err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		return nil, handleDBError(err, "reload user")
	}
	return &user, nil
}
