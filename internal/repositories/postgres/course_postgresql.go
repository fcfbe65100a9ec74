package postgres

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/skillsage/skillsage-service/internal/models"
	"github.com/skillsage/skillsage-service/internal/repositories"
)

type courseRepository struct {
	db *gorm.DB
}

func NewCoursePostgreSQL(db *gorm.DB) repositories.CourseRepository {
	return &courseRepository{db: db}
}

func (r *courseRepository) GetByID(ctx context.Context, id string) (*models.Course, error) {
	var course models.Course
	if err := r.db.WithContext(ctx).First(&course, "id = ?", id).Error; err != nil {
		return nil, handleDBError(err, "get course by id")
	}
	return &course, nil
}

func (r *courseRepository) List(ctx context.Context, filters repositories.CourseFilters) ([]*models.Course, int64, error) {
	var courses []*models.Course
	var total int64

	query := r.db.WithContext(ctx).Model(&models.Course{})
	if filters.Category != nil {
		query = query.Where("category = ?", *filters.Category)
	}
	if filters.Difficulty != nil {
		query = query.Where("difficulty = ?", *filters.Difficulty)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, handleDBError(err, "count courses")
	}

	query = applyPagination(query.Order("title ASC"), filters.Limit, filters.Offset)
	if err := query.Find(&courses).Error; err != nil {
		return nil, 0, handleDBError(err, "list courses")
	}
	return courses, total, nil
}

func (r *courseRepository) ListRecommended(ctx context.Context, userID string) ([]*models.Course, error) {
	var courses []*models.Course
	if err := r.db.WithContext(ctx).
		Where("recommended = ?", true).
		Order("title ASC").
		Find(&courses).Error; err != nil {
		return nil, handleDBError(err, "list recommended courses")
	}
	return courses, nil
}

func (r *courseRepository) Search(ctx context.Context, query string) ([]*models.Course, error) {
	var courses []*models.Course
	pattern := "%" + query + "%"

	if err := r.db.WithContext(ctx).
		Where("title ILIKE ? OR description ILIKE ? OR category ILIKE ?", pattern, pattern, pattern).
		Order("title ASC").
		Limit(repositories.SearchResultCap).
		Find(&courses).Error; err != nil {
		return nil, handleDBError(err, "search courses")
	}
	return courses, nil
}

func (r *courseRepository) Create(ctx context.Context, course *models.Course) (*models.Course, error) {
	stored := *course
	if stored.ID == "" {
		stored.ID = uuid.New().String()
	}
	if err := r.db.WithContext(ctx).Create(&stored).Error; err != nil {
		return nil, handleDBError(err, "create course")
	}
	return &stored, nil
}

func (r *courseRepository) Update(ctx context.Context, course *models.Course) (*models.Course, error) {
	result := r.db.WithContext(ctx).Model(&models.Course{}).Where("id = ?", course.ID).Updates(map[string]interface{}{
		"title":       course.Title,
		"description": course.Description,
		"image_url":   course.ImageURL,
		"difficulty":  course.Difficulty,
		"duration":    course.Duration,
		"rating":      course.Rating,
		"category":    course.Category,
		"recommended": course.Recommended,
	})
	if result.Error != nil {
		return nil, handleDBError(result.Error, "update course")
	}
	if result.RowsAffected == 0 {
		return nil, handleDBError(gorm.ErrRecordNotFound, "update course")
	}

	var updated models.Course
	if err := r.db.WithContext(ctx).First(&updated, "id = ?", course.ID).Error; err != nil {
		return nil, handleDBError(err, "reload updated course")
	}
	return &updated, nil
}

func (r *courseRepository) Seed(ctx context.Context) error {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Course{}).Count(&count).Error; err != nil {
		return handleDBError(err, "count courses for seed")
	}
	if count > 0 {
		return nil
	}
	if err := r.db.WithContext(ctx).Create(repositories.SeedCourses()).Error; err != nil {
		return handleDBError(err, "seed courses")
	}
	return nil
}
