package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/skillsage/skillsage-service/internal/models"
	"github.com/skillsage/skillsage-service/internal/repositories"
)

type courseMemory struct {
	mu      sync.RWMutex
	courses map[string]*models.Course
}

func NewCourseMemory() repositories.CourseRepository {
	return &courseMemory{courses: make(map[string]*models.Course)}
}

func (r *courseMemory) GetByID(ctx context.Context, id string) (*models.Course, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	course, ok := r.courses[id]
	if !ok {
		return nil, fmt.Errorf("get course %q: %w", id, repositories.ErrNotFound)
	}
	clone := *course
	return &clone, nil
}

func (r *courseMemory) List(ctx context.Context, filters repositories.CourseFilters) ([]*models.Course, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matched []*models.Course
	for _, course := range r.courses {
		if filters.Category != nil && course.Category != *filters.Category {
			continue
		}
		if filters.Difficulty != nil && course.Difficulty != *filters.Difficulty {
			continue
		}
		clone := *course
		matched = append(matched, &clone)
	}

	sortCoursesByTitle(matched)
	total := int64(len(matched))
	return paginate(matched, filters.Limit, filters.Offset), total, nil
}

func (r *courseMemory) ListRecommended(ctx context.Context, userID string) ([]*models.Course, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var recommended []*models.Course
	for _, course := range r.courses {
		if course.Recommended {
			clone := *course
			recommended = append(recommended, &clone)
		}
	}
	sortCoursesByTitle(recommended)
	return recommended, nil
}

func (r *courseMemory) Search(ctx context.Context, query string) ([]*models.Course, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	q := strings.ToLower(strings.TrimSpace(query))
	var matched []*models.Course
	for _, course := range r.courses {
		if q == "" ||
			strings.Contains(strings.ToLower(course.Title), q) ||
			strings.Contains(strings.ToLower(course.Description), q) ||
			strings.Contains(strings.ToLower(course.Category), q) {
			clone := *course
			matched = append(matched, &clone)
		}
	}

	sortCoursesByTitle(matched)
	if len(matched) > repositories.SearchResultCap {
		matched = matched[:repositories.SearchResultCap]
	}
	return matched, nil
}

func (r *courseMemory) Create(ctx context.Context, course *models.Course) (*models.Course, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *course
	if stored.ID == "" {
		stored.ID = uuid.New().String()
	}
	now := time.Now()
	stored.CreatedAt = now
	stored.UpdatedAt = now

	r.courses[stored.ID] = &stored
	clone := stored
	return &clone, nil
}

func (r *courseMemory) Update(ctx context.Context, course *models.Course) (*models.Course, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.courses[course.ID]
	if !ok {
		return nil, fmt.Errorf("update course %q: %w", course.ID, repositories.ErrNotFound)
	}

	updated := *course
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = time.Now()

	r.courses[updated.ID] = &updated
	clone := updated
	return &clone, nil
}

func (r *courseMemory) Seed(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.courses) > 0 {
		return nil
	}
	now := time.Now()
	for _, course := range repositories.SeedCourses() {
		clone := *course
		clone.CreatedAt = now
		clone.UpdatedAt = now
		r.courses[clone.ID] = &clone
	}
	return nil
}

func sortCoursesByTitle(courses []*models.Course) {
	sort.Slice(courses, func(i, j int) bool {
		return courses[i].Title < courses[j].Title
	})
}
