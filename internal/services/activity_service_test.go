package services

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/skillsage/skillsage-service/internal/events"
	"github.com/skillsage/skillsage-service/internal/models"
	"github.com/skillsage/skillsage-service/internal/repositories"
	"github.com/skillsage/skillsage-service/internal/repositories/memory"
	"github.com/skillsage/skillsage-service/internal/validator"
)

func TestActivityServiceRecord(t *testing.T) {
	repo := memory.NewRepository()
	publisher := events.NewMockEventPublisher(newTestLogger())
	service := NewActivityService(repo, publisher, newTestLogger(), validator.New())
	ctx := context.Background()

	if _, err := repo.User().Create(ctx, &models.User{ID: "user-1", Email: "a@b.c"}); err != nil {
		t.Fatalf("create user: %v", err)
	}

	activity, err := service.Record(ctx, &validator.ActivityCreateRequest{
		UserID:      "user-1",
		Type:        models.ActivityCourseCompleted,
		Description: "Completed Python Foundations",
	})
	if err != nil {
		t.Fatalf("record failed: %v", err)
	}
	if activity.ID == "" {
		t.Error("expected stored activity to have an id")
	}

	published := publisher.GetPublishedEvents()
	if len(published) != 1 {
		t.Fatalf("expected 1 published event, got %d", len(published))
	}
	if published[0].Type != "activity.course_completed" {
		t.Errorf("unexpected event type %q", published[0].Type)
	}
}

func TestActivityServiceRecordUnknownUser(t *testing.T) {
	repo := memory.NewRepository()
	publisher := events.NewMockEventPublisher(newTestLogger())
	service := NewActivityService(repo, publisher, newTestLogger(), validator.New())

	_, err := service.Record(context.Background(), &validator.ActivityCreateRequest{
		UserID:      "missing",
		Type:        models.ActivityChatSession,
		Description: "x",
	})
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
	if len(publisher.GetPublishedEvents()) != 0 {
		t.Error("no event may be published for a rejected activity")
	}
}

func TestActivityServiceExportXLSX(t *testing.T) {
	repo := memory.NewRepository()
	publisher := events.NewMockEventPublisher(newTestLogger())
	service := NewActivityService(repo, publisher, newTestLogger(), validator.New())
	ctx := context.Background()

	if _, err := repo.User().Create(ctx, &models.User{ID: "user-1", Email: "a@b.c"}); err != nil {
		t.Fatalf("create user: %v", err)
	}
	for _, desc := range []string{"first", "second"} {
		if _, err := service.Record(ctx, &validator.ActivityCreateRequest{
			UserID:      "user-1",
			Type:        models.ActivityCertificateEarned,
			Description: desc,
		}); err != nil {
			t.Fatalf("record failed: %v", err)
		}
	}

	data, err := service.ExportXLSX(ctx, repositories.ActivityFilters{})
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("export is not a readable workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Activities")
	if err != nil {
		t.Fatalf("reading Activities sheet: %v", err)
	}
	// Header plus one row per activity.
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	if rows[0][0] != "ID" || rows[0][2] != "Type" {
		t.Errorf("unexpected header row: %v", rows[0])
	}
}
