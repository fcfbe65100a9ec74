package validator

import (
	"testing"

	"github.com/skillsage/skillsage-service/internal/models"
)

func TestValidateSkillUpsertRequest(t *testing.T) {
	v := New()

	tests := []struct {
		name    string
		req     SkillUpsertRequest
		wantErr bool
	}{
		{"valid", SkillUpsertRequest{UserID: "u1", SkillName: "Go", Progress: 50}, false},
		{"zero progress is valid", SkillUpsertRequest{UserID: "u1", SkillName: "Go"}, false},
		{"missing user", SkillUpsertRequest{SkillName: "Go", Progress: 10}, true},
		{"progress over 100", SkillUpsertRequest{UserID: "u1", SkillName: "Go", Progress: 120}, true},
		{"negative progress", SkillUpsertRequest{UserID: "u1", SkillName: "Go", Progress: -1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := v.Validate(&tt.req)
			if tt.wantErr && errs == nil {
				t.Error("expected validation errors, got none")
			}
			if !tt.wantErr && errs != nil {
				t.Errorf("unexpected validation errors: %v", errs)
			}
		})
	}
}

func TestValidateEnumTags(t *testing.T) {
	v := New()

	if errs := v.Validate(&ActivityCreateRequest{
		UserID:      "u1",
		Type:        models.ActivityType("invented"),
		Description: "x",
	}); errs == nil {
		t.Error("unknown activity type must fail validation")
	}

	if errs := v.Validate(&InterviewQuestionRequest{
		Type: models.InterviewCaseStudy,
	}); errs != nil {
		t.Errorf("valid interview type rejected: %v", errs)
	}

	bad := models.UserRole("superuser")
	if errs := v.Validate(&UserUpdateRequest{Role: &bad}); errs == nil {
		t.Error("unknown role must fail validation")
	}

	if errs := v.Validate(&CourseCreateRequest{
		Title:      "Go Course",
		Difficulty: models.DifficultyLevel("Expert"),
	}); errs == nil {
		t.Error("unknown difficulty must fail validation")
	}
}

func TestValidationErrorsMessage(t *testing.T) {
	v := New()

	errs := v.Validate(&ChatSendRequest{})
	if errs == nil {
		t.Fatal("expected validation errors")
	}
	if errs.Error() == "" {
		t.Error("error string must not be empty")
	}
}
