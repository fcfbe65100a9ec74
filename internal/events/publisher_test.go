package events

import (
	"context"
	"sync"
	"testing"
)

func TestNewEventStampsEnvelope(t *testing.T) {
	event := NewEvent("activity.course_completed", map[string]string{"id": "a1"})

	if event.ID == "" {
		t.Error("event must get an id")
	}
	if event.Source != "skillsage-service" {
		t.Errorf("unexpected source %q", event.Source)
	}
	if event.Version != "1.0" {
		t.Errorf("unexpected version %q", event.Version)
	}
	if event.Timestamp.IsZero() {
		t.Error("event must be timestamped")
	}
}

func TestMockPublisherRecordsEvents(t *testing.T) {
	p := NewMockEventPublisher(nil)
	ctx := context.Background()

	if err := p.Publish(ctx, ActivityTopic, NewEvent("a", nil)); err != nil {
		t.Fatalf("publish failed: %v", err)
	}
	if err := p.Publish(ctx, ActivityTopic, NewEvent("b", nil)); err != nil {
		t.Fatalf("publish failed: %v", err)
	}

	got := p.GetPublishedEvents()
	if len(got) != 2 {
		t.Fatalf("expected 2 recorded events, got %d", len(got))
	}
	if got[0].Type != "a" || got[1].Type != "b" {
		t.Errorf("events recorded out of order: %v", got)
	}

	p.ClearEvents()
	if len(p.GetPublishedEvents()) != 0 {
		t.Error("clear must drop recorded events")
	}
}

func TestMockPublisherConcurrent(t *testing.T) {
	p := NewMockEventPublisher(nil)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = p.Publish(ctx, ActivityTopic, NewEvent("concurrent", nil))
		}()
	}
	wg.Wait()

	if got := len(p.GetPublishedEvents()); got != 20 {
		t.Fatalf("expected 20 events, got %d", got)
	}
}
