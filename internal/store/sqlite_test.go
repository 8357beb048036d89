package store

import (
	"context"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/personachat/personachat/internal/domain"
)

func newTestStore(t *testing.T) Store {
	t.Helper()

	s, err := NewSQLite(filepath.Join(t.TempDir(), "feedback.db"))
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	t.Cleanup(func() {
		if err := s.Close(); err != nil {
			t.Errorf("Failed to close store: %v", err)
		}
	})
	return s
}

func TestSQLiteStore_AppendAndAllRoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	rec := &domain.FeedbackRecord{
		Timestamp:    "2026-08-31T12:00:00Z",
		Persona:      "Analista",
		Style:        "Formal",
		Rating:       domain.RatingUp,
		Comment:      "resposta útil",
		UserMsg:      "Me fale sobre o Brasil",
		AssistantMsg: "📊 Análise de dados do país solicitado: ...",
	}

	if err := s.AppendFeedback(ctx, rec); err != nil {
		t.Fatalf("AppendFeedback failed: %v", err)
	}
	if rec.ID == 0 {
		t.Error("Expected a generated id")
	}

	records, err := s.AllFeedback(ctx)
	if err != nil {
		t.Fatalf("AllFeedback failed: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("Expected 1 record, got %d", len(records))
	}
	if !reflect.DeepEqual(records[0], rec) {
		t.Errorf("Round trip mismatch:\n got: %+v\nwant: %+v", records[0], rec)
	}
}

func TestSQLiteStore_IDsAreUniqueAndMonotonic(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	var lastID int64
	for i := 0; i < 5; i++ {
		rec := &domain.FeedbackRecord{Rating: domain.RatingDown, Timestamp: "2026-08-31T12:00:00Z"}
		if err := s.AppendFeedback(ctx, rec); err != nil {
			t.Fatalf("AppendFeedback failed: %v", err)
		}
		if rec.ID <= lastID {
			t.Errorf("Expected id > %d, got %d", lastID, rec.ID)
		}
		lastID = rec.ID
	}
}

func TestSQLiteStore_AllPreservesInsertionOrder(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	comments := []string{"primeiro", "segundo", "terceiro"}
	for _, c := range comments {
		rec := &domain.FeedbackRecord{Rating: domain.RatingUp, Comment: c}
		if err := s.AppendFeedback(ctx, rec); err != nil {
			t.Fatalf("AppendFeedback failed: %v", err)
		}
	}

	records, err := s.AllFeedback(ctx)
	if err != nil {
		t.Fatalf("AllFeedback failed: %v", err)
	}
	if len(records) != len(comments) {
		t.Fatalf("Expected %d records, got %d", len(comments), len(records))
	}
	for i, rec := range records {
		if rec.Comment != comments[i] {
			t.Errorf("Record %d: expected comment %q, got %q", i, comments[i], rec.Comment)
		}
	}
}

func TestSQLiteStore_EmptyAll(t *testing.T) {
	s := newTestStore(t)

	records, err := s.AllFeedback(context.Background())
	if err != nil {
		t.Fatalf("AllFeedback failed: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("Expected no records, got %d", len(records))
	}
}

func TestSQLiteStore_Ping(t *testing.T) {
	s := newTestStore(t)
	if err := s.Ping(context.Background()); err != nil {
		t.Errorf("Ping failed: %v", err)
	}
}
