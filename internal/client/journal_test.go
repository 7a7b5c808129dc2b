package client

import (
	"testing"

	"github.com/claude/forgefit/internal/models"
	"github.com/google/uuid"
)

func TestJournalRoundTrip(t *testing.T) {
	j, err := OpenJournal(t.TempDir())
	if err != nil {
		t.Fatalf("OpenJournal: %v", err)
	}
	defer j.Close()

	entryID := uuid.New().String()

	submitted, err := j.IsSubmitted(entryID)
	if err != nil {
		t.Fatalf("IsSubmitted: %v", err)
	}
	if submitted {
		t.Error("fresh entry reported as submitted")
	}

	if err := j.MarkSubmitted(entryID, models.NewDate(2024, 1, 8), 25, 100); err != nil {
		t.Fatalf("MarkSubmitted: %v", err)
	}

	submitted, err = j.IsSubmitted(entryID)
	if err != nil {
		t.Fatalf("IsSubmitted after mark: %v", err)
	}
	if !submitted {
		t.Error("marked entry not reported as submitted")
	}
}

func TestJournalReopen(t *testing.T) {
	dir := t.TempDir()
	entryID := uuid.New().String()

	j, err := OpenJournal(dir)
	if err != nil {
		t.Fatalf("OpenJournal: %v", err)
	}
	if err := j.MarkSubmitted(entryID, models.NewDate(2024, 2, 1), 40, 150); err != nil {
		t.Fatalf("MarkSubmitted: %v", err)
	}
	j.Close()

	j, err = OpenJournal(dir)
	if err != nil {
		t.Fatalf("reopening journal: %v", err)
	}
	defer j.Close()

	submitted, err := j.IsSubmitted(entryID)
	if err != nil {
		t.Fatalf("IsSubmitted: %v", err)
	}
	if !submitted {
		t.Error("submission lost across reopen")
	}
}
