package analysis

import (
	"fmt"
	"testing"

	apperrors "resumelens/internal/errors"
	"resumelens/internal/types"
)

func TestHistorySaveNewestFirst(t *testing.T) {
	h := NewHistory()

	first := h.Save(types.StoredAnalysis{FileName: "first.txt"})
	second := h.Save(types.StoredAnalysis{FileName: "second.txt"})

	if first.ID == "" || second.ID == "" {
		t.Fatal("expected IDs to be assigned")
	}
	if first.ID == second.ID {
		t.Fatal("expected distinct IDs")
	}
	if first.AnalyzedAt.IsZero() {
		t.Error("expected timestamp to be assigned")
	}

	entries := h.List()
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].FileName != "second.txt" {
		t.Errorf("expected newest entry first, got %s", entries[0].FileName)
	}
}

func TestHistoryCapacity(t *testing.T) {
	h := NewHistory()

	for i := 0; i < historyCapacity+3; i++ {
		h.Save(types.StoredAnalysis{FileName: fmt.Sprintf("resume-%d.txt", i)})
	}

	entries := h.List()
	if len(entries) != historyCapacity {
		t.Fatalf("expected %d entries, got %d", historyCapacity, len(entries))
	}
	if entries[0].FileName != fmt.Sprintf("resume-%d.txt", historyCapacity+2) {
		t.Errorf("expected most recent entry kept, got %s", entries[0].FileName)
	}
	// The oldest entries were evicted
	for _, e := range entries {
		if e.FileName == "resume-0.txt" || e.FileName == "resume-1.txt" || e.FileName == "resume-2.txt" {
			t.Errorf("expected %s to be evicted", e.FileName)
		}
	}
}

func TestHistoryGet(t *testing.T) {
	h := NewHistory()
	saved := h.Save(types.StoredAnalysis{FileName: "resume.txt"})

	got, err := h.Get(saved.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.FileName != "resume.txt" {
		t.Errorf("unexpected entry %+v", got)
	}

	_, err = h.Get("no-such-id")
	if err == nil {
		t.Fatal("expected error for unknown id")
	}
	appErr, ok := err.(*apperrors.AppError)
	if !ok || appErr.Code != apperrors.ErrCodeAnalysisMissing {
		t.Errorf("expected %s error, got %v", apperrors.ErrCodeAnalysisMissing, err)
	}
}

func TestHistoryDelete(t *testing.T) {
	h := NewHistory()
	keep := h.Save(types.StoredAnalysis{FileName: "keep.txt"})
	drop := h.Save(types.StoredAnalysis{FileName: "drop.txt"})

	h.Delete(drop.ID)
	h.Delete("unknown-id") // no-op

	entries := h.List()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].ID != keep.ID {
		t.Errorf("wrong entry deleted")
	}
}

func TestHistoryRecordJobComparison(t *testing.T) {
	h := NewHistory()
	saved := h.Save(types.StoredAnalysis{FileName: "resume.txt"})

	if err := h.RecordJobComparison(saved.ID, types.TargetJobComparison{
		JobTitle:        "Frontend Developer",
		MatchPercentage: 60,
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := h.RecordJobComparison(saved.ID, types.TargetJobComparison{
		JobTitle:        "Backend Developer",
		MatchPercentage: 40,
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// A repeat comparison against the same title replaces the old one
	if err := h.RecordJobComparison(saved.ID, types.TargetJobComparison{
		JobTitle:        "Frontend Developer",
		MatchPercentage: 75,
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	entry, err := h.Get(saved.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entry.TargetJobComparisons) != 2 {
		t.Fatalf("expected 2 comparisons, got %d", len(entry.TargetJobComparisons))
	}
	last := entry.TargetJobComparisons[len(entry.TargetJobComparisons)-1]
	if last.JobTitle != "Frontend Developer" || last.MatchPercentage != 75 {
		t.Errorf("expected updated comparison appended last, got %+v", last)
	}

	if err := h.RecordJobComparison("unknown-id", types.TargetJobComparison{}); err == nil {
		t.Error("expected error for unknown id")
	}
}

func TestHistoryRecordSuggestions(t *testing.T) {
	h := NewHistory()
	saved := h.Save(types.StoredAnalysis{FileName: "resume.txt"})

	if err := h.RecordSuggestions(saved.ID, "add more metrics"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	entry, _ := h.Get(saved.ID)
	if entry.AISuggestions != "add more metrics" {
		t.Errorf("suggestions not stored: %q", entry.AISuggestions)
	}

	if err := h.RecordSuggestions("unknown-id", "x"); err == nil {
		t.Error("expected error for unknown id")
	}
}

func TestHistoryInfoAndClear(t *testing.T) {
	h := NewHistory()

	info := h.Info()
	if info.AnalysisCount != 0 || info.Capacity != historyCapacity {
		t.Errorf("unexpected info for empty store: %+v", info)
	}

	h.Save(types.StoredAnalysis{FileName: "resume.txt", ExtractedText: "some text"})
	info = h.Info()
	if info.AnalysisCount != 1 {
		t.Errorf("expected count 1, got %d", info.AnalysisCount)
	}
	if info.UsedBytes == 0 {
		t.Error("expected non-zero serialized size")
	}

	h.Clear()
	if len(h.List()) != 0 {
		t.Error("expected empty store after clear")
	}
}
