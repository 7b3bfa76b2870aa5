package analysis

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"

	apperrors "resumelens/internal/errors"
	"resumelens/internal/types"
)

// historyCapacity bounds the number of retained analyses. The newest
// entry evicts the oldest once the store is full.
const historyCapacity = 10

// History is a bounded, newest-first, in-memory store of analysis
// snapshots. Safe for concurrent use.
type History struct {
	mu      sync.RWMutex
	entries []types.StoredAnalysis
}

// NewHistory returns an empty history store
func NewHistory() *History {
	return &History{}
}

// Save stores a new analysis snapshot at the front of the history and
// returns it with its assigned ID and timestamp
func (h *History) Save(analysis types.StoredAnalysis) types.StoredAnalysis {
	analysis.ID = uuid.NewString()
	analysis.AnalyzedAt = time.Now()

	h.mu.Lock()
	defer h.mu.Unlock()

	h.entries = append([]types.StoredAnalysis{analysis}, h.entries...)
	if len(h.entries) > historyCapacity {
		h.entries = h.entries[:historyCapacity]
	}
	return analysis
}

// List returns all stored analyses, newest first
func (h *History) List() []types.StoredAnalysis {
	h.mu.RLock()
	defer h.mu.RUnlock()

	out := make([]types.StoredAnalysis, len(h.entries))
	copy(out, h.entries)
	return out
}

// Get returns the analysis with the given ID
func (h *History) Get(id string) (types.StoredAnalysis, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, entry := range h.entries {
		if entry.ID == id {
			return entry, nil
		}
	}
	return types.StoredAnalysis{}, apperrors.NewNotFoundError(
		apperrors.ErrCodeAnalysisMissing, "analysis not found", nil).WithContext("id", id)
}

// Delete removes the analysis with the given ID. Deleting an unknown ID
// is a no-op.
func (h *History) Delete(id string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for i, entry := range h.entries {
		if entry.ID == id {
			h.entries = append(h.entries[:i], h.entries[i+1:]...)
			return
		}
	}
}

// Clear removes all stored analyses
func (h *History) Clear() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.entries = nil
}

// RecordJobComparison attaches a target job comparison to a stored
// analysis, replacing any previous comparison against the same job title
func (h *History) RecordJobComparison(id string, comparison types.TargetJobComparison) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	for i := range h.entries {
		if h.entries[i].ID != id {
			continue
		}
		stored := types.StoredJobComparison{
			JobTitle:               comparison.JobTitle,
			MatchPercentage:        comparison.MatchPercentage,
			AnalyzedAt:             time.Now(),
			MissingRequiredSkills:  comparison.MissingRequiredSkills,
			MissingPreferredSkills: comparison.MissingPreferredSkills,
		}

		kept := h.entries[i].TargetJobComparisons[:0:0]
		for _, existing := range h.entries[i].TargetJobComparisons {
			if existing.JobTitle != comparison.JobTitle {
				kept = append(kept, existing)
			}
		}
		h.entries[i].TargetJobComparisons = append(kept, stored)
		return nil
	}
	return apperrors.NewNotFoundError(
		apperrors.ErrCodeAnalysisMissing, "analysis not found", nil).WithContext("id", id)
}

// RecordSuggestions attaches externally generated suggestions to a
// stored analysis
func (h *History) RecordSuggestions(id, suggestions string) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	for i := range h.entries {
		if h.entries[i].ID == id {
			h.entries[i].AISuggestions = suggestions
			return nil
		}
	}
	return apperrors.NewNotFoundError(
		apperrors.ErrCodeAnalysisMissing, "analysis not found", nil).WithContext("id", id)
}

// Info reports entry count and the serialized size of the store
func (h *History) Info() types.HistoryInfo {
	h.mu.RLock()
	defer h.mu.RUnlock()

	var used int64
	if data, err := json.Marshal(h.entries); err == nil {
		used = int64(len(data))
	}
	return types.HistoryInfo{
		AnalysisCount: len(h.entries),
		UsedBytes:     used,
		Capacity:      historyCapacity,
	}
}
