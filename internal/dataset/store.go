package dataset

import (
	"sort"
	"strings"

	"github.com/gmartell/ratioscope/internal/domain/models"
)

// Store is the process-wide read-only mapping from company code to its full
// series. It is built once by Load and never mutated afterwards, so lookups
// need no synchronization.
type Store struct {
	series map[string]models.Series
	codes  []string
}

// NewStore builds a Store from an already-parsed code -> series mapping.
func NewStore(series map[string]models.Series) *Store {
	codes := make([]string, 0, len(series))
	for code := range series {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return &Store{series: series, codes: codes}
}

// Company returns the full series for a code (case-insensitive). The second
// return reports whether the company exists; an unknown code is the
// caller's "not found", never an error here.
func (s *Store) Company(code string) (models.Series, bool) {
	sr, ok := s.series[strings.ToUpper(strings.TrimSpace(code))]
	return sr, ok
}

// Codes returns all known company codes, sorted.
func (s *Store) Codes() []string {
	return s.codes
}

// Len returns the number of companies loaded.
func (s *Store) Len() int {
	return len(s.series)
}
