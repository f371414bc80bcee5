package store

import (
	"errors"
	"fmt"
	"sync"

	"pqmudh/internal/domain"
)

var errNoReport = errors.New("store: no report saved")

// ReportFileStore keeps the most recent benchmark report in a single file.
type ReportFileStore struct {
	path string
	mu   sync.Mutex
}

var _ domain.ReportStore = (*ReportFileStore)(nil)

func NewReportFileStore(path string) *ReportFileStore { return &ReportFileStore{path: path} }

// Path returns the file the store writes to.
func (s *ReportFileStore) Path() string { return s.path }

// SaveReport replaces the stored report.
func (s *ReportFileStore) SaveReport(report domain.Report) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := writeJSON(s.path, report, 0o644); err != nil {
		return fmt.Errorf("store: writing %s: %w", s.path, err)
	}
	return nil
}

// LoadReport reads back the stored report.
func (s *ReportFileStore) LoadReport() (domain.Report, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var r domain.Report
	found, err := readJSON(s.path, &r)
	if err != nil {
		return domain.Report{}, fmt.Errorf("store: reading %s: %w", s.path, err)
	}
	if !found {
		return domain.Report{}, errNoReport
	}
	return r, nil
}
