package storage

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/apex/log"
	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"github.com/gabe/ecopatrol/internal/models"
)

// ErrReportNotFound is returned when no report has the requested ID
var ErrReportNotFound = errors.New("report not found")

// maxLineSize bounds a single JSONL record. Validated reports stay far below
// it; longer lines are reported as an error instead of being truncated.
const maxLineSize = 1 << 20

// ReportStore manages JSONL-based report storage. Reports are kept in
// submission order; that order drives map placement.
//
// The TUI and CLI may run as separate processes against the same file, so
// every operation also holds an advisory lock on <path>.lock: shared for
// reads, exclusive for appends and rewrites.
type ReportStore struct {
	path string
	mu   sync.Mutex // serializes use of the shared lock handle
	lock *flock.Flock
	now  func() time.Time
}

// Submission is what a citizen fills in on the report form
type Submission struct {
	Category     models.Category
	Title        string
	Description  string
	Address      string
	ReporterName string
	Priority     models.Priority // defaults to medium
	Latitude     float64
	Longitude    float64
}

// NewReportStore creates a store backed by the file at path
func NewReportStore(path string) (*ReportStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create report directory: %w", err)
	}

	return &ReportStore{
		path: path,
		lock: flock.New(path + ".lock"),
		now:  time.Now,
	}, nil
}

// withFileLock runs fn while holding the cross-process lock
func (s *ReportStore) withFileLock(exclusive bool, fn func() error) error {
	lockFn := s.lock.RLock
	if exclusive {
		lockFn = s.lock.Lock
	}
	if err := lockFn(); err != nil {
		return fmt.Errorf("failed to lock report store: %w", err)
	}
	defer s.lock.Unlock()

	return fn()
}

// Path returns the store file location
func (s *ReportStore) Path() string {
	return s.path
}

// Create records a new report from sub. The store assigns the ID, the
// submission date and the initial status.
func (s *ReportStore) Create(sub *Submission) (*models.EnvironmentalReport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	priority := sub.Priority
	if priority == "" {
		priority = models.PriorityMedium
	}

	report := &models.EnvironmentalReport{
		ID:            uuid.NewString(),
		Category:      sub.Category,
		Title:         sub.Title,
		Description:   sub.Description,
		Latitude:      sub.Latitude,
		Longitude:     sub.Longitude,
		Status:        models.StatusNew,
		Priority:      priority,
		SubmittedDate: s.now().Format(models.DateLayout),
		ReporterName:  sub.ReporterName,
		Address:       sub.Address,
	}
	if err := report.Validate(); err != nil {
		return nil, err
	}

	err := s.withFileLock(true, func() error {
		return s.appendReports([]*models.EnvironmentalReport{report})
	})
	if err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{
		"id":       report.ID,
		"category": report.Category,
	}).Info("report submitted")
	return report, nil
}

// Import appends fully formed reports, keeping their IDs. Every report is
// validated and IDs must not collide with stored ones.
func (s *ReportStore) Import(reports []models.EnvironmentalReport) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var batch []*models.EnvironmentalReport
	err := s.withFileLock(true, func() error {
		existing, err := s.readAllReports()
		if err != nil {
			return err
		}
		seen := make(map[string]bool, len(existing)+len(reports))
		for _, r := range existing {
			seen[r.ID] = true
		}

		batch = make([]*models.EnvironmentalReport, 0, len(reports))
		for i := range reports {
			r := reports[i]
			if err := r.Validate(); err != nil {
				return err
			}
			if seen[r.ID] {
				return fmt.Errorf("duplicate report id: %s", r.ID)
			}
			seen[r.ID] = true
			batch = append(batch, &r)
		}
		return s.appendReports(batch)
	})
	if err != nil {
		return err
	}

	log.WithField("count", len(batch)).Info("reports imported")
	return nil
}

// List returns a snapshot of every report in submission order
func (s *ReportStore) List() ([]models.EnvironmentalReport, error) {
	reports, err := s.snapshot()
	if err != nil {
		return nil, err
	}

	out := make([]models.EnvironmentalReport, len(reports))
	for i, r := range reports {
		out[i] = *r
	}
	return out, nil
}

// Get retrieves a report by ID
func (s *ReportStore) Get(id string) (*models.EnvironmentalReport, error) {
	reports, err := s.snapshot()
	if err != nil {
		return nil, err
	}

	for _, report := range reports {
		if report.ID == id {
			return report, nil
		}
	}

	return nil, fmt.Errorf("%w: %s", ErrReportNotFound, id)
}

// snapshot reads the store under a shared file lock
func (s *ReportStore) snapshot() ([]*models.EnvironmentalReport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var reports []*models.EnvironmentalReport
	err := s.withFileLock(false, func() error {
		var err error
		reports, err = s.readAllReports()
		return err
	})
	return reports, err
}

// SetStatus moves a report to a new workflow status. The read, rewrite and
// rename happen under one exclusive lock so concurrent appends are kept.
func (s *ReportStore) SetStatus(id string, status models.Status) (*models.EnvironmentalReport, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", models.ErrInvalidReport, status)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var updated *models.EnvironmentalReport
	err := s.withFileLock(true, func() error {
		reports, err := s.readAllReports()
		if err != nil {
			return err
		}

		for _, report := range reports {
			if report.ID == id {
				report.Status = status
				updated = report
				break
			}
		}
		if updated == nil {
			return fmt.Errorf("%w: %s", ErrReportNotFound, id)
		}

		return s.writeAllReports(reports)
	})
	if err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{
		"id":     id,
		"status": status,
	}).Info("report status changed")
	return updated, nil
}

func (s *ReportStore) appendReports(reports []*models.EnvironmentalReport) error {
	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer f.Close()

	for _, report := range reports {
		data, err := json.Marshal(report)
		if err != nil {
			return err
		}
		if _, err := f.Write(append(data, '\n')); err != nil {
			return err
		}
	}
	return nil
}

func (s *ReportStore) readAllReports() ([]*models.EnvironmentalReport, error) {
	f, err := os.Open(s.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var reports []*models.EnvironmentalReport
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	line := 0
	for scanner.Scan() {
		line++
		if len(scanner.Bytes()) == 0 {
			continue
		}
		var report models.EnvironmentalReport
		if err := json.Unmarshal(scanner.Bytes(), &report); err != nil {
			log.WithError(err).WithField("line", line).Warn("skipping malformed report line")
			continue
		}
		if err := report.Validate(); err != nil {
			log.WithError(err).WithField("line", line).Warn("skipping invalid report")
			continue
		}
		reports = append(reports, &report)
	}

	return reports, scanner.Err()
}

func (s *ReportStore) writeAllReports(reports []*models.EnvironmentalReport) error {
	// Write to temp file first
	tmpFile := s.path + ".tmp"
	f, err := os.Create(tmpFile)
	if err != nil {
		return err
	}

	for _, report := range reports {
		data, err := json.Marshal(report)
		if err != nil {
			f.Close()
			os.Remove(tmpFile)
			return err
		}
		if _, err := f.Write(append(data, '\n')); err != nil {
			f.Close()
			os.Remove(tmpFile)
			return err
		}
	}

	if err := f.Close(); err != nil {
		os.Remove(tmpFile)
		return err
	}

	return os.Rename(tmpFile, s.path)
}
