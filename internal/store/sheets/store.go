// Package sheets implements the store interfaces on top of the spreadsheet
// values API. The spreadsheet is the sole source of truth: every operation
// re-reads its table, nothing is cached in process.
package sheets

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// API is the subset of the values client the store needs.
type API interface {
	Read(ctx context.Context, readRange string) ([][]string, error)
	Append(ctx context.Context, writeRange string, rows [][]string) error
	Update(ctx context.Context, writeRange string, rows [][]string) error
	Clear(ctx context.Context, clearRange string) error
}

type Store struct {
	api API
	loc *time.Location
	now func() time.Time

	// Read-then-write sequences (queue numbering, full-table replaces) are
	// serialized per sheet within this process. Concurrent writers in other
	// processes can still race; the backing API has no transactions.
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewStore(api API, timezone string) (*Store, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", timezone, err)
	}
	return &Store{
		api:   api,
		loc:   loc,
		now:   time.Now,
		locks: make(map[string]*sync.Mutex),
	}, nil
}

func (s *Store) lock(sheet string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locks[sheet]
	if !ok {
		l = &sync.Mutex{}
		s.locks[sheet] = l
	}
	return l
}

func (s *Store) today() string {
	return s.now().In(s.loc).Format("2006-01-02")
}
