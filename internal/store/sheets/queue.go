package sheets

import (
	"context"
	"log"

	"github.com/siyaga/salon/internal/models"
	"github.com/siyaga/salon/internal/store"
)

func (s *Store) TodayQueue(ctx context.Context, branch string) []models.QueueEntry {
	entries, err := s.fetchToday(ctx, branch)
	if err != nil {
		log.Printf("queue read branch=%q error=%v", branch, err)
		return nil
	}
	return entries
}

// fetchToday reads the whole branch sheet and keeps today's rows. Each
// entry's sheet row is resolved by re-scanning the unfiltered rows for the
// first (name, phone, date) match, so status updates address the right cell
// even with historical rows above.
func (s *Store) fetchToday(ctx context.Context, branch string) ([]models.QueueEntry, error) {
	allRows, err := s.api.Read(ctx, queueReadRange(branch))
	if err != nil {
		return nil, err
	}

	today := s.today()
	var entries []models.QueueEntry
	for _, row := range allRows {
		if cell(row, colDate) != today {
			continue
		}
		entry := decodeQueueRow(row)
		for i, candidate := range allRows {
			if cell(candidate, colName) == entry.Name &&
				cell(candidate, colPhone) == entry.Phone &&
				cell(candidate, colDate) == entry.Date {
				entry.Row = i + firstDataRow
				break
			}
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func (s *Store) Add(ctx context.Context, input store.AddEntryInput) (int, error) {
	l := s.lock(input.Branch)
	l.Lock()
	defer l.Unlock()

	// Fail-open on read errors, like TodayQueue: an unreadable sheet counts
	// as empty and numbering restarts at 1.
	entries, err := s.fetchToday(ctx, input.Branch)
	if err != nil {
		log.Printf("queue read branch=%q error=%v", input.Branch, err)
	}

	entry := models.QueueEntry{
		Name:        input.Name,
		Phone:       input.Phone,
		Packages:    input.Packages,
		BirthDate:   input.BirthDate,
		ArrivalTime: input.ArrivalTime,
		Address:     input.Address,
		Note:        input.Note,
		Date:        s.today(),
		Number:      len(entries) + 1,
		Status:      models.StatusWaiting,
	}

	if err := s.api.Append(ctx, queueWriteRange(input.Branch), [][]string{encodeQueueRow(entry)}); err != nil {
		return 0, err
	}
	return entry.Number, nil
}

func (s *Store) SetStatus(ctx context.Context, branch string, number int, status string) error {
	l := s.lock(branch)
	l.Lock()
	defer l.Unlock()

	entries, err := s.fetchToday(ctx, branch)
	if err != nil {
		log.Printf("queue read branch=%q error=%v", branch, err)
		return nil
	}
	for _, entry := range entries {
		if entry.Number == number {
			return s.api.Update(ctx, statusCell(branch, entry.Row), [][]string{{status}})
		}
	}
	// Unknown queue number: nothing to update.
	return nil
}
