package sheets

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/siyaga/salon/internal/models"
	"github.com/siyaga/salon/internal/store"
)

const testBranch = "Cabang 1"

func newTestStore(t *testing.T, api API) *Store {
	t.Helper()
	s, err := NewStore(api, "Asia/Jakarta")
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	s.now = func() time.Time {
		return time.Date(2024, 5, 20, 10, 0, 0, 0, s.loc)
	}
	return s
}

func queueRow(name, phone, date string, number int, status string) []string {
	return []string{name, phone, "Potong Reguler", "1990-01-01", "10:00", "Jl. Melati 1", "", date, strconv.Itoa(number), status}
}

func TestTodayQueueFiltersByDate(t *testing.T) {
	api := newFakeAPI()
	api.setRows(testBranch, [][]string{
		queueRow("Lama", "628111", "2024-05-19", 1, models.StatusDone),
		queueRow("Sari", "628222", "2024-05-20", 1, models.StatusWaiting),
		queueRow("Lama Dua", "628333", "2024-05-18", 2, models.StatusDone),
		queueRow("Budi", "628444", "2024-05-20", 2, models.StatusWaiting),
	})
	s := newTestStore(t, api)

	entries := s.TodayQueue(context.Background(), testBranch)
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	if entries[0].Name != "Sari" || entries[1].Name != "Budi" {
		t.Fatalf("unexpected entries: %+v", entries)
	}
	// Sheet rows resolved against the full unfiltered row set.
	if entries[0].Row != 3 || entries[1].Row != 5 {
		t.Fatalf("rows = %d, %d; want 3, 5", entries[0].Row, entries[1].Row)
	}
}

func TestTodayQueueReadFailureIsEmpty(t *testing.T) {
	api := newFakeAPI()
	api.readErr = errors.New("boom")
	s := newTestStore(t, api)

	if entries := s.TodayQueue(context.Background(), testBranch); len(entries) != 0 {
		t.Fatalf("got %d entries on read failure, want 0", len(entries))
	}
}

func TestAddAssignsNextNumber(t *testing.T) {
	api := newFakeAPI()
	api.setRows(testBranch, [][]string{
		queueRow("Lama", "628111", "2024-05-19", 1, models.StatusDone),
		queueRow("Sari", "628222", "2024-05-20", 1, models.StatusWaiting),
	})
	s := newTestStore(t, api)

	number, err := s.Add(context.Background(), store.AddEntryInput{
		Branch: testBranch,
		Name:   "Budi",
		Phone:  "628444",
	})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if number != 2 {
		t.Fatalf("number = %d, want 2", number)
	}

	rows := api.rows(testBranch)
	last := rows[len(rows)-1]
	if last[colDate] != "2024-05-20" || last[colStatus] != models.StatusWaiting {
		t.Fatalf("appended row = %v", last)
	}
}

func TestAddSerializesPerBranch(t *testing.T) {
	api := newFakeAPI()
	s := newTestStore(t, api)

	const workers = 10
	numbers := make([]int, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			n, err := s.Add(context.Background(), store.AddEntryInput{
				Branch: testBranch,
				Name:   "Pelanggan " + strconv.Itoa(i),
				Phone:  "62811" + strconv.Itoa(i),
			})
			if err != nil {
				t.Errorf("Add: %v", err)
				return
			}
			numbers[i] = n
		}(i)
	}
	wg.Wait()

	seen := make(map[int]bool)
	for _, n := range numbers {
		if n < 1 || n > workers || seen[n] {
			t.Fatalf("numbers not a dense unique sequence: %v", numbers)
		}
		seen[n] = true
	}
}

func TestSetStatusUpdatesResolvedRow(t *testing.T) {
	api := newFakeAPI()
	api.setRows(testBranch, [][]string{
		queueRow("Lama", "628111", "2024-05-19", 1, models.StatusDone),
		queueRow("Sari", "628222", "2024-05-20", 1, models.StatusWaiting),
		queueRow("Budi", "628444", "2024-05-20", 2, models.StatusWaiting),
	})
	s := newTestStore(t, api)

	if err := s.SetStatus(context.Background(), testBranch, 2, models.StatusServing); err != nil {
		t.Fatalf("SetStatus: %v", err)
	}

	rows := api.rows(testBranch)
	if rows[2][colStatus] != models.StatusServing {
		t.Fatalf("row 3 status = %q, want %q", rows[2][colStatus], models.StatusServing)
	}
	if rows[1][colStatus] != models.StatusWaiting {
		t.Fatalf("row 2 status changed: %q", rows[1][colStatus])
	}
}

func TestSetStatusUnknownNumberIsNoop(t *testing.T) {
	api := newFakeAPI()
	api.setRows(testBranch, [][]string{
		queueRow("Sari", "628222", "2024-05-20", 1, models.StatusWaiting),
	})
	s := newTestStore(t, api)

	if err := s.SetStatus(context.Background(), testBranch, 99, models.StatusDone); err != nil {
		t.Fatalf("SetStatus: %v", err)
	}
	if api.updates != 0 {
		t.Fatalf("expected no writes, got %d", api.updates)
	}
	if got := api.rows(testBranch)[0][colStatus]; got != models.StatusWaiting {
		t.Fatalf("status changed to %q", got)
	}
}
