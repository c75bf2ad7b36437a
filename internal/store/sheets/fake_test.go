package sheets

import (
	"context"
	"strconv"
	"strings"
	"sync"
	"unicode"
)

// fakeAPI is an in-memory spreadsheet keyed by sheet name. It understands the
// A1-notation shapes the store emits: full-table reads from row 2, appends,
// clears, and updates addressed at a column/row anchor.
type fakeAPI struct {
	mu     sync.Mutex
	sheets map[string][][]string

	readErr   error
	appendErr error
	updateErr error
	clearErr  error

	updates int
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{sheets: make(map[string][][]string)}
}

func splitRange(rng string) (sheet, ref string) {
	parts := strings.SplitN(rng, "!", 2)
	sheet = strings.Trim(parts[0], "'")
	if len(parts) == 2 {
		ref = parts[1]
	}
	return sheet, ref
}

// anchor parses the leading cell of a ref like "A2", "J5", or "A5:D5".
// Returns zero-based column and spreadsheet row (1-based, 0 when absent).
func anchor(ref string) (col, row int) {
	ref = strings.SplitN(ref, ":", 2)[0]
	i := 0
	for i < len(ref) && unicode.IsLetter(rune(ref[i])) {
		i++
	}
	if i > 0 {
		col = int(ref[0] - 'A')
	}
	if i < len(ref) {
		row, _ = strconv.Atoi(ref[i:])
	}
	return col, row
}

func (f *fakeAPI) Read(_ context.Context, rng string) ([][]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.readErr != nil {
		return nil, f.readErr
	}
	sheet, _ := splitRange(rng)
	rows := f.sheets[sheet]
	out := make([][]string, len(rows))
	for i, row := range rows {
		out[i] = append([]string(nil), row...)
	}
	return out, nil
}

func (f *fakeAPI) Append(_ context.Context, rng string, rows [][]string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.appendErr != nil {
		return f.appendErr
	}
	sheet, _ := splitRange(rng)
	for _, row := range rows {
		f.sheets[sheet] = append(f.sheets[sheet], append([]string(nil), row...))
	}
	return nil
}

func (f *fakeAPI) Update(_ context.Context, rng string, rows [][]string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updates++
	sheet, ref := splitRange(rng)
	col, row := anchor(ref)
	if row < firstDataRow {
		row = firstDataRow
	}
	for i, cells := range rows {
		index := row - firstDataRow + i
		for len(f.sheets[sheet]) <= index {
			f.sheets[sheet] = append(f.sheets[sheet], nil)
		}
		target := f.sheets[sheet][index]
		for len(target) < col+len(cells) {
			target = append(target, "")
		}
		copy(target[col:], cells)
		f.sheets[sheet][index] = target
	}
	return nil
}

func (f *fakeAPI) Clear(_ context.Context, rng string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.clearErr != nil {
		return f.clearErr
	}
	sheet, _ := splitRange(rng)
	f.sheets[sheet] = nil
	return nil
}

func (f *fakeAPI) rows(sheet string) [][]string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.sheets[sheet]
}

func (f *fakeAPI) setRows(sheet string, rows [][]string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sheets[sheet] = rows
}
