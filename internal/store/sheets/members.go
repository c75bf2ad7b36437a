package sheets

import (
	"context"

	"github.com/siyaga/salon/internal/models"
)

func (s *Store) Exists(ctx context.Context, phone string) (bool, error) {
	rows, err := s.api.Read(ctx, sheetUsers+"!A2:D")
	if err != nil {
		return false, err
	}
	for _, row := range rows {
		if cell(row, 0) == phone {
			return true, nil
		}
	}
	return false, nil
}

func (s *Store) Verify(ctx context.Context, phone, birthDate string) (models.Member, bool, error) {
	rows, err := s.api.Read(ctx, sheetUsers+"!A2:D")
	if err != nil {
		return models.Member{}, false, err
	}
	for _, row := range rows {
		// Both must match; an unknown phone and a wrong birth date are
		// indistinguishable to the caller.
		if cell(row, 0) == phone && cell(row, 2) == birthDate {
			return decodeMemberRow(row), true, nil
		}
	}
	return models.Member{}, false, nil
}

func (s *Store) Upsert(ctx context.Context, member models.Member) error {
	l := s.lock(sheetUsers)
	l.Lock()
	defer l.Unlock()

	rows, err := s.api.Read(ctx, sheetUsers+"!A2:D")
	if err != nil {
		return err
	}
	for i, row := range rows {
		if cell(row, 0) == member.Phone {
			return s.api.Update(ctx, memberRowRange(i+firstDataRow), [][]string{encodeMemberRow(member)})
		}
	}
	return s.api.Append(ctx, sheetUsers+"!A:D", [][]string{encodeMemberRow(member)})
}
