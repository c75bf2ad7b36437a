package sheets

import (
	"context"
	"log"

	"github.com/siyaga/salon/internal/models"
)

var defaultCategories = []string{
	"Potong Rambut",
	"Perawatan Rambut",
	"Perawatan Wajah",
}

var defaultPackages = []models.Package{
	{Name: "Potong Reguler", Duration: "30 Menit", Description: "Cuci, potong, dan blow dry.", Category: "Potong Rambut"},
	{Name: "Potong + Styling", Duration: "45 Menit", Description: "Potong plus styling khusus.", Category: "Potong Rambut"},
	{Name: "Creambath Tradisional", Duration: "60 Menit", Description: "Termasuk pijat kepala dan punggung.", Category: "Perawatan Rambut"},
	{Name: "Hair Mask", Duration: "45 Menit", Description: "Perawatan intensif rambut rusak.", Category: "Perawatan Rambut"},
	{Name: "Facial Normal", Duration: "45 Menit", Description: "Pembersihan dan pencerahan.", Category: "Perawatan Wajah"},
	{Name: "Facial Acne", Duration: "60 Menit", Description: "Perawatan khusus kulit berjerawat.", Category: "Perawatan Wajah"},
}

var defaultWording = models.Wording{
	Call:     "Halo [nama], sekarang giliran Anda (No. [no_antrian]) jam [jam_datang].\nCatatan: [note]",
	Reminder: "Halo [nama], antrian Anda (No. [no_antrian]) jam [jam_datang] sebentar lagi akan dipanggil.\nCatatan: [note]",
}

// ---- Packages ----

func (s *Store) ListPackages(ctx context.Context) []models.Package {
	rows, err := s.api.Read(ctx, sheetPackages+"!A2:D")
	if err != nil {
		log.Printf("packages read error=%v", err)
		return append([]models.Package(nil), defaultPackages...)
	}
	if len(rows) == 0 {
		s.seedPackages(ctx)
		return append([]models.Package(nil), defaultPackages...)
	}

	packages := make([]models.Package, 0, len(rows))
	for _, row := range rows {
		pkg := decodePackageRow(row)
		if pkg.Name == "" {
			continue
		}
		packages = append(packages, pkg)
	}
	return packages
}

func (s *Store) seedPackages(ctx context.Context) {
	log.Printf("sheet %s empty, seeding defaults", sheetPackages)
	rows := make([][]string, len(defaultPackages))
	for i, pkg := range defaultPackages {
		rows[i] = encodePackageRow(pkg)
	}
	if err := s.api.Update(ctx, sheetPackages+"!A2:D7", rows); err != nil {
		log.Printf("packages seed error=%v", err)
	}
}

func (s *Store) AddPackage(ctx context.Context, pkg models.Package) error {
	return s.api.Append(ctx, sheetPackages+"!A:D", [][]string{encodePackageRow(pkg)})
}

func (s *Store) UpdatePackage(ctx context.Context, oldName string, pkg models.Package) error {
	l := s.lock(sheetPackages)
	l.Lock()
	defer l.Unlock()

	packages := s.ListPackages(ctx)
	index := -1
	for i, existing := range packages {
		if existing.Name == oldName {
			index = i
			break
		}
	}
	if index == -1 {
		return nil
	}
	packages[index] = pkg
	return s.rewritePackages(ctx, packages)
}

func (s *Store) DeletePackage(ctx context.Context, name string) error {
	l := s.lock(sheetPackages)
	l.Lock()
	defer l.Unlock()

	packages := s.ListPackages(ctx)
	remaining := packages[:0:0]
	for _, pkg := range packages {
		if pkg.Name != name {
			remaining = append(remaining, pkg)
		}
	}
	return s.rewritePackages(ctx, remaining)
}

// rewritePackages replaces the whole table: clear, then write the rows back.
// Two calls with no atomicity between them.
func (s *Store) rewritePackages(ctx context.Context, packages []models.Package) error {
	if err := s.api.Clear(ctx, sheetPackages+"!A2:D"); err != nil {
		return err
	}
	if len(packages) == 0 {
		return nil
	}
	rows := make([][]string, len(packages))
	for i, pkg := range packages {
		rows[i] = encodePackageRow(pkg)
	}
	return s.api.Update(ctx, sheetPackages+"!A2", rows)
}

// ---- Categories ----

func (s *Store) ListCategories(ctx context.Context) []string {
	rows, err := s.api.Read(ctx, sheetCategories+"!A2:A")
	if err != nil {
		log.Printf("categories read error=%v", err)
		return append([]string(nil), defaultCategories...)
	}
	if len(rows) == 0 {
		s.seedCategories(ctx)
		return append([]string(nil), defaultCategories...)
	}

	categories := make([]string, 0, len(rows))
	for _, row := range rows {
		if name := cell(row, 0); name != "" {
			categories = append(categories, name)
		}
	}
	return categories
}

func (s *Store) seedCategories(ctx context.Context) {
	log.Printf("sheet %s empty, seeding defaults", sheetCategories)
	rows := make([][]string, len(defaultCategories))
	for i, name := range defaultCategories {
		rows[i] = []string{name}
	}
	if err := s.api.Update(ctx, sheetCategories+"!A2:A4", rows); err != nil {
		log.Printf("categories seed error=%v", err)
	}
}

func (s *Store) AddCategory(ctx context.Context, name string) error {
	return s.api.Append(ctx, sheetCategories+"!A:A", [][]string{{name}})
}

func (s *Store) DeleteCategory(ctx context.Context, name string) error {
	l := s.lock(sheetCategories)
	l.Lock()
	defer l.Unlock()

	categories := s.ListCategories(ctx)
	remaining := categories[:0:0]
	for _, existing := range categories {
		if existing != name {
			remaining = append(remaining, existing)
		}
	}

	if err := s.api.Clear(ctx, sheetCategories+"!A2:A"); err != nil {
		return err
	}
	if len(remaining) == 0 {
		return nil
	}
	rows := make([][]string, len(remaining))
	for i, existing := range remaining {
		rows[i] = []string{existing}
	}
	return s.api.Update(ctx, sheetCategories+"!A2", rows)
}

// ---- Wording ----

func (s *Store) Templates(ctx context.Context) models.Wording {
	rows, err := s.api.Read(ctx, sheetWording+"!A2:B")
	if err != nil {
		log.Printf("wording read error=%v", err)
		return defaultWording
	}
	if len(rows) == 0 {
		s.seedWording(ctx)
		return defaultWording
	}

	wording := models.Wording{}
	for _, row := range rows {
		key, text := cell(row, 0), cell(row, 1)
		if key == "" || text == "" {
			continue
		}
		switch key {
		case models.WordingCall:
			wording.Call = text
		case models.WordingReminder:
			wording.Reminder = text
		}
	}
	return wording
}

func (s *Store) seedWording(ctx context.Context) {
	log.Printf("sheet %s empty, seeding defaults", sheetWording)
	if err := s.api.Update(ctx, sheetWording+"!A2:B3", wordingRows(defaultWording)); err != nil {
		log.Printf("wording seed error=%v", err)
	}
}

// UpdateWording always overwrites both template rows in place; the table is
// fixed at two rows, so no clear is needed.
func (s *Store) UpdateWording(ctx context.Context, wording models.Wording) error {
	return s.api.Update(ctx, sheetWording+"!A2:B3", wordingRows(wording))
}

func wordingRows(wording models.Wording) [][]string {
	return [][]string{
		{models.WordingCall, wording.Call},
		{models.WordingReminder, wording.Reminder},
	}
}
