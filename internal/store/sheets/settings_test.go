package sheets

import (
	"context"
	"errors"
	"testing"

	"github.com/siyaga/salon/internal/models"
)

func TestListPackagesSeedsWhenEmpty(t *testing.T) {
	api := newFakeAPI()
	s := newTestStore(t, api)

	packages := s.ListPackages(context.Background())
	if len(packages) != len(defaultPackages) {
		t.Fatalf("got %d packages, want %d", len(packages), len(defaultPackages))
	}
	if rows := api.rows(sheetPackages); len(rows) != len(defaultPackages) {
		t.Fatalf("sheet has %d rows after seed, want %d", len(rows), len(defaultPackages))
	}

	// Second call reads the seeded table, no second seed write.
	before := api.updates
	again := s.ListPackages(context.Background())
	if api.updates != before {
		t.Fatalf("second list wrote %d more updates", api.updates-before)
	}
	if len(again) != len(defaultPackages) || again[0] != packages[0] {
		t.Fatalf("second list differs: %+v", again)
	}
}

func TestListPackagesReadFailureReturnsDefaultsUnpersisted(t *testing.T) {
	api := newFakeAPI()
	api.readErr = errors.New("boom")
	s := newTestStore(t, api)

	packages := s.ListPackages(context.Background())
	if len(packages) != len(defaultPackages) {
		t.Fatalf("got %d packages, want defaults", len(packages))
	}
	if api.updates != 0 {
		t.Fatal("defaults must not be persisted on read failure")
	}
}

func TestListPackagesDecodingFallbacks(t *testing.T) {
	api := newFakeAPI()
	api.setRows(sheetPackages, [][]string{
		{"Potong Anak"},
		{""},
		{"Smoothing", "120 Menit", "", ""},
	})
	s := newTestStore(t, api)

	packages := s.ListPackages(context.Background())
	if len(packages) != 2 {
		t.Fatalf("got %d packages, want 2 (empty name skipped)", len(packages))
	}
	if packages[0].Duration != "-" || packages[0].Description != "-" || packages[0].Category != "Lainnya" {
		t.Fatalf("fallbacks not applied: %+v", packages[0])
	}
}

func TestDeletePackageKeepsOthersInOrder(t *testing.T) {
	api := newFakeAPI()
	api.setRows(sheetPackages, [][]string{
		{"A", "30 Menit", "a", "Kat"},
		{"B", "45 Menit", "b", "Kat"},
		{"C", "60 Menit", "c", "Kat"},
	})
	s := newTestStore(t, api)

	if err := s.DeletePackage(context.Background(), "B"); err != nil {
		t.Fatalf("DeletePackage: %v", err)
	}
	rows := api.rows(sheetPackages)
	if len(rows) != 2 || rows[0][0] != "A" || rows[1][0] != "C" {
		t.Fatalf("unexpected rows after delete: %v", rows)
	}
}

func TestDeletePackageUnknownNameLeavesTable(t *testing.T) {
	api := newFakeAPI()
	api.setRows(sheetPackages, [][]string{
		{"A", "30 Menit", "a", "Kat"},
		{"B", "45 Menit", "b", "Kat"},
	})
	s := newTestStore(t, api)

	if err := s.DeletePackage(context.Background(), "Z"); err != nil {
		t.Fatalf("DeletePackage: %v", err)
	}
	rows := api.rows(sheetPackages)
	if len(rows) != 2 || rows[0][0] != "A" || rows[1][0] != "B" {
		t.Fatalf("table changed: %v", rows)
	}
}

func TestUpdatePackageReplacesInPlace(t *testing.T) {
	api := newFakeAPI()
	api.setRows(sheetPackages, [][]string{
		{"A", "30 Menit", "a", "Kat"},
		{"B", "45 Menit", "b", "Kat"},
	})
	s := newTestStore(t, api)

	err := s.UpdatePackage(context.Background(), "A", models.Package{
		Name: "A Baru", Duration: "40 Menit", Description: "baru", Category: "Kat",
	})
	if err != nil {
		t.Fatalf("UpdatePackage: %v", err)
	}
	rows := api.rows(sheetPackages)
	if rows[0][0] != "A Baru" || rows[0][1] != "40 Menit" {
		t.Fatalf("row not replaced: %v", rows[0])
	}
	if rows[1][0] != "B" {
		t.Fatalf("other row touched: %v", rows[1])
	}
}

func TestUpdatePackageUnknownNameIsNoop(t *testing.T) {
	api := newFakeAPI()
	api.setRows(sheetPackages, [][]string{{"A", "30 Menit", "a", "Kat"}})
	s := newTestStore(t, api)

	if err := s.UpdatePackage(context.Background(), "Z", models.Package{Name: "Z"}); err != nil {
		t.Fatalf("UpdatePackage: %v", err)
	}
	if rows := api.rows(sheetPackages); rows[0][0] != "A" {
		t.Fatalf("table changed: %v", rows)
	}
}

func TestCategoriesSeedAndDelete(t *testing.T) {
	api := newFakeAPI()
	s := newTestStore(t, api)

	categories := s.ListCategories(context.Background())
	if len(categories) != 3 {
		t.Fatalf("got %v, want 3 defaults", categories)
	}

	if err := s.DeleteCategory(context.Background(), "Perawatan Rambut"); err != nil {
		t.Fatalf("DeleteCategory: %v", err)
	}
	categories = s.ListCategories(context.Background())
	if len(categories) != 2 || categories[0] != "Potong Rambut" || categories[1] != "Perawatan Wajah" {
		t.Fatalf("unexpected categories after delete: %v", categories)
	}
}

func TestAddCategoryAppends(t *testing.T) {
	api := newFakeAPI()
	api.setRows(sheetCategories, [][]string{{"Potong Rambut"}})
	s := newTestStore(t, api)

	if err := s.AddCategory(context.Background(), "Nail Art"); err != nil {
		t.Fatalf("AddCategory: %v", err)
	}
	rows := api.rows(sheetCategories)
	if len(rows) != 2 || rows[1][0] != "Nail Art" {
		t.Fatalf("unexpected rows: %v", rows)
	}
}

func TestTemplatesSeedAndUpdate(t *testing.T) {
	api := newFakeAPI()
	s := newTestStore(t, api)

	wording := s.Templates(context.Background())
	if wording != defaultWording {
		t.Fatalf("unexpected seeded wording: %+v", wording)
	}
	if rows := api.rows(sheetWording); len(rows) != 2 || rows[0][0] != models.WordingCall {
		t.Fatalf("wording sheet not seeded: %v", rows)
	}

	updated := models.Wording{Call: "panggil baru", Reminder: "reminder baru"}
	if err := s.UpdateWording(context.Background(), updated); err != nil {
		t.Fatalf("UpdateWording: %v", err)
	}
	if got := s.Templates(context.Background()); got != updated {
		t.Fatalf("Templates after update = %+v", got)
	}
}

func TestTemplatesReadFailureReturnsDefaults(t *testing.T) {
	api := newFakeAPI()
	api.readErr = errors.New("boom")
	s := newTestStore(t, api)

	if got := s.Templates(context.Background()); got != defaultWording {
		t.Fatalf("got %+v, want defaults", got)
	}
}
