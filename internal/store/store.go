package store

import (
	"context"

	"github.com/siyaga/salon/internal/models"
)

type AddEntryInput struct {
	Branch      string
	Name        string
	Phone       string
	Packages    string
	BirthDate   string
	ArrivalTime string
	Address     string
	Note        string
}

type QueueStore interface {
	// TodayQueue returns the branch entries submitted today, in sheet order.
	// Read failures degrade to an empty queue.
	TodayQueue(ctx context.Context, branch string) []models.QueueEntry
	// Add appends a new waiting entry and returns its queue number.
	Add(ctx context.Context, input AddEntryInput) (int, error)
	// SetStatus updates the status of today's entry with the given queue
	// number. Unknown numbers are ignored.
	SetStatus(ctx context.Context, branch string, number int, status string) error
}

type SettingsStore interface {
	ListPackages(ctx context.Context) []models.Package
	AddPackage(ctx context.Context, pkg models.Package) error
	UpdatePackage(ctx context.Context, oldName string, pkg models.Package) error
	DeletePackage(ctx context.Context, name string) error

	ListCategories(ctx context.Context) []string
	AddCategory(ctx context.Context, name string) error
	DeleteCategory(ctx context.Context, name string) error

	Templates(ctx context.Context) models.Wording
	UpdateWording(ctx context.Context, wording models.Wording) error
}

type MemberStore interface {
	// Exists reports whether a member with the phone number is registered.
	Exists(ctx context.Context, phone string) (bool, error)
	// Verify returns the member only when both phone and birth date match.
	// A wrong birth date and an unknown phone fail identically.
	Verify(ctx context.Context, phone, birthDate string) (models.Member, bool, error)
	// Upsert updates the member row matching the phone, or appends one.
	Upsert(ctx context.Context, member models.Member) error
}
