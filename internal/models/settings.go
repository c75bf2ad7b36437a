package models

// Package is one service package offered by a branch. Name is the catalog key.
type Package struct {
	Name        string `json:"nama"`
	Duration    string `json:"durasi"`
	Description string `json:"deskripsi"`
	Category    string `json:"kategori"`
}

// Wording holds the two WhatsApp message templates. Placeholder tokens
// ([nama], [no_antrian], [jam_datang], [note]) are filled per entry.
type Wording struct {
	Call     string `json:"panggil"`
	Reminder string `json:"reminder"`
}

// Wording sheet keys.
const (
	WordingCall     = "PANGGIL"
	WordingReminder = "REMINDER"
)

// Member is a returning customer record keyed by normalized phone number.
type Member struct {
	Phone     string `json:"no_wa"`
	Name      string `json:"nama"`
	BirthDate string `json:"tgl_lahir"`
	Address   string `json:"alamat"`
}
