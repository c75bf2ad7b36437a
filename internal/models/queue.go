package models

// QueueEntry is one row of a branch queue sheet. Row is the 1-based sheet row
// the entry was read from, used to address status updates.
type QueueEntry struct {
	Row         int    `json:"-"`
	Name        string `json:"nama"`
	Phone       string `json:"no_wa"`
	Packages    string `json:"paket"`
	BirthDate   string `json:"tgl_lahir"`
	ArrivalTime string `json:"jam_datang"`
	Address     string `json:"alamat"`
	Note        string `json:"note"`
	Date        string `json:"timestamp"`
	Number      int    `json:"no_antrian"`
	Status      string `json:"status"`
}

// Status values as stored in the sheets.
const (
	StatusWaiting = "Menunggu"
	StatusServing = "Melayani"
	StatusDone    = "Selesai"
)
