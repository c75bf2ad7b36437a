package sheets

import (
	"strconv"

	"github.com/siyaga/salon/internal/models"
)

// Sheet names inside the backing spreadsheet. Queue sheets are named after
// their branch.
const (
	sheetPackages   = "Paket"
	sheetCategories = "Kategori"
	sheetWording    = "Wording"
	sheetUsers      = "Users"
)

// Data rows start below a single header row.
const firstDataRow = 2

// Queue sheet columns A..J, in stored order.
const (
	colName = iota
	colPhone
	colPackages
	colBirthDate
	colArrivalTime
	colAddress
	colNote
	colDate
	colNumber
	colStatus
)

func queueReadRange(branch string) string  { return "'" + branch + "'!A2:J" }
func queueWriteRange(branch string) string { return "'" + branch + "'!A:J" }

func statusCell(branch string, row int) string {
	return "'" + branch + "'!J" + strconv.Itoa(row)
}

func memberRowRange(row int) string {
	r := strconv.Itoa(row)
	return sheetUsers + "!A" + r + ":D" + r
}

// cell reads a column from a possibly short row; the API drops trailing
// empty cells.
func cell(row []string, index int) string {
	if index < len(row) {
		return row[index]
	}
	return ""
}

func decodeQueueRow(row []string) models.QueueEntry {
	number, _ := strconv.Atoi(cell(row, colNumber))
	return models.QueueEntry{
		Name:        cell(row, colName),
		Phone:       cell(row, colPhone),
		Packages:    cell(row, colPackages),
		BirthDate:   cell(row, colBirthDate),
		ArrivalTime: cell(row, colArrivalTime),
		Address:     cell(row, colAddress),
		Note:        cell(row, colNote),
		Date:        cell(row, colDate),
		Number:      number,
		Status:      cell(row, colStatus),
	}
}

func encodeQueueRow(entry models.QueueEntry) []string {
	return []string{
		entry.Name,
		entry.Phone,
		entry.Packages,
		entry.BirthDate,
		entry.ArrivalTime,
		entry.Address,
		entry.Note,
		entry.Date,
		strconv.Itoa(entry.Number),
		entry.Status,
	}
}

func decodePackageRow(row []string) models.Package {
	pkg := models.Package{
		Name:        cell(row, 0),
		Duration:    cell(row, 1),
		Description: cell(row, 2),
		Category:    cell(row, 3),
	}
	if pkg.Duration == "" {
		pkg.Duration = "-"
	}
	if pkg.Description == "" {
		pkg.Description = "-"
	}
	if pkg.Category == "" {
		pkg.Category = "Lainnya"
	}
	return pkg
}

func encodePackageRow(pkg models.Package) []string {
	return []string{pkg.Name, pkg.Duration, pkg.Description, pkg.Category}
}

func decodeMemberRow(row []string) models.Member {
	return models.Member{
		Phone:     cell(row, 0),
		Name:      cell(row, 1),
		BirthDate: cell(row, 2),
		Address:   cell(row, 3),
	}
}

func encodeMemberRow(member models.Member) []string {
	return []string{member.Phone, member.Name, member.BirthDate, member.Address}
}
