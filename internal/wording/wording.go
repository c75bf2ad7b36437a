// Package wording fills WhatsApp message templates with queue entry data.
package wording

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/siyaga/salon/internal/models"
)

// Fill replaces the placeholder tokens in a template with values from the
// given entry. Unknown tokens are left untouched.
func Fill(template string, entry models.QueueEntry) string {
	replacer := strings.NewReplacer(
		"[nama]", entry.Name,
		"[no_antrian]", strconv.Itoa(entry.Number),
		"[jam_datang]", entry.ArrivalTime,
		"[note]", entry.Note,
	)
	return replacer.Replace(template)
}

// WhatsAppLink builds a wa.me link that opens a chat with the entry's phone
// number, pre-filled with the rendered template.
func WhatsAppLink(template string, entry models.QueueEntry) string {
	return "https://wa.me/" + entry.Phone + "?text=" + url.QueryEscape(Fill(template, entry))
}
