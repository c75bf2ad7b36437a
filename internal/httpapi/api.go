package httpapi

import (
	"log"
	"net/http"
	"strings"

	"github.com/siyaga/salon/internal/phone"
)

type checkUserResponse struct {
	Found bool `json:"found"`
}

type userDataResponse struct {
	Success bool   `json:"success"`
	Name    string `json:"nama,omitempty"`
	Address string `json:"alamat,omitempty"`
}

// handleCheckUser reports only whether a member exists; nothing stored is
// leaked by this endpoint.
func (h *Handler) handleCheckUser(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	rawPhone := strings.TrimSpace(r.URL.Query().Get("no_wa"))
	if rawPhone == "" {
		writeJSON(w, http.StatusBadRequest, checkUserResponse{Found: false})
		return
	}

	found, err := h.members.Exists(r.Context(), phone.Normalize(rawPhone))
	if err != nil {
		log.Printf("member exists error=%v", err)
		writeJSON(w, http.StatusOK, checkUserResponse{Found: false})
		return
	}
	writeJSON(w, http.StatusOK, checkUserResponse{Found: found})
}

// handleGetUserData returns the stored name and address only when phone and
// birth date both match. All failure modes look identical to the caller.
func (h *Handler) handleGetUserData(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	rawPhone := strings.TrimSpace(r.URL.Query().Get("no_wa"))
	birthDate := strings.TrimSpace(r.URL.Query().Get("tgl_lahir"))
	if rawPhone == "" || birthDate == "" {
		writeJSON(w, http.StatusBadRequest, userDataResponse{Success: false})
		return
	}

	member, found, err := h.members.Verify(r.Context(), phone.Normalize(rawPhone), birthDate)
	if err != nil {
		log.Printf("member verify error=%v", err)
		writeJSON(w, http.StatusOK, userDataResponse{Success: false})
		return
	}
	if !found {
		writeJSON(w, http.StatusOK, userDataResponse{Success: false})
		return
	}
	writeJSON(w, http.StatusOK, userDataResponse{Success: true, Name: member.Name, Address: member.Address})
}
