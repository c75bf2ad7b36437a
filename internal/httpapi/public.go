package httpapi

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/siyaga/salon/internal/models"
	"github.com/siyaga/salon/internal/phone"
	"github.com/siyaga/salon/internal/session"
	"github.com/siyaga/salon/internal/store"
)

type packageGroup struct {
	Category string
	Packages []models.Package
}

type formPage struct {
	basePage
	Groups   []packageGroup
	Branches []string
}

type successPage struct {
	basePage
	QueueNumber int
	NowServing  int
}

type loginPage struct {
	basePage
	Error    string
	Branches []string
}

func (h *Handler) handleForm(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	packages := h.settings.ListPackages(r.Context())
	h.render(w, "form.html", formPage{
		basePage: h.basePage(r, "Form Antrian Salon"),
		Groups:   groupByCategory(packages),
		Branches: h.cfg.Branches,
	})
}

// groupByCategory buckets packages by category, groups ordered by first
// appearance.
func groupByCategory(packages []models.Package) []packageGroup {
	var groups []packageGroup
	index := make(map[string]int)
	for _, pkg := range packages {
		category := pkg.Category
		if category == "" {
			category = "Lainnya"
		}
		i, ok := index[category]
		if !ok {
			i = len(groups)
			index[category] = i
			groups = append(groups, packageGroup{Category: category})
		}
		groups[i].Packages = append(groups[i].Packages, pkg)
	}
	return groups
}

func (h *Handler) handleSubmit(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Formulir tidak valid.", http.StatusBadRequest)
		return
	}

	branch := strings.TrimSpace(r.PostFormValue("cabang"))
	name := strings.TrimSpace(r.PostFormValue("nama"))
	rawPhone := strings.TrimSpace(r.PostFormValue("no_wa"))
	birthDate := strings.TrimSpace(r.PostFormValue("tgl_lahir"))
	arrival := strings.TrimSpace(r.PostFormValue("jam_datang"))
	address := strings.TrimSpace(r.PostFormValue("alamat"))
	note := strings.TrimSpace(r.PostFormValue("note"))

	if !h.cfg.ValidBranch(branch) {
		http.Error(w, "Cabang tidak valid.", http.StatusBadRequest)
		return
	}
	if name == "" || rawPhone == "" {
		http.Error(w, "Nama dan nomor WA wajib diisi.", http.StatusBadRequest)
		return
	}

	normalized := phone.Normalize(rawPhone)
	packages := strings.Join(r.PostForm["paket"], ", ")
	if packages == "" {
		packages = "Tidak dipilih"
	}

	// Best effort member upsert; a failure never blocks the queue entry.
	if err := h.members.Upsert(r.Context(), models.Member{
		Phone:     normalized,
		Name:      name,
		BirthDate: birthDate,
		Address:   address,
	}); err != nil {
		log.Printf("member upsert phone=%s error=%v", normalized, err)
	}

	number, err := h.queue.Add(r.Context(), store.AddEntryInput{
		Branch:      branch,
		Name:        name,
		Phone:       normalized,
		Packages:    packages,
		BirthDate:   birthDate,
		ArrivalTime: arrival,
		Address:     address,
		Note:        note,
	})
	if err != nil {
		log.Printf("queue add branch=%q error=%v", branch, err)
		http.Error(w, "Terjadi kesalahan saat submit data.", http.StatusInternalServerError)
		return
	}

	nowServing := 0
	for _, entry := range h.queue.TodayQueue(r.Context(), branch) {
		if entry.Status == models.StatusServing {
			nowServing = entry.Number
			break
		}
	}

	token := h.sessions.PutResult(session.SubmitResult{QueueNumber: number, NowServing: nowServing})
	http.SetCookie(w, &http.Cookie{
		Name:     resultCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int((5 * time.Minute) / time.Second),
		HttpOnly: true,
		Secure:   h.cfg.Production,
		SameSite: http.SameSiteStrictMode,
	})
	http.Redirect(w, r, "/sukses", http.StatusSeeOther)
}

func (h *Handler) handleSuccess(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	cookie, err := r.Cookie(resultCookieName)
	if err != nil {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}
	result, ok := h.sessions.TakeResult(cookie.Value)
	h.clearCookie(w, resultCookieName)
	if !ok {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	h.render(w, "success.html", successPage{
		basePage:    h.basePage(r, "Sukses!"),
		QueueNumber: result.QueueNumber,
		NowServing:  result.NowServing,
	})
}

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.renderLogin(w, r, "")
	case http.MethodPost:
		h.processLogin(w, r)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (h *Handler) renderLogin(w http.ResponseWriter, r *http.Request, errorMessage string) {
	h.render(w, "login.html", loginPage{
		basePage: h.basePage(r, "Login Admin"),
		Error:    errorMessage,
		Branches: h.cfg.Branches,
	})
}

func (h *Handler) processLogin(w http.ResponseWriter, r *http.Request) {
	if !h.limiter.Allow(r) {
		http.Error(w, "Terlalu banyak percobaan login. Coba lagi beberapa menit lagi.", http.StatusTooManyRequests)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Formulir tidak valid.", http.StatusBadRequest)
		return
	}

	branch := strings.TrimSpace(r.PostFormValue("cabang"))
	password := r.PostFormValue("password")

	if !h.cfg.ValidBranch(branch) {
		h.renderLogin(w, r, "Cabang tidak valid.")
		return
	}
	if !checkPassword(h.cfg.AdminPassword(branch), password) {
		h.renderLogin(w, r, "Password salah untuk cabang ini.")
		return
	}

	token := h.sessions.Create(branch)
	h.setSessionCookie(w, token)
	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

func (h *Handler) handleLogout(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if cookie, err := r.Cookie(sessionCookieName); err == nil {
		h.sessions.Destroy(cookie.Value)
	}
	h.clearCookie(w, sessionCookieName)
	http.Redirect(w, r, "/login", http.StatusFound)
}
