package httpapi

import (
	"log"
	"net/http"
	"strconv"
	"strings"
	"sync"

	"github.com/siyaga/salon/internal/models"
	"github.com/siyaga/salon/internal/session"
	"github.com/siyaga/salon/internal/wording"
)

type adminPage struct {
	basePage
	Branch       string
	Queue        []models.QueueEntry
	Current      *models.QueueEntry
	Next         *models.QueueEntry
	Reminder     *models.QueueEntry
	CallLink     string
	ReminderLink string
	Wording      models.Wording
	Packages     []models.Package
	Categories   []string
	Flash        *session.Flash
}

func (h *Handler) handleAdmin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	info, ok := adminFromContext(r.Context())
	if !ok {
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}
	branch := info.Session.Branch

	var (
		queue      []models.QueueEntry
		templates  models.Wording
		packages   []models.Package
		categories []string
		wg         sync.WaitGroup
	)
	wg.Add(4)
	go func() { defer wg.Done(); queue = h.queue.TodayQueue(r.Context(), branch) }()
	go func() { defer wg.Done(); templates = h.settings.Templates(r.Context()) }()
	go func() { defer wg.Done(); packages = h.settings.ListPackages(r.Context()) }()
	go func() { defer wg.Done(); categories = h.settings.ListCategories(r.Context()) }()
	wg.Wait()

	current := findByStatus(queue, models.StatusServing)
	next := findByStatus(queue, models.StatusWaiting)
	var reminder *models.QueueEntry
	if next != nil {
		reminder = findWaitingNumber(queue, next.Number+1)
	}

	page := adminPage{
		basePage:   h.basePage(r, "Panel Admin - "+branch),
		Branch:     branch,
		Queue:      queue,
		Current:    current,
		Next:       next,
		Reminder:   reminder,
		Wording:    templates,
		Packages:   packages,
		Categories: categories,
	}
	if next != nil {
		page.CallLink = wording.WhatsAppLink(templates.Call, *next)
	}
	if reminder != nil {
		page.ReminderLink = wording.WhatsAppLink(templates.Reminder, *reminder)
	}
	if flash, ok := h.sessions.TakeFlash(info.Token); ok {
		page.Flash = &flash
	}

	h.render(w, "admin.html", page)
}

func findByStatus(queue []models.QueueEntry, status string) *models.QueueEntry {
	for i := range queue {
		if queue[i].Status == status {
			return &queue[i]
		}
	}
	return nil
}

func findWaitingNumber(queue []models.QueueEntry, number int) *models.QueueEntry {
	for i := range queue {
		if queue[i].Number == number && queue[i].Status == models.StatusWaiting {
			return &queue[i]
		}
	}
	return nil
}

// handleNext advances the queue: the entry being served is marked done, the
// next waiting entry starts being served. Either half is optional.
func (h *Handler) handleNext(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	info, ok := adminFromContext(r.Context())
	if !ok {
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Formulir tidak valid.", http.StatusBadRequest)
		return
	}
	branch := info.Session.Branch

	if raw := strings.TrimSpace(r.PostFormValue("current_antrian")); raw != "" {
		number, err := strconv.Atoi(raw)
		if err != nil {
			http.Error(w, "Nomor antrian tidak valid.", http.StatusBadRequest)
			return
		}
		if err := h.queue.SetStatus(r.Context(), branch, number, models.StatusDone); err != nil {
			log.Printf("set status branch=%q number=%d error=%v", branch, number, err)
			http.Error(w, "Terjadi kesalahan saat memproses antrian.", http.StatusInternalServerError)
			return
		}
	}
	if raw := strings.TrimSpace(r.PostFormValue("next_antrian")); raw != "" {
		number, err := strconv.Atoi(raw)
		if err != nil {
			http.Error(w, "Nomor antrian tidak valid.", http.StatusBadRequest)
			return
		}
		if err := h.queue.SetStatus(r.Context(), branch, number, models.StatusServing); err != nil {
			log.Printf("set status branch=%q number=%d error=%v", branch, number, err)
			http.Error(w, "Terjadi kesalahan saat memproses antrian.", http.StatusInternalServerError)
			return
		}
	}

	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

func (h *Handler) handleWordingUpdate(w http.ResponseWriter, r *http.Request) {
	h.settingsMutation(w, r, func(info adminInfo) (string, error) {
		call := r.PostFormValue("text_panggil")
		reminder := r.PostFormValue("text_reminder")
		if err := h.settings.UpdateWording(r.Context(), models.Wording{Call: call, Reminder: reminder}); err != nil {
			return "", err
		}
		return "Teks WA berhasil disimpan!", nil
	})
}

func (h *Handler) handlePackageAdd(w http.ResponseWriter, r *http.Request) {
	h.settingsMutation(w, r, func(info adminInfo) (string, error) {
		pkg := models.Package{
			Name:        strings.TrimSpace(r.PostFormValue("nama_paket")),
			Duration:    strings.TrimSpace(r.PostFormValue("durasi")),
			Description: strings.TrimSpace(r.PostFormValue("deskripsi")),
			Category:    strings.TrimSpace(r.PostFormValue("kategori")),
		}
		if pkg.Name == "" || pkg.Duration == "" || pkg.Description == "" || pkg.Category == "" {
			return "", nil
		}
		if err := h.settings.AddPackage(r.Context(), pkg); err != nil {
			return "", err
		}
		return "Paket baru berhasil ditambah!", nil
	})
}

func (h *Handler) handlePackageDelete(w http.ResponseWriter, r *http.Request) {
	h.settingsMutation(w, r, func(info adminInfo) (string, error) {
		name := strings.TrimSpace(r.PostFormValue("nama_paket"))
		if name == "" {
			return "", nil
		}
		if err := h.settings.DeletePackage(r.Context(), name); err != nil {
			return "", err
		}
		return "Paket \"" + name + "\" berhasil dihapus.", nil
	})
}

func (h *Handler) handlePackageUpdate(w http.ResponseWriter, r *http.Request) {
	h.settingsMutation(w, r, func(info adminInfo) (string, error) {
		oldName := strings.TrimSpace(r.PostFormValue("old_name"))
		pkg := models.Package{
			Name:        strings.TrimSpace(r.PostFormValue("nama_paket")),
			Duration:    strings.TrimSpace(r.PostFormValue("durasi")),
			Description: strings.TrimSpace(r.PostFormValue("deskripsi")),
			Category:    strings.TrimSpace(r.PostFormValue("kategori")),
		}
		if oldName == "" || pkg.Name == "" || pkg.Duration == "" || pkg.Description == "" || pkg.Category == "" {
			return "", nil
		}
		if err := h.settings.UpdatePackage(r.Context(), oldName, pkg); err != nil {
			return "", err
		}
		return "Paket \"" + pkg.Name + "\" berhasil diupdate.", nil
	})
}

func (h *Handler) handleCategoryAdd(w http.ResponseWriter, r *http.Request) {
	h.settingsMutation(w, r, func(info adminInfo) (string, error) {
		name := strings.TrimSpace(r.PostFormValue("nama_kategori"))
		if name == "" {
			return "", nil
		}
		if err := h.settings.AddCategory(r.Context(), name); err != nil {
			return "", err
		}
		return "Kategori baru berhasil ditambah!", nil
	})
}

func (h *Handler) handleCategoryDelete(w http.ResponseWriter, r *http.Request) {
	h.settingsMutation(w, r, func(info adminInfo) (string, error) {
		name := strings.TrimSpace(r.PostFormValue("nama_kategori"))
		if name == "" {
			return "", nil
		}
		if err := h.settings.DeleteCategory(r.Context(), name); err != nil {
			return "", err
		}
		return "Kategori \"" + name + "\" berhasil dihapus.", nil
	})
}

// settingsMutation runs one settings change and redirects back to the
// dashboard with a flash on success. Mutations with missing fields return an
// empty message and are skipped silently, matching the form behavior.
func (h *Handler) settingsMutation(w http.ResponseWriter, r *http.Request, mutate func(adminInfo) (string, error)) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	info, ok := adminFromContext(r.Context())
	if !ok {
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Formulir tidak valid.", http.StatusBadRequest)
		return
	}

	message, err := mutate(info)
	if err != nil {
		log.Printf("settings mutation path=%s error=%v", r.URL.Path, err)
		http.Error(w, "Terjadi kesalahan saat menyimpan pengaturan.", http.StatusInternalServerError)
		return
	}
	if message != "" {
		h.sessions.PutFlash(info.Token, session.Flash{Kind: "success", Message: message})
	}
	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}
