package httpapi

import (
	"encoding/json"
	"expvar"
	"net/http"

	"github.com/siyaga/salon/internal/config"
	"github.com/siyaga/salon/internal/session"
	"github.com/siyaga/salon/internal/store"
)

type Handler struct {
	cfg      config.Config
	queue    store.QueueStore
	settings store.SettingsStore
	members  store.MemberStore
	sessions *session.Store
	limiter  *RateLimiter
}

func NewHandler(cfg config.Config, queue store.QueueStore, settings store.SettingsStore, members store.MemberStore, sessions *session.Store) *Handler {
	return &Handler{
		cfg:      cfg,
		queue:    queue,
		settings: settings,
		members:  members,
		sessions: sessions,
		limiter: NewRateLimiter(RateLimitConfig{
			PerMinute: cfg.LoginRatePerMinute,
			Burst:     cfg.LoginRateBurst,
		}),
	}
}

func (h *Handler) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", h.handleForm)
	mux.HandleFunc("/submit", h.handleSubmit)
	mux.HandleFunc("/sukses", h.handleSuccess)
	mux.HandleFunc("/login", h.handleLogin)
	mux.HandleFunc("/logout", h.handleLogout)
	mux.HandleFunc("/admin", h.requireAdmin(h.handleAdmin))
	mux.HandleFunc("/next", h.requireAdmin(h.handleNext))
	mux.HandleFunc("/admin/wording/update", h.requireAdmin(h.handleWordingUpdate))
	mux.HandleFunc("/admin/paket/tambah", h.requireAdmin(h.handlePackageAdd))
	mux.HandleFunc("/admin/paket/hapus", h.requireAdmin(h.handlePackageDelete))
	mux.HandleFunc("/admin/paket/update", h.requireAdmin(h.handlePackageUpdate))
	mux.HandleFunc("/admin/kategori/tambah", h.requireAdmin(h.handleCategoryAdd))
	mux.HandleFunc("/admin/kategori/hapus", h.requireAdmin(h.handleCategoryDelete))
	mux.HandleFunc("/api/check-user", h.handleCheckUser)
	mux.HandleFunc("/api/get-user-data", h.handleGetUserData)
	mux.HandleFunc("/healthz", h.handleHealth)
	mux.Handle("/metrics", expvar.Handler())
	return mux
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(payload)
}
