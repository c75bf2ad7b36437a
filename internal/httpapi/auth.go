package httpapi

import (
	"context"
	"crypto/subtle"
	"net/http"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/siyaga/salon/internal/session"
)

const (
	sessionCookieName = "salon_session"
	resultCookieName  = "salon_result"
)

type adminContextKey struct{}

type adminInfo struct {
	Token   string
	Session session.Session
}

// requireAdmin guards a route behind a live admin session. Absence redirects
// to the login form; the branch for privileged operations always comes from
// the session, never from the request.
func (h *Handler) requireAdmin(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(sessionCookieName)
		if err != nil {
			http.Redirect(w, r, "/login", http.StatusFound)
			return
		}
		sess, ok := h.sessions.Get(cookie.Value)
		if !ok || sess.Branch == "" {
			http.Redirect(w, r, "/login", http.StatusFound)
			return
		}
		ctx := context.WithValue(r.Context(), adminContextKey{}, adminInfo{Token: cookie.Value, Session: sess})
		next(w, r.WithContext(ctx))
	}
}

func adminFromContext(ctx context.Context) (adminInfo, bool) {
	info, ok := ctx.Value(adminContextKey{}).(adminInfo)
	return info, ok
}

func (h *Handler) setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.cfg.SessionTTL / time.Second),
		HttpOnly: true,
		Secure:   h.cfg.Production,
		SameSite: http.SameSiteStrictMode,
	})
}

func (h *Handler) clearCookie(w http.ResponseWriter, name string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cfg.Production,
		SameSite: http.SameSiteStrictMode,
	})
}

// checkPassword accepts either a bcrypt hash or a plain secret as the
// configured value. An empty configured value never matches.
func checkPassword(configured, given string) bool {
	if configured == "" {
		return false
	}
	if strings.HasPrefix(configured, "$2a$") || strings.HasPrefix(configured, "$2b$") || strings.HasPrefix(configured, "$2y$") {
		return bcrypt.CompareHashAndPassword([]byte(configured), []byte(given)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(configured), []byte(given)) == 1
}
