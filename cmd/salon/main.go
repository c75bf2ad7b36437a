package main

import (
	"context"
	"crypto/sha256"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/csrf"
	"github.com/joho/godotenv"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/siyaga/salon/internal/config"
	"github.com/siyaga/salon/internal/httpapi"
	"github.com/siyaga/salon/internal/session"
	"github.com/siyaga/salon/internal/sheets"
	sheetstore "github.com/siyaga/salon/internal/store/sheets"
	"github.com/siyaga/salon/internal/telemetry"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	shutdownTelemetry := telemetry.Setup("salon-antrian")
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = shutdownTelemetry(ctx)
	}()

	client, err := sheets.New(context.Background(), cfg.SpreadsheetID, cfg.CredentialsJSON)
	if err != nil {
		log.Fatalf("sheets connect: %v", err)
	}

	store, err := sheetstore.NewStore(client, cfg.Timezone)
	if err != nil {
		log.Fatalf("store init: %v", err)
	}

	sessions := session.NewStore(cfg.SessionTTL)
	handler := httpapi.NewHandler(cfg, store, store, store, sessions)

	csrfKey := sha256.Sum256([]byte(cfg.SessionSecret))
	protect := csrf.Protect(csrfKey[:],
		csrf.Secure(cfg.Production),
		csrf.SameSite(csrf.SameSiteStrictMode),
		csrf.ErrorHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "Formulir tidak valid atau sesi Anda telah berakhir. Silakan kembali dan coba lagi.", http.StatusForbidden)
		})),
	)

	chain := otelhttp.NewHandler(httpapi.LoggingMiddleware(protect(handler.Routes())), "salon-antrian")
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      chain,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("salon-antrian listening on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("shutdown error: %v", err)
	}
}
