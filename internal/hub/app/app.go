package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"

	hubhttp "github.com/tariq205/duetcareerhub/internal/hub/http"
	"github.com/tariq205/duetcareerhub/internal/hub/mail"
	"github.com/tariq205/duetcareerhub/internal/hub/service"
	"github.com/tariq205/duetcareerhub/internal/hub/store"
	"github.com/tariq205/duetcareerhub/internal/hub/store/drivers/sqlite"
	"github.com/tariq205/duetcareerhub/pkg/jwtx"
	"github.com/tariq205/duetcareerhub/pkg/slogx"
)

// Application wires the store, services and HTTP router together and owns
// the process lifecycle.
type Application struct {
	cfg    Config
	logger *slog.Logger
	store  store.Store
	router *hubhttp.Router
}

func New(cfg Config, buildVersion string) (*Application, error) {
	logger := slogx.New(slogx.Config{
		Service: "careerhub",
		Version: buildVersion,
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
	})

	st, err := sqlite.NewStore(cfg.DatabaseFile)
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}
	if err := st.ApplyMigrations(); err != nil {
		_ = st.Close()
		return nil, fmt.Errorf("failed to apply migrations: %w", err)
	}

	tokens, err := jwtx.NewHS256([]byte(cfg.JWTSecret), cfg.Issuer)
	if err != nil {
		_ = st.Close()
		return nil, fmt.Errorf("failed to build token signer: %w", err)
	}

	sender, err := mail.NewSMTPSender(mail.SMTPConfig{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.SMTPUsername,
		Password: cfg.SMTPPassword,
		From:     cfg.MailFrom,
	})
	if err != nil {
		_ = st.Close()
		return nil, fmt.Errorf("failed to build mail sender: %w", err)
	}

	router := hubhttp.NewRouter(tokens, buildVersion, st, logger)
	router.AuthService = &service.AuthService{
		Store:        st,
		Mail:         sender,
		Tokens:       tokens,
		Issuer:       cfg.Issuer,
		AccessTTL:    cfg.AccessTTL,
		ResetCodeTTL: cfg.ResetCodeTTL,
	}
	router.BootstrapService = &service.BootstrapService{Store: st, Token: cfg.BootstrapToken}
	router.AlumniService = &service.AlumniService{Store: st}
	router.FacultyService = &service.FacultyService{Store: st}
	router.UserService = &service.UserService{Store: st}
	router.EventService = &service.EventService{Store: st}
	router.AnnouncementService = &service.AnnouncementService{Store: st}
	router.TermsService = &service.TermsService{Store: st}
	router.StatsService = &service.StatsService{Store: st}
	router.ApplyRoutes()

	return &Application{cfg: cfg, logger: logger, store: st, router: router}, nil
}

// Run serves HTTP until the context is cancelled or SIGINT/SIGTERM arrives,
// then drains in-flight requests within the shutdown grace period.
func (a *Application) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := &http.Server{
		Addr:    a.cfg.Addr,
		Handler: a.router,
	}

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("http server listening", "addr", a.cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		_ = a.store.Close()
		return fmt.Errorf("http server failed: %w", err)
	case <-ctx.Done():
	}

	a.logger.Info("shutting down", "grace", a.cfg.ShutdownGrace)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownGrace)
	defer cancel()

	err := srv.Shutdown(shutdownCtx)
	if closeErr := a.store.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	a.logger.Info("shutdown complete")
	return nil
}
