package cli

import (
	"crypto/rand"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"todolists/internal/config"
	"todolists/internal/logging"
	"todolists/internal/metrics"
	"todolists/internal/output"
	"todolists/internal/ratelimit"
	"todolists/internal/session"
	"todolists/internal/web"
)

// limiterIdleTTL is how long an idle client's bucket is kept.
const limiterIdleTTL = 10 * time.Minute

func (a *App) newServeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		Args:  cobra.NoArgs,
		RunE:  a.runServe,
	}
	cmd.Flags().String("addr", "", "listen address (overrides config)")
	return cmd
}

func (a *App) runServe(cmd *cobra.Command, args []string) error {
	configFile, err := cmd.Flags().GetString("config")
	if err != nil {
		return err
	}
	v, err := config.NewViper(configFile)
	if err != nil {
		return err
	}
	if err := v.BindPFlag("addr", cmd.Flags().Lookup("addr")); err != nil {
		return err
	}
	cfg, err := config.Load(v)
	if err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	logger := logging.New(cmd.ErrOrStderr(), cfg.LogOptions())
	srv, err := a.BuildServer(cfg, logger)
	if err != nil {
		return serverError(err)
	}
	if err := a.Run(cmd.Context(), srv); err != nil {
		return serverError(err)
	}
	return nil
}

// BuildServer wires the configured session store, limiter and metrics into
// a web.Server.
func (a *App) BuildServer(cfg *config.Config, logger *log.Logger) (*web.Server, error) {
	store, err := newStore(cfg.Session, logger)
	if err != nil {
		return nil, err
	}
	renderer, err := output.NewRenderer()
	if err != nil {
		return nil, err
	}

	var limiter *ratelimit.Limiter
	if cfg.RateLimit.Enabled {
		limiter = ratelimit.New(cfg.RateLimit.RPS, cfg.RateLimit.Burst, limiterIdleTTL)
	}
	var m *metrics.Metrics
	if cfg.Metrics.Enabled {
		m = metrics.New()
	}

	return web.New(web.Options{
		Addr:     cfg.Addr,
		Registry: a.Registry,
		Store:    store,
		Renderer: renderer,
		Limiter:  limiter,
		Metrics:  m,
		Logger:   logger,
	})
}

func newStore(cfg config.SessionConfig, logger *log.Logger) (session.Store, error) {
	opts := session.CookieOptions{
		Name:   cfg.CookieName,
		Secure: cfg.Secure,
	}
	switch cfg.Store {
	case config.StoreCookie:
		secret := []byte(cfg.Secret)
		if len(secret) == 0 {
			secret = make([]byte, session.MinSecretLength)
			if _, err := rand.Read(secret); err != nil {
				return nil, fmt.Errorf("generate session secret: %w", err)
			}
			logger.Warn("session.secret is not set; using a random secret, sessions will not survive a restart")
		}
		return session.NewCookieStore(opts, secret)
	default:
		opts.MaxAge = cfg.IdleTTL
		return session.NewMemoryStore(opts, cfg.IdleTTL), nil
	}
}
