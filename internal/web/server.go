// Package web serves the routing table over HTTP.
package web

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"

	"todolists/internal/handlers"
	"todolists/internal/logging"
	"todolists/internal/metrics"
	"todolists/internal/output"
	"todolists/internal/ratelimit"
	"todolists/internal/session"
)

const (
	shutdownTimeout = 5 * time.Second
	evictInterval   = time.Minute
)

// Options configures a Server. Registry, Store and Renderer are required;
// a nil Limiter or Metrics disables that feature.
type Options struct {
	Addr     string
	Registry *handlers.Registry
	Store    session.Store
	Renderer *output.Renderer
	Limiter  *ratelimit.Limiter
	Metrics  *metrics.Metrics
	Logger   *log.Logger

	// Now overrides the clock, for tests.
	Now func() time.Time
}

// Server is the HTTP front end.
type Server struct {
	httpServer *http.Server
	mux        *http.ServeMux

	store    session.Store
	renderer *output.Renderer
	limiter  *ratelimit.Limiter
	metrics  *metrics.Metrics
	logger   *log.Logger
	now      func() time.Time
}

// New builds a Server and mounts every registered route.
func New(opts Options) (*Server, error) {
	if opts.Registry == nil {
		return nil, errors.New("web: registry is required")
	}
	if opts.Store == nil {
		return nil, errors.New("web: session store is required")
	}
	if opts.Renderer == nil {
		return nil, errors.New("web: renderer is required")
	}

	mux := http.NewServeMux()
	s := &Server{
		httpServer: &http.Server{
			Addr:              opts.Addr,
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		},
		mux:      mux,
		store:    opts.Store,
		renderer: opts.Renderer,
		limiter:  opts.Limiter,
		metrics:  opts.Metrics,
		logger:   opts.Logger,
		now:      opts.Now,
	}
	if s.logger == nil {
		s.logger = logging.Discard()
	}
	if s.now == nil {
		s.now = time.Now
	}

	for _, rt := range opts.Registry.All() {
		mux.Handle(rt.Method()+" "+rt.Pattern(), s.routeHandler(rt))
	}
	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.Handle("GET /static/", output.Static())
	if s.metrics != nil {
		mux.Handle("GET /metrics", s.metrics.Handler())
		if counter, ok := opts.Store.(interface{ Len() int }); ok {
			s.metrics.RegisterSessionGauge(counter.Len)
		}
	}
	return s, nil
}

// Handler returns the server's root handler.
func (s *Server) Handler() http.Handler {
	return s.mux
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return nil
	default:
	}

	if ev, ok := s.store.(interface{ Evict() }); ok {
		go evictLoop(ctx, ev.Evict)
	}

	errCh := make(chan error, 1)
	go func() {
		err := s.httpServer.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
			return
		}
		errCh <- err
	}()
	s.logger.Info("listening", "addr", s.httpServer.Addr)

	select {
	case <-ctx.Done():
		s.logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return <-errCh
	case err := <-errCh:
		return err
	}
}

func evictLoop(ctx context.Context, evict func()) {
	ticker := time.NewTicker(evictInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			evict()
		}
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = io.WriteString(w, "ok\n")
}

// routeHandler adapts rt to net/http: it loads the session, runs the route,
// renders any view, saves the session and writes the response.
func (s *Server) routeHandler(rt handlers.Route) http.Handler {
	paramNames := handlers.ParamNames(rt.Pattern())

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := s.now()
		rec := &statusRecorder{ResponseWriter: w}
		var outcome string
		defer func() {
			elapsed := s.now().Sub(start)
			s.metrics.ObserveRequest(rt.Name(), r.Method, rec.Status(), elapsed)
			s.metrics.ObserveOutcome(rt.Name(), outcome)
			s.logger.Info("request",
				"method", r.Method,
				"path", r.URL.Path,
				"route", rt.Name(),
				"status", rec.Status(),
				"outcome", outcome,
				"duration", elapsed,
			)
		}()

		if !s.limiter.Allow(ratelimit.Key(r), start) {
			s.metrics.RateLimited()
			http.Error(rec, "too many requests", http.StatusTooManyRequests)
			return
		}

		sess, err := s.store.Load(r)
		if err != nil {
			s.fail(rec, rt, "load session", err)
			return
		}
		if err := r.ParseForm(); err != nil {
			http.Error(rec, "malformed form data", http.StatusBadRequest)
			return
		}

		req := &handlers.Request{
			Params: make(map[string]string, len(paramNames)),
			Form:   r.Form,
			Async:  IsAsync(r),
		}
		for _, name := range paramNames {
			req.Params[name] = r.PathValue(name)
		}

		resp := rt.Serve(r.Context(), sess, req)
		outcome = resp.Outcome

		// Views consume the flash before the session is written back.
		var body bytes.Buffer
		if resp.View != "" {
			page := output.Page{Flash: sess.TakeFlash(), Content: resp.Data}
			if err := s.renderer.Render(&body, resp.View, page); err != nil {
				s.fail(rec, rt, "render", err)
				return
			}
		}
		if err := s.store.Save(rec, r, sess); err != nil {
			s.fail(rec, rt, "save session", err)
			return
		}

		status := resp.Status
		if status == 0 {
			status = http.StatusOK
		}
		switch {
		case resp.IsRedirect():
			http.Redirect(rec, r, resp.Location, status)
		case resp.View != "":
			rec.Header().Set("Content-Type", "text/html; charset=utf-8")
			rec.WriteHeader(status)
			_, _ = body.WriteTo(rec)
		case resp.Body != "":
			rec.Header().Set("Content-Type", "text/plain; charset=utf-8")
			rec.WriteHeader(status)
			_, _ = io.WriteString(rec, resp.Body)
		default:
			rec.WriteHeader(status)
		}
	})
}

func (s *Server) fail(w http.ResponseWriter, rt handlers.Route, op string, err error) {
	s.logger.Error("request failed", "route", rt.Name(), "op", op, "err", err)
	http.Error(w, "internal server error", http.StatusInternalServerError)
}

// IsAsync reports whether r was sent by the page script rather than by a
// form submission.
func IsAsync(r *http.Request) bool {
	return r.Header.Get("X-Requested-With") == "XMLHttpRequest"
}

// statusRecorder remembers the status code written through it.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	if r.status == 0 {
		r.status = code
	}
	r.ResponseWriter.WriteHeader(code)
}

func (r *statusRecorder) Write(b []byte) (int, error) {
	if r.status == 0 {
		r.status = http.StatusOK
	}
	return r.ResponseWriter.Write(b)
}

// Status returns the written status, or 200 if nothing was written.
func (r *statusRecorder) Status() int {
	if r.status == 0 {
		return http.StatusOK
	}
	return r.status
}
