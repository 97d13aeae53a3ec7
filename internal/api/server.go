package api

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/limbo/leetmap/internal/service"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Server struct {
	mx              *chi.Mux
	calendarService service.CalendarServiceI
}

type ServicesList struct {
	CalendarService service.CalendarServiceI
}

func New(servicesOptions *ServicesList) *Server {
	s := &Server{
		mx:              chi.NewMux(),
		calendarService: servicesOptions.CalendarService,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.mx.Use(s.RequestIDMiddleware)
	s.mx.Use(s.SettingUpLoggerMiddleware)
	s.mx.Use(s.MetricsMiddleware)

	s.mx.Get("/healthz", s.HealthCheck)
	s.mx.Handle("/metrics", promhttp.Handler())

	s.mx.Route("/api/v1", func(r chi.Router) {
		r.Get("/daily", s.GetDailyChallenge)
		r.Route("/users/{username}", func(r chi.Router) {
			r.Get("/calendar", s.GetCalendar)
			r.Get("/grid", s.GetGrid)
		})
	})

	// rendered surface, sibling of the JSON API
	s.mx.Get("/u/{username}/heatmap.svg", s.GetHeatmapSVG)
}

// Handler exposes the routed mux, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.mx
}

// Run serves until SIGINT/SIGTERM, then drains in-flight requests.
func (s *Server) Run(addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.mx,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
