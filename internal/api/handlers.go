package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	errorvalues "github.com/limbo/leetmap/internal/error_values"
	"github.com/limbo/leetmap/internal/heatmap"
	"github.com/limbo/leetmap/pkg/httputil"
)

const (
	fetchTimeout = 30 * time.Second
	maxWeekCount = 104
)

type DailyChallengeResponse struct {
	URL string `json:"url"`
}

func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) GetCalendar(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	username := chi.URLParam(r, "username")

	ctx, cancel := context.WithTimeout(r.Context(), fetchTimeout)
	defer cancel()
	dataset, err := s.calendarService.GetCalendarDataset(ctx, username)
	if err != nil {
		s.writeCalendarError(w, logger, "get calendar", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, dataset)
	logger.Info("served calendar dataset", slog.String("username", username))
}

func (s *Server) GetGrid(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	username := chi.URLParam(r, "username")

	weekCount, err := parseWeekCount(r)
	if err != nil {
		logger.Error("get grid error: bad weeks parameter")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "weeks must be an integer between 1 and 104", nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), fetchTimeout)
	defer cancel()
	grid, err := s.calendarService.GetHeatmapGrid(ctx, username, weekCount)
	if err != nil {
		s.writeCalendarError(w, logger, "get grid", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, grid)
	logger.Info("served heatmap grid", slog.String("username", username), slog.Int("weeks", weekCount))
}

func (s *Server) GetHeatmapSVG(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	username := chi.URLParam(r, "username")

	weekCount, err := parseWeekCount(r)
	if err != nil {
		logger.Error("heatmap svg error: bad weeks parameter")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "weeks must be an integer between 1 and 104", nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), fetchTimeout)
	defer cancel()
	grid, err := s.calendarService.GetHeatmapGrid(ctx, username, weekCount)
	if err != nil {
		s.writeCalendarError(w, logger, "heatmap svg", err)
		return
	}

	opts := heatmap.DefaultSVGOptions()
	opts.Title = username
	httputil.WriteSVGResponse(w, http.StatusOK, heatmap.RenderSVG(grid, opts))
	logger.Info("served heatmap svg", slog.String("username", username))
}

// GetDailyChallenge always answers 200: the lookup itself never fails.
func (s *Server) GetDailyChallenge(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), fetchTimeout)
	defer cancel()
	url := s.calendarService.GetDailyChallengeURL(ctx)
	httputil.WriteJSONResponse(w, http.StatusOK, DailyChallengeResponse{URL: url})
}

func (s *Server) writeCalendarError(w http.ResponseWriter, logger *slog.Logger, op string, err error) {
	switch {
	case errors.Is(err, errorvalues.ErrInvalidUsername):
		logger.Error(op + " error: invalid username")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid username", nil)
	case errors.Is(err, errorvalues.ErrInvalidResponse), errors.Is(err, errorvalues.ErrDecode):
		logger.Error(op+" error: upstream error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusBadGateway, "leetcode is unavailable", nil)
	default:
		logger.Error(op+" error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error", nil)
	}
}

func parseWeekCount(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("weeks")
	if raw == "" {
		return heatmap.DefaultWeekCount, nil
	}
	weeks, err := strconv.Atoi(raw)
	if err != nil {
		return 0, err
	}
	if weeks < 1 || weeks > maxWeekCount {
		return 0, errors.New("weeks out of range")
	}
	return weeks, nil
}
