package main

import (
	"log/slog"
	"net/http"

	"github.com/limbo/leetmap/internal/api"
	"github.com/limbo/leetmap/internal/leetcode"
	"github.com/limbo/leetmap/internal/service"
	"github.com/limbo/leetmap/pkg/cleanup"
	"github.com/limbo/leetmap/pkg/config"
)

func init() {
	service.InitValidator()
}

func main() {
	cfg := config.New()

	endpoint := cfg.GetString("LEETMAP_GRAPHQL_URL", leetcode.DefaultEndpoint)
	httpClient := &http.Client{
		Transport: leetcode.NewTransport(nil, endpoint),
		Timeout:   cfg.GetDuration("LEETMAP_HTTP_TIMEOUT", leetcode.DefaultTimeout),
	}

	calendarService := service.NewCalendarService(leetcode.NewClient(httpClient, endpoint))
	serv := api.New(&api.ServicesList{
		CalendarService: calendarService,
	})

	err := serv.Run(cfg.GetString("LEETMAP_API_ADDRESS", ":8080"))
	if err != nil {
		slog.Error("server error", slog.String("error", err.Error()))
	}
	cleanup.CleanUp()
}
