package leetcode

import (
	"context"
	"net/http"

	"github.com/limbo/leetmap/pkg/entity"
)

// Doer is the injected HTTP transport. *http.Client satisfies it; tests and
// the CSRF-decorating client in main wire their own.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

type ClientI interface {
	// Fetches one year of a user's submission calendar. A zero year omits the
	// year variable, which the endpoint treats as the current year.
	FetchYearCalendar(ctx context.Context, username string, year int) (*entity.YearCalendar, error)
	// Resolves today's daily-challenge URL. Best effort: any failure yields
	// the problem-set fallback URL, never an error.
	FetchDailyChallengeURL(ctx context.Context) string
}
