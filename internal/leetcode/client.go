// Package leetcode implements the read-only GraphQL client for the LeetCode
// endpoint: the per-year submission calendar query and the best-effort
// daily-challenge lookup.
package leetcode

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	errorvalues "github.com/limbo/leetmap/internal/error_values"
	"github.com/limbo/leetmap/pkg/entity"
)

const (
	// DefaultEndpoint is the production GraphQL endpoint.
	DefaultEndpoint = "https://leetcode.com/graphql"
	// FallbackDailyURL is returned whenever the daily-challenge lookup fails.
	FallbackDailyURL = "https://leetcode.com/problemset/"
	// DefaultTimeout bounds a single outbound query.
	DefaultTimeout = 15 * time.Second

	calendarQuery = `query userProfileCalendar($username: String!, $year: Int) {
    matchedUser(username: $username) {
        userCalendar(year: $year) {
            streak
            totalActiveDays
            submissionCalendar
        }
    }
}`

	dailyQuery = `query questionOfToday {
    activeDailyCodingChallengeQuestion {
        link
        question {
            title
            titleSlug
        }
    }
}`
)

// Client holds no state between calls; concurrent use is safe as long as the
// injected Doer is.
type Client struct {
	http     Doer
	endpoint string
	siteURL  string
}

func NewClient(doer Doer, endpoint string) *Client {
	if doer == nil {
		log.Fatal("on leetcode client provided nil http transport")
	}
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	return &Client{
		http:     doer,
		endpoint: endpoint,
		siteURL:  "https://leetcode.com",
	}
}

type graphqlRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables"`
}

type calendarResponse struct {
	Data struct {
		MatchedUser *struct {
			UserCalendar struct {
				Streak             int    `json:"streak"`
				TotalActiveDays    int    `json:"totalActiveDays"`
				SubmissionCalendar string `json:"submissionCalendar"`
			} `json:"userCalendar"`
		} `json:"matchedUser"`
	} `json:"data"`
}

type dailyResponse struct {
	Data struct {
		ActiveDailyCodingChallengeQuestion *struct {
			Link string `json:"link"`
		} `json:"activeDailyCodingChallengeQuestion"`
	} `json:"data"`
}

func (c *Client) post(ctx context.Context, body graphqlRequest) (*http.Response, error) {
	payload, err := sonic.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshaling query error: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("building request error: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.http.Do(req)
}

func (c *Client) FetchYearCalendar(ctx context.Context, username string, year int) (*entity.YearCalendar, error) {
	variables := map[string]any{"username": username}
	if year != 0 {
		variables["year"] = year
	}

	start := time.Now()
	resp, err := c.post(ctx, graphqlRequest{Query: calendarQuery, Variables: variables})
	if err != nil {
		observeFetch("userProfileCalendar", "transport_error", start)
		return nil, fmt.Errorf("%w: %v", errorvalues.ErrInvalidResponse, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		observeFetch("userProfileCalendar", "bad_status", start)
		return nil, fmt.Errorf("%w: status %d", errorvalues.ErrInvalidResponse, resp.StatusCode)
	}

	var decoded calendarResponse
	if err := sonic.ConfigDefault.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		observeFetch("userProfileCalendar", "decode_error", start)
		return nil, fmt.Errorf("%w: %v", errorvalues.ErrDecode, err)
	}
	if decoded.Data.MatchedUser == nil {
		observeFetch("userProfileCalendar", "decode_error", start)
		return nil, fmt.Errorf("%w: no matched user in response", errorvalues.ErrDecode)
	}

	calendar := decoded.Data.MatchedUser.UserCalendar
	submissions, err := ParseSubmissionCalendar(calendar.SubmissionCalendar)
	if err != nil {
		observeFetch("userProfileCalendar", "decode_error", start)
		// ErrParse surfaces as a decode failure at the client boundary
		return nil, fmt.Errorf("%w: %w", errorvalues.ErrDecode, err)
	}

	observeFetch("userProfileCalendar", "success", start)
	return &entity.YearCalendar{
		Streak:          calendar.Streak,
		TotalActiveDays: calendar.TotalActiveDays,
		Submissions:     submissions,
	}, nil
}

func (c *Client) FetchDailyChallengeURL(ctx context.Context) string {
	start := time.Now()
	resp, err := c.post(ctx, graphqlRequest{Query: dailyQuery, Variables: map[string]any{}})
	if err != nil {
		slog.Debug("daily challenge lookup failed, using fallback", slog.String("error", err.Error()))
		observeFetch("questionOfToday", "transport_error", start)
		return FallbackDailyURL
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		observeFetch("questionOfToday", "bad_status", start)
		return FallbackDailyURL
	}

	var decoded dailyResponse
	if err := sonic.ConfigDefault.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		observeFetch("questionOfToday", "decode_error", start)
		return FallbackDailyURL
	}
	question := decoded.Data.ActiveDailyCodingChallengeQuestion
	if question == nil || question.Link == "" {
		observeFetch("questionOfToday", "decode_error", start)
		return FallbackDailyURL
	}

	observeFetch("questionOfToday", "success", start)
	return c.siteURL + question.Link
}
