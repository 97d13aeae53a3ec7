package leetcode

import (
	"fmt"
	"strconv"

	"github.com/bytedance/sonic"
	errorvalues "github.com/limbo/leetmap/internal/error_values"
	"github.com/limbo/leetmap/pkg/datemath"
	"github.com/limbo/leetmap/pkg/entity"
)

// ParseSubmissionCalendar decodes the double-encoded calendar string embedded
// in a userProfileCalendar response: a JSON object of epoch-seconds-as-string
// keys to counts, e.g. {"1704067200": 3}. Each timestamp is normalized to its
// UTC calendar day. The source contracts one entry per day, but if two
// timestamps still normalize to the same day the larger count wins, so the
// result doesn't depend on map iteration order.
func ParseSubmissionCalendar(raw string) (entity.Submissions, error) {
	var decoded map[string]int
	if err := sonic.Unmarshal([]byte(raw), &decoded); err != nil {
		return nil, fmt.Errorf("%w: %v", errorvalues.ErrParse, err)
	}

	submissions := make(entity.Submissions, len(decoded))
	for key, count := range decoded {
		ts, err := strconv.ParseInt(key, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: key %q is not an epoch timestamp", errorvalues.ErrParse, key)
		}
		day := datemath.FromUnix(ts)
		if existing, ok := submissions[day]; ok && existing > count {
			continue
		}
		submissions[day] = count
	}
	return submissions, nil
}
