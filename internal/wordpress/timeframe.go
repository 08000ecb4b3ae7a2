package wordpress

import (
	"errors"
	"fmt"
	"time"
)

// Timeframe defines the lookback window for article freshness.
type Timeframe string

const (
	TimeframeDay   Timeframe = "day"
	TimeframeWeek  Timeframe = "week"
	TimeframeMonth Timeframe = "month"
)

var ErrInvalidTimeframe = errors.New("invalid timeframe, use day, week or month")

// Timeframes returns the fixed processing order of a sync run.
func Timeframes() []Timeframe {
	return []Timeframe{TimeframeDay, TimeframeWeek, TimeframeMonth}
}

func ParseTimeframe(s string) (Timeframe, error) {
	switch tf := Timeframe(s); tf {
	case TimeframeDay, TimeframeWeek, TimeframeMonth:
		return tf, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeframe, s)
	}
}

// Lookback returns the window size for the timeframe. A month is a fixed 30
// days, matching the source API query the sync has always issued.
func (t Timeframe) Lookback() (time.Duration, error) {
	switch t {
	case TimeframeDay:
		return 24 * time.Hour, nil
	case TimeframeWeek:
		return 7 * 24 * time.Hour, nil
	case TimeframeMonth:
		return 30 * 24 * time.Hour, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeframe, string(t))
	}
}
