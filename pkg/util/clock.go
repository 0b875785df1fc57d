package util

import (
	"fmt"
	"time"
)

// Market session bounds (minutes from midnight): 9:30 to 16:00 ET.
const (
	marketOpenMinute  = 9*60 + 30
	marketCloseMinute = 16 * 60
)

// FormatClock12 renders a 12-hour clock string like "11:05 AM".
func FormatClock12(hour, minute int, pm bool) string {
	suffix := "AM"
	if pm {
		suffix = "PM"
	}
	return fmt.Sprintf("%d:%02d %s", hour, minute, suffix)
}

// ClampMarketHours clamps a raw hour/minute pair into the 9:30-16:00 trading
// window. Out-of-band values are pulled to the nearest bound, never rejected.
func ClampMarketHours(hour, minute int) (int, int) {
	total := hour*60 + minute
	if total < marketOpenMinute {
		total = marketOpenMinute
	}
	if total > marketCloseMinute {
		total = marketCloseMinute
	}
	return total / 60, total % 60
}

// FormatMarketStamp renders an "as of" stamp like "Oct-28-2025 1:56 p.m. ET".
func FormatMarketStamp(t time.Time, hour, minute int) string {
	hour, minute = ClampMarketHours(hour, minute)
	suffix := "a.m."
	h12 := hour
	if hour >= 12 {
		suffix = "p.m."
		if hour > 12 {
			h12 = hour - 12
		}
	}
	if h12 == 0 {
		h12 = 12
	}
	return fmt.Sprintf("%s %d:%02d %s ET", t.Format("Jan-02-2006"), h12, minute, suffix)
}
