package shared

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var dayDurationRegex = regexp.MustCompile(`^(\d+)\s*d$`)

// ParseDuration parses a duration string with support for days
// (e.g., "30d", "24h", "500ms") into a time.Duration. Anything without a "d"
// suffix is handed to time.ParseDuration.
// A special value of "0" is allowed and returns 0 duration (disabling the setting).
func ParseDuration(durationStr string) (time.Duration, error) {
	trimmedStr := strings.TrimSpace(durationStr)
	if trimmedStr == "0" {
		return 0, nil
	}

	if matches := dayDurationRegex.FindStringSubmatch(trimmedStr); len(matches) == 2 {
		value, err := strconv.Atoi(matches[1])
		if err != nil {
			return 0, fmt.Errorf("invalid duration number: %s", matches[1])
		}
		return time.Duration(value) * 24 * time.Hour, nil
	}

	d, err := time.ParseDuration(trimmedStr)
	if err != nil {
		return 0, fmt.Errorf("invalid duration format: %s", durationStr)
	}
	if d < 0 {
		return 0, fmt.Errorf("negative duration not allowed: %s", durationStr)
	}
	return d, nil
}
