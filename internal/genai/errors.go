package genai

import (
	"errors"
	"strings"
)

// ErrRateLimited marks a generation failure caused by quota or rate limits.
// The UI shows a distinct message for these.
var ErrRateLimited = errors.New("genai: rate limited")

var rateLimitMarkers = []string{
	"429",
	"rate limit",
	"rate_limit",
	"quota",
	"resource_exhausted",
}

// IsRateLimited classifies a generation failure by inspecting the error text
// for known rate-limit markers.
func IsRateLimited(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrRateLimited) {
		return true
	}
	msg := strings.ToLower(err.Error())
	for _, marker := range rateLimitMarkers {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}
