package domain

import "time"

// FreshnessStatus how recently a quote set was observed.
type FreshnessStatus string

const (
	// FreshnessLive data observed within the last five minutes.
	FreshnessLive FreshnessStatus = "live"
	// FreshnessStale data between five and fifteen minutes old.
	FreshnessStale FreshnessStatus = "stale"
	// FreshnessPaused data fifteen minutes old or older, or absent entirely.
	FreshnessPaused FreshnessStatus = "paused"
)

const (
	staleAfterMinutes  = 5
	pausedAfterMinutes = 15
)

// String returns the string representation.
func (s FreshnessStatus) String() string {
	return string(s)
}

// FreshnessInfo classification of a quote set's age.
type FreshnessInfo struct {
	Status FreshnessStatus `json:"status"`
	// MinutesAgo elapsed whole minutes, truncated toward zero.
	MinutesAgo int `json:"minutes_ago"`
}

// ClassifyFreshness buckets a last-updated timestamp into a freshness tier.
// Boundary values belong to the next tier: exactly 5 minutes is stale,
// exactly 15 is paused. A timestamp in the future (clock skew) reports
// zero minutes and live.
func ClassifyFreshness(lastUpdated, now time.Time) FreshnessInfo {
	elapsed := now.Sub(lastUpdated)
	if elapsed < 0 {
		elapsed = 0
	}

	minutes := int(elapsed / time.Minute)

	status := FreshnessPaused
	switch {
	case minutes < staleAfterMinutes:
		status = FreshnessLive
	case minutes < pausedAfterMinutes:
		status = FreshnessStale
	}

	return FreshnessInfo{Status: status, MinutesAgo: minutes}
}
