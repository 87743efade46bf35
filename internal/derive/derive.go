// Package derive holds the pure view-state computations applied to
// already-normalized records: role grouping, name filtering, match
// outcome labels, relative time formatting and K/D strings. No I/O,
// no state.
package derive

import (
	"fmt"
	"strings"
	"time"

	"rivals-tracker/internal/domain"
)

// GroupByRole partitions heroes into the three fixed role buckets,
// preserving the relative order of the source sequence. Every
// normalized hero has a valid role, so there is no "other" bucket.
func GroupByRole(heroes []domain.Hero) map[domain.Role][]domain.Hero {
	grouped := map[domain.Role][]domain.Hero{
		domain.RoleVanguard:   {},
		domain.RoleDuelist:    {},
		domain.RoleStrategist: {},
	}
	for _, h := range heroes {
		grouped[h.Role] = append(grouped[h.Role], h)
	}
	return grouped
}

// FilterHeroes keeps the heroes whose display name or real name
// contains the query, case-insensitively. A blank or whitespace-only
// query means "no filter" and returns the input unchanged.
func FilterHeroes(heroes []domain.Hero, query string) []domain.Hero {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return heroes
	}
	filtered := make([]domain.Hero, 0, len(heroes))
	for _, h := range heroes {
		if strings.Contains(strings.ToLower(h.Name), q) ||
			strings.Contains(strings.ToLower(h.RealName), q) {
			filtered = append(filtered, h)
		}
	}
	return filtered
}

// Outcome is the win/MVP/SVP triple derived for one participant.
type Outcome struct {
	Win bool `json:"win"`
	MVP bool `json:"mvp"`
	SVP bool `json:"svp"`
}

// MatchOutcome derives the outcome for the participant of a standalone
// match record. MVP/SVP hold iff the match marker equals the player's
// own uid; a zero uid (missing upstream) never matches.
func MatchOutcome(item domain.MatchHistoryItem) Outcome {
	return outcome(item.MatchPlayer.IsWin.IsWin, item.MVPUID, item.SVPUID, item.MatchPlayer.PlayerUID)
}

// PlayerMatchOutcome derives the outcome for an embedded player-stats
// match row.
func PlayerMatchOutcome(pm domain.PlayerMatch) Outcome {
	return outcome(pm.Performance.IsWin.IsWin, pm.MVPUID, pm.SVPUID, pm.Performance.PlayerUID)
}

func outcome(win bool, mvpUID, svpUID, playerUID int64) Outcome {
	return Outcome{
		Win: win,
		MVP: playerUID != 0 && mvpUID == playerUID,
		SVP: playerUID != 0 && svpUID == playerUID,
	}
}

// MatchKind labels an embedded match row Competitive when any of the
// ranked-score progression fields is present, Quick Match otherwise.
func MatchKind(p domain.PlayerPerformance) string {
	if p.ScoreChange != nil || p.NewScore != nil || p.NewLevel != nil {
		return "Competitive"
	}
	return "Quick Match"
}

// FormatMatchTime renders a coarse relative age for a match timestamp.
// Timestamps below 1e12 are seconds and scaled to milliseconds. At 14+
// days the label is a fixed "2 weeks ago", at 7+ days "1 week ago",
// anything newer shows the absolute short date. Exact day counts past
// two weeks are deliberately never shown. A zero timestamp yields "".
func FormatMatchTime(timestamp int64, now time.Time) string {
	if timestamp == 0 {
		return ""
	}
	ms := timestamp
	if ms <= 1e12 {
		ms *= 1000
	}
	matchTime := time.UnixMilli(ms).UTC()
	days := int(now.Sub(matchTime).Hours() / 24)
	switch {
	case days >= 14:
		return "2 weeks ago"
	case days >= 7:
		return "1 week ago"
	}
	return matchTime.Format("Jan 2, 2006")
}

// KDRatio formats a kill/death ratio. A missing operand yields the
// placeholder dash; zero deaths shows kills to one decimal place
// rather than a division error.
func KDRatio(kills, deaths *int) string {
	if kills == nil || deaths == nil {
		return "-"
	}
	if *deaths == 0 {
		return fmt.Sprintf("%.1f", float64(*kills))
	}
	return fmt.Sprintf("%.2f", float64(*kills)/float64(*deaths))
}
