package derive

import (
	"testing"
	"time"

	"rivals-tracker/internal/domain"
)

func TestKDRatio(t *testing.T) {
	kills10, kills9, kills7 := 10, 9, 7
	deaths0, deaths3 := 0, 3

	tests := []struct {
		name   string
		kills  *int
		deaths *int
		want   string
	}{
		{"missing kills", nil, &deaths3, "-"},
		{"missing deaths", &kills10, nil, "-"},
		{"zero deaths", &kills10, &deaths0, "10.0"},
		{"even division", &kills9, &deaths3, "3.00"},
		{"rounded", &kills7, &deaths3, "2.33"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KDRatio(tt.kills, tt.deaths); got != tt.want {
				t.Errorf("KDRatio() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatMatchTime(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		timestamp int64
		want      string
	}{
		{"zero timestamp", 0, ""},
		{"fifteen days ago", now.Add(-15 * 24 * time.Hour).Unix(), "2 weeks ago"},
		{"twenty days ago millis", now.Add(-20 * 24 * time.Hour).UnixMilli(), "2 weeks ago"},
		{"eight days ago", now.Add(-8 * 24 * time.Hour).Unix(), "1 week ago"},
		{"two days ago", now.Add(-2 * 24 * time.Hour).Unix(), "Feb 27, 2025"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatMatchTime(tt.timestamp, now); got != tt.want {
				t.Errorf("FormatMatchTime(%d) = %q, want %q", tt.timestamp, got, tt.want)
			}
		})
	}
}

func TestFilterHeroes(t *testing.T) {
	heroes := []domain.Hero{
		{Name: "Thor", RealName: "Thor Odinson", Role: domain.RoleVanguard},
		{Name: "Storm", RealName: "Ororo Munroe", Role: domain.RoleDuelist},
		{Name: "Loki", RealName: "Loki Laufeyson", Role: domain.RoleStrategist},
	}

	t.Run("blank query returns input unchanged", func(t *testing.T) {
		got := FilterHeroes(heroes, "   ")
		if len(got) != len(heroes) {
			t.Fatalf("expected %d heroes, got %d", len(heroes), len(got))
		}
		for i := range heroes {
			if got[i].Name != heroes[i].Name {
				t.Errorf("order changed at %d: got %s, want %s", i, got[i].Name, heroes[i].Name)
			}
		}
	})

	t.Run("case-insensitive name match", func(t *testing.T) {
		got := FilterHeroes(heroes, "THOR")
		if len(got) != 1 || got[0].Name != "Thor" {
			t.Fatalf("expected [Thor], got %v", got)
		}
	})

	t.Run("real name matches too", func(t *testing.T) {
		got := FilterHeroes(heroes, "munroe")
		if len(got) != 1 || got[0].Name != "Storm" {
			t.Fatalf("expected [Storm], got %v", got)
		}
	})

	t.Run("no match yields empty", func(t *testing.T) {
		if got := FilterHeroes(heroes, "hulk"); len(got) != 0 {
			t.Fatalf("expected empty, got %v", got)
		}
	})
}

func TestGroupByRole(t *testing.T) {
	heroes := []domain.Hero{
		{Name: "A", Role: domain.RoleVanguard},
		{Name: "B", Role: domain.RoleDuelist},
		{Name: "C", Role: domain.RoleVanguard},
	}
	grouped := GroupByRole(heroes)

	vanguards := grouped[domain.RoleVanguard]
	if len(vanguards) != 2 || vanguards[0].Name != "A" || vanguards[1].Name != "C" {
		t.Errorf("vanguard bucket order wrong: %v", vanguards)
	}
	if len(grouped[domain.RoleDuelist]) != 1 {
		t.Errorf("expected one duelist")
	}
	// the empty bucket must still be present
	if _, ok := grouped[domain.RoleStrategist]; !ok {
		t.Errorf("strategist bucket missing")
	}
}

func TestMatchKind(t *testing.T) {
	change := 25.0
	if got := MatchKind(domain.PlayerPerformance{ScoreChange: &change}); got != "Competitive" {
		t.Errorf("expected Competitive, got %q", got)
	}
	if got := MatchKind(domain.PlayerPerformance{}); got != "Quick Match" {
		t.Errorf("expected Quick Match, got %q", got)
	}
	level := 12.0
	if got := MatchKind(domain.PlayerPerformance{NewLevel: &level}); got != "Competitive" {
		t.Errorf("new_level alone should mean Competitive, got %q", got)
	}
}

func TestMatchOutcome(t *testing.T) {
	item := domain.MatchHistoryItem{
		MVPUID: 42,
		SVPUID: 7,
		MatchPlayer: domain.MatchPlayer{
			PlayerUID: 42,
			IsWin:     domain.WinScore{IsWin: true},
		},
	}
	out := MatchOutcome(item)
	if !out.Win || !out.MVP || out.SVP {
		t.Errorf("unexpected outcome %+v", out)
	}
}

func TestMatchOutcome_ZeroUIDNeverMatches(t *testing.T) {
	item := domain.MatchHistoryItem{
		MVPUID:      0,
		SVPUID:      0,
		MatchPlayer: domain.MatchPlayer{PlayerUID: 0},
	}
	out := MatchOutcome(item)
	if out.MVP || out.SVP {
		t.Errorf("zero uids must not produce MVP/SVP, got %+v", out)
	}
}

func TestPlayerMatchOutcome(t *testing.T) {
	pm := domain.PlayerMatch{
		MVPUID: 9,
		SVPUID: 11,
		Performance: domain.PlayerPerformance{
			PlayerUID: 11,
			IsWin:     domain.WinScore{IsWin: false},
		},
	}
	out := PlayerMatchOutcome(pm)
	if out.Win || out.MVP || !out.SVP {
		t.Errorf("unexpected outcome %+v", out)
	}
}
