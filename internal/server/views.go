package server

import (
	"time"

	"rivals-tracker/internal/assets"
	"rivals-tracker/internal/derive"
	"rivals-tracker/internal/domain"
)

// The view layer turns normalized records into render-ready responses:
// grouped and filtered rosters, fully-qualified asset URLs, formatted
// K/D and match-time strings. All derivation happens here, per request,
// never at store time.

type HeroSummary struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	RealName   string `json:"real_name"`
	Role       string `json:"role"`
	AttackType string `json:"attack_type"`
	ImageURL   string `json:"image_url"`
}

type RoleGroup struct {
	Role   string        `json:"role"`
	Heroes []HeroSummary `json:"heroes"`
}

type HeroesResponse struct {
	Roles []RoleGroup `json:"roles"`
	Total int         `json:"total"`
}

type AbilityView struct {
	ID   int64  `json:"id"`
	Name string `json:"name,omitempty"`
	Type string `json:"type"`
	Icon string `json:"icon"`
}

type CostumeView struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Quality string `json:"quality"`
	Icon    string `json:"icon"`
}

type HeroDetail struct {
	HeroSummary
	Team       []string      `json:"team"`
	Difficulty string        `json:"difficulty"`
	Bio        string        `json:"bio"`
	Lore       string        `json:"lore"`
	Abilities  []AbilityView `json:"abilities"`
	Costumes   []CostumeView `json:"costumes"`
}

type MapView struct {
	ID            int64    `json:"id"`
	Name          string   `json:"name"`
	FullName      string   `json:"full_name"`
	Location      string   `json:"location"`
	GameMode      string   `json:"game_mode"`
	IsCompetitive bool     `json:"is_competitive"`
	Image         string   `json:"image"`
	PremiumImage  string   `json:"premium_image,omitempty"`
	Images        []string `json:"images"`
	Video         string   `json:"video,omitempty"`
	SubMapName    string   `json:"sub_map_name,omitempty"`
	SubMapImage   string   `json:"sub_map_image,omitempty"`
}

type MatchRow struct {
	MatchUID      string  `json:"match_uid"`
	MapID         int64   `json:"map_id"`
	MapThumbnail  string  `json:"map_thumbnail"`
	HeroName      string  `json:"hero_name"`
	HeroThumbnail string  `json:"hero_thumbnail"`
	Kills         int     `json:"kills"`
	Deaths        int     `json:"deaths"`
	Assists       int     `json:"assists"`
	KD            string  `json:"kd"`
	Kind          string  `json:"kind"`
	Win           bool    `json:"win"`
	MVP           bool    `json:"mvp"`
	SVP           bool    `json:"svp"`
	PlayedAt      string  `json:"played_at"`
	Duration      float64 `json:"duration,omitempty"`
}

type MatchHistoryResponse struct {
	Matches    []MatchRow        `json:"matches"`
	Pagination domain.Pagination `json:"pagination"`
}

type PlayerView struct {
	UID     int64               `json:"uid"`
	Name    string              `json:"name"`
	Level   string              `json:"level"`
	Icon    string              `json:"icon"`
	Rank    RankView            `json:"rank"`
	Private bool                `json:"private"`
	Overall domain.OverallStats `json:"overall_stats"`
	Matches []MatchRow          `json:"matches"`
	Updated string              `json:"updated_at,omitempty"`
}

type RankView struct {
	Rank  string `json:"rank"`
	Image string `json:"image"`
	Color string `json:"color"`
}

// viewBuilder carries the resolver and the clock so match-time strings
// are testable.
type viewBuilder struct {
	resolver *assets.Resolver
	now      func() time.Time
}

func newViewBuilder(resolver *assets.Resolver) *viewBuilder {
	return &viewBuilder{resolver: resolver, now: time.Now}
}

// Heroes filters by query, groups by role and renders the groups in
// the fixed Vanguard, Duelist, Strategist order.
func (b *viewBuilder) Heroes(heroes []domain.Hero, query string) HeroesResponse {
	filtered := derive.FilterHeroes(heroes, query)
	grouped := derive.GroupByRole(filtered)

	resp := HeroesResponse{Roles: make([]RoleGroup, 0, len(domain.Roles)), Total: len(filtered)}
	for _, role := range domain.Roles {
		group := RoleGroup{Role: string(role), Heroes: make([]HeroSummary, 0, len(grouped[role]))}
		for _, h := range grouped[role] {
			group.Heroes = append(group.Heroes, b.heroSummary(h))
		}
		resp.Roles = append(resp.Roles, group)
	}
	return resp
}

func (b *viewBuilder) heroSummary(h domain.Hero) HeroSummary {
	return HeroSummary{
		ID:         h.ID,
		Name:       h.Name,
		RealName:   h.RealName,
		Role:       string(h.Role),
		AttackType: string(h.AttackType),
		ImageURL:   b.resolver.HeroImage(h),
	}
}

func (b *viewBuilder) Hero(h domain.Hero) HeroDetail {
	detail := HeroDetail{
		HeroSummary: b.heroSummary(h),
		Team:        h.Team,
		Difficulty:  h.Difficulty,
		Bio:         h.Bio,
		Lore:        h.Lore,
		Abilities:   make([]AbilityView, 0, len(h.Abilities)),
		Costumes:    make([]CostumeView, 0, len(h.Costumes)),
	}
	for _, a := range h.Abilities {
		detail.Abilities = append(detail.Abilities, AbilityView{
			ID:   a.ID,
			Name: a.Name,
			Type: string(a.Type),
			Icon: b.resolver.AbilityIcon(a),
		})
	}
	for _, c := range h.Costumes {
		view := CostumeView{ID: c.ID, Name: c.Name, Quality: string(c.Quality)}
		if c.Icon != nil {
			view.Icon = b.resolver.Resolve(assets.FamilyHero, *c.Icon)
		}
		detail.Costumes = append(detail.Costumes, view)
	}
	return detail
}

func (b *viewBuilder) Map(m domain.GameMap) MapView {
	view := MapView{
		ID:            m.ID,
		Name:          m.Name,
		FullName:      m.FullName,
		Location:      m.Location,
		GameMode:      m.GameMode,
		IsCompetitive: m.IsCompetitive,
		Image:         b.resolver.MapImage(m),
		PremiumImage:  b.resolver.MapPremiumImage(m),
		Images:        b.resolver.MapImages(m),
		Video:         b.resolver.MapVideo(m),
		SubMapImage:   b.resolver.SubMapThumbnail(m),
	}
	if m.SubMapName != nil {
		view.SubMapName = *m.SubMapName
	}
	return view
}

func (b *viewBuilder) Maps(maps []domain.GameMap) []MapView {
	views := make([]MapView, 0, len(maps))
	for _, m := range maps {
		views = append(views, b.Map(m))
	}
	return views
}

// MatchHistory renders standalone match-history rows.
func (b *viewBuilder) MatchHistory(mh domain.MatchHistory) MatchHistoryResponse {
	resp := MatchHistoryResponse{
		Matches:    make([]MatchRow, 0, len(mh.Items)),
		Pagination: mh.Pagination,
	}
	now := b.now()
	for _, item := range mh.Items {
		outcome := derive.MatchOutcome(item)
		kills, deaths := item.MatchPlayer.Kills, item.MatchPlayer.Deaths
		resp.Matches = append(resp.Matches, MatchRow{
			MatchUID:      item.MatchUID,
			MapID:         item.MatchMapID,
			MapThumbnail:  b.resolver.MapThumbnail(item.MapThumbnail),
			HeroName:      item.MatchPlayer.PlayerHero.HeroName,
			HeroThumbnail: b.resolver.HeroTypeIcon(item.MatchPlayer.PlayerHero.HeroType),
			Kills:         kills,
			Deaths:        deaths,
			Assists:       item.MatchPlayer.Assists,
			KD:            derive.KDRatio(&kills, &deaths),
			Kind:          matchKindFromScores(item.ScoreInfo),
			Win:           outcome.Win,
			MVP:           outcome.MVP,
			SVP:           outcome.SVP,
			PlayedAt:      derive.FormatMatchTime(item.MatchTimeStamp, now),
			Duration:      item.MatchPlayDuration,
		})
	}
	return resp
}

// matchKindFromScores labels a standalone match row; the ranked score
// map is only populated for competitive games.
func matchKindFromScores(scores map[string]float64) string {
	if len(scores) > 0 {
		return "Competitive"
	}
	return "Quick Match"
}

// Player renders the aggregate player view with embedded match rows.
func (b *viewBuilder) Player(p domain.PlayerStats) PlayerView {
	view := PlayerView{
		UID:     p.Player.UID,
		Name:    p.Player.Name,
		Level:   p.Player.Level,
		Icon:    b.resolver.PlayerIcon(p.Player.Icon.PlayerIcon),
		Private: p.IsPrivate,
		Overall: p.Overall,
		Updated: p.Updates.InfoUpdateTime,
		Rank: RankView{
			Rank:  p.Player.Rank.Rank,
			Image: b.resolver.RankIcon(p.Player.Rank.Image),
			Color: p.Player.Rank.Color,
		},
		Matches: make([]MatchRow, 0, len(p.MatchHistory)),
	}
	if view.UID == 0 {
		view.UID = p.UID
	}
	if view.Name == "" {
		view.Name = p.Name
	}

	now := b.now()
	for _, pm := range p.MatchHistory {
		outcome := derive.PlayerMatchOutcome(pm)
		perf := pm.Performance
		row := MatchRow{
			MatchUID:      pm.MatchUID,
			MapID:         pm.MapID,
			MapThumbnail:  b.resolver.MapThumbnail(pm.MapThumbnail),
			HeroName:      perf.HeroName,
			HeroThumbnail: b.resolver.HeroTypeIcon(perf.HeroType),
			Assists:       perf.Assists,
			Kind:          derive.MatchKind(perf),
			Win:           outcome.Win,
			MVP:           outcome.MVP,
			SVP:           outcome.SVP,
			PlayedAt:      derive.FormatMatchTime(pm.MatchTimeStamp, now),
		}
		row.Kills, row.Deaths = perf.Kills, perf.Deaths
		row.KD = derive.KDRatio(&perf.Kills, &perf.Deaths)
		view.Matches = append(view.Matches, row)
	}
	return view
}
