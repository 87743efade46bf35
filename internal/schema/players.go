package schema

import (
	"rivals-tracker/internal/domain"
)

// ParsePlayerStats validates the aggregate player-stats payload. The
// embedded match-history rows use the flattened player_performance
// shape, not the standalone match_player one.
func ParsePlayerStats(value any) (domain.PlayerStats, []Violation) {
	c := &collector{}
	o, ok := asObject(value, "", c)
	if !ok {
		return domain.PlayerStats{}, c.violations
	}

	ps := domain.PlayerStats{
		UID:       o.integer("uid"),
		Name:      o.str("name"),
		IsPrivate: o.boolean("isPrivate"),
	}

	if up, ok := o.child("updates"); ok {
		ps.Updates = domain.Updates{
			InfoUpdateTime:    up.str("info_update_time"),
			LastHistoryUpdate: up.nullableStr("last_history_update"),
			LastInsertedMatch: up.nullableStr("last_inserted_match"),
			LastUpdateRequest: up.nullableStr("last_update_request"),
		}
	}
	if pl, ok := o.child("player"); ok {
		ps.Player = parsePlayerSummary(pl)
	}
	if ov, ok := o.child("overall_stats"); ok {
		ps.Overall = domain.OverallStats{
			TotalMatches: ov.integer("total_matches"),
			TotalWins:    ov.integer("total_wins"),
		}
		if un, ok := ov.child("unranked"); ok {
			ps.Overall.Unranked = parseSeasonTotals(un)
		}
		if rk, ok := ov.child("ranked"); ok {
			ps.Overall.Ranked = parseSeasonTotals(rk)
		}
	}

	for i, el := range o.array("match_history") {
		ps.MatchHistory = append(ps.MatchHistory, parsePlayerMatch(el, indexPath("match_history", i), c))
	}
	for i, el := range o.array("rank_history") {
		ps.RankHistory = append(ps.RankHistory, parseRankHistory(el, indexPath("rank_history", i), c))
	}
	for i, el := range o.array("hero_matchups") {
		ps.HeroMatchups = append(ps.HeroMatchups, parseHeroMatchup(el, indexPath("hero_matchups", i), c))
	}
	for i, el := range o.array("team_mates") {
		ps.TeamMates = append(ps.TeamMates, parseTeamMate(el, indexPath("team_mates", i), c))
	}
	for i, el := range o.array("heroes_ranked") {
		ps.HeroesRanked = append(ps.HeroesRanked, parseHeroAggregate(el, indexPath("heroes_ranked", i), c))
	}
	for i, el := range o.array("heroes_unranked") {
		ps.HeroesUnranked = append(ps.HeroesUnranked, parseHeroAggregate(el, indexPath("heroes_unranked", i), c))
	}
	for i, el := range o.array("maps") {
		ps.Maps = append(ps.Maps, parseMapAggregate(el, indexPath("maps", i), c))
	}

	return ps, c.violations
}

func parsePlayerSummary(o object) domain.PlayerSummary {
	s := domain.PlayerSummary{
		UID:   o.integer("uid"),
		Level: o.str("level"),
		Name:  o.str("name"),
	}
	if ic, ok := o.child("icon"); ok {
		s.Icon = domain.PlayerIcon{
			PlayerIconID: ic.str("player_icon_id"),
			PlayerIcon:   ic.str("player_icon"),
		}
	}
	if rk, ok := o.child("rank"); ok {
		s.Rank = domain.PlayerRank{
			Rank:  rk.str("rank"),
			Image: rk.str("image"),
			Color: rk.str("color"),
		}
	}
	if tm, ok := o.child("team"); ok {
		s.Team = domain.ClubTeam{
			ClubTeamID:       tm.str("club_team_id"),
			ClubTeamMiniName: tm.str("club_team_mini_name"),
			ClubTeamType:     tm.str("club_team_type"),
		}
	}
	return s
}

func parseSeasonTotals(o object) domain.SeasonTotals {
	return domain.SeasonTotals{
		TotalMatches:       o.integer("total_matches"),
		TotalWins:          o.integer("total_wins"),
		TotalAssists:       o.integer("total_assists"),
		TotalDeaths:        o.integer("total_deaths"),
		TotalKills:         o.integer("total_kills"),
		TotalTimePlayed:    o.str("total_time_played"),
		TotalTimePlayedRaw: o.num("total_time_played_raw"),
		TotalMVP:           o.integer("total_mvp"),
		TotalSVP:           o.integer("total_svp"),
	}
}

// ParsePlayerMatch validates a single embedded match-history row.
func ParsePlayerMatch(value any) (domain.PlayerMatch, []Violation) {
	c := &collector{}
	pm := parsePlayerMatch(value, "", c)
	return pm, c.violations
}

func parsePlayerMatch(value any, path string, c *collector) domain.PlayerMatch {
	o, ok := asObject(value, path, c)
	if !ok {
		return domain.PlayerMatch{}
	}
	pm := domain.PlayerMatch{
		MatchUID:       o.str("match_uid"),
		MapID:          o.integer("map_id"),
		MapThumbnail:   o.str("map_thumbnail"),
		Duration:       o.num("duration"),
		Season:         o.integer("season"),
		WinnerSide:     o.integer("winner_side"),
		MVPUID:         o.integer("mvp_uid"),
		SVPUID:         o.integer("svp_uid"),
		MatchTimeStamp: o.integer("match_time_stamp"),
		PlayModeID:     o.integer("play_mode_id"),
		GameModeID:     o.integer("game_mode_id"),
		ScoreInfo:      o.numberMapOrNull("score_info"),
	}
	if pf, ok := o.child("player_performance"); ok {
		pm.Performance = domain.PlayerPerformance{
			PlayerUID:    pf.integer("player_uid"),
			HeroID:       pf.integer("hero_id"),
			HeroName:     pf.str("hero_name"),
			HeroType:     pf.str("hero_type"),
			Kills:        pf.count("kills"),
			Deaths:       pf.count("deaths"),
			Assists:      pf.count("assists"),
			Disconnected: pf.boolean("disconnected"),
			Camp:         pf.integer("camp"),
			ScoreChange:  pf.nullableNum("score_change"),
			Level:        pf.nullableNum("level"),
			NewLevel:     pf.nullableNum("new_level"),
			NewScore:     pf.nullableNum("new_score"),
		}
		if w, ok := pf.child("is_win"); ok {
			pm.Performance.IsWin = parseWinScore(w)
		}
	}
	return pm
}

func parseRankHistory(value any, path string, c *collector) domain.RankHistory {
	o, ok := asObject(value, path, c)
	if !ok {
		return domain.RankHistory{}
	}
	rh := domain.RankHistory{
		MatchTimeStamp: o.integer("match_time_stamp"),
	}
	if lp, ok := o.child("level_progression"); ok {
		rh.LevelProgression = domain.LevelProgression{
			From: lp.num("from"),
			To:   lp.num("to"),
		}
	}
	if sp, ok := o.child("score_progression"); ok {
		rh.ScoreProgression = domain.ScoreProgression{
			AddScore:   sp.num("add_score"),
			TotalScore: sp.num("total_score"),
		}
	}
	return rh
}

func parseHeroMatchup(value any, path string, c *collector) domain.HeroMatchup {
	o, ok := asObject(value, path, c)
	if !ok {
		return domain.HeroMatchup{}
	}
	return domain.HeroMatchup{
		HeroID:        o.nullableInt("hero_id"),
		HeroName:      o.str("hero_name"),
		HeroClass:     o.str("hero_class"),
		HeroThumbnail: o.nullableStr("hero_thumbnail"),
		Matches:       o.integer("matches"),
		Wins:          o.integer("wins"),
		WinRate:       o.str("win_rate"),
	}
}

func parseTeamMate(value any, path string, c *collector) domain.TeamMate {
	o, ok := asObject(value, path, c)
	if !ok {
		return domain.TeamMate{}
	}
	tm := domain.TeamMate{
		Matches: o.integer("matches"),
		Wins:    o.integer("wins"),
		WinRate: o.str("win_rate"),
	}
	if pi, ok := o.child("player_info"); ok {
		tm.PlayerInfo = domain.PlayerInfo{
			NickName:   pi.str("nick_name"),
			PlayerIcon: pi.str("player_icon"),
			PlayerUID:  pi.integer("player_uid"),
		}
	}
	return tm
}

func parseHeroAggregate(value any, path string, c *collector) domain.HeroAggregate {
	o, ok := asObject(value, path, c)
	if !ok {
		return domain.HeroAggregate{}
	}
	ha := domain.HeroAggregate{
		HeroID:        o.integer("hero_id"),
		HeroName:      o.str("hero_name"),
		HeroThumbnail: o.str("hero_thumbnail"),
		Matches:       o.integer("matches"),
		Wins:          o.integer("wins"),
		MVP:           o.integer("mvp"),
		SVP:           o.integer("svp"),
		Kills:         o.integer("kills"),
		Deaths:        o.integer("deaths"),
		Assists:       o.integer("assists"),
		PlayTime:      o.num("play_time"),
		Damage:        o.num("damage"),
		Heal:          o.num("heal"),
		DamageTaken:   o.num("damage_taken"),
	}
	if ma, ok := o.child("main_attack"); ok {
		ha.MainAttack = domain.MainAttack{
			Total: ma.integer("total"),
			Hits:  ma.integer("hits"),
		}
	}
	return ha
}

func parseMapAggregate(value any, path string, c *collector) domain.MapAggregate {
	o, ok := asObject(value, path, c)
	if !ok {
		return domain.MapAggregate{}
	}
	return domain.MapAggregate{
		MapID:        o.integer("map_id"),
		MapThumbnail: o.optStr("map_thumbnail"),
		Matches:      o.integer("matches"),
		Wins:         o.integer("wins"),
		Kills:        o.integer("kills"),
		Deaths:       o.integer("deaths"),
		Assists:      o.integer("assists"),
		PlayTime:     o.num("play_time"),
	}
}
