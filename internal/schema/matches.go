package schema

import (
	"rivals-tracker/internal/domain"
)

// ParseMatchHistory validates the standalone v2 match-history payload.
// This is a collection endpoint: one malformed element fails the whole
// parse, there is no per-element fallback.
func ParseMatchHistory(value any) (domain.MatchHistory, []Violation) {
	c := &collector{}
	o, ok := asObject(value, "", c)
	if !ok {
		return domain.MatchHistory{}, c.violations
	}

	mh := domain.MatchHistory{}
	for i, el := range o.array("match_history") {
		mh.Items = append(mh.Items, parseMatchHistoryItem(el, indexPath("match_history", i), c))
	}
	if pg, ok := o.child("pagination"); ok {
		mh.Pagination = domain.Pagination{
			Page:         pg.integer("page"),
			Limit:        pg.integer("limit"),
			TotalMatches: pg.integer("total_matches"),
			TotalPages:   pg.integer("total_pages"),
			HasMore:      pg.boolean("has_more"),
		}
	}
	return mh, c.violations
}

// ParseMatchHistoryItem validates a single standalone match record.
func ParseMatchHistoryItem(value any) (domain.MatchHistoryItem, []Violation) {
	c := &collector{}
	item := parseMatchHistoryItem(value, "", c)
	return item, c.violations
}

func parseMatchHistoryItem(value any, path string, c *collector) domain.MatchHistoryItem {
	o, ok := asObject(value, path, c)
	if !ok {
		return domain.MatchHistoryItem{}
	}
	item := domain.MatchHistoryItem{
		MatchMapID:        o.integer("match_map_id"),
		MapThumbnail:      o.str("map_thumbnail"),
		MatchPlayDuration: o.num("match_play_duration"),
		MatchSeason:       o.str("match_season"),
		MatchUID:          o.str("match_uid"),
		MatchWinnerSide:   o.integer("match_winner_side"),
		MVPUID:            o.integer("mvp_uid"),
		SVPUID:            o.integer("svp_uid"),
		ScoreInfo:         o.numberMapOrNull("score_info"),
		MatchTimeStamp:    o.integer("match_time_stamp"),
		PlayModeID:        o.integer("play_mode_id"),
		GameModeID:        o.integer("game_mode_id"),
	}
	if mp, ok := o.child("match_player"); ok {
		item.MatchPlayer = parseMatchPlayer(mp)
	}
	return item
}

func parseMatchPlayer(o object) domain.MatchPlayer {
	mp := domain.MatchPlayer{
		Kills:        o.count("kills"),
		Deaths:       o.count("deaths"),
		Assists:      o.count("assists"),
		Disconnected: o.boolean("disconnected"),
		PlayerUID:    o.integer("player_uid"),
		Camp:         o.nullableInt("camp"),
	}
	if w, ok := o.child("is_win"); ok {
		mp.IsWin = parseWinScore(w)
	}
	if si, ok := o.child("score_info"); ok {
		mp.ScoreInfo = domain.ScoreInfo{
			AddScore: si.nullableNum("add_score"),
			Level:    si.nullableNum("level"),
			NewLevel: si.nullableNum("new_level"),
			NewScore: si.nullableNum("new_score"),
		}
	}
	if ph, ok := o.child("player_hero"); ok {
		mp.PlayerHero = domain.PlayerHero{
			HeroID:           ph.integer("hero_id"),
			HeroName:         ph.str("hero_name"),
			HeroType:         ph.str("hero_type"),
			Kills:            ph.count("kills"),
			Deaths:           ph.count("deaths"),
			Assists:          ph.count("assists"),
			PlayTime:         ph.num("play_time"),
			TotalHeroDamage:  ph.num("total_hero_damage"),
			TotalDamageTaken: ph.num("total_damage_taken"),
			TotalHeroHeal:    ph.num("total_hero_heal"),
		}
	}
	return mp
}

func parseWinScore(o object) domain.WinScore {
	return domain.WinScore{
		Score: o.num("score"),
		IsWin: o.boolean("is_win"),
	}
}
