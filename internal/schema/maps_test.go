package schema

import (
	"testing"
)

const validMapJSON = `{
	"id": 101,
	"name": "Yggsgard",
	"full_name": "Yggsgard: Royal Palace",
	"location": "Asgard",
	"description": "The seat of Asgardian power.",
	"game_mode": "Domination",
	"is_competitive": true,
	"sub_map_id": 1011,
	"sub_map_name": null,
	"sub_map_thumbnail": null,
	"images": ["maps/101/a.png", "maps/101/b.png"],
	"video": "/videos/101.mp4"
}`

func TestParseGameMap_Valid(t *testing.T) {
	m, violations := ParseGameMap(decode(t, validMapJSON))
	if len(violations) != 0 {
		t.Fatalf("expected no violations, got %v", violations)
	}
	if m.ID != 101 || m.Name != "Yggsgard" || !m.IsCompetitive {
		t.Errorf("fields wrong: %+v", m)
	}
	if m.SubMapName != nil {
		t.Errorf("null sub_map_name must stay nil")
	}
	if m.Video == nil || *m.Video != "/videos/101.mp4" {
		t.Errorf("video wrong: %v", m.Video)
	}
	if len(m.Images) != 2 {
		t.Errorf("images wrong: %v", m.Images)
	}
}

func TestParseMaps_Envelope(t *testing.T) {
	maps, violations := ParseMaps(decode(t, `{"maps": [`+validMapJSON+`]}`))
	if len(violations) != 0 {
		t.Fatalf("expected no violations, got %v", violations)
	}
	if len(maps) != 1 || maps[0].ID != 101 {
		t.Errorf("maps wrong: %+v", maps)
	}
}

func TestParseMaps_MissingEnvelopeKey(t *testing.T) {
	_, violations := ParseMaps(decode(t, `{"data": []}`))
	if len(violations) != 1 || violations[0].Path != "maps" {
		t.Fatalf("unexpected violations %v", violations)
	}
}

const validMatchHistoryJSON = `{
	"match_history": [{
		"match_map_id": 101,
		"map_thumbnail": "/rivals/maps/101.png",
		"match_play_duration": 912.4,
		"match_season": "2.5",
		"match_uid": "match-1",
		"match_winner_side": 0,
		"mvp_uid": 42,
		"svp_uid": 7,
		"score_info": {"0": 2, "1": 1},
		"match_time_stamp": 1740000000,
		"play_mode_id": 1,
		"game_mode_id": 1,
		"match_player": {
			"kills": 12,
			"deaths": 4,
			"assists": 6,
			"disconnected": false,
			"player_uid": 42,
			"camp": null,
			"is_win": {"score": 2, "is_win": true},
			"score_info": {"add_score": 20, "level": 9, "new_level": null, "new_score": 4120},
			"player_hero": {
				"hero_id": 1018,
				"hero_name": "Doctor Strange",
				"hero_type": "/heroes/transformations/1018.png",
				"kills": 12,
				"deaths": 4,
				"assists": 6,
				"play_time": 912.4,
				"total_hero_damage": 18100,
				"total_damage_taken": 22040,
				"total_hero_heal": 0
			}
		}
	}],
	"pagination": {"page": 1, "limit": 20, "total_matches": 53, "total_pages": 3, "has_more": true}
}`

func TestParseMatchHistory_Valid(t *testing.T) {
	mh, violations := ParseMatchHistory(decode(t, validMatchHistoryJSON))
	if len(violations) != 0 {
		t.Fatalf("expected no violations, got %v", violations)
	}
	if len(mh.Items) != 1 {
		t.Fatalf("expected one item, got %d", len(mh.Items))
	}
	item := mh.Items[0]
	if item.MVPUID != 42 || item.MatchPlayer.PlayerUID != 42 {
		t.Errorf("uids wrong: %+v", item)
	}
	if item.MatchPlayer.Camp != nil {
		t.Errorf("null camp must stay nil")
	}
	if item.MatchPlayer.ScoreInfo.NewLevel != nil {
		t.Errorf("null new_level must stay nil")
	}
	if !mh.Pagination.HasMore || mh.Pagination.TotalPages != 3 {
		t.Errorf("pagination wrong: %+v", mh.Pagination)
	}
}

func TestParseMatchHistory_BadElementFailsWhole(t *testing.T) {
	_, violations := ParseMatchHistory(decode(t,
		`{"match_history": [{"match_uid": 5}], "pagination": {"page": 1, "limit": 20, "total_matches": 0, "total_pages": 0, "has_more": false}}`))
	if len(violations) == 0 {
		t.Fatal("expected violations for the malformed element")
	}
	for _, v := range violations {
		if len(v.Path) < len("match_history.0") || v.Path[:len("match_history.0")] != "match_history.0" {
			t.Errorf("violation not attributed to element: %v", v)
		}
	}
}
