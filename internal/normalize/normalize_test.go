package normalize

import (
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"rivals-tracker/internal/apperr"
	"rivals-tracker/internal/domain"
)

func newTestNormalizer() *Normalizer {
	return New(DefaultPolicy(), zerolog.Nop())
}

const validHeroJSON = `{
	"id": "1018",
	"name": "Doctor Strange",
	"real_name": "Stephen Strange",
	"imageUrl": "heroes/doctor-strange.png",
	"icon": "icons/doctor-strange.png",
	"role": "Vanguard",
	"attack_type": "Projectile",
	"team": ["Avengers"],
	"difficulty": "2",
	"bio": "Sorcerer Supreme.",
	"lore": "Master of the mystic arts.",
	"transformations": [],
	"costumes": [],
	"abilities": []
}`

func TestHero_StrictPayloadPreserved(t *testing.T) {
	hero, err := newTestNormalizer().Hero([]byte(validHeroJSON), "doctor strange")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hero.ID != "1018" || hero.Name != "Doctor Strange" {
		t.Errorf("strict fields altered: %+v", hero)
	}
	// a valid role must never be replaced with the default
	if hero.Role != domain.RoleVanguard {
		t.Errorf("role = %s, want Vanguard", hero.Role)
	}
}

func TestHero_SingleElementArrayUnwrapped(t *testing.T) {
	hero, err := newTestNormalizer().Hero([]byte("["+validHeroJSON+"]"), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hero.Name != "Doctor Strange" {
		t.Errorf("unwrap failed: %+v", hero)
	}
}

func TestHero_EmptyArrayIsNotFound(t *testing.T) {
	_, err := newTestNormalizer().Hero([]byte(`[]`), "hulk")
	if !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestHero_MalformedJSON(t *testing.T) {
	_, err := newTestNormalizer().Hero([]byte(`{not json`), "hulk")
	var malformed *apperr.MalformedPayloadError
	if !errors.As(err, &malformed) {
		t.Fatalf("expected MalformedPayloadError, got %v", err)
	}
}

func TestHero_LenientDataEnvelope(t *testing.T) {
	hero, err := newTestNormalizer().Hero([]byte(`{"data": {"name": "Hulk"}}`), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hero.Name != "Hulk" || hero.RealName != "Hulk" {
		t.Errorf("name extraction failed: %+v", hero)
	}
	if hero.Role != domain.RoleDuelist {
		t.Errorf("missing role must default to Duelist, got %s", hero.Role)
	}
	if hero.AttackType != domain.AttackProjectile {
		t.Errorf("missing attack type must default to Projectile, got %s", hero.AttackType)
	}
	if hero.ID != "Hulk" {
		t.Errorf("missing id must fall back to name, got %q", hero.ID)
	}
}

func TestHero_EmptyEnumStringsDefaulted(t *testing.T) {
	raw := strings.Replace(validHeroJSON, `"role": "Vanguard"`, `"role": ""`, 1)
	raw = strings.Replace(raw, `"attack_type": "Projectile"`, `"attack_type": ""`, 1)

	hero, err := newTestNormalizer().Hero([]byte(raw), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// an empty enum string must fail strict validation and pick up the
	// lenient defaults, never survive as-is
	if hero.Role != domain.RoleDuelist {
		t.Errorf("role = %q, want default Duelist", hero.Role)
	}
	if hero.AttackType != domain.AttackProjectile {
		t.Errorf("attack type = %q, want default Projectile", hero.AttackType)
	}
	if hero.Name != "Doctor Strange" {
		t.Errorf("rest of the record lost: %+v", hero)
	}
}

func TestHero_ScalarPayloadIsNotFound(t *testing.T) {
	_, err := newTestNormalizer().Hero([]byte(`"oops"`), "hulk")
	if !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestHero_LenientUnknownRoleDefaults(t *testing.T) {
	hero, err := newTestNormalizer().Hero([]byte(`{"name": "Hulk", "role": "Tank"}`), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hero.Role != domain.RoleDuelist {
		t.Errorf("unknown role must default, got %s", hero.Role)
	}
}

func TestHero_LenientFallbackName(t *testing.T) {
	hero, err := newTestNormalizer().Hero([]byte(`{"role": "Duelist"}`), "Iron Fist")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hero.Name != "Iron Fist" || hero.ID != "Iron Fist" {
		t.Errorf("fallback name not applied: %+v", hero)
	}
}

func TestHero_LenientNoNameIsNotFound(t *testing.T) {
	_, err := newTestNormalizer().Hero([]byte(`{"role": "Duelist"}`), "")
	if !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestHero_LenientImageURLVariants(t *testing.T) {
	n := newTestNormalizer()

	hero, err := n.Hero([]byte(`{"name": "Hulk", "imageUrl": "a.png"}`), "")
	if err != nil || hero.ImageURL != "a.png" {
		t.Fatalf("imageUrl variant: hero=%+v err=%v", hero, err)
	}

	hero, err = n.Hero([]byte(`{"name": "Hulk", "image_url": "b.png"}`), "")
	if err != nil || hero.ImageURL != "b.png" {
		t.Fatalf("image_url variant: hero=%+v err=%v", hero, err)
	}
}

func TestHero_LenientNumericID(t *testing.T) {
	hero, err := newTestNormalizer().Hero([]byte(`{"name": "Hulk", "id": 1011}`), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hero.ID != "1011" {
		t.Errorf("numeric id must become its decimal string, got %q", hero.ID)
	}
}

func TestHero_LenientInvalidAbilityEmptiesArray(t *testing.T) {
	raw := `{"name": "Hulk", "abilities": [
		{"id": 1, "icon": "a.png", "type": "Normal", "isCollab": false, "transformation_id": "t1"},
		{"id": "bad"}
	]}`
	hero, err := newTestNormalizer().Hero([]byte(raw), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(hero.Abilities) != 0 {
		t.Errorf("one invalid ability must empty the array, got %d", len(hero.Abilities))
	}
}

func TestHeroes_StrictCollectionFails(t *testing.T) {
	raw := "[" + validHeroJSON + `, {"id": 42}]`
	_, err := newTestNormalizer().Heroes([]byte(raw))
	var validation *apperr.ValidationError
	if !errors.As(err, &validation) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if validation.Entity != "heroes" {
		t.Errorf("entity = %q", validation.Entity)
	}
}

func TestMapName(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
		ok   bool
	}{
		{"bare name", `{"name": "Yggsgard"}`, "Yggsgard", true},
		{"map envelope", `{"map": {"name": "Tokyo 2099"}}`, "Tokyo 2099", true},
		{"data envelope", `{"data": {"name": "Klyntar"}}`, "Klyntar", true},
		{"no name anywhere", `{"id": 101}`, "", false},
		{"not an object", `[1, 2]`, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := MapName([]byte(tt.raw))
			if got != tt.want || ok != tt.ok {
				t.Errorf("MapName() = (%q, %v), want (%q, %v)", got, ok, tt.want, tt.ok)
			}
		})
	}
}

const validPlayerMatchJSON = `{
	"match_uid": "m1",
	"map_id": 101,
	"map_thumbnail": "/maps/101.png",
	"duration": 900.5,
	"season": 2,
	"winner_side": 1,
	"mvp_uid": 0,
	"svp_uid": 0,
	"match_time_stamp": 1740000000,
	"play_mode_id": 1,
	"game_mode_id": 1,
	"score_info": null,
	"player_performance": {
		"player_uid": 42,
		"hero_id": 1018,
		"hero_name": "Doctor Strange",
		"hero_type": "/heroes/1018.png",
		"kills": 10,
		"deaths": 5,
		"assists": 3,
		"is_win": {"score": 1, "is_win": true},
		"disconnected": false,
		"camp": 1,
		"score_change": null,
		"level": null,
		"new_level": null,
		"new_score": null
	}
}`

func TestPlayerStats_LenientKeepsIdentityAndValidRows(t *testing.T) {
	raw := `{"player": {"name": "SomePlayer", "uid": 42, "level": 33},
		"match_history": [` + validPlayerMatchJSON + `, {"match_uid": 5}]}`

	stats, err := newTestNormalizer().PlayerStats([]byte(raw), "somequery")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.Player.Name != "SomePlayer" || stats.Player.UID != 42 {
		t.Errorf("player identity lost: %+v", stats.Player)
	}
	if stats.Player.Level != "33" {
		t.Errorf("numeric level must become a string, got %q", stats.Player.Level)
	}
	if len(stats.MatchHistory) != 1 || stats.MatchHistory[0].MatchUID != "m1" {
		t.Errorf("invalid rows must be dropped, valid kept: %+v", stats.MatchHistory)
	}
}

func TestPlayerStats_LevelKeyVariants(t *testing.T) {
	n := newTestNormalizer()
	for _, key := range []string{"level", "player_level", "account_level"} {
		raw := `{"player": {"name": "P", "` + key + `": 7}}`
		stats, err := n.PlayerStats([]byte(raw), "")
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", key, err)
		}
		if stats.Player.Level != "7" {
			t.Errorf("%s: level = %q, want 7", key, stats.Player.Level)
		}
	}
}

func TestPlayerStats_NameFallsBackToQuery(t *testing.T) {
	stats, err := newTestNormalizer().PlayerStats([]byte(`{"player": {"uid": 9}}`), "queried-name")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.Name != "queried-name" {
		t.Errorf("name = %q, want query fallback", stats.Name)
	}
}

func TestPlayerStats_NoIdentityIsNotFound(t *testing.T) {
	_, err := newTestNormalizer().PlayerStats([]byte(`{"player": {}}`), "q")
	if !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPlayerStats_SingleElementArrayUnwrapped(t *testing.T) {
	stats, err := newTestNormalizer().PlayerStats([]byte(`[{"player": {"name": "P"}}]`), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.Player.Name != "P" {
		t.Errorf("unwrap failed: %+v", stats)
	}
}

func TestUnwrap(t *testing.T) {
	if v := Unwrap([]any{"first", "second"}, FirstArrayElement); v != "first" {
		t.Errorf("FirstArrayElement = %v", v)
	}
	obj := map[string]any{"map": map[string]any{"name": "X"}}
	inner := Unwrap(obj, EnvelopeKey("map"), EnvelopeKey("data"))
	if m, ok := inner.(map[string]any); !ok || m["name"] != "X" {
		t.Errorf("EnvelopeKey = %v", inner)
	}
	// no strategy applies: value passes through untouched
	if v := Unwrap("plain", FirstArrayElement, EnvelopeKey("data")); v != "plain" {
		t.Errorf("pass-through = %v", v)
	}
}
