// Package normalize bridges the gap between the shapes the upstream
// API actually returns and the strict shapes in internal/schema.
// Single-entity endpoints get a strict-then-lenient two-tier strategy;
// collection endpoints are validated strictly only, where one bad
// element fails the whole fetch.
package normalize

import (
	"encoding/json"
	"strconv"

	"github.com/rs/zerolog"

	"rivals-tracker/internal/apperr"
	"rivals-tracker/internal/domain"
	"rivals-tracker/internal/schema"
)

// Policy controls the lenient fallback path. Substituted defaults can
// either be silent or surfaced as log warnings; upstream data quality
// issues are masked either way, so the choice is configurable rather
// than hardcoded.
type Policy struct {
	DefaultRole       domain.Role
	DefaultAttackType domain.AttackType
	WarnOnDefault     bool
}

func DefaultPolicy() Policy {
	return Policy{
		DefaultRole:       domain.RoleDuelist,
		DefaultAttackType: domain.AttackProjectile,
	}
}

type Normalizer struct {
	policy Policy
	logger zerolog.Logger
}

func New(policy Policy, logger zerolog.Logger) *Normalizer {
	if !policy.DefaultRole.Valid() {
		policy.DefaultRole = domain.RoleDuelist
	}
	if !policy.DefaultAttackType.Valid() {
		policy.DefaultAttackType = domain.AttackProjectile
	}
	return &Normalizer{policy: policy, logger: logger}
}

func decode(raw []byte) (any, error) {
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, apperr.Malformed("response is not valid JSON")
	}
	return v, nil
}

// Hero normalizes a hero-by-name payload. Strict validation first; on
// failure a field-by-field best-effort extraction produces a record
// with documented defaults. fallbackName is the caller's query string
// and stands in for a missing name field so a hero looked up by name
// still yields a record. With no usable name the result is ErrNotFound.
func (n *Normalizer) Hero(raw []byte, fallbackName string) (*domain.Hero, error) {
	v, err := decode(raw)
	if err != nil {
		return nil, err
	}
	v = Unwrap(v, FirstArrayElement)
	if v == nil {
		return nil, apperr.ErrNotFound
	}

	if hero, violations := schema.ParseHero(v); len(violations) == 0 {
		return &hero, nil
	}

	hero := n.lenientHero(v, fallbackName)
	if hero == nil {
		return nil, apperr.ErrNotFound
	}
	return hero, nil
}

// Heroes normalizes the hero-collection payload, strictly: partial
// roster rendering was judged not worth per-element fallback.
func (n *Normalizer) Heroes(raw []byte) ([]domain.Hero, error) {
	v, err := decode(raw)
	if err != nil {
		return nil, err
	}
	heroes, violations := schema.ParseHeroes(v)
	if len(violations) > 0 {
		return nil, apperr.Validation("heroes", violations)
	}
	return heroes, nil
}

// Maps normalizes the maps-collection payload, strictly.
func (n *Normalizer) Maps(raw []byte) ([]domain.GameMap, error) {
	v, err := decode(raw)
	if err != nil {
		return nil, err
	}
	maps, violations := schema.ParseMaps(v)
	if len(violations) > 0 {
		return nil, apperr.Validation("maps", violations)
	}
	return maps, nil
}

// MapByID normalizes a single-map payload, which may arrive bare or
// wrapped under a "map" or "data" envelope.
func (n *Normalizer) MapByID(raw []byte) (*domain.GameMap, error) {
	v, err := decode(raw)
	if err != nil {
		return nil, err
	}
	v = Unwrap(v, EnvelopeKey("map"), EnvelopeKey("data"))
	m, violations := schema.ParseGameMap(v)
	if len(violations) > 0 {
		return nil, apperr.Validation("map", violations)
	}
	return &m, nil
}

// MapName extracts just the display name from a map payload, trying
// the bare field and the known envelopes in order. Used for the
// id-to-name lookups where a full record is not needed.
func MapName(raw []byte) (string, bool) {
	v, err := decode(raw)
	if err != nil {
		return "", false
	}
	obj, ok := v.(map[string]any)
	if !ok {
		return "", false
	}
	if name, ok := obj["name"].(string); ok {
		return name, true
	}
	for _, key := range []string{"map", "data"} {
		if inner, ok := obj[key].(map[string]any); ok {
			if name, ok := inner["name"].(string); ok {
				return name, true
			}
		}
	}
	return "", false
}

// MatchHistory normalizes the standalone v2 match-history payload,
// strictly.
func (n *Normalizer) MatchHistory(raw []byte) (*domain.MatchHistory, error) {
	v, err := decode(raw)
	if err != nil {
		return nil, err
	}
	mh, violations := schema.ParseMatchHistory(v)
	if len(violations) > 0 {
		return nil, apperr.Validation("match history", violations)
	}
	return &mh, nil
}

// PlayerStats normalizes the aggregate player payload. The entity may
// arrive bare or as a single-element array. On strict failure the
// lenient path keeps the player identity block and every embedded
// match row that validates on its own.
func (n *Normalizer) PlayerStats(raw []byte, query string) (*domain.PlayerStats, error) {
	v, err := decode(raw)
	if err != nil {
		return nil, err
	}
	v = Unwrap(v, FirstArrayElement)
	if v == nil {
		return nil, apperr.ErrNotFound
	}

	if stats, violations := schema.ParsePlayerStats(v); len(violations) == 0 {
		return &stats, nil
	}

	stats := n.lenientPlayerStats(v, query)
	if stats == nil {
		return nil, apperr.ErrNotFound
	}
	return stats, nil
}

func (n *Normalizer) lenientHero(value any, fallbackName string) *domain.Hero {
	obj, ok := value.(map[string]any)
	if !ok {
		return nil
	}
	base := obj
	if inner, ok := obj["data"].(map[string]any); ok {
		base = inner
	}

	name := strField(base, "name")
	if name == "" {
		name = fallbackName
	}
	if name == "" {
		return nil
	}

	hero := &domain.Hero{
		Name:       name,
		RealName:   name,
		Difficulty: strField(base, "difficulty"),
		Bio:        strField(base, "bio"),
		Lore:       strField(base, "lore"),
		Icon:       strField(base, "icon"),
	}
	if realName := strField(base, "real_name"); realName != "" {
		hero.RealName = realName
	}

	hero.Role = domain.Role(strField(base, "role"))
	if !hero.Role.Valid() {
		n.warnDefault(name, "role", strField(base, "role"), string(n.policy.DefaultRole))
		hero.Role = n.policy.DefaultRole
	}
	hero.AttackType = domain.AttackType(strField(base, "attack_type"))
	if !hero.AttackType.Valid() {
		n.warnDefault(name, "attack_type", strField(base, "attack_type"), string(n.policy.DefaultAttackType))
		hero.AttackType = n.policy.DefaultAttackType
	}

	hero.ImageURL = strField(base, "imageUrl")
	if hero.ImageURL == "" {
		hero.ImageURL = strField(base, "image_url")
	}

	hero.Team = stringElements(base["team"])
	hero.Abilities = elementsOf(base["abilities"], schema.ParseAbility)
	hero.Costumes = elementsOf(base["costumes"], schema.ParseCostume)
	hero.Transformations = elementsOf(base["transformations"], schema.ParseTransformation)

	hero.ID = scalarString(base["id"])
	if hero.ID == "" {
		hero.ID = name
	}

	return hero
}

func (n *Normalizer) lenientPlayerStats(value any, query string) *domain.PlayerStats {
	obj, ok := value.(map[string]any)
	if !ok {
		return nil
	}
	player, ok := obj["player"].(map[string]any)
	if !ok {
		return nil
	}

	summary := domain.PlayerSummary{
		Name: strField(player, "name"),
		UID:  intField(player, "uid"),
	}
	if icon, ok := player["icon"].(map[string]any); ok {
		summary.Icon.PlayerIcon = strField(icon, "player_icon")
		summary.Icon.PlayerIconID = strField(icon, "player_icon_id")
	}
	if rank, ok := player["rank"].(map[string]any); ok {
		summary.Rank.Rank = strField(rank, "rank")
		summary.Rank.Image = strField(rank, "image")
		summary.Rank.Color = strField(rank, "color")
	}
	for _, key := range []string{"level", "player_level", "account_level"} {
		if lvl := scalarString(player[key]); lvl != "" {
			summary.Level = lvl
			break
		}
	}

	if summary.Name == "" && summary.UID == 0 && summary.Level == "" &&
		summary.Icon.PlayerIcon == "" && summary.Rank.Image == "" {
		return nil
	}

	stats := &domain.PlayerStats{
		UID:          intField(obj, "uid"),
		Name:         strField(obj, "name"),
		Player:       summary,
		MatchHistory: elementsKept(obj["match_history"], schema.ParsePlayerMatch),
	}
	if stats.Name == "" {
		stats.Name = query
	}
	if up, ok := obj["updates"].(map[string]any); ok {
		stats.Updates.InfoUpdateTime = strField(up, "info_update_time")
	}
	return stats
}

func (n *Normalizer) warnDefault(entity, field, got, substituted string) {
	if !n.policy.WarnOnDefault {
		return
	}
	n.logger.Warn().
		Str("entity", entity).
		Str("field", field).
		Str("got", got).
		Str("substituted", substituted).
		Msg("lenient normalization substituted a default")
}

func strField(obj map[string]any, key string) string {
	s, _ := obj[key].(string)
	return s
}

func intField(obj map[string]any, key string) int64 {
	f, _ := obj[key].(float64)
	return int64(f)
}

// scalarString renders a scalar id-like value as a string, mirroring
// how a missing string id is derived from a numeric one.
func scalarString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	}
	return ""
}

// stringElements keeps only the string members of an array value.
func stringElements(v any) []string {
	arr, ok := v.([]any)
	if !ok {
		return []string{}
	}
	out := make([]string, 0, len(arr))
	for _, el := range arr {
		if s, ok := el.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// elementsOf validates the whole array; any invalid element empties
// the sequence. A partially-described hero beats no hero, and these
// arrays are cosmetic enough that all-or-nothing per array is fine.
func elementsOf[T any](v any, parse func(any) (T, []schema.Violation)) []T {
	arr, ok := v.([]any)
	if !ok {
		return []T{}
	}
	out := make([]T, 0, len(arr))
	for _, el := range arr {
		parsed, violations := parse(el)
		if len(violations) > 0 {
			return []T{}
		}
		out = append(out, parsed)
	}
	return out
}

// elementsKept validates each element independently and drops the
// invalid ones.
func elementsKept[T any](v any, parse func(any) (T, []schema.Violation)) []T {
	arr, ok := v.([]any)
	if !ok {
		return []T{}
	}
	out := make([]T, 0, len(arr))
	for _, el := range arr {
		parsed, violations := parse(el)
		if len(violations) > 0 {
			continue
		}
		out = append(out, parsed)
	}
	return out
}
