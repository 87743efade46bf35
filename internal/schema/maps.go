package schema

import (
	"rivals-tracker/internal/domain"
)

// ParseGameMap validates a decoded JSON value against the map shape.
func ParseGameMap(value any) (domain.GameMap, []Violation) {
	c := &collector{}
	m := parseGameMap(value, "", c)
	return m, c.violations
}

func parseGameMap(value any, path string, c *collector) domain.GameMap {
	o, ok := asObject(value, path, c)
	if !ok {
		return domain.GameMap{}
	}
	return domain.GameMap{
		ID:              o.integer("id"),
		Name:            o.str("name"),
		FullName:        o.str("full_name"),
		Location:        o.str("location"),
		Description:     o.str("description"),
		GameMode:        o.str("game_mode"),
		IsCompetitive:   o.boolean("is_competitive"),
		SubMapID:        o.integer("sub_map_id"),
		SubMapName:      o.nullableStr("sub_map_name"),
		SubMapThumbnail: o.nullableStr("sub_map_thumbnail"),
		Images:          o.strArray("images"),
		Video:           o.nullableStr("video"),
	}
}

// ParseMaps validates the maps-collection payload: an envelope object
// holding the full map list under "maps".
func ParseMaps(value any) ([]domain.GameMap, []Violation) {
	c := &collector{}
	o, ok := asObject(value, "", c)
	if !ok {
		return nil, c.violations
	}
	arr := o.array("maps")
	maps := make([]domain.GameMap, 0, len(arr))
	for i, el := range arr {
		maps = append(maps, parseGameMap(el, indexPath("maps", i), c))
	}
	return maps, c.violations
}
