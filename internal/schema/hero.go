package schema

import (
	"strconv"

	"rivals-tracker/internal/domain"
)

// ParseHero validates a decoded JSON value against the strict Hero
// shape. The returned record is complete iff the violation list is
// empty.
func ParseHero(value any) (domain.Hero, []Violation) {
	c := &collector{}
	o, ok := asObject(value, "", c)
	if !ok {
		return domain.Hero{}, c.violations
	}

	h := domain.Hero{
		ID:         o.str("id"),
		Name:       o.str("name"),
		RealName:   o.str("real_name"),
		ImageURL:   o.str("imageUrl"),
		Icon:       o.optStr("icon"),
		Team:       o.strArray("team"),
		Difficulty: o.str("difficulty"),
		Bio:        o.str("bio"),
		Lore:       o.str("lore"),
	}

	h.Role = domain.Role(o.str("role"))
	if o.hasString("role") && !h.Role.Valid() {
		c.add(o.key("role"), enumViolation(string(h.Role)))
	}
	h.AttackType = domain.AttackType(o.str("attack_type"))
	if o.hasString("attack_type") && !h.AttackType.Valid() {
		c.add(o.key("attack_type"), enumViolation(string(h.AttackType)))
	}

	for i, el := range o.array("transformations") {
		h.Transformations = append(h.Transformations, parseTransformation(el, indexPath(o.key("transformations"), i), c))
	}
	for i, el := range o.array("costumes") {
		h.Costumes = append(h.Costumes, parseCostume(el, indexPath(o.key("costumes"), i), c))
	}
	for i, el := range o.array("abilities") {
		h.Abilities = append(h.Abilities, parseAbility(el, indexPath(o.key("abilities"), i), c))
	}

	return h, c.violations
}

// ParseHeroes validates the heroes-collection payload, a bare JSON
// array of hero objects.
func ParseHeroes(value any) ([]domain.Hero, []Violation) {
	c := &collector{}
	arr, ok := value.([]any)
	if !ok {
		c.add("", "expected array")
		return nil, c.violations
	}
	heroes := make([]domain.Hero, 0, len(arr))
	for i, el := range arr {
		hero, violations := ParseHero(el)
		for _, v := range violations {
			path := strconv.Itoa(i)
			if v.Path != "" {
				path += "." + v.Path
			}
			c.add(path, v.Reason)
		}
		heroes = append(heroes, hero)
	}
	return heroes, c.violations
}

// ParseAbility validates a single ability element.
func ParseAbility(value any) (domain.Ability, []Violation) {
	c := &collector{}
	a := parseAbility(value, "", c)
	return a, c.violations
}

func parseAbility(value any, path string, c *collector) domain.Ability {
	o, ok := asObject(value, path, c)
	if !ok {
		return domain.Ability{}
	}
	a := domain.Ability{
		ID:               o.integer("id"),
		Icon:             o.str("icon"),
		Name:             o.optStr("name"),
		IsCollab:         o.boolean("isCollab"),
		Description:      o.optStr("description"),
		AdditionalFields: o.optStringMap("additional_fields"),
		TransformationID: o.str("transformation_id"),
	}
	a.Type = domain.AbilityType(o.str("type"))
	if o.hasString("type") && !a.Type.Valid() {
		c.add(o.key("type"), enumViolation(string(a.Type)))
	}
	return a
}

// ParseCostume validates a single costume element.
func ParseCostume(value any) (domain.Costume, []Violation) {
	c := &collector{}
	co := parseCostume(value, "", c)
	return co, c.violations
}

func parseCostume(value any, path string, c *collector) domain.Costume {
	o, ok := asObject(value, path, c)
	if !ok {
		return domain.Costume{}
	}
	co := domain.Costume{
		ID:          o.str("id"),
		Name:        o.str("name"),
		Icon:        o.nullableStr("icon"),
		Description: o.str("description"),
		Appearance:  o.str("appearance"),
	}
	co.Quality = domain.CostumeQuality(o.str("quality"))
	if o.hasString("quality") && !co.Quality.Valid() {
		c.add(o.key("quality"), enumViolation(string(co.Quality)))
	}
	return co
}

// ParseTransformation validates a single transformation element.
func ParseTransformation(value any) (domain.Transformation, []Violation) {
	c := &collector{}
	t := parseTransformation(value, "", c)
	return t, c.violations
}

func parseTransformation(value any, path string, c *collector) domain.Transformation {
	o, ok := asObject(value, path, c)
	if !ok {
		return domain.Transformation{}
	}
	t := domain.Transformation{
		ID:     o.str("id"),
		Name:   o.str("name"),
		Icon:   o.str("icon"),
		Health: o.nullableStr("health"),
	}
	if speed := o.nullableStr("movement_speed"); speed != nil {
		ms := domain.MovementSpeed(*speed)
		if !ms.Valid() {
			c.add(o.key("movement_speed"), enumViolation(*speed))
		} else {
			t.MovementSpeed = &ms
		}
	}
	return t
}
