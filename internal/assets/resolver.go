// Package assets resolves image and video references from upstream
// payloads into fully-qualified URLs. Candidates may be absent, null,
// relative paths or absolute URLs; each resource family has its own
// fixed base path.
package assets

import (
	"strconv"
	"strings"
	"sync"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/rs/zerolog"

	"rivals-tracker/internal/domain"
)

// Family is a category of asset that determines the base URL prefix
// applied to relative candidates.
type Family int

const (
	// FamilyHero joins bare relative paths under the rivals asset root.
	FamilyHero Family = iota
	// FamilyIcon is for candidates that carry their own leading slash
	// (hero-type icons, player icons, rank images, map thumbnails).
	FamilyIcon
	// FamilyMap is like FamilyHero but upgrades http:// candidates to
	// https:// to avoid mixed-content blocking.
	FamilyMap
	// FamilySite is for site-rooted paths (premium map images, videos).
	FamilySite
)

// The family -> base path mapping is a fixed table, never inferred.
var basePaths = map[Family]string{
	FamilyHero: "https://marvelrivalsapi.com/rivals/",
	FamilyIcon: "https://marvelrivalsapi.com/rivals",
	FamilyMap:  "https://marvelrivalsapi.com/rivals/",
	FamilySite: "https://marvelrivalsapi.com",
}

// Resolver materializes asset URLs. Unresolvable references are logged
// once per key; the dedupe set belongs to the resolver instance, so its
// lifecycle is the resolver's own rather than ambient process state.
type Resolver struct {
	logger  zerolog.Logger
	session string

	mu     sync.Mutex
	missed map[string]struct{}
}

func NewResolver(logger zerolog.Logger) *Resolver {
	return &Resolver{
		logger:  logger,
		session: gonanoid.Must(8),
		missed:  make(map[string]struct{}),
	}
}

// Resolve picks the first non-empty candidate and qualifies it against
// the family base path. All-empty candidate lists yield "", which the
// render layer treats as "no image available", never a request URL.
// Absolute candidates pass through verbatim, embedded query parameters
// included, except for the map-family scheme upgrade.
func (r *Resolver) Resolve(family Family, candidates ...string) string {
	var selected string
	for _, c := range candidates {
		if c != "" {
			selected = c
			break
		}
	}
	if selected == "" {
		return ""
	}
	if strings.HasPrefix(selected, "http://") {
		if family == FamilyMap || family == FamilySite {
			return "https://" + selected[len("http://"):]
		}
		return selected
	}
	if strings.HasPrefix(selected, "https://") {
		return selected
	}
	return basePaths[family] + selected
}

// HeroImage resolves a hero's display image from the priority chain:
// first non-null costume icon, the hero's own icon, the first
// transformation's icon, then the generic image-url field.
func (r *Resolver) HeroImage(h domain.Hero) string {
	var costumeIcon string
	for _, c := range h.Costumes {
		if c.Icon != nil {
			costumeIcon = *c.Icon
			break
		}
	}
	var transformationIcon string
	if len(h.Transformations) > 0 {
		transformationIcon = h.Transformations[0].Icon
	}
	u := r.Resolve(FamilyHero, costumeIcon, h.Icon, transformationIcon, h.ImageURL)
	if u == "" {
		r.warnOnce("hero:" + h.ID)
	}
	return u
}

// CostumeImage resolves the first costume icon only, without the rest
// of the hero chain.
func (r *Resolver) CostumeImage(h domain.Hero) string {
	for _, c := range h.Costumes {
		if c.Icon != nil {
			return r.Resolve(FamilyHero, *c.Icon)
		}
	}
	return ""
}

func (r *Resolver) AbilityIcon(a domain.Ability) string {
	return r.Resolve(FamilyHero, a.Icon)
}

// HeroTypeIcon resolves the hero_type icon paths found in match
// records; they carry a leading slash.
func (r *Resolver) HeroTypeIcon(path string) string {
	return r.Resolve(FamilyIcon, path)
}

func (r *Resolver) PlayerIcon(path string) string {
	return r.Resolve(FamilyIcon, path)
}

func (r *Resolver) RankIcon(path string) string {
	return r.Resolve(FamilyIcon, path)
}

func (r *Resolver) MapThumbnail(path string) string {
	return r.Resolve(FamilyIcon, path)
}

// MapImage resolves the map's primary image (first in the list).
func (r *Resolver) MapImage(m domain.GameMap) string {
	if len(m.Images) == 0 {
		r.warnOnce("map:" + strconv.FormatInt(m.ID, 10))
		return ""
	}
	return r.Resolve(FamilyMap, m.Images[0])
}

// MapPremiumImage resolves the premium variant, the third image; its
// path is site-rooted rather than under the rivals asset root.
func (r *Resolver) MapPremiumImage(m domain.GameMap) string {
	if len(m.Images) < 3 {
		return ""
	}
	return r.Resolve(FamilySite, m.Images[2])
}

// MapImages resolves every image in order.
func (r *Resolver) MapImages(m domain.GameMap) []string {
	out := make([]string, 0, len(m.Images))
	for _, img := range m.Images {
		out = append(out, r.Resolve(FamilyMap, img))
	}
	return out
}

// SubMapThumbnail resolves the optional sub-map thumbnail; the path
// carries a leading slash like the other icon assets.
func (r *Resolver) SubMapThumbnail(m domain.GameMap) string {
	if m.SubMapThumbnail == nil {
		return ""
	}
	return r.Resolve(FamilyIcon, *m.SubMapThumbnail)
}

// MapVideo resolves the optional video path. Site-rooted paths (with a
// leading slash) resolve against the site base, others against the
// rivals asset root.
func (r *Resolver) MapVideo(m domain.GameMap) string {
	if m.Video == nil || *m.Video == "" {
		return ""
	}
	v := *m.Video
	if strings.HasPrefix(v, "/") {
		return r.Resolve(FamilySite, v)
	}
	return r.Resolve(FamilyMap, v)
}

func (r *Resolver) warnOnce(key string) {
	r.mu.Lock()
	_, seen := r.missed[key]
	if !seen {
		r.missed[key] = struct{}{}
	}
	r.mu.Unlock()
	if seen {
		return
	}
	r.logger.Warn().
		Str("session", r.session).
		Str("key", key).
		Msg("no resolvable asset candidate")
}
