package assets

import (
	"testing"

	"github.com/rs/zerolog"

	"rivals-tracker/internal/domain"
)

func newTestResolver() *Resolver {
	return NewResolver(zerolog.Nop())
}

func TestResolve(t *testing.T) {
	r := newTestResolver()

	tests := []struct {
		name       string
		family     Family
		candidates []string
		want       string
	}{
		{"all empty", FamilyHero, []string{"", ""}, ""},
		{"no candidates", FamilyHero, nil, ""},
		{"first non-empty wins", FamilyHero, []string{"", "heroes/hulk.png", "heroes/other.png"},
			"https://marvelrivalsapi.com/rivals/heroes/hulk.png"},
		{"icon family keeps leading slash", FamilyIcon, []string{"/players/icon.png"},
			"https://marvelrivalsapi.com/rivals/players/icon.png"},
		{"site family", FamilySite, []string{"/maps/premium.png"},
			"https://marvelrivalsapi.com/maps/premium.png"},
		{"absolute https passes through", FamilyHero,
			[]string{"https://cdn.example.com/a.png?v=2&size=64"},
			"https://cdn.example.com/a.png?v=2&size=64"},
		{"absolute http untouched for hero family", FamilyHero,
			[]string{"http://cdn.example.com/a.png"},
			"http://cdn.example.com/a.png"},
		{"absolute http upgraded for map family", FamilyMap,
			[]string{"http://marvelrivalsapi.com/rivals/maps/a.png"},
			"https://marvelrivalsapi.com/rivals/maps/a.png"},
		{"absolute http upgraded for site family", FamilySite,
			[]string{"http://marvelrivalsapi.com/maps/a.png"},
			"https://marvelrivalsapi.com/maps/a.png"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Resolve(tt.family, tt.candidates...); got != tt.want {
				t.Errorf("Resolve() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestHeroImage_PriorityChain(t *testing.T) {
	r := newTestResolver()
	costumeIcon := "costumes/hulk-default.png"

	hero := domain.Hero{
		ID:       "1011",
		ImageURL: "heroes/hulk.png",
		Icon:     "icons/hulk.png",
		Costumes: []domain.Costume{
			{Icon: nil},
			{Icon: &costumeIcon},
		},
		Transformations: []domain.Transformation{{Icon: "transformations/hulk.png"}},
	}

	if got := r.HeroImage(hero); got != "https://marvelrivalsapi.com/rivals/costumes/hulk-default.png" {
		t.Errorf("costume icon should win, got %q", got)
	}

	hero.Costumes = nil
	if got := r.HeroImage(hero); got != "https://marvelrivalsapi.com/rivals/icons/hulk.png" {
		t.Errorf("hero icon should be next, got %q", got)
	}

	hero.Icon = ""
	if got := r.HeroImage(hero); got != "https://marvelrivalsapi.com/rivals/transformations/hulk.png" {
		t.Errorf("transformation icon should be next, got %q", got)
	}

	hero.Transformations = nil
	if got := r.HeroImage(hero); got != "https://marvelrivalsapi.com/rivals/heroes/hulk.png" {
		t.Errorf("image url is the last fallback, got %q", got)
	}

	hero.ImageURL = ""
	if got := r.HeroImage(hero); got != "" {
		t.Errorf("exhausted chain must yield empty, got %q", got)
	}
}

func TestMapImages(t *testing.T) {
	r := newTestResolver()
	m := domain.GameMap{
		ID:     101,
		Images: []string{"maps/a.png", "maps/b.png", "/rivals/maps/premium.png"},
	}

	if got := r.MapImage(m); got != "https://marvelrivalsapi.com/rivals/maps/a.png" {
		t.Errorf("MapImage = %q", got)
	}
	if got := r.MapPremiumImage(m); got != "https://marvelrivalsapi.com/rivals/maps/premium.png" {
		t.Errorf("MapPremiumImage = %q", got)
	}

	m.Images = m.Images[:2]
	if got := r.MapPremiumImage(m); got != "" {
		t.Errorf("fewer than three images must yield empty premium image, got %q", got)
	}

	m.Images = nil
	if got := r.MapImage(m); got != "" {
		t.Errorf("no images must yield empty, got %q", got)
	}
}

func TestMapVideo(t *testing.T) {
	r := newTestResolver()

	siteVideo := "/videos/map.mp4"
	m := domain.GameMap{Video: &siteVideo}
	if got := r.MapVideo(m); got != "https://marvelrivalsapi.com/videos/map.mp4" {
		t.Errorf("site-rooted video = %q", got)
	}

	relVideo := "videos/map.mp4"
	m.Video = &relVideo
	if got := r.MapVideo(m); got != "https://marvelrivalsapi.com/rivals/videos/map.mp4" {
		t.Errorf("relative video = %q", got)
	}

	m.Video = nil
	if got := r.MapVideo(m); got != "" {
		t.Errorf("nil video must yield empty, got %q", got)
	}
}
