package games

import "github.com/mcoot/gameportal/internal/model"

// Game describes a playable game in the portal catalog
type Game struct {
	Slug        model.GameSlug `json:"slug"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Tag         string         `json:"tag"`
}

var catalog = []Game{
	{
		Slug:        model.GameTapCounter,
		Name:        "Tap Counter",
		Description: "Tap as many times as you can in 10 seconds!",
		Tag:         "Quick Play",
	},
	{
		Slug:        model.GameMemoryClicker,
		Name:        "Memory Clicker",
		Description: "Remember and repeat the sequence!",
		Tag:         "Memory",
	},
	{
		Slug:        model.GameLuckyBox,
		Name:        "Lucky Box",
		Description: "Pick a box and discover your prize!",
		Tag:         "Luck",
	},
}

// Catalog returns every game in display order
func Catalog() []Game {
	out := make([]Game, len(catalog))
	copy(out, catalog)
	return out
}

// Lookup finds a game by slug
func Lookup(slug model.GameSlug) (Game, bool) {
	for _, g := range catalog {
		if g.Slug == slug {
			return g, true
		}
	}
	return Game{}, false
}

func nameOf(slug model.GameSlug) string {
	g, _ := Lookup(slug)
	return g.Name
}
