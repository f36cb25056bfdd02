package store

import (
	"gorm.io/datatypes"

	"github.com/metaseek/aggregator/internal/store/schema"
)

// DefaultSources returns the starter catalog: three scraping sources per
// content type (game, movie, anime). Only Steam ships with real selectors;
// the rest rely on the generic scraping fallback until richer per-site
// configuration is supplied.
func DefaultSources() []*schema.Source {
	return []*schema.Source{
		{
			Name:         "Steam",
			Type:         "game",
			URLBase:      "https://store.steampowered.com/search/?term={query}",
			SearchMethod: schema.SearchMethodScraping,
			Config: datatypes.JSON(`{
				"item_selector": "a",
				"item_class": "search_result_row",
				"default_image": "https://placehold.co/300x400/6366f1/ffffff?text=Steam"
			}`),
			Enabled: true,
		},
		{
			Name:         "Epic Games",
			Type:         "game",
			URLBase:      "https://www.epicgames.com/store/browse?q={query}",
			SearchMethod: schema.SearchMethodScraping,
			Config:       datatypes.JSON(`{"default_image": "https://placehold.co/300x400/8b5cf6/ffffff?text=Epic+Games"}`),
			Enabled:      true,
		},
		{
			Name:         "GOG",
			Type:         "game",
			URLBase:      "https://www.gog.com/games?query={query}",
			SearchMethod: schema.SearchMethodScraping,
			Config:       datatypes.JSON(`{"default_image": "https://placehold.co/300x400/ec4899/ffffff?text=GOG"}`),
			Enabled:      true,
		},
		{
			Name:         "IMDb",
			Type:         "movie",
			URLBase:      "https://www.imdb.com/find?q={query}&s=tt&ttype=ft",
			SearchMethod: schema.SearchMethodScraping,
			Config:       datatypes.JSON(`{"default_image": "https://placehold.co/300x400/f59e0b/ffffff?text=IMDb"}`),
			Enabled:      true,
		},
		{
			Name:         "Netflix",
			Type:         "movie",
			URLBase:      "https://www.netflix.com/search?q={query}",
			SearchMethod: schema.SearchMethodScraping,
			Config:       datatypes.JSON(`{"default_image": "https://placehold.co/300x400/dc2626/ffffff?text=Netflix"}`),
			Enabled:      true,
		},
		{
			Name:         "Prime Video",
			Type:         "movie",
			URLBase:      "https://www.primevideo.com/search?phrase={query}",
			SearchMethod: schema.SearchMethodScraping,
			Config:       datatypes.JSON(`{"default_image": "https://placehold.co/300x400/06b6d4/ffffff?text=Prime+Video"}`),
			Enabled:      true,
		},
		{
			Name:         "MyAnimeList",
			Type:         "anime",
			URLBase:      "https://myanimelist.net/anime.php?q={query}",
			SearchMethod: schema.SearchMethodScraping,
			Config:       datatypes.JSON(`{"default_image": "https://placehold.co/300x400/2563eb/ffffff?text=MyAnimeList"}`),
			Enabled:      true,
		},
		{
			Name:         "Crunchyroll",
			Type:         "anime",
			URLBase:      "https://www.crunchyroll.com/search?q={query}",
			SearchMethod: schema.SearchMethodScraping,
			Config:       datatypes.JSON(`{"default_image": "https://placehold.co/300x400/f97316/ffffff?text=Crunchyroll"}`),
			Enabled:      true,
		},
		{
			Name:         "AniList",
			Type:         "anime",
			URLBase:      "https://anilist.co/search/anime?search={query}",
			SearchMethod: schema.SearchMethodScraping,
			Config:       datatypes.JSON(`{"default_image": "https://placehold.co/300x400/8b5cf6/ffffff?text=AniList"}`),
			Enabled:      true,
		},
	}
}
