package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/metaseek/aggregator/internal/search"
	"github.com/metaseek/aggregator/internal/store"
	"github.com/metaseek/aggregator/internal/store/schema"
)

// memStore is an in-memory store.Store for handler tests
type memStore struct {
	sources []*schema.Source
}

func (m *memStore) CreateSource(_ context.Context, source *schema.Source) error {
	if source.ID == "" {
		source.ID = uuid.NewString()
	}
	if source.CreatedAt.IsZero() {
		source.CreatedAt = time.Now().UTC()
	}
	m.sources = append(m.sources, source)
	return nil
}

func (m *memStore) ListSources(_ context.Context) ([]*schema.Source, error) {
	return m.sources, nil
}

func (m *memStore) ListSourcesByType(_ context.Context, sourceType string) ([]*schema.Source, error) {
	var out []*schema.Source
	for _, s := range m.sources {
		if s.Type == sourceType && s.Enabled {
			out = append(out, s)
		}
	}
	return out, nil
}

func (m *memStore) ListSourcesByIDs(_ context.Context, ids []string) ([]*schema.Source, error) {
	var out []*schema.Source
	for _, s := range m.sources {
		if !s.Enabled {
			continue
		}
		for _, id := range ids {
			if s.ID == id {
				out = append(out, s)
				break
			}
		}
	}
	return out, nil
}

func (m *memStore) GetSource(_ context.Context, id string) (*schema.Source, error) {
	for _, s := range m.sources {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, nil
}

func (m *memStore) UpdateSource(ctx context.Context, id string, input store.UpdateSourceInput) (*schema.Source, error) {
	source, _ := m.GetSource(ctx, id)
	if source == nil {
		return nil, nil
	}
	if input.Name != nil {
		source.Name = *input.Name
	}
	if input.Type != nil {
		source.Type = *input.Type
	}
	if input.URLBase != nil {
		source.URLBase = *input.URLBase
	}
	if input.SearchMethod != nil {
		source.SearchMethod = *input.SearchMethod
	}
	if input.Config != nil {
		raw, err := json.Marshal(input.Config)
		if err != nil {
			return nil, err
		}
		source.Config = datatypes.JSON(raw)
	}
	if input.Enabled != nil {
		source.Enabled = *input.Enabled
	}
	return source, nil
}

func (m *memStore) DeleteSource(_ context.Context, id string) (bool, error) {
	for i, s := range m.sources {
		if s.ID == id {
			m.sources = append(m.sources[:i], m.sources[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (m *memStore) CountSources(_ context.Context) (int64, error) {
	return int64(len(m.sources)), nil
}

func (m *memStore) SeedSources(ctx context.Context, sources []*schema.Source) error {
	for _, s := range sources {
		if err := m.CreateSource(ctx, s); err != nil {
			return err
		}
	}
	return nil
}

func newTestRouter(t *testing.T, st store.Store) *gin.Engine {
	t.Helper()

	dispatcher := search.NewDispatcher(st, search.Options{PoolSize: 4, Timeout: 2 * time.Second})
	t.Cleanup(dispatcher.Close)

	router := gin.New()
	SetupRoutes(router, NewHandler(st, dispatcher))
	return router
}

func doJSON(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCreateSourceHandler(t *testing.T) {
	st := &memStore{}
	router := newTestRouter(t, st)

	w := doJSON(router, http.MethodPost, "/api/sources", gin.H{
		"name":          "Steam",
		"type":          "game",
		"url_base":      "https://store.steampowered.com/search/?term={query}",
		"search_method": "scraping",
		"config":        gin.H{"item_selector": "a"},
	})
	require.Equal(t, http.StatusOK, w.Code)

	var got schema.Source
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.NotEmpty(t, got.ID)
	assert.Equal(t, "Steam", got.Name)
	assert.Equal(t, schema.SearchMethodScraping, got.SearchMethod)
	assert.True(t, got.Enabled, "enabled defaults to true")
	assert.JSONEq(t, `{"item_selector": "a"}`, string(got.Config))
}

func TestCreateSourceHandlerValidation(t *testing.T) {
	router := newTestRouter(t, &memStore{})

	// name is required
	w := doJSON(router, http.MethodPost, "/api/sources", gin.H{
		"type":          "game",
		"url_base":      "https://example.com",
		"search_method": "api",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "bad_request")
}

func TestListSourcesHandler(t *testing.T) {
	st := &memStore{}
	router := newTestRouter(t, st)

	w := doJSON(router, http.MethodGet, "/api/sources", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String(), "empty catalog lists as an empty array")

	require.NoError(t, st.CreateSource(context.Background(), &schema.Source{
		Name: "Steam", Type: "game", Enabled: true, Config: datatypes.JSON("{}"),
	}))
	require.NoError(t, st.CreateSource(context.Background(), &schema.Source{
		Name: "GOG", Type: "game", Enabled: false, Config: datatypes.JSON("{}"),
	}))

	w = doJSON(router, http.MethodGet, "/api/sources", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var all []schema.Source
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &all))
	assert.Len(t, all, 2, "full listing includes disabled sources")

	w = doJSON(router, http.MethodGet, "/api/sources/by-type/game", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var games []schema.Source
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &games))
	require.Len(t, games, 1)
	assert.Equal(t, "Steam", games[0].Name)
}

func TestGetSourceHandler(t *testing.T) {
	st := &memStore{}
	router := newTestRouter(t, st)

	source := &schema.Source{Name: "AniList", Type: "anime", Enabled: true, Config: datatypes.JSON("{}")}
	require.NoError(t, st.CreateSource(context.Background(), source))

	w := doJSON(router, http.MethodGet, "/api/sources/"+source.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "AniList")

	w = doJSON(router, http.MethodGet, "/api/sources/"+uuid.NewString(), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Source not found")
}

func TestUpdateSourceHandler(t *testing.T) {
	st := &memStore{}
	router := newTestRouter(t, st)

	source := &schema.Source{Name: "Steam", Type: "game", Enabled: true, Config: datatypes.JSON("{}")}
	require.NoError(t, st.CreateSource(context.Background(), source))

	w := doJSON(router, http.MethodPut, "/api/sources/"+source.ID, gin.H{"enabled": false})
	require.Equal(t, http.StatusOK, w.Code)

	var got schema.Source
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.False(t, got.Enabled)
	assert.Equal(t, "Steam", got.Name, "omitted fields keep their values")

	w = doJSON(router, http.MethodPut, "/api/sources/"+uuid.NewString(), gin.H{"enabled": true})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteSourceHandler(t *testing.T) {
	st := &memStore{}
	router := newTestRouter(t, st)

	source := &schema.Source{Name: "Steam", Type: "game", Enabled: true, Config: datatypes.JSON("{}")}
	require.NoError(t, st.CreateSource(context.Background(), source))

	w := doJSON(router, http.MethodDelete, "/api/sources/"+source.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message": "Source deleted successfully"}`, w.Body.String())

	w = doJSON(router, http.MethodDelete, "/api/sources/"+source.ID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSearchHandler(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<html><body>
			<a class="hit">First Result</a>
			<a class="hit">Second Result</a>
		</body></html>`)
	}))
	defer upstream.Close()

	st := &memStore{}
	require.NoError(t, st.CreateSource(context.Background(), &schema.Source{
		Name:         "Steam",
		Type:         "game",
		URLBase:      upstream.URL + "/search?term={query}",
		SearchMethod: schema.SearchMethodScraping,
		Config:       datatypes.JSON(`{"item_selector": "a", "item_class": "hit", "default_image": "https://placehold.co/img"}`),
		Enabled:      true,
	}))

	router := newTestRouter(t, st)

	w := doJSON(router, http.MethodPost, "/api/search", gin.H{
		"query": "half life",
		"type":  "game",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var outcomes []search.Outcome
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &outcomes))
	require.Len(t, outcomes, 1)
	assert.Equal(t, "Steam", outcomes[0].SourceName)
	assert.Empty(t, outcomes[0].Error)
	require.Len(t, outcomes[0].Items, 2)
	assert.Equal(t, "First Result", outcomes[0].Items[0].Name)
	assert.Equal(t, "https://placehold.co/img", outcomes[0].Items[0].Image)
}

func TestSearchHandlerNoSources(t *testing.T) {
	router := newTestRouter(t, &memStore{})

	w := doJSON(router, http.MethodPost, "/api/search", gin.H{
		"query": "anything",
		"type":  "movie",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String())
}

func TestSearchHandlerValidation(t *testing.T) {
	router := newTestRouter(t, &memStore{})

	// query and type are both required
	w := doJSON(router, http.MethodPost, "/api/search", gin.H{"query": "half life"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(router, http.MethodPost, "/api/search", gin.H{"type": "game"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSeedHandler(t *testing.T) {
	st := &memStore{}
	router := newTestRouter(t, st)

	w := doJSON(router, http.MethodPost, "/api/seed", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message": "Database seeded successfully", "count": 9}`, w.Body.String())

	// Seeding is a no-op once the catalog is populated.
	w = doJSON(router, http.MethodPost, "/api/seed", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message": "Database already seeded"}`, w.Body.String())

	count, err := st.CountSources(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(9), count)
}

func TestRootAndHealth(t *testing.T) {
	router := newTestRouter(t, &memStore{})

	w := doJSON(router, http.MethodGet, "/api/", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message": "Meta Search API"}`, w.Body.String())

	w = doJSON(router, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status": "ok"}`, w.Body.String())
}
