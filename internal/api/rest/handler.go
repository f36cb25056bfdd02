package rest

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/metaseek/aggregator/internal/api/rest/dto"
	"github.com/metaseek/aggregator/internal/search"
	"github.com/metaseek/aggregator/internal/store"
	"github.com/metaseek/aggregator/internal/store/schema"
)

// Handler defines the interface for REST API handlers
type Handler interface {
	// CreateSource creates a new source
	// POST /api/sources
	CreateSource(c *gin.Context)

	// ListSources lists every source, enabled or not
	// GET /api/sources
	ListSources(c *gin.Context)

	// ListSourcesByType lists enabled sources of one content type
	// GET /api/sources/by-type/:type
	ListSourcesByType(c *gin.Context)

	// GetSource fetches one source by id
	// GET /api/sources/:id
	GetSource(c *gin.Context)

	// UpdateSource applies a partial update to a source
	// PUT /api/sources/:id
	UpdateSource(c *gin.Context)

	// DeleteSource removes a source
	// DELETE /api/sources/:id
	DeleteSource(c *gin.Context)

	// Search fans a query out to the matching sources
	// POST /api/search
	Search(c *gin.Context)

	// Seed populates the default catalog when it is empty
	// POST /api/seed
	Seed(c *gin.Context)

	// Root returns the API liveness message
	// GET /api/
	Root(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	store      store.Store
	dispatcher *search.Dispatcher
}

// NewHandler creates a new REST API handler
func NewHandler(st store.Store, dispatcher *search.Dispatcher) Handler {
	return &handler{
		store:      st,
		dispatcher: dispatcher,
	}
}

func (h *handler) CreateSource(c *gin.Context) {
	var req dto.CreateSourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}

	rawConfig := []byte("{}")
	if req.Config != nil {
		var err error
		rawConfig, err = json.Marshal(req.Config)
		if err != nil {
			respondBadRequest(c, "Invalid config", err.Error())
			return
		}
	}

	enabled := true
	if req.Enabled != nil {
		enabled = *req.Enabled
	}

	source := &schema.Source{
		Name:         req.Name,
		Type:         req.Type,
		URLBase:      req.URLBase,
		SearchMethod: schema.SearchMethod(req.SearchMethod),
		Config:       rawConfig,
		Enabled:      enabled,
	}

	if err := h.store.CreateSource(c.Request.Context(), source); err != nil {
		respondInternalError(c, err, "Failed to create source")
		return
	}

	c.JSON(http.StatusOK, source)
}

func (h *handler) ListSources(c *gin.Context) {
	sources, err := h.store.ListSources(c.Request.Context())
	if err != nil {
		respondInternalError(c, err, "Failed to list sources")
		return
	}
	if sources == nil {
		sources = []*schema.Source{}
	}

	c.JSON(http.StatusOK, sources)
}

func (h *handler) ListSourcesByType(c *gin.Context) {
	sources, err := h.store.ListSourcesByType(c.Request.Context(), c.Param("type"))
	if err != nil {
		respondInternalError(c, err, "Failed to list sources")
		return
	}
	if sources == nil {
		sources = []*schema.Source{}
	}

	c.JSON(http.StatusOK, sources)
}

func (h *handler) GetSource(c *gin.Context) {
	source, err := h.store.GetSource(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondInternalError(c, err, "Failed to get source")
		return
	}
	if source == nil {
		respondNotFound(c, "Source not found")
		return
	}

	c.JSON(http.StatusOK, source)
}

func (h *handler) UpdateSource(c *gin.Context) {
	var req dto.UpdateSourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}

	input := store.UpdateSourceInput{
		Name:    req.Name,
		Type:    req.Type,
		URLBase: req.URLBase,
		Config:  req.Config,
		Enabled: req.Enabled,
	}
	if req.SearchMethod != nil {
		method := schema.SearchMethod(*req.SearchMethod)
		input.SearchMethod = &method
	}

	source, err := h.store.UpdateSource(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		respondInternalError(c, err, "Failed to update source")
		return
	}
	if source == nil {
		respondNotFound(c, "Source not found")
		return
	}

	c.JSON(http.StatusOK, source)
}

func (h *handler) DeleteSource(c *gin.Context) {
	deleted, err := h.store.DeleteSource(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondInternalError(c, err, "Failed to delete source")
		return
	}
	if !deleted {
		respondNotFound(c, "Source not found")
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Source deleted successfully"})
}

func (h *handler) Search(c *gin.Context) {
	var req dto.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}

	outcomes, err := h.dispatcher.Search(c.Request.Context(), req.Query, req.Type, req.SourceIDs)
	if err != nil {
		respondInternalError(c, err, "Failed to resolve sources")
		return
	}

	c.JSON(http.StatusOK, outcomes)
}

func (h *handler) Seed(c *gin.Context) {
	ctx := c.Request.Context()

	count, err := h.store.CountSources(ctx)
	if err != nil {
		respondInternalError(c, err, "Failed to count sources")
		return
	}
	if count > 0 {
		c.JSON(http.StatusOK, dto.SeedResponse{Message: "Database already seeded"})
		return
	}

	sources := store.DefaultSources()
	if err := h.store.SeedSources(ctx, sources); err != nil {
		respondInternalError(c, err, "Failed to seed sources")
		return
	}

	c.JSON(http.StatusOK, dto.SeedResponse{
		Message: "Database seeded successfully",
		Count:   len(sources),
	})
}

func (h *handler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Meta Search API"})
}

func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
