package rest

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/space-ranger/ship-registry/internal/api/middleware"
	"github.com/space-ranger/ship-registry/internal/api/shared/dto"
	"github.com/space-ranger/ship-registry/internal/api/shared/executor"
)

// Handler defines the interface for REST API handlers
type Handler interface {
	// CreateSeries creates a new series (requires authentication, owner only)
	// POST /api/v1/series
	CreateSeries(c *gin.Context)

	// ListSeries retrieves the series catalog
	// GET /api/v1/series
	ListSeries(c *gin.Context)

	// GetSeries retrieves a single series by id
	// GET /api/v1/series/:id
	GetSeries(c *gin.Context)

	// MintShip mints a ship for the authenticated account
	// POST /api/v1/ships/mint
	MintShip(c *gin.Context)

	// GetShip retrieves a single ship by id
	// GET /api/v1/ships/:id
	GetShip(c *gin.Context)

	// GetShipOwner resolves a ship's current owner from the token module
	// GET /api/v1/ships/:id/owner
	GetShipOwner(c *gin.Context)

	// GetAccountShips retrieves the ships held by an account
	// GET /api/v1/accounts/:account/ships
	GetAccountShips(c *gin.Context)

	// GetScore retrieves an account's score
	// GET /api/v1/accounts/:account/score
	GetScore(c *gin.Context)

	// AddScore adds to an account's score (open, no authentication required)
	// POST /api/v1/accounts/:account/score
	AddScore(c *gin.Context)

	// GetStats reports the registry-wide counters
	// GET /api/v1/stats
	GetStats(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	executor executor.Executor
}

// NewHandler creates a new REST API handler using the shared executor
func NewHandler(exec executor.Executor) Handler {
	return &handler{
		executor: exec,
	}
}

// caller returns the authenticated account, failing the request when the
// credentials carried no account subject
func (h *handler) caller(c *gin.Context) (string, bool) {
	subject := middleware.AuthSubject(c)
	if subject == "" {
		respondForbidden(c, "Credentials carry no account")
		return "", false
	}
	if err := dto.ValidateAccountParam(subject); err != nil {
		respondForbidden(c, "Credentials carry an invalid account")
		return "", false
	}
	return subject, true
}

// CreateSeries creates a new series (owner only)
func (h *handler) CreateSeries(c *gin.Context) {
	caller, ok := h.caller(c)
	if !ok {
		return
	}

	var req dto.CreateSeriesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	series, err := h.executor.CreateSeries(c.Request.Context(), caller, req)
	if err != nil {
		respondDomainError(c, err, "Failed to create series")
		return
	}

	c.JSON(http.StatusCreated, series)
}

// ListSeries retrieves the series catalog
func (h *handler) ListSeries(c *gin.Context) {
	response, err := h.executor.ListSeries(c.Request.Context())
	if err != nil {
		respondInternalError(c, err, "Failed to list series")
		return
	}

	c.JSON(http.StatusOK, response)
}

// GetSeries retrieves a single series by id
func (h *handler) GetSeries(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		respondBadRequest(c, "Invalid series id")
		return
	}

	series, err := h.executor.GetSeries(c.Request.Context(), uint32(id))
	if err != nil {
		respondInternalError(c, err, "Failed to get series")
		return
	}

	if series == nil {
		respondNotFound(c, "Series not found")
		return
	}

	c.JSON(http.StatusOK, series)
}

// MintShip mints a ship for the authenticated account
func (h *handler) MintShip(c *gin.Context) {
	caller, ok := h.caller(c)
	if !ok {
		return
	}

	var req dto.MintShipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	if err := req.Validate(); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	ship, err := h.executor.MintShip(c.Request.Context(), caller, req)
	if err != nil {
		respondDomainError(c, err, "Failed to mint ship")
		return
	}

	c.JSON(http.StatusCreated, ship)
}

// GetShip retrieves a single ship by id
func (h *handler) GetShip(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		respondBadRequest(c, "Invalid ship id")
		return
	}

	ship, err := h.executor.GetShip(c.Request.Context(), id)
	if err != nil {
		respondInternalError(c, err, "Failed to get ship")
		return
	}

	if ship == nil {
		respondNotFound(c, "Ship not found")
		return
	}

	c.JSON(http.StatusOK, ship)
}

// GetShipOwner resolves a ship's current owner from the token module
func (h *handler) GetShipOwner(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		respondBadRequest(c, "Invalid ship id")
		return
	}

	owner, err := h.executor.GetShipOwner(c.Request.Context(), id)
	if err != nil {
		respondInternalError(c, err, "Failed to resolve owner")
		return
	}

	if owner == nil {
		respondNotFound(c, "Ship not found")
		return
	}

	c.JSON(http.StatusOK, owner)
}

// GetAccountShips retrieves the ships held by an account
func (h *handler) GetAccountShips(c *gin.Context) {
	account := c.Param("account")
	if err := dto.ValidateAccountParam(account); err != nil {
		respondBadRequest(c, "Invalid account name")
		return
	}

	response, err := h.executor.GetAccountShips(c.Request.Context(), account)
	if err != nil {
		respondInternalError(c, err, "Failed to get ships")
		return
	}

	c.JSON(http.StatusOK, response)
}

// GetScore retrieves an account's score
func (h *handler) GetScore(c *gin.Context) {
	account := c.Param("account")
	if err := dto.ValidateAccountParam(account); err != nil {
		respondBadRequest(c, "Invalid account name")
		return
	}

	response, err := h.executor.GetScore(c.Request.Context(), account)
	if err != nil {
		respondInternalError(c, err, "Failed to get score")
		return
	}

	c.JSON(http.StatusOK, response)
}

// AddScore adds to an account's score (open, no authentication required)
func (h *handler) AddScore(c *gin.Context) {
	account := c.Param("account")
	if err := dto.ValidateAccountParam(account); err != nil {
		respondBadRequest(c, "Invalid account name")
		return
	}

	var req dto.AddScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	if err := req.Validate(); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	if err := h.executor.AddScore(c.Request.Context(), account, req.Amount); err != nil {
		respondDomainError(c, err, "Failed to add score")
		return
	}

	c.Status(http.StatusNoContent)
}

// GetStats reports the registry-wide counters
func (h *handler) GetStats(c *gin.Context) {
	response, err := h.executor.GetStats(c.Request.Context())
	if err != nil {
		respondInternalError(c, err, "Failed to get stats")
		return
	}

	c.JSON(http.StatusOK, response)
}

// HealthCheck returns the health status of the API
func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(200, gin.H{
		"status":  "ok",
		"service": "ship-registry-api",
	})
}
