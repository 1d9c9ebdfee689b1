package rest

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/artblock/gallery-reconciler/internal/api/middleware"
	"github.com/artblock/gallery-reconciler/internal/api/rest/dto"
	"github.com/artblock/gallery-reconciler/internal/domain"
	"github.com/artblock/gallery-reconciler/internal/reconcile"
	"github.com/artblock/gallery-reconciler/internal/store"
)

const (
	defaultClaimHistoryLimit = 20
	maxClaimHistoryLimit     = 100
	defaultAnomalyLimit      = 50
)

// Handler defines the interface for REST API handlers
//
//go:generate mockgen -source=handler.go -destination=../../mocks/api_handler.go -package=mocks -mock_names=Handler=MockAPIHandler
type Handler interface {
	// RegisterGallery creates a gallery for the authenticated curator
	// POST /api/v1/galleries
	RegisterGallery(c *gin.Context)

	// ListGalleries lists the authenticated curator's galleries
	// GET /api/v1/galleries
	ListGalleries(c *gin.Context)

	// GetGallery retrieves one gallery
	// GET /api/v1/galleries/:id?live=true
	GetGallery(c *gin.Context)

	// ClaimRevenue claims a gallery's pending revenue
	// POST /api/v1/galleries/:id/claim
	ClaimRevenue(c *gin.Context)

	// GetClaimHistory lists a gallery's past claims
	// GET /api/v1/galleries/:id/claims?limit=<limit>&offset=<offset>
	GetClaimHistory(c *gin.Context)

	// UpdateGalleryStats updates a gallery's display counters
	// PATCH /api/v1/galleries/:id/stats
	UpdateGalleryStats(c *gin.Context)

	// PreviewSaleSplit computes the revenue division of a hypothetical sale
	// GET /api/v1/sale-split?price=<minor units>
	PreviewSaleSplit(c *gin.Context)

	// SetGalleryStatus transitions a gallery's lifecycle status (operator)
	// PATCH /api/v1/galleries/:id/status
	SetGalleryStatus(c *gin.Context)

	// ListAnomalies lists recorded reconciliation anomalies (operator)
	// GET /api/v1/anomalies?unresolved=true&limit=<limit>
	ListAnomalies(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	service reconcile.Service
}

// NewHandler creates a new REST API handler
func NewHandler(service reconcile.Service) Handler {
	return &handler{service: service}
}

// curatorID resolves the authenticated wallet to a curator, creating the
// mirror row on first sight. Returns false after writing the error response.
func (h *handler) curatorID(c *gin.Context, displayName string) (string, bool) {
	wallet := middleware.WalletAddress(c)
	if wallet == "" {
		respondBadRequest(c, "Curator identity missing from request")
		return "", false
	}

	curator, err := h.service.EnsureCurator(c.Request.Context(), wallet, displayName)
	if err != nil {
		respondDomainError(c, err)
		return "", false
	}

	return curator.ID, true
}

// RegisterGallery creates a gallery for the authenticated curator
func (h *handler) RegisterGallery(c *gin.Context) {
	var req dto.RegisterGalleryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	curatorID, ok := h.curatorID(c, req.CuratorName)
	if !ok {
		return
	}

	gallery, err := h.service.RegisterGallery(c.Request.Context(), curatorID, req.Name, req.Description)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.FromGallery(gallery))
}

// ListGalleries lists the authenticated curator's galleries
func (h *handler) ListGalleries(c *gin.Context) {
	curatorID, ok := h.curatorID(c, "")
	if !ok {
		return
	}

	galleries, err := h.service.ListCuratorGalleries(c.Request.Context(), curatorID)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	responses := make([]dto.GalleryResponse, 0, len(galleries))
	for i := range galleries {
		responses = append(responses, dto.FromGallery(&galleries[i]))
	}

	c.JSON(http.StatusOK, gin.H{"galleries": responses})
}

// GetGallery retrieves one gallery, optionally with live ledger figures
func (h *handler) GetGallery(c *gin.Context) {
	galleryID := c.Param("id")
	if galleryID == "" {
		respondBadRequest(c, "Gallery ID is required")
		return
	}

	live := c.Query("live") == "true"

	view, err := h.service.GetGalleryView(c.Request.Context(), galleryID, live)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromGalleryView(view))
}

// ClaimRevenue claims a gallery's pending revenue
func (h *handler) ClaimRevenue(c *gin.Context) {
	galleryID := c.Param("id")
	if galleryID == "" {
		respondBadRequest(c, "Gallery ID is required")
		return
	}

	curatorID, ok := h.curatorID(c, "")
	if !ok {
		return
	}

	receipt, err := h.service.ClaimRevenue(c.Request.Context(), galleryID, curatorID)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ClaimResponse{TxHash: receipt.TxHash})
}

// GetClaimHistory lists a gallery's past claims, newest first
func (h *handler) GetClaimHistory(c *gin.Context) {
	galleryID := c.Param("id")
	if galleryID == "" {
		respondBadRequest(c, "Gallery ID is required")
		return
	}

	curatorID, ok := h.curatorID(c, "")
	if !ok {
		return
	}

	limit, err := parseBoundedInt(c.DefaultQuery("limit", ""), defaultClaimHistoryLimit, maxClaimHistoryLimit)
	if err != nil {
		respondValidationError(c, "limit must be a positive integer")
		return
	}
	offset, err := parseBoundedInt(c.DefaultQuery("offset", ""), 0, -1)
	if err != nil {
		respondValidationError(c, "offset must be a non-negative integer")
		return
	}

	entries, err := h.service.GetClaimHistory(c.Request.Context(), galleryID, curatorID, limit, offset)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"claims": dto.FromClaimHistory(entries)})
}

// UpdateGalleryStats updates a gallery's display counters
func (h *handler) UpdateGalleryStats(c *gin.Context) {
	galleryID := c.Param("id")
	if galleryID == "" {
		respondBadRequest(c, "Gallery ID is required")
		return
	}

	var req dto.UpdateStatsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	curatorID, ok := h.curatorID(c, "")
	if !ok {
		return
	}

	err := h.service.UpdateGalleryStats(c.Request.Context(), galleryID, curatorID, store.GalleryStats{
		ArtworkCount: req.ArtworkCount,
		ArtistCount:  req.ArtistCount,
		VisitorCount: req.VisitorCount,
	})
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// PreviewSaleSplit computes the revenue division of a hypothetical sale
func (h *handler) PreviewSaleSplit(c *gin.Context) {
	price := c.Query("price")
	if price == "" {
		respondBadRequest(c, "price query parameter is required")
		return
	}

	split, err := h.service.PreviewSaleSplit(c.Request.Context(), price)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, dto.SaleSplitResponse{
		Price:    price,
		Artist:   split.Artist.String(),
		Gallery:  split.Gallery.String(),
		Platform: split.Platform.String(),
	})
}

// SetGalleryStatus transitions a gallery's lifecycle status
func (h *handler) SetGalleryStatus(c *gin.Context) {
	galleryID := c.Param("id")
	if galleryID == "" {
		respondBadRequest(c, "Gallery ID is required")
		return
	}

	var req dto.SetStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	status := domain.GalleryStatus(req.Status)
	if !domain.IsValidGalleryStatus(status) {
		respondValidationError(c, "status must be one of: pending, active, suspended")
		return
	}

	if err := h.service.SetGalleryStatus(c.Request.Context(), galleryID, status); err != nil {
		respondDomainError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ListAnomalies lists recorded reconciliation anomalies
func (h *handler) ListAnomalies(c *gin.Context) {
	unresolvedOnly := c.Query("unresolved") == "true"

	limit, err := parseBoundedInt(c.DefaultQuery("limit", ""), defaultAnomalyLimit, maxClaimHistoryLimit)
	if err != nil {
		respondValidationError(c, "limit must be a positive integer")
		return
	}

	anomalies, err := h.service.ListAnomalies(c.Request.Context(), unresolvedOnly, limit)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"anomalies": dto.FromAnomalies(anomalies)})
}

// HealthCheck returns the health status of the API
func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// parseBoundedInt parses an optional positive integer query value with a
// default and an optional cap (max < 0 means uncapped)
func parseBoundedInt(raw string, def, max int) (int, error) {
	if raw == "" {
		return def, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		return 0, strconv.ErrSyntax
	}
	if max >= 0 && value > max {
		value = max
	}

	return value, nil
}
