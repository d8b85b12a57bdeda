package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"imobicrm/internal/cep"
	"imobicrm/internal/currency"
	"imobicrm/internal/media"
	"imobicrm/internal/models"
	"imobicrm/internal/report"
	"imobicrm/internal/store"
)

// Handler serves the REST surface over the persistence core.
type Handler struct {
	store    store.Store
	reports  *report.Generator
	ingestor *media.Ingestor
	cep      *cep.Client
}

// NewHandler wires the core components into a request handler.
func NewHandler(s store.Store, reports *report.Generator, ingestor *media.Ingestor, cepClient *cep.Client) *Handler {
	return &Handler{store: s, reports: reports, ingestor: ingestor, cep: cepClient}
}

// HealthCheck returns the service status.
// GET /health
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		respondBadRequest(c, "invalid id")
		return 0, false
	}
	return uint(id), true
}

// CreateOwner registers a new owner.
// POST /api/v1/owners
func (h *Handler) CreateOwner(c *gin.Context) {
	var req createOwnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	owner := models.Owner{
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		Creci:      req.Creci,
		Street:     req.Street,
		Number:     req.Number,
		Complement: req.Complement,
		District:   req.District,
		CityRegion: req.CityRegion,
		PostalCode: req.PostalCode,
	}
	if err := h.store.CreateOwner(c.Request.Context(), &owner); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, owner)
}

// ListOwners returns all owners ordered by name.
// GET /api/v1/owners
func (h *Handler) ListOwners(c *gin.Context) {
	owners, err := h.store.ListOwners(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, owners)
}

// GetOwner returns one owner.
// GET /api/v1/owners/:id
func (h *Handler) GetOwner(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	owner, err := h.store.GetOwner(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	if owner == nil {
		respondNotFound(c, "owner not found")
		return
	}
	c.JSON(http.StatusOK, owner)
}

// CreateProperty creates a listing. The price arrives as a BRL string;
// an unparseable value is a validation failure, never a silent zero.
// POST /api/v1/properties
func (h *Handler) CreateProperty(c *gin.Context) {
	var req createPropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	price, err := currency.Parse(req.Price)
	if err != nil {
		respondError(c, err)
		return
	}

	property := models.Property{
		OwnerID:     req.OwnerID,
		Title:       req.Title,
		Category:    req.Category,
		Price:       price,
		Description: req.Description,
		Rooms:       req.Rooms,
		Bathrooms:   req.Bathrooms,
		Parking:     req.Parking,
		Area:        req.Area,
		Street:      req.Street,
		Number:      req.Number,
		Complement:  req.Complement,
		District:    req.District,
		CityRegion:  req.CityRegion,
		PostalCode:  req.PostalCode,
	}
	if err := h.store.CreateProperty(c.Request.Context(), &property); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, property)
}

// ListProperties returns listings matching the query predicates.
// GET /api/v1/properties?category=&min_price=&max_price=&min_rooms=&district=&city_region=&code=&owner_id=
func (h *Handler) ListProperties(c *gin.Context) {
	filter := store.PropertyFilter{
		Category:   c.Query("category"),
		District:   c.Query("district"),
		CityRegion: c.Query("city_region"),
		Code:       c.Query("code"),
	}

	var err error
	if filter.MinPrice, err = currency.Parse(c.Query("min_price")); err != nil {
		respondError(c, err)
		return
	}
	if filter.MaxPrice, err = currency.Parse(c.Query("max_price")); err != nil {
		respondError(c, err)
		return
	}
	if v := c.Query("min_rooms"); v != "" {
		rooms, err := strconv.Atoi(v)
		if err != nil {
			respondBadRequest(c, "invalid min_rooms")
			return
		}
		filter.MinRooms = rooms
	}
	if v := c.Query("owner_id"); v != "" {
		ownerID, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			respondBadRequest(c, "invalid owner_id")
			return
		}
		filter.OwnerID = uint(ownerID)
	}

	rows, err := h.store.ListProperties(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// GetProperty returns one listing.
// GET /api/v1/properties/:id
func (h *Handler) GetProperty(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	property, err := h.store.GetProperty(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	if property == nil {
		respondNotFound(c, "property not found")
		return
	}
	c.JSON(http.StatusOK, property)
}

// DeleteProperty removes a listing and everything attached to it.
// DELETE /api/v1/properties/:id
func (h *Handler) DeleteProperty(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.store.DeleteProperty(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// UploadMedia ingests multipart files for a property. Files with
// unrecognized extensions are skipped, not persisted.
// POST /api/v1/properties/:id/media
func (h *Handler) UploadMedia(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		respondBadRequest(c, "invalid multipart form")
		return
	}

	result := uploadResult{Stored: []string{}, Skipped: []string{}}
	for _, file := range form.File["files"] {
		src, err := file.Open()
		if err != nil {
			respondError(c, err)
			return
		}
		m, err := h.ingestor.Save(c.Request.Context(), id, file.Filename, src)
		src.Close()
		if err != nil {
			respondError(c, err)
			return
		}
		if m == nil {
			result.Skipped = append(result.Skipped, file.Filename)
			continue
		}
		result.Stored = append(result.Stored, m.FilePath)
	}
	c.JSON(http.StatusCreated, result)
}

// ListMedia returns a property's media split into images and videos.
// GET /api/v1/properties/:id/media
func (h *Handler) ListMedia(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	images, videos, err := h.ingestor.Load(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, mediaResponse{Images: images, Videos: videos})
}

// CreateInterestedParty records a prospect against a property. An empty
// proposed price means "no proposal"; it is stored as null, not zero.
// POST /api/v1/properties/:id/interested
func (h *Handler) CreateInterestedParty(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req createInterestedPartyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	var proposed *float64
	if req.ProposedPrice != "" {
		v, err := currency.Parse(req.ProposedPrice)
		if err != nil {
			respondError(c, err)
			return
		}
		proposed = &v
	}

	party := models.InterestedParty{
		PropertyID:    id,
		Name:          req.Name,
		Email:         req.Email,
		Phone:         req.Phone,
		Message:       req.Message,
		Status:        req.Status,
		ProposedPrice: proposed,
	}
	if err := h.store.CreateInterestedParty(c.Request.Context(), &party); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, party)
}

// ListInterestedParties returns the prospects for a property, newest
// first.
// GET /api/v1/properties/:id/interested
func (h *Handler) ListInterestedParties(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	parties, err := h.store.ListInterestedParties(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, parties)
}

// AppendInteraction adds one ledger entry for a prospect.
// POST /api/v1/interested/:id/interactions
func (h *Handler) AppendInteraction(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req appendInteractionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	eventDate, err := time.Parse("2006-01-02", req.EventDate)
	if err != nil {
		respondBadRequest(c, "invalid event_date, expected yyyy-mm-dd")
		return
	}

	event := models.InteractionEvent{
		InterestedPartyID: id,
		EventDate:         eventDate,
		Kind:              req.Kind,
		Notes:             req.Notes,
	}
	if err := h.store.AppendInteraction(c.Request.Context(), &event); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, event)
}

// ListInteractions returns a prospect's ledger, newest event first.
// GET /api/v1/interested/:id/interactions
func (h *Handler) ListInteractions(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	events, err := h.store.ListInteractions(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, events)
}

// ReportSummary returns the formatted per-property report, optionally
// restricted to one owner.
// GET /api/v1/reports/summary?owner_id=
func (h *Handler) ReportSummary(c *gin.Context) {
	var ownerID *uint
	if v := c.Query("owner_id"); v != "" {
		id, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			respondBadRequest(c, "invalid owner_id")
			return
		}
		u := uint(id)
		ownerID = &u
	}

	rows, err := h.reports.Summary(c.Request.Context(), ownerID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, report.FormatRows(rows))
}

// LookupCEP proxies a postal-code lookup for the UI. The persistence
// core never calls this itself.
// GET /api/v1/cep/:code
func (h *Handler) LookupCEP(c *gin.Context) {
	address, err := h.cep.Lookup(c.Request.Context(), c.Param("code"))
	if err != nil {
		if errors.Is(err, cep.ErrInvalidCEP) {
			respondBadRequest(c, err.Error())
			return
		}
		respondError(c, err)
		return
	}
	if address == nil {
		respondNotFound(c, "postal code not found")
		return
	}
	c.JSON(http.StatusOK, address)
}
