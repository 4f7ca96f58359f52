package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"golang-stock-briefing/internal/briefing/dto"
	"golang-stock-briefing/internal/briefing/repository"
	"golang-stock-briefing/internal/briefing/service"
	"golang-stock-briefing/internal/entity"
	"golang-stock-briefing/pkg/logger"
)

// BriefingHandler handles HTTP requests for briefing runs.
type BriefingHandler struct {
	briefingService service.BriefingService
	logger          *logger.Logger
}

// NewBriefingHandler creates a new BriefingHandler.
func NewBriefingHandler(briefingService service.BriefingService, logger *logger.Logger) *BriefingHandler {
	return &BriefingHandler{briefingService: briefingService, logger: logger}
}

// RegisterRoutes registers the briefing routes to the Echo group.
func (h *BriefingHandler) RegisterRoutes(g *echo.Group) {
	g.POST("", h.CreateBriefing)
	g.GET("", h.ListBriefings)
	g.GET("/:id", h.GetBriefing)
	g.POST("/:id/send", h.SendBriefing)
}

// CreateBriefing godoc
// @Summary Generate a briefing now
// @Description Run the full briefing pipeline synchronously and return the result
// @Tags briefings
// @Accept  json
// @Produce  json
// @Param   briefing  body    dto.CreateBriefingRequest   true    "Run overrides"
// @Success 201 {object} dto.Envelope
// @Failure 400 {object} dto.Envelope
// @Failure 500 {object} dto.Envelope
// @Router /briefings [post]
func (h *BriefingHandler) CreateBriefing(c echo.Context) error {
	var req dto.CreateBriefingRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.Fail("invalid_request", "Invalid request payload"))
	}

	run, err := h.briefingService.Create(c.Request().Context(), &req)
	if err != nil {
		var validationErr *service.ValidationError
		if errors.As(err, &validationErr) {
			return c.JSON(http.StatusBadRequest, dto.Fail("invalid_request", validationErr.Message))
		}
		h.logger.Error("Failed to create briefing", logger.ErrorField(err))
		return c.JSON(http.StatusInternalServerError, dto.Fail("internal_error", "Failed to create briefing"))
	}

	return c.JSON(http.StatusCreated, dto.OK(dto.FromRun(run)))
}

// ListBriefings godoc
// @Summary List stored briefing runs
// @Description List briefing run summaries, newest first, with filters and pagination
// @Tags briefings
// @Produce  json
// @Param   page        query   int     false   "Page number (default 1)"
// @Param   limit       query   int     false   "Page size (default 20, max 100)"
// @Param   symbol      query   string  false   "Filter by ticker symbol"
// @Param   status      query   string  false   "Filter by run status (completed|failed)"
// @Param   start_date  query   string  false   "Filter runs created on or after (RFC 3339 or YYYY-MM-DD)"
// @Param   end_date    query   string  false   "Filter runs created on or before (RFC 3339 or YYYY-MM-DD)"
// @Success 200 {object} dto.Envelope
// @Failure 400 {object} dto.Envelope
// @Failure 500 {object} dto.Envelope
// @Router /briefings [get]
func (h *BriefingHandler) ListBriefings(c echo.Context) error {
	filter, err := filterFromQuery(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, dto.Fail("invalid_request", err.Error()))
	}

	resp, err := h.briefingService.List(c.Request().Context(), filter)
	if err != nil {
		h.logger.Error("Failed to list briefings", logger.ErrorField(err))
		return c.JSON(http.StatusInternalServerError, dto.Fail("internal_error", "Failed to list briefings"))
	}

	return c.JSON(http.StatusOK, dto.OK(resp))
}

// GetBriefing godoc
// @Summary Get one briefing run
// @Description Get the full stored snapshot of one briefing run by id
// @Tags briefings
// @Produce  json
// @Param   id  path    string true    "Run id"
// @Success 200 {object} dto.Envelope
// @Failure 404 {object} dto.Envelope
// @Failure 500 {object} dto.Envelope
// @Router /briefings/{id} [get]
func (h *BriefingHandler) GetBriefing(c echo.Context) error {
	run, err := h.briefingService.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrRunNotFound) {
			return c.JSON(http.StatusNotFound, dto.Fail("not_found", "Briefing run not found"))
		}
		h.logger.Error("Failed to get briefing", logger.ErrorField(err))
		return c.JSON(http.StatusInternalServerError, dto.Fail("internal_error", "Failed to get briefing"))
	}

	return c.JSON(http.StatusOK, dto.OK(dto.FromRun(run)))
}

// SendBriefing godoc
// @Summary Re-send a stored briefing
// @Description Dispatch a stored briefing to the requested channels without re-running the pipeline
// @Tags briefings
// @Accept  json
// @Produce  json
// @Param   id    path    string                  true    "Run id"
// @Param   send  body    dto.SendBriefingRequest true    "Channels to deliver to"
// @Success 200 {object} dto.Envelope
// @Failure 400 {object} dto.Envelope
// @Failure 404 {object} dto.Envelope
// @Failure 500 {object} dto.Envelope
// @Router /briefings/{id}/send [post]
func (h *BriefingHandler) SendBriefing(c echo.Context) error {
	var req dto.SendBriefingRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.Fail("invalid_request", "Invalid request payload"))
	}

	report, err := h.briefingService.Resend(c.Request().Context(), c.Param("id"), &req)
	if err != nil {
		var validationErr *service.ValidationError
		switch {
		case errors.As(err, &validationErr):
			return c.JSON(http.StatusBadRequest, dto.Fail("invalid_request", validationErr.Message))
		case errors.Is(err, repository.ErrRunNotFound):
			return c.JSON(http.StatusNotFound, dto.Fail("not_found", "Briefing run not found"))
		}
		h.logger.Error("Failed to send briefing", logger.ErrorField(err))
		return c.JSON(http.StatusInternalServerError, dto.Fail("internal_error", "Failed to send briefing"))
	}

	return c.JSON(http.StatusOK, dto.OK(report))
}

func filterFromQuery(c echo.Context) (*dto.RunFilter, error) {
	filter := &dto.RunFilter{
		Symbol: c.QueryParam("symbol"),
	}

	if raw := c.QueryParam("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil {
			return nil, errors.New("page must be an integer")
		}
		filter.Page = page
	}
	if raw := c.QueryParam("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			return nil, errors.New("limit must be an integer")
		}
		filter.Limit = limit
	}
	if raw := c.QueryParam("status"); raw != "" {
		status := entity.RunStatus(raw)
		if status != entity.RunCompleted && status != entity.RunFailed {
			return nil, errors.New("status must be completed or failed")
		}
		filter.Status = status
	}
	if raw := c.QueryParam("start_date"); raw != "" {
		t, err := parseDateParam(raw)
		if err != nil {
			return nil, errors.New("start_date must be RFC 3339 or YYYY-MM-DD")
		}
		filter.StartDate = &t
	}
	if raw := c.QueryParam("end_date"); raw != "" {
		t, err := parseDateParam(raw)
		if err != nil {
			return nil, errors.New("end_date must be RFC 3339 or YYYY-MM-DD")
		}
		// A bare date means the whole day inclusive.
		if len(raw) == len("2006-01-02") {
			t = t.Add(24*time.Hour - time.Nanosecond)
		}
		filter.EndDate = &t
	}

	filter.Normalize()
	return filter, nil
}

func parseDateParam(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", raw)
}
