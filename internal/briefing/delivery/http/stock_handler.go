package http

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"golang-stock-briefing/internal/briefing/dto"
	"golang-stock-briefing/internal/briefing/service"
	"golang-stock-briefing/pkg/logger"
)

// StockHandler handles HTTP requests for screener and news lookups.
type StockHandler struct {
	briefingService service.BriefingService
	logger          *logger.Logger
}

// NewStockHandler creates a new StockHandler.
func NewStockHandler(briefingService service.BriefingService, logger *logger.Logger) *StockHandler {
	return &StockHandler{briefingService: briefingService, logger: logger}
}

// RegisterRoutes registers the stock routes to the Echo group.
func (h *StockHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/trending", h.GetTrending)
	g.GET("/:symbol/news", h.GetNews)
}

// GetTrending godoc
// @Summary List current trending candidates
// @Description Fetch the ranked screener candidates per category without running the pipeline
// @Tags stocks
// @Produce  json
// @Param   categories  query   string  false   "Comma-separated screener categories"
// @Param   count       query   int     false   "Candidates per category"
// @Success 200 {object} dto.Envelope
// @Failure 400 {object} dto.Envelope
// @Failure 500 {object} dto.Envelope
// @Router /stocks/trending [get]
func (h *StockHandler) GetTrending(c echo.Context) error {
	var categories []string
	if raw := c.QueryParam("categories"); raw != "" {
		for _, name := range strings.Split(raw, ",") {
			if name = strings.TrimSpace(name); name != "" {
				categories = append(categories, name)
			}
		}
	}
	count := 0
	if raw := c.QueryParam("count"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return c.JSON(http.StatusBadRequest, dto.Fail("invalid_request", "count must be an integer"))
		}
		count = parsed
	}

	result, err := h.briefingService.Trending(c.Request().Context(), categories, count)
	if err != nil {
		var validationErr *service.ValidationError
		if errors.As(err, &validationErr) {
			return c.JSON(http.StatusBadRequest, dto.Fail("invalid_request", validationErr.Message))
		}
		h.logger.Error("Failed to fetch trending candidates", logger.ErrorField(err))
		return c.JSON(http.StatusInternalServerError, dto.Fail("internal_error", "Failed to fetch trending candidates"))
	}

	return c.JSON(http.StatusOK, dto.OK(result))
}

// GetNews godoc
// @Summary Search recent news for a symbol
// @Description Search recent news articles for one ticker symbol
// @Tags stocks
// @Produce  json
// @Param   symbol  path    string  true    "Ticker symbol"
// @Param   days    query   int     false   "Lookback window in days"
// @Param   limit   query   int     false   "Maximum articles"
// @Success 200 {object} dto.Envelope
// @Failure 400 {object} dto.Envelope
// @Failure 500 {object} dto.Envelope
// @Router /stocks/{symbol}/news [get]
func (h *StockHandler) GetNews(c echo.Context) error {
	symbol := strings.ToUpper(strings.TrimSpace(c.Param("symbol")))

	days := 0
	if raw := c.QueryParam("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return c.JSON(http.StatusBadRequest, dto.Fail("invalid_request", "days must be an integer"))
		}
		days = parsed
	}
	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return c.JSON(http.StatusBadRequest, dto.Fail("invalid_request", "limit must be an integer"))
		}
		limit = parsed
	}

	items, err := h.briefingService.News(c.Request().Context(), symbol, days, limit)
	if err != nil {
		var validationErr *service.ValidationError
		if errors.As(err, &validationErr) {
			return c.JSON(http.StatusBadRequest, dto.Fail("invalid_request", validationErr.Message))
		}
		h.logger.Error("Failed to search news",
			logger.StringField("symbol", symbol),
			logger.ErrorField(err),
		)
		return c.JSON(http.StatusInternalServerError, dto.Fail("internal_error", "Failed to search news"))
	}

	return c.JSON(http.StatusOK, dto.OK(items))
}
