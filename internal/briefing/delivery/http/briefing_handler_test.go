package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"golang-stock-briefing/internal/briefing/dto"
	"golang-stock-briefing/internal/briefing/repository"
	"golang-stock-briefing/internal/briefing/service"
	"golang-stock-briefing/internal/entity"
	"golang-stock-briefing/pkg/logger"
)

type stubBriefingService struct {
	run      *entity.PipelineRun
	list     *dto.RunListResponse
	report   *entity.DispatchReport
	news     []entity.NewsItem
	trending map[entity.ScreenerCategory][]entity.Candidate
	err      error

	lastFilter *dto.RunFilter
	lastID     string
}

func (s *stubBriefingService) Create(context.Context, *dto.CreateBriefingRequest) (*entity.PipelineRun, error) {
	return s.run, s.err
}

func (s *stubBriefingService) List(_ context.Context, filter *dto.RunFilter) (*dto.RunListResponse, error) {
	s.lastFilter = filter
	return s.list, s.err
}

func (s *stubBriefingService) Get(_ context.Context, id string) (*entity.PipelineRun, error) {
	s.lastID = id
	return s.run, s.err
}

func (s *stubBriefingService) Resend(_ context.Context, id string, _ *dto.SendBriefingRequest) (*entity.DispatchReport, error) {
	s.lastID = id
	return s.report, s.err
}

func (s *stubBriefingService) Trending(context.Context, []string, int) (map[entity.ScreenerCategory][]entity.Candidate, error) {
	return s.trending, s.err
}

func (s *stubBriefingService) News(context.Context, string, int, int) ([]entity.NewsItem, error) {
	return s.news, s.err
}

func doRequest(t *testing.T, handler func(echo.Context) error, method, target, body string, params map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	for name, value := range params {
		c.SetParamNames(name)
		c.SetParamValues(value)
	}
	require.NoError(t, handler(c))
	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) dto.Envelope {
	t.Helper()
	var envelope dto.Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	return envelope
}

func TestCreateBriefing_Success(t *testing.T) {
	svc := &stubBriefingService{run: &entity.PipelineRun{
		ID:             "briefing_NVDA_20260831_070001.000000000",
		StepsCompleted: []string{"selecting", "enriching", "composing", "dispatching"},
		Success:        true,
		CreatedAt:      time.Now(),
	}}
	handler := NewBriefingHandler(svc, logger.NewNop())

	rec := doRequest(t, handler.CreateBriefing, http.MethodPost, "/api/v1/briefings", `{"language":"en"}`, nil)

	assert.Equal(t, http.StatusCreated, rec.Code)
	envelope := decodeEnvelope(t, rec)
	assert.True(t, envelope.Success)
	assert.Nil(t, envelope.Error)
}

func TestCreateBriefing_ValidationErrorMapsTo400(t *testing.T) {
	svc := &stubBriefingService{err: service.NewValidationError("unknown screener category: top_memes")}
	handler := NewBriefingHandler(svc, logger.NewNop())

	rec := doRequest(t, handler.CreateBriefing, http.MethodPost, "/api/v1/briefings", `{"categories":["top_memes"]}`, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	envelope := decodeEnvelope(t, rec)
	assert.False(t, envelope.Success)
	require.NotNil(t, envelope.Error)
	assert.Equal(t, "invalid_request", envelope.Error.Code)
	assert.Contains(t, envelope.Error.Message, "top_memes")
	assert.False(t, envelope.Error.Timestamp.IsZero())
}

func TestListBriefings_ParsesFilters(t *testing.T) {
	svc := &stubBriefingService{list: &dto.RunListResponse{Briefings: []entity.RunSummary{}, Page: 2, Limit: 5}}
	handler := NewBriefingHandler(svc, logger.NewNop())

	rec := doRequest(t, handler.ListBriefings, http.MethodGet,
		"/api/v1/briefings?page=2&limit=5&symbol=NVDA&status=completed&start_date=2026-08-01&end_date=2026-08-31", "", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, svc.lastFilter)
	assert.Equal(t, 2, svc.lastFilter.Page)
	assert.Equal(t, 5, svc.lastFilter.Limit)
	assert.Equal(t, "NVDA", svc.lastFilter.Symbol)
	assert.Equal(t, entity.RunCompleted, svc.lastFilter.Status)
	require.NotNil(t, svc.lastFilter.StartDate)
	require.NotNil(t, svc.lastFilter.EndDate)
	// A bare end date covers the whole day.
	assert.Equal(t, 31, svc.lastFilter.EndDate.Day())
	assert.Equal(t, 23, svc.lastFilter.EndDate.Hour())
}

func TestListBriefings_RejectsBadStatus(t *testing.T) {
	handler := NewBriefingHandler(&stubBriefingService{}, logger.NewNop())

	rec := doRequest(t, handler.ListBriefings, http.MethodGet, "/api/v1/briefings?status=pending", "", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetBriefing_NotFoundMapsTo404(t *testing.T) {
	svc := &stubBriefingService{err: repository.ErrRunNotFound}
	handler := NewBriefingHandler(svc, logger.NewNop())

	rec := doRequest(t, handler.GetBriefing, http.MethodGet, "/api/v1/briefings/missing", "", map[string]string{"id": "missing"})

	assert.Equal(t, http.StatusNotFound, rec.Code)
	envelope := decodeEnvelope(t, rec)
	require.NotNil(t, envelope.Error)
	assert.Equal(t, "not_found", envelope.Error.Code)
	assert.Equal(t, "missing", svc.lastID)
}

func TestSendBriefing_ReturnsReport(t *testing.T) {
	svc := &stubBriefingService{report: &entity.DispatchReport{
		Results:   []entity.DispatchResult{{Channel: entity.ChannelEmail, Destination: "a@example.com", Status: entity.DispatchSent}},
		TotalSent: 1,
	}}
	handler := NewBriefingHandler(svc, logger.NewNop())

	rec := doRequest(t, handler.SendBriefing, http.MethodPost, "/api/v1/briefings/id1/send",
		`{"channels":[{"kind":"email","address":"a@example.com"}]}`, map[string]string{"id": "id1"})

	assert.Equal(t, http.StatusOK, rec.Code)
	envelope := decodeEnvelope(t, rec)
	assert.True(t, envelope.Success)
	assert.Equal(t, "id1", svc.lastID)
}
