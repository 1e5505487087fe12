package employee_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/KapilArunesshSS/brighttechrms/internal/employee"
	"github.com/KapilArunesshSS/brighttechrms/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeService struct {
	initRefSequenceFn func(ctx context.Context) error
	createFn          func(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error)
	getAllFn          func(ctx context.Context) ([]employee.EmployeeResponse, error)
	getByIDFn         func(ctx context.Context, id string) (employee.EmployeeResponse, error)
	updateFn          func(ctx context.Context, id string, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error)
	deleteFn          func(ctx context.Context, id string) error
	summaryFn         func(ctx context.Context, site string, from, to time.Time) (employee.SummaryResponse, error)
}

func (f *fakeService) InitRefSequence(ctx context.Context) error { return f.initRefSequenceFn(ctx) }
func (f *fakeService) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	return f.createFn(ctx, req)
}
func (f *fakeService) GetAll(ctx context.Context) ([]employee.EmployeeResponse, error) {
	return f.getAllFn(ctx)
}
func (f *fakeService) GetByID(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	return f.getByIDFn(ctx, id)
}
func (f *fakeService) Update(ctx context.Context, id string, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	return f.updateFn(ctx, id, req)
}
func (f *fakeService) Delete(ctx context.Context, id string) error { return f.deleteFn(ctx, id) }
func (f *fakeService) Summary(ctx context.Context, site string, from, to time.Time) (employee.SummaryResponse, error) {
	return f.summaryFn(ctx, site, from, to)
}

func summaryRequest(body string) (*httptest.ResponseRecorder, *gin.Context) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/summary", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	return w, c
}

func TestHandler_Summary_Success(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakeService{
		summaryFn: func(ctx context.Context, site string, from, to time.Time) (employee.SummaryResponse, error) {
			assert.Equal(t, "Site A", site)
			assert.Equal(t, "2026-01-01", from.Format("2006-01-02"))
			assert.Equal(t, "2026-01-31", to.Format("2006-01-02"))
			return employee.SummaryResponse{Selected: 4, Offered: 2, Total: 6}, nil
		},
	}
	h := employee.NewHandler(svc)

	w, c := summaryRequest(`{"from_date":"2026-01-01","to_date":"2026-01-31","site":"Site A"}`)
	h.Summary(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp employee.SummaryResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(4), resp.Selected)
	assert.Equal(t, int64(6), resp.Total)
}

func TestHandler_Summary_InvalidJSON(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := employee.NewHandler(&fakeService{})

	w, c := summaryRequest(`{"from_date": `)
	h.Summary(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid JSON format")
}

func TestHandler_Summary_MissingParams(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := employee.NewHandler(&fakeService{})

	bodies := []string{
		`{"to_date":"2026-01-31","site":"Site A"}`,
		`{"from_date":"2026-01-01","site":"Site A"}`,
		`{"from_date":"2026-01-01","to_date":"2026-01-31"}`,
	}
	for _, body := range bodies {
		w, c := summaryRequest(body)
		h.Summary(c)

		assert.Equal(t, http.StatusBadRequest, w.Code, body)
		assert.Contains(t, w.Body.String(), "Missing date or site parameters", body)
	}
}

func TestHandler_Summary_InvalidDate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := employee.NewHandler(&fakeService{})

	w, c := summaryRequest(`{"from_date":"01-01-2026","to_date":"2026-01-31","site":"Site A"}`)
	h.Summary(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid date format. Expected YYYY-MM-DD")
}

func TestHandler_Summary_ServiceError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakeService{
		summaryFn: func(ctx context.Context, site string, from, to time.Time) (employee.SummaryResponse, error) {
			return employee.SummaryResponse{}, errors.New("db down")
		},
	}
	h := employee.NewHandler(svc)

	w, c := summaryRequest(`{"from_date":"2026-01-01","to_date":"2026-01-31","site":"Site A"}`)
	h.Summary(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "An unexpected error occurred")
}

func TestHandler_CreateAndGetAll(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakeService{
		createFn: func(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
			assert.Equal(t, "Worker", req.Name)
			assert.Equal(t, "9876543210", req.ContactNumber)
			return employee.EmployeeResponse{ID: uuid.NewString(), RefID: "RMS0001", Name: req.Name}, nil
		},
		getAllFn: func(ctx context.Context) ([]employee.EmployeeResponse, error) {
			return []employee.EmployeeResponse{{RefID: "RMS0001"}, {RefID: "RMS0002"}}, nil
		},
	}
	h := employee.NewHandler(svc)

	form := "name=Worker&age=30&contact=9876543210&company=Site+A&role=Fitter&status=pending"
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/employees", strings.NewReader(form))
	c.Request.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	h.Create(c)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "RMS0001")

	w2 := httptest.NewRecorder()
	c2, _ := gin.CreateTestContext(w2)
	c2.Request = httptest.NewRequest(http.MethodGet, "/employees", nil)
	h.GetAll(c2)
	assert.Equal(t, http.StatusOK, w2.Code)
	assert.Contains(t, w2.Body.String(), "RMS0002")
}

func TestHandler_Create_IdempotentRetryReplaysResponse(t *testing.T) {
	gin.SetMode(gin.TestMode)

	resp := employee.EmployeeResponse{ID: uuid.NewString(), RefID: "RMS0001", Name: "Worker"}
	calls := 0
	svc := &fakeService{
		createFn: func(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
			calls++
			return resp, nil
		},
	}

	rdb, rmock := redismock.NewClientMock()
	h := employee.NewHandlerWithRedis(svc, rdb)

	r := gin.New()
	r.POST("/employees", middleware.Idempotency(rdb), h.Create)

	payload, _ := json.Marshal(resp)
	cacheKey := "idemp:/employees::retry-1"
	lockKey := cacheKey + ":lock"

	// First request takes the lock, caches the response, then releases
	// the lock.
	rmock.ExpectGet(cacheKey).RedisNil()
	rmock.ExpectSetNX(lockKey, "locked", 30*time.Second).SetVal(true)
	rmock.ExpectSet(cacheKey, payload, 24*time.Hour).SetVal("OK")
	rmock.ExpectDel(lockKey).SetVal(1)

	form := "name=Worker&age=30&contact=9876543210&company=Site+A&role=Fitter&status=pending"

	req1 := httptest.NewRequest(http.MethodPost, "/employees", strings.NewReader(form))
	req1.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req1.Header.Set("Idempotency-Key", "retry-1")
	w1 := httptest.NewRecorder()
	r.ServeHTTP(w1, req1)
	assert.Equal(t, http.StatusCreated, w1.Code)
	assert.Contains(t, w1.Body.String(), "RMS0001")

	// Retry with the same key replays the cached response without
	// reaching the service again.
	rmock.ExpectGet(cacheKey).SetVal(string(payload))

	req2 := httptest.NewRequest(http.MethodPost, "/employees", strings.NewReader(form))
	req2.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req2.Header.Set("Idempotency-Key", "retry-1")
	w2 := httptest.NewRecorder()
	r.ServeHTTP(w2, req2)
	assert.Equal(t, http.StatusOK, w2.Code)
	assert.Contains(t, w2.Body.String(), "RMS0001")
	assert.NotContains(t, w2.Body.String(), "still being processed")

	assert.Equal(t, 1, calls)
	assert.NoError(t, rmock.ExpectationsWereMet())
}

func TestHandler_Create_MissingRequiredField(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := employee.NewHandler(&fakeService{})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/employees", strings.NewReader("name=Worker"))
	c.Request.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	h.Create(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
