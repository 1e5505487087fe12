package manpower_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/KapilArunesshSS/brighttechrms/internal/manpower"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeService struct {
	submitBatchFn func(ctx context.Context, date time.Time, site string, rows []manpower.RawRow) (manpower.BatchResult, error)
	getAllFn      func(ctx context.Context, site string, date *time.Time) ([]manpower.ManpowerResponse, error)
	resetAllFn    func(ctx context.Context) error
}

func (f *fakeService) SubmitBatch(ctx context.Context, date time.Time, site string, rows []manpower.RawRow) (manpower.BatchResult, error) {
	return f.submitBatchFn(ctx, date, site, rows)
}
func (f *fakeService) GetAll(ctx context.Context, site string, date *time.Time) ([]manpower.ManpowerResponse, error) {
	return f.getAllFn(ctx, site, date)
}
func (f *fakeService) ResetAll(ctx context.Context) error { return f.resetAllFn(ctx) }

func postForm(h *manpower.Handler, form url.Values) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/manpower", strings.NewReader(form.Encode()))
	c.Request.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	h.Submit(c)
	return w
}

func TestHandler_Submit_GroupsFieldsBySuffix(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var gotSite string
	var gotDate time.Time
	var gotRows []manpower.RawRow
	svc := &fakeService{
		submitBatchFn: func(ctx context.Context, date time.Time, site string, rows []manpower.RawRow) (manpower.BatchResult, error) {
			gotSite, gotDate, gotRows = site, date, rows
			return manpower.BatchResult{Saved: []string{"1", "2"}}, nil
		},
	}
	h := manpower.NewHandler(svc)

	form := url.Values{}
	form.Set("site_selection", "Site A")
	form.Set("report_date", "2026-02-10")
	form.Set("dept_1", "Mechanical")
	form.Set("desig_1", "Fitter")
	form.Set("skill_1", "SK")
	form.Set("scope_1", "50")
	form.Set("p_1", "45")
	form.Set("a_1", "3")
	form.Set("w_1", "2")
	form.Set("o_1", "12.5")
	form.Set("remarks_1", "night shift")
	form.Set("dept_2", "Electrical")
	form.Set("desig_2", "Wireman")
	form.Set("scope_2", "20")
	form.Set("p_2", "18")

	w := postForm(h, form)
	assert.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, "Site A", gotSite)
	assert.Equal(t, "2026-02-10", gotDate.Format("2006-01-02"))
	assert.Len(t, gotRows, 2)

	assert.Equal(t, "1", gotRows[0].SrNo)
	assert.Equal(t, "Mechanical", gotRows[0].Department)
	assert.Equal(t, "Fitter", gotRows[0].Designation)
	assert.Equal(t, "SK", gotRows[0].SkillLevel)
	assert.Equal(t, "50", gotRows[0].Scope)
	assert.Equal(t, "45", gotRows[0].Present)
	assert.Equal(t, "3", gotRows[0].Absent)
	assert.Equal(t, "2", gotRows[0].WeeklyOff)
	assert.Equal(t, "12.5", gotRows[0].Overtime)
	assert.Equal(t, "night shift", gotRows[0].Remarks)

	assert.Equal(t, "2", gotRows[1].SrNo)
	assert.Equal(t, "Electrical", gotRows[1].Department)
	assert.Equal(t, "18", gotRows[1].Present)
}

func TestHandler_Submit_MissingSiteOrDate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := manpower.NewHandler(&fakeService{})

	noSite := url.Values{}
	noSite.Set("report_date", "2026-02-10")
	noSite.Set("dept_1", "Mechanical")

	noDate := url.Values{}
	noDate.Set("site_selection", "Site A")
	noDate.Set("dept_1", "Mechanical")

	for _, form := range []url.Values{noSite, noDate} {
		w := postForm(h, form)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Please select both Site and Date.")
	}
}

func TestHandler_Submit_InvalidDate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := manpower.NewHandler(&fakeService{})

	form := url.Values{}
	form.Set("site_selection", "Site A")
	form.Set("report_date", "10/02/2026")
	form.Set("dept_1", "Mechanical")

	w := postForm(h, form)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid date format. Expected YYYY-MM-DD")
}

func TestHandler_Submit_NoRows(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := manpower.NewHandler(&fakeService{})

	form := url.Values{}
	form.Set("site_selection", "Site A")
	form.Set("report_date", "2026-02-10")

	w := postForm(h, form)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_Submit_ReportsSkippedRows(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakeService{
		submitBatchFn: func(ctx context.Context, date time.Time, site string, rows []manpower.RawRow) (manpower.BatchResult, error) {
			return manpower.BatchResult{
				Saved:   []string{"1"},
				Skipped: []manpower.SkippedRow{{SrNo: "2", Reason: `invalid present count "x"`}},
			}, nil
		},
	}
	h := manpower.NewHandler(svc)

	form := url.Values{}
	form.Set("site_selection", "Site A")
	form.Set("report_date", "2026-02-10")
	form.Set("dept_1", "Mechanical")
	form.Set("dept_2", "Electrical")

	w := postForm(h, form)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "skipped")
	assert.Contains(t, w.Body.String(), "invalid present count")
}

func TestHandler_GetAll_FiltersBySiteAndDate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakeService{
		getAllFn: func(ctx context.Context, site string, date *time.Time) ([]manpower.ManpowerResponse, error) {
			assert.Equal(t, "Site A", site)
			assert.NotNil(t, date)
			assert.Equal(t, "2026-02-10", date.Format("2006-01-02"))
			return []manpower.ManpowerResponse{{Site: site, FillRatio: 90.0}}, nil
		},
	}
	h := manpower.NewHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/manpower?site=Site+A&date=2026-02-10", nil)
	h.GetAll(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "fill_ratio")
}

func TestHandler_Reset(t *testing.T) {
	gin.SetMode(gin.TestMode)

	called := false
	svc := &fakeService{
		resetAllFn: func(ctx context.Context) error { called = true; return nil },
	}
	h := manpower.NewHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodDelete, "/manpower", nil)
	h.Reset(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, called)
}
