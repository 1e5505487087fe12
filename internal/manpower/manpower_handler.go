package manpower

import (
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	manpowererrors "github.com/KapilArunesshSS/brighttechrms/internal/manpower/errors"
	"github.com/KapilArunesshSS/brighttechrms/internal/shared/apperror"
	"github.com/KapilArunesshSS/brighttechrms/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

// rowFieldPrefixes maps a form field prefix to the RawRow field it
// fills. The submission form posts one field per cell, suffixed with
// the row number: p_3 is row 3's present count, dept_3 its department.
var rowFieldPrefixes = map[string]func(*RawRow, string){
	"dept":    func(r *RawRow, v string) { r.Department = v },
	"desig":   func(r *RawRow, v string) { r.Designation = v },
	"skill":   func(r *RawRow, v string) { r.SkillLevel = v },
	"scope":   func(r *RawRow, v string) { r.Scope = v },
	"p":       func(r *RawRow, v string) { r.Present = v },
	"a":       func(r *RawRow, v string) { r.Absent = v },
	"w":       func(r *RawRow, v string) { r.WeeklyOff = v },
	"o":       func(r *RawRow, v string) { r.Overtime = v },
	"remarks": func(r *RawRow, v string) { r.Remarks = v },
}

// collectRows groups suffixed form fields into rows, ordered by their
// numeric suffix.
func collectRows(form map[string][]string) []RawRow {
	byNo := map[int]*RawRow{}
	for key, values := range form {
		if len(values) == 0 {
			continue
		}
		idx := strings.LastIndex(key, "_")
		if idx <= 0 {
			continue
		}
		setter, ok := rowFieldPrefixes[key[:idx]]
		if !ok {
			continue
		}
		n, err := strconv.Atoi(key[idx+1:])
		if err != nil {
			continue
		}
		row, ok := byNo[n]
		if !ok {
			row = &RawRow{SrNo: strconv.Itoa(n)}
			byNo[n] = row
		}
		setter(row, values[0])
	}

	nos := make([]int, 0, len(byNo))
	for n := range byNo {
		nos = append(nos, n)
	}
	sort.Ints(nos)

	rows := make([]RawRow, 0, len(nos))
	for _, n := range nos {
		rows = append(rows, *byNo[n])
	}
	return rows
}

func (h *Handler) Submit(c *gin.Context) {
	if err := c.Request.ParseMultipartForm(1 << 20); err != nil {
		if err := c.Request.ParseForm(); err != nil {
			response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "Could not parse submission form", nil)
			return
		}
	}

	site := strings.TrimSpace(c.PostForm("site_selection"))
	dateStr := strings.TrimSpace(c.PostForm("report_date"))
	if site == "" || dateStr == "" {
		e := manpowererrors.ErrMissingSiteOrDate
		response.Error(c, e.HTTPStatus, e.Code, e.Message, nil)
		return
	}

	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		e := manpowererrors.ErrInvalidReportDate
		response.Error(c, e.HTTPStatus, e.Code, e.Message, nil)
		return
	}

	rows := collectRows(c.Request.PostForm)
	if len(rows) == 0 {
		e := manpowererrors.ErrEmptyBatch
		response.Error(c, e.HTTPStatus, e.Code, e.Message, nil)
		return
	}

	result, err := h.service.SubmitBatch(c.Request.Context(), date, site, rows)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, result, nil)
}

func (h *Handler) GetAll(c *gin.Context) {
	site := strings.TrimSpace(c.Query("site"))

	var date *time.Time
	if v := strings.TrimSpace(c.Query("date")); v != "" {
		d, err := time.Parse("2006-01-02", v)
		if err != nil {
			e := manpowererrors.ErrInvalidReportDate
			response.Error(c, e.HTTPStatus, e.Code, e.Message, nil)
			return
		}
		date = &d
	}

	resp, err := h.service.GetAll(c.Request.Context(), site, date)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Reset(c *gin.Context) {
	if err := h.service.ResetAll(c.Request.Context()); err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"reset": true}, nil)
}

func (h *Handler) Export(c *gin.Context) {
	site := strings.TrimSpace(c.Query("site"))

	var date *time.Time
	if v := strings.TrimSpace(c.Query("date")); v != "" {
		d, err := time.Parse("2006-01-02", v)
		if err != nil {
			e := manpowererrors.ErrInvalidReportDate
			response.Error(c, e.HTTPStatus, e.Code, e.Message, nil)
			return
		}
		date = &d
	}

	entries, err := h.service.GetAll(c.Request.Context(), site, date)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	f, err := BuildLedgerWorkbook(entries)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	defer f.Close()

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", LedgerExportFilename))

	if err := f.Write(c.Writer); err != nil {
		zap.L().Error("ledger export write failed", zap.Error(err))
	}
}
