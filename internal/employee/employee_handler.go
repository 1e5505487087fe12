package employee

import (
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"time"

	employeeerrors "github.com/KapilArunesshSS/brighttechrms/internal/employee/errors"
	"github.com/KapilArunesshSS/brighttechrms/internal/shared/apperror"
	"github.com/KapilArunesshSS/brighttechrms/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	rdb     *redis.Client
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func NewHandlerWithRedis(service Service, rdb *redis.Client) *Handler {
	return &Handler{service: service, rdb: rdb}
}

func writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func openUpload(header *multipart.FileHeader) (*FileUpload, error) {
	f, err := header.Open()
	if err != nil {
		return nil, err
	}
	return &FileUpload{
		Content:     f,
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
	}, nil
}

func (h *Handler) Create(c *gin.Context) {
	lockKey, _ := c.Get("idempotency_lock_key")
	cacheKey, _ := c.Get("idempotency_cache_key")

	// Release the in-flight lock whatever the outcome; a failed create
	// must not block the client's retry for the full lock TTL.
	if h.rdb != nil {
		if lk, ok := lockKey.(string); ok && lk != "" {
			defer h.rdb.Del(c.Request.Context(), lk)
		}
	}

	var req CreateEmployeeRequest
	if err := c.ShouldBind(&req); err != nil {
		httpErr := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	if header, err := c.FormFile("resume"); err == nil {
		upload, err := openUpload(header)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "INVALID_UPLOAD", "Could not read uploaded resume", nil)
			return
		}
		defer upload.Content.(multipart.File).Close()
		req.Resume = upload
	}

	resp, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	if h.rdb != nil {
		if ck, ok := cacheKey.(string); ok && ck != "" {
			if payload, marshalErr := json.Marshal(resp); marshalErr == nil {
				_ = h.rdb.Set(c.Request.Context(), ck, payload, 24*time.Hour).Err()
			}
		}
	}

	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) GetAll(c *gin.Context) {
	resp, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetByID(c *gin.Context) {
	resp, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdateEmployeeRequest
	if err := c.ShouldBind(&req); err != nil {
		httpErr := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	if header, err := c.FormFile("resume"); err == nil {
		upload, err := openUpload(header)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "INVALID_UPLOAD", "Could not read uploaded resume", nil)
			return
		}
		defer upload.Content.(multipart.File).Close()
		req.Resume = upload
	}
	if header, err := c.FormFile("offer_letter"); err == nil {
		upload, err := openUpload(header)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "INVALID_UPLOAD", "Could not read uploaded offer letter", nil)
			return
		}
		defer upload.Content.(multipart.File).Close()
		req.OfferLetter = upload
	}

	resp, err := h.service.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true}, nil)
}

// Summary implements the dashboard aggregation endpoint. Error
// messages are part of the contract the frontend matches on, so the
// body is decoded by hand rather than through binding.
func (h *Handler) Summary(c *gin.Context) {
	var req SummaryRequest
	if err := json.NewDecoder(c.Request.Body).Decode(&req); err != nil {
		e := employeeerrors.ErrInvalidSummaryJSON
		response.Error(c, e.HTTPStatus, e.Code, e.Message, nil)
		return
	}

	if req.FromDate == "" || req.ToDate == "" || req.Site == "" {
		e := employeeerrors.ErrMissingSummaryParams
		response.Error(c, e.HTTPStatus, e.Code, e.Message, nil)
		return
	}

	from, err := time.Parse("2006-01-02", req.FromDate)
	if err != nil {
		e := employeeerrors.ErrInvalidSummaryDate
		response.Error(c, e.HTTPStatus, e.Code, e.Message, nil)
		return
	}
	to, err := time.Parse("2006-01-02", req.ToDate)
	if err != nil {
		e := employeeerrors.ErrInvalidSummaryDate
		response.Error(c, e.HTTPStatus, e.Code, e.Message, nil)
		return
	}

	resp, err := h.service.Summary(c.Request.Context(), req.Site, from, to)
	if err != nil {
		zap.L().Error("summary aggregation failed",
			zap.String("site", req.Site),
			zap.Error(err),
		)
		response.Error(c, http.StatusInternalServerError, apperror.CodeInternalError, "An unexpected error occurred", nil)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) Export(c *gin.Context) {
	employees, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}

	f, err := BuildRosterWorkbook(employees)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	defer f.Close()

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", RosterExportFilename))

	if err := f.Write(c.Writer); err != nil {
		zap.L().Error("roster export write failed", zap.Error(err))
	}
}
