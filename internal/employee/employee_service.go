package employee

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"path/filepath"
	"time"

	employeeerrors "github.com/KapilArunesshSS/brighttechrms/internal/employee/errors"
	"github.com/KapilArunesshSS/brighttechrms/internal/events"
	"github.com/KapilArunesshSS/brighttechrms/internal/messaging/kafka"
	"github.com/KapilArunesshSS/brighttechrms/internal/shared/contextutil"
	"github.com/KapilArunesshSS/brighttechrms/internal/shared/sequence"
	"github.com/KapilArunesshSS/brighttechrms/internal/storage"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const summaryCacheTTL = 60 * time.Second

func summaryCacheKey(site string, from, to time.Time) string {
	return fmt.Sprintf("employees:summary:%s:%s:%s",
		site, from.Format("2006-01-02"), to.Format("2006-01-02"))
}

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	// InitRefSequence seeds the reference id counter from the highest
	// already-assigned id. Called once at startup; a stored id that does
	// not match the RMS format fails with a data-integrity error.
	InitRefSequence(ctx context.Context) error

	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetAll(ctx context.Context) ([]EmployeeResponse, error)
	GetByID(ctx context.Context, id string) (EmployeeResponse, error)
	Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, id string) error
	Summary(ctx context.Context, site string, from, to time.Time) (SummaryResponse, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	seq    sequence.Repository
	blobs  storage.BlobStore
	outbox kafka.OutboxRepository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, seq sequence.Repository, blobs storage.BlobStore, rdb *redis.Client, logger ...*zap.Logger) Service {
	return NewServiceWithOutbox(db, repo, seq, blobs, nil, rdb, logger...)
}

func NewServiceWithOutbox(
	db *sql.DB,
	repo Repository,
	seq sequence.Repository,
	blobs storage.BlobStore,
	outboxRepo kafka.OutboxRepository,
	rdb *redis.Client,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{
		db:     db,
		repo:   repo,
		seq:    seq,
		blobs:  blobs,
		outbox: outboxRepo,
		rdb:    rdb,
		sf:     &singleflight.Group{},
		logger: l,
	}
}

func (s *service) InitRefSequence(ctx context.Context) error {
	maxRef, err := s.repo.MaxRefID(ctx)
	if err != nil {
		s.logger.Error("ref sequence seed read failed", zap.Error(err))
		return err
	}
	if maxRef == "" {
		return nil
	}

	seq, err := ParseRefID(maxRef)
	if err != nil {
		s.logger.Error("ref sequence seed found malformed reference id",
			zap.String("ref_id", maxRef),
		)
		return err
	}

	if err := s.seq.Seed(ctx, RefSequenceName, seq); err != nil {
		s.logger.Error("ref sequence seed failed", zap.Error(err))
		return err
	}

	s.logger.Info("ref sequence seeded",
		zap.String("max_ref_id", maxRef),
		zap.Int64("sequence", seq),
	)
	return nil
}

func (s *service) Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.String("company", req.Company),
		zap.String("contact_number", req.ContactNumber),
	)

	if !IsKnownStatus(req.Status) {
		s.logger.Warn("create employee unknown status", zap.String("status", req.Status))
		return EmployeeResponse{}, employeeerrors.ErrUnknownStatus
	}

	exists, err := s.repo.ExistsByContactNumber(ctx, req.ContactNumber)
	if err != nil {
		s.logger.Error("create employee contact lookup failed", zap.Error(err))
		return EmployeeResponse{}, err
	}
	if exists {
		s.logger.Warn("create employee duplicate contact number",
			zap.String("contact_number", req.ContactNumber),
		)
		return EmployeeResponse{}, employeeerrors.ErrContactNumberExists
	}

	// The counter serializes concurrent creations; the unique index on
	// ref_id is the backstop.
	nextVal, err := s.seq.NextValue(ctx, RefSequenceName)
	if err != nil {
		s.logger.Error("create employee allocate ref id failed", zap.Error(err))
		return EmployeeResponse{}, err
	}
	refID := FormatRefID(nextVal)

	var resumeKey *string
	if req.Resume != nil {
		key, err := s.storeBlob(ctx, "resumes", req.Resume)
		if err != nil {
			s.logger.Error("create employee store resume failed", zap.Error(err))
			return EmployeeResponse{}, err
		}
		resumeKey = &key
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create employee begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	empl := &Employee{
		ID:            uuid.New(),
		RefID:         refID,
		Name:          req.Name,
		Age:           req.Age,
		Company:       req.Company,
		Role:          req.Role,
		Status:        req.Status,
		ContactNumber: req.ContactNumber,
		ResumeKey:     resumeKey,
	}

	if err := qtx.Create(ctx, empl); err != nil {
		s.logger.Error("create employee persist failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if s.outbox != nil {
		event := events.EmployeeCreatedEvent{
			EventType:  "employee_created",
			RequestID:  rid,
			EmployeeID: empl.ID.String(),
			RefID:      empl.RefID,
			Company:    empl.Company,
			Status:     empl.Status,
			OccurredAt: time.Now().UTC(),
		}
		payload, err := json.Marshal(event)
		if err != nil {
			s.logger.Error("marshal event failed", zap.String("request_id", rid), zap.Error(err))
			return EmployeeResponse{}, err
		}

		outboxRepo := s.outbox.WithTx(tx)
		if err := outboxRepo.Create(ctx, kafka.OutboxEvent{
			ID:            uuid.NewString(),
			RequestID:     rid,
			AggregateType: "employee",
			AggregateID:   empl.ID.String(),
			EventType:     event.EventType,
			Topic:         events.EmployeeCreatedTopic,
			Payload:       payload,
			Status:        kafka.OutboxStatusPending,
		}); err != nil {
			s.logger.Error("create employee outbox persist failed",
				zap.String("employee_id", empl.ID.String()),
				zap.Error(err),
			)
			return EmployeeResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("commit failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}

	s.logger.Info("create employee success",
		zap.String("request_id", rid),
		zap.String("employee_id", empl.ID.String()),
		zap.String("ref_id", empl.RefID),
	)

	return s.mapToResponse(*empl), nil
}

func (s *service) GetAll(ctx context.Context) ([]EmployeeResponse, error) {
	s.logger.Debug("get all employees requested")
	empls, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("get all employees failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	res := make([]EmployeeResponse, len(empls))
	for i, e := range empls {
		res[i] = s.mapToResponse(e)
	}
	return res, nil
}

func (s *service) GetByID(ctx context.Context, id string) (EmployeeResponse, error) {
	s.logger.Debug("get employee by id requested", zap.String("employee_id", id))
	empl, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("get employee by id failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	return s.mapToResponse(*empl), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error) {
	s.logger.Debug("update employee requested",
		zap.String("employee_id", id),
		zap.String("status", req.Status),
	)

	if !IsKnownStatus(req.Status) {
		s.logger.Warn("update employee unknown status", zap.String("status", req.Status))
		return EmployeeResponse{}, employeeerrors.ErrUnknownStatus
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update employee begin tx failed", zap.Error(err))
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	empl, err := qtx.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("update employee fetch existing failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	empl.Name = req.Name
	empl.Age = req.Age
	empl.ContactNumber = req.ContactNumber
	empl.Company = req.Company
	empl.Role = req.Role
	empl.Status = req.Status
	empl.Remarks = req.Remarks

	// Status-driven clears run before file instructions so a cleared
	// offer letter cannot be resurrected by stale state.
	clears := ClearsForStatus(empl.Status)
	if clears.Remarks {
		empl.Remarks = nil
	}
	if clears.OfferLetter && empl.OfferLetterKey != nil {
		s.releaseBlob(ctx, *empl.OfferLetterKey)
		empl.OfferLetterKey = nil
	}

	if req.DeleteOfferLetter && empl.OfferLetterKey != nil {
		s.releaseBlob(ctx, *empl.OfferLetterKey)
		empl.OfferLetterKey = nil
	}
	if req.OfferLetter != nil {
		if empl.OfferLetterKey != nil {
			s.releaseBlob(ctx, *empl.OfferLetterKey)
		}
		key, err := s.storeBlob(ctx, "offer_letters", req.OfferLetter)
		if err != nil {
			s.logger.Error("update employee store offer letter failed", zap.Error(err))
			return EmployeeResponse{}, err
		}
		empl.OfferLetterKey = &key
	}

	if req.DeleteResume && empl.ResumeKey != nil {
		s.releaseBlob(ctx, *empl.ResumeKey)
		empl.ResumeKey = nil
	}
	if req.Resume != nil {
		if empl.ResumeKey != nil {
			s.releaseBlob(ctx, *empl.ResumeKey)
		}
		key, err := s.storeBlob(ctx, "resumes", req.Resume)
		if err != nil {
			s.logger.Error("update employee store resume failed", zap.Error(err))
			return EmployeeResponse{}, err
		}
		empl.ResumeKey = &key
	}

	if err := qtx.Update(ctx, empl); err != nil {
		s.logger.Error("update employee persist failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("update employee commit failed", zap.Error(err))
		return EmployeeResponse{}, err
	}

	s.logger.Info("update employee success",
		zap.String("employee_id", id),
		zap.String("status", empl.Status),
	)

	return s.mapToResponse(*empl), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	s.logger.Debug("delete employee requested", zap.String("employee_id", id))

	empl, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("delete employee fetch failed", zap.Error(err))
		return mapRepositoryError(err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("delete employee begin tx failed", zap.Error(err))
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	if err := qtx.Delete(ctx, id); err != nil {
		s.logger.Error("delete employee failed", zap.Error(err))
		return mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("delete employee commit failed", zap.Error(err))
		return err
	}

	// The record owned these references; release the blobs after the
	// delete lands.
	if empl.ResumeKey != nil {
		s.releaseBlob(ctx, *empl.ResumeKey)
	}
	if empl.OfferLetterKey != nil {
		s.releaseBlob(ctx, *empl.OfferLetterKey)
	}

	s.logger.Info("delete employee success",
		zap.String("employee_id", id),
		zap.String("ref_id", empl.RefID),
	)
	return nil
}

func (s *service) Summary(ctx context.Context, site string, from, to time.Time) (SummaryResponse, error) {
	cacheKey := summaryCacheKey(site, from, to)

	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, cacheKey).Result(); err == nil {
			var resp SummaryResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	// Singleflight collapses the burst when several dashboards request
	// the same range at once.
	v, err, _ := s.sf.Do(cacheKey, func() (interface{}, error) {
		counts, err := s.repo.CountByStatus(ctx, site, from, to)
		if err != nil {
			return SummaryResponse{}, err
		}

		resp := s.buildSummary(site, counts)

		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				s.rdb.Set(ctx, cacheKey, jsonData, summaryCacheTTL)
			}
		}

		return resp, nil
	})

	if err != nil {
		return SummaryResponse{}, err
	}

	return v.(SummaryResponse), nil
}

func (s *service) buildSummary(site string, counts []StatusCount) SummaryResponse {
	var resp SummaryResponse
	for _, c := range counts {
		switch c.Status {
		case StatusSelected:
			resp.Selected = c.Count
		case StatusOffered:
			resp.Offered = c.Count
		case StatusRejected:
			resp.Rejected = c.Count
		case StatusJoined:
			resp.Joined = c.Count
		case StatusPending:
			resp.Pending = c.Count
		case StatusLeft:
			resp.Left = c.Count
		default:
			// Unknown statuses are excluded from every bucket and from
			// the total; surfaced here so data-quality drift is visible.
			s.logger.Warn("summary skipping unknown status value",
				zap.String("site", site),
				zap.String("status", c.Status),
				zap.Int64("count", c.Count),
			)
			continue
		}
		resp.Total += c.Count
	}
	return resp
}

func (s *service) storeBlob(ctx context.Context, folder string, f *FileUpload) (string, error) {
	key := fmt.Sprintf("%s/%s%s", folder, uuid.NewString(), filepath.Ext(f.Filename))
	if err := s.blobs.Save(ctx, key, f.Content, f.ContentType); err != nil {
		return "", err
	}
	return key, nil
}

// releaseBlob is best-effort cleanup: failure is logged, never fatal to
// the surrounding record update.
func (s *service) releaseBlob(ctx context.Context, key string) {
	if s.blobs == nil {
		return
	}
	if err := s.blobs.Delete(ctx, key); err != nil {
		s.logger.Error("release blob failed",
			zap.String("key", key),
			zap.Error(err),
		)
	}
}

func (s *service) mapToResponse(empl Employee) EmployeeResponse {
	resp := EmployeeResponse{
		ID:            empl.ID.String(),
		RefID:         empl.RefID,
		Name:          empl.Name,
		Age:           empl.Age,
		Company:       empl.Company,
		Role:          empl.Role,
		Status:        empl.Status,
		ContactNumber: empl.ContactNumber,
		Remarks:       empl.Remarks,
		CreatedAt:     empl.CreatedAt.Format("2006-01-02"),
		UpdatedAt:     empl.UpdatedAt.Format("2006-01-02"),
	}
	if empl.ResumeKey != nil && s.blobs != nil {
		u := s.blobs.URL(*empl.ResumeKey)
		resp.ResumeURL = &u
	}
	if empl.OfferLetterKey != nil && s.blobs != nil {
		u := s.blobs.URL(*empl.OfferLetterKey)
		resp.OfferLetterURL = &u
	}
	return resp
}
