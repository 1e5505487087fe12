package manpower

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/KapilArunesshSS/brighttechrms/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=manpower_service.go -destination=mock/manpower_service_mock.go -package=mock
type Service interface {
	// SubmitBatch applies one day's attendance rows for a site. Rows
	// are independent: a row whose numeric fields fail to parse is
	// skipped and reported, the rest still land.
	SubmitBatch(ctx context.Context, date time.Time, site string, rows []RawRow) (BatchResult, error)

	GetAll(ctx context.Context, site string, date *time.Time) ([]ManpowerResponse, error)
	ResetAll(ctx context.Context) error
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("manpower.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("manpower.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) SubmitBatch(ctx context.Context, date time.Time, site string, rows []RawRow) (BatchResult, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("submit attendance batch requested",
		zap.String("request_id", rid),
		zap.String("site", site),
		zap.String("date", date.Format("2006-01-02")),
		zap.Int("rows", len(rows)),
	)

	result := BatchResult{Saved: []string{}, Skipped: []SkippedRow{}}

	for _, raw := range rows {
		entry, err := s.parseRow(date, site, raw)
		if err != nil {
			s.logger.Warn("attendance row skipped",
				zap.String("request_id", rid),
				zap.String("sr_no", raw.SrNo),
				zap.Error(err),
			)
			result.Skipped = append(result.Skipped, SkippedRow{SrNo: raw.SrNo, Reason: err.Error()})
			continue
		}

		if err := s.repo.Upsert(ctx, entry); err != nil {
			s.logger.Error("attendance row upsert failed",
				zap.String("request_id", rid),
				zap.String("sr_no", raw.SrNo),
				zap.Error(err),
			)
			result.Skipped = append(result.Skipped, SkippedRow{SrNo: raw.SrNo, Reason: "failed to save row"})
			continue
		}

		result.Saved = append(result.Saved, raw.SrNo)
	}

	s.logger.Info("submit attendance batch done",
		zap.String("request_id", rid),
		zap.String("site", site),
		zap.Int("saved", len(result.Saved)),
		zap.Int("skipped", len(result.Skipped)),
	)

	return result, nil
}

func (s *service) parseRow(date time.Time, site string, raw RawRow) (*ManpowerEntry, error) {
	dept := strings.TrimSpace(raw.Department)
	desig := strings.TrimSpace(raw.Designation)
	if dept == "" || desig == "" {
		return nil, fmt.Errorf("missing department or designation")
	}

	scope, err := strconv.Atoi(strings.TrimSpace(raw.Scope))
	if err != nil {
		return nil, fmt.Errorf("invalid scope %q", raw.Scope)
	}
	present, err := parseCount(raw.Present)
	if err != nil {
		return nil, fmt.Errorf("invalid present count %q", raw.Present)
	}
	absent, err := parseCount(raw.Absent)
	if err != nil {
		return nil, fmt.Errorf("invalid absent count %q", raw.Absent)
	}
	weeklyOff, err := parseCount(raw.WeeklyOff)
	if err != nil {
		return nil, fmt.Errorf("invalid weekly off count %q", raw.WeeklyOff)
	}
	overtime, err := parseDecimal(raw.Overtime)
	if err != nil {
		return nil, fmt.Errorf("invalid overtime %q", raw.Overtime)
	}

	var remarks *string
	if v := strings.TrimSpace(raw.Remarks); v != "" {
		remarks = &v
	}

	return &ManpowerEntry{
		ID:          uuid.New(),
		Date:        date,
		Site:        site,
		Department:  dept,
		Designation: desig,
		SkillLevel:  strings.TrimSpace(raw.SkillLevel),
		Scope:       scope,
		Present:     present,
		Absent:      absent,
		WeeklyOff:   weeklyOff,
		Overtime:    overtime,
		Remarks:     remarks,
	}, nil
}

// Empty count fields default to 0, matching the submission form which
// leaves untouched inputs blank.
func parseCount(v string) (int, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return 0, nil
	}
	return strconv.Atoi(v)
}

func parseDecimal(v string) (float64, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return 0, nil
	}
	return strconv.ParseFloat(v, 64)
}

func (s *service) GetAll(ctx context.Context, site string, date *time.Time) ([]ManpowerResponse, error) {
	entries, err := s.repo.FindAll(ctx, site, date)
	if err != nil {
		s.logger.Error("get attendance entries failed", zap.Error(err))
		return nil, err
	}

	res := make([]ManpowerResponse, len(entries))
	for i, e := range entries {
		res[i] = mapToResponse(e)
	}
	return res, nil
}

func (s *service) ResetAll(ctx context.Context) error {
	rid := contextutil.GetRequestID(ctx)
	if err := s.repo.DeleteAll(ctx); err != nil {
		s.logger.Error("reset attendance ledger failed",
			zap.String("request_id", rid),
			zap.Error(err),
		)
		return err
	}

	s.logger.Info("attendance ledger reset", zap.String("request_id", rid))
	return nil
}

func mapToResponse(e ManpowerEntry) ManpowerResponse {
	return ManpowerResponse{
		ID:           e.ID.String(),
		Date:         e.Date.Format("2006-01-02"),
		Site:         e.Site,
		Department:   e.Department,
		Designation:  e.Designation,
		SkillLevel:   e.SkillLevel,
		Scope:        e.Scope,
		Present:      e.Present,
		Absent:       e.Absent,
		WeeklyOff:    e.WeeklyOff,
		Overtime:     e.Overtime,
		FillRatio:    e.FillRatio(),
		AbsenceRatio: e.AbsenceRatio(),
		Remarks:      e.Remarks,
	}
}
