package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-spin-settlement/internal/logger"
	"github.com/sbilibin2017/gw-spin-settlement/internal/models"
)

//go:generate mockgen -source=report.go -destination=mock_report_test.go -package=services

// ActivityReader reads the security trail.
type ActivityReader interface {
	ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]models.ActivityLogDB, error)
}

// DailyStatReader reads the operator-wide daily aggregate.
type DailyStatReader interface {
	GetDailyStat(ctx context.Context, day time.Time) (*models.DailyStatDB, error)
}

// ReportService serves the operator views over the settlement side effects.
type ReportService struct {
	activity ActivityReader
	stats    DailyStatReader
}

func NewReportService(activity ActivityReader, stats DailyStatReader) *ReportService {
	return &ReportService{activity: activity, stats: stats}
}

// UserActivity returns the user's latest trail entries, newest first.
func (s *ReportService) UserActivity(ctx context.Context, userID uuid.UUID, limit int) ([]models.ActivityLogDB, error) {
	if limit <= 0 || limit > 100 {
		limit = 100
	}
	entries, err := s.activity.ListByUser(ctx, userID, limit)
	if err != nil {
		logger.Log.Errorw("failed to list activity", "userID", userID, "error", err)
		return nil, err
	}
	if entries == nil {
		entries = []models.ActivityLogDB{}
	}
	return entries, nil
}

// DailyStats returns the aggregate for the UTC day containing t.
func (s *ReportService) DailyStats(ctx context.Context, t time.Time) (*models.DailyStatDB, error) {
	stat, err := s.stats.GetDailyStat(ctx, models.DayOf(t))
	if err != nil {
		logger.Log.Errorw("failed to get daily stat", "day", models.DayOf(t), "error", err)
		return nil, err
	}
	return stat, nil
}
