package services

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-spin-settlement/internal/logger"
	"github.com/sbilibin2017/gw-spin-settlement/internal/metrics"
	"github.com/sbilibin2017/gw-spin-settlement/internal/models"
)

//go:generate mockgen -source=audit.go -destination=mock_audit_test.go -package=services

var (
	ErrSpinNotFound = errors.New("spin not found")
	ErrForbidden    = errors.New("forbidden")
)

// SpinReader reads persisted spin records.
type SpinReader interface {
	GetByID(ctx context.Context, spinID uuid.UUID) (*models.SpinRecordDB, error)                                 // Returns sql.ErrNoRows when absent
	ListRecent(ctx context.Context, userID uuid.UUID, limit int) ([]models.SpinRecordDB, error)                  // Newest first
	ListSince(ctx context.Context, since time.Time, afterID uuid.UUID, limit int) ([]models.SpinRecordDB, error) // Oldest first, after the (since, afterID) cursor
}

// RecordVerifier checks the attestation of a spin record.
type RecordVerifier interface {
	VerifyRecord(rec *models.SpinRecordDB) error
}

// AuditService re-verifies settled spins without re-running the resolver.
type AuditService struct {
	spins    SpinReader
	verifier RecordVerifier
	activity ActivityWriter
	metrics  *metrics.Metrics
	window   time.Duration
	batch    int
	now      func() time.Time
}

// NewAuditService creates a new AuditService that checks the spins of the
// last window on every Run.
func NewAuditService(spins SpinReader, verifier RecordVerifier, activity ActivityWriter, m *metrics.Metrics, window time.Duration) *AuditService {
	if window <= 0 {
		window = 15 * time.Minute
	}
	return &AuditService{
		spins:    spins,
		verifier: verifier,
		activity: activity,
		metrics:  m,
		window:   window,
		batch:    1000,
		now:      time.Now,
	}
}

// History returns the user's latest spins, newest first. limit is clamped
// to 1..100.
func (s *AuditService) History(ctx context.Context, userID uuid.UUID, limit int) ([]models.SpinRecordDB, error) {
	switch {
	case limit <= 0:
		limit = 20
	case limit > 100:
		limit = 100
	}

	recs, err := s.spins.ListRecent(ctx, userID, limit)
	if err != nil {
		logger.Log.Errorw("failed to list spins", "userID", userID, "error", err)
		return nil, err
	}
	if recs == nil {
		recs = []models.SpinRecordDB{}
	}
	return recs, nil
}

// VerifySpin reports whether a stored spin still carries a valid signature.
// Only the owner or an admin may check a spin.
func (s *AuditService) VerifySpin(ctx context.Context, spinID, requester uuid.UUID, isAdmin bool) (bool, error) {
	rec, err := s.spins.GetByID(ctx, spinID)
	if errors.Is(err, sql.ErrNoRows) {
		return false, ErrSpinNotFound
	}
	if err != nil {
		logger.Log.Errorw("failed to load spin", "spin_id", spinID, "error", err)
		return false, err
	}
	if !isAdmin && rec.UserID != requester {
		// Indistinguishable from a missing spin for other users.
		return false, ErrSpinNotFound
	}

	if err := s.verifier.VerifyRecord(rec); err != nil {
		logger.Log.Warnw("spin signature mismatch", "spin_id", spinID, "user_id", rec.UserID)
		return false, nil
	}
	return true, nil
}

// Run verifies the spins of the last window and flags every mismatch in the
// activity log. The window is read in batches, oldest first, up to the time
// the run started. It returns how many records were checked and how many
// failed.
func (s *AuditService) Run(ctx context.Context) (checked, mismatched int, err error) {
	until := s.now()
	since := until.Add(-s.window)

	cursorAt, cursorID := since, uuid.Nil
	for {
		recs, err := s.spins.ListSince(ctx, cursorAt, cursorID, s.batch)
		if err != nil {
			logger.Log.Errorw("audit failed to list spins", "since", since, "cursor", cursorAt, "checked", checked, "error", err)
			return checked, mismatched, err
		}

		for i := range recs {
			rec := &recs[i]
			if rec.CreatedAt.After(until) {
				recs = nil
				break
			}
			checked++
			if !s.verify(ctx, rec) {
				mismatched++
			}
			cursorAt, cursorID = rec.CreatedAt, rec.SpinID
		}

		if len(recs) < s.batch {
			break
		}
	}

	logger.Log.Infow("audit finished", "since", since, "until", until, "checked", checked, "mismatched", mismatched)
	return checked, mismatched, nil
}

// verify checks one record and reports a mismatch. It returns false when
// the signature does not match.
func (s *AuditService) verify(ctx context.Context, rec *models.SpinRecordDB) bool {
	if s.verifier.VerifyRecord(rec) == nil {
		return true
	}

	s.metrics.ObserveSignatureMismatch()
	logger.Log.Errorw("spin signature mismatch",
		"spin_id", rec.SpinID,
		"user_id", rec.UserID,
		"outcome", rec.OutcomeID.String(),
		"amount", rec.Amount,
	)

	entry := &models.ActivityLogDB{
		UserID: rec.UserID,
		Type:   models.ActivitySignatureMismatch,
		Details: detailsJSON(map[string]any{
			"spin_id":      rec.SpinID,
			"outcome_id":   rec.OutcomeID,
			"amount":       rec.Amount,
			"signed_at_ms": rec.SignedAtMillis,
		}),
		IsSuspicious: true,
	}
	if err := s.activity.Save(ctx, entry); err != nil {
		logger.Log.Errorw("failed to record signature mismatch", "spin_id", rec.SpinID, "error", err)
	}
	return false
}
