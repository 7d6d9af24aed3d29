package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-spin-settlement/internal/guard"
	"github.com/sbilibin2017/gw-spin-settlement/internal/logger"
	"github.com/sbilibin2017/gw-spin-settlement/internal/metrics"
	"github.com/sbilibin2017/gw-spin-settlement/internal/models"
	"github.com/sbilibin2017/gw-spin-settlement/internal/wheel"
	"github.com/segmentio/kafka-go"
)

//go:generate mockgen -source=spin.go -destination=mock_spin_test.go -package=services

// UserReader reads the identity and status of a user.
type UserReader interface {
	GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error) // Returns sql.ErrNoRows for an unknown user
}

// Ledger is the wallet mutation primitive.
type Ledger interface {
	GetOrCreate(ctx context.Context, userID uuid.UUID) (*models.WalletDB, error)                      // Returns the wallet, creating it on first access
	Lock(ctx context.Context, userID uuid.UUID) (*models.WalletDB, error)                             // Like GetOrCreate, holding the row until the transaction ends
	Adjust(ctx context.Context, userID uuid.UUID, delta models.WalletDelta) (*models.WalletDB, error) // Applies delta atomically, models.ErrInsufficientFunds on underflow
}

// SpinStore persists and reads spin records.
type SpinStore interface {
	Save(ctx context.Context, rec *models.SpinRecordDB) error                                   // Appends a spin record
	GetLastSpinTime(ctx context.Context, userID uuid.UUID) (*time.Time, error)                  // Returns nil when the user never spun
	ListRecent(ctx context.Context, userID uuid.UUID, limit int) ([]models.SpinRecordDB, error) // Newest first
}

// StatsStore maintains the daily counters.
type StatsStore interface {
	GetUserDailyStat(ctx context.Context, userID uuid.UUID, day time.Time) (*models.UserDailyStatDB, error)
	ApplyUserSpin(ctx context.Context, userID uuid.UUID, day time.Time, tally models.SpinTally) (*models.UserDailyStatDB, error)
	ApplyDailySpin(ctx context.Context, day time.Time, tally models.SpinTally, firstSpinOfUser bool) error
}

// ActivityWriter appends to the security trail.
type ActivityWriter interface {
	Save(ctx context.Context, entry *models.ActivityLogDB) error
}

// LastSpinCache caches the time of each user's latest spin.
type LastSpinCache interface {
	GetLastSpin(ctx context.Context, userID uuid.UUID) (time.Time, bool, error) // found is false on a miss
	SetLastSpin(ctx context.Context, userID uuid.UUID, at time.Time) error
}

// TxManager runs a function inside one database transaction.
type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// OutcomeResolver draws and caps outcomes.
type OutcomeResolver interface {
	Resolve(userID uuid.UUID, stat *models.UserDailyStatDB) models.Outcome
	Downgrade(o models.Outcome, remaining int64, policy wheel.DowngradePolicy) (models.Outcome, bool)
	Table() wheel.Table
}

// Signer attests settled outcomes.
type Signer interface {
	Sign(userID uuid.UUID, outcome models.OutcomeID, amount, timestampMillis int64) string
}

// SpinGuard enforces the cooldown and flags abnormal patterns.
type SpinGuard interface {
	CheckCooldown(userID uuid.UUID, lastSpin *time.Time) bool
	RemainingCooldown(lastSpin *time.Time) time.Duration
	DetectSuspicious(userID uuid.UUID, recent []models.SpinRecordDB) (bool, []string)
}

// SpinConfig holds the settlement policy.
type SpinConfig struct {
	DailyWinLimit   int64                 // Default per-user limit in cents, 0 = unlimited
	DowngradePolicy wheel.DowngradePolicy // What replaces a draw over the limit
	BigWinThreshold int64                 // Payouts at or above it are broadcast, 0 = jackpot only
	RecentWindow    int                   // Spins inspected by the fraud heuristics
	SpinTopic       string
	BigWinTopic     string
}

// SpinService is the settlement orchestrator. It is the only caller of the
// ledger on behalf of a spin.
type SpinService struct {
	users    UserReader
	ledger   Ledger
	spins    SpinStore
	stats    StatsStore
	activity ActivityWriter
	cache    LastSpinCache
	tx       TxManager
	resolver OutcomeResolver
	signer   Signer
	guard    SpinGuard
	kafka    KafkaWriter
	cfg      SpinConfig
	metrics  *metrics.Metrics
	now      func() time.Time
}

// SpinOption customizes a SpinService.
type SpinOption func(*SpinService)

// WithMetrics records settlement metrics.
func WithMetrics(m *metrics.Metrics) SpinOption {
	return func(s *SpinService) { s.metrics = m }
}

// WithSpinClock overrides the clock used for timestamps and calendar days.
func WithSpinClock(now func() time.Time) SpinOption {
	return func(s *SpinService) { s.now = now }
}

// NewSpinService creates a new SpinService. cache and kafka may be nil.
func NewSpinService(
	users UserReader,
	ledger Ledger,
	spins SpinStore,
	stats StatsStore,
	activity ActivityWriter,
	cache LastSpinCache,
	tx TxManager,
	resolver OutcomeResolver,
	signer Signer,
	spinGuard SpinGuard,
	kafkaWriter KafkaWriter,
	cfg SpinConfig,
	opts ...SpinOption,
) *SpinService {
	if cfg.DowngradePolicy == "" {
		cfg.DowngradePolicy = wheel.DowngradeCap
	}
	if cfg.RecentWindow <= 0 {
		cfg.RecentWindow = 20
	}
	s := &SpinService{
		users:    users,
		ledger:   ledger,
		spins:    spins,
		stats:    stats,
		activity: activity,
		cache:    cache,
		tx:       tx,
		resolver: resolver,
		signer:   signer,
		guard:    spinGuard,
		kafka:    kafkaWriter,
		cfg:      cfg,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Spin settles one spin for the user. Every rejection is a *SpinError.
// Blocked, NoSpinsAvailable and CooldownActive are returned before anything
// is drawn or written. Spins of one user settle one at a time under the
// wallet row lock. Once an outcome is drawn the request runs to the end
// regardless of ctx cancellation, and the call is not idempotent: a retry is
// a fresh draw.
func (s *SpinService) Spin(ctx context.Context, req models.SpinRequest) (*models.SpinResult, error) {
	start := s.now()

	res, err := s.spin(ctx, req)
	if err != nil {
		var spinErr *SpinError
		if errors.As(err, &spinErr) {
			s.metrics.ObserveRejected(spinErr.Code)
		}
		return nil, err
	}

	s.metrics.ObserveSettled(res.OutcomeID.String(), res.Amount, s.now().Sub(start))
	return res, nil
}

func (s *SpinService) spin(ctx context.Context, req models.SpinRequest) (*models.SpinResult, error) {
	userID := req.UserID

	user, err := s.users.GetByID(ctx, userID)
	if errors.Is(err, sql.ErrNoRows) {
		logger.Log.Warnw("spin rejected", "user_id", userID, "reason", "unknown user")
		return nil, blockedError("account not found")
	}
	if err != nil {
		logger.Log.Errorw("failed to load user", "user_id", userID, "error", err)
		return nil, internalError(err)
	}
	if user.IsBlocked {
		logger.Log.Infow("spin rejected", "user_id", userID, "reason", CodeBlocked)
		return nil, blockedError(user.BlockReason)
	}

	var (
		rec        *models.SpinRecordDB
		after      *models.WalletDB
		drawn      models.Outcome
		downgraded bool
		suspicious bool
	)

	// The wallet row lock serializes every check and write of one user's
	// spins. The transaction itself outlives the request once an outcome is
	// drawn, so cancellation is honored only up to the draw.
	reqCtx := ctx
	ctx = context.WithoutCancel(ctx)
	err = s.tx.Do(ctx, func(ctx context.Context) error {
		wallet, err := s.ledger.Lock(ctx, userID)
		if err != nil {
			logger.Log.Errorw("failed to lock wallet", "user_id", userID, "error", err)
			return internalError(err)
		}
		if wallet.AvailableSpins <= 0 {
			logger.Log.Infow("spin rejected", "user_id", userID, "reason", CodeNoSpinsAvailable)
			return noSpinsError()
		}

		lastSpin, err := s.lastSpinTime(ctx, userID)
		if err != nil {
			logger.Log.Errorw("failed to load last spin", "user_id", userID, "error", err)
			return internalError(err)
		}
		if !s.guard.CheckCooldown(userID, lastSpin) {
			retryAfter := max(1, guard.RetryAfterSeconds(s.guard.RemainingCooldown(lastSpin)))
			logger.Log.Infow("spin rejected", "user_id", userID, "reason", CodeCooldownActive, "retry_after", retryAfter)
			return cooldownError(retryAfter)
		}

		day := models.DayOf(s.now())
		stat, err := s.stats.GetUserDailyStat(ctx, userID, day)
		if err != nil {
			logger.Log.Errorw("failed to load daily stat", "user_id", userID, "error", err)
			return internalError(err)
		}

		recent, err := s.spins.ListRecent(ctx, userID, s.cfg.RecentWindow)
		if err != nil {
			// Fraud heuristics are advisory, settle without them.
			logger.Log.Warnw("failed to load recent spins", "user_id", userID, "error", err)
			recent = nil
		}

		if err := reqCtx.Err(); err != nil {
			logger.Log.Infow("spin abandoned before draw", "user_id", userID, "error", err)
			return internalError(err)
		}

		// Past this point the draw exists and must be accounted for.
		drawn = s.resolver.Resolve(userID, stat)
		var paid models.Outcome
		paid, downgraded = s.resolver.Downgrade(drawn, s.remainingAllowance(user, stat), s.cfg.DowngradePolicy)

		signedAt := s.now()
		tsMillis := signedAt.UnixMilli()
		rec = &models.SpinRecordDB{
			SpinID:               uuid.New(),
			UserID:               userID,
			OutcomeID:            paid.ID,
			DrawnOutcomeID:       drawn.ID,
			Amount:               paid.Amount,
			SegmentIndex:         paid.SegmentIndex,
			FinalRotationDegrees: wheel.RotationDegrees(paid.SegmentIndex, len(s.resolver.Table())),
			Signature:            s.signer.Sign(userID, paid.ID, paid.Amount, tsMillis),
			SignedAtMillis:       tsMillis,
			IPAddress:            req.IPAddress,
			DeviceID:             req.DeviceID,
			UserAgent:            req.UserAgent,
			CreatedAt:            signedAt,
		}

		var reasons []string
		suspicious, reasons = s.guard.DetectSuspicious(userID, append([]models.SpinRecordDB{*rec}, recent...))
		tally := tallyOf(paid)

		after, err = s.ledger.Adjust(ctx, userID, models.WalletDelta{
			Available: paid.Amount,
			Spins:     -1,
			Winnings:  tally.Winnings,
			Losses:    tally.Losses,
		})
		if err != nil {
			return err
		}

		rec.BalanceAfter = after.AvailableBalance
		rec.BalanceBefore = after.AvailableBalance - paid.Amount
		if err := s.spins.Save(ctx, rec); err != nil {
			return err
		}

		userStat, err := s.stats.ApplyUserSpin(ctx, userID, day, tally)
		if err != nil {
			return err
		}
		if err := s.stats.ApplyDailySpin(ctx, day, tally, userStat.SpinCount == 1); err != nil {
			return err
		}

		if err := s.activity.Save(ctx, spinActivity(rec, suspicious, reasons)); err != nil {
			return err
		}
		if downgraded {
			return s.activity.Save(ctx, downgradeActivity(rec))
		}
		return nil
	})

	var spinErr *SpinError
	switch {
	case errors.As(err, &spinErr):
		return nil, spinErr
	case errors.Is(err, models.ErrInsufficientFunds):
		logger.Log.Warnw("spin credit consumed concurrently", "user_id", userID, "spin_id", rec.SpinID)
		return nil, insufficientFundsError()
	case err != nil && rec != nil:
		s.recordAnomaly(ctx, rec, err)
		return nil, internalError(err)
	case err != nil:
		logger.Log.Errorw("failed to open settlement", "user_id", userID, "error", err)
		return nil, internalError(err)
	}

	if downgraded {
		s.metrics.ObserveDowngrade()
		logger.Log.Infow("payout capped by daily win limit",
			"user_id", userID,
			"spin_id", rec.SpinID,
			"drawn", drawn.ID.String(),
			"paid", rec.OutcomeID.String(),
		)
	}

	logger.Log.Infow("spin settled",
		"user_id", userID,
		"spin_id", rec.SpinID,
		"outcome", rec.OutcomeID.String(),
		"amount", rec.Amount,
		"balance_before", rec.BalanceBefore,
		"balance_after", rec.BalanceAfter,
		"suspicious", suspicious,
	)

	s.afterCommit(ctx, rec)

	return &models.SpinResult{
		SpinID:               rec.SpinID,
		OutcomeID:            rec.OutcomeID,
		Amount:               rec.Amount,
		SegmentIndex:         rec.SegmentIndex,
		FinalRotationDegrees: rec.FinalRotationDegrees,
		Signature:            rec.Signature,
		Timestamp:            rec.SignedAtMillis,
		Balance:              after.AvailableBalance,
		AvailableSpins:       after.AvailableSpins,
	}, nil
}

// lastSpinTime consults the cache first and falls back to the spin records.
// A cached time is trusted only while it still blocks the spin. An entry left
// behind by a failed refresh can be older than the latest record.
func (s *SpinService) lastSpinTime(ctx context.Context, userID uuid.UUID) (*time.Time, error) {
	if s.cache != nil {
		last, found, err := s.cache.GetLastSpin(ctx, userID)
		switch {
		case err != nil:
			logger.Log.Warnw("last spin cache unavailable", "user_id", userID, "error", err)
		case found && s.guard.RemainingCooldown(&last) > 0:
			return &last, nil
		}
	}
	return s.spins.GetLastSpinTime(ctx, userID)
}

// remainingAllowance is what the user may still win today, -1 for no limit.
func (s *SpinService) remainingAllowance(user *models.UserDB, stat *models.UserDailyStatDB) int64 {
	limit := s.cfg.DailyWinLimit
	if user.DailyWinLimit != nil {
		limit = *user.DailyWinLimit
	}
	if limit <= 0 {
		return -1
	}
	remaining := limit - stat.Winnings
	if remaining < 0 {
		return 0
	}
	return remaining
}

func tallyOf(o models.Outcome) models.SpinTally {
	t := models.SpinTally{Jackpot: o.ID == models.OutcomeJackpot}
	switch {
	case o.Amount > 0:
		t.Win = true
		t.Winnings = o.Amount
	case o.Amount < 0:
		t.Losses = -o.Amount
	}
	return t
}

func detailsJSON(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		return "{}"
	}
	return string(data)
}

func spinActivity(rec *models.SpinRecordDB, suspicious bool, reasons []string) *models.ActivityLogDB {
	return &models.ActivityLogDB{
		UserID: rec.UserID,
		Type:   models.ActivitySpin,
		Details: detailsJSON(map[string]any{
			"spin_id":    rec.SpinID,
			"outcome_id": rec.OutcomeID,
			"amount":     rec.Amount,
			"reasons":    reasons,
		}),
		IPAddress:    rec.IPAddress,
		DeviceID:     rec.DeviceID,
		IsSuspicious: suspicious,
	}
}

func downgradeActivity(rec *models.SpinRecordDB) *models.ActivityLogDB {
	return &models.ActivityLogDB{
		UserID: rec.UserID,
		Type:   models.ActivityDailyLimitDowngrade,
		Details: detailsJSON(map[string]any{
			"spin_id": rec.SpinID,
			"drawn":   rec.DrawnOutcomeID,
			"paid":    rec.OutcomeID,
			"amount":  rec.Amount,
		}),
		IPAddress: rec.IPAddress,
		DeviceID:  rec.DeviceID,
	}
}

// recordAnomaly reports a drawn outcome that could not be settled. The
// transaction was rolled back, so the wallet did not move.
func (s *SpinService) recordAnomaly(ctx context.Context, rec *models.SpinRecordDB, cause error) {
	logger.Log.Errorw("settlement anomaly",
		"user_id", rec.UserID,
		"spin_id", rec.SpinID,
		"outcome", rec.OutcomeID.String(),
		"amount", rec.Amount,
		"signature", rec.Signature,
		"signed_at_ms", rec.SignedAtMillis,
		"error", cause,
	)

	entry := &models.ActivityLogDB{
		UserID: rec.UserID,
		Type:   models.ActivitySettlementAnomaly,
		Details: detailsJSON(map[string]any{
			"spin_id":      rec.SpinID,
			"outcome_id":   rec.OutcomeID,
			"amount":       rec.Amount,
			"signed_at_ms": rec.SignedAtMillis,
			"error":        cause.Error(),
		}),
		IPAddress:    rec.IPAddress,
		DeviceID:     rec.DeviceID,
		IsSuspicious: true,
	}
	if err := s.activity.Save(ctx, entry); err != nil {
		logger.Log.Errorw("failed to record settlement anomaly", "spin_id", rec.SpinID, "error", err)
	}
}

// afterCommit refreshes the cooldown cache and publishes events. Failures
// are logged and never undo the settlement.
func (s *SpinService) afterCommit(ctx context.Context, rec *models.SpinRecordDB) {
	if s.cache != nil {
		if err := s.cache.SetLastSpin(ctx, rec.UserID, rec.CreatedAt); err != nil {
			logger.Log.Warnw("failed to cache last spin", "user_id", rec.UserID, "error", err)
		}
	}

	s.publish(ctx, s.cfg.SpinTopic, rec.UserID.String(), models.SpinEvent{
		SpinID:       rec.SpinID.String(),
		UserID:       rec.UserID.String(),
		OutcomeID:    rec.OutcomeID,
		Amount:       rec.Amount,
		BalanceAfter: rec.BalanceAfter,
		Timestamp:    rec.SignedAtMillis,
	})

	if s.isBigWin(rec) {
		s.publish(ctx, s.cfg.BigWinTopic, rec.UserID.String(), models.BigWinEvent{
			UserID:    rec.UserID.String(),
			Amount:    rec.Amount,
			OutcomeID: rec.OutcomeID,
			Timestamp: rec.SignedAtMillis,
		})
	}
}

func (s *SpinService) isBigWin(rec *models.SpinRecordDB) bool {
	if rec.OutcomeID == models.OutcomeJackpot {
		return true
	}
	return s.cfg.BigWinThreshold > 0 && rec.Amount >= s.cfg.BigWinThreshold
}

// publish writes one event to topic.
func (s *SpinService) publish(ctx context.Context, topic, key string, event any) {
	if s.kafka == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "topic", topic)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal event for Kafka", "topic", topic, "error", err)
		return
	}

	msg := kafka.Message{
		Topic: topic,
		Key:   []byte(key),
		Value: data,
	}
	if err := s.kafka.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish event to Kafka", "topic", topic, "error", err)
	} else {
		logger.Log.Infow("Event published to Kafka", "topic", topic, "key", key)
	}
}
