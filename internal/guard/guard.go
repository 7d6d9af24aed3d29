// Package guard holds the cooldown gate and the soft fraud heuristics of the
// spin path.
package guard

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-spin-settlement/internal/logger"
	"github.com/sbilibin2017/gw-spin-settlement/internal/models"
)

// Suspicion reasons recorded on the activity trail.
const (
	ReasonWinRate      = "abnormal_win_rate"
	ReasonCadence      = "impossible_cadence"
	ReasonAddressChurn = "ip_churn"
	ReasonDeviceChurn  = "device_churn"
)

// Config tunes the guard.
type Config struct {
	Cooldown        time.Duration // Minimum gap between two spins of one user
	ExpectedWinRate float64       // Share of draws that pay out under the configured odds
	WinRateMargin   float64       // Tolerated excess over ExpectedWinRate
	MinSample       int           // Spins needed before the win rate is judged
	CadenceWindow   int           // Spins packed inside one cooldown that count as impossible
	MaxAddresses    int           // Distinct IPs tolerated in the recent window
	MaxDevices      int           // Distinct device ids tolerated in the recent window
}

// DefaultConfig returns the guard defaults for a given cooldown and odds.
func DefaultConfig(cooldown time.Duration, expectedWinRate float64) Config {
	return Config{
		Cooldown:        cooldown,
		ExpectedWinRate: expectedWinRate,
		WinRateMargin:   0.25,
		MinSample:       10,
		CadenceWindow:   3,
		MaxAddresses:    3,
		MaxDevices:      3,
	}
}

// Guard enforces the cooldown and flags suspicious activity.
type Guard struct {
	cfg Config
	now func() time.Time
}

// Option configures a Guard.
type Option func(*Guard)

// WithClock replaces the wall clock.
func WithClock(now func() time.Time) Option {
	return func(g *Guard) { g.now = now }
}

// New creates a Guard.
func New(cfg Config, opts ...Option) *Guard {
	g := &Guard{cfg: cfg, now: time.Now}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Cooldown returns the configured minimum gap between spins.
func (g *Guard) Cooldown() time.Duration {
	return g.cfg.Cooldown
}

// CheckCooldown reports whether the user may spin again. A nil lastSpin
// means the user has never spun.
func (g *Guard) CheckCooldown(userID uuid.UUID, lastSpin *time.Time) bool {
	remaining := g.RemainingCooldown(lastSpin)
	if remaining > 0 {
		logger.Log.Infow("cooldown active", "user_id", userID, "remaining", remaining)
		return false
	}
	return true
}

// RemainingCooldown is how long the user still has to wait, zero if none.
func (g *Guard) RemainingCooldown(lastSpin *time.Time) time.Duration {
	if lastSpin == nil || lastSpin.IsZero() {
		return 0
	}
	elapsed := g.now().Sub(*lastSpin)
	if elapsed >= g.cfg.Cooldown {
		return 0
	}
	return g.cfg.Cooldown - elapsed
}

// DetectSuspicious inspects the user's recent spins, newest first, and
// returns whether they look abnormal along with the reasons. It never blocks
// a spin; callers only record the result.
func (g *Guard) DetectSuspicious(userID uuid.UUID, recent []models.SpinRecordDB) (bool, []string) {
	var reasons []string

	if g.cfg.MinSample > 0 && len(recent) >= g.cfg.MinSample {
		wins := 0
		for _, r := range recent {
			if r.Amount > 0 {
				wins++
			}
		}
		rate := float64(wins) / float64(len(recent))
		if rate > g.cfg.ExpectedWinRate+g.cfg.WinRateMargin {
			reasons = append(reasons, ReasonWinRate)
		}
	}

	if g.cfg.CadenceWindow > 1 && len(recent) >= g.cfg.CadenceWindow {
		for i := 0; i+g.cfg.CadenceWindow-1 < len(recent); i++ {
			newest := recent[i].CreatedAt
			oldest := recent[i+g.cfg.CadenceWindow-1].CreatedAt
			if newest.Sub(oldest) < g.cfg.Cooldown {
				reasons = append(reasons, ReasonCadence)
				break
			}
		}
	}

	if over(distinct(recent, func(r models.SpinRecordDB) string { return r.IPAddress }), g.cfg.MaxAddresses) {
		reasons = append(reasons, ReasonAddressChurn)
	}
	if over(distinct(recent, func(r models.SpinRecordDB) string { return r.DeviceID }), g.cfg.MaxDevices) {
		reasons = append(reasons, ReasonDeviceChurn)
	}

	if len(reasons) > 0 {
		logger.Log.Warnw("suspicious spin pattern", "user_id", userID, "reasons", reasons, "sample", len(recent))
	}
	return len(reasons) > 0, reasons
}

func distinct(recent []models.SpinRecordDB, key func(models.SpinRecordDB) string) int {
	seen := make(map[string]struct{}, len(recent))
	for _, r := range recent {
		if k := key(r); k != "" {
			seen[k] = struct{}{}
		}
	}
	return len(seen)
}

func over(n, limit int) bool {
	return limit > 0 && n > limit
}

// RetryAfterSeconds rounds a remaining cooldown up to whole seconds.
func RetryAfterSeconds(d time.Duration) int {
	if d <= 0 {
		return 0
	}
	secs := int(d / time.Second)
	if d%time.Second != 0 {
		secs++
	}
	return secs
}

func (c Config) String() string {
	return fmt.Sprintf("cooldown=%s win_rate=%.3f+%.3f", c.Cooldown, c.ExpectedWinRate, c.WinRateMargin)
}
