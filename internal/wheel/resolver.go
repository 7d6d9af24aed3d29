package wheel

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-spin-settlement/internal/logger"
	"github.com/sbilibin2017/gw-spin-settlement/internal/models"
)

// Source yields uniform draws in [0,1).
type Source interface {
	Float64() float64
}

// globalSource draws from the runtime's randomly seeded generator, which is
// safe for concurrent use.
type globalSource struct{}

func (globalSource) Float64() float64 { return rand.Float64() }

// DowngradePolicy decides what replaces a draw that exceeds the daily win limit.
type DowngradePolicy string

const (
	// DowngradeCap pays the largest segment that still fits the allowance.
	DowngradeCap DowngradePolicy = "cap"
	// DowngradeLoss always falls back to the loss segment.
	DowngradeLoss DowngradePolicy = "loss"
)

// ParseDowngradePolicy validates a configured policy name.
func ParseDowngradePolicy(s string) (DowngradePolicy, error) {
	switch p := DowngradePolicy(s); p {
	case DowngradeCap, DowngradeLoss:
		return p, nil
	default:
		return "", fmt.Errorf("unknown downgrade policy %q", s)
	}
}

// Config tunes adaptive steering.
type Config struct {
	LossStreakThreshold int     // Consecutive losses before winning mass grows, 0 disables
	WinStreakThreshold  int     // Consecutive wins before winning mass shrinks, 0 disables
	StreakShift         float64 // Mass moved per streak step past the threshold
	MaxShift            float64 // Upper bound on the total mass moved
}

// DefaultConfig returns the steering used when nothing is configured.
func DefaultConfig() Config {
	return Config{
		LossStreakThreshold: 3,
		WinStreakThreshold:  2,
		StreakShift:         0.05,
		MaxShift:            0.20,
	}
}

// Resolver maps a spin to a weighted outcome.
type Resolver struct {
	table     Table
	base      []float64
	lossIndex int
	winMass   float64
	cfg       Config
	src       Source
}

// NewResolver validates the table and returns a resolver drawing from src.
// A nil src uses the runtime generator.
func NewResolver(table Table, cfg Config, src Source) (*Resolver, error) {
	if err := table.Validate(); err != nil {
		return nil, err
	}
	if cfg.StreakShift < 0 || cfg.MaxShift < 0 {
		return nil, fmt.Errorf("steering shifts must not be negative")
	}
	if src == nil {
		src = globalSource{}
	}
	return &Resolver{
		table:     table,
		base:      table.Probabilities(),
		lossIndex: table.IndexOf(models.OutcomeLoss),
		winMass:   table.WinningMass(),
		cfg:       cfg,
		src:       src,
	}, nil
}

// Table returns the resolver's segment table.
func (r *Resolver) Table() Table {
	return r.table
}

// Probabilities returns the base probabilities nudged by the user's streak.
// The result is non-negative and sums to 1.
func (r *Resolver) Probabilities(stat *models.UserDailyStatDB) []float64 {
	probs := make([]float64, len(r.base))
	copy(probs, r.base)
	if stat == nil || r.winMass == 0 {
		return probs
	}

	switch {
	case r.cfg.LossStreakThreshold > 0 && stat.LossStreak >= r.cfg.LossStreakThreshold:
		steps := stat.LossStreak - r.cfg.LossStreakThreshold + 1
		shift := math.Min(float64(steps)*r.cfg.StreakShift, r.cfg.MaxShift)
		shift = math.Min(shift, probs[r.lossIndex])
		probs[r.lossIndex] -= shift
		for i, s := range r.table {
			if s.Winning() {
				probs[i] += shift * r.base[i] / r.winMass
			}
		}
	case r.cfg.WinStreakThreshold > 0 && stat.WinStreak >= r.cfg.WinStreakThreshold:
		steps := stat.WinStreak - r.cfg.WinStreakThreshold + 1
		shift := math.Min(float64(steps)*r.cfg.StreakShift, r.cfg.MaxShift)
		shift = math.Min(shift, r.winMass)
		probs[r.lossIndex] += shift
		for i, s := range r.table {
			if s.Winning() {
				probs[i] -= shift * r.base[i] / r.winMass
			}
		}
	}

	return normalize(probs)
}

func normalize(probs []float64) []float64 {
	var sum float64
	for i, p := range probs {
		if p < 0 {
			probs[i] = 0
			continue
		}
		sum += p
	}
	if sum == 0 {
		return probs
	}
	for i := range probs {
		probs[i] /= sum
	}
	return probs
}

// Pick walks probs in wheel order and returns the index whose
// [lower, upper) interval contains draw.
func Pick(probs []float64, draw float64) int {
	var upper float64
	last := -1
	for i, p := range probs {
		if p <= 0 {
			continue
		}
		upper += p
		last = i
		if draw < upper {
			return i
		}
	}
	// Rounding can leave the accumulated mass a hair below 1.
	return last
}

// Resolve draws one outcome for the user. It is called exactly once per spin.
func (r *Resolver) Resolve(userID uuid.UUID, stat *models.UserDailyStatDB) models.Outcome {
	probs := r.Probabilities(stat)
	draw := r.src.Float64()
	idx := Pick(probs, draw)
	seg := r.table[idx]

	logger.Log.Debugw("spin resolved",
		"user_id", userID,
		"draw", draw,
		"outcome", seg.ID.String(),
		"segment_index", idx,
	)

	return models.Outcome{ID: seg.ID, Amount: seg.Amount, SegmentIndex: idx}
}

// Downgrade enforces the remaining daily allowance on a drawn outcome.
// remaining < 0 means the user has no limit. The returned flag is true when
// the outcome was replaced.
func (r *Resolver) Downgrade(o models.Outcome, remaining int64, policy DowngradePolicy) (models.Outcome, bool) {
	if remaining < 0 || o.Amount <= remaining {
		return o, false
	}

	fallback := models.Outcome{
		ID:           models.OutcomeLoss,
		Amount:       r.table[r.lossIndex].Amount,
		SegmentIndex: r.lossIndex,
	}
	if policy != DowngradeCap {
		return fallback, true
	}

	best := -1
	for i, s := range r.table {
		if !s.Winning() || s.Amount > remaining || s.Amount >= o.Amount {
			continue
		}
		if best < 0 || s.Amount > r.table[best].Amount {
			best = i
		}
	}
	if best < 0 {
		return fallback, true
	}
	return models.Outcome{ID: r.table[best].ID, Amount: r.table[best].Amount, SegmentIndex: best}, true
}

// RotationDegrees is the presentation angle for landing on segment index of
// an n-segment wheel: five full turns plus the offset that puts the
// segment's centre under the pointer.
func RotationDegrees(index, n int) float64 {
	if n <= 0 {
		return 0
	}
	segAngle := 360 / float64(n)
	return 5*360 + (360 - (float64(index)*segAngle + segAngle/2))
}
