package wheel

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/sbilibin2017/gw-spin-settlement/internal/models"
	"gopkg.in/yaml.v3"
)

// ProbabilityTolerance is how far the base probabilities may drift from 1.0.
const ProbabilityTolerance = 0.01

var (
	ErrEmptyTable          = errors.New("wheel table has no segments")
	ErrMissingLoss         = errors.New("wheel table has no loss segment")
	ErrProbabilitySum      = errors.New("wheel probabilities do not sum to 1")
	ErrNegativeProbability = errors.New("wheel probability is negative")
)

// Segment is one slice of the wheel.
type Segment struct {
	ID          models.OutcomeID `yaml:"id" json:"id"`
	Probability float64          `yaml:"probability" json:"probability"`
	Amount      int64            `yaml:"amount" json:"amount"` // Cents
}

// Winning reports whether landing on the segment pays out.
func (s Segment) Winning() bool {
	return s.Amount > 0
}

// Table is the ordered list of wheel segments. Order is the wheel order.
type Table []Segment

// DefaultTable returns the built-in wheel.
func DefaultTable() Table {
	return Table{
		{ID: models.OutcomeLoss, Probability: 0.50, Amount: 0},
		{ID: models.OutcomeNearWin, Probability: 0.22, Amount: 5},
		{ID: models.OutcomeSmallWin, Probability: 0.17, Amount: 25},
		{ID: models.OutcomeMediumWin, Probability: 0.08, Amount: 100},
		{ID: models.OutcomeBigWin, Probability: 0.025, Amount: 500},
		{ID: models.OutcomeJackpot, Probability: 0.005, Amount: 5000},
	}
}

// Validate checks that every segment is a known outcome that appears once,
// that a loss segment exists and that the probabilities sum to 1.
func (t Table) Validate() error {
	if len(t) == 0 {
		return ErrEmptyTable
	}

	seen := make(map[models.OutcomeID]struct{}, len(t))
	var sum float64
	for i, s := range t {
		if !s.ID.Valid() {
			return fmt.Errorf("segment %d: unknown outcome %d", i, uint8(s.ID))
		}
		if _, dup := seen[s.ID]; dup {
			return fmt.Errorf("segment %d: duplicate outcome %s", i, s.ID)
		}
		seen[s.ID] = struct{}{}
		if s.Probability < 0 || math.IsNaN(s.Probability) {
			return fmt.Errorf("segment %d (%s): %w", i, s.ID, ErrNegativeProbability)
		}
		sum += s.Probability
	}

	if _, ok := seen[models.OutcomeLoss]; !ok {
		return ErrMissingLoss
	}
	if math.Abs(sum-1) > ProbabilityTolerance {
		return fmt.Errorf("%w: got %.4f", ErrProbabilitySum, sum)
	}
	return nil
}

// Probabilities returns the base probability vector in wheel order.
func (t Table) Probabilities() []float64 {
	probs := make([]float64, len(t))
	for i, s := range t {
		probs[i] = s.Probability
	}
	return probs
}

// WinningMass is the total base probability of paying segments.
func (t Table) WinningMass() float64 {
	var mass float64
	for _, s := range t {
		if s.Winning() {
			mass += s.Probability
		}
	}
	return mass
}

// IndexOf returns the wheel position of the outcome, or -1.
func (t Table) IndexOf(id models.OutcomeID) int {
	for i, s := range t {
		if s.ID == id {
			return i
		}
	}
	return -1
}

type tableFile struct {
	Segments Table `yaml:"segments"`
}

// LoadTable reads a segment table from a YAML file and validates it.
func LoadTable(path string) (Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseTable(data)
}

// ParseTable decodes a YAML segment table and validates it.
func ParseTable(data []byte) (Table, error) {
	var f tableFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode wheel table: %w", err)
	}
	if err := f.Segments.Validate(); err != nil {
		return nil, err
	}
	return f.Segments, nil
}
