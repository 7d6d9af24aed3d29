package models

import (
	"database/sql/driver"
	"fmt"
)

// OutcomeID identifies one segment kind of the wheel.
// The set is closed: adding a segment kind requires a new constant here.
type OutcomeID uint8

const (
	OutcomeLoss OutcomeID = iota + 1
	OutcomeNearWin
	OutcomeSmallWin
	OutcomeMediumWin
	OutcomeBigWin
	OutcomeJackpot
)

// AllOutcomes lists every known outcome in declaration order.
var AllOutcomes = []OutcomeID{
	OutcomeLoss,
	OutcomeNearWin,
	OutcomeSmallWin,
	OutcomeMediumWin,
	OutcomeBigWin,
	OutcomeJackpot,
}

func (o OutcomeID) String() string {
	switch o {
	case OutcomeLoss:
		return "loss"
	case OutcomeNearWin:
		return "near_win"
	case OutcomeSmallWin:
		return "small_win"
	case OutcomeMediumWin:
		return "medium_win"
	case OutcomeBigWin:
		return "big_win"
	case OutcomeJackpot:
		return "jackpot"
	default:
		return fmt.Sprintf("outcome(%d)", uint8(o))
	}
}

// Valid reports whether o is one of the declared outcomes.
func (o OutcomeID) Valid() bool {
	return o >= OutcomeLoss && o <= OutcomeJackpot
}

// ParseOutcomeID converts the wire name of an outcome into its OutcomeID.
func ParseOutcomeID(s string) (OutcomeID, error) {
	for _, o := range AllOutcomes {
		if o.String() == s {
			return o, nil
		}
	}
	return 0, fmt.Errorf("unknown outcome %q", s)
}

func (o OutcomeID) MarshalText() ([]byte, error) {
	if !o.Valid() {
		return nil, fmt.Errorf("invalid outcome %d", uint8(o))
	}
	return []byte(o.String()), nil
}

func (o *OutcomeID) UnmarshalText(text []byte) error {
	parsed, err := ParseOutcomeID(string(text))
	if err != nil {
		return err
	}
	*o = parsed
	return nil
}

// Value stores the outcome as its wire name.
func (o OutcomeID) Value() (driver.Value, error) {
	if !o.Valid() {
		return nil, fmt.Errorf("invalid outcome %d", uint8(o))
	}
	return o.String(), nil
}

// Scan reads an outcome stored by Value.
func (o *OutcomeID) Scan(src any) error {
	switch v := src.(type) {
	case string:
		return o.UnmarshalText([]byte(v))
	case []byte:
		return o.UnmarshalText(v)
	default:
		return fmt.Errorf("cannot scan %T into OutcomeID", src)
	}
}

// Outcome is the result of resolving one spin.
type Outcome struct {
	ID           OutcomeID `json:"outcome_id"`    // Segment kind that won
	Amount       int64     `json:"amount"`        // Signed cash delta in cents, positive = win
	SegmentIndex int       `json:"segment_index"` // Wheel-order position of the segment
}
