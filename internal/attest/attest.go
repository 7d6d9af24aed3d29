// Package attest signs spin outcomes so they cannot be forged or altered
// after settlement.
package attest

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-spin-settlement/internal/models"
	"golang.org/x/crypto/hkdf"
)

const (
	keyInfo   = "gw-spin-settlement/outcome-attestation/v1"
	keySize   = 32
	separator = "|"
)

var (
	// ErrEmptySecret is returned when no signing secret is configured.
	ErrEmptySecret = errors.New("signing secret is empty")
	// ErrSignatureMismatch marks a record whose signature does not match its tuple.
	ErrSignatureMismatch = errors.New("signature mismatch")
)

// Attestor computes and checks HMAC-SHA256 signatures over outcome tuples.
// The MAC key is derived once from the configured secret and never leaves
// the struct.
type Attestor struct {
	key []byte
}

// New derives the MAC key from secret.
func New(secret string) (*Attestor, error) {
	if secret == "" {
		return nil, ErrEmptySecret
	}

	key := make([]byte, keySize)
	if _, err := io.ReadFull(hkdf.New(sha256.New, []byte(secret), nil, []byte(keyInfo)), key); err != nil {
		return nil, err
	}
	return &Attestor{key: key}, nil
}

// canonical joins the tuple in a fixed order. None of the fields can contain
// the separator: uuids are hex and dashes, outcome names are snake_case and
// the integers are base 10.
func canonical(userID uuid.UUID, outcome models.OutcomeID, amount, timestampMillis int64) []byte {
	var b strings.Builder
	b.WriteString(userID.String())
	b.WriteString(separator)
	b.WriteString(outcome.String())
	b.WriteString(separator)
	b.WriteString(strconv.FormatInt(amount, 10))
	b.WriteString(separator)
	b.WriteString(strconv.FormatInt(timestampMillis, 10))
	return []byte(b.String())
}

func (a *Attestor) mac(msg []byte) []byte {
	h := hmac.New(sha256.New, a.key)
	h.Write(msg)
	return h.Sum(nil)
}

// Sign returns the hex-encoded signature of the tuple.
func (a *Attestor) Sign(userID uuid.UUID, outcome models.OutcomeID, amount, timestampMillis int64) string {
	return hex.EncodeToString(a.mac(canonical(userID, outcome, amount, timestampMillis)))
}

// Verify reports whether signature was produced by Sign for exactly this
// tuple. Malformed signatures yield false.
func (a *Attestor) Verify(userID uuid.UUID, outcome models.OutcomeID, amount, timestampMillis int64, signature string) bool {
	if !outcome.Valid() || len(signature) != hex.EncodedLen(sha256.Size) {
		return false
	}
	got, err := hex.DecodeString(signature)
	if err != nil {
		return false
	}
	return hmac.Equal(got, a.mac(canonical(userID, outcome, amount, timestampMillis)))
}

// VerifyRecord checks a persisted spin record and returns
// ErrSignatureMismatch when it does not verify.
func (a *Attestor) VerifyRecord(r *models.SpinRecordDB) error {
	if r == nil || !a.Verify(r.UserID, r.OutcomeID, r.Amount, r.SignedAtMillis, r.Signature) {
		return ErrSignatureMismatch
	}
	return nil
}
