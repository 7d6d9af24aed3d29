package models

// SpinEvent is published for every settled spin.
type SpinEvent struct {
	SpinID       string    `json:"spin_id"`
	UserID       string    `json:"user_id"`
	OutcomeID    OutcomeID `json:"outcome_id"`
	Amount       int64     `json:"amount"`
	BalanceAfter int64     `json:"balance_after"`
	Timestamp    int64     `json:"timestamp"` // Unix milliseconds, the signed timestamp
}

// BigWinEvent is the payload fanned out to real-time notification consumers.
type BigWinEvent struct {
	UserID    string    `json:"user_id"`
	Amount    int64     `json:"amount"`
	OutcomeID OutcomeID `json:"outcome_id"`
	Timestamp int64     `json:"timestamp"`
}

// Transaction represents a wallet movement made on behalf of a collaborator flow.
type Transaction struct {
	TransactionID string `json:"transaction_id"` // Unique identifier of the movement
	Timestamp     int64  `json:"timestamp"`      // Unix seconds
	Amount        int64  `json:"amount"`         // Cents or spin credits, see Operation
	UserID        string `json:"user_id"`        // Wallet owner
	Operation     string `json:"operation"`      // spin_credit, deposit, withdrawal_request, withdrawal_approve, withdrawal_reject
}
