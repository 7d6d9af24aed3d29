package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-spin-settlement/internal/logger"
	"github.com/sbilibin2017/gw-spin-settlement/internal/models"
	"github.com/segmentio/kafka-go"
)

// ErrInvalidAmount is returned when a wallet movement is not positive.
var ErrInvalidAmount = errors.New("amount must be positive")

// Wallet movement kinds published on the transaction topic.
const (
	OperationSpinCredit        = "spin_credit"
	OperationDeposit           = "deposit"
	OperationWithdrawalRequest = "withdrawal_request"
	OperationWithdrawalApprove = "withdrawal_approve"
	OperationWithdrawalReject  = "withdrawal_reject"
)

// WalletService serves the deposit and withdrawal collaborators. Every
// movement goes through Ledger.Adjust.
type WalletService struct {
	ledger      Ledger
	activity    ActivityWriter
	tx          TxManager
	kafkaWriter KafkaWriter
	topic       string
}

// NewWalletService creates a new WalletService. kafkaWriter may be nil.
func NewWalletService(
	ledger Ledger,
	activity ActivityWriter,
	tx TxManager,
	kafkaWriter KafkaWriter,
	topic string,
) *WalletService {
	return &WalletService{
		ledger:      ledger,
		activity:    activity,
		tx:          tx,
		kafkaWriter: kafkaWriter,
		topic:       topic,
	}
}

// publishTransaction publishes a transaction to Kafka.
func (s *WalletService) publishTransaction(ctx context.Context, txn models.Transaction) {
	if s.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "transaction_id", txn.TransactionID)
		return
	}

	data, err := json.Marshal(txn)
	if err != nil {
		logger.Log.Errorw("Failed to marshal transaction for Kafka", "transaction_id", txn.TransactionID, "error", err)
		return
	}

	msg := kafka.Message{
		Topic: s.topic,
		Key:   []byte(txn.UserID),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish transaction to Kafka", "transaction_id", txn.TransactionID, "error", err)
	} else {
		logger.Log.Infow("Transaction published to Kafka", "transaction_id", txn.TransactionID, "amount", txn.Amount)
	}
}

func (s *WalletService) move(ctx context.Context, userID uuid.UUID, amount int64, operation string, delta models.WalletDelta) (*models.WalletDB, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}

	wallet, err := s.ledger.Adjust(ctx, userID, delta)
	if err != nil {
		logger.Log.Errorw("failed to adjust wallet", "userID", userID, "operation", operation, "amount", amount, "error", err)
		return nil, err
	}

	s.publishTransaction(ctx, models.Transaction{
		TransactionID: uuid.NewString(),
		Timestamp:     time.Now().Unix(),
		Amount:        amount,
		UserID:        userID.String(),
		Operation:     operation,
	})

	return wallet, nil
}

// GetWallet returns the user's wallet, creating an empty one on first access.
func (s *WalletService) GetWallet(ctx context.Context, userID uuid.UUID) (*models.WalletDB, error) {
	wallet, err := s.ledger.GetOrCreate(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get wallet", "userID", userID, "error", err)
		return nil, err
	}
	return wallet, nil
}

// CreditSpins grants spin credits after a purchase.
func (s *WalletService) CreditSpins(ctx context.Context, userID uuid.UUID, spins int64) (*models.WalletDB, error) {
	return s.move(ctx, userID, spins, OperationSpinCredit, models.WalletDelta{Spins: spins})
}

// ApproveDeposit credits an approved deposit to the available balance.
func (s *WalletService) ApproveDeposit(ctx context.Context, userID uuid.UUID, amount int64) (*models.WalletDB, error) {
	return s.move(ctx, userID, amount, OperationDeposit, models.WalletDelta{Available: amount})
}

// RequestWithdrawal reserves amount in the pending balance until review.
func (s *WalletService) RequestWithdrawal(ctx context.Context, userID uuid.UUID, amount int64, ipAddress, deviceID string) (*models.WalletDB, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}

	var wallet *models.WalletDB
	err := s.tx.Do(ctx, func(ctx context.Context) error {
		var err error
		wallet, err = s.ledger.Adjust(ctx, userID, models.WalletDelta{Available: -amount, Pending: amount})
		if err != nil {
			return err
		}

		details, _ := json.Marshal(map[string]any{"amount": amount})
		return s.activity.Save(ctx, &models.ActivityLogDB{
			UserID:    userID,
			Type:      models.ActivityWithdrawalRequest,
			Details:   string(details),
			IPAddress: ipAddress,
			DeviceID:  deviceID,
		})
	})
	if err != nil {
		logger.Log.Errorw("failed to request withdrawal", "userID", userID, "amount", amount, "error", err)
		return nil, err
	}

	s.publishTransaction(ctx, models.Transaction{
		TransactionID: uuid.NewString(),
		Timestamp:     time.Now().Unix(),
		Amount:        amount,
		UserID:        userID.String(),
		Operation:     OperationWithdrawalRequest,
	})

	return wallet, nil
}

// ApproveWithdrawal pays out a reserved amount.
func (s *WalletService) ApproveWithdrawal(ctx context.Context, userID uuid.UUID, amount int64) (*models.WalletDB, error) {
	return s.move(ctx, userID, amount, OperationWithdrawalApprove, models.WalletDelta{Pending: -amount})
}

// RejectWithdrawal returns a reserved amount to the available balance.
func (s *WalletService) RejectWithdrawal(ctx context.Context, userID uuid.UUID, amount int64) (*models.WalletDB, error) {
	return s.move(ctx, userID, amount, OperationWithdrawalReject, models.WalletDelta{Pending: -amount, Available: amount})
}
