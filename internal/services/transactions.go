package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/mkumar-dev/expense-tracker/internal/logger"
	"github.com/mkumar-dev/expense-tracker/internal/models"
	"github.com/segmentio/kafka-go"
)

var (
	ErrTransactionFieldsRequired = errors.New("type, amount, date, user and branch are required")
	ErrInvalidTransactionType    = errors.New("type must be income or expense")
	ErrNegativeAmount            = errors.New("amount must be non-negative")
	ErrInvalidDate               = errors.New("date must be formatted as YYYY-MM-DD")
	ErrMethodRequired            = errors.New("payment method is required for income")
	ErrInvalidMethod             = errors.New("unknown payment method")
	ErrCategoryRequired          = errors.New("category is required for expense")
	ErrInvalidCategory           = errors.New("unknown expense category")
	ErrTransactionNotFound       = errors.New("transaction not found")
)

// TransactionReader defines read-only operations for transactions.
type TransactionReader interface {
	GetByID(ctx context.Context, transactionID uuid.UUID) (*models.TransactionDB, error)
	List(ctx context.Context, filter models.TransactionFilter) ([]models.TransactionDB, error)
}

// TransactionWriter defines write operations for transactions.
type TransactionWriter interface {
	Save(ctx context.Context, txn *models.TransactionDB) error
	Update(ctx context.Context, txn *models.TransactionDB) (int64, error)
	Delete(ctx context.Context, transactionID uuid.UUID) (int64, error)
}

// ReportInvalidator invalidates cached analytics reports after a mutation.
type ReportInvalidator interface {
	BumpVersion(ctx context.Context) error
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// TransactionInput carries the mutable fields of a transaction.
type TransactionInput struct {
	Type     models.TransactionType
	Amount   float64
	Method   *models.PaymentMethod
	Category *models.ExpenseCategory
	Note     string
	Date     string
}

// TransactionService handles transaction CRUD and Kafka publishing.
type TransactionService struct {
	reader      TransactionReader
	writer      TransactionWriter
	invalidator ReportInvalidator
	kafkaWriter KafkaWriter
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(
	reader TransactionReader,
	writer TransactionWriter,
	invalidator ReportInvalidator,
	kafkaWriter KafkaWriter,
) *TransactionService {
	return &TransactionService{
		reader:      reader,
		writer:      writer,
		invalidator: invalidator,
		kafkaWriter: kafkaWriter,
	}
}

// validateInput enforces the data model invariant: income carries a payment
// method and no category, expense carries a category and no method.
func validateInput(in *TransactionInput) error {
	if in.Type == "" || in.Date == "" {
		return ErrTransactionFieldsRequired
	}
	if !in.Type.Valid() {
		return ErrInvalidTransactionType
	}
	if in.Amount < 0 {
		return ErrNegativeAmount
	}
	if _, err := time.Parse("2006-01-02", in.Date); err != nil {
		return ErrInvalidDate
	}

	switch in.Type {
	case models.TypeIncome:
		if in.Method == nil {
			return ErrMethodRequired
		}
		if !in.Method.Valid() {
			return ErrInvalidMethod
		}
		in.Category = nil
	case models.TypeExpense:
		if in.Category == nil {
			return ErrCategoryRequired
		}
		if !in.Category.Valid() {
			return ErrInvalidCategory
		}
		in.Method = nil
	}

	return nil
}

// publishEvent publishes a transaction mutation to Kafka. Best effort: a
// missing writer or a publish failure never fails the operation.
func (svc *TransactionService) publishEvent(ctx context.Context, operation string, txn *models.TransactionDB) {
	if svc.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "transaction_id", txn.TransactionID)
		return
	}

	event := models.TransactionEvent{
		EventID:       uuid.NewString(),
		Operation:     operation,
		TransactionID: txn.TransactionID.String(),
		BranchID:      txn.BranchID.String(),
		Type:          txn.Type,
		Amount:        txn.Amount,
		Date:          txn.Date,
		Timestamp:     time.Now().Unix(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("failed to marshal transaction event", "transaction_id", txn.TransactionID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.TransactionID),
		Value: data,
	}

	if err := svc.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish transaction event", "transaction_id", txn.TransactionID, "error", err)
	} else {
		logger.Log.Infow("transaction event published", "transaction_id", txn.TransactionID, "operation", operation)
	}
}

// invalidateReports bumps the analytics version counter. Best effort.
func (svc *TransactionService) invalidateReports(ctx context.Context) {
	if svc.invalidator == nil {
		return
	}
	if err := svc.invalidator.BumpVersion(ctx); err != nil {
		logger.Log.Errorw("failed to invalidate cached reports", "error", err)
	}
}

// Create validates and stores a new transaction, then publishes an event.
func (svc *TransactionService) Create(ctx context.Context, in TransactionInput, userID, branchID uuid.UUID) (*models.TransactionDB, error) {
	if userID == uuid.Nil || branchID == uuid.Nil {
		return nil, ErrTransactionFieldsRequired
	}
	if err := validateInput(&in); err != nil {
		return nil, err
	}

	txn := &models.TransactionDB{
		TransactionID: uuid.New(),
		Type:          in.Type,
		Amount:        in.Amount,
		Method:        in.Method,
		Category:      in.Category,
		Note:          in.Note,
		Date:          in.Date,
		UserID:        userID,
		BranchID:      branchID,
		CreatedAt:     time.Now().UTC(),
	}

	if err := svc.writer.Save(ctx, txn); err != nil {
		logger.Log.Errorw("failed to save transaction", "err", err)
		return nil, err
	}

	svc.invalidateReports(ctx)
	svc.publishEvent(ctx, "created", txn)

	return txn, nil
}

// List returns transactions matching the filter, newest first.
func (svc *TransactionService) List(ctx context.Context, filter models.TransactionFilter) ([]models.TransactionDB, error) {
	txns, err := svc.reader.List(ctx, filter)
	if err != nil {
		logger.Log.Errorw("failed to list transactions", "err", err)
		return nil, err
	}
	return txns, nil
}

// Update validates and fully replaces the mutable fields of a transaction.
func (svc *TransactionService) Update(ctx context.Context, transactionID uuid.UUID, in TransactionInput) error {
	if err := validateInput(&in); err != nil {
		return err
	}

	existing, err := svc.reader.GetByID(ctx, transactionID)
	if err != nil {
		logger.Log.Errorw("failed to get transaction", "transactionID", transactionID, "err", err)
		return err
	}
	if existing == nil {
		return ErrTransactionNotFound
	}

	existing.Type = in.Type
	existing.Amount = in.Amount
	existing.Method = in.Method
	existing.Category = in.Category
	existing.Note = in.Note
	existing.Date = in.Date

	rows, err := svc.writer.Update(ctx, existing)
	if err != nil {
		logger.Log.Errorw("failed to update transaction", "transactionID", transactionID, "err", err)
		return err
	}
	if rows == 0 {
		return ErrTransactionNotFound
	}

	svc.invalidateReports(ctx)
	svc.publishEvent(ctx, "updated", existing)

	return nil
}

// Delete removes a transaction and publishes a deletion event.
func (svc *TransactionService) Delete(ctx context.Context, transactionID uuid.UUID) error {
	existing, err := svc.reader.GetByID(ctx, transactionID)
	if err != nil {
		logger.Log.Errorw("failed to get transaction", "transactionID", transactionID, "err", err)
		return err
	}
	if existing == nil {
		return ErrTransactionNotFound
	}

	rows, err := svc.writer.Delete(ctx, transactionID)
	if err != nil {
		logger.Log.Errorw("failed to delete transaction", "transactionID", transactionID, "err", err)
		return err
	}
	if rows == 0 {
		return ErrTransactionNotFound
	}

	svc.invalidateReports(ctx)
	svc.publishEvent(ctx, "deleted", existing)

	return nil
}
