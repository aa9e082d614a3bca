package models

import (
	"time"

	"github.com/google/uuid"
)

// TransactionType distinguishes money coming in from money going out.
type TransactionType string

const (
	TypeIncome  TransactionType = "income"
	TypeExpense TransactionType = "expense"
)

// Valid reports whether the type is one of the known values.
func (t TransactionType) Valid() bool {
	return t == TypeIncome || t == TypeExpense
}

// PaymentMethod is the channel an income transaction arrived through.
type PaymentMethod string

const (
	MethodCash         PaymentMethod = "cash"
	MethodGPay         PaymentMethod = "gpay"
	MethodBankTransfer PaymentMethod = "bank_transfer"
)

// Valid reports whether the method is one of the known values.
func (m PaymentMethod) Valid() bool {
	switch m {
	case MethodCash, MethodGPay, MethodBankTransfer:
		return true
	}
	return false
}

// ExpenseCategory classifies an expense transaction.
type ExpenseCategory string

const (
	CategoryRent           ExpenseCategory = "Rent"
	CategoryUtilities      ExpenseCategory = "Utilities"
	CategorySalaries       ExpenseCategory = "Salaries"
	CategorySupplies       ExpenseCategory = "Supplies"
	CategoryMaintenance    ExpenseCategory = "Maintenance"
	CategoryTransportation ExpenseCategory = "Transportation"
	CategoryMarketing      ExpenseCategory = "Marketing"
	CategoryOther          ExpenseCategory = "Other"
)

// Valid reports whether the category is one of the known values.
func (c ExpenseCategory) Valid() bool {
	switch c {
	case CategoryRent, CategoryUtilities, CategorySalaries, CategorySupplies,
		CategoryMaintenance, CategoryTransportation, CategoryMarketing, CategoryOther:
		return true
	}
	return false
}

// TransactionDB represents a transaction record in the database.
// Exactly one of Method/Category is non-nil, determined by Type.
// Date is the business day the transaction is attributed to, not the
// creation time; it is stored as YYYY-MM-DD so lexicographic order is
// chronological order.
type TransactionDB struct {
	TransactionID uuid.UUID        `json:"id" db:"id"`
	Type          TransactionType  `json:"type" db:"type"`
	Amount        float64          `json:"amount" db:"amount"`
	Method        *PaymentMethod   `json:"method" db:"method"`
	Category      *ExpenseCategory `json:"category" db:"category"`
	Note          string           `json:"note" db:"note"`
	Date          string           `json:"date" db:"date"`
	UserID        uuid.UUID        `json:"userId" db:"user_id"`
	BranchID      uuid.UUID        `json:"branchId" db:"branch_id"`
	CreatedAt     time.Time        `json:"createdAt" db:"created_at"`
}

// TransactionFilter narrows a transaction listing. Nil fields impose no
// constraint; date bounds are inclusive.
type TransactionFilter struct {
	BranchID  *uuid.UUID
	StartDate *string
	EndDate   *string
	Type      *TransactionType
}

// TransactionEvent is published to Kafka after every transaction mutation.
type TransactionEvent struct {
	EventID       string          `json:"event_id"`
	Operation     string          `json:"operation"` // created, updated or deleted
	TransactionID string          `json:"transaction_id"`
	BranchID      string          `json:"branch_id"`
	Type          TransactionType `json:"type"`
	Amount        float64         `json:"amount"`
	Date          string          `json:"date"`
	Timestamp     int64           `json:"timestamp"`
}
