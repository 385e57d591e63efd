package models

import (
	"github.com/shopspring/decimal"

	"github.com/Narasimha40-dev/DAIRY/internal/record"
)

// Payment transaction states.
const (
	PaymentCompleted  = "COMPLETED"
	PaymentPending    = "PENDING"
	PaymentProcessing = "PROCESSING"
	PaymentFailed     = "FAILED"
	PaymentCancelled  = "CANCELLED"
)

// PaymentStatuses lists the transaction states in display order.
var PaymentStatuses = []string{PaymentCompleted, PaymentPending, PaymentProcessing, PaymentFailed, PaymentCancelled}

// PaymentMethods lists the accepted payment methods.
var PaymentMethods = []string{"CREDIT CARD", "DEBIT CARD", "NET BANKING", "UPI", "DIGITAL WALLET", "CASH", "CHEQUE", "BANK TRANSFER"}

// PaymentTransaction is an incoming payment.
type PaymentTransaction struct {
	ID              record.ID       `json:"id"`
	TransactionID   string          `json:"transactionId"`
	PayerName       string          `json:"payerName"`
	Amount          decimal.Decimal `json:"amount"`
	PaymentMethod   string          `json:"paymentMethod"`
	Status          string          `json:"status"`
	Description     string          `json:"description"`
	PayerEmail      string          `json:"payerEmail"`
	PayerPhone      string          `json:"payerPhone"`
	ReferenceNumber string          `json:"referenceNumber"`
	Date            string          `json:"date"`
}

func (p PaymentTransaction) RecordID() record.ID { return p.ID }

// PaymentStats summarises payment transactions.
type PaymentStats struct {
	TotalPayments int             `json:"totalPayments"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
	Completed     int             `json:"completed"`
	SuccessRate   decimal.Decimal `json:"successRate"`
	Pending       int             `json:"pending"`
}
