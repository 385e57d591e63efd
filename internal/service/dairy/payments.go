package dairy

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/Narasimha40-dev/DAIRY/internal/aggregate"
	"github.com/Narasimha40-dev/DAIRY/internal/domain/models"
	"github.com/Narasimha40-dev/DAIRY/internal/record"
	"github.com/Narasimha40-dev/DAIRY/internal/validation"
)

var paymentRules = validation.New().
	Field("payerName",
		validation.Required("Payer name is required"),
		validation.Match(`^[A-Z][A-Z\s]*$`, "Name must start with a capital letter and contain only letters/spaces")).
	Field("amount", validation.PositiveNumber("Amount must be greater than 0")).
	Field("paymentMethod", validation.Required("Payment method is required"), selectRule("Payment method is required", models.PaymentMethods)).
	Field("status", validation.Required("Status is required"), selectRule("Status is required", models.PaymentStatuses)).
	Field("payerEmail", validation.Optional(validation.Email("Invalid email"))).
	Field("payerPhone", validation.Optional(validation.Digits(10, "Phone must be 10 digits")))

// TransactionID formats the public id of the payment with record id.
func TransactionID(id record.ID) string {
	return fmt.Sprintf("TXN%03d", id)
}

// PaymentSchema describes incoming payment transactions. now stamps the date
// of new payments; edits keep the original date and transaction id so an
// unchanged edit leaves the record as it was.
func PaymentSchema(now func() time.Time) record.Schema[models.PaymentTransaction] {
	if now == nil {
		now = time.Now
	}
	return record.Schema[models.PaymentTransaction]{
		Entity: "payment",
		Fields: []string{"payerName", "amount", "paymentMethod", "status", "description", "payerEmail", "payerPhone", "referenceNumber"},
		Normalize: map[string]record.Normalizer{
			"payerName":       strings.ToUpper,
			"description":     strings.ToUpper,
			"payerEmail":      strings.ToUpper,
			"referenceNumber": strings.ToUpper,
		},
		Validate: func(d record.Draft, _ bool) validation.Errors {
			return paymentRules.Validate(d)
		},
		Build: func(id record.ID, d record.Draft, prev *models.PaymentTransaction) models.PaymentTransaction {
			p := models.PaymentTransaction{
				ID:              id,
				TransactionID:   TransactionID(id),
				PayerName:       d["payerName"],
				Amount:          parseDecimal(d["amount"]),
				PaymentMethod:   d["paymentMethod"],
				Status:          d["status"],
				Description:     d["description"],
				PayerEmail:      d["payerEmail"],
				PayerPhone:      d["payerPhone"],
				ReferenceNumber: d["referenceNumber"],
				Date:            now().Format(validation.DateLayout),
			}
			if prev != nil {
				p.TransactionID = prev.TransactionID
				p.Date = prev.Date
			}
			return p
		},
		Draft: func(p models.PaymentTransaction) record.Draft {
			return record.Draft{
				"payerName":       p.PayerName,
				"amount":          p.Amount.String(),
				"paymentMethod":   p.PaymentMethod,
				"status":          p.Status,
				"description":     p.Description,
				"payerEmail":      p.PayerEmail,
				"payerPhone":      p.PayerPhone,
				"referenceNumber": p.ReferenceNumber,
			}
		},
		Header: []string{"Transaction ID", "Payer", "Amount", "Method", "Status", "Description", "Email", "Phone", "Reference", "Date"},
		Row: func(p models.PaymentTransaction) []any {
			return []any{p.TransactionID, p.PayerName, p.Amount.InexactFloat64(), p.PaymentMethod, p.Status, p.Description, p.PayerEmail, p.PayerPhone, p.ReferenceNumber, p.Date}
		},
		Search: func(p models.PaymentTransaction) []string {
			return []string{p.TransactionID, p.PayerName, p.Status}
		},
	}
}

// NewPayments builds the payment transaction manager.
func NewPayments(now func() time.Time, logger *zap.Logger) *record.Manager[models.PaymentTransaction] {
	return record.NewManager(PaymentSchema(now), record.WithLogger[models.PaymentTransaction](logger))
}

// PaymentSummary counts transactions and computes the success rate.
func PaymentSummary(payments []models.PaymentTransaction) models.PaymentStats {
	completed := aggregate.CountWhere(payments, func(p models.PaymentTransaction) bool {
		return p.Status == models.PaymentCompleted
	})
	return models.PaymentStats{
		TotalPayments: aggregate.Count(payments),
		TotalAmount:   aggregate.Sum(payments, func(p models.PaymentTransaction) decimal.Decimal { return p.Amount }),
		Completed:     completed,
		SuccessRate:   aggregate.Percentage(completed, len(payments)),
		Pending: aggregate.CountWhere(payments, func(p models.PaymentTransaction) bool {
			return p.Status == models.PaymentPending || p.Status == models.PaymentProcessing
		}),
	}
}

// PaymentStatusSeries counts transactions per status for charting.
func PaymentStatusSeries(payments []models.PaymentTransaction) aggregate.Series {
	return aggregate.CountSeries(payments, func(p models.PaymentTransaction) string { return p.Status }, models.PaymentStatuses...)
}
