package dairy

import (
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/Narasimha40-dev/DAIRY/internal/aggregate"
	"github.com/Narasimha40-dev/DAIRY/internal/domain/models"
	"github.com/Narasimha40-dev/DAIRY/internal/record"
	"github.com/Narasimha40-dev/DAIRY/internal/validation"
)

var investmentRules = validation.New().
	Field("investmentId",
		validation.Required("Investment ID is required."),
		validation.PrefixedID("INVST", "Investment ID must be in format INVST followed by 4+ digits (e.g., INVST1001).")).
	Field("investorName",
		validation.Required("Investor Name is required."),
		validation.Match(`^[A-Z][a-zA-Z ]{2,39}$`, "Investor Name must start with a capital letter and be 3-40 letters/spaces.")).
	Field("investmentType", selectRule("Please select an investment type.", models.InvestmentTypes)).
	Field("amount",
		validation.Required("Amount is required."),
		validation.PositiveInt("Amount must be a positive number.")).
	Field("date", validation.Required("Please select a valid date."), validation.Date("Please select a valid date.")).
	Field("remarks", validation.Optional(
		validation.MaxLength(120, "Remarks must be less than 120 characters."),
		validation.StartsUpper("Remarks must start with a capital letter."),
	))

// InvestmentSchema describes capital contributions.
func InvestmentSchema() record.Schema[models.Investment] {
	return record.Schema[models.Investment]{
		Entity: "investment",
		Fields: []string{"investmentId", "investorName", "investmentType", "amount", "date", "remarks"},
		Normalize: map[string]record.Normalizer{
			"investorName": record.CapitalizeFirst,
			"remarks":      record.CapitalizeFirst,
		},
		Validate: func(d record.Draft, _ bool) validation.Errors {
			return investmentRules.Validate(d)
		},
		Build: func(id record.ID, d record.Draft, _ *models.Investment) models.Investment {
			return models.Investment{
				ID:             id,
				InvestmentID:   d["investmentId"],
				InvestorName:   d["investorName"],
				InvestmentType: d["investmentType"],
				Amount:         parseDecimal(d["amount"]),
				Date:           d["date"],
				Remarks:        d["remarks"],
			}
		},
		Draft: func(i models.Investment) record.Draft {
			return record.Draft{
				"investmentId":   i.InvestmentID,
				"investorName":   i.InvestorName,
				"investmentType": i.InvestmentType,
				"amount":         i.Amount.String(),
				"date":           i.Date,
				"remarks":        i.Remarks,
			}
		},
		Header: []string{"Investment ID", "Investor Name", "Type", "Amount", "Date", "Remarks"},
		Row: func(i models.Investment) []any {
			return []any{i.InvestmentID, i.InvestorName, i.InvestmentType, i.Amount.InexactFloat64(), i.Date, i.Remarks}
		},
		Search: func(i models.Investment) []string {
			return []string{i.InvestmentID, i.InvestorName, i.InvestmentType}
		},
	}
}

// NewInvestments builds the investment manager.
func NewInvestments(logger *zap.Logger) *record.Manager[models.Investment] {
	return record.NewManager(InvestmentSchema(), record.WithLogger[models.Investment](logger))
}

// InvestmentSummary totals investments and ranks investment types.
func InvestmentSummary(investments []models.Investment) models.InvestmentStats {
	amount := func(i models.Investment) decimal.Decimal { return i.Amount }
	byType := aggregate.GroupSum(investments, func(i models.Investment) string { return i.InvestmentType }, amount)
	total := aggregate.Sum(investments, amount)

	return models.InvestmentStats{
		TotalInvestments: aggregate.Count(investments),
		TotalAmount:      total,
		AverageAmount:    aggregate.Average(total, len(investments)).Round(0),
		TopType:          byType.Top(),
		ByType:           byType.Map(),
		Chart:            byType.Series(),
	}
}
