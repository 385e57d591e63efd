package models

import (
	"github.com/shopspring/decimal"

	"github.com/Narasimha40-dev/DAIRY/internal/aggregate"
	"github.com/Narasimha40-dev/DAIRY/internal/record"
)

// InvestmentTypes lists the accepted investment categories.
var InvestmentTypes = []string{"Equity", "Debt", "Grant", "Angel", "Venture Capital", "Other"}

// Investment is a capital contribution into the business.
type Investment struct {
	ID             record.ID       `json:"id"`
	InvestmentID   string          `json:"investmentId"`
	InvestorName   string          `json:"investorName"`
	InvestmentType string          `json:"investmentType"`
	Amount         decimal.Decimal `json:"amount"`
	Date           string          `json:"date"`
	Remarks        string          `json:"remarks"`
}

func (i Investment) RecordID() record.ID { return i.ID }

// InvestmentStats summarises investments.
type InvestmentStats struct {
	TotalInvestments int                        `json:"totalInvestments"`
	TotalAmount      decimal.Decimal            `json:"totalAmount"`
	AverageAmount    decimal.Decimal            `json:"averageAmount"`
	TopType          string                     `json:"topType"`
	ByType           map[string]decimal.Decimal `json:"byType"`
	Chart            aggregate.Series           `json:"chart"`
}
