package models

import (
	"github.com/shopspring/decimal"

	"github.com/Narasimha40-dev/DAIRY/internal/record"
)

// Milk types sold at the collection centre.
const (
	MilkCow     = "Cow"
	MilkBuffalo = "Buffalo"
	MilkGoat    = "Goat"
	MilkMixed   = "Mixed"
)

// MilkTypes lists the milk types in display order.
var MilkTypes = []string{MilkCow, MilkBuffalo, MilkGoat, MilkMixed}

// MilkSale is a sale at the collection centre.
type MilkSale struct {
	ID       record.ID       `json:"id"`
	Name     string          `json:"name"`
	Village  string          `json:"village"`
	MilkType string          `json:"milkType"`
	Quantity decimal.Decimal `json:"quantity"`
	Rate     decimal.Decimal `json:"rate"`
	Total    decimal.Decimal `json:"total"`
}

func (s MilkSale) RecordID() record.ID { return s.ID }

// UnsoldStock records milk left unsold on a date.
type UnsoldStock struct {
	ID       record.ID       `json:"id"`
	Date     string          `json:"date"`
	Quantity decimal.Decimal `json:"quantity"`
}

func (u UnsoldStock) RecordID() record.ID { return u.ID }

// CollectionStats summarises milk sales and unsold stock.
type CollectionStats struct {
	Entries          int                        `json:"entries"`
	TotalMilkSold    decimal.Decimal            `json:"totalMilkSold"`
	TotalEarnings    decimal.Decimal            `json:"totalEarnings"`
	AveragePrice     decimal.Decimal            `json:"averagePrice"`
	MilkTypeTotals   map[string]decimal.Decimal `json:"milkTypeTotals"`
	BuffaloQuantity  decimal.Decimal            `json:"buffaloQuantity"`
	BuffaloEarnings  decimal.Decimal            `json:"buffaloEarnings"`
	HighDemandType   string                     `json:"highDemandType"`
	UnsoldEntries    int                        `json:"unsoldEntries"`
	UnsoldStockTotal decimal.Decimal            `json:"unsoldStockTotal"`
}
