package models

import (
	"github.com/shopspring/decimal"

	"github.com/Narasimha40-dev/DAIRY/internal/record"
)

// Milk tracking delivery states.
const (
	DeliveryDelivered = "Delivered"
	DeliveryPending   = "Pending"
)

// Farmer payment states.
const (
	FarmerPaymentPaid    = "Paid"
	FarmerPaymentPending = "Pending"
)

// Farmer is a registered milk supplier.
type Farmer struct {
	ID         record.ID `json:"id"`
	Name       string    `json:"name"`
	Village    string    `json:"village"`
	Phone      string    `json:"phone"`
	Cows       int       `json:"cows"`
	MilkBreed  string    `json:"milkBreed"`
	JoinedDate string    `json:"joinedDate"`
}

func (f Farmer) RecordID() record.ID { return f.ID }

// MilkTrackingEntry records a delivery from a farmer.
type MilkTrackingEntry struct {
	ID       record.ID       `json:"id"`
	Farmer   string          `json:"farmer"`
	Date     string          `json:"date"`
	Quantity decimal.Decimal `json:"quantity"`
	Status   string          `json:"status"`
}

func (e MilkTrackingEntry) RecordID() record.ID { return e.ID }

// FarmerPayment records money owed or paid to a farmer.
type FarmerPayment struct {
	ID     record.ID       `json:"id"`
	Farmer string          `json:"farmer"`
	Amount decimal.Decimal `json:"amount"`
	Date   string          `json:"date"`
	Status string          `json:"status"`
}

func (p FarmerPayment) RecordID() record.ID { return p.ID }

// VillageOverview summarises the farmers of one village.
type VillageOverview struct {
	Village string   `json:"village"`
	Farmers int      `json:"farmers"`
	Cows    int      `json:"cows"`
	Breeds  []string `json:"breeds"`
}

// FarmerStats summarises the farmer registry.
type FarmerStats struct {
	TotalFarmers int               `json:"totalFarmers"`
	TotalCows    int               `json:"totalCows"`
	Villages     int               `json:"villages"`
	Overview     []VillageOverview `json:"overview"`
}

// MilkTrackingStats summarises deliveries.
type MilkTrackingStats struct {
	Entries     int             `json:"entries"`
	Delivered   int             `json:"delivered"`
	Pending     int             `json:"pending"`
	TotalLiters decimal.Decimal `json:"totalLiters"`
}

// FarmerPaymentStats summarises farmer payments.
type FarmerPaymentStats struct {
	Payments      int             `json:"payments"`
	PaidAmount    decimal.Decimal `json:"paidAmount"`
	PendingAmount decimal.Decimal `json:"pendingAmount"`
}
