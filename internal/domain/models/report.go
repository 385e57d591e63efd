package models

import "time"

// DashboardSnapshot is the cross-entity summary archived by the scheduler.
type DashboardSnapshot struct {
	GeneratedAt   time.Time          `bson:"generated_at" json:"generatedAt"`
	Farmers       FarmerStats        `bson:"farmers" json:"farmers"`
	MilkTracking  MilkTrackingStats  `bson:"milk_tracking" json:"milkTracking"`
	FarmerPayment FarmerPaymentStats `bson:"farmer_payments" json:"farmerPayments"`
	Collection    CollectionStats    `bson:"collection" json:"collection"`
	Inventory     InventoryStats     `bson:"inventory" json:"inventory"`
	Investments   InvestmentStats    `bson:"investments" json:"investments"`
	Payments      PaymentStats       `bson:"payments" json:"payments"`
	Profiles      int                `bson:"profiles" json:"profiles"`
}
