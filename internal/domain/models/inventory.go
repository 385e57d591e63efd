package models

import "github.com/Narasimha40-dev/DAIRY/internal/record"

// Inventory option lists.
var (
	InventoryCategories = []string{"Raw Material", "Packaging", "Machinery", "Cleaning", "Other"}
	InventoryUnits      = []string{"Kg", "Litre", "Piece", "Packet", "Box"}
	InventorySuppliers  = []string{"DairySupplies Ltd.", "Farmers Co.", "AgroMart", "Local Vendor"}
	InventoryLocations  = []string{"Main Store", "Cold Storage", "Packing Unit", "Machinery Shed", "Other"}
	InventoryStatuses   = []string{"Available", "Reserved", "Used", "Expired"}
)

// InventoryItem is a stocked consumable or asset.
type InventoryItem struct {
	ID           record.ID `json:"id"`
	ItemID       string    `json:"itemId"`
	ItemName     string    `json:"itemName"`
	Category     string    `json:"category"`
	Quantity     int       `json:"quantity"`
	Unit         string    `json:"unit"`
	Supplier     string    `json:"supplier"`
	Location     string    `json:"location"`
	ReceivedDate string    `json:"receivedDate"`
	Expiry       string    `json:"expiry"`
	Status       string    `json:"status"`
}

func (i InventoryItem) RecordID() record.ID { return i.ID }

// InventoryStats summarises the stock list.
type InventoryStats struct {
	TotalItems    int `json:"totalItems"`
	TotalQuantity int `json:"totalQuantity"`
	ExpiringSoon  int `json:"expiringSoon"`
	OutOfStock    int `json:"outOfStock"`
}
