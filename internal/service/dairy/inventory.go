package dairy

import (
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/Narasimha40-dev/DAIRY/internal/aggregate"
	"github.com/Narasimha40-dev/DAIRY/internal/domain/models"
	"github.com/Narasimha40-dev/DAIRY/internal/record"
	"github.com/Narasimha40-dev/DAIRY/internal/validation"
)

// ExpiryWindowDays is how far ahead an item counts as expiring soon.
const ExpiryWindowDays = 7

var inventoryRules = validation.New().
	Field("itemId", validation.PrefixedID("INV", "Item ID must start with 'INV' followed by at least 4 digits (e.g., INV1001).")).
	Field("itemName", validation.Match(`^[A-Z][a-zA-Z0-9 \-]{2,39}$`, "Item Name must start with a capital letter and be 3-40 letters/numbers/spaces.")).
	Field("category", selectRule("Please select a category.", models.InventoryCategories)).
	Field("quantity", validation.PositiveInt("Quantity must be a positive integer.")).
	Field("unit", selectRule("Please select a unit.", models.InventoryUnits)).
	Field("supplier", selectRule("Please select a supplier.", models.InventorySuppliers)).
	Field("location", selectRule("Please select a location.", models.InventoryLocations)).
	Field("receivedDate", validation.Required("Please select received date."), validation.Date("Please select received date.")).
	Field("expiry", validation.Optional(validation.Date("Expiry must be a valid date."))).
	Field("status", selectRule("Please select status.", models.InventoryStatuses)).
	Cross(validation.DateNotBefore("expiry", "receivedDate", "Expiry date must be after received date."))

// InventorySchema describes stocked items.
func InventorySchema() record.Schema[models.InventoryItem] {
	return record.Schema[models.InventoryItem]{
		Entity: "inventory_item",
		Fields: []string{"itemId", "itemName", "category", "quantity", "unit", "supplier", "location", "receivedDate", "expiry", "status"},
		Normalize: map[string]record.Normalizer{
			"itemName": record.CapitalizeFirst,
		},
		Validate: func(d record.Draft, _ bool) validation.Errors {
			return inventoryRules.Validate(d)
		},
		Build: func(id record.ID, d record.Draft, _ *models.InventoryItem) models.InventoryItem {
			return models.InventoryItem{
				ID:           id,
				ItemID:       d["itemId"],
				ItemName:     d["itemName"],
				Category:     d["category"],
				Quantity:     parseInt(d["quantity"]),
				Unit:         d["unit"],
				Supplier:     d["supplier"],
				Location:     d["location"],
				ReceivedDate: d["receivedDate"],
				Expiry:       d["expiry"],
				Status:       d["status"],
			}
		},
		Draft: func(i models.InventoryItem) record.Draft {
			return record.Draft{
				"itemId":       i.ItemID,
				"itemName":     i.ItemName,
				"category":     i.Category,
				"quantity":     formatInt(i.Quantity),
				"unit":         i.Unit,
				"supplier":     i.Supplier,
				"location":     i.Location,
				"receivedDate": i.ReceivedDate,
				"expiry":       i.Expiry,
				"status":       i.Status,
			}
		},
		Header: []string{"Item ID", "Item Name", "Category", "Quantity", "Unit", "Supplier", "Location", "Received", "Expiry", "Status"},
		Row: func(i models.InventoryItem) []any {
			return []any{i.ItemID, i.ItemName, i.Category, i.Quantity, i.Unit, i.Supplier, i.Location, i.ReceivedDate, i.Expiry, i.Status}
		},
		Search: func(i models.InventoryItem) []string {
			return []string{i.ItemID, i.ItemName, i.Category}
		},
	}
}

// NewInventory builds the inventory manager.
func NewInventory(logger *zap.Logger) *record.Manager[models.InventoryItem] {
	return record.NewManager(InventorySchema(), record.WithLogger[models.InventoryItem](logger))
}

// InventorySummary computes stock totals relative to now.
func InventorySummary(items []models.InventoryItem, now time.Time) models.InventoryStats {
	qty := func(i models.InventoryItem) decimal.Decimal { return decimal.NewFromInt(int64(i.Quantity)) }

	return models.InventoryStats{
		TotalItems:    aggregate.Count(items),
		TotalQuantity: int(aggregate.Sum(items, qty).IntPart()),
		ExpiringSoon: aggregate.CountWhere(items, func(i models.InventoryItem) bool {
			expiry, ok := parseDate(i.Expiry)
			return ok && aggregate.WithinDays(now, expiry, ExpiryWindowDays)
		}),
		OutOfStock: aggregate.CountWhere(items, func(i models.InventoryItem) bool {
			return i.Quantity == 0
		}),
	}
}

// InventoryStatusSeries counts items per status for charting.
func InventoryStatusSeries(items []models.InventoryItem) aggregate.Series {
	return aggregate.CountSeries(items, func(i models.InventoryItem) string { return i.Status }, models.InventoryStatuses...)
}
