package dairy

import (
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/Narasimha40-dev/DAIRY/internal/aggregate"
	"github.com/Narasimha40-dev/DAIRY/internal/domain/models"
	"github.com/Narasimha40-dev/DAIRY/internal/record"
	"github.com/Narasimha40-dev/DAIRY/internal/validation"
)

const collectorNameMessage = "First letter must be capital; alphabets only"

var milkSaleRules = validation.New().
	Field("name", validation.Required("Name is required"), validation.CapitalizedAlpha(collectorNameMessage)).
	Field("village", validation.Required("Village is required"), validation.CapitalizedAlpha(collectorNameMessage)).
	Field("milkType", selectRule("Please select a milk type.", models.MilkTypes)).
	Field("quantity", validation.PositiveNumber("Please enter a quantity greater than 0.")).
	Field("rate", validation.PositiveNumber("Please enter a rate greater than 0."))

// MilkSaleSchema describes sales at the collection centre. Total is derived
// from quantity and rate on every commit.
func MilkSaleSchema() record.Schema[models.MilkSale] {
	name := record.Chain(record.LettersOnly, record.CapitalizeFirst)
	return record.Schema[models.MilkSale]{
		Entity: "milk_sale",
		Fields: []string{"name", "village", "milkType", "quantity", "rate"},
		Normalize: map[string]record.Normalizer{
			"name":    name,
			"village": name,
		},
		Validate: func(d record.Draft, _ bool) validation.Errors {
			return milkSaleRules.Validate(d)
		},
		Build: func(id record.ID, d record.Draft, _ *models.MilkSale) models.MilkSale {
			qty := parseDecimal(d["quantity"])
			rate := parseDecimal(d["rate"])
			return models.MilkSale{
				ID:       id,
				Name:     d["name"],
				Village:  d["village"],
				MilkType: d["milkType"],
				Quantity: qty,
				Rate:     rate,
				Total:    qty.Mul(rate),
			}
		},
		Draft: func(s models.MilkSale) record.Draft {
			return record.Draft{
				"name":     s.Name,
				"village":  s.Village,
				"milkType": s.MilkType,
				"quantity": s.Quantity.String(),
				"rate":     s.Rate.String(),
			}
		},
		Header: []string{"Name", "Village", "Milk Type", "Quantity (L)", "Rate", "Total"},
		Row: func(s models.MilkSale) []any {
			return []any{s.Name, s.Village, s.MilkType, s.Quantity.InexactFloat64(), s.Rate.InexactFloat64(), s.Total.InexactFloat64()}
		},
		Search: func(s models.MilkSale) []string {
			return []string{s.Name, s.Village, s.MilkType}
		},
	}
}

// SalesTally keeps collection totals in step with the sales store. The
// manager calls Add and Remove under its write lock; read the tally only
// inside Manager.Read.
type SalesTally struct {
	entries  int
	liters   decimal.Decimal
	earnings decimal.Decimal
	byType   *aggregate.Grouped
	earnType *aggregate.Grouped
}

// NewSalesTally returns a tally with every milk type at zero.
func NewSalesTally() *SalesTally {
	return &SalesTally{
		byType:   aggregate.NewGrouped(models.MilkTypes...),
		earnType: aggregate.NewGrouped(models.MilkTypes...),
	}
}

func (t *SalesTally) Add(s models.MilkSale) {
	t.entries++
	t.liters = t.liters.Add(s.Quantity)
	t.earnings = t.earnings.Add(s.Total)
	t.byType.Add(s.MilkType, s.Quantity)
	t.earnType.Add(s.MilkType, s.Total)
}

func (t *SalesTally) Remove(s models.MilkSale) {
	t.entries--
	t.liters = t.liters.Sub(s.Quantity)
	t.earnings = t.earnings.Sub(s.Total)
	t.byType.Add(s.MilkType, s.Quantity.Neg())
	t.earnType.Add(s.MilkType, s.Total.Neg())
}

// Stats converts the tally into collection statistics. Unsold fields are
// left for the caller.
func (t *SalesTally) Stats() models.CollectionStats {
	high := aggregate.NoTop
	if t.liters.IsPositive() {
		high = t.byType.Top()
	}
	return models.CollectionStats{
		Entries:         t.entries,
		TotalMilkSold:   t.liters,
		TotalEarnings:   t.earnings,
		AveragePrice:    aggregate.Ratio(t.earnings, t.liters).Round(2),
		MilkTypeTotals:  t.byType.Map(),
		BuffaloQuantity: t.byType.Get(models.MilkBuffalo),
		BuffaloEarnings: t.earnType.Get(models.MilkBuffalo),
		HighDemandType:  high,
	}
}

// Series returns liters per milk type for charting.
func (t *SalesTally) Series() aggregate.Series {
	return t.byType.Series()
}

var unsoldRules = validation.New().
	Field("date", validation.Required("Please select a valid date."), validation.Date("Please select a valid date.")).
	Field("quantity", validation.PositiveNumber("Please enter a quantity greater than 0."))

// UnsoldSchema describes milk left unsold at the end of a day.
func UnsoldSchema() record.Schema[models.UnsoldStock] {
	return record.Schema[models.UnsoldStock]{
		Entity: "unsold_stock",
		Fields: []string{"date", "quantity"},
		Validate: func(d record.Draft, _ bool) validation.Errors {
			return unsoldRules.Validate(d)
		},
		Build: func(id record.ID, d record.Draft, _ *models.UnsoldStock) models.UnsoldStock {
			return models.UnsoldStock{ID: id, Date: d["date"], Quantity: parseDecimal(d["quantity"])}
		},
		Draft: func(u models.UnsoldStock) record.Draft {
			return record.Draft{"date": u.Date, "quantity": u.Quantity.String()}
		},
		Header: []string{"Date", "Quantity (L)"},
		Row: func(u models.UnsoldStock) []any {
			return []any{u.Date, u.Quantity.InexactFloat64()}
		},
		Search: func(u models.UnsoldStock) []string {
			return []string{u.Date}
		},
	}
}

// Collection groups the sales and unsold stores of the collection centre.
type Collection struct {
	Sales  *record.Manager[models.MilkSale]
	Unsold *record.Manager[models.UnsoldStock]
	tally  *SalesTally
}

// NewCollection wires the sales manager to a fresh tally.
func NewCollection(logger *zap.Logger) *Collection {
	tally := NewSalesTally()
	return &Collection{
		Sales:  record.NewManager(MilkSaleSchema(), record.WithTally[models.MilkSale](tally), record.WithLogger[models.MilkSale](logger)),
		Unsold: record.NewManager(UnsoldSchema(), record.WithLogger[models.UnsoldStock](logger)),
		tally:  tally,
	}
}

// Summary reads the tally under the sales lock and adds unsold totals.
func (c *Collection) Summary() models.CollectionStats {
	var stats models.CollectionStats
	c.Sales.Read(func([]models.MilkSale) {
		stats = c.tally.Stats()
	})

	unsold := c.Unsold.List()
	stats.UnsoldEntries = aggregate.Count(unsold)
	stats.UnsoldStockTotal = aggregate.Sum(unsold, func(u models.UnsoldStock) decimal.Decimal { return u.Quantity })
	return stats
}

// Series returns liters per milk type.
func (c *Collection) Series() aggregate.Series {
	var s aggregate.Series
	c.Sales.Read(func([]models.MilkSale) {
		s = c.tally.Series()
	})
	return s
}

// CollectionSummary recomputes the sales statistics from a record list. It
// matches what the tally reports for the same records.
func CollectionSummary(sales []models.MilkSale) models.CollectionStats {
	t := NewSalesTally()
	for _, s := range sales {
		t.Add(s)
	}
	return t.Stats()
}
