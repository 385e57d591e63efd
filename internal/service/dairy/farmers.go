package dairy

import (
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/Narasimha40-dev/DAIRY/internal/aggregate"
	"github.com/Narasimha40-dev/DAIRY/internal/domain/models"
	"github.com/Narasimha40-dev/DAIRY/internal/record"
	"github.com/Narasimha40-dev/DAIRY/internal/validation"
)

var farmerRules = validation.New().
	Field("name", validation.CapitalizedAlpha("Name must start with a capital letter and contain only alphabets.")).
	Field("village", validation.CapitalizedAlpha("Village must start with a capital letter and contain only alphabets.")).
	Field("phone", validation.Digits(10, "Phone must be a 10-digit number.")).
	Field("cows", validation.Optional(validation.WholeNumber("No. of Cows must be a number."))).
	Field("milkBreed", validation.Optional(validation.CapitalizedAlpha("Milk Breed must start with a capital letter and contain only alphabets."))).
	Field("joinedDate", validation.Optional(validation.Date("Joined date must be a valid date.")))

// FarmerSchema describes the farmer registry.
func FarmerSchema() record.Schema[models.Farmer] {
	return record.Schema[models.Farmer]{
		Entity: "farmer",
		Fields: []string{"name", "village", "phone", "cows", "milkBreed", "joinedDate"},
		Normalize: map[string]record.Normalizer{
			"phone": record.DigitsOnly,
		},
		Validate: func(d record.Draft, _ bool) validation.Errors {
			return farmerRules.Validate(d)
		},
		Build: func(id record.ID, d record.Draft, _ *models.Farmer) models.Farmer {
			return models.Farmer{
				ID:         id,
				Name:       d["name"],
				Village:    d["village"],
				Phone:      d["phone"],
				Cows:       parseInt(d["cows"]),
				MilkBreed:  d["milkBreed"],
				JoinedDate: d["joinedDate"],
			}
		},
		Draft: func(f models.Farmer) record.Draft {
			return record.Draft{
				"name":       f.Name,
				"village":    f.Village,
				"phone":      f.Phone,
				"cows":       formatInt(f.Cows),
				"milkBreed":  f.MilkBreed,
				"joinedDate": f.JoinedDate,
			}
		},
		Header: []string{"Name", "Village", "Phone", "Cows", "Milk Breed", "Joined"},
		Row: func(f models.Farmer) []any {
			return []any{f.Name, f.Village, f.Phone, f.Cows, f.MilkBreed, f.JoinedDate}
		},
		Search: func(f models.Farmer) []string {
			return []string{f.Name, f.Village, f.Phone}
		},
	}
}

// NewFarmers builds the farmer registry manager.
func NewFarmers(logger *zap.Logger) *record.Manager[models.Farmer] {
	return record.NewManager(FarmerSchema(), record.WithLogger[models.Farmer](logger))
}

// FarmerSummary computes registry totals and the per-village overview.
func FarmerSummary(farmers []models.Farmer) models.FarmerStats {
	cows := func(f models.Farmer) decimal.Decimal { return decimal.NewFromInt(int64(f.Cows)) }

	stats := models.FarmerStats{
		TotalFarmers: aggregate.Count(farmers),
		TotalCows:    int(aggregate.Sum(farmers, cows).IntPart()),
		Villages:     aggregate.Distinct(farmers, func(f models.Farmer) string { return f.Village }),
		Overview:     []models.VillageOverview{},
	}

	index := map[string]int{}
	for _, f := range farmers {
		i, ok := index[f.Village]
		if !ok {
			i = len(stats.Overview)
			index[f.Village] = i
			stats.Overview = append(stats.Overview, models.VillageOverview{Village: f.Village, Breeds: []string{}})
		}
		v := &stats.Overview[i]
		v.Farmers++
		v.Cows += f.Cows
		if f.MilkBreed != "" && !contains(v.Breeds, f.MilkBreed) {
			v.Breeds = append(v.Breeds, f.MilkBreed)
		}
	}
	return stats
}

var milkTrackingRules = validation.New().
	Field("farmer", validation.CapitalizedAlpha("Farmer name must start with a capital letter and contain only alphabets.")).
	Field("date", validation.Required("Date is required."), validation.Date("Date must be a valid date.")).
	Field("quantity", validation.PositiveNumber("Quantity must be a positive number.")).
	Field("status", selectRule("Status must be Delivered or Pending.", []string{models.DeliveryDelivered, models.DeliveryPending}))

// MilkTrackingSchema describes farmer delivery entries.
func MilkTrackingSchema() record.Schema[models.MilkTrackingEntry] {
	return record.Schema[models.MilkTrackingEntry]{
		Entity: "milk_tracking",
		Fields: []string{"farmer", "date", "quantity", "status"},
		Validate: func(d record.Draft, _ bool) validation.Errors {
			return milkTrackingRules.Validate(d)
		},
		Build: func(id record.ID, d record.Draft, _ *models.MilkTrackingEntry) models.MilkTrackingEntry {
			return models.MilkTrackingEntry{
				ID:       id,
				Farmer:   d["farmer"],
				Date:     d["date"],
				Quantity: parseDecimal(d["quantity"]),
				Status:   d["status"],
			}
		},
		Draft: func(e models.MilkTrackingEntry) record.Draft {
			return record.Draft{
				"farmer":   e.Farmer,
				"date":     e.Date,
				"quantity": e.Quantity.String(),
				"status":   e.Status,
			}
		},
		Header: []string{"Farmer", "Date", "Quantity (L)", "Status"},
		Row: func(e models.MilkTrackingEntry) []any {
			return []any{e.Farmer, e.Date, e.Quantity.InexactFloat64(), e.Status}
		},
		Search: func(e models.MilkTrackingEntry) []string {
			return []string{e.Farmer, e.Status}
		},
	}
}

// NewMilkTracking builds the delivery tracking manager.
func NewMilkTracking(logger *zap.Logger) *record.Manager[models.MilkTrackingEntry] {
	return record.NewManager(MilkTrackingSchema(), record.WithLogger[models.MilkTrackingEntry](logger))
}

// MilkTrackingSummary counts deliveries by state and totals liters.
func MilkTrackingSummary(entries []models.MilkTrackingEntry) models.MilkTrackingStats {
	return models.MilkTrackingStats{
		Entries: aggregate.Count(entries),
		Delivered: aggregate.CountWhere(entries, func(e models.MilkTrackingEntry) bool {
			return e.Status == models.DeliveryDelivered
		}),
		Pending: aggregate.CountWhere(entries, func(e models.MilkTrackingEntry) bool {
			return e.Status == models.DeliveryPending
		}),
		TotalLiters: aggregate.Sum(entries, func(e models.MilkTrackingEntry) decimal.Decimal { return e.Quantity }),
	}
}

var farmerPaymentRules = validation.New().
	Field("farmer", validation.CapitalizedAlpha("Farmer name must start with a capital letter and contain only alphabets.")).
	Field("amount", validation.PositiveNumber("Amount must be a positive number.")).
	Field("date", validation.Required("Date is required."), validation.Date("Date must be a valid date.")).
	Field("status", selectRule("Status must be Paid or Pending.", []string{models.FarmerPaymentPaid, models.FarmerPaymentPending}))

// FarmerPaymentSchema describes payments owed to farmers.
func FarmerPaymentSchema() record.Schema[models.FarmerPayment] {
	return record.Schema[models.FarmerPayment]{
		Entity: "farmer_payment",
		Fields: []string{"farmer", "amount", "date", "status"},
		Validate: func(d record.Draft, _ bool) validation.Errors {
			return farmerPaymentRules.Validate(d)
		},
		Build: func(id record.ID, d record.Draft, _ *models.FarmerPayment) models.FarmerPayment {
			return models.FarmerPayment{
				ID:     id,
				Farmer: d["farmer"],
				Amount: parseDecimal(d["amount"]),
				Date:   d["date"],
				Status: d["status"],
			}
		},
		Draft: func(p models.FarmerPayment) record.Draft {
			return record.Draft{
				"farmer": p.Farmer,
				"amount": p.Amount.String(),
				"date":   p.Date,
				"status": p.Status,
			}
		},
		Header: []string{"Farmer", "Amount", "Date", "Status"},
		Row: func(p models.FarmerPayment) []any {
			return []any{p.Farmer, p.Amount.InexactFloat64(), p.Date, p.Status}
		},
		Search: func(p models.FarmerPayment) []string {
			return []string{p.Farmer, p.Status}
		},
	}
}

// NewFarmerPayments builds the farmer payment manager.
func NewFarmerPayments(logger *zap.Logger) *record.Manager[models.FarmerPayment] {
	return record.NewManager(FarmerPaymentSchema(), record.WithLogger[models.FarmerPayment](logger))
}

// FarmerPaymentSummary totals paid and pending amounts.
func FarmerPaymentSummary(payments []models.FarmerPayment) models.FarmerPaymentStats {
	byStatus := aggregate.GroupSum(payments,
		func(p models.FarmerPayment) string { return p.Status },
		func(p models.FarmerPayment) decimal.Decimal { return p.Amount })

	return models.FarmerPaymentStats{
		Payments:      aggregate.Count(payments),
		PaidAmount:    byStatus.Get(models.FarmerPaymentPaid),
		PendingAmount: byStatus.Get(models.FarmerPaymentPending),
	}
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
