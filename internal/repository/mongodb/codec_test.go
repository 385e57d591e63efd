package mongodb

import (
	"testing"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
)

type priced struct {
	Amount decimal.Decimal `bson:"amount"`
}

func TestDecimalRoundTrip(t *testing.T) {
	reg := NewRegistry()
	in := priced{Amount: decimal.RequireFromString("1234.56")}

	raw, err := bson.MarshalWithRegistry(reg, in)
	if err != nil {
		t.Fatalf("marshal unexpected error: %v", err)
	}
	if kind := bson.Raw(raw).Lookup("amount").Type; kind != bson.TypeDecimal128 {
		t.Fatalf("expected Decimal128, got %v", kind)
	}

	var out priced
	if err := bson.UnmarshalWithRegistry(reg, raw, &out); err != nil {
		t.Fatalf("unmarshal unexpected error: %v", err)
	}
	if !out.Amount.Equal(in.Amount) {
		t.Fatalf("expected %s, got %s", in.Amount, out.Amount)
	}
}

func TestDecimalDecodesLegacyValues(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  string
	}{
		{name: "string", value: "12.50", want: "12.5"},
		{name: "double", value: 3.25, want: "3.25"},
		{name: "null", value: nil, want: "0"},
	}

	reg := NewRegistry()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw, err := bson.Marshal(bson.D{{Key: "amount", Value: tt.value}})
			if err != nil {
				t.Fatalf("marshal unexpected error: %v", err)
			}
			var out priced
			if err := bson.UnmarshalWithRegistry(reg, raw, &out); err != nil {
				t.Fatalf("unmarshal unexpected error: %v", err)
			}
			if !out.Amount.Equal(decimal.RequireFromString(tt.want)) {
				t.Fatalf("expected %s, got %s", tt.want, out.Amount)
			}
		})
	}

	raw, _ := bson.Marshal(bson.D{{Key: "amount", Value: true}})
	var out priced
	if err := bson.UnmarshalWithRegistry(reg, raw, &out); err == nil {
		t.Fatalf("expected boolean to be rejected")
	}
}
