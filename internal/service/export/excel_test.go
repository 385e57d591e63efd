package export

import (
	"bytes"
	"reflect"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestWriteXLSX(t *testing.T) {
	var buf bytes.Buffer
	header := []string{"Name", "Village", "Total"}
	rows := [][]any{
		{"Ravi", "Kothur", 400.0},
		{"Sita", "Medak", 100.5},
	}
	if err := WriteXLSX(&buf, "milk_sale", header, rows); err != nil {
		t.Fatalf("WriteXLSX unexpected error: %v", err)
	}

	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("OpenReader unexpected error: %v", err)
	}
	defer f.Close()

	if got := f.GetSheetList(); !reflect.DeepEqual(got, []string{"milk_sale"}) {
		t.Fatalf("unexpected sheets %v", got)
	}
	got, err := f.GetRows("milk_sale")
	if err != nil {
		t.Fatalf("GetRows unexpected error: %v", err)
	}
	want := [][]string{
		{"Name", "Village", "Total"},
		{"Ravi", "Kothur", "400"},
		{"Sita", "Medak", "100.5"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected rows %v, got %v", want, got)
	}
}

func TestWriteXLSXHeaderOnly(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteXLSX(&buf, "inventory_item", []string{"Item ID"}, nil); err != nil {
		t.Fatalf("WriteXLSX unexpected error: %v", err)
	}
	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("OpenReader unexpected error: %v", err)
	}
	defer f.Close()
	if rows, _ := f.GetRows("inventory_item"); len(rows) != 1 {
		t.Fatalf("expected only the header row, got %v", rows)
	}
}
