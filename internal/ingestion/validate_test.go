package ingestion

import (
	"reflect"
	"testing"
)

func TestMissingFieldsPreservesInputOrder(t *testing.T) {
	missing := MissingFields(
		Field{Name: "SaleId", Value: ""},
		Field{Name: "CustomerId", Value: "C0001"},
		Field{Name: "ProductId", Value: "   "},
		Field{Name: "Quantity", Value: nil},
		Field{Name: "Total", Value: 12.5},
	)

	want := []string{"SaleId", "ProductId", "Quantity"}
	if !reflect.DeepEqual(missing, want) {
		t.Fatalf("expected %v, got %v", want, missing)
	}
}

func TestMissingFieldsBlankEmailOnly(t *testing.T) {
	missing := MissingFields(
		Field{Name: "CustomerId", Value: "C0001"},
		Field{Name: "Name", Value: "Alice"},
		Field{Name: "Email", Value: " "},
		Field{Name: "Phone", Value: "5551234"},
	)

	if !reflect.DeepEqual(missing, []string{"Email"}) {
		t.Fatalf("expected exactly [Email], got %v", missing)
	}
}

func TestMissingFieldsAllPresent(t *testing.T) {
	missing := MissingFields(
		Field{Name: "CustomerId", Value: "C0001"},
		Field{Name: "Quantity", Value: 3},
	)
	if len(missing) != 0 {
		t.Fatalf("expected no missing fields, got %v", missing)
	}
}

func TestParseInt(t *testing.T) {
	cases := []struct {
		raw  string
		want *int
	}{
		{"3", intPtr(3)},
		{" 7 ", intPtr(7)},
		{"4.0", intPtr(4)},
		{"4.5", nil},
		{"abc", nil},
		{"", nil},
	}
	for _, tc := range cases {
		got := parseInt(tc.raw)
		if (got == nil) != (tc.want == nil) {
			t.Fatalf("parseInt(%q): expected %v, got %v", tc.raw, tc.want, got)
		}
		if got != nil && *got != *tc.want {
			t.Fatalf("parseInt(%q): expected %d, got %d", tc.raw, *tc.want, *got)
		}
	}
}

func TestParseDecimal(t *testing.T) {
	if got := parseDecimal("19.99"); got == nil || *got != 19.99 {
		t.Fatalf("expected 19.99, got %v", got)
	}
	if got := parseDecimal("not a number"); got != nil {
		t.Fatalf("expected nil for unparseable value, got %v", got)
	}
	if got := parseDecimal("  "); got != nil {
		t.Fatalf("expected nil for blank value, got %v", got)
	}
}

func intPtr(i int) *int {
	return &i
}
