package ingestion

import (
	"strconv"
	"strings"
)

// Field pairs a display name with the value checked for presence.
type Field struct {
	Name  string
	Value any
}

// MissingFields returns the names of absent fields in input order. A field is
// absent when its value is nil or a blank string; whitespace-only counts as
// blank. Numeric fields that failed to parse are passed in as nil and so
// report as missing. The stable ordering keeps error messages reproducible.
func MissingFields(fields ...Field) []string {
	var missing []string
	for _, field := range fields {
		switch value := field.Value.(type) {
		case nil:
			missing = append(missing, field.Name)
		case string:
			if strings.TrimSpace(value) == "" {
				missing = append(missing, field.Name)
			}
		}
	}
	return missing
}

func parseInt(raw string) *int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	if i, err := strconv.Atoi(raw); err == nil {
		return &i
	}
	// Spreadsheets often render integers as floats.
	if f, err := strconv.ParseFloat(raw, 64); err == nil && f == float64(int(f)) {
		i := int(f)
		return &i
	}
	return nil
}

func parseDecimal(raw string) *float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return &f
	}
	return nil
}

func intValue(i *int) any {
	if i == nil {
		return nil
	}
	return *i
}

func floatValue(f *float64) any {
	if f == nil {
		return nil
	}
	return *f
}
