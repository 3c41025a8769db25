package synnexxml

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseNumber(t *testing.T) {
	tests := []struct {
		input    string
		expected float64
		ok       bool
	}{
		{"1,353.56", 1353.56, true},
		{"0", 0, true},
		{" 12.5 ", 12.5, true},
		{"-3", -3, true},
		{"SKU123", 0, false},
		{"", 0, false},
		{"Inf", 0, false},
		{"NaN", 0, false},
		{"0x1p3", 0, false},
		{"1e400", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			value, ok := ParseNumber(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, value)
		})
	}
}

func TestCoerceNumbers(t *testing.T) {
	tree := map[string]any{
		"unitPrice":  "1,353.56",
		"freight":    "0",
		"price":      "SKU123",
		"zipCode":    "01234",
		"synnexSku":  "2426708",
		"totalSales": []any{"1,000", "2"},
		"summary": map[string]any{
			"salesTax": "7.25",
			"boxCount": "3",
		},
	}

	coerced := CoerceNumbers(tree).(map[string]any)

	assert.Equal(t, 1353.56, coerced["unitPrice"])
	assert.Equal(t, float64(0), coerced["freight"])
	assert.Equal(t, "SKU123", coerced["price"])
	assert.Equal(t, "01234", coerced["zipCode"], "campos fora da lista não são convertidos")
	assert.Equal(t, "2426708", coerced["synnexSku"])
	assert.Equal(t, []any{1000.0, 2.0}, coerced["totalSales"])

	summary := coerced["summary"].(map[string]any)
	assert.Equal(t, 7.25, summary["salesTax"])
	assert.Equal(t, "3", summary["boxCount"])
}
