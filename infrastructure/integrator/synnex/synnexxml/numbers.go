package synnexxml

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// currencyFields são as únicas chaves convertidas para número na normalização.
// Demais campos numéricos (quantidades, pesos) são convertidos na decodificação
// tipada, o que preserva zeros à esquerda de CEPs, SKUs e códigos de armazém.
var currencyFields = map[string]struct{}{
	"unitPrice":          {},
	"price":              {},
	"freight":            {},
	"tax":                {},
	"salesTax":           {},
	"rebate":             {},
	"handlingFee":        {},
	"recyclingFee":       {},
	"minOrderFee":        {},
	"codFee":             {},
	"processingFee":      {},
	"boxCharge":          {},
	"expenseTotal":       {},
	"totalInvoiceAmount": {},
	"totalSales":         {},
}

var decimalPattern = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)

// ParseNumber interpreta um valor do distribuidor como número finito,
// ignorando separadores de milhar ("1,353.56" -> 1353.56).
func ParseNumber(s string) (float64, bool) {
	cleaned := strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if cleaned == "" || !decimalPattern.MatchString(cleaned) {
		return 0, false
	}

	f, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, false
	}

	return f, true
}

func IsCurrencyField(key string) bool {
	_, ok := currencyFields[key]
	return ok
}

// CoerceNumbers converte para float64 os valores de campos monetários que parecem números.
// Valores que não são números ficam como estão.
func CoerceNumbers(v any) any {
	return coerce(v, false)
}

func coerce(v any, currency bool) any {
	switch node := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(node))
		for key, value := range node {
			out[key] = coerce(value, IsCurrencyField(key))
		}
		return out
	case []any:
		out := make([]any, len(node))
		for i, value := range node {
			out[i] = coerce(value, currency)
		}
		return out
	case string:
		if !currency {
			return node
		}
		if f, ok := ParseNumber(node); ok {
			return f
		}
		return node
	default:
		return v
	}
}
