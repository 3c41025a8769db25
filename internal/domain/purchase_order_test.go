package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStateFromStatusCode(t *testing.T) {
	tests := []struct {
		code     string
		expected PurchaseOrderState
	}{
		{"accepted", PurchaseOrderStateOpen},
		{"", PurchaseOrderStateOpen},
		{"backordered", PurchaseOrderStateOpen},
		{"shipped", PurchaseOrderStateClosed},
		{" Invoiced ", PurchaseOrderStateClosed},
		{"CANCELLED", PurchaseOrderStateClosed},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.expected, StateFromStatusCode(tt.code))
		})
	}
}

func TestClaims_HasScope(t *testing.T) {
	claims := &Claims{ClientID: "erp", Scopes: []string{ScopeOrdersRead, ScopeQuotesRead}}

	assert.True(t, claims.HasScope(ScopeOrdersRead))
	assert.False(t, claims.HasScope(ScopeOrdersWrite))

	var empty *Claims
	assert.False(t, empty.HasScope(ScopeOrdersRead))
}
