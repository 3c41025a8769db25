package synnexxml

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAsSequence(t *testing.T) {
	item := map[string]any{"sku": "1"}
	other := map[string]any{"sku": "2"}

	tests := []struct {
		name     string
		input    any
		childKey string
		expected []any
	}{
		{"ausente", nil, "item", []any{}},
		{"elemento vazio", "", "item", []any{}},
		{"item solto", item, "item", []any{item}},
		{"lista", []any{item, other}, "item", []any{item, other}},
		{"invólucro com um item", map[string]any{"item": item}, "item", []any{item}},
		{"invólucro com lista", map[string]any{"item": []any{item, other}}, "item", []any{item, other}},
		{"lista de invólucros", []any{map[string]any{"item": item}, map[string]any{"item": other}}, "item", []any{item, other}},
		{"texto", "ABC", "", []any{"ABC"}},
		{"número", 10.5, "", []any{10.5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, asSequence(tt.input, tt.childKey))
		})
	}
}

func TestNormalizeOrderStatus_Itens(t *testing.T) {
	tests := []struct {
		name          string
		xml           string
		expectedItems int
	}{
		{
			name:          "um item",
			xml:           `<SynnexB2B><OrderStatusResponse><PONumber>PO-1</PONumber><Items><Item lineNumber="1"><SKU>1</SKU></Item></Items></OrderStatusResponse></SynnexB2B>`,
			expectedItems: 1,
		},
		{
			name:          "dois itens",
			xml:           `<SynnexB2B><OrderStatusResponse><PONumber>PO-1</PONumber><Items><Item lineNumber="1"><SKU>1</SKU></Item><Item lineNumber="2"><SKU>2</SKU></Item></Items></OrderStatusResponse></SynnexB2B>`,
			expectedItems: 2,
		},
		{
			name:          "sem itens",
			xml:           `<SynnexB2B><OrderStatusResponse><PONumber>PO-1</PONumber></OrderStatusResponse></SynnexB2B>`,
			expectedItems: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Normalize([]byte(tt.xml), NormalizeOrderStatus)
			require.NoError(t, err)

			assert.Equal(t, TypeSuccess, result[KeyType])
			items, ok := result["items"].([]any)
			require.True(t, ok, "items deve ser sempre uma lista")
			assert.Len(t, items, tt.expectedItems)
		})
	}
}

func TestNormalizeOrderStatus_Pacotes(t *testing.T) {
	data := []byte(`<SynnexB2B><OrderStatusResponse><Code>shipped</Code><Items>
  <Item lineNumber="1">
    <Code>shipped</Code>
    <UnitPrice>1,200.00</UnitPrice>
    <Packages><Package><TrackingNumber>1Z999</TrackingNumber><Weight>2.5</Weight></Package></Packages>
  </Item>
  <Item lineNumber="2">
    <Code>shipped</Code>
    <Packages>
      <Package><TrackingNumber>1Z100</TrackingNumber></Package>
      <Package><TrackingNumber>1Z101</TrackingNumber></Package>
    </Packages>
  </Item>
  <Item lineNumber="3"><Code>accepted</Code></Item>
</Items></OrderStatusResponse></SynnexB2B>`)

	result, err := Normalize(data, NormalizeOrderStatus)
	require.NoError(t, err)

	items := result["items"].([]any)
	require.Len(t, items, 3)

	first := items[0].(map[string]any)
	assert.Equal(t, 1200.0, first["unitPrice"])
	assert.Equal(t, []any{map[string]any{"trackingNumber": "1Z999", "weight": "2.5"}}, first["packages"])
	assert.Len(t, items[1].(map[string]any)["packages"], 2)
	assert.Equal(t, []any{}, items[2].(map[string]any)["packages"])
}

func TestNormalizeOrderStatus_Erro(t *testing.T) {
	t.Run("errorDetail no nível superior", func(t *testing.T) {
		data := []byte(`<SynnexB2B><ErrorDetail>PO not found</ErrorDetail><OrderStatusResponse><PONumber>PO-1</PONumber></OrderStatusResponse></SynnexB2B>`)

		result, err := Normalize(data, NormalizeOrderStatus)
		require.NoError(t, err)

		assert.Equal(t, map[string]any{"type": "error", "errorDetail": "PO not found"}, result)
	})

	t.Run("errorDetail dentro da resposta", func(t *testing.T) {
		data := []byte(`<SynnexB2B><OrderStatusResponse><PONumber>PO-1</PONumber><ErrorDetail>Invalid PO</ErrorDetail></OrderStatusResponse></SynnexB2B>`)

		result, err := Normalize(data, NormalizeOrderStatus)
		require.NoError(t, err)

		assert.Equal(t, map[string]any{"type": "error", "errorDetail": "Invalid PO"}, result)
	})
}

func TestNormalizeOrderResponse(t *testing.T) {
	t.Run("sucesso com item solto", func(t *testing.T) {
		data := []byte(`<SynnexB2B><OrderResponse><CustomerNumber>123</CustomerNumber><PONumber>PO-1</PONumber><Code>accepted</Code>
<Items><Item lineNumber="1"><SKU>5555</SKU><OrderNumber>4455</OrderNumber><Code>accepted</Code></Item></Items></OrderResponse></SynnexB2B>`)

		result, err := Normalize(data, NormalizeOrderResponse)
		require.NoError(t, err)

		assert.Equal(t, TypeSuccess, result[KeyType])
		assert.Equal(t, "PO-1", result["poNumber"])
		assert.Equal(t, []any{map[string]any{"lineNumber": "1", "sku": "5555", "orderNumber": "4455", "code": "accepted"}}, result["items"])
	})

	t.Run("erro de negócio", func(t *testing.T) {
		data := []byte(`<SynnexB2B><OrderResponse><PONumber>PO-1</PONumber><ErrorDetail>Duplicate PO</ErrorDetail></OrderResponse></SynnexB2B>`)

		result, err := Normalize(data, NormalizeOrderResponse)
		require.NoError(t, err)

		assert.Equal(t, TypeError, result[KeyType])
		assert.Equal(t, "Duplicate PO", result[KeyErrorDetail])
	})
}

func TestNormalize_RaizSoComTexto(t *testing.T) {
	data := []byte(`<?xml version="1.0" encoding="UTF-8"?><SynnexB2B>Invalid credentials</SynnexB2B>`)

	shapes := map[string]Shape{
		"envio de pedido":  NormalizeOrderResponse,
		"status de pedido": NormalizeOrderStatus,
		"preço":            NormalizePriceAvailability,
		"cotação de frete": NormalizeFreightQuote,
		"fatura":           NormalizeInvoice,
	}

	for name, shape := range shapes {
		t.Run(name, func(t *testing.T) {
			result, err := Normalize(data, shape)
			require.NoError(t, err)

			assert.Equal(t, TypeError, result[KeyType])
			assert.Equal(t, "Invalid credentials", result[KeyErrorDetail])
		})
	}
}

func TestNormalizePriceAvailability(t *testing.T) {
	entry := func(status string) string {
		return `<PriceAvailabilityList><synnexSKU>2426708</synnexSKU><status>` + status + `</status><price>1,353.56</price>` +
			`<AvailabilityByWarehouse><warehouseInfo><number>3</number></warehouseInfo><qty>5</qty></AvailabilityByWarehouse></PriceAvailabilityList>`
	}

	tests := []struct {
		name           string
		xml            string
		expectedType   string
		expectedDetail string
	}{
		{
			name:         "item ativo",
			xml:          `<priceResponse><customerNo>123</customerNo>` + entry("Active") + `</priceResponse>`,
			expectedType: TypeSuccess,
		},
		{
			name:           "descontinuado",
			xml:            `<priceResponse>` + entry("Discontinued") + `</priceResponse>`,
			expectedType:   TypeError,
			expectedDetail: "Discontinued",
		},
		{
			name:           "não encontrado",
			xml:            `<priceResponse>` + entry("Not found") + `</priceResponse>`,
			expectedType:   TypeError,
			expectedDetail: "Not found",
		},
		{
			name:         "status com outra caixa não é erro",
			xml:          `<priceResponse>` + entry("not found") + `</priceResponse>`,
			expectedType: TypeSuccess,
		},
		{
			name:         "lista vazia",
			xml:          `<priceResponse><customerNo>123</customerNo></priceResponse>`,
			expectedType: TypeError,
		},
		{
			name:           "errorDetail",
			xml:            `<priceResponse><errorDetail>Invalid login</errorDetail>` + entry("Active") + `</priceResponse>`,
			expectedType:   TypeError,
			expectedDetail: "Invalid login",
		},
		{
			name:         "um ativo e um descontinuado",
			xml:          `<priceResponse>` + entry("Active") + entry("Discontinued") + `</priceResponse>`,
			expectedType: TypeSuccess,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Normalize([]byte(tt.xml), NormalizePriceAvailability)
			require.NoError(t, err)

			assert.Equal(t, tt.expectedType, result[KeyType])
			if tt.expectedDetail != "" {
				assert.Equal(t, tt.expectedDetail, result[KeyErrorDetail])
			}
			if tt.expectedType == TypeSuccess {
				entries := result["priceAvailabilityList"].([]any)
				first := entries[0].(map[string]any)
				assert.Equal(t, 1353.56, first["price"])
				assert.Equal(t, "2426708", first["synnexSku"])
				assert.Len(t, first["availabilityByWarehouse"], 1)
			}
		})
	}
}

func TestNormalizeFreightQuote(t *testing.T) {
	t.Run("sucesso", func(t *testing.T) {
		data := []byte(`<SynnexB2B><FreightQuoteResponse><CustomerNumber>123</CustomerNumber><TotalSales>1,500.00</TotalSales>
<ShipFromWarehouse><Number>50</Number></ShipFromWarehouse><ShipToZipCode>75001</ShipToZipCode>
<AvailableShipMethods><AvailableShipMethod code="FG"><ShipMethodDescription>FedEx Ground</ShipMethodDescription><ServiceLevel>3</ServiceLevel><Freight>12.50</Freight></AvailableShipMethod></AvailableShipMethods>
</FreightQuoteResponse></SynnexB2B>`)

		result, err := Normalize(data, NormalizeFreightQuote)
		require.NoError(t, err)

		assert.Equal(t, TypeSuccess, result[KeyType])
		assert.Equal(t, 1500.0, result["totalSales"])
		assert.Equal(t, "75001", result["shipToZipCode"])
		assert.Equal(t, []any{map[string]any{
			"code":                  "FG",
			"shipMethodDescription": "FedEx Ground",
			"serviceLevel":          "3",
			"freight":               12.5,
		}}, result["availableShipMethods"])
		assert.Equal(t, []any{}, result["items"])
	})

	t.Run("sem invólucro de sucesso", func(t *testing.T) {
		data := []byte(`<SynnexB2B><ErrorDetail>Invalid ship from warehouse</ErrorDetail></SynnexB2B>`)

		result, err := Normalize(data, NormalizeFreightQuote)
		require.NoError(t, err)

		assert.Equal(t, map[string]any{"type": "error", "errorDetail": "Invalid ship from warehouse"}, result)
	})
}

func TestNormalizeInvoice(t *testing.T) {
	t.Run("sucesso", func(t *testing.T) {
		data := []byte(`<SynnexB2B><InvoiceResponse><CustomerPONumber>PO-1</CustomerPONumber>
<Invoice>
  <InvoiceNumber>900</InvoiceNumber>
  <Tracking><TrackNumber>1Z1, 1Z2 ,</TrackNumber></Tracking>
  <Items><Item lineNumber="1"><SKU>1</SKU><UnitPrice>99.90</UnitPrice><SerialNo>SN1</SerialNo></Item></Items>
  <Summary><TotalInvoiceAmount>1,099.90</TotalInvoiceAmount></Summary>
</Invoice>
</InvoiceResponse></SynnexB2B>`)

		result, err := Normalize(data, NormalizeInvoice)
		require.NoError(t, err)

		assert.Equal(t, TypeSuccess, result[KeyType])
		assert.Equal(t, "PO-1", result["customerPoNumber"])

		invoices := result["invoice"].([]any)
		require.Len(t, invoices, 1)

		invoice := invoices[0].(map[string]any)
		assert.Equal(t, []any{"1Z1", "1Z2"}, invoice["trackingNumbers"])
		assert.NotContains(t, invoice, "tracking")
		assert.Equal(t, 1099.9, invoice["summary"].(map[string]any)["totalInvoiceAmount"])

		items := invoice["items"].([]any)
		require.Len(t, items, 1)
		assert.Equal(t, []any{"SN1"}, items[0].(map[string]any)["serialNo"])
		assert.Equal(t, 99.9, items[0].(map[string]any)["unitPrice"])
	})

	t.Run("tracking em lista", func(t *testing.T) {
		data := []byte(`<SynnexB2B><InvoiceResponse><Invoice><Tracking><TrackNumber>A1</TrackNumber><TrackNumber> B2 </TrackNumber></Tracking></Invoice><Invoice><InvoiceNumber>2</InvoiceNumber></Invoice></InvoiceResponse></SynnexB2B>`)

		result, err := Normalize(data, NormalizeInvoice)
		require.NoError(t, err)

		invoices := result["invoice"].([]any)
		require.Len(t, invoices, 2)
		assert.Equal(t, []any{"A1", "B2"}, invoices[0].(map[string]any)["trackingNumbers"])
		assert.Equal(t, []any{}, invoices[1].(map[string]any)["trackingNumbers"])
		assert.Equal(t, []any{}, invoices[1].(map[string]any)["items"])
	})

	tests := []struct {
		name     string
		xml      string
		expected map[string]any
	}{
		{
			name:     "errorDetail",
			xml:      `<SynnexB2B><ErrorDetail>Invalid credentials</ErrorDetail></SynnexB2B>`,
			expected: map[string]any{"type": "error", "errorDetail": "Invalid credentials"},
		},
		{
			name:     "errorCode e errorReason",
			xml:      `<SynnexB2B><InvoiceResponse><ErrorCode>404</ErrorCode><ErrorReason>Invoice not found</ErrorReason></InvoiceResponse></SynnexB2B>`,
			expected: map[string]any{"type": "error", "errorDetail": "Invoice not found", "errorCode": "404"},
		},
		{
			name:     "só errorCode",
			xml:      `<SynnexB2B><InvoiceResponse><ErrorCode>500</ErrorCode></InvoiceResponse></SynnexB2B>`,
			expected: map[string]any{"type": "error", "errorDetail": "Unknown error", "errorCode": "500"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Normalize([]byte(tt.xml), NormalizeInvoice)
			require.NoError(t, err)

			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestNormalize_XMLInvalido(t *testing.T) {
	_, err := Normalize([]byte(`<SynnexB2B><OrderResponse>`), NormalizeOrderResponse)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrParseXML)
}
