package synnexclient

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	synnexdomain "github.com/vfg2006/synnex-gateway/infrastructure/integrator/synnex/domain"
	"github.com/vfg2006/synnex-gateway/infrastructure/integrator/synnex/mocks"
	"github.com/vfg2006/synnex-gateway/infrastructure/integrator/synnex/synnexxml"
	"go.uber.org/mock/gomock"
)

var testConfig = synnexdomain.ClientConfig{
	Environment:   synnexdomain.EnvironmentSandbox,
	Country:       synnexdomain.CountryUS,
	Username:      "user@example.com",
	Password:      "s3cret",
	AccountNumber: "123456",
	AccountName:   "Example Company",
	Timeout:       5 * time.Second,
}

func newTestClient(t *testing.T, opts ...Option) *SynnexClient {
	t.Helper()

	client, err := NewClient(testConfig, opts...)
	require.NoError(t, err)

	return client.(*SynnexClient)
}

func TestBaseURL(t *testing.T) {
	tests := []struct {
		env      synnexdomain.Environment
		country  synnexdomain.CountryCode
		family   synnexdomain.APIFamily
		expected string
	}{
		{synnexdomain.EnvironmentSandbox, synnexdomain.CountryUS, synnexdomain.APIFamilyDefault, "https://testec.us.tdsynnex.com"},
		{synnexdomain.EnvironmentSandbox, synnexdomain.CountryCA, synnexdomain.APIFamilyDefault, "https://testec.ca.tdsynnex.com"},
		{synnexdomain.EnvironmentSandbox, synnexdomain.CountryUS, synnexdomain.APIFamilyInvoice, "https://testws.us.tdsynnex.com/webservice/invoice/query"},
		{synnexdomain.EnvironmentSandbox, synnexdomain.CountryCA, synnexdomain.APIFamilyInvoice, "https://testws.ca.tdsynnex.com/webservice/invoice/query"},
		{synnexdomain.EnvironmentProduction, synnexdomain.CountryUS, synnexdomain.APIFamilyDefault, "https://ec.us.tdsynnex.com"},
		{synnexdomain.EnvironmentProduction, synnexdomain.CountryCA, synnexdomain.APIFamilyDefault, "https://ec.ca.tdsynnex.com"},
		{synnexdomain.EnvironmentProduction, synnexdomain.CountryUS, synnexdomain.APIFamilyInvoice, "https://ws.us.tdsynnex.com/webservice/invoice/query"},
		{synnexdomain.EnvironmentProduction, synnexdomain.CountryCA, synnexdomain.APIFamilyInvoice, "https://ws.ca.tdsynnex.com/webservice/invoice/query"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			url, err := BaseURL(tt.env, tt.country, tt.family)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, url)
		})
	}

	_, err := BaseURL("staging", synnexdomain.CountryUS, synnexdomain.APIFamilyDefault)
	assert.Error(t, err)
}

func TestNewClient_ConfiguracaoInvalida(t *testing.T) {
	cfg := testConfig
	cfg.Country = "MX"

	_, err := NewClient(cfg)

	assert.ErrorIs(t, err, synnexdomain.ErrInvalidCountry)
}

func TestGetFreightWithZip_FimAFim(t *testing.T) {
	var received string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/SynnexXML/FreightQuote", r.URL.Path)
		assert.Equal(t, "application/xml", r.Header.Get("Content-Type"))

		body, _ := io.ReadAll(r.Body)
		received = string(body)

		w.Header().Set("Content-Type", "application/xml")
		_, _ = w.Write([]byte(`<?xml version="1.0" encoding="UTF-8"?><SynnexB2B><ErrorDetail>Ship from warehouse 50 is invalid</ErrorDetail></SynnexB2B>`))
	}))
	defer server.Close()

	client := newTestClient(t, WithBaseURL(server.URL))

	response, err := client.GetFreightWithZip(context.Background(), synnexdomain.FreightWithZipRequest{
		ShipFromWarehouse: "50",
		ShipToZipCode:     "75001",
		Items:             []synnexdomain.FreightItem{{SKU: "2426708", Quantity: 1}},
	})
	require.NoError(t, err)

	assert.Contains(t, received, "<ShipFromWarehouse>50</ShipFromWarehouse>")
	assert.Contains(t, received, "<ShipToZipCode>75001</ShipToZipCode>")
	assert.Equal(t, 1, strings.Count(received, "<Item "))
	assert.Contains(t, received, "<SKU>2426708</SKU>")
	assert.Contains(t, received, "<Quantity>1</Quantity>")

	assert.Equal(t, synnexdomain.ResponseTypeError, response.Type)
	assert.Nil(t, response.Success)
	require.NotNil(t, response.Error)
	assert.Equal(t, "Ship from warehouse 50 is invalid", response.Error.ErrorDetail)
}

func TestGetFreightQuote_Sucesso(t *testing.T) {
	ctrl := gomock.NewController(t)
	transport := mocks.NewMockTransport(ctrl)
	client := newTestClient(t, WithTransport(transport))

	transport.EXPECT().
		Post(gomock.Any(), "https://testec.us.tdsynnex.com/SynnexXML/FreightQuote", gomock.Any()).
		Return([]byte(`<SynnexB2B><FreightQuoteResponse>
<CustomerNumber>123456</CustomerNumber><TotalWeight>12.4</TotalWeight><TotalSales>1,353.56</TotalSales>
<ShipFromWarehouse><Number>3</Number><ZipCode>94538</ZipCode><City>Fremont</City></ShipFromWarehouse>
<ShipTo><AddressName1>Acme</AddressName1><ZipCode>07001</ZipCode></ShipTo>
<AvailableShipMethods>
  <AvailableShipMethod code="FG"><ShipMethodDescription>FedEx Ground</ShipMethodDescription><ServiceLevel>3</ServiceLevel><Freight>1,012.50</Freight></AvailableShipMethod>
  <AvailableShipMethod code="FP"><ShipMethodDescription>FedEx Priority</ShipMethodDescription><ServiceLevel>1</ServiceLevel><Freight>45.00</Freight></AvailableShipMethod>
</AvailableShipMethods>
<Items><Item lineNumber="1"><SKU>A</SKU><Quantity>2</Quantity></Item></Items>
<OtherCharges><MinOrderFee>0.00</MinOrderFee><CODFee>5.00</CODFee></OtherCharges>
</FreightQuoteResponse></SynnexB2B>`), nil)

	response, err := client.GetFreightQuote(context.Background(), synnexdomain.FreightQuoteRequest{
		ShipFromWarehouse: "3",
		ShipTo:            synnexdomain.FreightShipTo{AddressName1: "Acme", City: "Clifton", State: "NJ", ZipCode: "07001"},
		Items:             []synnexdomain.FreightItem{{SKU: "A", Quantity: 2}},
	})
	require.NoError(t, err)
	require.True(t, response.IsSuccess())

	quote := response.Success
	assert.Equal(t, 1353.56, quote.TotalSales)
	assert.Equal(t, "12.4", quote.TotalWeight)
	assert.Equal(t, "Fremont", quote.ShipFromWarehouse.City)
	require.NotNil(t, quote.ShipTo)
	assert.Equal(t, "07001", quote.ShipTo.ZipCode)
	require.Len(t, quote.AvailableShipMethods, 2)
	assert.Equal(t, synnexdomain.AvailableShipMethod{Code: "FG", ShipMethodDescription: "FedEx Ground", ServiceLevel: 3, Freight: 1012.5}, quote.AvailableShipMethods[0])
	require.Len(t, quote.Items, 1)
	assert.Equal(t, 1, quote.Items[0].LineNumber)
	assert.Equal(t, 2, quote.Items[0].Quantity)
	assert.Equal(t, 5.0, quote.OtherCharges.CODFee)
}

func TestSubmitPO(t *testing.T) {
	ctrl := gomock.NewController(t)
	transport := mocks.NewMockTransport(ctrl)
	client := newTestClient(t, WithTransport(transport))

	request := synnexdomain.OrderRequest{
		PONumber: "PO-1",
		Items:    []synnexdomain.LineItem{{LineNumber: "1", SKU: "5555", OrderQuantity: 2}},
	}

	t.Run("pedido aceito", func(t *testing.T) {
		transport.EXPECT().
			Post(gomock.Any(), "https://testec.us.tdsynnex.com/SynnexXML/PO", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, body []byte) ([]byte, error) {
				assert.Contains(t, string(body), "<PONumber>PO-1</PONumber>")
				return []byte(`<SynnexB2B><OrderResponse><CustomerNumber>123456</CustomerNumber><PONumber>PO-1</PONumber><Code>accepted</Code>
<Items><Item lineNumber="1"><SKU>5555</SKU><OrderQuantity>2</OrderQuantity><Code>accepted</Code><OrderNumber>4455</OrderNumber><OrderType>99</OrderType></Item></Items>
</OrderResponse></SynnexB2B>`), nil
			})

		response, err := client.SubmitPO(context.Background(), request)
		require.NoError(t, err)
		require.True(t, response.IsSuccess())

		assert.Equal(t, "accepted", response.Success.Code)
		require.Len(t, response.Success.Items, 1)
		assert.Equal(t, synnexdomain.OrderResponseItem{
			LineNumber:    "1",
			SKU:           "5555",
			OrderQuantity: 2,
			Code:          "accepted",
			OrderNumber:   "4455",
			OrderType:     "99",
		}, response.Success.Items[0])
		assert.Equal(t, []string{"4455"}, response.Success.OrderNumbers())
	})

	t.Run("rejeição do distribuidor não vira error", func(t *testing.T) {
		transport.EXPECT().
			Post(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]byte(`<SynnexB2B><OrderResponse><PONumber>PO-1</PONumber><ErrorDetail>Duplicate PO number</ErrorDetail></OrderResponse></SynnexB2B>`), nil)

		response, err := client.SubmitPO(context.Background(), request)
		require.NoError(t, err)

		assert.Equal(t, synnexdomain.ResponseTypeError, response.Type)
		assert.Equal(t, "Duplicate PO number", response.Error.ErrorDetail)
	})

	t.Run("falha de transporte", func(t *testing.T) {
		transport.EXPECT().
			Post(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.Join(ErrTransport, errors.New("connection refused")))

		_, err := client.SubmitPO(context.Background(), request)

		require.Error(t, err)
		assert.True(t, strings.HasPrefix(err.Error(), "Failed to submit PO: "))
		assert.ErrorIs(t, err, ErrTransport)
	})
}

func TestGetOrderStatus(t *testing.T) {
	t.Run("status com pacotes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		transport := mocks.NewMockTransport(ctrl)
		client := newTestClient(t, WithTransport(transport))

		transport.EXPECT().
			Post(gomock.Any(), "https://testec.us.tdsynnex.com/SynnexXML/PO", gomock.Any()).
			Return([]byte(`<SynnexB2B><OrderStatusResponse><PONumber>PO-1</PONumber><Code>shipped</Code>
<Items>
  <Item lineNumber="1"><Code>shipped</Code><OrderNumber>4455</OrderNumber><UnitPrice>1,200.00</UnitPrice><OrderQuantity>1</OrderQuantity>
    <Packages><Package><TrackingNumber>1Z1</TrackingNumber><Weight>2.5</Weight><SerialNo>SN-1</SerialNo></Package></Packages>
  </Item>
  <Item lineNumber="2"><Code>shipped</Code><OrderNumber>4456</OrderNumber>
    <Packages><Package><TrackingNumber>1Z2</TrackingNumber></Package><Package><TrackingNumber>1Z1</TrackingNumber></Package></Packages>
  </Item>
</Items></OrderStatusResponse></SynnexB2B>`), nil)

		response, err := client.GetOrderStatus(context.Background(), synnexdomain.StatusRequest{PONumber: "PO-1"})
		require.NoError(t, err)
		require.True(t, response.IsSuccess())

		status := response.Success
		assert.Equal(t, "shipped", status.StatusCode())
		require.Len(t, status.Items, 2)
		assert.Equal(t, 1200.0, status.Items[0].UnitPrice)
		assert.Equal(t, []string{"SN-1"}, status.Items[0].Packages[0].SerialNo)
		assert.Equal(t, 2.5, status.Items[0].Packages[0].Weight)
		assert.Equal(t, []string{"4455", "4456"}, status.OrderNumbers())
		assert.Equal(t, []string{"1Z1", "1Z2"}, status.TrackingNumbers())
	})

	t.Run("status HTTP de erro", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			_, _ = w.Write([]byte("upstream down"))
		}))
		defer server.Close()

		client := newTestClient(t, WithBaseURL(server.URL))

		_, err := client.GetOrderStatus(context.Background(), synnexdomain.StatusRequest{PONumber: "PO-1"})

		require.Error(t, err)
		assert.True(t, strings.HasPrefix(err.Error(), "Failed to get PO status: "))
		assert.ErrorIs(t, err, ErrTransport)

		var statusErr *StatusError
		require.True(t, errors.As(err, &statusErr))
		assert.Equal(t, http.StatusBadGateway, statusErr.StatusCode)
		assert.Equal(t, "upstream down", statusErr.Body)
	})
}

func TestGetPriceAvailability(t *testing.T) {
	ctrl := gomock.NewController(t)
	transport := mocks.NewMockTransport(ctrl)
	client := newTestClient(t, WithTransport(transport))

	t.Run("sucesso", func(t *testing.T) {
		transport.EXPECT().
			Post(gomock.Any(), "https://testec.us.tdsynnex.com/SynnexXML/PriceAvailability", gomock.Any()).
			Return([]byte(`<priceResponse><customerNo>123456</customerNo><userName>user@example.com</userName>
<PriceAvailabilityList>
  <synnexSKU>0042</synnexSKU><mfgPN>MFG-1</mfgPN><status>Active</status><price>1,353.56</price><totalQuantity>1,200</totalQuantity><lineNumber>1</lineNumber>
  <AvailabilityByWarehouse><warehouseInfo><number>3</number><zipcode>94538</zipcode><city>Fremont</city><address>44201 Nobel Dr</address></warehouseInfo><qty>1,000</qty></AvailabilityByWarehouse>
  <AvailabilityByWarehouse><warehouseInfo><number>6</number></warehouseInfo><qty>200</qty></AvailabilityByWarehouse>
</PriceAvailabilityList>
</priceResponse>`), nil)

		response, err := client.GetPriceAvailability(context.Background(), synnexdomain.PriceAvailabilityRequest{SKUs: []string{"0042"}})
		require.NoError(t, err)
		require.True(t, response.IsSuccess())

		require.Len(t, response.Success.PriceAvailabilityList, 1)
		item := response.Success.PriceAvailabilityList[0]
		assert.Equal(t, "0042", item.SynnexSKU)
		assert.Equal(t, "MFG-1", item.MfgPN)
		assert.Equal(t, 1353.56, item.Price)
		assert.Equal(t, 1200, item.TotalQuantity)
		assert.Equal(t, 1, item.LineNumber)
		require.Len(t, item.AvailabilityByWarehouse, 2)
		assert.Equal(t, synnexdomain.WarehouseInfo{Number: "3", ZipCode: "94538", City: "Fremont", Address: "44201 Nobel Dr"}, item.AvailabilityByWarehouse[0].WarehouseInfo)
		assert.Equal(t, 1000, item.AvailabilityByWarehouse[0].Qty)
	})

	t.Run("XML inválido", func(t *testing.T) {
		transport.EXPECT().
			Post(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]byte(`<html><body>Maintenance`), nil)

		_, err := client.GetPriceAvailability(context.Background(), synnexdomain.PriceAvailabilityRequest{SKUs: []string{"1"}})

		require.Error(t, err)
		assert.True(t, strings.HasPrefix(err.Error(), "Failed to get price and availability: failed to parse XML"))
		assert.ErrorIs(t, err, synnexxml.ErrParseXML)
	})
}

func TestGetInvoice(t *testing.T) {
	var path string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		_, _ = w.Write([]byte(`<SynnexB2B><InvoiceResponse><CustomerPONumber>PO-1</CustomerPONumber>
<Invoice><InvoiceNumber>900</InvoiceNumber><PaymentTermDays>30</PaymentTermDays>
<Tracking><TrackNumber>1Z1,1Z2</TrackNumber></Tracking>
<Items><Item lineNumber="1"><SKU>1</SKU><UnitPrice>99.90</UnitPrice><ShipQuantity>1</ShipQuantity><SerialNo>SN1</SerialNo><SerialNo>SN2</SerialNo></Item></Items>
<Summary><TotalInvoiceAmount>1,099.90</TotalInvoiceAmount><BoxCount>1</BoxCount></Summary>
</Invoice></InvoiceResponse></SynnexB2B>`))
	}))
	defer server.Close()

	client := newTestClient(t, WithInvoiceURL(server.URL+"/webservice/invoice/query"))

	response, err := client.GetInvoice(context.Background(), synnexdomain.InvoiceQuery{PONumber: "PO-1"})
	require.NoError(t, err)
	require.True(t, response.IsSuccess())

	assert.Equal(t, "/webservice/invoice/query", path)
	assert.Equal(t, "PO-1", response.Success.CustomerPONumber)
	require.Len(t, response.Success.Invoices, 1)

	invoice := response.Success.Invoices[0]
	assert.Equal(t, "900", invoice.InvoiceNumber)
	assert.Equal(t, 30, invoice.PaymentTermDays)
	assert.Equal(t, []string{"1Z1", "1Z2"}, invoice.TrackingNumbers)
	assert.Equal(t, 1099.9, invoice.Summary.TotalInvoiceAmount)
	require.Len(t, invoice.Items, 1)
	assert.Equal(t, []string{"SN1", "SN2"}, invoice.Items[0].SerialNo)
}

func TestGetInvoice_ErroDeNegocio(t *testing.T) {
	ctrl := gomock.NewController(t)
	transport := mocks.NewMockTransport(ctrl)
	client := newTestClient(t, WithTransport(transport))

	transport.EXPECT().
		Post(gomock.Any(), "https://testws.us.tdsynnex.com/webservice/invoice/query", gomock.Any()).
		Return([]byte(`<SynnexB2B><InvoiceResponse><ErrorCode>404</ErrorCode><ErrorReason>Invoice not found</ErrorReason></InvoiceResponse></SynnexB2B>`), nil)

	response, err := client.GetInvoice(context.Background(), synnexdomain.InvoiceQuery{OrderNumber: "4455"})
	require.NoError(t, err)

	assert.Equal(t, synnexdomain.ResponseTypeError, response.Type)
	assert.Equal(t, synnexdomain.ErrorResponse{ErrorCode: "404", ErrorDetail: "Invoice not found"}, *response.Error)
}
