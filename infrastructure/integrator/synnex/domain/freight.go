package synnexdomain

import "time"

const (
	FreightQuoteVersion        = "2.0"
	FreightQuoteWithZipVersion = "1.0"
)

type FreightShipTo struct {
	AddressName1 string `json:"addressName1" validate:"required"`
	AddressName2 string `json:"addressName2,omitempty"`
	City         string `json:"city" validate:"required"`
	State        string `json:"state" validate:"required"`
	ZipCode      string `json:"zipCode" validate:"required"`
	Country      string `json:"country"`
}

type FreightItem struct {
	LineNumber    int    `json:"lineNumber,omitempty"`
	SKU           string `json:"sku" validate:"required"`
	MfgPartNumber string `json:"mfgPartNumber,omitempty"`
	Description   string `json:"description,omitempty"`
	Quantity      int    `json:"quantity" validate:"gt=0"`
}

type FreightQuoteRequest struct {
	Version           string        `json:"version,omitempty"`
	CustomerNumber    string        `json:"customerNumber,omitempty"`
	CustomerName      string        `json:"customerName,omitempty"`
	RequestDateTime   time.Time     `json:"requestDateTime,omitempty"`
	ShipFromWarehouse string        `json:"shipFromWarehouse" validate:"required"`
	ShipTo            FreightShipTo `json:"shipTo"`
	ShipMethodCode    string        `json:"shipMethodCode,omitempty"`
	ServiceLevel      int           `json:"serviceLevel,omitempty"`
	Items             []FreightItem `json:"items" validate:"required,min=1,dive"`
}

type FreightWithZipRequest struct {
	Version           string        `json:"version,omitempty"`
	CustomerNumber    string        `json:"customerNumber,omitempty"`
	CustomerName      string        `json:"customerName,omitempty"`
	RequestDateTime   time.Time     `json:"requestDateTime,omitempty"`
	ShipFromWarehouse string        `json:"shipFromWarehouse" validate:"required"`
	ShipToZipCode     string        `json:"shipToZipCode" validate:"required"`
	Items             []FreightItem `json:"items" validate:"required,min=1,dive"`
}

type ShipFromWarehouse struct {
	Number  string `json:"number" mapstructure:"number"`
	ZipCode string `json:"zipCode" mapstructure:"zipCode"`
	City    string `json:"city" mapstructure:"city"`
	Addr    string `json:"addr" mapstructure:"addr"`
}

type QuotedShipTo struct {
	AddressName1 string `json:"addressName1" mapstructure:"addressName1"`
	AddressName2 string `json:"addressName2,omitempty" mapstructure:"addressName2"`
	AddressLine1 string `json:"addressLine1,omitempty" mapstructure:"addressLine1"`
	AddressLine2 string `json:"addressLine2,omitempty" mapstructure:"addressLine2"`
	City         string `json:"city" mapstructure:"city"`
	State        string `json:"state" mapstructure:"state"`
	ZipCode      string `json:"zipCode" mapstructure:"zipCode"`
	Country      string `json:"country" mapstructure:"country"`
	AddressType  string `json:"addressType,omitempty" mapstructure:"addressType"`
}

type QuotedItem struct {
	LineNumber    int    `json:"lineNumber" mapstructure:"lineNumber"`
	SKU           string `json:"sku" mapstructure:"sku"`
	MfgPartNumber string `json:"mfgPartNumber,omitempty" mapstructure:"mfgPartNumber"`
	Description   string `json:"description,omitempty" mapstructure:"description"`
	Quantity      int    `json:"quantity" mapstructure:"quantity"`
}

type AvailableShipMethod struct {
	Code                  string  `json:"code" mapstructure:"code"`
	ShipMethodDescription string  `json:"shipMethodDescription" mapstructure:"shipMethodDescription"`
	ServiceLevel          int     `json:"serviceLevel" mapstructure:"serviceLevel"`
	Freight               float64 `json:"freight" mapstructure:"freight"`
}

type OtherCharges struct {
	MinOrderFee float64 `json:"minOrderFee" mapstructure:"minOrderFee"`
	CODFee      float64 `json:"codFee" mapstructure:"codFee"`
}

// FreightQuote é o resultado das duas cotações de frete (por endereço ou por CEP).
type FreightQuote struct {
	CustomerNumber          string                `json:"customerNumber" mapstructure:"customerNumber"`
	ResponseDateTime        string                `json:"responseDateTime" mapstructure:"responseDateTime"`
	ResponseElapsedTime     string                `json:"responseElapsedTime" mapstructure:"responseElapsedTime"`
	TotalWeight             string                `json:"totalWeight" mapstructure:"totalWeight"`
	TotalSales              float64               `json:"totalSales" mapstructure:"totalSales"`
	FreeFreightThreshold    string                `json:"freeFreightThreshold" mapstructure:"freeFreightThreshold"`
	ShipFromWarehouse       ShipFromWarehouse     `json:"shipFromWarehouse" mapstructure:"shipFromWarehouse"`
	ShipTo                  *QuotedShipTo         `json:"shipTo,omitempty" mapstructure:"shipTo"`
	ShipToZipCode           string                `json:"shipToZipCode,omitempty" mapstructure:"shipToZipCode"`
	ShipMethodCode          string                `json:"shipMethodCode,omitempty" mapstructure:"shipMethodCode"`
	ShipMethodDescription   string                `json:"shipMethodDescription,omitempty" mapstructure:"shipMethodDescription"`
	ServiceLevel            int                   `json:"serviceLevel,omitempty" mapstructure:"serviceLevel"`
	Items                   []QuotedItem          `json:"items" mapstructure:"items"`
	AvailableShipMethods    []AvailableShipMethod `json:"availableShipMethods" mapstructure:"availableShipMethods"`
	OtherCharges            OtherCharges          `json:"otherCharges" mapstructure:"otherCharges"`
	SynnexInternalReference string                `json:"synnexInternalReference" mapstructure:"synnexInternalReference"`
}
