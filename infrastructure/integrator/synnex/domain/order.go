package synnexdomain

import (
	"github.com/shopspring/decimal"
)

type Address struct {
	AddressName1 string      `json:"addressName1" mapstructure:"addressName1" validate:"required"`
	AddressName2 string      `json:"addressName2,omitempty" mapstructure:"addressName2"`
	AddressLine1 string      `json:"addressLine1,omitempty" mapstructure:"addressLine1"`
	AddressLine2 string      `json:"addressLine2,omitempty" mapstructure:"addressLine2"`
	City         string      `json:"city" mapstructure:"city" validate:"required"`
	State        string      `json:"state" mapstructure:"state" validate:"required"`
	ZipCode      string      `json:"zipCode" mapstructure:"zipCode" validate:"required"`
	Country      CountryCode `json:"country" mapstructure:"country" validate:"omitempty,oneof=US CA"`
}

type Contact struct {
	ContactName  string `json:"contactName"`
	PhoneNumber  string `json:"phoneNumber"`
	EmailAddress string `json:"emailAddress" validate:"omitempty,email"`
}

type ShipMethod struct {
	Code        ShipMethodCode `json:"code"`
	Description string         `json:"description,omitempty"`
}

type Shipment struct {
	ShipFromWarehouse    string      `json:"shipFromWarehouse,omitempty"`
	ShipTo               Address     `json:"shipTo"`
	ShipToContact        *Contact    `json:"shipToContact,omitempty"`
	ShipMethod           *ShipMethod `json:"shipMethod,omitempty"`
	FreightAccountNumber string      `json:"freightAccountNumber,omitempty"`
}

type Payment struct {
	BillTo Address `json:"billTo"`
}

type LicenseeContact struct {
	ContactName  string `json:"contactName"`
	PhoneNumber  string `json:"phoneNumber"`
	FaxNumber    string `json:"faxNumber"`
	EmailAddress string `json:"emailAddress"`
}

type Licensee struct {
	Address
	LicenseeContact LicenseeContact `json:"licenseeContact"`
}

type SoftwareLicense struct {
	AuthorizationNumber string   `json:"authorizationNumber" validate:"required"`
	ReOrder             string   `json:"reOrder,omitempty"`
	Licensee            Licensee `json:"licensee"`
}

type LineItem struct {
	LineNumber         string          `json:"lineNumber" validate:"required"`
	SKU                string          `json:"sku" validate:"required"`
	UnitPrice          decimal.Decimal `json:"unitPrice"`
	OrderQuantity      int             `json:"orderQuantity" validate:"gt=0"`
	ShipFromWarehouse  string          `json:"shipFromWarehouse,omitempty"`
	CustomerPartNumber string          `json:"customerPartNumber,omitempty"`
	ProductName        string          `json:"productName,omitempty"`
	Comments           []string        `json:"comments,omitempty"`
}

type OrderRequest struct {
	CustomerNumber              string           `json:"customerNumber"`
	PONumber                    string           `json:"poNumber" validate:"required"`
	DropShipFlag                DropShipFlag     `json:"dropShipFlag" validate:"omitempty,oneof=Y N"`
	Shipment                    Shipment         `json:"shipment"`
	Payment                     *Payment         `json:"payment,omitempty"`
	Items                       []LineItem       `json:"items" validate:"required,min=1,dive"`
	SoftwareLicense             *SoftwareLicense `json:"softWareLicense,omitempty"`
	EndUserPONumber             string           `json:"endUserPoNumber,omitempty"`
	Comment                     string           `json:"comment,omitempty"`
	BackOrderFlag               string           `json:"backOrderFlag,omitempty" validate:"omitempty,oneof=Y N"`
	SpecialHandle               string           `json:"specialHandle,omitempty" validate:"omitempty,oneof=Y N"`
	SpecialPriceType            SpecialPriceType `json:"specialPriceType,omitempty"`
	SpecialPriceReferenceNumber string           `json:"specialPriceReferenceNumber,omitempty"`
}

type Package struct {
	TrackingNumber   string   `json:"trackingNumber" mapstructure:"trackingNumber"`
	Weight           float64  `json:"weight" mapstructure:"weight"`
	ShipItemQuantity int      `json:"shipItemQuantity" mapstructure:"shipItemQuantity"`
	SerialNo         []string `json:"serialNo,omitempty" mapstructure:"serialNo"`
	IMEI             string   `json:"imei,omitempty" mapstructure:"imei"`
	MACAddress       string   `json:"macAddress,omitempty" mapstructure:"macAddress"`
}

type OrderResponseItem struct {
	LineNumber            string    `json:"lineNumber" mapstructure:"lineNumber"`
	SKU                   string    `json:"sku" mapstructure:"sku"`
	OrderQuantity         int       `json:"orderQuantity" mapstructure:"orderQuantity"`
	Code                  string    `json:"code" mapstructure:"code"`
	Reason                string    `json:"reason,omitempty" mapstructure:"reason"`
	OrderNumber           string    `json:"orderNumber" mapstructure:"orderNumber"`
	OrderType             string    `json:"orderType" mapstructure:"orderType"`
	ShipQuantity          int       `json:"shipQuantity" mapstructure:"shipQuantity"`
	ShipDatetime          string    `json:"shipDatetime,omitempty" mapstructure:"shipDatetime"`
	MfgPN                 string    `json:"mfgPn,omitempty" mapstructure:"mfgPn"`
	ProductName           string    `json:"productName,omitempty" mapstructure:"productName"`
	ShipFromWarehouse     string    `json:"shipFromWarehouse,omitempty" mapstructure:"shipFromWarehouse"`
	ShipFromCity          string    `json:"shipFromCity,omitempty" mapstructure:"shipFromCity"`
	ShipFromState         string    `json:"shipFromState,omitempty" mapstructure:"shipFromState"`
	ShipFromZip           string    `json:"shipFromZip,omitempty" mapstructure:"shipFromZip"`
	ShipMethod            string    `json:"shipMethod,omitempty" mapstructure:"shipMethod"`
	ShipMethodDescription string    `json:"shipMethodDescription,omitempty" mapstructure:"shipMethodDescription"`
	ETADate               string    `json:"etaDate,omitempty" mapstructure:"etaDate"`
	Packages              []Package `json:"packages,omitempty" mapstructure:"packages"`
}

type OrderResponse struct {
	CustomerNumber      string              `json:"customerNumber" mapstructure:"customerNumber"`
	PONumber            string              `json:"poNumber" mapstructure:"poNumber"`
	Code                string              `json:"code" mapstructure:"code"`
	Reason              string              `json:"reason,omitempty" mapstructure:"reason"`
	ResponseDateTime    string              `json:"responseDateTime" mapstructure:"responseDateTime"`
	ResponseElapsedTime string              `json:"responseElapsedTime,omitempty" mapstructure:"responseElapsedTime"`
	Items               []OrderResponseItem `json:"items" mapstructure:"items"`
}

// OrderNumbers devolve os números de pedido do distribuidor sem repetição, na ordem dos itens.
func (r OrderResponse) OrderNumbers() []string {
	numbers := make([]string, 0, len(r.Items))
	for _, item := range r.Items {
		numbers = appendUnique(numbers, item.OrderNumber)
	}
	return numbers
}

func appendUnique(values []string, value string) []string {
	if value == "" {
		return values
	}
	for _, v := range values {
		if v == value {
			return values
		}
	}
	return append(values, value)
}
