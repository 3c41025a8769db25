package synnexdomain

type StatusRequest struct {
	PONumber string `json:"poNumber" validate:"required"`
}

type OrderStatusItem struct {
	LineNumber            string    `json:"lineNumber" mapstructure:"lineNumber"`
	Code                  string    `json:"code" mapstructure:"code"`
	Reason                string    `json:"reason,omitempty" mapstructure:"reason"`
	ShipDatetime          string    `json:"shipDatetime,omitempty" mapstructure:"shipDatetime"`
	OrderNumber           string    `json:"orderNumber" mapstructure:"orderNumber"`
	OrderType             string    `json:"orderType" mapstructure:"orderType"`
	OrderQuantity         int       `json:"orderQuantity" mapstructure:"orderQuantity"`
	UnitPrice             float64   `json:"unitPrice" mapstructure:"unitPrice"`
	SKU                   string    `json:"sku" mapstructure:"sku"`
	MfgPN                 string    `json:"mfgPn" mapstructure:"mfgPn"`
	ProductName           string    `json:"productName" mapstructure:"productName"`
	ShipQuantity          int       `json:"shipQuantity" mapstructure:"shipQuantity"`
	ShipFromWarehouse     string    `json:"shipFromWarehouse,omitempty" mapstructure:"shipFromWarehouse"`
	ShipFromCity          string    `json:"shipFromCity,omitempty" mapstructure:"shipFromCity"`
	ShipFromState         string    `json:"shipFromState,omitempty" mapstructure:"shipFromState"`
	ShipFromZip           string    `json:"shipFromZip,omitempty" mapstructure:"shipFromZip"`
	ShipMethod            string    `json:"shipMethod,omitempty" mapstructure:"shipMethod"`
	ShipMethodDescription string    `json:"shipMethodDescription,omitempty" mapstructure:"shipMethodDescription"`
	ETADate               string    `json:"etaDate,omitempty" mapstructure:"etaDate"`
	Freight               float64   `json:"freight,omitempty" mapstructure:"freight"`
	HandlingFee           float64   `json:"handlingFee,omitempty" mapstructure:"handlingFee"`
	Tax                   float64   `json:"tax,omitempty" mapstructure:"tax"`
	RecyclingFee          float64   `json:"recyclingFee,omitempty" mapstructure:"recyclingFee"`
	Packages              []Package `json:"packages" mapstructure:"packages"`
	EstimatedDeliveryDate string    `json:"estimatedDeliveryDate,omitempty" mapstructure:"estimatedDeliveryDate"`
	EstimatedShipDate     string    `json:"estimatedShipDate,omitempty" mapstructure:"estimatedShipDate"`
	EstimatedShipDateCode string    `json:"estimatedShipDateCode,omitempty" mapstructure:"estimatedShipDateCode"`
	VendorOrderNumber     string    `json:"vendorOrderNumber,omitempty" mapstructure:"vendorOrderNumber"`
	CustPOLineNo          string    `json:"custPoLineNo,omitempty" mapstructure:"custPoLineNo"`
}

type OrderStatus struct {
	CustomerNumber      string            `json:"customerNumber" mapstructure:"customerNumber"`
	PONumber            string            `json:"poNumber" mapstructure:"poNumber"`
	Code                string            `json:"code" mapstructure:"code"`
	Reason              string            `json:"reason,omitempty" mapstructure:"reason"`
	PODatetime          string            `json:"poDatetime,omitempty" mapstructure:"poDatetime"`
	ResponseDateTime    string            `json:"responseDateTime" mapstructure:"responseDateTime"`
	ResponseElapsedTime string            `json:"responseElapsedTime,omitempty" mapstructure:"responseElapsedTime"`
	Items               []OrderStatusItem `json:"items" mapstructure:"items"`
}

// StatusCode é o código do pedido; sem código no cabeçalho, vale o primeiro item que tiver um.
func (s OrderStatus) StatusCode() string {
	if s.Code != "" {
		return s.Code
	}
	for _, item := range s.Items {
		if item.Code != "" {
			return item.Code
		}
	}
	return ""
}

func (s OrderStatus) OrderNumbers() []string {
	numbers := make([]string, 0, len(s.Items))
	for _, item := range s.Items {
		numbers = appendUnique(numbers, item.OrderNumber)
	}
	return numbers
}

func (s OrderStatus) TrackingNumbers() []string {
	numbers := []string{}
	for _, item := range s.Items {
		for _, pkg := range item.Packages {
			numbers = appendUnique(numbers, pkg.TrackingNumber)
		}
	}
	return numbers
}
