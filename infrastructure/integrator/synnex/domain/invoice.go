package synnexdomain

type InvoiceQuery struct {
	PONumber    string `json:"poNumber,omitempty" validate:"required_without=OrderNumber"`
	OrderNumber string `json:"orderNumber,omitempty" validate:"required_without=PONumber"`
}

type InvoiceAddress struct {
	AddressName1 string `json:"addressName1" mapstructure:"addressName1"`
	AddressName2 string `json:"addressName2,omitempty" mapstructure:"addressName2"`
	AddressLine1 string `json:"addressLine1,omitempty" mapstructure:"addressLine1"`
	AddressLine2 string `json:"addressLine2,omitempty" mapstructure:"addressLine2"`
	City         string `json:"city" mapstructure:"city"`
	State        string `json:"state" mapstructure:"state"`
	ZipCode      string `json:"zipCode" mapstructure:"zipCode"`
	Country      string `json:"country,omitempty" mapstructure:"country"`
}

type InvoiceItem struct {
	LineNumber    string   `json:"lineNumber" mapstructure:"lineNumber"`
	SKU           string   `json:"sku" mapstructure:"sku"`
	MfgPN         string   `json:"mfgPn,omitempty" mapstructure:"mfgPn"`
	Description   string   `json:"description,omitempty" mapstructure:"description"`
	UnitPrice     float64  `json:"unitPrice" mapstructure:"unitPrice"`
	OrderQuantity int      `json:"orderQuantity" mapstructure:"orderQuantity"`
	ShipQuantity  int      `json:"shipQuantity" mapstructure:"shipQuantity"`
	SerialNo      []string `json:"serialNo" mapstructure:"serialNo"`
}

type InvoiceSummary struct {
	TotalInvoiceAmount float64 `json:"totalInvoiceAmount" mapstructure:"totalInvoiceAmount"`
	AllowanceOrCharge  string  `json:"allowanceOrCharge" mapstructure:"allowanceOrCharge"`
	ExpenseTotal       float64 `json:"expenseTotal" mapstructure:"expenseTotal"`
	MinOrderFee        float64 `json:"minOrderFee" mapstructure:"minOrderFee"`
	Rebate             float64 `json:"rebate" mapstructure:"rebate"`
	Freight            float64 `json:"freight" mapstructure:"freight"`
	ProcessingFee      float64 `json:"processingFee" mapstructure:"processingFee"`
	BoxCharge          float64 `json:"boxCharge" mapstructure:"boxCharge"`
	TotalWeight        float64 `json:"totalWeight" mapstructure:"totalWeight"`
	BoxCount           int     `json:"boxCount" mapstructure:"boxCount"`
	SalesTax           float64 `json:"salesTax" mapstructure:"salesTax"`
}

type Invoice struct {
	InvoiceDate             string         `json:"invoiceDate" mapstructure:"invoiceDate"`
	InvoiceNumber           string         `json:"invoiceNumber" mapstructure:"invoiceNumber"`
	OrderType               string         `json:"orderType" mapstructure:"orderType"`
	ApprovalNumber          string         `json:"approvalNumber,omitempty" mapstructure:"approvalNumber"`
	ShipTo                  InvoiceAddress `json:"shipTo" mapstructure:"shipTo"`
	BillTo                  InvoiceAddress `json:"billTo" mapstructure:"billTo"`
	Discount                float64        `json:"discount" mapstructure:"discount"`
	DiscountDays            int            `json:"discountDays" mapstructure:"discountDays"`
	PaymentTermDays         int            `json:"paymentTermDays" mapstructure:"paymentTermDays"`
	PaymentTermDesc         string         `json:"paymentTermDesc" mapstructure:"paymentTermDesc"`
	ShipMethodCode          string         `json:"shipMethodCode" mapstructure:"shipMethodCode"`
	ShipDate                string         `json:"shipDate" mapstructure:"shipDate"`
	Comments                string         `json:"comments,omitempty" mapstructure:"comments"`
	InternalReferenceNumber string         `json:"internalReferenceNumber" mapstructure:"internalReferenceNumber"`
	TrackingNumbers         []string       `json:"trackingNumbers" mapstructure:"trackingNumbers"`
	Items                   []InvoiceItem  `json:"items" mapstructure:"items"`
	Summary                 InvoiceSummary `json:"summary" mapstructure:"summary"`
}

type InvoiceResult struct {
	CustomerNumber   string    `json:"customerNumber,omitempty" mapstructure:"customerNumber"`
	CustomerPONumber string    `json:"customerPoNumber" mapstructure:"customerPoNumber"`
	Invoices         []Invoice `json:"invoices" mapstructure:"invoice"`
}
