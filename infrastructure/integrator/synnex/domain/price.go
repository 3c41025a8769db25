package synnexdomain

type PriceAvailabilityRequest struct {
	SKUs []string `json:"skus" validate:"required,min=1,dive,required"`
}

type WarehouseInfo struct {
	Number  string `json:"number" mapstructure:"number"`
	ZipCode string `json:"zipCode" mapstructure:"zipCode"`
	City    string `json:"city" mapstructure:"city"`
	Address string `json:"address" mapstructure:"address"`
}

type WarehouseAvailability struct {
	WarehouseInfo WarehouseInfo `json:"warehouseInfo" mapstructure:"warehouseInfo"`
	Qty           int           `json:"qty" mapstructure:"qty"`
}

type PriceAvailabilityItem struct {
	SynnexSKU               string                  `json:"synnexSku" mapstructure:"synnexSku"`
	MfgPN                   string                  `json:"mfgPn" mapstructure:"mfgPn"`
	MfgCode                 string                  `json:"mfgCode" mapstructure:"mfgCode"`
	Status                  string                  `json:"status" mapstructure:"status"`
	Description             string                  `json:"description" mapstructure:"description"`
	GlobalProductStatusCode string                  `json:"globalProductStatusCode" mapstructure:"globalProductStatusCode"`
	Price                   float64                 `json:"price" mapstructure:"price"`
	TotalQuantity           int                     `json:"totalQuantity" mapstructure:"totalQuantity"`
	AvailabilityByWarehouse []WarehouseAvailability `json:"availabilityByWarehouse" mapstructure:"availabilityByWarehouse"`
	LineNumber              int                     `json:"lineNumber" mapstructure:"lineNumber"`
}

type PriceAvailability struct {
	CustomerNo            string                  `json:"customerNo" mapstructure:"customerNo"`
	UserName              string                  `json:"userName" mapstructure:"userName"`
	PriceAvailabilityList []PriceAvailabilityItem `json:"priceAvailabilityList" mapstructure:"priceAvailabilityList"`
}
