package synnexxml

import (
	"strconv"
	"time"

	"github.com/beevik/etree"
	synnexdomain "github.com/vfg2006/synnex-gateway/infrastructure/integrator/synnex/domain"
)

// RequestDateTimeLayout é o formato de data/hora aceito nas cotações de frete.
const RequestDateTimeLayout = "2006-01-02T15:04:05.000Z"

const defaultReOrder = "Y"

// Builder monta os documentos XML de requisição. Guarda apenas a configuração
// imutável do cliente, então pode ser usado por várias goroutines.
type Builder struct {
	config synnexdomain.ClientConfig
	now    func() time.Time
}

type BuilderOption func(*Builder)

// WithClock troca o relógio usado para preencher RequestDateTime.
func WithClock(now func() time.Time) BuilderOption {
	return func(b *Builder) {
		b.now = now
	}
}

func NewBuilder(cfg synnexdomain.ClientConfig, opts ...BuilderOption) *Builder {
	b := &Builder{
		config: cfg,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// BuildOrderRequest monta o XML de envio de pedido de compra.
func (b *Builder) BuildOrderRequest(req synnexdomain.OrderRequest) (string, error) {
	doc, root := newDocument("SynnexB2B")
	b.credential(root)

	order := root.CreateElement("OrderRequest")
	customerNumber := b.customerNumber(req.CustomerNumber)
	addText(order, "CustomerNumber", customerNumber)
	addText(order, "PONumber", req.PONumber)

	dropShip := req.DropShipFlag
	if dropShip == "" {
		dropShip = synnexdomain.DropShipNo
	}
	addText(order, "DropShipFlag", string(dropShip))

	shipment := order.CreateElement("Shipment")
	addText(shipment, "ShipFromWarehouse", req.Shipment.ShipFromWarehouse)
	addAddress(shipment.CreateElement("ShipTo"), req.Shipment.ShipTo, true)

	contact := req.Shipment.ShipToContact
	if contact == nil {
		contact = &synnexdomain.Contact{}
	}
	shipToContact := shipment.CreateElement("ShipToContact")
	addText(shipToContact, "ContactName", contact.ContactName)
	addText(shipToContact, "PhoneNumber", contact.PhoneNumber)
	addText(shipToContact, "EmailAddress", contact.EmailAddress)

	shipMethodCode := synnexdomain.DefaultShipMethod
	if req.Shipment.ShipMethod != nil && req.Shipment.ShipMethod.Code != "" {
		shipMethodCode = req.Shipment.ShipMethod.Code
	}
	addText(shipment.CreateElement("ShipMethod"), "Code", string(shipMethodCode))
	addOptional(shipment, "FreightAccountNumber", req.Shipment.FreightAccountNumber)

	billTo := order.CreateElement("Payment").CreateElement("BillTo")
	billTo.CreateAttr("code", customerNumber)
	if req.Payment != nil {
		addAddress(billTo, req.Payment.BillTo, false)
	}

	items := order.CreateElement("Items")
	for _, item := range req.Items {
		el := items.CreateElement("Item")
		el.CreateAttr("lineNumber", item.LineNumber)
		addText(el, "SKU", item.SKU)
		addText(el, "UnitPrice", item.UnitPrice.String())
		addText(el, "OrderQuantity", strconv.Itoa(item.OrderQuantity))
		addOptional(el, "ShipFromWarehouse", item.ShipFromWarehouse)
		addOptional(el, "CustomerPartNumber", item.CustomerPartNumber)
		addOptional(el, "ProductName", item.ProductName)
		if len(item.Comments) > 0 {
			comments := el.CreateElement("Comments")
			for _, comment := range item.Comments {
				addText(comments, "Comment", comment)
			}
		}
	}

	if req.SoftwareLicense != nil {
		addSoftwareLicense(order, *req.SoftwareLicense)
	}
	addOptional(order, "EndUserPONumber", req.EndUserPONumber)
	addOptional(order, "Comment", req.Comment)
	addOptional(order, "BackOrderFlag", req.BackOrderFlag)
	addOptional(order, "SpecialHandle", req.SpecialHandle)
	if req.SpecialPriceType != "" {
		addText(order, "SpecialPriceType", string(req.SpecialPriceType))
		if req.SpecialPriceType == synnexdomain.SpecialPriceVendorPromotion && req.SpecialPriceReferenceNumber != "" {
			addText(order, "SpecialPriceReferenceNumber", req.SpecialPriceReferenceNumber)
		}
	}

	return serialize(doc)
}

// BuildStatusRequest monta a consulta de status de um PO.
func (b *Builder) BuildStatusRequest(req synnexdomain.StatusRequest) (string, error) {
	doc, root := newDocument("SynnexB2B")
	b.credential(root)

	status := root.CreateElement("OrderStatusRequest")
	addText(status, "CustomerNumber", b.config.AccountNumber)
	addText(status, "PONumber", req.PONumber)

	return serialize(doc)
}

// BuildPriceAvailabilityRequest monta a consulta de preço e disponibilidade.
// As credenciais vão inline e cada SKU recebe lineNumber pela posição (1..N).
func (b *Builder) BuildPriceAvailabilityRequest(req synnexdomain.PriceAvailabilityRequest) (string, error) {
	doc, root := newDocument("priceRequest")
	addText(root, "customerNo", b.config.AccountNumber)
	addText(root, "userName", b.config.Username)
	addText(root, "password", b.config.Password)

	for i, sku := range req.SKUs {
		entry := root.CreateElement("skuList")
		addText(entry, "synnexSKU", sku)
		addText(entry, "lineNumber", strconv.Itoa(i+1))
	}

	return serialize(doc)
}

// BuildFreightQuoteRequest monta a cotação de frete por endereço completo.
func (b *Builder) BuildFreightQuoteRequest(req synnexdomain.FreightQuoteRequest) (string, error) {
	doc, root := newDocument("SynnexB2B")
	b.credential(root)

	quote := root.CreateElement("FreightQuoteRequest")
	quote.CreateAttr("version", valueOr(req.Version, synnexdomain.FreightQuoteVersion))

	addText(quote, "CustomerNumber", valueOr(req.CustomerNumber, b.config.AccountNumber))
	addText(quote, "CustomerName", valueOr(req.CustomerName, b.config.AccountName))
	addText(quote, "RequestDateTime", b.requestDateTime(req.RequestDateTime))
	addText(quote, "ShipFromWarehouse", req.ShipFromWarehouse)

	shipTo := quote.CreateElement("ShipTo")
	addText(shipTo, "AddressName1", req.ShipTo.AddressName1)
	addText(shipTo, "AddressName2", req.ShipTo.AddressName2)
	addText(shipTo, "City", req.ShipTo.City)
	addText(shipTo, "State", req.ShipTo.State)
	addText(shipTo, "ZipCode", req.ShipTo.ZipCode)
	addText(shipTo, "Country", req.ShipTo.Country)

	addText(quote, "ShipMethodCode", req.ShipMethodCode)
	serviceLevel := ""
	if req.ServiceLevel > 0 {
		serviceLevel = strconv.Itoa(req.ServiceLevel)
	}
	addText(quote, "ServiceLevel", serviceLevel)

	items := quote.CreateElement("Items")
	for i, item := range req.Items {
		el := items.CreateElement("Item")
		el.CreateAttr("lineNumber", lineNumber(item.LineNumber, i))
		addText(el, "SKU", item.SKU)
		addText(el, "MfgPartNumber", item.MfgPartNumber)
		addText(el, "Description", item.Description)
		addText(el, "Quantity", strconv.Itoa(item.Quantity))
	}

	return serialize(doc)
}

// BuildFreightWithZipRequest monta a cotação de frete simplificada, só com o CEP de destino.
func (b *Builder) BuildFreightWithZipRequest(req synnexdomain.FreightWithZipRequest) (string, error) {
	doc, root := newDocument("SynnexB2B")
	b.credential(root)

	quote := root.CreateElement("FreightQuoteRequest")
	quote.CreateAttr("version", valueOr(req.Version, synnexdomain.FreightQuoteWithZipVersion))

	addText(quote, "CustomerNumber", b.customerNumber(req.CustomerNumber))
	addText(quote, "CustomerName", valueOr(b.config.AccountName, req.CustomerName))
	addText(quote, "RequestDateTime", b.requestDateTime(req.RequestDateTime))
	addText(quote, "ShipFromWarehouse", req.ShipFromWarehouse)
	addText(quote, "ShipToZipCode", req.ShipToZipCode)

	items := quote.CreateElement("Items")
	for i, item := range req.Items {
		el := items.CreateElement("Item")
		el.CreateAttr("lineNumber", lineNumber(item.LineNumber, i))
		addText(el, "SKU", item.SKU)
		addText(el, "Quantity", strconv.Itoa(item.Quantity))
	}

	return serialize(doc)
}

// BuildInvoiceRequest monta a consulta de faturas por PO e/ou número de pedido.
func (b *Builder) BuildInvoiceRequest(query synnexdomain.InvoiceQuery) (string, error) {
	doc, root := newDocument("SynnexB2B")
	root.CreateAttr("version", "1.0")
	b.credential(root)

	invoice := root.CreateElement("InvoiceRequest")
	addText(invoice, "CustomerNumber", b.config.AccountNumber)
	addOptional(invoice, "PONumber", query.PONumber)
	addOptional(invoice, "OrderNumber", query.OrderNumber)

	return serialize(doc)
}

func (b *Builder) credential(parent *etree.Element) {
	credential := b.config.Credential()
	el := parent.CreateElement("Credential")
	addText(el, "UserID", credential.UserID)
	addText(el, "Password", credential.Password)
}

// customerNumber prioriza a conta configurada sobre o valor da requisição.
func (b *Builder) customerNumber(fromRequest string) string {
	return valueOr(b.config.AccountNumber, fromRequest)
}

func (b *Builder) requestDateTime(t time.Time) string {
	if t.IsZero() {
		t = b.now()
	}
	return t.UTC().Format(RequestDateTimeLayout)
}

func addAddress(parent *etree.Element, address synnexdomain.Address, withCountry bool) {
	addText(parent, "AddressName1", address.AddressName1)
	addText(parent, "AddressName2", address.AddressName2)
	addText(parent, "AddressLine1", address.AddressLine1)
	addText(parent, "AddressLine2", address.AddressLine2)
	addText(parent, "City", address.City)
	addText(parent, "State", address.State)
	addText(parent, "ZipCode", address.ZipCode)
	if withCountry {
		addText(parent, "Country", string(address.Country))
	}
}

func addSoftwareLicense(parent *etree.Element, license synnexdomain.SoftwareLicense) {
	el := parent.CreateElement("SoftWareLicense")
	addText(el, "AuthorizationNumber", license.AuthorizationNumber)
	addText(el, "ReOrder", valueOr(license.ReOrder, defaultReOrder))

	licensee := el.CreateElement("Licensee")
	addAddress(licensee, license.Licensee.Address, true)

	contact := licensee.CreateElement("LicenseeContact")
	addText(contact, "ContactName", license.Licensee.LicenseeContact.ContactName)
	addText(contact, "PhoneNumber", license.Licensee.LicenseeContact.PhoneNumber)
	addText(contact, "FaxNumber", license.Licensee.LicenseeContact.FaxNumber)
	addText(contact, "EmailAddress", license.Licensee.LicenseeContact.EmailAddress)
}

func newDocument(rootTag string) (*etree.Document, *etree.Element) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	doc.WriteSettings.CanonicalEndTags = true
	return doc, doc.CreateElement(rootTag)
}

func serialize(doc *etree.Document) (string, error) {
	doc.Indent(2)
	return doc.WriteToString()
}

func addText(parent *etree.Element, tag, value string) *etree.Element {
	el := parent.CreateElement(tag)
	el.SetText(value)
	return el
}

func addOptional(parent *etree.Element, tag, value string) {
	if value == "" {
		return
	}
	addText(parent, tag, value)
}

func lineNumber(fromRequest, index int) string {
	if fromRequest > 0 {
		return strconv.Itoa(fromRequest)
	}
	return strconv.Itoa(index + 1)
}

func valueOr(value, fallback string) string {
	if value != "" {
		return value
	}
	return fallback
}
