package synnexxml

import (
	"strconv"
	"strings"
)

const (
	KeyType        = "type"
	KeyErrorDetail = "errorDetail"
	KeyErrorCode   = "errorCode"

	TypeSuccess = "success"
	TypeError   = "error"
)

// Status de item de preço/disponibilidade tratados como erro de negócio.
const (
	StatusDiscontinued = "Discontinued"
	StatusNotFound     = "Not found"
)

const unknownErrorDetail = "Unknown error"

// Shape aplica as correções específicas de um tipo de resposta sobre a árvore
// já canonicalizada e devolve o nó final com "type" preenchido.
type Shape func(tree map[string]any) map[string]any

// Normalize executa o pipeline completo: parse, chaves em camelCase,
// conversão numérica e correções por formato de resposta.
func Normalize(data []byte, shape Shape) (map[string]any, error) {
	tree, err := Parse(data)
	if err != nil {
		return nil, err
	}

	canonical, _ := CanonicalizeKeys(tree).(map[string]any)
	coerced, _ := CoerceNumbers(canonical).(map[string]any)

	return shape(coerced), nil
}

// NormalizeOrderResponse trata a resposta do envio de pedido (orderResponse).
func NormalizeOrderResponse(tree map[string]any) map[string]any {
	order := childMap(tree, "orderResponse")

	if detail, ok := firstErrorDetail(tree, order); ok {
		return errorNode(detail, "")
	}
	if detail, ok := bareRootText(tree, "orderResponse"); ok {
		return errorNode(detail, "")
	}

	items := asSequence(order["items"], "item")
	for _, item := range items {
		if m, ok := item.(map[string]any); ok {
			if _, has := m["packages"]; has {
				m["packages"] = asSequence(m["packages"], "package")
			}
		}
	}
	order["items"] = items

	return tag(order, TypeSuccess)
}

// NormalizeOrderStatus trata a consulta de status de pedido (orderStatusResponse).
func NormalizeOrderStatus(tree map[string]any) map[string]any {
	status := childMap(tree, "orderStatusResponse")

	if detail, ok := firstErrorDetail(tree, status); ok {
		return errorNode(detail, "")
	}
	if detail, ok := bareRootText(tree, "orderStatusResponse"); ok {
		return errorNode(detail, "")
	}

	items := asSequence(status["items"], "item")
	for _, item := range items {
		if m, ok := item.(map[string]any); ok {
			m["packages"] = asSequence(m["packages"], "package")
		}
	}
	status["items"] = items

	return tag(status, TypeSuccess)
}

// NormalizePriceAvailability trata a resposta de preço e disponibilidade. É erro
// quando há errorDetail, quando a lista vem vazia ou quando todos os itens estão
// descontinuados ou não encontrados.
func NormalizePriceAvailability(tree map[string]any) map[string]any {
	if detail, ok := firstErrorDetail(tree); ok {
		return errorNode(detail, "")
	}
	if detail, ok := bareRootText(tree, "priceAvailabilityList"); ok {
		return errorNode(detail, "")
	}

	entries := asSequence(tree["priceAvailabilityList"], "")
	if len(entries) == 0 {
		return errorNode("No price and availability data returned", "")
	}

	unavailable := 0
	var lastStatus string
	for _, entry := range entries {
		m, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		m["availabilityByWarehouse"] = asSequence(m["availabilityByWarehouse"], "")

		status := stringValue(m["status"])
		if status == StatusDiscontinued || status == StatusNotFound {
			unavailable++
			lastStatus = status
		}
	}

	if unavailable == len(entries) {
		return errorNode(lastStatus, "")
	}

	tree["priceAvailabilityList"] = entries

	return tag(tree, TypeSuccess)
}

// NormalizeFreightQuote serve às duas cotações de frete; sem freightQuoteResponse a resposta é erro.
func NormalizeFreightQuote(tree map[string]any) map[string]any {
	quote, ok := tree["freightQuoteResponse"].(map[string]any)
	if !ok {
		detail := stringValue(tree[KeyErrorDetail])
		if detail == "" {
			detail = stringValue(tree[TextKey])
		}
		if detail == "" {
			detail = unknownErrorDetail
		}
		return errorNode(detail, "")
	}

	quote["availableShipMethods"] = asSequence(quote["availableShipMethods"], "availableShipMethod")
	quote["items"] = asSequence(quote["items"], "item")

	return tag(quote, TypeSuccess)
}

// NormalizeInvoice trata a consulta de faturas (invoiceResponse).
func NormalizeInvoice(tree map[string]any) map[string]any {
	response := childMap(tree, "invoiceResponse")

	detail := stringValue(tree[KeyErrorDetail])
	if detail == "" {
		detail = stringValue(response[KeyErrorDetail])
	}
	code := stringValue(response[KeyErrorCode])
	reason := stringValue(response["errorReason"])

	if detail != "" || code != "" || reason != "" {
		message := detail
		if message == "" {
			message = reason
		}
		if message == "" {
			message = unknownErrorDetail
		}
		return errorNode(message, code)
	}
	if detail, ok := bareRootText(tree, "invoiceResponse"); ok {
		return errorNode(detail, "")
	}

	invoices := asSequence(response["invoice"], "")
	for _, entry := range invoices {
		invoice, ok := entry.(map[string]any)
		if !ok {
			continue
		}

		items := asSequence(invoice["items"], "item")
		for _, item := range items {
			if m, isMap := item.(map[string]any); isMap {
				m["serialNo"] = asSequence(m["serialNo"], "")
			}
		}
		invoice["items"] = items

		invoice["trackingNumbers"] = trackingNumbers(invoice["tracking"])
		delete(invoice, "tracking")
	}
	response["invoice"] = invoices

	return tag(response, TypeSuccess)
}

// trackingNumbers aceita trackNumber como lista ou como string separada por vírgulas.
func trackingNumbers(tracking any) []any {
	m, ok := tracking.(map[string]any)
	if !ok {
		return []any{}
	}

	numbers := []any{}
	for _, raw := range asSequence(m["trackNumber"], "") {
		for _, part := range strings.Split(stringValue(raw), ",") {
			if trimmed := strings.TrimSpace(part); trimmed != "" {
				numbers = append(numbers, trimmed)
			}
		}
	}

	return numbers
}

// asSequence resolve a ambiguidade item único x lista: aceita um item solto,
// uma lista ou um invólucro {childKey: item|lista} e sempre devolve uma lista.
func asSequence(v any, childKey string) []any {
	switch node := v.(type) {
	case nil:
		return []any{}
	case string:
		if strings.TrimSpace(node) == "" {
			return []any{}
		}
		return []any{node}
	case []any:
		out := make([]any, 0, len(node))
		for _, entry := range node {
			if m, ok := entry.(map[string]any); ok && childKey != "" {
				if inner, has := m[childKey]; has {
					out = append(out, asSequence(inner, "")...)
					continue
				}
			}
			out = append(out, entry)
		}
		return out
	case map[string]any:
		if childKey != "" {
			if inner, has := node[childKey]; has {
				return asSequence(inner, "")
			}
		}
		return []any{node}
	default:
		return []any{node}
	}
}

func childMap(tree map[string]any, key string) map[string]any {
	if m, ok := tree[key].(map[string]any); ok {
		return m
	}
	return map[string]any{}
}

func firstErrorDetail(nodes ...map[string]any) (string, bool) {
	for _, node := range nodes {
		if detail := stringValue(node[KeyErrorDetail]); detail != "" {
			return detail, true
		}
	}
	return "", false
}

// bareRootText devolve o texto solto da raiz quando o corpo esperado não veio,
// como em <SynnexB2B>Invalid credentials</SynnexB2B>
func bareRootText(tree map[string]any, bodyKey string) (string, bool) {
	if _, has := tree[bodyKey]; has {
		return "", false
	}
	text := stringValue(tree[TextKey])
	return text, text != ""
}

func errorNode(detail, code string) map[string]any {
	node := map[string]any{KeyErrorDetail: detail}
	if code != "" {
		node[KeyErrorCode] = code
	}
	return tag(node, TypeError)
}

func tag(node map[string]any, responseType string) map[string]any {
	node[KeyType] = responseType
	return node
}

func stringValue(v any) string {
	switch value := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(value)
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	case map[string]any:
		return stringValue(value[TextKey])
	case []any:
		parts := make([]string, 0, len(value))
		for _, entry := range value {
			if s := stringValue(entry); s != "" {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, "; ")
	default:
		return ""
	}
}
