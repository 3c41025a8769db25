package domain

import (
	"strings"
	"time"
)

type PurchaseOrderState string

const (
	PurchaseOrderStateOpen     PurchaseOrderState = "OPEN"
	PurchaseOrderStateClosed   PurchaseOrderState = "CLOSED"
	PurchaseOrderStateRejected PurchaseOrderState = "REJECTED"
)

// Códigos de status do distribuidor que encerram o acompanhamento do pedido
var closedStatusCodes = map[string]bool{
	"shipped":   true,
	"invoiced":  true,
	"cancelled": true,
	"canceled":  true,
	"deleted":   true,
	"rejected":  true,
}

// StateFromStatusCode classifica o código devolvido pela consulta de status
func StateFromStatusCode(code string) PurchaseOrderState {
	if closedStatusCodes[normalizeCode(code)] {
		return PurchaseOrderStateClosed
	}
	return PurchaseOrderStateOpen
}

func normalizeCode(code string) string {
	return strings.ToLower(strings.TrimSpace(code))
}

// PurchaseOrderRecord é a linha do diário de pedidos enviados pelo gateway
type PurchaseOrderRecord struct {
	ID              string             `json:"id"`
	PONumber        string             `json:"po_number"`
	CustomerNumber  string             `json:"customer_number"`
	Country         string             `json:"country"`
	State           PurchaseOrderState `json:"state"`
	StatusCode      string             `json:"status_code"`
	OrderNumbers    []string           `json:"order_numbers"`
	TrackingNumbers []string           `json:"tracking_numbers"`
	ItemCount       int                `json:"item_count"`
	SubmittedAt     time.Time          `json:"submitted_at"`
	LastCheckedAt   *time.Time         `json:"last_checked_at"`
	CreatedAt       time.Time          `json:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at"`
}

// PurchaseOrderStatusUpdate carrega o resultado de uma consulta de status para o diário
type PurchaseOrderStatusUpdate struct {
	PONumber        string
	State           PurchaseOrderState
	StatusCode      string
	OrderNumbers    []string
	TrackingNumbers []string
	CheckedAt       time.Time
}

// OrderStatusChanged é publicado quando o código de status de um pedido muda
type OrderStatusChanged struct {
	PONumber        string    `json:"po_number"`
	PreviousStatus  string    `json:"previous_status"`
	CurrentStatus   string    `json:"current_status"`
	OrderNumbers    []string  `json:"order_numbers"`
	TrackingNumbers []string  `json:"tracking_numbers"`
	ChangedAt       time.Time `json:"changed_at"`
}

type ListPurchaseOrdersFilter struct {
	Since time.Time
	Limit uint64
}
