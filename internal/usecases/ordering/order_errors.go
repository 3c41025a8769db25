package ordering

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de pedidos
var (
	ErrDuplicatePurchaseOrder = errors.New("purchase order already submitted")
	ErrSynnexIntegration      = errors.New("error calling synnex")
	ErrDatabaseOperation      = errors.New("database operation error")
	ErrPublishEvent           = errors.New("error publishing order status event")
	ErrGenerateID             = errors.New("error generating ID")
)

// OrderError é um erro com contexto adicional para pedidos
type OrderError struct {
	Err      error  // Erro base
	Code     string // Código de erro para API
	PONumber string // PO envolvido (quando aplicável)
	Details  string // Detalhes adicionais
}

func (e *OrderError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *OrderError) Unwrap() error {
	return e.Err
}

func NewOrderError(err error, code string, poNumber string, details string) *OrderError {
	return &OrderError{
		Err:      err,
		Code:     code,
		PONumber: poNumber,
		Details:  details,
	}
}
