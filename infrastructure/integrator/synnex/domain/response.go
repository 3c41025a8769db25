package synnexdomain

import (
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type ResponseType string

const (
	ResponseTypeSuccess ResponseType = "success"
	ResponseTypeError   ResponseType = "error"
)

// ErrorResponse é o erro de negócio reportado pelo distribuidor.
type ErrorResponse struct {
	ErrorResponse string `json:"errorResponse,omitempty" mapstructure:"errorResponse"`
	ErrorCode     string `json:"errorCode,omitempty" mapstructure:"errorCode"`
	ErrorDetail   string `json:"errorDetail" mapstructure:"errorDetail"`
}

// Response carrega exatamente um entre Success e Error, conforme Type.
type Response[T any] struct {
	Type    ResponseType
	Success *T
	Error   *ErrorResponse
}

func Succeeded[T any](value T) Response[T] {
	return Response[T]{Type: ResponseTypeSuccess, Success: &value}
}

func Failed[T any](errResponse ErrorResponse) Response[T] {
	return Response[T]{Type: ResponseTypeError, Error: &errResponse}
}

func (r Response[T]) IsSuccess() bool {
	return r.Type == ResponseTypeSuccess && r.Success != nil
}

// MarshalJSON achata o payload e coloca "type" no mesmo nível dos campos.
func (r Response[T]) MarshalJSON() ([]byte, error) {
	var payload any
	switch r.Type {
	case ResponseTypeSuccess:
		payload = r.Success
	case ResponseTypeError:
		payload = r.Error
	}

	fields := map[string]any{}
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		if err := json.Unmarshal(raw, &fields); err != nil {
			return nil, err
		}
	}
	if fields == nil {
		fields = map[string]any{}
	}

	fields["type"] = r.Type

	return json.Marshal(fields)
}
