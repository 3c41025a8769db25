package synnexclient

import (
	"reflect"
	"strings"

	"github.com/mitchellh/mapstructure"
	synnexdomain "github.com/vfg2006/synnex-gateway/infrastructure/integrator/synnex/domain"
	"github.com/vfg2006/synnex-gateway/infrastructure/integrator/synnex/synnexxml"
)

// decodeResponse converte a árvore normalizada no resultado tipado.
func decodeResponse[T any](tree map[string]any) (synnexdomain.Response[T], error) {
	if tree[synnexxml.KeyType] == synnexxml.TypeError {
		var errResponse synnexdomain.ErrorResponse
		if err := decodeInto(tree, &errResponse); err != nil {
			return synnexdomain.Response[T]{}, err
		}
		return synnexdomain.Failed[T](errResponse), nil
	}

	var result T
	if err := decodeInto(tree, &result); err != nil {
		return synnexdomain.Response[T]{}, err
	}

	return synnexdomain.Succeeded(result), nil
}

func decodeInto(input map[string]any, output any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			emptyElementHook,
			joinTextHook,
			numericStringHook,
		),
		WeaklyTypedInput: true,
		Result:           output,
	})
	if err != nil {
		return err
	}

	return decoder.Decode(input)
}

// emptyElementHook trata elementos vazios (<Items/>) como estrutura ou lista vazia.
func emptyElementHook(from reflect.Type, to reflect.Type, data any) (any, error) {
	s, ok := data.(string)
	if !ok || from.Kind() != reflect.String || strings.TrimSpace(s) != "" {
		return data, nil
	}

	switch to.Kind() {
	case reflect.Struct, reflect.Map:
		return map[string]any{}, nil
	case reflect.Slice:
		return []any{}, nil
	}

	return data, nil
}

// joinTextHook junta elementos repetidos quando o destino é um texto simples.
func joinTextHook(from reflect.Type, to reflect.Type, data any) (any, error) {
	list, ok := data.([]any)
	if !ok || to.Kind() != reflect.String {
		return data, nil
	}

	parts := make([]string, 0, len(list))
	for _, entry := range list {
		if s, isString := entry.(string); isString && s != "" {
			parts = append(parts, s)
		}
	}

	return strings.Join(parts, "\n"), nil
}

// numericStringHook aceita números com separador de milhar em campos numéricos.
func numericStringHook(from reflect.Type, to reflect.Type, data any) (any, error) {
	s, ok := data.(string)
	if !ok {
		return data, nil
	}

	switch to.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
	default:
		return data, nil
	}

	if strings.TrimSpace(s) == "" {
		return 0, nil
	}
	if f, parsed := synnexxml.ParseNumber(s); parsed {
		return f, nil
	}

	return data, nil
}
