package synnexxml

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Run("descarta a raiz e junta atributos com filhos", func(t *testing.T) {
		data := []byte(`<?xml version="1.0" encoding="UTF-8"?>
<SynnexB2B>
  <OrderResponse>
    <PONumber> PO-1 </PONumber>
    <Items>
      <Item lineNumber="1"><SKU>123</SKU></Item>
      <Item lineNumber="2"><SKU>456</SKU></Item>
    </Items>
    <Reason/>
  </OrderResponse>
</SynnexB2B>`)

		tree, err := Parse(data)
		require.NoError(t, err)

		expected := map[string]any{
			"OrderResponse": map[string]any{
				"PONumber": "PO-1",
				"Items": map[string]any{
					"Item": []any{
						map[string]any{"lineNumber": "1", "SKU": "123"},
						map[string]any{"lineNumber": "2", "SKU": "456"},
					},
				},
				"Reason": "",
			},
		}
		assert.Equal(t, expected, tree)
	})

	t.Run("texto misto fica na chave text", func(t *testing.T) {
		tree, err := Parse([]byte(`<root><price currency="USD">10.50</price></root>`))
		require.NoError(t, err)

		assert.Equal(t, map[string]any{"currency": "USD", "text": "10.50"}, tree["price"])
	})

	t.Run("ignora declarações de namespace", func(t *testing.T) {
		tree, err := Parse([]byte(`<root xmlns="urn:x" xmlns:xsi="urn:y"><a>1</a></root>`))
		require.NoError(t, err)

		assert.Equal(t, map[string]any{"a": "1"}, tree)
	})

	t.Run("raiz só com texto fica na chave text", func(t *testing.T) {
		tree, err := Parse([]byte(`<SynnexB2B> Invalid credentials </SynnexB2B>`))
		require.NoError(t, err)

		assert.Equal(t, map[string]any{"text": "Invalid credentials"}, tree)
	})

	t.Run("raiz vazia vira árvore vazia", func(t *testing.T) {
		tree, err := Parse([]byte(`<SynnexB2B/>`))
		require.NoError(t, err)

		assert.Empty(t, tree)
	})
}

func TestParse_XMLInvalido(t *testing.T) {
	inputs := map[string]string{
		"tags trocadas":  `<root><a></b></root>`,
		"sem fechamento": `<root><a>1</a>`,
		"vazio":          ``,
		"texto puro":     `Service Unavailable`,
	}

	for name, input := range inputs {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(input))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrParseXML)
			assert.Contains(t, err.Error(), "failed to parse XML")
		})
	}
}
