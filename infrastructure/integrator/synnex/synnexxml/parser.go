package synnexxml

import (
	"errors"
	"fmt"
	"strings"

	"github.com/beevik/etree"
)

// TextKey guarda o texto de elementos que também têm atributos ou filhos.
const TextKey = "text"

var ErrParseXML = errors.New("failed to parse XML")

// Parse converte o XML de resposta em uma árvore de mapas. O elemento raiz é
// descartado, atributos se juntam aos filhos, irmãos repetidos viram []any na
// ordem do documento e elementos só com texto viram string. Uma raiz só com
// texto devolve esse texto em TextKey.
func Parse(data []byte) (map[string]any, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParseXML, err)
	}

	root := doc.Root()
	if root == nil {
		return nil, fmt.Errorf("%w: no root element", ErrParseXML)
	}

	switch value := elementValue(root).(type) {
	case map[string]any:
		return value, nil
	case string:
		if value != "" {
			return map[string]any{TextKey: value}, nil
		}
	}

	return map[string]any{}, nil
}

func elementValue(el *etree.Element) any {
	text := strings.TrimSpace(charData(el))
	children := el.ChildElements()
	attrs := attributes(el)

	if len(children) == 0 && len(attrs) == 0 {
		return text
	}

	node := make(map[string]any, len(children)+len(attrs)+1)
	for _, attr := range attrs {
		appendValue(node, attr.Key, attr.Value)
	}
	for _, child := range children {
		appendValue(node, child.Tag, elementValue(child))
	}
	if text != "" {
		appendValue(node, TextKey, text)
	}

	return node
}

func charData(el *etree.Element) string {
	var b strings.Builder
	for _, token := range el.Child {
		if cd, ok := token.(*etree.CharData); ok {
			b.WriteString(cd.Data)
		}
	}
	return b.String()
}

// attributes descarta declarações de namespace.
func attributes(el *etree.Element) []etree.Attr {
	attrs := make([]etree.Attr, 0, len(el.Attr))
	for _, attr := range el.Attr {
		if attr.Space == "xmlns" || (attr.Space == "" && attr.Key == "xmlns") {
			continue
		}
		attrs = append(attrs, attr)
	}
	return attrs
}

func appendValue(node map[string]any, key string, value any) {
	existing, ok := node[key]
	if !ok {
		node[key] = value
		return
	}

	if list, isList := existing.([]any); isList {
		node[key] = append(list, value)
		return
	}

	node[key] = []any{existing, value}
}
