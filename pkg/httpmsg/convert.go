package httpmsg

import (
	"fmt"

	"github.com/shapestone/shape-core/pkg/ast"
)

var zeroPos = ast.Position{}

// RequestToNode converts a Request to an AST ObjectNode:
//
//	{ "type": "request", "method": "POST", "target": "https://example.com",
//	  "version": "HTTP/1.1",
//	  "headers": [{"key": "x-key", "value": "123"}, ...],
//	  "body": "..." }
//
// "body" is omitted when the request has none.
func RequestToNode(req *Request) ast.SchemaNode {
	props := map[string]ast.SchemaNode{
		"type":    ast.NewLiteralNode("request", zeroPos),
		"method":  ast.NewLiteralNode(req.Method.String(), zeroPos),
		"target":  ast.NewLiteralNode(req.Target.String(), zeroPos),
		"version": ast.NewLiteralNode(req.Version.String(), zeroPos),
		"headers": headersToNode(req.Headers),
	}
	if req.Body != nil {
		props["body"] = ast.NewLiteralNode(string(req.Body), zeroPos)
	}
	return ast.NewObjectNode(props, zeroPos)
}

// NodeToRequest converts an AST ObjectNode produced by RequestToNode back to
// a Request. Method and version go through ParseMethod and ParseVersion;
// the target must be an absolute URI.
func NodeToRequest(node ast.SchemaNode) (*Request, error) {
	obj, ok := node.(*ast.ObjectNode)
	if !ok {
		return nil, fmt.Errorf("httpmsg: expected ObjectNode, got %T", node)
	}
	props := obj.Properties()

	if typ := stringProp(props, "type"); typ != "request" {
		return nil, fmt.Errorf("httpmsg: unknown message type %q", typ)
	}

	req := &Request{
		Method:  ParseMethod(stringProp(props, "method")),
		Version: ParseVersion(stringProp(props, "version")),
	}
	target, err := ParseURI(stringProp(props, "target"))
	if err != nil {
		return nil, err
	}
	req.Target = target

	if v, ok := props["headers"]; ok {
		hdrs, err := nodeToHeaders(v)
		if err != nil {
			return nil, err
		}
		req.Headers = hdrs
	}
	if v, ok := props["body"]; ok {
		if lit, ok := v.(*ast.LiteralNode); ok {
			if s, ok := lit.Value().(string); ok {
				req.Body = []byte(s)
			}
		}
	}
	return req, nil
}

// NodeToInterface converts an AST node to native Go types.
func NodeToInterface(node ast.SchemaNode) interface{} {
	switch n := node.(type) {
	case *ast.LiteralNode:
		return n.Value()
	case *ast.ArrayDataNode:
		elements := n.Elements()
		arr := make([]interface{}, len(elements))
		for i, elem := range elements {
			arr[i] = NodeToInterface(elem)
		}
		return arr
	case *ast.ObjectNode:
		props := n.Properties()
		m := make(map[string]interface{}, len(props))
		for k, v := range props {
			m[k] = NodeToInterface(v)
		}
		return m
	default:
		return nil
	}
}

func stringProp(props map[string]ast.SchemaNode, key string) string {
	lit, ok := props[key].(*ast.LiteralNode)
	if !ok {
		return ""
	}
	s, _ := lit.Value().(string)
	return s
}

func headersToNode(headers Headers) ast.SchemaNode {
	elements := make([]ast.SchemaNode, len(headers))
	for i, h := range headers {
		elements[i] = ast.NewObjectNode(map[string]ast.SchemaNode{
			"key":   ast.NewLiteralNode(h.Key, zeroPos),
			"value": ast.NewLiteralNode(h.Value, zeroPos),
		}, zeroPos)
	}
	return ast.NewArrayDataNode(elements, zeroPos)
}

func nodeToHeaders(node ast.SchemaNode) (Headers, error) {
	arr, ok := node.(*ast.ArrayDataNode)
	if !ok {
		return nil, fmt.Errorf("httpmsg: expected ArrayDataNode for headers, got %T", node)
	}
	elements := arr.Elements()
	if len(elements) == 0 {
		return nil, nil
	}
	headers := make(Headers, 0, len(elements))
	for _, elem := range elements {
		obj, ok := elem.(*ast.ObjectNode)
		if !ok {
			continue
		}
		props := obj.Properties()
		headers = append(headers, Header{Key: stringProp(props, "key"), Value: stringProp(props, "value")})
	}
	return headers, nil
}
