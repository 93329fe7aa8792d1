package httpmsg

import (
	"fmt"

	"github.com/shapestone/shape-core/pkg/ast"
)

// Render converts an AST node from RequestToNode back to message text.
func Render(node ast.SchemaNode) ([]byte, error) {
	req, err := NodeToRequest(node)
	if err != nil {
		return nil, fmt.Errorf("httpmsg: Render: %w", err)
	}
	return Marshal(req)
}
