package dotmap

///////////////////////////////////////////////////////////////////////////////
// Path Enumerator
///////////////////////////////////////////////////////////////////////////////

// Paths returns every dot-path reachable from root by descending through
// mappings only. Each own key contributes a path; keys holding nested
// mappings are expanded further, while sequences and scalars are leaves.
//
// Only set membership of the result is contractual. The order falls out of
// the traversal stack (last pushed, first visited) and may change.
func Paths(root map[string]any) []string {
	type frame struct {
		prefix string
		node   map[string]any
	}

	paths := []string{}
	stack := []frame{{node: root}}

	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for key, value := range current.node {
			path := key
			if current.prefix != "" {
				path = current.prefix + PathDelimiter + key
			}
			paths = append(paths, path)

			if child, ok := asMapping(value); ok {
				stack = append(stack, frame{prefix: path, node: child})
			}
		}
	}

	return paths
}
