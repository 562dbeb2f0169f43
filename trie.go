package relay

// trieNode is one position in the pattern trie. Literal children are keyed
// by exact segment text. A node holds at most one variable child; the
// variable's name lives on the parent so a later registration can rename it
// without touching the subtree.
type trieNode[T any] struct {
	literals map[string]*trieNode[T]
	variable *trieNode[T]
	varName  string

	// Set on terminal nodes only. Name lists are kept per method so a
	// registration for one method cannot rename another method's
	// extraction keys at a shared terminal.
	handlers map[string]T
	varNames map[string][]string
}

func newTrieNode[T any]() *trieNode[T] {
	return &trieNode[T]{}
}

// insert walks the parsed pattern from this node, creating nodes as needed,
// and stores the handler at the terminal. Variable names encountered on the
// way down replace the terminal's name list for that method, keeping
// extraction order equal to left-to-right pattern order.
func (n *trieNode[T]) insert(segments []patternSegment, method string, handler T) {
	node := n
	var names []string

	for _, seg := range segments {
		if seg.variable {
			if node.variable == nil {
				node.variable = newTrieNode[T]()
			}
			// A second registration with a different name at the same
			// position renames the variable for patterns registered later.
			node.varName = seg.name
			names = append(names, node.varName)
			node = node.variable
			continue
		}

		if node.literals == nil {
			node.literals = make(map[string]*trieNode[T])
		}
		child, ok := node.literals[seg.text]
		if !ok {
			child = newTrieNode[T]()
			node.literals[seg.text] = child
		}
		node = child
	}

	if node.handlers == nil {
		node.handlers = make(map[string]T)
		node.varNames = make(map[string][]string)
	}
	node.handlers[method] = handler
	node.varNames[method] = names
}

// match runs a depth-first search over the remaining path segments.
// The literal child is tried first; only when its subtree yields no
// complete match does the search backtrack and consume the segment
// through the variable child. values collects variable segment values
// in traversal order and is only valid when the returned node is non-nil.
func (n *trieNode[T]) match(segments []string, method string, values []string) (*trieNode[T], []string) {
	if len(segments) == 0 {
		if _, ok := n.handlers[method]; ok {
			return n, values
		}
		return nil, nil
	}

	head, tail := segments[0], segments[1:]

	if child, ok := n.literals[head]; ok {
		if terminal, vals := child.match(tail, method, values); terminal != nil {
			return terminal, vals
		}
	}

	if n.variable != nil {
		return n.variable.match(tail, method, append(values, head))
	}

	return nil, nil
}
