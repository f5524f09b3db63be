package syntax

// Transparent is the traversal policy used for layout decisions: argument
// lists, casts and parenthesized expressions are opaque. They are visited
// themselves, but their contents are not.
func Transparent(n *Node) bool {
	switch n.Kind {
	case KindArgumentList, KindCast, KindParenthesized:
		return false
	default:
		return true
	}
}

// All descends into every node.
func All(*Node) bool { return true }

// Walk visits root and its descendants in pre-order. Children of a node are
// only visited when descend returns true for that node. Walk stops as soon
// as visit returns false and reports whether the walk ran to completion.
func Walk(root *Node, descend func(*Node) bool, visit func(*Node) bool) bool {
	if root == nil {
		return true
	}
	if !visit(root) {
		return false
	}
	if !descend(root) {
		return true
	}
	for _, c := range root.Children {
		if !Walk(c, descend, visit) {
			return false
		}
	}
	return true
}

// Descendants collects the nodes Walk would visit.
func Descendants(root *Node, descend func(*Node) bool) []*Node {
	var out []*Node
	Walk(root, descend, func(n *Node) bool {
		out = append(out, n)
		return true
	})
	return out
}
