package routetree

import "strings"

// node is one segment position in the path tree.
type node struct {
	segment   string
	paramName string

	// routeName marks a terminal node, "" otherwise.
	routeName string

	children   []*node
	paramChild *node
}

// findChild finds a static child with an exact segment match.
func (n *node) findChild(segment string) *node {
	for _, child := range n.children {
		if child.segment == segment {
			return child
		}
	}
	return nil
}

// insert adds the segment sequence below n, reusing existing nodes,
// and returns the terminal node.
func (n *node) insert(segs []segment) *node {
	current := n
	for _, seg := range segs {
		if seg.param != "" {
			if current.paramChild == nil {
				current.paramChild = &node{paramName: seg.param}
			}
			current = current.paramChild
			continue
		}
		child := current.findChild(seg.literal)
		if child == nil {
			child = &node{segment: seg.literal}
			current.children = append(current.children, child)
		}
		current = child
	}
	return current
}

// match resolves path segments to a terminal node, extracting dynamic
// segment values into params. Static children win over the parameter
// child; the parameter binding backtracks on failure.
func (n *node) match(segments []string, params map[string]string) (*node, bool) {
	if len(segments) == 0 {
		if n.routeName != "" {
			return n, true
		}
		return nil, false
	}

	segment := segments[0]
	remaining := segments[1:]

	if child := n.findChild(segment); child != nil {
		if leaf, ok := child.match(remaining, params); ok {
			return leaf, true
		}
	}

	if n.paramChild != nil {
		params[n.paramChild.paramName] = segment
		if leaf, ok := n.paramChild.match(remaining, params); ok {
			return leaf, true
		}
		delete(params, n.paramChild.paramName)
	}

	return nil, false
}

// segment is one parsed element of a route pattern.
type segment struct {
	literal string
	param   string
}

// parsePattern splits a pattern like "/posts/:post_id" into segments.
func parsePattern(pattern string) []segment {
	var segs []segment
	for _, part := range splitPath(pattern) {
		if strings.HasPrefix(part, ":") {
			segs = append(segs, segment{param: part[1:]})
		} else {
			segs = append(segs, segment{literal: part})
		}
	}
	return segs
}

// splitPath splits a path into segments.
func splitPath(path string) []string {
	path = strings.Trim(path, "/")
	if path == "" {
		return nil
	}
	return strings.Split(path, "/")
}
