// Package hierarchy converts between the two spreadsheet representations of
// a concept hierarchy: indented text (one concept per line, depth by
// indentation) and per-concept children lists.
package hierarchy

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrUndefinedChild marks a child reference without a definition of its own.
var ErrUndefinedChild = errors.New("child is not defined")

// ErrLevelJump marks an indentation increase of more than one level.
var ErrLevelJump = errors.New("indentation increases by more than one level")

// Node is one concept in a linked hierarchy tree.
type Node struct {
	Text     string
	Level    int
	Children []*Node
}

// NewNode parses one indented line. The level is the number of leading
// separators; the text is what follows them.
func NewNode(indentedLine, sep string) *Node {
	if sep == "" {
		sep = " "
	}
	parts := strings.Split(strings.TrimRight(indentedLine, " \t\r\n"), sep)
	return &Node{Level: len(parts) - 1, Text: parts[len(parts)-1]}
}

// AddChildren attaches nodes below n, nesting them by level. The first node
// sets the child level; no node may sit above it or above n.
func (n *Node) AddChildren(nodes []*Node) error {
	if len(nodes) == 0 {
		return nil
	}
	for _, node := range nodes {
		if node.Level < n.Level {
			return fmt.Errorf("level of node %q lower than of root node", node.Text)
		}
		if node.Level < nodes[0].Level {
			return fmt.Errorf("level of node %q lower than of first node to add", node.Text)
		}
	}
	_, err := n.nest(nodes)
	return err
}

// nest consumes nodes until a sibling of n appears, returning the rest.
func (n *Node) nest(nodes []*Node) ([]*Node, error) {
	childLevel := nodes[0].Level
	for len(nodes) > 0 {
		node := nodes[0]
		switch {
		case node.Level == childLevel:
			n.Children = append(n.Children, node)
			nodes = nodes[1:]
		case node.Level-childLevel == 1:
			if len(n.Children) == 0 {
				nodes = nodes[1:]
				continue
			}
			var err error
			nodes, err = n.Children[len(n.Children)-1].nest(nodes)
			if err != nil {
				return nil, err
			}
		case node.Level-childLevel > 1:
			return nil, fmt.Errorf("%w at %q", ErrLevelJump, node.Text)
		default: // sibling of n or higher, nothing more to nest here
			return nodes, nil
		}
	}
	return nil, nil
}

// NarrowerMap is a per-concept children listing with stable key order.
type NarrowerMap struct {
	Keys     []string
	Children map[string][]string
}

// NewNarrowerMap returns an empty map.
func NewNarrowerMap() *NarrowerMap {
	return &NarrowerMap{Children: map[string][]string{}}
}

// Set records children for text, keeping first-insertion key order.
func (m *NarrowerMap) Set(text string, children []string) {
	if _, ok := m.Children[text]; !ok {
		m.Keys = append(m.Keys, text)
	}
	m.Children[text] = children
}

// Get returns the children recorded for text.
func (m *NarrowerMap) Get(text string) []string { return m.Children[text] }

// Has reports whether text has an entry.
func (m *NarrowerMap) Has(text string) bool {
	_, ok := m.Children[text]
	return ok
}

func (m *NarrowerMap) allChildren() map[string]bool {
	out := map[string]bool{}
	for _, k := range m.Keys {
		for _, c := range m.Children[k] {
			out[c] = true
		}
	}
	return out
}

// addNarrower attaches every entry of the map below n. Entries listed as
// nobody's child become children of n; the rest are attached once all their
// own children exist, so depth is resolved bottom-up.
func (n *Node) addNarrower(m *NarrowerMap) error {
	isChild := m.allChildren()
	for c := range isChild {
		if !m.Has(c) {
			return fmt.Errorf("%w: %q", ErrUndefinedChild, c)
		}
	}

	nodes := map[string]*Node{}
	type pending struct {
		text     string
		children []string
	}
	var stack []pending
	for _, k := range m.Keys {
		if len(m.Children[k]) == 0 && !isChild[k] {
			node := &Node{Text: k, Level: n.Level}
			nodes[k] = node
			n.Children = append(n.Children, node)
		} else {
			stack = append(stack, pending{k, m.Children[k]})
		}
	}

	for len(stack) > 0 {
		progressed := false
		var rest []pending
		for _, p := range stack {
			ready := true
			for _, c := range p.children {
				if _, ok := nodes[c]; !ok {
					ready = false
					break
				}
			}
			if !ready {
				rest = append(rest, p)
				continue
			}
			node := &Node{Text: p.text, Level: m.depth(p.text) + n.Level}
			for _, c := range p.children {
				node.Children = append(node.Children, nodes[c])
			}
			if !isChild[p.text] {
				node.Level = n.Level
				n.Children = append(n.Children, node)
			}
			nodes[p.text] = node
			progressed = true
		}
		if !progressed {
			return fmt.Errorf("hierarchy contains a cycle among %d entries", len(rest))
		}
		stack = rest
	}
	return nil
}

// depth returns how many parents sit above key in the map.
func (m *NarrowerMap) depth(key string) int {
	for _, k := range m.Keys {
		for _, c := range m.Children[k] {
			if c == key {
				return m.depth(k) + 1
			}
		}
	}
	return 0
}

// BuildTree builds a tree from indented text, skipping blank lines. The
// returned root node carries the text "root" and sits above every line.
func BuildTree(text, sep string) (*Node, error) {
	root := NewNode("root", sep)
	var nodes []*Node
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		nodes = append(nodes, NewNode(line, sep))
	}
	if err := root.AddChildren(nodes); err != nil {
		return nil, err
	}
	return root, nil
}

// BuildFromNarrower builds a tree from a children listing. A single
// top-level entry becomes the root; multiple top-level entries hang below a
// synthetic "root" node. No top-level entry at all means a cycle.
func BuildFromNarrower(m *NarrowerMap) (*Node, error) {
	isChild := m.allChildren()
	var roots []string
	for _, k := range m.Keys {
		if !isChild[k] {
			roots = append(roots, k)
		}
	}

	var root *Node
	rest := m
	switch {
	case len(roots) == 0:
		return nil, errors.New("no root found on root level")
	case len(roots) == 1:
		root = &Node{Text: roots[0]}
		rest = NewNarrowerMap()
		for _, k := range m.Keys {
			if k != roots[0] {
				rest.Set(k, m.Children[k])
			}
		}
	default:
		root = &Node{Text: "root"}
	}
	if err := root.addNarrower(rest); err != nil {
		return nil, err
	}
	return root, nil
}

// sortedChildren returns the children ordered by text.
func (n *Node) sortedChildren() []*Node {
	out := make([]*Node, len(n.Children))
	copy(out, n.Children)
	sort.Slice(out, func(i, j int) bool { return out[i].Text < out[j].Text })
	return out
}

// LevelEntry pairs a node text with its depth.
type LevelEntry struct {
	Text  string
	Level int
}

// AsLevelList returns every node of the tree in hierarchical order with its
// level, siblings sorted by text.
func (n *Node) AsLevelList() []LevelEntry {
	out := []LevelEntry{{n.Text, n.Level}}
	for _, c := range n.sortedChildren() {
		out = append(out, c.AsLevelList()...)
	}
	return out
}

// AsIndentedText renders the tree back into indented lines.
func (n *Node) AsIndentedText(sep string) []string {
	if sep == "" {
		sep = " "
	}
	entries := n.AsLevelList()
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, strings.Repeat(sep, e.Level)+e.Text)
	}
	return out
}

// AsNarrowerMap flattens the tree into a children listing, children sorted
// by text.
func (n *Node) AsNarrowerMap() *NarrowerMap {
	m := NewNarrowerMap()
	n.fillNarrower(m)
	return m
}

func (n *Node) fillNarrower(m *NarrowerMap) {
	texts := make([]string, 0, len(n.Children))
	for _, c := range n.sortedChildren() {
		texts = append(texts, c.Text)
	}
	m.Set(n.Text, texts)
	for _, c := range n.Children {
		c.fillNarrower(m)
	}
}
