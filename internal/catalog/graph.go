// EcoBee - Sustainability Action Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ecobee

package catalog

// Node wraps one action and references the nodes that share its domain.
// Neighbors point back into the same graph; a node never lists itself.
type Node struct {
	Action    Action
	neighbors []*Node
}

// Neighbors returns the adjacent nodes in catalog order.
func (n *Node) Neighbors() []*Node {
	return append([]*Node(nil), n.neighbors...)
}

// Degree returns the number of neighbors.
func (n *Node) Degree() int {
	return len(n.neighbors)
}

// Graph is the same-domain affinity graph of a catalog. Read-only once built.
type Graph struct {
	nodes map[string]*Node
	order []string
}

// BuildAffinityGraph links every pair of distinct actions that share a domain.
// Actions are grouped by domain first, so the cost is O(n*d) where d is the
// average domain size. Building twice from the same catalog yields
// isomorphic graphs.
func BuildAffinityGraph(c *Catalog) *Graph {
	g := &Graph{
		nodes: make(map[string]*Node, c.Len()),
		order: c.IDs(),
	}

	groups := make(map[string][]*Node, len(c.domains))
	for _, a := range c.actions {
		n := &Node{Action: a.Clone()}
		g.nodes[a.ID] = n
		groups[a.Domain] = append(groups[a.Domain], n)
	}

	for _, members := range groups {
		for _, n := range members {
			if len(members) < 2 {
				continue
			}
			n.neighbors = make([]*Node, 0, len(members)-1)
			for _, other := range members {
				if other != n {
					n.neighbors = append(n.neighbors, other)
				}
			}
		}
	}

	return g
}

// Node returns the node for id.
func (g *Graph) Node(id string) (*Node, bool) {
	n, ok := g.nodes[id]
	return n, ok
}

// Neighbors returns the actions adjacent to id in catalog order.
// Unknown ids have no neighbors.
func (g *Graph) Neighbors(id string) []Action {
	n, ok := g.nodes[id]
	if !ok {
		return nil
	}
	out := make([]Action, len(n.neighbors))
	for i, nb := range n.neighbors {
		out[i] = nb.Action.Clone()
	}
	return out
}

// Adjacent reports whether a and b are neighbors.
func (g *Graph) Adjacent(a, b string) bool {
	n, ok := g.nodes[a]
	if !ok {
		return false
	}
	for _, nb := range n.neighbors {
		if nb.Action.ID == b {
			return true
		}
	}
	return false
}

// Nodes returns every node in catalog order.
func (g *Graph) Nodes() []*Node {
	out := make([]*Node, len(g.order))
	for i, id := range g.order {
		out[i] = g.nodes[id]
	}
	return out
}

// Len returns the number of nodes.
func (g *Graph) Len() int {
	return len(g.nodes)
}

// Adjacency returns id -> neighbor ids, each list in catalog order.
func (g *Graph) Adjacency() map[string][]string {
	adj := make(map[string][]string, len(g.nodes))
	for id, n := range g.nodes {
		ids := make([]string, len(n.neighbors))
		for i, nb := range n.neighbors {
			ids[i] = nb.Action.ID
		}
		adj[id] = ids
	}
	return adj
}
