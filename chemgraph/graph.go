//Package chemgraph represents the bonds of a molecule as a gonum graph,
//with atoms as nodes (node ID = atom index) and bonds as edges.
package chemgraph

import (
	"sort"

	chem "github.com/atomCAD/atomCAD-sub000"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

// Graph is the bond graph of a molecule. Every atom is a node, even the ones
// without bonds, so the number of nodes is always the number of atoms.
type Graph struct {
	*simple.UndirectedGraph
	natoms int
}

// New builds the bond graph for natoms atoms. Deleted bonds are skipped.
// It panics if a bond joins an atom to itself or refers to an atom out of
// range, so the bonds should have been validated (chem.Molecule.Validate).
func New(natoms int, bonds []*chem.Bond) *Graph {
	g := simple.NewUndirectedGraph()
	for i := 0; i < natoms; i++ {
		g.AddNode(simple.Node(i))
	}
	for _, b := range bonds {
		if b.Order == chem.Deleted {
			continue
		}
		if b.At1 >= natoms || b.At2 >= natoms || b.At1 < 0 || b.At2 < 0 {
			panic("chemgraph: bond refers to an atom out of range")
		}
		g.SetEdge(g.NewEdge(simple.Node(b.At1), simple.Node(b.At2)))
	}
	return &Graph{UndirectedGraph: g, natoms: natoms}
}

// FromMolecule builds the bond graph of mol.
func FromMolecule(mol *chem.Molecule) *Graph {
	return New(mol.Len(), mol.Bonds)
}

// Len returns the number of atoms.
func (G *Graph) Len() int {
	return G.natoms
}

// Neighbors returns the indexes of the atoms bonded to atom i, in increasing order.
func (G *Graph) Neighbors(i int) []int {
	nodes := graph.NodesOf(G.From(int64(i)))
	ret := make([]int, len(nodes))
	for k, n := range nodes {
		ret[k] = int(n.ID())
	}
	sort.Ints(ret)
	return ret
}

// Degree returns the number of bonds of atom i.
func (G *Graph) Degree(i int) int {
	return G.From(int64(i)).Len()
}

// Bonded returns true if atoms i and j share a bond.
func (G *Graph) Bonded(i, j int) bool {
	return G.HasEdgeBetween(int64(i), int64(j))
}

// Fragments returns the connected components of the graph (i.e. the separate
// molecules in the structure), each as a sorted list of atom indexes.
// Fragments are sorted by their smallest index.
func (G *Graph) Fragments() [][]int {
	cc := topo.ConnectedComponents(G.UndirectedGraph)
	ret := make([][]int, 0, len(cc))
	for _, c := range cc {
		frag := make([]int, len(c))
		for k, n := range c {
			frag[k] = int(n.ID())
		}
		sort.Ints(frag)
		ret = append(ret, frag)
	}
	sort.Slice(ret, func(a, b int) bool { return ret[a][0] < ret[b][0] })
	return ret
}
