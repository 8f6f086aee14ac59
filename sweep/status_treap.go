package sweep

import (
	"github.com/jiangshengdev/sweep-line/rational"
	"github.com/jiangshengdev/sweep-line/segstore"
	"github.com/jiangshengdev/sweep-line/sweeperr"
)

const treapNil = -1

// treapNode is an arena entry, grounded on §9's "Owned trees" design note:
// nodes live in a flat array indexed by SegmentId, holding child and parent
// indices rather than pointers. The parent link is a weak back-reference
// used only for navigation (Pred/Succ, rotations); its lifetime is governed
// by the arena slice, not by tree topology, so there is no cycle to manage.
//
// This mirrors, in spirit, the mutable-comparator-closure design of
// github.com/mikenye/geom2d/linesegment/sweepline_statusstructure_rbt.go's
// balanced-tree status backend, generalized from that package's red-black
// tree (which stores comparable keys by value) to an index-addressed arena
// keyed directly by SegmentId, since no treap exists anywhere in the
// reference corpus to ground the rotation mechanics on more directly —
// they follow the standard textbook treap algorithm instead.
type treapNode struct {
	id       segstore.SegmentId
	priority uint64
	left     int
	right    int
	parent   int
	inTree   bool
}

// StatusTreap is the Treap-backed status structure with deterministic,
// RNG-free priorities (§4.6, §9 "Priorities without randomness").
type StatusTreap struct {
	cmp   *Comparator
	store *segstore.Store
	arena []treapNode
	root  int
}

// NewStatusTreap returns an empty StatusTreap sized for every segment in
// store (segments are inserted and removed by id, never created after
// construction).
func NewStatusTreap(store *segstore.Store) *StatusTreap {
	n := store.Len()
	arena := make([]treapNode, n)
	for i := range arena {
		arena[i] = treapNode{id: segstore.SegmentId(i), priority: splitmix64(uint64(i)), left: treapNil, right: treapNil, parent: treapNil}
	}
	return &StatusTreap{cmp: NewComparator(store), store: store, arena: arena, root: treapNil}
}

// splitmix64 derives a fixed, deterministic 64-bit priority from a
// SegmentId, per §9: "Treap priorities derive from a fixed splitmix64 of
// the id, making the structure deterministic and reproducible across runs
// and platforms."
func splitmix64(x uint64) uint64 {
	x += 0x9E3779B97F4A7C15
	z := x
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}

func (s *StatusTreap) SetSweepX(x rational.Rational) {
	s.cmp.SetSweepX(x)
}

func (s *StatusTreap) less(aID, bID segstore.SegmentId) bool {
	return s.cmp.Less(aID, bID)
}

func (s *StatusTreap) Insert(id segstore.SegmentId) error {
	if s.store.Get(id).IsVertical() {
		return &sweeperr.SweepStatusError{Kind: sweeperr.VerticalSegmentNotAllowed, SegmentId: uint32(id)}
	}
	if s.arena[id].inTree {
		return &sweeperr.SweepStatusError{Kind: sweeperr.DuplicateSegmentId, SegmentId: uint32(id)}
	}
	s.arena[id].left, s.arena[id].right, s.arena[id].parent = treapNil, treapNil, treapNil
	s.arena[id].inTree = true
	s.root = s.bstInsert(s.root, treapNil, int(id))
	s.bubbleUp(int(id))
	return nil
}

func (s *StatusTreap) bstInsert(node, parent, id int) int {
	if node == treapNil {
		s.arena[id].parent = parent
		return id
	}
	if s.less(s.arena[id].id, s.arena[node].id) {
		s.arena[node].left = s.bstInsert(s.arena[node].left, node, id)
	} else {
		s.arena[node].right = s.bstInsert(s.arena[node].right, node, id)
	}
	return node
}

// bubbleUp rotates node upward while its priority exceeds its parent's,
// restoring the heap property after an insert (§9).
func (s *StatusTreap) bubbleUp(node int) {
	for {
		parent := s.arena[node].parent
		if parent == treapNil || s.arena[parent].priority >= s.arena[node].priority {
			return
		}
		if s.arena[parent].left == node {
			s.rotateRight(parent)
		} else {
			s.rotateLeft(parent)
		}
	}
}

// rotateLeft rotates the subtree rooted at x so that x's right child takes
// its place.
func (s *StatusTreap) rotateLeft(x int) {
	y := s.arena[x].right
	s.arena[x].right = s.arena[y].left
	if s.arena[y].left != treapNil {
		s.arena[s.arena[y].left].parent = x
	}
	s.transplant(x, y)
	s.arena[y].left = x
	s.arena[x].parent = y
}

// rotateRight rotates the subtree rooted at x so that x's left child takes
// its place.
func (s *StatusTreap) rotateRight(x int) {
	y := s.arena[x].left
	s.arena[x].left = s.arena[y].right
	if s.arena[y].right != treapNil {
		s.arena[s.arena[y].right].parent = x
	}
	s.transplant(x, y)
	s.arena[y].right = x
	s.arena[x].parent = y
}

// transplant relinks x's parent to point at y in x's place.
func (s *StatusTreap) transplant(x, y int) {
	parent := s.arena[x].parent
	s.arena[y].parent = parent
	if parent == treapNil {
		s.root = y
		return
	}
	if s.arena[parent].left == x {
		s.arena[parent].left = y
	} else {
		s.arena[parent].right = y
	}
}

func (s *StatusTreap) Remove(id segstore.SegmentId) error {
	if !s.arena[id].inTree {
		return &sweeperr.SweepStatusError{Kind: sweeperr.SegmentNotFound, SegmentId: uint32(id)}
	}
	node := int(id)
	// Rotate the target down until it has at most one child, then splice
	// it out (§4.6).
	for s.arena[node].left != treapNil && s.arena[node].right != treapNil {
		if s.arena[s.arena[node].left].priority >= s.arena[s.arena[node].right].priority {
			s.rotateRight(node)
		} else {
			s.rotateLeft(node)
		}
	}
	child := s.arena[node].left
	if child == treapNil {
		child = s.arena[node].right
	}
	parent := s.arena[node].parent
	if child != treapNil {
		s.arena[child].parent = parent
	}
	if parent == treapNil {
		s.root = child
	} else if s.arena[parent].left == node {
		s.arena[parent].left = child
	} else {
		s.arena[parent].right = child
	}
	s.arena[node].inTree = false
	s.arena[node].left, s.arena[node].right, s.arena[node].parent = treapNil, treapNil, treapNil
	return nil
}

func (s *StatusTreap) Pred(id segstore.SegmentId) (segstore.SegmentId, bool) {
	node := int(id)
	if s.arena[node].left != treapNil {
		n := s.arena[node].left
		for s.arena[n].right != treapNil {
			n = s.arena[n].right
		}
		return segstore.SegmentId(n), true
	}
	n, p := node, s.arena[node].parent
	for p != treapNil && s.arena[p].left == n {
		n, p = p, s.arena[p].parent
	}
	if p == treapNil {
		return 0, false
	}
	return segstore.SegmentId(p), true
}

func (s *StatusTreap) Succ(id segstore.SegmentId) (segstore.SegmentId, bool) {
	node := int(id)
	if s.arena[node].right != treapNil {
		n := s.arena[node].right
		for s.arena[n].left != treapNil {
			n = s.arena[n].left
		}
		return segstore.SegmentId(n), true
	}
	n, p := node, s.arena[node].parent
	for p != treapNil && s.arena[p].right == n {
		n, p = p, s.arena[p].parent
	}
	if p == treapNil {
		return 0, false
	}
	return segstore.SegmentId(p), true
}

func (s *StatusTreap) yAt(id segstore.SegmentId) rational.Rational {
	y, err := YAtX(s.store.Get(id), s.cmp.SweepX())
	if err != nil {
		panic(err)
	}
	return y
}

func (s *StatusTreap) LowerBoundByY(yMin rational.Rational) (segstore.SegmentId, bool) {
	best := -1
	node := s.root
	for node != treapNil {
		if s.yAt(s.arena[node].id).Ge(yMin) {
			best = node
			node = s.arena[node].left
		} else {
			node = s.arena[node].right
		}
	}
	if best == treapNil || best < 0 {
		return 0, false
	}
	return s.arena[best].id, true
}

func (s *StatusTreap) RangeByY(yMin, yMax rational.Rational) []segstore.SegmentId {
	var out []segstore.SegmentId
	var walk func(node int)
	walk = func(node int) {
		if node == treapNil {
			return
		}
		walk(s.arena[node].left)
		y := s.yAt(s.arena[node].id)
		if y.Ge(yMin) && y.Le(yMax) {
			out = append(out, s.arena[node].id)
		}
		walk(s.arena[node].right)
	}
	walk(s.root)
	return out
}

func (s *StatusTreap) SnapshotOrder() []segstore.SegmentId {
	var out []segstore.SegmentId
	var walk func(node int)
	walk = func(node int) {
		if node == treapNil {
			return
		}
		walk(s.arena[node].left)
		out = append(out, s.arena[node].id)
		walk(s.arena[node].right)
	}
	walk(s.root)
	return out
}

func (s *StatusTreap) ValidateInvariants() bool {
	order := s.SnapshotOrder()
	for i := 1; i < len(order); i++ {
		if s.cmp.Cmp(order[i-1], order[i]) >= 0 {
			return false
		}
	}
	return true
}
