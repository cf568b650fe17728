// This file is part of go-mc/server project.
// Copyright (C) 2023.  Tnze
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published
// by the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Йоу, чат! BVH дерево тримає зони видимості гравців, щоб швидко
// знаходити всіх, хто бачить точку у світі: предмет, картину чи звук.

package bvh

import (
	"container/heap"
	"fmt"

	"golang.org/x/exp/constraints"
)

// Bound is what the tree can hold: a volume that can be merged and
// measured.
type Bound[I constraints.Float, B any] interface {
	Union(B) B
	Surface() I
}

type Node[I constraints.Float, B Bound[I, B], V any] struct {
	Box      B
	Value    V
	parent   *Node[I, B, V]
	children [2]*Node[I, B, V]
	isLeaf   bool
}

func (n *Node[I, B, V]) sibling() *Node[I, B, V] {
	if n.parent.children[0] == n {
		return n.parent.children[1]
	}
	return n.parent.children[0]
}

func (n *Node[I, B, V]) childRef(child *Node[I, B, V]) **Node[I, B, V] {
	if n.children[0] == child {
		return &n.children[0]
	}
	if n.children[1] == child {
		return &n.children[1]
	}
	panic("bvh: node is not a child of its parent")
}

func (n *Node[I, B, V]) each(test func(B) bool, foreach func(*Node[I, B, V]) bool) bool {
	if n == nil || !test(n.Box) {
		return true
	}
	if n.isLeaf {
		return foreach(n)
	}
	return n.children[0].each(test, foreach) && n.children[1].each(test, foreach)
}

// Tree is a bounding volume hierarchy. The zero value is an empty tree.
// It is not safe for concurrent use.
type Tree[I constraints.Float, B Bound[I, B], V any] struct {
	root *Node[I, B, V]
	size int
}

func (t *Tree[I, B, V]) Len() int { return t.size }

// Insert adds a leaf and returns its node, which is the handle for Delete.
func (t *Tree[I, B, V]) Insert(box B, value V) *Node[I, B, V] {
	n := &Node[I, B, V]{Box: box, Value: value, isLeaf: true}
	t.size++
	if t.root == nil {
		t.root = n
		return n
	}

	// branch and bound search for the cheapest sibling
	sibling, ref := t.root, &t.root
	best := t.root.Box.Union(box).Surface()
	leafCost := box.Surface()

	var queue searchHeap[I, Node[I, B, V]]
	heap.Push(&queue, searchItem[I, Node[I, B, V]]{node: t.root, ref: &t.root})
	for queue.Len() > 0 {
		p := heap.Pop(&queue).(searchItem[I, Node[I, B, V]])
		merged := p.node.Box.Union(box).Surface()
		if cost := p.inherited + merged; cost <= best {
			best, sibling, ref = cost, p.node, p.ref
		}
		inherited := p.inherited + merged - p.node.Box.Surface()
		if !p.node.isLeaf && inherited+leafCost < best {
			for i := range p.node.children {
				heap.Push(&queue, searchItem[I, Node[I, B, V]]{
					node:      p.node.children[i],
					ref:       &p.node.children[i],
					inherited: inherited,
				})
			}
		}
	}

	parent := &Node[I, B, V]{
		Box:      sibling.Box.Union(box),
		parent:   sibling.parent,
		children: [2]*Node[I, B, V]{sibling, n},
	}
	*ref = parent
	n.parent = parent
	sibling.parent = parent
	t.refit(parent)
	return n
}

// Delete removes a leaf returned by Insert and gives back its value.
func (t *Tree[I, B, V]) Delete(n *Node[I, B, V]) V {
	t.size--
	if n.parent == nil {
		t.root = nil
		return n.Value
	}
	sibling := n.sibling()
	grand := n.parent.parent
	if grand == nil {
		t.root = sibling
		sibling.parent = nil
		return n.Value
	}
	*grand.childRef(n.parent) = sibling
	sibling.parent = grand
	t.refit(grand)
	return n.Value
}

// Move changes the box of a leaf. The returned node replaces n.
func (t *Tree[I, B, V]) Move(n *Node[I, B, V], box B) *Node[I, B, V] {
	return t.Insert(box, t.Delete(n))
}

func (t *Tree[I, B, V]) refit(from *Node[I, B, V]) {
	for p := from; p != nil; p = p.parent {
		p.Box = p.children[0].Box.Union(p.children[1].Box)
		t.rotate(p)
	}
}

// rotate swaps a grandchild with its uncle when that shrinks n.
func (t *Tree[I, B, V]) rotate(n *Node[I, B, V]) {
	if n.isLeaf || n.parent == nil {
		return
	}
	uncle := n.sibling()
	current := n.Box.Surface()
	for i := range n.children {
		keep := n.children[1-i]
		if keep.Box.Union(uncle.Box).Surface() >= current {
			continue
		}
		moved := n.children[i]
		*n.parent.childRef(uncle) = moved
		moved.parent = n.parent
		n.children[i] = uncle
		uncle.parent = n
		n.Box = n.children[0].Box.Union(n.children[1].Box)
		return
	}
}

// Find calls foreach for every leaf whose box passes test, until foreach
// returns false.
func (t *Tree[I, B, V]) Find(test func(B) bool, foreach func(*Node[I, B, V]) bool) {
	t.root.each(test, foreach)
}

func (t *Tree[I, B, V]) String() string { return t.root.String() }

func (n *Node[I, B, V]) String() string {
	switch {
	case n == nil:
		return "{}"
	case n.isLeaf:
		return fmt.Sprint(n.Value)
	default:
		return fmt.Sprintf("{%v, %v}", n.children[0], n.children[1])
	}
}

// TouchPoint matches boxes holding point.
func TouchPoint[Vec any, B interface{ WithIn(Vec) bool }](point Vec) func(B) bool {
	return func(bound B) bool { return bound.WithIn(point) }
}

// TouchBound matches boxes overlapping other.
func TouchBound[B interface{ Touch(B) bool }](other B) func(B) bool {
	return func(bound B) bool { return bound.Touch(other) }
}

type (
	searchHeap[I constraints.Float, N any] []searchItem[I, N]
	searchItem[I constraints.Float, N any] struct {
		node      *N
		ref       **N
		inherited I
	}
)

func (h searchHeap[I, N]) Len() int           { return len(h) }
func (h searchHeap[I, N]) Less(i, j int) bool { return h[i].inherited < h[j].inherited }
func (h searchHeap[I, N]) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *searchHeap[I, N]) Push(x any)        { *h = append(*h, x.(searchItem[I, N])) }
func (h *searchHeap[I, N]) Pop() any {
	old := *h
	x := old[len(old)-1]
	*h = old[:len(old)-1]
	return x
}
