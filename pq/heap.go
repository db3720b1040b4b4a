// SPDX-License-Identifier: MIT
// Package: mstlab/pq
//
// heap.go: IndexedMinHeap: a binary min-heap over a dense name space with
// O(1) membership and O(log n) decrease-key.
//
// Layout (arena-style parallel arrays, no per-item allocation):
//   - heap[1..size]   : slot → name (heap[0] unused, children of k are 2k and 2k+1)
//   - pos[name]       : name → slot, 0 when the name is not in the heap
//   - priority[name]  : current key; kept after extraction
//   - parent[name]    : payload carried along with the key (Prim's tree parent)
//   - seen            : names ever inserted, to tell "extracted" from "never enqueued"
//
// Invariants:
//   - priority[heap[k]] <= priority[heap[2k]] and <= priority[heap[2k+1]].
//   - pos[heap[k]] == k for 1 <= k <= size.

package pq

import (
	"errors"
	"fmt"
	"math"

	"github.com/soniakeys/bits"
)

// Infinity is the priority of a name no edge has reached yet.
const Infinity int64 = math.MaxInt64

// Programmer errors. Every one of them is raised with panic, wrapped with
// the offending name or size.
var (
	ErrEmptyHeap        = errors.New("pq: heap is empty")
	ErrIndexOutOfRange  = errors.New("pq: name out of range")
	ErrAlreadyQueued    = errors.New("pq: name already in heap")
	ErrNotQueued        = errors.New("pq: name not in heap")
	ErrNeverQueued      = errors.New("pq: name was never enqueued")
	ErrPriorityIncrease = errors.New("pq: new priority is greater than current")
)

// IndexedMinHeap orders the names [0, capacity) by an int64 priority.
type IndexedMinHeap struct {
	heap     []int
	pos      []int
	priority []int64
	parent   []int
	seen     bits.Bits
	size     int
}

// NewIndexedMinHeap returns an empty heap able to hold names [0, capacity).
// Complexity: O(capacity).
func NewIndexedMinHeap(capacity int) *IndexedMinHeap {
	if capacity < 0 {
		capacity = 0
	}

	return &IndexedMinHeap{
		heap:     make([]int, capacity+1),
		pos:      make([]int, capacity),
		priority: make([]int64, capacity),
		parent:   make([]int, capacity),
		seen:     bits.New(capacity),
	}
}

// Len returns the number of names currently in the heap.
func (h *IndexedMinHeap) Len() int { return h.size }

// IsEmpty reports whether the heap holds no names.
func (h *IndexedMinHeap) IsEmpty() bool { return h.size == 0 }

// Contains reports whether name is currently in the heap. Out-of-range
// names are simply not contained.
// Complexity: O(1).
func (h *IndexedMinHeap) Contains(name int) bool {
	return name >= 0 && name < len(h.pos) && h.pos[name] != 0
}

// Insert adds name with the given priority and parent payload.
// Complexity: O(log n).
func (h *IndexedMinHeap) Insert(name int, priority int64, parent int) {
	h.mustRange(name)
	if h.pos[name] != 0 {
		panic(fmt.Errorf("Insert(%d): %w", name, ErrAlreadyQueued))
	}

	h.size++
	h.heap[h.size] = name
	h.pos[name] = h.size
	h.priority[name] = priority
	h.parent[name] = parent
	h.seen.SetBit(name, 1)
	h.swim(h.size)
}

// Min returns the name with the smallest priority without removing it.
func (h *IndexedMinHeap) Min() int {
	if h.size == 0 {
		panic(ErrEmptyHeap)
	}

	return h.heap[1]
}

// ExtractMin removes and returns the name with the smallest priority.
// Its priority and parent stay readable afterwards.
// Complexity: O(log n).
func (h *IndexedMinHeap) ExtractMin() int {
	if h.size == 0 {
		panic(ErrEmptyHeap)
	}

	minName := h.heap[1]
	h.exchange(1, h.size) // root ↔ last leaf
	h.size--
	h.sink(1)

	h.pos[minName] = 0
	h.heap[h.size+1] = 0

	return minName
}

// DecreaseKey lowers the priority of a queued name, replaces its parent
// payload and restores heap order by sifting the name up from its slot.
// Complexity: O(log n).
func (h *IndexedMinHeap) DecreaseKey(name int, priority int64, parent int) {
	h.mustRange(name)
	k := h.pos[name]
	if k == 0 {
		panic(fmt.Errorf("DecreaseKey(%d): %w", name, ErrNotQueued))
	}
	if priority > h.priority[name] {
		panic(fmt.Errorf("DecreaseKey(%d): %d > %d: %w", name, priority, h.priority[name], ErrPriorityIncrease))
	}

	h.priority[name] = priority
	h.parent[name] = parent
	h.swim(k)
}

// Priority returns the last priority assigned to name, queued or extracted.
func (h *IndexedMinHeap) Priority(name int) int64 {
	h.mustSeen(name)

	return h.priority[name]
}

// Parent returns the last parent payload assigned to name.
func (h *IndexedMinHeap) Parent(name int) int {
	h.mustSeen(name)

	return h.parent[name]
}

func (h *IndexedMinHeap) mustRange(name int) {
	if name < 0 || name >= len(h.pos) {
		panic(fmt.Errorf("name %d, capacity %d: %w", name, len(h.pos), ErrIndexOutOfRange))
	}
}

func (h *IndexedMinHeap) mustSeen(name int) {
	h.mustRange(name)
	if h.seen.Bit(name) == 0 {
		panic(fmt.Errorf("name %d: %w", name, ErrNeverQueued))
	}
}

func (h *IndexedMinHeap) greater(i, j int) bool {
	return h.priority[h.heap[i]] > h.priority[h.heap[j]]
}

func (h *IndexedMinHeap) exchange(i, j int) {
	h.heap[i], h.heap[j] = h.heap[j], h.heap[i]
	h.pos[h.heap[i]] = i
	h.pos[h.heap[j]] = j
}

func (h *IndexedMinHeap) swim(k int) {
	for k > 1 && h.greater(k/2, k) {
		h.exchange(k, k/2)
		k /= 2
	}
}

func (h *IndexedMinHeap) sink(k int) {
	for 2*k <= h.size {
		j := 2 * k
		if j < h.size && h.greater(j, j+1) {
			j++
		}
		if !h.greater(k, j) {
			break
		}
		h.exchange(k, j)
		k = j
	}
}
