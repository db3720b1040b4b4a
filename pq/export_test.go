// SPDX-License-Identifier: MIT

package pq

import "fmt"

// CheckInvariants exposes a white-box heap-order and index check to pq_test.
func (h *IndexedMinHeap) CheckInvariants() error {
	for k := 1; k <= h.size; k++ {
		name := h.heap[k]
		if h.pos[name] != k {
			return fmt.Errorf("pos[%d]=%d, want %d", name, h.pos[name], k)
		}
		for _, c := range []int{2 * k, 2*k + 1} {
			if c <= h.size && h.greater(k, c) {
				return fmt.Errorf("slot %d (prio %d) above slot %d (prio %d)",
					k, h.priority[name], c, h.priority[h.heap[c]])
			}
		}
	}

	return nil
}
