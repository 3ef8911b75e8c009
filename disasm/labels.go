package disasm

import (
	"fmt"
	"sync"

	"github.com/ezrec/irre2/lift"
)

// LabelTable is the host-owned jump label table. Ensure is idempotent
// and safe for concurrent callers.
type LabelTable struct {
	mu     sync.Mutex
	byAddr map[uint32]lift.Label
	addrs  []uint32
}

var _ lift.Labels = (*LabelTable)(nil)

// NewLabelTable creates an empty label table.
func NewLabelTable() *LabelTable {
	return &LabelTable{
		byAddr: map[uint32]lift.Label{},
	}
}

// Ensure returns the label for an address, creating one on first use.
func (lt *LabelTable) Ensure(addr uint32) (label lift.Label, ok bool) {
	lt.mu.Lock()
	defer lt.mu.Unlock()

	label, ok = lt.byAddr[addr]
	if !ok {
		label = lift.Label(len(lt.addrs))
		lt.byAddr[addr] = label
		lt.addrs = append(lt.addrs, addr)
		ok = true
	}

	return
}

// Has returns true if the address already has a label.
func (lt *LabelTable) Has(addr uint32) bool {
	lt.mu.Lock()
	defer lt.mu.Unlock()

	_, ok := lt.byAddr[addr]
	return ok
}

// Name returns the listing name for a labeled address.
func (lt *LabelTable) Name(addr uint32) string {
	return fmt.Sprintf("loc_%x", addr)
}

// Len returns the number of labels created so far.
func (lt *LabelTable) Len() int {
	lt.mu.Lock()
	defer lt.mu.Unlock()

	return len(lt.addrs)
}
