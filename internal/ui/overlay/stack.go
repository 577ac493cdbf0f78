// Package overlay holds the shared machinery behind modal and anchored
// surfaces: the stacking registry, the scroll lock, the open/closed
// lifecycle, the modal mount effect and anchored placement.
package overlay

import (
	"fmt"
	"slices"
	"sync"
	"sync/atomic"
)

// Handle identifies one mounted overlay instance.
type Handle string

var handleSeq atomic.Uint64

// NewHandle returns a process-unique handle such as "drawer-4".
func NewHandle(kind string) Handle {
	return Handle(fmt.Sprintf("%s-%d", kind, handleSeq.Add(1)))
}

func (h Handle) String() string { return string(h) }

// Stack is the ordered registry of open overlays. Registration order is
// z-order; the last handle is the topmost.
type Stack struct {
	mu  sync.Mutex
	ids []Handle
}

// NewStack returns an empty stack.
func NewStack() *Stack {
	return &Stack{}
}

// Register appends id unless it is already present.
func (s *Stack) Register(id Handle) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if slices.Contains(s.ids, id) {
		return
	}
	s.ids = append(s.ids, id)
}

// Unregister removes id if present.
func (s *Stack) Unregister(id Handle) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := slices.Index(s.ids, id); i >= 0 {
		s.ids = slices.Delete(s.ids, i, i+1)
	}
}

// IsTopmost reports whether id is the most recently registered overlay.
func (s *Stack) IsTopmost(id Handle) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.ids) > 0 && s.ids[len(s.ids)-1] == id
}

// Len reports how many overlays are registered.
func (s *Stack) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.ids)
}
