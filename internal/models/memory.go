package models

import "sync"

// MemoryRegister is the calculator's single numeric memory slot. The
// set flag distinguishes a stored zero from an empty register so the
// memory indicator only lights up when a value is held.
type MemoryRegister struct {
	mu    sync.RWMutex
	value float64
	set   bool
}

// NewMemoryRegister creates an empty register.
func NewMemoryRegister() *MemoryRegister {
	return &MemoryRegister{}
}

// Add accumulates v into the register and returns the new value.
func (mr *MemoryRegister) Add(v float64) float64 {
	mr.mu.Lock()
	defer mr.mu.Unlock()
	mr.value += v
	mr.set = true
	return mr.value
}

// Subtract removes v from the register and returns the new value.
func (mr *MemoryRegister) Subtract(v float64) float64 {
	mr.mu.Lock()
	defer mr.mu.Unlock()
	mr.value -= v
	mr.set = true
	return mr.value
}

// Recall returns the stored value and whether the register holds one.
func (mr *MemoryRegister) Recall() (float64, bool) {
	mr.mu.RLock()
	defer mr.mu.RUnlock()
	return mr.value, mr.set
}

// Clear empties the register.
func (mr *MemoryRegister) Clear() {
	mr.mu.Lock()
	defer mr.mu.Unlock()
	mr.value = 0
	mr.set = false
}
