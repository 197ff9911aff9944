package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// MemoryRow holds the memory register keys.
type MemoryRow struct {
	container *fyne.Container

	clearHandler    func()
	recallHandler   func()
	addHandler      func()
	subtractHandler func()
}

// NewMemoryRow creates the memory key row.
func NewMemoryRow() *MemoryRow {
	mr := &MemoryRow{}
	mr.buildLayout()
	return mr
}

func (mr *MemoryRow) buildLayout() {
	mr.container = container.NewGridWithColumns(4,
		widget.NewButton("MC", func() { mr.fire(mr.clearHandler) }),
		widget.NewButton("MR", func() { mr.fire(mr.recallHandler) }),
		widget.NewButton("M+", func() { mr.fire(mr.addHandler) }),
		widget.NewButton("M-", func() { mr.fire(mr.subtractHandler) }),
	)
}

func (mr *MemoryRow) fire(handler func()) {
	if handler != nil {
		handler()
	}
}

func (mr *MemoryRow) SetClearHandler(handler func()) {
	mr.clearHandler = handler
}

func (mr *MemoryRow) SetRecallHandler(handler func()) {
	mr.recallHandler = handler
}

func (mr *MemoryRow) SetAddHandler(handler func()) {
	mr.addHandler = handler
}

func (mr *MemoryRow) SetSubtractHandler(handler func()) {
	mr.subtractHandler = handler
}

// GetContainer returns the memory row container.
func (mr *MemoryRow) GetContainer() *fyne.Container {
	return mr.container
}
