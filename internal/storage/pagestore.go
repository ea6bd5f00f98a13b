package storage

import (
	"fmt"
	"log/slog"
)

// PageStore is an index-addressed set of lazily allocated pages.
// The slot array is sized once from the layout and never grows.
type PageStore struct {
	layout   Layout
	pages    []Page
	released bool
}

func NewPageStore(l Layout) (*PageStore, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}
	return &PageStore{
		layout: l,
		pages:  make([]Page, l.MaxPages),
	}, nil
}

func (s *PageStore) Layout() Layout { return s.layout }

// Slot returns the RowSize byte region for rowIndex, allocating its page on first use.
// rowIndex must be in [0, MaxRows); the table guards that bound.
func (s *PageStore) Slot(rowIndex int) []byte {
	if s.released {
		panic(ErrStoreReleased)
	}
	if rowIndex < 0 || rowIndex >= s.layout.MaxRows() {
		panic(fmt.Sprintf("storage: row index %d out of range [0,%d)", rowIndex, s.layout.MaxRows()))
	}

	addr := Locate(rowIndex, s.layout)
	p := s.pages[addr.PageIndex]
	if !p.Allocated() {
		p = newPage(s.layout.PageSize)
		s.pages[addr.PageIndex] = p
		slog.Debug("pagestore: allocate page",
			"page", addr.PageIndex,
			"size", s.layout.PageSize,
		)
	}
	return p.window(addr.ByteOffset, s.layout.RowSize)
}

func (s *PageStore) Allocated(pageIndex int) bool {
	if pageIndex < 0 || pageIndex >= len(s.pages) {
		return false
	}
	return s.pages[pageIndex].Allocated()
}

func (s *PageStore) AllocatedPages() int {
	n := 0
	for _, p := range s.pages {
		if p.Allocated() {
			n++
		}
	}
	return n
}

// Release drops every page. The store must not be used afterwards.
func (s *PageStore) Release() {
	if s.released {
		return
	}
	freed := s.AllocatedPages()
	for i := range s.pages {
		s.pages[i] = Page{}
	}
	s.pages = nil
	s.released = true
	slog.Debug("pagestore: released", "pages", freed)
}

func (s *PageStore) Released() bool { return s.released }
