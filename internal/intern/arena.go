package intern

import (
	"errors"
	"fmt"
)

// DefaultPageSize is the capacity of an arena page unless configured otherwise.
//
const DefaultPageSize = 1024

// ErrStringTooLarge is returned when a string does not fit in a single page.
//
var ErrStringTooLarge = errors.New("string too large for arena page")

// FitPolicy selects the page a new string is placed in.
//
type FitPolicy int

const (
	// FirstFit places a string in the first page with enough room left,
	// so small strings backfill pages skipped by earlier large ones.
	//
	FirstFit FitPolicy = iota
	// LastPageOnly only ever appends to the most recent page.
	//
	LastPageOnly
)

// page is a fixed-capacity bump-allocated buffer.
//
type page struct {
	buf []byte
	pos int
}

// Arena hands out immutable byte slices from fixed-size pages.
// Pages are never freed individually; the arena only grows until Reset.
//
type Arena struct {
	pageSize int
	policy   FitPolicy
	pages    []*page
}

// NewArena creates an arena with one empty page.
//
func NewArena(pageSize int, policy FitPolicy) *Arena {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	a := &Arena{pageSize: pageSize, policy: policy}
	a.Reset()
	return a
}

// Alloc copies b into the arena, returning the page index and offset of the copy.
//
func (a *Arena) Alloc(b []byte) (int, int, error) {
	n := len(b)
	if n > a.pageSize {
		return 0, 0, fmt.Errorf("%w: %d bytes, page size %d", ErrStringTooLarge, n, a.pageSize)
	}
	idx := a.fit(n)
	if idx < 0 {
		a.pages = append(a.pages, &page{buf: make([]byte, a.pageSize)})
		idx = len(a.pages) - 1
	}
	p := a.pages[idx]
	off := p.pos
	copy(p.buf[off:], b)
	p.pos += n
	return idx, off, nil
}

// fit returns the index of the page that can take n more bytes, or -1.
//
func (a *Arena) fit(n int) int {
	if a.policy == LastPageOnly {
		last := len(a.pages) - 1
		if last >= 0 && a.pages[last].pos+n <= a.pageSize {
			return last
		}
		return -1
	}
	for i, p := range a.pages {
		if p.pos+n <= a.pageSize {
			return i
		}
	}
	return -1
}

// Slice returns the n bytes stored at (pageIdx, off).
// The capacity is clipped so appends by the caller cannot scribble over neighbours.
//
func (a *Arena) Slice(pageIdx, off, n int) []byte {
	return a.pages[pageIdx].buf[off : off+n : off+n]
}

// PageSize returns the configured page capacity.
//
func (a *Arena) PageSize() int {
	return a.pageSize
}

// Pages returns the number of allocated pages.
//
func (a *Arena) Pages() int {
	return len(a.pages)
}

// Used returns the write cursor of page i.
//
func (a *Arena) Used(i int) int {
	return a.pages[i].pos
}

// Reset drops every page and starts over with a single empty one.
//
func (a *Arena) Reset() {
	a.pages = []*page{{buf: make([]byte, a.pageSize)}}
}
