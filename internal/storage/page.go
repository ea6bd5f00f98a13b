package storage

// Page is one fixed size buffer. The zero value is an absent page.
type Page struct {
	data []byte
}

func newPage(size int) Page {
	return Page{data: make([]byte, size)}
}

func (p Page) Allocated() bool { return p.data != nil }

func (p Page) Size() int { return len(p.data) }

// window returns data[off:off+n] capped at n, so a write cannot run into the next row.
func (p Page) window(off, n int) []byte {
	return p.data[off : off+n : off+n]
}
