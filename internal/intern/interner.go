// Package intern keeps a single canonical copy of every distinct byte string
// seen during a lexing session, so that equal strings compare as equal handles.
//
package intern

// StringRef is a handle to an interned string.
// Two refs from the same Interner are equal iff their bytes are equal.
// The zero value refers to no string.
//
type StringRef uint32

// NoReserved marks an interned string that is not a reserved word.
//
const NoReserved = -1

// InternedString is the view of an interned entry.
//
type InternedString struct {
	Reserved int // Keyword index, or NoReserved
	Bytes    []byte
}

// IsReserved reports whether the string was marked as a reserved word.
//
func (s InternedString) IsReserved() bool {
	return s.Reserved != NoReserved
}

// Config controls arena page size and fit policy.
//
type Config struct {
	PageSize int
	Policy   FitPolicy
}

// Stats summarises interner usage.
//
type Stats struct {
	Strings  int
	Pages    int
	PageSize int
	Used     []int
}

type entry struct {
	page     int
	off      int
	n        int
	reserved int
}

// Interner hash-conses byte strings into an Arena.
// It is not safe for concurrent use.
//
type Interner struct {
	arena   *Arena
	entries []entry // entries[0] is the zero StringRef
	index   map[string]StringRef
}

// New creates an Interner.
//
func New(cfg Config) *Interner {
	in := &Interner{arena: NewArena(cfg.PageSize, cfg.Policy)}
	in.Reset()
	return in
}

// Intern returns the handle for b, copying b into the arena the first time it is seen.
// The caller may reuse b afterwards.
//
func (in *Interner) Intern(b []byte) (StringRef, error) {
	// No allocation for the map lookup
	//
	if ref, ok := in.index[string(b)]; ok {
		return ref, nil
	}
	pageIdx, off, err := in.arena.Alloc(b)
	if err != nil {
		return 0, err
	}
	ref := StringRef(len(in.entries))
	in.entries = append(in.entries, entry{page: pageIdx, off: off, n: len(b), reserved: NoReserved})
	in.index[string(in.arena.Slice(pageIdx, off, len(b)))] = ref
	return ref, nil
}

// InternString is Intern for string input.
//
func (in *Interner) InternString(s string) (StringRef, error) {
	return in.Intern([]byte(s))
}

// Find returns the handle for b without interning it.
//
func (in *Interner) Find(b []byte) (StringRef, bool) {
	ref, ok := in.index[string(b)]
	return ref, ok
}

// Bytes returns the interned bytes for ref.
// The slice must not be modified.
//
func (in *Interner) Bytes(ref StringRef) []byte {
	if !in.Valid(ref) {
		return nil
	}
	e := in.entries[ref]
	return in.arena.Slice(e.page, e.off, e.n)
}

// String returns the interned text for ref.
//
func (in *Interner) String(ref StringRef) string {
	return string(in.Bytes(ref))
}

// Lookup returns the full entry for ref.
//
func (in *Interner) Lookup(ref StringRef) InternedString {
	if !in.Valid(ref) {
		return InternedString{Reserved: NoReserved}
	}
	return InternedString{Reserved: in.entries[ref].reserved, Bytes: in.Bytes(ref)}
}

// Reserve marks ref as reserved word number idx.
//
func (in *Interner) Reserve(ref StringRef, idx int) {
	if in.Valid(ref) {
		in.entries[ref].reserved = idx
	}
}

// Valid reports whether ref was issued by this interner (since the last Reset).
//
func (in *Interner) Valid(ref StringRef) bool {
	return ref > 0 && int(ref) < len(in.entries)
}

// Len returns the number of distinct strings.
//
func (in *Interner) Len() int {
	return len(in.entries) - 1
}

// Stats returns a usage summary.
//
func (in *Interner) Stats() Stats {
	st := Stats{Strings: in.Len(), Pages: in.arena.Pages(), PageSize: in.arena.PageSize()}
	for i := 0; i < st.Pages; i++ {
		st.Used = append(st.Used, in.arena.Used(i))
	}
	return st
}

// Reset forgets every string. Refs issued before the reset must not be used again.
//
func (in *Interner) Reset() {
	in.arena.Reset()
	in.entries = []entry{{reserved: NoReserved}}
	in.index = make(map[string]StringRef)
}
