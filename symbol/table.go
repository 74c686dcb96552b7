// Package symbol interns tokens into dense integer ids.
//
// Inputs often name things with strings (cities, users, edges given as
// "a b"); a Table maps each distinct token to 0, 1, 2, ... in order of first
// appearance so the ids can index slices directly.
package symbol

import (
	"slices"

	"github.com/arloliu/tokread/internal/hash"
)

// Table maps tokens to dense ids.
//
// Tokens are bucketed by their xxHash64; different tokens that share a hash
// are kept apart by comparing text, and the collision is recorded.
// A Table is not safe for concurrent use.
type Table struct {
	buckets   map[uint64][]int // hash → ids sharing that hash
	names     []string         // id → token
	collision bool
	hashFn    func(string) uint64
}

// NewTable creates an empty table.
func NewTable() *Table {
	return &Table{
		buckets: make(map[uint64][]int),
		names:   make([]string, 0),
		hashFn:  hash.ID,
	}
}

// Intern returns the id of tok, assigning the next free id if tok is new.
//
// The table keeps tok as given; when tok is a token from a reader it
// refers into the reader's buffer.
func (t *Table) Intern(tok string) int {
	h := t.hashFn(tok)
	bucket := t.buckets[h]
	for _, id := range bucket {
		if t.names[id] == tok {
			return id
		}
	}
	if len(bucket) > 0 {
		t.collision = true
	}

	id := len(t.names)
	t.names = append(t.names, tok)
	t.buckets[h] = append(bucket, id)

	return id
}

// Lookup returns the id of tok without interning it.
func (t *Table) Lookup(tok string) (int, bool) {
	for _, id := range t.buckets[t.hashFn(tok)] {
		if t.names[id] == tok {
			return id, true
		}
	}

	return 0, false
}

// Name returns the token interned as id. It panics if id is out of range.
func (t *Table) Name(id int) string {
	return t.names[id]
}

// Names returns a copy of all interned tokens ordered by id.
func (t *Table) Names() []string {
	return slices.Clone(t.names)
}

// Len returns the number of distinct tokens.
func (t *Table) Len() int {
	return len(t.names)
}

// HasCollision reports whether two distinct tokens hashed to the same value.
func (t *Table) HasCollision() bool {
	return t.collision
}

// Reset forgets all tokens but keeps allocated capacity.
func (t *Table) Reset() {
	clear(t.buckets)
	t.names = t.names[:0]
	t.collision = false
}
