package game

import (
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// NameCache maps lowercased canonical names to fetched characters with a
// TTL, so repeated image requests for the same character skip the live
// AniList search. Like the pool it is constructed at startup and injected.
//
// Entries are whole immutable Character values; concurrent writers for the
// same name are last-writer-wins by design.
type NameCache struct {
	c *gocache.Cache
}

// NewNameCache builds a cache whose entries expire after ttl.
func NewNameCache(ttl time.Duration) *NameCache {
	return &NameCache{c: gocache.New(ttl, 2*ttl)}
}

// Get returns the cached character for name, if present and unexpired.
func (n *NameCache) Get(name string) (Character, bool) {
	v, ok := n.c.Get(nameKey(name))
	if !ok {
		return Character{}, false
	}
	ch, ok := v.(Character)
	return ch, ok
}

// Put upserts the character under its own canonical name.
func (n *NameCache) Put(ch Character) {
	n.c.SetDefault(nameKey(ch.Name), ch)
}

func nameKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
