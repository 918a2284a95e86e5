package icons

import (
	"fmt"
	"os"
	"time"

	"github.com/bluele/gcache"
)

// Lister returns the names of the non-directory entries in dir.
type Lister interface {
	List(dir string) ([]string, error)
}

// DirLister reads directories directly from disk on every call.
type DirLister struct{}

// List implements Lister.
func (DirLister) List(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		// Skip dirs.
		if entry.IsDir() {
			continue
		}
		names = append(names, entry.Name())
	}
	return names, nil
}

// ListingCache memoizes directory listings of another Lister.
// Failed reads are cached too, so missing theme directories are not probed
// again until the entry expires.
type ListingCache struct {
	cache gcache.Cache
}

type listing struct {
	names []string
	err   error
}

// NewListingCache returns a cache holding up to size listings of lister
// for ttl each. A size of zero or less does not limit the cache, a ttl of
// zero keeps listings until they are evicted.
func NewListingCache(lister Lister, size int, ttl time.Duration) *ListingCache {
	var builder *gcache.CacheBuilder
	if size > 0 {
		builder = gcache.New(size).LRU()
	} else {
		builder = gcache.New(0).Simple()
	}
	builder = builder.
		LoaderFunc(func(key interface{}) (interface{}, error) {
			dir, ok := key.(string)
			if !ok {
				return nil, fmt.Errorf("invalid listing key %v", key)
			}
			names, err := lister.List(dir)
			return &listing{names: names, err: err}, nil
		})
	if ttl > 0 {
		builder = builder.Expiration(ttl)
	}

	return &ListingCache{
		cache: builder.Build(),
	}
}

// List implements Lister.
func (lc *ListingCache) List(dir string) ([]string, error) {
	v, err := lc.cache.Get(dir)
	if err != nil {
		return nil, err
	}
	l, ok := v.(*listing)
	if !ok {
		return nil, fmt.Errorf("invalid listing cache entry for %s", dir)
	}
	return l.names, l.err
}

// Purge removes all cached listings.
func (lc *ListingCache) Purge() {
	lc.cache.Purge()
}
