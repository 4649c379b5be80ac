package memcached

import (
	"errors"
	"sync"

	"github.com/bradfitz/gomemcache/memcache"
)

// fakeClient is an in-memory stand-in for a memcached server.
type fakeClient struct {
	mu    sync.Mutex
	items map[string][]byte
	down  bool
}

var errServerDown = errors.New("dial tcp 127.0.0.1:11211: connect: connection refused")

func newFakeClient() *fakeClient {
	return &fakeClient{items: make(map[string][]byte)}
}

func (f *fakeClient) Get(key string) (*memcache.Item, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.down {
		return nil, errServerDown
	}
	v, ok := f.items[key]
	if !ok {
		return nil, memcache.ErrCacheMiss
	}
	return &memcache.Item{Key: key, Value: append([]byte(nil), v...)}, nil
}

func (f *fakeClient) Set(item *memcache.Item) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.down {
		return errServerDown
	}
	f.items[item.Key] = append([]byte(nil), item.Value...)
	return nil
}

func (f *fakeClient) Add(item *memcache.Item) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.down {
		return errServerDown
	}
	if _, ok := f.items[item.Key]; ok {
		return memcache.ErrNotStored
	}
	f.items[item.Key] = append([]byte(nil), item.Value...)
	return nil
}

func (f *fakeClient) Delete(key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.down {
		return errServerDown
	}
	if _, ok := f.items[key]; !ok {
		return memcache.ErrCacheMiss
	}
	delete(f.items, key)
	return nil
}

func (f *fakeClient) Ping() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.down {
		return errServerDown
	}
	return nil
}

func (f *fakeClient) has(key string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.items[key]
	return ok
}
