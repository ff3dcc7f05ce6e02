package memtable

import (
	"github.com/coocood/freecache"
)

// MemTable is a process local byte cache with eviction
type MemTable struct {
	cache *freecache.Cache
}

// New creates freecache with size
func New(size int) *MemTable {
	return &MemTable{
		cache: freecache.NewCache(size),
	}
}

// Get ...
func (m *MemTable) Get(key string) ([]byte, bool) {
	data, err := m.cache.Get([]byte(key))
	if err != nil {
		return nil, false
	}
	return data, true
}

// Set stores data for ttlSeconds, 0 means no expiration
func (m *MemTable) Set(key string, data []byte, ttlSeconds int) {
	_ = m.cache.Set([]byte(key), data, ttlSeconds)
}

// Del ...
func (m *MemTable) Del(key string) {
	m.cache.Del([]byte(key))
}

// EntryCount ...
func (m *MemTable) EntryCount() int64 {
	return m.cache.EntryCount()
}
