package cache

import (
	"container/list"
	"sync"
	"time"
)

type entry struct {
	key       string
	value     any
	expiresAt time.Time
}

// Store is a bounded TTL cache with LRU eviction. A capacity <= 0 means
// unbounded; a zero TTL means the entry never expires. Expired entries are
// dropped lazily on Get.
type Store struct {
	mu       sync.Mutex
	capacity int
	items    map[string]*list.Element
	order    *list.List
}

func NewStore(capacity int) *Store {
	return &Store{
		capacity: capacity,
		items:    map[string]*list.Element{},
		order:    list.New(),
	}
}

func (s *Store) Get(key string) (any, bool) {
	if s == nil {
		return nil, false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	elem, ok := s.items[key]
	if !ok {
		return nil, false
	}
	item := elem.Value.(*entry)
	if !item.expiresAt.IsZero() && time.Now().After(item.expiresAt) {
		s.remove(elem)
		return nil, false
	}
	s.order.MoveToFront(elem)
	return item.value, true
}

func (s *Store) Set(key string, value any, ttl time.Duration) {
	if s == nil || key == "" {
		return
	}
	expiry := time.Time{}
	if ttl > 0 {
		expiry = time.Now().Add(ttl)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if elem, ok := s.items[key]; ok {
		item := elem.Value.(*entry)
		item.value = value
		item.expiresAt = expiry
		s.order.MoveToFront(elem)
		return
	}
	elem := s.order.PushFront(&entry{key: key, value: value, expiresAt: expiry})
	s.items[key] = elem
	if s.capacity > 0 {
		for len(s.items) > s.capacity {
			oldest := s.order.Back()
			if oldest == nil {
				break
			}
			s.remove(oldest)
		}
	}
}

func (s *Store) Delete(key string) {
	if s == nil || key == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if elem, ok := s.items[key]; ok {
		s.remove(elem)
	}
}

func (s *Store) Len() int {
	if s == nil {
		return 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

func (s *Store) Purge() {
	if s == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = map[string]*list.Element{}
	s.order.Init()
}

func (s *Store) remove(elem *list.Element) {
	item := elem.Value.(*entry)
	delete(s.items, item.key)
	s.order.Remove(elem)
}
