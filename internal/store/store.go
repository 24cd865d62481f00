// Package store keeps the transient "My List" membership set.
package store

import "sync"

// MyList is a set of catalog item IDs. It is not persisted.
type MyList struct {
	mu  sync.RWMutex
	ids map[int]struct{}
}

func NewMyList() *MyList {
	return &MyList{ids: make(map[int]struct{})}
}

// Toggle adds id when absent and removes it when present. It reports whether
// id is a member afterwards.
func (l *MyList) Toggle(id int) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.ids[id]; ok {
		delete(l.ids, id)
		return false
	}
	l.ids[id] = struct{}{}
	return true
}

func (l *MyList) Has(id int) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	_, ok := l.ids[id]
	return ok
}

func (l *MyList) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.ids)
}
