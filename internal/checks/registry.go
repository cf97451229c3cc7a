package checks

import (
	"fmt"
	"sort"
	"sync"
)

var (
	registry = make(map[string]Check)
	mu       sync.RWMutex
)

func Register(c Check) {
	mu.Lock()
	defer mu.Unlock()
	if _, exists := registry[c.ID()]; exists {
		panic(fmt.Sprintf("check %s already registered", c.ID()))
	}
	registry[c.ID()] = c
}

func List() []Check {
	mu.RLock()
	defer mu.RUnlock()
	var out []Check
	for _, c := range registry {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].ID() < out[j].ID()
	})
	return out
}

func Lookup(id string) (Check, error) {
	mu.RLock()
	defer mu.RUnlock()
	c, ok := registry[id]
	if !ok {
		return nil, fmt.Errorf("check not found: %s", id)
	}
	return c, nil
}
