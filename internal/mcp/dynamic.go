package mcp

import (
	"errors"
	"sort"
	"sync"
)

// DynamicState tracks which toolsets are live on one server instance in
// dynamic discovery mode, and which tool names each registered so they can be
// removed again.
type DynamicState struct {
	mu      sync.RWMutex
	enabled map[string][]string
}

func NewDynamicState() *DynamicState {
	return &DynamicState{enabled: map[string][]string{}}
}

// Enable records a toolset's registered tool names. It reports false when
// the toolset was already enabled, leaving the earlier names in place, so
// concurrent enables settle here rather than at the callers' checks.
func (s *DynamicState) Enable(id string, toolNames []string) (bool, error) {
	if s == nil {
		return false, errors.New("dynamic state is nil")
	}
	if id == "" {
		return false, errors.New("toolset id required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.enabled[id]; exists {
		return false, nil
	}
	s.enabled[id] = append([]string{}, toolNames...)
	return true, nil
}

// Disable returns the tool names that were registered for the toolset, or
// nil when it was not enabled.
func (s *DynamicState) Disable(id string) []string {
	if s == nil || id == "" {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	names, ok := s.enabled[id]
	if !ok {
		return nil
	}
	delete(s.enabled, id)
	return names
}

func (s *DynamicState) IsEnabled(id string) bool {
	if s == nil {
		return false
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.enabled[id]
	return ok
}

func (s *DynamicState) Enabled() []string {
	if s == nil {
		return nil
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]string, 0, len(s.enabled))
	for id := range s.enabled {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func (s *DynamicState) ToolNames(id string) []string {
	if s == nil {
		return nil
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string{}, s.enabled[id]...)
}
