// Copyright 2026 The Hashira Authors
// SPDX-License-Identifier: MIT

package webui

import "sync"

// DefaultMaxResults is the number of results kept for download.
const DefaultMaxResults = 32

// entry is what survives a request once its scratch directory is gone.
type entry struct {
	ID          string
	SpecName    string
	Description string
	Generated   string
	Model       string
	Placeholder bool
	Files       []fileView
	Residue     int
	Fallback    bool
	WriteError  string
	Zip         []byte
}

type fileView struct {
	Name    string `json:"name"`
	Content string `json:"content"`
}

// resultStore keeps the most recent results in memory. When full, the
// oldest entry is dropped.
type resultStore struct {
	mu    sync.Mutex
	max   int
	order []string
	items map[string]*entry
}

func newResultStore(max int) *resultStore {
	if max <= 0 {
		max = DefaultMaxResults
	}
	return &resultStore{max: max, items: make(map[string]*entry)}
}

func (s *resultStore) put(e *entry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.items[e.ID]; !ok {
		s.order = append(s.order, e.ID)
	}
	s.items[e.ID] = e
	for len(s.order) > s.max {
		delete(s.items, s.order[0])
		s.order = s.order[1:]
	}
}

func (s *resultStore) get(id string) (*entry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.items[id]
	return e, ok
}

func (s *resultStore) len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}
