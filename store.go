package main

import (
	"bytes"
	"cmp"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"
)

// LiveDiagram is a diagram together with its shared state and gesture
// session.
type LiveDiagram struct {
	Diagram *Diagram
	Table   *Table
	State   *DiagramState
	Session *Session
}

// Store holds all diagrams and their live sessions in memory.
type Store struct {
	mu       sync.RWMutex
	diagrams map[string]*Diagram
	live     map[string]*LiveDiagram
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		diagrams: make(map[string]*Diagram),
		live:     make(map[string]*LiveDiagram),
	}
}

// LoadBuiltins adds the diagrams embedded in the binary.
func (s *Store) LoadBuiltins() error {
	list, err := DecodeDiagrams(bytes.NewReader(builtinDiagrams))
	if err != nil {
		return fmt.Errorf("builtin diagrams: %w", err)
	}
	return s.addAll(list)
}

// LoadFile adds the diagrams listed in a JSON file.
func (s *Store) LoadFile(path string) error {
	list, err := LoadDiagramsFile(path)
	if err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return s.addAll(list)
}

func (s *Store) addAll(list []*Diagram) error {
	for _, d := range list {
		if _, err := s.SaveDiagram(d); err != nil {
			return err
		}
	}
	return nil
}

// SaveDiagram validates and stores a diagram. An empty ID gets a generated
// one; an ID already in use is rejected.
func (s *Store) SaveDiagram(d *Diagram) (*Diagram, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	d = d.Clone()
	if d.ID == "" {
		d.ID = generateID()
	}
	d.CreatedAt = time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.diagrams[d.ID]; ok {
		return nil, fmt.Errorf("%w: id %q already in use", ErrInvalidDiagram, d.ID)
	}
	s.diagrams[d.ID] = d
	return d.Clone(), nil
}

// GetDiagram returns a copy of a diagram by ID, or nil if not found.
func (s *Store) GetDiagram(id string) *Diagram {
	s.mu.RLock()
	defer s.mu.RUnlock()
	d := s.diagrams[id]
	if d == nil {
		return nil
	}
	return d.Clone()
}

// ListDiagrams returns all diagrams, most recent first.
func (s *Store) ListDiagrams() []*Diagram {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := make([]*Diagram, 0, len(s.diagrams))
	for _, d := range s.diagrams {
		list = append(list, d.Clone())
	}
	slices.SortFunc(list, func(a, b *Diagram) int {
		return cmp.Or(b.CreatedAt.Compare(a.CreatedAt), strings.Compare(a.ID, b.ID))
	})
	return list
}

// Open returns the live session of a diagram, creating it on first use.
// publish receives every change the session makes to the diagram.
func (s *Store) Open(id string, publish func(evt any)) (*LiveDiagram, error) {
	s.mu.RLock()
	live := s.live[id]
	s.mu.RUnlock()
	if live != nil {
		return live, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if live := s.live[id]; live != nil {
		return live, nil
	}
	d := s.diagrams[id]
	if d == nil {
		return nil, fmt.Errorf("%w: %s", ErrDiagramNotFound, id)
	}
	table, err := LookupVariant(d.Variant)
	if err != nil {
		return nil, err
	}

	state := NewDiagramState(d, table.CellPrefix, publish)
	session := NewSession(table, state, state)
	if d.Margin != nil {
		session.SetMargin(*d.Margin)
	}
	if d.Ranks > 0 {
		session.SetRanks(d.Ranks)
	}
	live = &LiveDiagram{Diagram: d, Table: table, State: state, Session: session}
	s.live[id] = live
	return live, nil
}

func generateID() string {
	b := make([]byte, 8)
	rand.Read(b)
	return hex.EncodeToString(b)
}
