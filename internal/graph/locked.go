package graph

import (
	"sync"

	"main/internal/layout"
	"main/internal/schema"
)

// Locked serializes access to an Engine behind a single mutex, one method
// per public operation. Reads lock as well, so callers never observe a
// rebuild mid-flight.
type Locked struct {
	mu     sync.Mutex
	engine *Engine
}

// NewLocked wraps an engine for concurrent callers.
func NewLocked(engine *Engine) *Locked {
	return &Locked{engine: engine}
}

// AddAsset locks and delegates.
func (l *Locked) AddAsset(asset schema.Asset) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.engine.AddAsset(asset)
}

// AddRegulatoryEvent locks and delegates.
func (l *Locked) AddRegulatoryEvent(event schema.RegulatoryEvent) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.engine.AddRegulatoryEvent(event)
}

// AddRelationship locks and delegates.
func (l *Locked) AddRelationship(source, target string, relType schema.RelationshipType, strength float64, bidirectional bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.engine.AddRelationship(source, target, relType, strength, bidirectional)
}

// BuildRelationships locks and delegates.
func (l *Locked) BuildRelationships() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.engine.BuildRelationships()
}

// CalculateMetrics locks and delegates.
func (l *Locked) CalculateMetrics() Snapshot {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.engine.CalculateMetrics()
}

// GetLayoutData locks and delegates.
func (l *Locked) GetLayoutData() layout.Data {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.engine.GetLayoutData()
}

// Relationships locks and delegates.
func (l *Locked) Relationships(source string) []schema.Relationship {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.engine.Relationships(source)
}

// Edges locks and delegates.
func (l *Locked) Edges() map[string][]schema.Relationship {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.engine.Edges()
}
