package graph

import (
	"math"
	"sort"
	"time"

	"main/internal/layout"
	"main/internal/obs"
	"main/internal/schema"
)

const (
	strengthSameSector    = 0.7
	strengthCorporateLink = 0.9
)

// Engine owns the asset registry, the per-source edge lists and the stored
// regulatory events. Every operation runs to completion inline; the engine
// itself is not safe for concurrent use, wrap it in Locked behind concurrent
// callers.
type Engine struct {
	registry *schema.Registry
	edges    map[string][]schema.Relationship
	sources  []string
	events   []schema.RegulatoryEvent
	metrics  *obs.Metrics
}

// NewEngine creates an empty engine. metrics may be nil.
func NewEngine(metrics *obs.Metrics) *Engine {
	return &Engine{
		registry: schema.NewRegistry(),
		edges:    make(map[string][]schema.Relationship),
		metrics:  metrics,
	}
}

// AddAsset inserts or overwrites the registry entry keyed by asset.ID.
func (e *Engine) AddAsset(asset schema.Asset) {
	e.registry.AddAsset(asset)
}

// Asset returns a registered asset by id.
func (e *Engine) Asset(id string) (schema.Asset, bool) {
	return e.registry.Get(id)
}

// Assets returns all registered assets in insertion order.
func (e *Engine) Assets() []schema.Asset {
	return e.registry.List()
}

// AddRegulatoryEvent appends an event. Events persist for the lifetime of
// the engine and are re-applied on every rebuild.
func (e *Engine) AddRegulatoryEvent(event schema.RegulatoryEvent) {
	e.events = append(e.events, event)
}

// AddRelationship inserts a manual edge, subject to the same per-source
// (target, type) dedup rule as derived edges. With bidirectional set, the
// reverse edge is inserted as well. Manual edges do not survive a rebuild.
func (e *Engine) AddRelationship(source, target string, relType schema.RelationshipType, strength float64, bidirectional bool) {
	e.insert(source, target, relType, strength)
	if bidirectional {
		e.insert(target, source, relType, strength)
	}
}

// Relationships returns a copy of the edge list for one source.
func (e *Engine) Relationships(source string) []schema.Relationship {
	list := e.edges[source]
	if len(list) == 0 {
		return nil
	}
	out := make([]schema.Relationship, len(list))
	copy(out, list)
	return out
}

// Edges returns a copy of the full adjacency map for the visualization
// consumer. Per-source ordering is preserved.
func (e *Engine) Edges() map[string][]schema.Relationship {
	out := make(map[string][]schema.Relationship, len(e.edges))
	for source, list := range e.edges {
		copied := make([]schema.Relationship, len(list))
		copy(copied, list)
		out[source] = copied
	}
	return out
}

// BuildRelationships discards all existing edges, including manually added
// ones, then re-derives the edge set: the pairwise discovery rules first,
// the regulatory event pass second. Rebuilding twice with an unchanged
// registry and event list yields identical edge sets.
func (e *Engine) BuildRelationships() {
	start := time.Now()
	e.edges = make(map[string][]schema.Relationship)
	e.sources = nil
	e.discover()
	e.applyEvents()
	e.metrics.ObserveRebuild(time.Since(start))
}

// GetLayoutData computes the deterministic circular embedding of the current
// effective vertex set.
func (e *Engine) GetLayoutData() layout.Data {
	return layout.Circle(e.effectiveVertexIDs())
}

// discover runs the fixed-priority rules over every unordered pair of
// registered assets, in registry insertion order. The full O(n^2) scan is
// intentional; n is bounded to hundreds of assets and the iteration order
// feeds the documented tie-break behavior.
func (e *Engine) discover() {
	ids := e.registry.IDs()
	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			a, _ := e.registry.Get(ids[i])
			b, _ := e.registry.Get(ids[j])

			if a.Sector == b.Sector && a.Sector != schema.SectorUnknown {
				e.insert(a.ID, b.ID, schema.RelationSameSector, strengthSameSector)
				e.insert(b.ID, a.ID, schema.RelationSameSector, strengthSameSector)
			}

			// Instrument points at its issuer; no reverse edge.
			if a.Class == schema.AssetClassFixedIncome && a.IssuerID == b.ID {
				e.insert(a.ID, b.ID, schema.RelationCorporateLink, strengthCorporateLink)
			}
			if b.Class == schema.AssetClassFixedIncome && b.IssuerID == a.ID {
				e.insert(b.ID, a.ID, schema.RelationCorporateLink, strengthCorporateLink)
			}
		}
	}
}

// applyEvents turns stored events into event_impact edges. Events whose
// subject is unregistered are skipped, as are unregistered related ids.
func (e *Engine) applyEvents() {
	for _, event := range e.events {
		if !e.registry.Has(event.AssetID) {
			e.metrics.IncEventSkipped()
			continue
		}
		for _, related := range event.RelatedAssets {
			if !e.registry.Has(related) {
				continue
			}
			e.insert(event.AssetID, related, schema.RelationEventImpact, math.Abs(event.ImpactScore))
		}
	}
}

// insert appends an edge unless the source already holds one with the same
// (target, type) pair. A suppressed insert never updates strength.
func (e *Engine) insert(source, target string, relType schema.RelationshipType, strength float64) {
	list, known := e.edges[source]
	for _, rel := range list {
		if rel.TargetID == target && rel.Type == relType {
			e.metrics.IncDedupSkip()
			return
		}
	}
	if !known {
		e.sources = append(e.sources, source)
	}
	e.edges[source] = append(list, schema.Relationship{
		SourceID: source,
		TargetID: target,
		Type:     relType,
		Strength: strength,
	})
	e.metrics.IncEdgeInserted()
}

// flatten lists every edge in production order: sources in first-insertion
// order, then each per-source list in append order.
func (e *Engine) flatten() []schema.Relationship {
	var flat []schema.Relationship
	for _, source := range e.sources {
		flat = append(flat, e.edges[source]...)
	}
	return flat
}

// effectiveVertexIDs returns the union of registered ids and edge endpoints,
// sorted lexicographically.
func (e *Engine) effectiveVertexIDs() []string {
	set := make(map[string]struct{}, e.registry.Count())
	for _, id := range e.registry.IDs() {
		set[id] = struct{}{}
	}
	for source, list := range e.edges {
		set[source] = struct{}{}
		for _, rel := range list {
			set[rel.TargetID] = struct{}{}
		}
	}
	ids := make([]string, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
