package graph

import (
	"sort"

	"main/internal/schema"
)

const topRelationshipLimit = 10

// Snapshot is a point-in-time aggregation of the current edge map, registry
// and event list.
type Snapshot struct {
	EffectiveVertexCount     int                  `json:"effective_vertex_count"`
	TotalRelationships       int                  `json:"total_relationships"`
	AverageStrength          float64              `json:"average_relationship_strength"`
	Density                  float64              `json:"relationship_density"`
	RelationshipDistribution map[string]int       `json:"relationship_distribution"`
	AssetClassDistribution   map[string]int       `json:"asset_class_distribution"`
	TopRelationships         []RankedRelationship `json:"top_relationships"`
	RegulatoryEventCount     int                  `json:"regulatory_event_count"`
}

// RankedRelationship is one entry of the strength-ranked edge listing.
type RankedRelationship struct {
	SourceID string                  `json:"source_id"`
	TargetID string                  `json:"target_id"`
	Type     schema.RelationshipType `json:"relationship_type"`
	Strength float64                 `json:"strength"`
}

// CalculateMetrics aggregates the current graph into a Snapshot. It is
// read-only; the engine is left untouched.
//
// Density counts actual directed edges against all V*(V-1) possible ones
// over the effective vertex set, as a percentage. Class distribution counts
// registered assets only. The top listing is sorted by strength descending
// with ties kept in edge production order.
func (e *Engine) CalculateMetrics() Snapshot {
	flat := e.flatten()
	total := len(flat)

	var sum float64
	relDist := make(map[string]int)
	for _, rel := range flat {
		sum += rel.Strength
		relDist[string(rel.Type)]++
	}
	avg := 0.0
	if total > 0 {
		avg = sum / float64(total)
	}

	vertexCount := len(e.effectiveVertexIDs())
	if registered := e.registry.Count(); registered > vertexCount {
		vertexCount = registered
	}

	density := 0.0
	if vertexCount > 1 {
		density = float64(total) / float64(vertexCount*(vertexCount-1)) * 100
	}

	classDist := make(map[string]int)
	for _, asset := range e.registry.List() {
		classDist[asset.Class.String()]++
	}

	top := make([]RankedRelationship, 0, len(flat))
	for _, rel := range flat {
		top = append(top, RankedRelationship{
			SourceID: rel.SourceID,
			TargetID: rel.TargetID,
			Type:     rel.Type,
			Strength: rel.Strength,
		})
	}
	sort.SliceStable(top, func(i, j int) bool {
		return top[i].Strength > top[j].Strength
	})
	if len(top) > topRelationshipLimit {
		top = top[:topRelationshipLimit]
	}

	return Snapshot{
		EffectiveVertexCount:     vertexCount,
		TotalRelationships:       total,
		AverageStrength:          avg,
		Density:                  density,
		RelationshipDistribution: relDist,
		AssetClassDistribution:   classDist,
		TopRelationships:         top,
		RegulatoryEventCount:     len(e.events),
	}
}
