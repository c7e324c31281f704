package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"main/internal/schema"
)

func TestMetricsEmptyGraph(t *testing.T) {
	engine := NewEngine(nil)
	snapshot := engine.CalculateMetrics()

	assert.Equal(t, 0, snapshot.EffectiveVertexCount)
	assert.Equal(t, 0, snapshot.TotalRelationships)
	assert.Equal(t, 0.0, snapshot.AverageStrength)
	assert.Equal(t, 0.0, snapshot.Density)
	assert.Empty(t, snapshot.RelationshipDistribution)
	assert.Empty(t, snapshot.AssetClassDistribution)
	assert.Empty(t, snapshot.TopRelationships)
	assert.Equal(t, 0, snapshot.RegulatoryEventCount)
}

func TestMetricsSingleAsset(t *testing.T) {
	engine := NewEngine(nil)
	engine.AddAsset(equity("A", "Technology"))
	engine.BuildRelationships()
	snapshot := engine.CalculateMetrics()

	assert.Equal(t, 1, snapshot.EffectiveVertexCount)
	assert.Equal(t, 0, snapshot.TotalRelationships)
	assert.Equal(t, 0.0, snapshot.Density, "density for V <= 1 is exactly zero")
}

func TestMetricsDensityAndDistribution(t *testing.T) {
	engine := NewEngine(nil)
	engine.AddAsset(equity("A", "Technology"))
	engine.AddAsset(equity("B", "Technology"))
	engine.AddAsset(bond("BOND1", schema.SectorUnknown, "A"))
	engine.BuildRelationships()

	snapshot := engine.CalculateMetrics()

	// A<->B same_sector plus BOND1->A corporate_link over 3 vertices.
	assert.Equal(t, 3, snapshot.EffectiveVertexCount)
	assert.Equal(t, 3, snapshot.TotalRelationships)
	assert.InDelta(t, 3.0/6.0*100, snapshot.Density, 1e-9)
	assert.InDelta(t, (0.7+0.7+0.9)/3, snapshot.AverageStrength, 1e-9)
	assert.Equal(t, map[string]int{"same_sector": 2, "corporate_link": 1}, snapshot.RelationshipDistribution)
	assert.Equal(t, map[string]int{"equity": 2, "fixed_income": 1}, snapshot.AssetClassDistribution)
}

func TestMetricsCountsUnregisteredEndpoints(t *testing.T) {
	engine := NewEngine(nil)
	engine.AddAsset(equity("A", "Technology"))
	engine.AddRelationship("A", "PHANTOM", "custom", 0.5, false)

	snapshot := engine.CalculateMetrics()
	assert.Equal(t, 2, snapshot.EffectiveVertexCount, "edge endpoints join the effective set")
	assert.Equal(t, map[string]int{"equity": 1}, snapshot.AssetClassDistribution, "class distribution stays registry-only")
}

func TestTopRelationshipsRankingAndTieBreak(t *testing.T) {
	engine := NewEngine(nil)
	engine.AddAsset(equity("A", "Technology"))
	engine.AddAsset(equity("B", "Technology"))
	engine.AddAsset(bond("BOND1", schema.SectorUnknown, "A"))
	engine.BuildRelationships()

	top := engine.CalculateMetrics().TopRelationships
	require.Len(t, top, 3)
	assert.Equal(t, schema.RelationCorporateLink, top[0].Type)
	// Equal strengths keep production order: A->B was inserted before B->A.
	assert.Equal(t, "A", top[1].SourceID)
	assert.Equal(t, "B", top[2].SourceID)
}

func TestTopRelationshipsTruncatesToTen(t *testing.T) {
	engine := NewEngine(nil)
	for _, id := range []string{"A", "B", "C", "D"} {
		engine.AddAsset(equity(id, "Technology"))
	}
	engine.BuildRelationships()

	snapshot := engine.CalculateMetrics()
	assert.Equal(t, 12, snapshot.TotalRelationships, "4 assets in one sector give 12 directed edges")
	assert.Len(t, snapshot.TopRelationships, 10)
}
