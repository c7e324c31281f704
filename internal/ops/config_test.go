package ops

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"main/internal/schema"
)

const sampleDataset = `{
  "assets": [
    {"id": "AAPL", "symbol": "AAPL", "name": "Apple Inc.", "asset_class": "equity", "sector": "Technology", "price": 227.3, "pe_ratio": 34.6},
    {"id": "MSFT", "symbol": "MSFT", "name": "Microsoft Corp.", "asset_class": "equity", "sector": "Technology", "price": 415.1},
    {"id": "AAPL-27", "symbol": "AAPL27", "name": "Apple 2027 Note", "asset_class": "fixed_income", "price": 98.4, "issuer_id": "AAPL", "coupon_rate": 3.25}
  ],
  "events": [
    {"id": "EV-1", "asset_id": "AAPL", "event_type": "investigation", "date": "2026-03-12T00:00:00Z", "impact_score": -0.6, "related_assets": ["MSFT"]}
  ],
  "relationships": [
    {"source_id": "AAPL", "target_id": "AAPL-27", "relationship_type": "hedges", "strength": 0.4, "bidirectional": true}
  ]
}`

func writeDataset(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dataset.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadDataset(t *testing.T) {
	loaded, err := Load(writeDataset(t, sampleDataset), nil)
	require.NoError(t, err)

	engine := loaded.Engine
	require.Len(t, engine.Assets(), 3)

	note, ok := engine.Asset("AAPL-27")
	require.True(t, ok)
	assert.Equal(t, schema.AssetClassFixedIncome, note.Class)
	assert.Equal(t, "AAPL", note.IssuerID)
	assert.Equal(t, schema.SectorUnknown, note.Sector, "missing sector defaults to the sentinel")

	engine.BuildRelationships()
	loaded.ApplyRelationships()

	// Derived: AAPL<->MSFT same_sector, AAPL-27->AAPL corporate_link,
	// AAPL->MSFT event_impact. Manual: AAPL<->AAPL-27 hedges.
	snapshot := engine.CalculateMetrics()
	assert.Equal(t, 6, snapshot.TotalRelationships)
	assert.Equal(t, 1, snapshot.RegulatoryEventCount)
	assert.Equal(t, map[string]int{"same_sector": 2, "corporate_link": 1, "event_impact": 1, "hedges": 2}, snapshot.RelationshipDistribution)
}

func TestLoadRejectsInvalidAsset(t *testing.T) {
	body := `{"assets": [{"id": "BAD", "asset_class": "equity", "price": -5}]}`
	_, err := Load(writeDataset(t, body), nil)
	require.ErrorIs(t, err, schema.ErrNegativePrice)
}

func TestLoadRejectsInvalidEvent(t *testing.T) {
	body := `{"assets": [], "events": [{"id": "EV-1", "asset_id": "X", "impact_score": 2}]}`
	_, err := Load(writeDataset(t, body), nil)
	require.ErrorIs(t, err, schema.ErrImpactOutOfRange)
}

func TestLoadRejectsBrokenRelationship(t *testing.T) {
	body := `{"relationships": [{"source_id": "", "target_id": "B", "relationship_type": "x", "strength": 1}]}`
	_, err := Load(writeDataset(t, body), nil)
	require.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.json"), nil)
	require.Error(t, err)
}
