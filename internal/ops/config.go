package ops

import (
	"encoding/json"
	"os"

	"github.com/yanun0323/errors"

	"main/internal/graph"
	"main/internal/obs"
	"main/internal/schema"
)

// FileConfig mirrors the JSON dataset layout.
type FileConfig struct {
	Assets        []schema.Asset           `json:"assets"`
	Events        []schema.RegulatoryEvent `json:"events"`
	Relationships []RelationshipConfig     `json:"relationships"`
}

// RelationshipConfig describes a manual edge entry. Manual edges are applied
// after a rebuild because rebuilding discards them.
type RelationshipConfig struct {
	SourceID      string                  `json:"source_id"`
	TargetID      string                  `json:"target_id"`
	Type          schema.RelationshipType `json:"relationship_type"`
	Strength      float64                 `json:"strength"`
	Bidirectional bool                    `json:"bidirectional,omitempty"`
}

// Loaded is the resolved dataset ready for use.
type Loaded struct {
	Engine        *graph.Engine
	Relationships []RelationshipConfig
}

// Load reads a JSON dataset file and builds a populated engine. Assets and
// events are validated before admission; the first invalid record fails the
// whole load. metrics may be nil.
func Load(path string, metrics *obs.Metrics) (Loaded, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Loaded{}, errors.Wrap(err, "read dataset")
	}
	var cfg FileConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Loaded{}, errors.Wrap(err, "decode dataset")
	}
	return Build(cfg, metrics)
}

// Build resolves a decoded dataset into a populated engine.
func Build(cfg FileConfig, metrics *obs.Metrics) (Loaded, error) {
	engine := graph.NewEngine(metrics)

	for _, asset := range cfg.Assets {
		if asset.Sector == "" {
			asset.Sector = schema.SectorUnknown
		}
		if err := asset.Validate(); err != nil {
			return Loaded{}, errors.Wrap(err, "invalid asset")
		}
		engine.AddAsset(asset)
	}

	for _, event := range cfg.Events {
		if err := event.Validate(); err != nil {
			return Loaded{}, errors.Wrap(err, "invalid event")
		}
		engine.AddRegulatoryEvent(event)
	}

	for _, rel := range cfg.Relationships {
		if err := validateRelationship(rel); err != nil {
			return Loaded{}, err
		}
	}

	return Loaded{
		Engine:        engine,
		Relationships: cfg.Relationships,
	}, nil
}

// ApplyRelationships inserts the manual edges from the dataset. Call it
// after BuildRelationships, which would otherwise discard them.
func (l Loaded) ApplyRelationships() {
	for _, rel := range l.Relationships {
		l.Engine.AddRelationship(rel.SourceID, rel.TargetID, rel.Type, rel.Strength, rel.Bidirectional)
	}
}

func validateRelationship(rel RelationshipConfig) error {
	if rel.SourceID == "" || rel.TargetID == "" {
		return errors.Errorf("relationship endpoints must be set, source: %q, target: %q", rel.SourceID, rel.TargetID)
	}
	if rel.Type == "" {
		return errors.Errorf("relationship type is empty, source: %q, target: %q", rel.SourceID, rel.TargetID)
	}
	return nil
}
