/*
Graph implements the in-memory asset relationship engine.

# Module
  - registry: insertion-ordered keyed store of instrument records
  - discovery: fixed-priority pairwise rules (sector affinity, issuer linkage)
  - event processor: regulatory events into event_impact edges
  - metrics: read-only snapshot aggregation over the current edge map
  - layout: deterministic unit-circle embedding for renderers

# Source
 1. assets and events pushed by the caller
 2. datasets loaded through the ops package

# Produce
  - metrics snapshots and layout data for API and visualization consumers
*/
package graph
