package schema

// Registry stores asset records keyed by id in a compact form. Iteration
// order is insertion order; overwriting an id keeps its original slot.
type Registry struct {
	ids  []string
	byID map[string]Asset
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{byID: make(map[string]Asset)}
}

// AddAsset inserts or overwrites the entry keyed by asset.ID. It performs no
// validation and never touches edges.
func (r *Registry) AddAsset(asset Asset) {
	if _, ok := r.byID[asset.ID]; !ok {
		r.ids = append(r.ids, asset.ID)
	}
	r.byID[asset.ID] = asset
}

// Get returns the asset by id.
func (r *Registry) Get(id string) (Asset, bool) {
	asset, ok := r.byID[id]
	return asset, ok
}

// Has reports whether an id is registered.
func (r *Registry) Has(id string) bool {
	_, ok := r.byID[id]
	return ok
}

// List returns all assets in insertion order.
func (r *Registry) List() []Asset {
	assets := make([]Asset, 0, len(r.ids))
	for _, id := range r.ids {
		assets = append(assets, r.byID[id])
	}
	return assets
}

// IDs returns all registered ids in insertion order.
func (r *Registry) IDs() []string {
	ids := make([]string, len(r.ids))
	copy(ids, r.ids)
	return ids
}

// Count returns the number of registered assets.
func (r *Registry) Count() int {
	return len(r.ids)
}
