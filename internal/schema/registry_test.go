package schema

import "testing"

func TestRegistryOverwriteKeepsSlot(t *testing.T) {
	reg := NewRegistry()
	reg.AddAsset(Asset{ID: "A", Price: 1})
	reg.AddAsset(Asset{ID: "B", Price: 2})
	reg.AddAsset(Asset{ID: "A", Price: 9, Sector: "Energy"})

	if reg.Count() != 2 {
		t.Fatalf("want 2 assets, got %d", reg.Count())
	}
	ids := reg.IDs()
	if ids[0] != "A" || ids[1] != "B" {
		t.Fatalf("insertion order lost: %v", ids)
	}
	got, ok := reg.Get("A")
	if !ok || got.Price != 9 || got.Sector != "Energy" {
		t.Fatalf("overwrite not applied: %+v", got)
	}
}

func TestRegistryGetMissing(t *testing.T) {
	reg := NewRegistry()
	if _, ok := reg.Get("nope"); ok {
		t.Fatal("missing id reported as found")
	}
	if reg.Has("nope") {
		t.Fatal("missing id reported as present")
	}
	if len(reg.List()) != 0 {
		t.Fatal("empty registry should list nothing")
	}
}

func TestRegistryListOrder(t *testing.T) {
	reg := NewRegistry()
	for _, id := range []string{"Z", "M", "A"} {
		reg.AddAsset(Asset{ID: id})
	}
	list := reg.List()
	if list[0].ID != "Z" || list[1].ID != "M" || list[2].ID != "A" {
		t.Fatalf("list not in insertion order: %+v", list)
	}
}
