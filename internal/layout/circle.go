package layout

import (
	"math"
	"sort"
)

// DefaultColor is applied to every vertex. It matches the first entry of the
// palette used by the downstream renderer.
const DefaultColor = "#1f77b4"

const placeholderID = "A"

// Data holds parallel position, id, color and label arrays for a renderer.
// Index k of every slice describes the same vertex.
type Data struct {
	Positions [][3]float64 `json:"positions"`
	IDs       []string     `json:"ids"`
	Colors    []string     `json:"colors"`
	Labels    []string     `json:"labels"`
}

// Circle places the given vertex ids evenly on the unit circle in the plane
// z = 0. Ids are sorted lexicographically first, so two calls with the same
// set produce identical output. An empty input yields a single placeholder
// vertex at the origin.
func Circle(ids []string) Data {
	if len(ids) == 0 {
		return Data{
			Positions: [][3]float64{{0, 0, 0}},
			IDs:       []string{placeholderID},
			Colors:    []string{DefaultColor},
			Labels:    []string{label(placeholderID)},
		}
	}

	sorted := make([]string, len(ids))
	copy(sorted, ids)
	sort.Strings(sorted)

	n := len(sorted)
	data := Data{
		Positions: make([][3]float64, n),
		IDs:       sorted,
		Colors:    make([]string, n),
		Labels:    make([]string, n),
	}
	for k, id := range sorted {
		theta := 2 * math.Pi * float64(k) / float64(n)
		data.Positions[k] = [3]float64{math.Cos(theta), math.Sin(theta), 0}
		data.Colors[k] = DefaultColor
		data.Labels[k] = label(id)
	}
	return data
}

func label(id string) string {
	return "Asset: " + id
}
