// SPDX-License-Identifier: MIT

package cluster

// Color is an opaque color handle; the default palette uses CSS hex strings.
type Color string

// OverflowPolicy decides what clusters beyond the palette size receive.
type OverflowPolicy int

const (
	// OverflowFallback gives every extra cluster the palette's fallback color.
	OverflowFallback OverflowPolicy = iota
	// OverflowWrap reuses palette colors from the start.
	OverflowWrap
)

const (
	// UnclusteredColor is the color of cluster 0.
	UnclusteredColor Color = "#222"
	// FallbackColor marks clusters past the palette capacity.
	FallbackColor Color = "#777777"
)

// categoryColors is the 19-color category scale the layout shipped with.
var categoryColors = []Color{
	"#aec7e8", "#ff7f0e", "#ffbb78", "#2ca02c", "#98df8a", "#d62728", "#ff9896",
	"#9467bd", "#c5b0d5", "#8c564b", "#c49c94", "#e377c2", "#f7b6d2", "#7f7f7f",
	"#c7c7c7", "#bcbd22", "#dbdb8d", "#17becf", "#9edae5",
}

// Palette is an ordered set of colors plus the reserved handles.
type Palette struct {
	Colors      []Color
	Fallback    Color
	Unclustered Color
	Overflow    OverflowPolicy
}

// DefaultPalette returns the category palette with fallback overflow.
func DefaultPalette() Palette {
	colors := make([]Color, len(categoryColors))
	copy(colors, categoryColors)
	return Palette{
		Colors:      colors,
		Fallback:    FallbackColor,
		Unclustered: UnclusteredColor,
		Overflow:    OverflowFallback,
	}
}

// Size returns the number of assignable colors.
func (p Palette) Size() int {
	return len(p.Colors)
}
