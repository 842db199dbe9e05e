package measurement

import (
	"github.com/philipparndt/godim/internal/config"
	"github.com/philipparndt/godim/pkg/scene"
)

// materials are shared by every drawable the interactor creates and are
// released once when the interactor is disposed
type materials struct {
	line    *scene.Material
	preview *scene.Material
	arrow   *scene.Material
}

func newMaterials(style config.Style) *materials {
	return &materials{
		line: &scene.Material{
			Name:   "dimension-line",
			Color:  style.LineColor.ToRGBA(),
			Shared: true,
		},
		preview: &scene.Material{
			Name:     "dimension-preview",
			Color:    style.PreviewColor.ToRGBA(),
			Dashed:   true,
			DashSize: style.DashSize,
			GapSize:  style.DashGap,
			Shared:   true,
		},
		arrow: &scene.Material{
			Name:   "dimension-arrow",
			Color:  style.LineColor.ToRGBA(),
			Shared: true,
		},
	}
}

func (m *materials) dispose() {
	m.line.Dispose()
	m.preview.Dispose()
	m.arrow.Dispose()
}
