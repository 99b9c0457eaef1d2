// Package assets embeds the arena maps, sound effects and shaders.
package assets

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/lafriks/go-tiled"
	"github.com/lafriks/go-tiled/render"

	"github.com/automoto/shieldbearer/level"
)

var (
	//go:embed all:levels
	assetFS embed.FS

	//go:embed all:audio
	audioFS embed.FS
)

// Levels returns the embedded level tree. Paths start with "levels/".
func Levels() fs.FS {
	return assetFS
}

// LoadArena parses an arena from the embedded levels, or from fsys when it
// is not nil.
func LoadArena(fsys fs.FS, path string) (*level.Arena, error) {
	if fsys == nil {
		fsys = assetFS
	}
	return level.Load(fsys, path)
}

// RenderBackground draws every tile layer carrying a true "render"
// property into a single image. Tiled's Y axis points down, which matches
// the screen, so no flip is needed here.
func RenderBackground(fsys fs.FS, path string) (*ebiten.Image, error) {
	if fsys == nil {
		fsys = assetFS
	}
	m, err := tiled.LoadFile(path, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", path, err)
	}

	bg := ebiten.NewImage(m.Width*m.TileWidth, m.Height*m.TileHeight)

	renderer, err := render.NewRendererWithFileSystem(m, fsys)
	if err != nil {
		return nil, fmt.Errorf("create renderer for %s: %w", path, err)
	}

	for i, layer := range m.Layers {
		if !layer.Properties.GetBool("render") || layer.Opacity <= 0 {
			continue
		}
		if err := renderer.RenderLayer(i); err != nil {
			return nil, fmt.Errorf("render layer %s: %w", layer.Name, err)
		}
		img := ebiten.NewImageFromImage(renderer.Result)
		op := &ebiten.DrawImageOptions{}
		op.ColorScale.ScaleAlpha(float32(layer.Opacity))
		bg.DrawImage(img, op)
		img.Deallocate()
		renderer.Clear()
	}

	return bg, nil
}
