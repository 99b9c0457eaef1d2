package level

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"

	"github.com/automoto/shieldbearer/gamemath"
)

var (
	ErrNoPlayerSpawn       = errors.New("no player spawn defined in map")
	ErrUnknownTeleportExit = errors.New("teleport exit names no pad")
)

// Load parses a TMX file from fsys. It takes an fs.FS so callers can pass
// the embedded assets or os.DirFS for maps on disk.
func Load(fsys fs.FS, tmxPath string) (*Arena, error) {
	m, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	a := &Arena{
		Name:   strings.TrimSuffix(path.Base(tmxPath), ".tmx"),
		Width:  m.Width * m.TileWidth,
		Height: m.Height * m.TileHeight,
	}
	h := float64(a.Height)

	// Solid tiles from the wall layer
	tileW := float64(m.TileWidth)
	tileH := float64(m.TileHeight)
	for _, layer := range m.Layers {
		if layer.Name != WallLayer {
			continue
		}
		for y := 0; y < m.Height; y++ {
			for x := 0; x < m.Width; x++ {
				tile := layer.Tiles[y*m.Width+x]
				if tile.IsNil() {
					continue
				}
				a.Obstacles = append(a.Obstacles, Rect{
					X: float64(x) * tileW,
					Y: h - float64(y+1)*tileH,
					W: tileW,
					H: tileH,
				})
			}
		}
		break
	}

	for _, og := range m.ObjectGroups {
		switch og.Name {
		case ObstacleGroup:
			for _, o := range og.Objects {
				if o.Width <= 0 || o.Height <= 0 {
					continue
				}
				a.Obstacles = append(a.Obstacles, Rect{
					X: o.X,
					Y: h - o.Y - o.Height,
					W: o.Width,
					H: o.Height,
				})
			}
		case SpawnGroup:
			for _, o := range og.Objects {
				pos := gamemath.V(o.X, h-o.Y)
				switch o.Name {
				case SpawnPlayer:
					a.PlayerSpawns = append(a.PlayerSpawns, pos)
				case SpawnEnemy:
					a.EnemySpawns = append(a.EnemySpawns, EnemySpawn{
						Position: pos,
						Type:     o.Properties.GetString(EnemyTypeProp),
					})
				}
			}
		case TeleportGroup:
			for _, o := range og.Objects {
				if o.Name == "" || o.Width <= 0 || o.Height <= 0 {
					continue
				}
				a.Teleports = append(a.Teleports, Teleport{
					Name: o.Name,
					Area: Rect{X: o.X, Y: h - o.Y - o.Height, W: o.Width, H: o.Height},
					Exit: o.Properties.GetString(ExitProp),
				})
			}
		}
	}

	if len(a.PlayerSpawns) == 0 {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, ErrNoPlayerSpawn)
	}
	for _, t := range a.Teleports {
		if _, ok := a.Teleport(t.Exit); t.Exit != "" && (!ok || t.Exit == t.Name) {
			return nil, fmt.Errorf("load TMX %s: pad %q exit %q: %w", tmxPath, t.Name, t.Exit, ErrUnknownTeleportExit)
		}
	}

	// Left-to-right so spawn order does not depend on editing history
	sort.SliceStable(a.EnemySpawns, func(i, j int) bool {
		return a.EnemySpawns[i].Position.X < a.EnemySpawns[j].Position.X
	})

	return a, nil
}

// LoadAll discovers every .tmx file in dir and returns the arenas keyed by
// stem name plus the sorted list of names.
func LoadAll(fsys fs.FS, dir string) (map[string]*Arena, []string, error) {
	pattern := dir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", dir)
	}

	arenas := make(map[string]*Arena, len(matches))
	names := make([]string, 0, len(matches))
	for _, p := range matches {
		a, err := Load(fsys, p)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", p, err)
		}
		arenas[a.Name] = a
		names = append(names, a.Name)
	}
	sort.Strings(names)
	return arenas, names, nil
}
