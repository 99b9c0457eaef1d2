// Package level parses TMX arenas into obstacle rectangles, spawn points and
// teleport pads. It has no dependencies on ebitengine or resolv. Coordinates are
// converted from Tiled's top-left origin to world space, where Y grows
// upward from the bottom-left corner.
package level

import "github.com/automoto/shieldbearer/gamemath"

// Object groups and layers read from the TMX file.
const (
	WallLayer     = "walls"
	ObstacleGroup = "obstacles"
	SpawnGroup    = "spawns"
	SpawnPlayer   = "player"
	SpawnEnemy    = "enemy"
	EnemyTypeProp = "enemyType"
	TeleportGroup = "teleports"
	ExitProp      = "exit"
)

// Arena holds everything the game needs from a level file.
type Arena struct {
	Name         string
	Width        int
	Height       int
	Obstacles    []Rect
	PlayerSpawns []gamemath.Vec2
	EnemySpawns  []EnemySpawn
	Teleports    []Teleport
}

// Rect is an axis-aligned solid with its bottom-left corner at X, Y.
type Rect struct {
	X, Y, W, H float64
}

// EnemySpawn places one enemy. Type is empty when the map does not name
// one, in which case the configured default type is used.
type EnemySpawn struct {
	Position gamemath.Vec2
	Type     string
}

// Teleport is a pad that sends an actor standing on it to the pad named
// Exit. A pad with no Exit only receives.
type Teleport struct {
	Name string
	Area Rect
	Exit string
}

// Contains reports whether p lies inside the rectangle.
func (r Rect) Contains(p gamemath.Vec2) bool {
	return p.X >= r.X && p.X <= r.X+r.W && p.Y >= r.Y && p.Y <= r.Y+r.H
}

// Center returns the middle of the rectangle.
func (r Rect) Center() gamemath.Vec2 {
	return gamemath.V(r.X+r.W/2, r.Y+r.H/2)
}

// Teleport returns the pad with the given name.
func (a *Arena) Teleport(name string) (Teleport, bool) {
	for _, t := range a.Teleports {
		if t.Name == name {
			return t, true
		}
	}
	return Teleport{}, false
}

// PlayerSpawn returns the first player spawn.
func (a *Arena) PlayerSpawn() gamemath.Vec2 {
	if len(a.PlayerSpawns) == 0 {
		return gamemath.V(float64(a.Width)/2, float64(a.Height)/2)
	}
	return a.PlayerSpawns[0]
}
