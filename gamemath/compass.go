package gamemath

import "math"

// Compass is one of the eight blend-tree directions.
type Compass int

const (
	East Compass = iota
	NorthEast
	North
	NorthWest
	West
	SouthWest
	South
	SouthEast
)

var compassVectors = [8]Vec2{
	East:      {X: 1, Y: 0},
	NorthEast: {X: math.Sqrt2 / 2, Y: math.Sqrt2 / 2},
	North:     {X: 0, Y: 1},
	NorthWest: {X: -math.Sqrt2 / 2, Y: math.Sqrt2 / 2},
	West:      {X: -1, Y: 0},
	SouthWest: {X: -math.Sqrt2 / 2, Y: -math.Sqrt2 / 2},
	South:     {X: 0, Y: -1},
	SouthEast: {X: math.Sqrt2 / 2, Y: -math.Sqrt2 / 2},
}

// Death pose indices expected by the death blend tree.
var deathIndices = [8]int{
	East:      4,
	NorthEast: 6,
	North:     7,
	NorthWest: 3,
	West:      1,
	SouthWest: 2,
	South:     0,
	SouthEast: 5,
}

var compassNames = [8]string{"E", "NE", "N", "NW", "W", "SW", "S", "SE"}

func (c Compass) String() string {
	if c < East || c > SouthEast {
		return "?"
	}
	return compassNames[c]
}

// Vector returns the unit vector of the direction.
func (c Compass) Vector() Vec2 {
	return compassVectors[c]
}

// DeathIndex returns the 0-7 death pose index for the direction.
func (c Compass) DeathIndex() int {
	return deathIndices[c]
}

// CompassOfDeathIndex is the inverse of DeathIndex.
func CompassOfDeathIndex(i int) (Compass, bool) {
	for c, idx := range deathIndices {
		if idx == i {
			return Compass(c), true
		}
	}
	return South, false
}

// CompassOf returns the sector containing v. Sectors are 45° wide and
// centred on the compass directions; an angle exactly on a sector edge
// belongs to the lower-angle sector. Zero vectors map to South.
func CompassOf(v Vec2) Compass {
	if v.IsZero() {
		return South
	}
	return CompassOfHeading(Heading(v))
}

// CompassOfHeading returns the sector for a heading in degrees measured
// counter-clockwise from +X.
func CompassOfHeading(deg float64) Compass {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	// Edge at 22.5 + 45k goes to sector k, so the lower bound is exclusive.
	sector := int(math.Ceil((deg-22.5)/45)) % 8
	if sector < 0 {
		sector += 8
	}
	return Compass(sector)
}

// SnapToCompass rounds v to the nearest of the eight compass unit vectors.
func SnapToCompass(v Vec2) (Vec2, Compass) {
	c := CompassOf(v)
	return c.Vector(), c
}
