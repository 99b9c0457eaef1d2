package components

import (
	"github.com/yohamta/donburi"

	"github.com/automoto/shieldbearer/spatial"
)

type SpaceData struct {
	*spatial.Space
}

var Space = donburi.NewComponentType[SpaceData]()
