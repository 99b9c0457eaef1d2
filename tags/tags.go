package tags

import "github.com/yohamta/donburi"

var (
	Player    = donburi.NewTag().SetName("Player")
	Enemy     = donburi.NewTag().SetName("Enemy")
	Obstacle  = donburi.NewTag().SetName("Obstacle")
	Telegraph = donburi.NewTag().SetName("Telegraph")
	Popup     = donburi.NewTag().SetName("Popup")
	Teleport  = donburi.NewTag().SetName("Teleport")
)
