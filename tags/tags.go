package tags

import "github.com/yohamta/donburi"

var (
	Player      = donburi.NewTag().SetName("Player")
	Wall        = donburi.NewTag().SetName("Wall")
	PendingWall = donburi.NewTag().SetName("PendingWall")
)
