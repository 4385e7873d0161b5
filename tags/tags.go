package tags

import "github.com/yohamta/donburi"

var (
	Player  = donburi.NewTag().SetName("Player")
	Boulder = donburi.NewTag().SetName("Boulder")
	Marker  = donburi.NewTag().SetName("FatigueMarker")
	Ground  = donburi.NewTag().SetName("Ground")
	Wall    = donburi.NewTag().SetName("Wall")
)

// Resolv tags for physics collision
const (
	ResolvSolid   = "solid"
	ResolvRamp    = "ramp"
	ResolvPlayer  = "Player"
	ResolvBoulder = "Boulder"
)

// Chipmunk shape filter categories
const (
	CategoryTerrain uint = 1 << iota
	CategoryPlayer
	CategoryBoulder
)
