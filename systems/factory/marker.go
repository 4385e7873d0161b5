package factory

import (
	"github.com/lofi/sisyphus-simulator/archetypes"
	"github.com/lofi/sisyphus-simulator/components"
	cfg "github.com/lofi/sisyphus-simulator/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateFatigueMarker(ecs *ecs.ECS) *donburi.Entry {
	marker := archetypes.Marker.Spawn(ecs)
	components.Marker.SetValue(marker, components.MarkerData{
		OffsetX: cfg.Marker.OffsetX,
		OffsetY: cfg.Marker.OffsetY,
		BobUp:   true,
	})
	return marker
}
