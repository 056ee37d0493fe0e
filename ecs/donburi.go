package ecs

import (
	"github.com/phanxgames/tmj"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// ObjectData is the component stored on entities spawned from map objects.
type ObjectData struct {
	Layer  string
	Object tmj.MapObject
}

// Object is the Donburi component type for spawned map objects.
var Object = donburi.NewComponentType[ObjectData]()

// ObjectSpawned is published once per spawned entity.
type ObjectSpawned struct {
	Entity donburi.Entity
	Layer  string
	Object tmj.MapObject
}

// ObjectSpawnedEvent is the Donburi event type for ObjectSpawned.
var ObjectSpawnedEvent = events.NewEventType[ObjectSpawned]()

// SpawnObjects creates one entity per visible object and returns the
// entities in object order. Hidden objects are skipped.
func SpawnObjects(world donburi.World, layer string, objects []tmj.MapObject) []donburi.Entity {
	entities := make([]donburi.Entity, 0, len(objects))
	for _, o := range objects {
		if !o.Visible {
			continue
		}
		e := world.Create(Object)
		Object.SetValue(world.Entry(e), ObjectData{Layer: layer, Object: o})
		ObjectSpawnedEvent.Publish(world, ObjectSpawned{Entity: e, Layer: layer, Object: o})
		entities = append(entities, e)
	}
	return entities
}

// SpawnLayer spawns the objects of the named object layer. A map without
// that layer spawns nothing.
func SpawnLayer(world donburi.World, m *tmj.TileMap, layer string) []donburi.Entity {
	return SpawnObjects(world, layer, m.GetObjectLayer(layer))
}
