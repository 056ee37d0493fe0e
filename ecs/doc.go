// Package ecs spawns tmj map objects into a [Donburi] world.
//
// Each visible object of an object layer becomes an entity carrying an
// [Object] component. An [ObjectSpawned] event is published per entity so
// systems can attach game-specific components by object type:
//
//	ecs.ObjectSpawnedEvent.Subscribe(world, func(w donburi.World, e ecs.ObjectSpawned) {
//		if e.Object.Type == "enemy" {
//			// ...
//		}
//	})
//	ecs.SpawnLayer(world, m, "spawns")
//	ecs.ObjectSpawnedEvent.ProcessEvents(world)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
