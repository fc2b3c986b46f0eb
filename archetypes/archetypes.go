package archetypes

import (
	"github.com/automoto/ferrisdive/components"
	"github.com/automoto/ferrisdive/tags"
	"github.com/yohamta/donburi"
)

var (
	Level = newArchetype(
		tags.Level,
		components.Level,
	)
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Object,
		components.Physics,
		components.Animation,
		components.State,
		components.Flash,
	)
	Enemy = newArchetype(
		tags.Enemy,
		components.Enemy,
		components.Object,
		components.Physics,
		components.Animation,
		components.State,
	)
	Pickup = newArchetype(
		tags.Pickup,
		components.Object,
		components.Animation,
	)
	Goal = newArchetype(
		tags.Goal,
		components.Goal,
		components.Object,
	)
	BubbleGenerator = newArchetype(
		tags.BubbleGenerator,
		components.BubbleGenerator,
		components.Object,
	)
	Bubble = newArchetype(
		tags.Bubble,
		components.Bubble,
		components.Object,
		components.Sprite,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Session = newArchetype(
		components.Session,
		components.Input,
		components.HUD,
		components.Overlay,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

// Spawn creates an entity with the archetype's components plus cs.
// It takes the bare world so factories work without an ecs.ECS.
func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	return w.Entry(w.Create(append(a.components, cs...)...))
}
