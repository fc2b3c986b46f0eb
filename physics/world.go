// Package physics owns the Chipmunk space for one level: static colliders
// built from the collision grid, the bodies of gameplay entities, and the
// raw contact signals the gameplay core consumes each tick.
package physics

import (
	"math"

	"github.com/automoto/ferrisdive/shared/gameplay"
	"github.com/automoto/ferrisdive/shared/leveldata"
	"github.com/jakecoffman/cp"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

const (
	collisionTypeTile cp.CollisionType = iota + 1
	collisionTypePlayer
	collisionTypeEnemy
	collisionTypePickup
	collisionTypeGoal
)

// Config sizes the bodies created in a World.
type Config struct {
	Gravity          float64
	Iterations       uint
	PlayerWidth      float64
	PlayerHeight     float64
	PlayerElasticity float64
	PlayerFriction   float64
	EnemyWidth       float64
	EnemyHeight      float64
	PickupRadius     float64
}

// World wraps a cp.Space. Tile colliders belong to the level entity passed
// to NewWorld so contacts with level geometry still name an entity.
type World struct {
	space     *cp.Space
	cfg       Config
	shapes    map[*cp.Shape]donburi.Entity
	owned     map[donburi.Entity][]*cp.Shape
	bodies    map[donburi.Entity]*cp.Body
	contacts  []gameplay.Contact
	colliders int
}

func NewWorld(grid *leveldata.CollisionGrid, level donburi.Entity, cfg Config) *World {
	space := cp.NewSpace()
	space.Iterations = cfg.Iterations
	space.SetGravity(cp.Vector{X: 0, Y: cfg.Gravity})

	w := &World{
		space:  space,
		cfg:    cfg,
		shapes: make(map[*cp.Shape]donburi.Entity),
		owned:  make(map[donburi.Entity][]*cp.Shape),
		bodies: make(map[donburi.Entity]*cp.Body),
	}
	w.buildStaticShapes(grid, level)
	w.setupHandlers()
	return w
}

// buildStaticShapes merges each row's horizontal runs of full cells into a
// single box so bodies sliding along a floor don't catch on tile seams.
func (w *World) buildStaticShapes(grid *leveldata.CollisionGrid, level donburi.Entity) {
	const t = float64(leveldata.TileSize)
	for _, run := range grid.Runs() {
		bb := cp.BB{
			L: float64(run.StartCol) * t,
			R: float64(run.EndCol+1) * t,
			B: float64(grid.Height-run.Row-1) * t,
			T: float64(grid.Height-run.Row) * t,
		}
		shape := cp.NewBox2(w.space.StaticBody, bb, 0)
		shape.SetCollisionType(collisionTypeTile)
		shape.SetFriction(1)
		w.addShape(level, shape)
		w.colliders++
	}
}

func (w *World) setupHandlers() {
	handler := w.space.NewWildcardCollisionHandler(collisionTypePlayer)
	handler.UserData = w
	handler.BeginFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
		userData.(*World).record(arb, gameplay.Started)
		return true
	}
	handler.SeparateFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) {
		userData.(*World).record(arb, gameplay.Stopped)
	}
}

// record converts an arbiter into a Contact. cp reports the normal pointing
// from A to B; Contact wants it pointing into A.
func (w *World) record(arb *cp.Arbiter, phase gameplay.Phase) {
	shapeA, shapeB := arb.Shapes()
	a, okA := w.shapes[shapeA]
	b, okB := w.shapes[shapeB]
	if !okA || !okB {
		return
	}
	n := arb.Normal().Neg()
	w.contacts = append(w.contacts, gameplay.Contact{
		A:      a,
		B:      b,
		Phase:  phase,
		Normal: dmath.Vec2{X: n.X, Y: n.Y},
	})
}

func (w *World) addShape(e donburi.Entity, shape *cp.Shape) {
	w.space.AddShape(shape)
	w.shapes[shape] = e
	w.owned[e] = append(w.owned[e], shape)
}

// AddPlayer creates the player's dynamic body with rotation locked.
func (w *World) AddPlayer(e donburi.Entity, pos dmath.Vec2) *cp.Body {
	body := w.space.AddBody(cp.NewBody(1, math.Inf(1)))
	body.SetPosition(cp.Vector{X: pos.X, Y: pos.Y})
	body.UserData = e

	shape := cp.NewBox(body, w.cfg.PlayerWidth, w.cfg.PlayerHeight, 0)
	shape.SetCollisionType(collisionTypePlayer)
	shape.SetElasticity(w.cfg.PlayerElasticity)
	shape.SetFriction(w.cfg.PlayerFriction)
	w.addShape(e, shape)
	w.bodies[e] = body
	return body
}

// AddEnemy creates a kinematic sensor: it moves only by the velocity the
// patrol sets and never pushes the player.
func (w *World) AddEnemy(e donburi.Entity, pos dmath.Vec2) *cp.Body {
	body := w.space.AddBody(cp.NewKinematicBody())
	body.SetPosition(cp.Vector{X: pos.X, Y: pos.Y})
	body.UserData = e

	shape := cp.NewBox(body, w.cfg.EnemyWidth, w.cfg.EnemyHeight, 0)
	shape.SetCollisionType(collisionTypeEnemy)
	shape.SetSensor(true)
	w.addShape(e, shape)
	w.bodies[e] = body
	return body
}

func (w *World) AddPickup(e donburi.Entity, pos dmath.Vec2) {
	shape := cp.NewCircle(w.space.StaticBody, w.cfg.PickupRadius, cp.Vector{X: pos.X, Y: pos.Y})
	shape.SetCollisionType(collisionTypePickup)
	shape.SetSensor(true)
	w.addShape(e, shape)
}

// AddGoal creates a sensor box centered on pos.
func (w *World) AddGoal(e donburi.Entity, pos, size dmath.Vec2) {
	bb := cp.BB{
		L: pos.X - size.X/2,
		R: pos.X + size.X/2,
		B: pos.Y - size.Y/2,
		T: pos.Y + size.Y/2,
	}
	shape := cp.NewBox2(w.space.StaticBody, bb, 0)
	shape.SetCollisionType(collisionTypeGoal)
	shape.SetSensor(true)
	w.addShape(e, shape)
}

// Remove drops every shape and body owned by e. Must not be called while
// the space is stepping.
func (w *World) Remove(e donburi.Entity) {
	for _, shape := range w.owned[e] {
		w.space.RemoveShape(shape)
		delete(w.shapes, shape)
	}
	delete(w.owned, e)
	if body, ok := w.bodies[e]; ok {
		w.space.RemoveBody(body)
		delete(w.bodies, e)
	}
}

func (w *World) Step(dt float64) {
	w.space.Step(dt)
}

// DrainContacts returns the contacts recorded since the last drain, in the
// order cp reported them.
func (w *World) DrainContacts() []gameplay.Contact {
	out := w.contacts
	w.contacts = nil
	return out
}

// Position reports the center of e's body. Entities on the static body
// (pickups, goals) have no position here.
func (w *World) Position(e donburi.Entity) (dmath.Vec2, bool) {
	b, ok := w.bodies[e]
	if !ok {
		return dmath.Vec2{}, false
	}
	p := b.Position()
	return dmath.Vec2{X: p.X, Y: p.Y}, true
}

func (w *World) Velocity(e donburi.Entity) dmath.Vec2 {
	b, ok := w.bodies[e]
	if !ok {
		return dmath.Vec2{}
	}
	v := b.Velocity()
	return dmath.Vec2{X: v.X, Y: v.Y}
}

func (w *World) SetVelocity(e donburi.Entity, v dmath.Vec2) {
	if b, ok := w.bodies[e]; ok {
		b.SetVelocity(v.X, v.Y)
	}
}

// SetPosition teleports e. Used by the debug respawn.
func (w *World) SetPosition(e donburi.Entity, p dmath.Vec2) {
	if b, ok := w.bodies[e]; ok {
		b.SetPosition(cp.Vector{X: p.X, Y: p.Y})
	}
}

// Grounded reports whether e's body rests on a solid shape, judged by
// the same normal threshold the dispatcher uses to reset jumps.
func (w *World) Grounded(e donburi.Entity) bool {
	b, ok := w.bodies[e]
	if !ok {
		return false
	}
	grounded := false
	b.EachArbiter(func(arb *cp.Arbiter) {
		a, other := arb.Shapes()
		if a.Sensor() || other.Sensor() {
			return
		}
		if arb.Normal().Neg().Y >= gameplay.GroundNormalThreshold {
			grounded = true
		}
	})
	return grounded
}

// Colliders is the number of static boxes built from the grid.
func (w *World) Colliders() int { return w.colliders }

func (w *World) Space() *cp.Space { return w.space }
