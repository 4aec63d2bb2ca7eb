package game

import (
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
)

// Group owns an ordered set of live entities. Membership changes take effect
// immediately: an entity removed mid-frame is neither advanced nor drawn
// again that frame.
type Group struct {
	entities []Entity
}

// Add appends an entity. Adding the same entity twice is a no-op.
func (g *Group) Add(e Entity) {
	if g.Contains(e) {
		return
	}
	g.entities = append(g.entities, e)
}

// Remove deletes an entity, compacting the slice immediately so no dangling
// reference survives the call.
func (g *Group) Remove(e Entity) {
	for i, cur := range g.entities {
		if cur == e {
			g.entities = append(g.entities[:i], g.entities[i+1:]...)
			return
		}
	}
}

// Contains reports whether the entity is a member.
func (g *Group) Contains(e Entity) bool {
	for _, cur := range g.entities {
		if cur == e {
			return true
		}
	}
	return false
}

// Len returns the number of members.
func (g *Group) Len() int { return len(g.entities) }

// Entities returns a snapshot of the current membership. The caller may
// mutate the group while iterating the snapshot.
func (g *Group) Entities() []Entity {
	out := make([]Entity, len(g.entities))
	copy(out, g.entities)
	return out
}

// Clear removes every entity.
func (g *Group) Clear() {
	g.entities = g.entities[:0]
}

// Update advances all members. Iteration works on a snapshot and re-checks
// membership, so entities removed by earlier updates this frame are skipped.
func (g *Group) Update(dt float64) {
	for _, e := range g.Entities() {
		if !g.Contains(e) {
			continue
		}
		e.Update(dt)
	}
}

// Draw renders all members relative to the camera target. The camera offset
// is the target point minus half the viewport, recomputed every call with no
// smoothing. Entities draw in ascending order of their rect's bottom edge so
// visually closer objects end up on top.
func (g *Group) Draw(screen *ebiten.Image, target Vec2, viewW, viewH float64) {
	offsetX := target.X - viewW/2
	offsetY := target.Y - viewH/2

	for _, e := range g.drawOrder() {
		if !g.Contains(e) {
			continue
		}
		r := e.Rect()
		e.Frame().Draw(screen, r.X-offsetX, r.Y-offsetY)
	}
}

// drawOrder returns the members sorted ascending by the bottom edge of their
// bounding rect. The sort is stable so entities sharing a bottom edge keep
// insertion order.
func (g *Group) drawOrder() []Entity {
	order := g.Entities()
	sort.SliceStable(order, func(i, j int) bool {
		return order[i].Rect().Bottom() < order[j].Rect().Bottom()
	})
	return order
}
