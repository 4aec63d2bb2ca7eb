package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGroupAddIsIdempotent(t *testing.T) {
	g := &Group{}
	e := &fakeEntity{}

	g.Add(e)
	g.Add(e)

	assert.Equal(t, 1, g.Len())
}

func TestGroupRemoveCompactsImmediately(t *testing.T) {
	g := &Group{}
	a := &fakeEntity{}
	b := &fakeEntity{}
	g.Add(a)
	g.Add(b)

	g.Remove(a)

	assert.False(t, g.Contains(a))
	assert.True(t, g.Contains(b))
	assert.Equal(t, 1, g.Len())
}

func TestGroupEntityRemovedMidFrameIsNotUpdated(t *testing.T) {
	g := &Group{}
	victim := &fakeEntity{}
	remover := &fakeEntity{}
	remover.onUpdate = func() { g.Remove(victim) }
	g.Add(remover)
	g.Add(victim)

	g.Update(0.016)

	assert.Equal(t, 1, remover.updates)
	assert.Equal(t, 0, victim.updates, "an entity removed mid-frame must not be advanced that frame")
}

func TestGroupEntityAddedMidFrameIsNotLost(t *testing.T) {
	g := &Group{}
	late := &fakeEntity{}
	adder := &fakeEntity{}
	adder.onUpdate = func() { g.Add(late) }
	g.Add(adder)

	g.Update(0.016)

	assert.True(t, g.Contains(late))
}

func TestGroupDrawOrderSortsByRectBottom(t *testing.T) {
	g := &Group{}
	far := &fakeEntity{rect: NewRect(0, 0, 10, 10)}    // bottom 10
	near := &fakeEntity{rect: NewRect(0, 50, 10, 10)}  // bottom 60
	mid := &fakeEntity{rect: NewRect(0, 20, 10, 10)}   // bottom 30
	g.Add(near)
	g.Add(far)
	g.Add(mid)

	order := g.drawOrder()

	assert.Equal(t, []Entity{far, mid, near}, order)
}

func TestGroupDrawOrderIsStableForTies(t *testing.T) {
	g := &Group{}
	first := &fakeEntity{rect: NewRect(0, 0, 10, 10)}
	second := &fakeEntity{rect: NewRect(5, 0, 10, 10)}
	g.Add(first)
	g.Add(second)

	order := g.drawOrder()

	assert.Equal(t, []Entity{first, second}, order)
}

func TestGroupClear(t *testing.T) {
	g := &Group{}
	g.Add(&fakeEntity{})
	g.Add(&fakeEntity{})

	g.Clear()

	assert.Equal(t, 0, g.Len())
}
