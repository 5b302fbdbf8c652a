package catch

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/critter-catcher/internal/core"
)

// Actor is one moving animal on the field.
type Actor struct {
	Pos         core.Vec
	BaseY       float64 // Resting line for wobble and hop
	Dir         float64 // +1 moving right, -1 moving left
	Speed       float64 // Pixels per tick before scaling
	Category    int     // Index into the session catalog
	WobblePhase float64
	HopPhase    float64
	size        float64
	behavior    Behavior
}

// Size returns the actor's diameter in pixels.
func (a Actor) Size() float64 { return a.size }

// Airborne reports whether a hopping actor is currently above its base line.
func (a Actor) Airborne() bool {
	return a.behavior.Hops() && math.Sin(a.HopPhase) > 0
}

// spawnActor places a new actor just outside a random horizontal edge,
// moving inward.
func spawnActor(rng *rand.Rand, cat Category, idx int, w, h, jitter float64) Actor {
	left := rng.Float64() > 0.5
	a := Actor{
		Category:    idx,
		size:        cat.Size,
		behavior:    cat.Behavior,
		Speed:       cat.Speed + (rng.Float64()-0.5)*jitter,
		WobblePhase: rng.Float64() * 2 * math.Pi,
		HopPhase:    rng.Float64() * 2 * math.Pi,
	}
	if left {
		a.Pos.X = -cat.Size
		a.Dir = 1
	} else {
		a.Pos.X = w + cat.Size
		a.Dir = -1
	}

	span := h - cat.Size*2
	if span < 0 {
		span = 0
	}
	a.Pos.Y = rng.Float64()*span + math.Min(cat.Size, h/2)
	a.BaseY = a.Pos.Y
	return a
}

// advance moves the actor one tick. scale is BaseSpeed * speed factor.
func (a *Actor) advance(scale float64, m Motion) {
	a.Pos.X += a.Speed * a.Dir * scale

	a.WobblePhase += m.WobbleRate * scale
	if a.behavior.Wobbles() {
		a.Pos.Y = a.BaseY + math.Sin(a.WobblePhase)*a.behavior.Wobble
	}

	a.HopPhase += m.HopRate * scale
	if a.behavior.Hops() {
		if math.Sin(a.HopPhase) > 0 {
			lift := math.Sin(math.Mod(a.HopPhase, math.Pi))
			a.Pos.Y = a.BaseY - a.behavior.Hop*a.size*lift
			a.Pos.X += a.behavior.HopStride * a.Dir * scale * lift
		} else {
			a.Pos.Y = a.BaseY
		}
	}
}

// wrap moves an actor that left the field to the opposite edge.
// Afterwards -size <= X <= w+size.
func (a *Actor) wrap(w float64) {
	if a.Pos.X > w+a.size {
		a.Pos.X = -a.size
	} else if a.Pos.X < -a.size {
		a.Pos.X = w + a.size
	}
}

// caughtBy reports whether the actor overlaps a net of the given diameter.
func (a Actor) caughtBy(net core.Vec, netSize float64) bool {
	return core.Dist(a.Pos, net) < netSize/2+a.size/2
}
