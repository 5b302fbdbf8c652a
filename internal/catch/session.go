package catch

import (
	"math"
	"math/rand"

	"github.com/kamstrup/intmap"

	"github.com/vovakirdan/critter-catcher/internal/core"
)

// Policy decides what happens after the last category's level is done.
type Policy string

const (
	// PolicyRestart goes back to the first category and raises the speed factor.
	PolicyRestart Policy = "restart"
	// PolicyHold stays on the last category and only resets the counters.
	PolicyHold Policy = "hold"
)

// Motion holds the phase rates for wobble and hop, in radians per tick
// before speed scaling.
type Motion struct {
	WobbleRate float64
	HopRate    float64
}

// Settings are the tunables of a session.
type Settings struct {
	NetSize      float64 // Net diameter in pixels
	Quota        int     // Actors to spawn and catch per level
	SpawnBase    float64 // Spawn chance per tick on level 1
	SpawnStep    float64 // Extra spawn chance per level
	BaseSpeed    float64 // Constant multiplier applied to every motion
	SpeedInitial float64 // Speed factor after Reset
	SpeedMin     float64
	SpeedMax     float64
	SpeedStep    float64 // Speed factor gain when the catalog restarts
	Jitter       float64 // Spread of per-actor speed around the category speed
	Motion       Motion
	Exhaustion   Policy
	AllAnimals   bool // Pre-spawn one actor of every category instead of a quota of one
}

// DefaultSettings returns the Animal Catcher tuning.
func DefaultSettings() Settings {
	return Settings{
		NetSize:      80,
		Quota:        20,
		SpawnBase:    0.02,
		SpawnStep:    0.01,
		BaseSpeed:    2,
		SpeedInitial: 1,
		SpeedMin:     0.5,
		SpeedMax:     5,
		SpeedStep:    0.5,
		Jitter:       0.5,
		Motion: Motion{
			WobbleRate: 0.05,
			HopRate:    0.08,
		},
		Exhaustion: PolicyRestart,
	}
}

// Input is what the frontend reports for one tick.
type Input struct {
	Pointer    core.Vec // Net center request in pixels
	HasPointer bool     // Pointer is meaningful this tick
	Capture    bool     // Pointer button or capture key is held
}

// Stats are the read values a HUD renders after each tick.
type Stats struct {
	Level         int
	Score         int
	Caught        int
	Spawned       int
	Quota         int
	Live          int
	Speed         float64
	Category      Category
	Completed     Category // Category just finished; set while LevelComplete
	Next          Category // Category Continue moves to
	Running       bool
	Paused        bool
	LevelComplete bool
	AllAnimals    bool
	Ticks         int
}

// ActorDrawer receives every live actor once per Draw call.
type ActorDrawer interface {
	DrawActor(a Actor, cat Category)
}

// DrawFunc adapts a function to ActorDrawer.
type DrawFunc func(a Actor, cat Category)

// DrawActor calls f.
func (f DrawFunc) DrawActor(a Actor, cat Category) { f(a, cat) }

// Session owns all mutable state of one catcher game.
type Session struct {
	settings Settings
	catalog  *Catalog
	rng      *rand.Rand
	cue      func(core.Event)

	width, height float64
	net           core.Vec
	actors        []Actor

	level         int
	catIdx        int
	caught        int
	spawned       int
	score         int
	speed         float64
	running       bool
	paused        bool
	levelComplete bool
	completed     int
	ticks         int
	tally         *intmap.Map[int, int]
}

// NewSession creates a session on a width x height pixel field.
// The session starts in its reset state and does not run until Start.
func NewSession(settings Settings, catalog *Catalog, seed int64, width, height float64) *Session {
	if catalog == nil {
		catalog = DefaultCatalog()
	}
	s := &Session{
		settings: settings,
		catalog:  catalog,
		rng:      rand.New(rand.NewSource(seed)),
		width:    width,
		height:   height,
		actors:   make([]Actor, 0, settings.Quota),
		tally:    intmap.New[int, int](catalog.Len()),
	}
	s.Reset()
	return s
}

// SetCueSink registers the receiver of catch and level-complete cues.
// Cues are fire-and-forget: the sink must not block.
func (s *Session) SetCueSink(fn func(core.Event)) {
	s.cue = fn
}

func (s *Session) emit(e core.Event) {
	if s.cue != nil {
		s.cue(e)
	}
}

// Reset returns the session to its initial state: level 1, first category,
// zero score and counters, initial speed, not running, no actors.
func (s *Session) Reset() {
	s.level = 1
	s.catIdx = 0
	s.caught = 0
	s.spawned = 0
	s.score = 0
	s.speed = core.ClampF(s.settings.SpeedInitial, s.settings.SpeedMin, s.settings.SpeedMax)
	s.running = false
	s.paused = false
	s.levelComplete = false
	s.completed = 0
	s.ticks = 0
	s.actors = s.actors[:0]
	s.tally.Clear()
	s.net = core.Vec{X: s.width / 2, Y: s.height / 2}
}

// Start begins play. In all-animals mode one actor of every category is
// placed on the field.
func (s *Session) Start() {
	if s.running {
		return
	}
	s.running = true
	s.paused = false
	if s.settings.AllAnimals && s.spawned == 0 {
		s.populateAll()
	}
}

// TogglePause starts a fresh session, acknowledges a finished level, or
// flips the pause flag, whichever applies.
func (s *Session) TogglePause() {
	switch {
	case !s.running:
		s.Start()
	case s.levelComplete:
		s.Continue()
	default:
		s.paused = !s.paused
	}
}

// Continue acknowledges a level-complete banner, moves to the next category
// and resumes play. Returns false if no level was waiting for acknowledgement.
func (s *Session) Continue() bool {
	if !s.levelComplete {
		return false
	}
	s.advanceLevel()
	s.levelComplete = false
	s.paused = false
	return true
}

// SetSpeed sets the speed factor, clamped to the configured range.
func (s *Session) SetSpeed(v float64) {
	s.speed = core.ClampF(v, s.settings.SpeedMin, s.settings.SpeedMax)
}

// Resize updates the cached field bounds and keeps the net inside them.
func (s *Session) Resize(width, height float64) {
	s.width = width
	s.height = height
	s.MoveNet(s.net)
}

// MoveNet centers the net at p, clamped so the whole net stays on the field.
func (s *Session) MoveNet(p core.Vec) {
	r := s.settings.NetSize / 2
	s.net = core.Vec{
		X: core.ClampF(p.X, r, s.width-r),
		Y: core.ClampF(p.Y, r, s.height-r),
	}
}

// Step runs one frame: move the net, advance the field, then capture if
// requested. Returns the number of actors caught this frame.
func (s *Session) Step(in Input) int {
	if in.HasPointer {
		s.MoveNet(in.Pointer)
	}
	if !s.active() {
		return 0
	}
	s.Tick()
	if in.Capture {
		return s.Capture()
	}
	return 0
}

// Tick advances every actor, wraps them at the edges and maybe spawns one.
// It is a no-op unless the session is running and not paused.
func (s *Session) Tick() {
	if !s.active() {
		return
	}
	s.ticks++

	scale := s.settings.BaseSpeed * s.speed
	for i := range s.actors {
		s.actors[i].advance(scale, s.settings.Motion)
		s.actors[i].wrap(s.width)
	}

	if s.settings.AllAnimals || s.spawned >= s.Quota() {
		return
	}
	if s.rng.Float64() < s.spawnChance() {
		cat := s.catalog.At(s.catIdx)
		s.actors = append(s.actors, spawnActor(s.rng, cat, s.catIdx, s.width, s.height, s.settings.Jitter))
		s.spawned++
	}
}

// Capture removes every actor under the net, scores it and fires a catch
// cue per actor. Reaching the quota completes the level.
// Returns the number of actors caught. No-op unless running and not paused.
func (s *Session) Capture() int {
	if !s.active() {
		return 0
	}

	quota := s.Quota()
	n := 0
	// Reverse order keeps indices stable while removing.
	for i := len(s.actors) - 1; i >= 0; i-- {
		if s.caught >= quota {
			break
		}
		a := s.actors[i]
		if !a.caughtBy(s.net, s.settings.NetSize) {
			continue
		}
		s.score += s.catalog.At(a.Category).Points
		s.caught++
		count, _ := s.tally.Get(a.Category)
		s.tally.Put(a.Category, count+1)
		s.actors = append(s.actors[:i], s.actors[i+1:]...)
		n++
		s.emit(core.EventCatch)
	}

	if n > 0 && s.caught >= quota {
		s.completeLevel()
	}
	return n
}

// completeLevel pauses and signals once. The counters keep their final
// values until the level is acknowledged.
func (s *Session) completeLevel() {
	s.paused = true
	s.levelComplete = true
	s.completed = s.catIdx
	s.emit(core.EventLevelComplete)
}

// nextCategory returns the category index and level that follow the current
// one, and whether the catalog starts over.
func (s *Session) nextCategory() (idx, level int, restart bool) {
	if s.catIdx+1 < s.catalog.Len() {
		return s.catIdx + 1, s.level + 1, false
	}
	if s.settings.Exhaustion == PolicyHold {
		return s.catIdx, s.level, false
	}
	return 0, 1, true
}

// advanceLevel moves to the next category and clears the field.
func (s *Session) advanceLevel() {
	idx, level, restart := s.nextCategory()
	s.catIdx = idx
	s.level = level
	if restart {
		s.speed = math.Min(s.speed+s.settings.SpeedStep, s.settings.SpeedMax)
	}

	s.caught = 0
	s.spawned = 0
	s.actors = s.actors[:0]
	if s.settings.AllAnimals {
		s.populateAll()
	}
}

// populateAll places one actor of every category on the field.
func (s *Session) populateAll() {
	for i := 0; i < s.catalog.Len() && s.spawned < s.Quota(); i++ {
		s.actors = append(s.actors, spawnActor(s.rng, s.catalog.At(i), i, s.width, s.height, s.settings.Jitter))
		s.spawned++
	}
}

func (s *Session) active() bool {
	return s.running && !s.paused
}

func (s *Session) spawnChance() float64 {
	return math.Min(1, s.settings.SpawnBase+float64(s.level-1)*s.settings.SpawnStep)
}

// Quota returns the number of actors to catch this level. In all-animals
// mode it is the number of categories, capped by the configured quota.
func (s *Session) Quota() int {
	if s.settings.AllAnimals {
		return core.Min(s.settings.Quota, s.catalog.Len())
	}
	return s.settings.Quota
}

// Draw hands every live actor to d, oldest first.
func (s *Session) Draw(d ActorDrawer) {
	for _, a := range s.actors {
		d.DrawActor(a, s.catalog.At(a.Category))
	}
}

// Actors returns a copy of the live actors.
func (s *Session) Actors() []Actor {
	out := make([]Actor, len(s.actors))
	copy(out, s.actors)
	return out
}

// Net returns the net center.
func (s *Session) Net() core.Vec { return s.net }

// NetSize returns the net diameter.
func (s *Session) NetSize() float64 { return s.settings.NetSize }

// Bounds returns the field size in pixels.
func (s *Session) Bounds() (width, height float64) { return s.width, s.height }

// Catalog returns the category list the session cycles through.
func (s *Session) Catalog() *Catalog { return s.catalog }

// Settings returns the session tunables.
func (s *Session) Settings() Settings { return s.settings }

// Tally returns how many actors of category index i were caught since Reset.
func (s *Session) Tally(i int) int {
	n, _ := s.tally.Get(i)
	return n
}

// Stats returns the HUD values.
func (s *Session) Stats() Stats {
	next, _, _ := s.nextCategory()
	return Stats{
		Level:         s.level,
		Score:         s.score,
		Caught:        s.caught,
		Spawned:       s.spawned,
		Quota:         s.Quota(),
		Live:          len(s.actors),
		Speed:         s.speed,
		Category:      s.catalog.At(s.catIdx),
		Completed:     s.catalog.At(s.completed),
		Next:          s.catalog.At(next),
		Running:       s.running,
		Paused:        s.paused,
		LevelComplete: s.levelComplete,
		AllAnimals:    s.settings.AllAnimals,
		Ticks:         s.ticks,
	}
}
