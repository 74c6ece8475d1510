package homebound

import "github.com/vovakirdan/homebound/internal/core"

// Obstacle is a ground hazard the runner must jump over.
type Obstacle struct {
	X, Y float64 // Top-left corner
	W, H float64
}

// Rect returns the collision rectangle for this obstacle.
func (o Obstacle) Rect() core.RectF {
	return core.NewRectF(o.X, o.Y, o.W, o.H)
}

// ItemKind identifies a power-up.
type ItemKind int

const (
	ItemHeart ItemKind = iota // Restores one life
	ItemClock                 // Starts slow-mode
	itemKindCount
)

// String returns the name of the item kind.
func (k ItemKind) String() string {
	switch k {
	case ItemHeart:
		return "heart"
	case ItemClock:
		return "clock"
	default:
		return "unknown"
	}
}

// Item is a floating power-up.
type Item struct {
	Kind ItemKind
	X, Y float64
	Size float64
}

// Rect returns the pickup rectangle for this item.
func (it Item) Rect() core.RectF {
	return core.NewRectF(it.X, it.Y, it.Size, it.Size)
}

// updateObstacles moves obstacles, retires the ones that left the screen and
// spawns new ones.
func (s *Session) updateObstacles(speed float64) {
	// Move and retire in place, preserving spawn order
	kept := s.obstacles[:0]
	for _, o := range s.obstacles {
		o.X -= speed
		if o.X+o.W < 0 {
			s.retireObstacle()
			continue
		}
		kept = append(kept, o)
	}
	s.obstacles = kept

	if s.phase == PhaseRunning && s.belowTarget() {
		s.spawnObstacles()
	}
}

// retireObstacle scores a passed obstacle and checks the win condition.
func (s *Session) retireObstacle() {
	s.score += s.cfg.Gameplay.PointsPerObstacle
	s.emit(core.EventObstaclePassed, s.score)

	if s.phase == PhaseRunning && !s.belowTarget() {
		s.transition(PhaseCleared)
		s.emit(core.EventCleared, s.score)
	}
}

// spawnObstacles advances the spawn timer with its random timing modifier.
// One roll picks the modifier: a short interval (limited to
// MaxConsecutiveFast in a row), a long interval, or the base interval.
// The long branch resets the consecutive counter on the roll itself, even
// when nothing spawns this tick.
func (s *Session) spawnObstacles() {
	oc := s.cfg.Obstacles
	s.obstacleTimer++

	base := float64(s.params.SpawnInterval)
	interval := base
	fast := false

	r := s.rng.Float64()
	if s.consecutiveFast < oc.MaxConsecutiveFast && r < oc.FastChance {
		interval = base * oc.FastFactor
		fast = true
	} else if r < oc.SlowChance {
		interval = base * oc.SlowFactor
		s.consecutiveFast = 0
	}

	if float64(s.obstacleTimer) <= interval {
		return
	}

	s.obstacles = append(s.obstacles, s.newObstacle())
	s.obstacleTimer = 0
	if fast {
		s.consecutiveFast++
	} else {
		s.consecutiveFast = 0
	}
}

// newObstacle creates an obstacle at the right edge standing on the floor.
func (s *Session) newObstacle() Obstacle {
	oc := s.cfg.Obstacles
	height := oc.MinHeight + s.rng.Intn(oc.MaxHeight-oc.MinHeight+1)
	height = core.Clamp(height, oc.MinHeight, oc.MaxHeight)

	return Obstacle{
		X: s.cfg.World.Width,
		Y: s.cfg.World.FloorY - float64(height),
		W: oc.Width,
		H: float64(height),
	}
}

// updateItems moves items, drops the ones that left the screen, applies
// pickups and spawns new items on a fixed cadence.
func (s *Session) updateItems(speed float64) {
	kept := s.items[:0]
	for _, it := range s.items {
		it.X -= speed
		if it.X+it.Size < 0 {
			continue
		}
		kept = append(kept, it)
	}
	s.items = kept

	s.collectItems()

	if !s.belowTarget() {
		return
	}
	s.itemTimer++
	if s.itemTimer > s.cfg.Items.SpawnInterval {
		s.items = append(s.items, s.newItem())
		s.itemTimer = 0
	}
}

// newItem creates a random power-up floating above the ground band.
func (s *Session) newItem() Item {
	ic := s.cfg.Items
	kind := ItemKind(s.rng.Intn(int(itemKindCount)))
	y := ic.MaxY - s.rng.Float64()*(ic.MaxY-ic.MinY)

	return Item{
		Kind: kind,
		X:    s.cfg.World.Width,
		Y:    core.ClampF(y, ic.MinY, ic.MaxY),
		Size: ic.Size,
	}
}
