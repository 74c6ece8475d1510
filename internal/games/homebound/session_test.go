package homebound

import (
	"math"
	"math/rand"
	"testing"

	"github.com/vovakirdan/homebound/internal/core"
)

func TestObstacleRetiresForPoints(t *testing.T) {
	s := runningSession(nil)
	s.obstacles = append(s.obstacles, Obstacle{X: -26, Y: 470, W: 30, H: 30})

	s.advance()

	if s.score != 10 {
		t.Errorf("score = %d, want 10", s.score)
	}
	if len(s.obstacles) != 0 {
		t.Errorf("obstacles = %d, want 0", len(s.obstacles))
	}
	if s.phase != PhaseRunning {
		t.Errorf("phase = %v, want running", s.phase)
	}
	if !hasEvent(s.events, core.EventObstaclePassed) {
		t.Error("expected obstacle passed event")
	}
}

func TestLastLifeEndsRun(t *testing.T) {
	s := runningSession(nil)
	s.lives = 1
	s.obstacles = append(s.obstacles, overlappingObstacle())

	s.advance()

	if s.lives != 0 {
		t.Errorf("lives = %d, want 0", s.lives)
	}
	if s.phase != PhaseOver {
		t.Errorf("phase = %v, want over", s.phase)
	}
	if s.actor.invincible {
		t.Error("no invincibility should be granted on the final hit")
	}
	if !hasEvent(s.events, core.EventGameOver) {
		t.Error("expected game over event")
	}
}

func TestHitGrantsInvincibility(t *testing.T) {
	s := runningSession(nil)
	s.lives = 2
	s.obstacles = append(s.obstacles, overlappingObstacle())

	s.advance()

	if s.lives != 1 {
		t.Errorf("lives = %d, want 1", s.lives)
	}
	if s.phase != PhaseRunning {
		t.Errorf("phase = %v, want running", s.phase)
	}
	if !s.actor.invincible || s.actor.invincibleTicks != 120 {
		t.Errorf("invincible = %v (%d ticks), want true (120)", s.actor.invincible, s.actor.invincibleTicks)
	}
}

func TestOneHitPerTick(t *testing.T) {
	s := runningSession(nil)
	s.obstacles = append(s.obstacles, overlappingObstacle(), Obstacle{X: 130, Y: 450, W: 30, H: 50})

	s.advance()

	if s.lives != 2 {
		t.Errorf("lives = %d, want 2", s.lives)
	}
}

func TestInvincibleIgnoresObstacles(t *testing.T) {
	s := runningSession(nil)
	s.actor.grantInvincibility(120)
	s.obstacles = append(s.obstacles, overlappingObstacle())

	for range 5 {
		s.advance()
	}

	if s.lives != 3 {
		t.Errorf("lives = %d, want 3", s.lives)
	}
	if len(s.obstacles) != 1 {
		t.Errorf("obstacles = %d, want 1 (collisions never remove obstacles)", len(s.obstacles))
	}
}

func TestPickupsApplyWhileInvincible(t *testing.T) {
	s := runningSession(nil)
	s.lives = 2
	s.actor.grantInvincibility(120)
	s.items = append(s.items, Item{Kind: ItemHeart, X: 110, Y: 450, Size: 25})

	s.advance()

	if s.lives != 3 {
		t.Errorf("lives = %d, want 3", s.lives)
	}
	if len(s.items) != 0 {
		t.Errorf("items = %d, want 0", len(s.items))
	}
}

func TestHeartCapsLives(t *testing.T) {
	s := runningSession(nil)
	s.lives = 5
	s.items = append(s.items, Item{Kind: ItemHeart, X: 110, Y: 450, Size: 25})

	s.advance()

	if s.lives != 5 {
		t.Errorf("lives = %d, want 5", s.lives)
	}
	if !hasEvent(s.events, core.EventPickupHeart) {
		t.Error("expected heart pickup event")
	}
}

func TestReachingTargetClears(t *testing.T) {
	s := runningSession(nil)
	s.score = 490
	s.obstacleTimer = 1000
	s.itemTimer = 1000
	s.obstacles = append(s.obstacles, Obstacle{X: -26, Y: 470, W: 30, H: 30})

	s.advance()

	if s.score != 500 {
		t.Fatalf("score = %d, want 500", s.score)
	}
	if s.phase != PhaseCleared {
		t.Fatalf("phase = %v, want cleared", s.phase)
	}
	if len(s.obstacles) != 0 || len(s.items) != 0 {
		t.Errorf("spawned after clearing: %d obstacles, %d items", len(s.obstacles), len(s.items))
	}

	frame := s.frame
	s.advance()
	if s.frame != frame {
		t.Error("cleared session should not advance")
	}
}

func TestNoSpawnAtTarget(t *testing.T) {
	s := runningSession(nil)
	s.score = 500
	s.obstacleTimer = 1000
	s.itemTimer = 1000

	s.updateObstacles(5)
	s.updateItems(5)

	if len(s.obstacles) != 0 || len(s.items) != 0 {
		t.Errorf("spawned at target: %d obstacles, %d items", len(s.obstacles), len(s.items))
	}
}

func TestClockSlowsFollowingTicks(t *testing.T) {
	s := runningSession(nil)
	s.lives = 5
	s.items = append(s.items, Item{Kind: ItemClock, X: 110, Y: 450, Size: 25})

	s.advance()
	if s.slowRemaining != 300 {
		t.Fatalf("slowRemaining = %d, want 300", s.slowRemaining)
	}

	// First slowed tick: scaled horizontal speed and gravity
	s.obstacles = append(s.obstacles, Obstacle{X: 700, Y: 470, W: 30, H: 30})
	s.actor.pos[1] = 300
	s.actor.vel[1] = -10
	s.actor.airborne = true

	s.advance()

	if got := s.obstacles[0].X; math.Abs(got-698.5) > 1e-9 {
		t.Errorf("obstacle x = %v, want 698.5", got)
	}
	if got := s.actor.vel[1]; math.Abs(got-(-9.65)) > 1e-9 {
		t.Errorf("actor vy = %v, want -9.65", got)
	}
	if s.slowRemaining != 299 {
		t.Errorf("slowRemaining = %d, want 299", s.slowRemaining)
	}

	for range 298 {
		s.advance()
	}
	if s.slowRemaining != 1 {
		t.Fatalf("slowRemaining = %d, want 1", s.slowRemaining)
	}

	s.events = nil
	s.advance()
	if s.slowRemaining != 0 {
		t.Errorf("slowRemaining = %d, want 0", s.slowRemaining)
	}
	if !hasEvent(s.events, core.EventSlowEnded) {
		t.Error("expected slow ended event")
	}

	// Full speed again
	if len(s.obstacles) == 0 {
		t.Fatal("expected obstacles on screen")
	}
	before := s.obstacles[0].X
	s.advance()
	if got := before - s.obstacles[0].X; math.Abs(got-s.cfg.Difficulty.BaseSpeed) > 1e-9 {
		t.Errorf("obstacle moved %v, want %v", got, s.cfg.Difficulty.BaseSpeed)
	}
}

func TestFastSpawnCap(t *testing.T) {
	s := runningSession(&scriptedRand{floats: []float64{0.0}})

	spawns := 0
	for range 2000 {
		n := len(s.obstacles)
		s.spawnObstacles()
		if s.consecutiveFast > s.cfg.Obstacles.MaxConsecutiveFast {
			t.Fatalf("consecutiveFast = %d exceeds cap", s.consecutiveFast)
		}
		if len(s.obstacles) > n {
			spawns++
		}
	}
	if spawns == 0 {
		t.Fatal("expected spawns")
	}
}

func TestSlowRollResetsFastStreak(t *testing.T) {
	s := runningSession(&scriptedRand{floats: []float64{0.3}})
	s.consecutiveFast = 2

	s.spawnObstacles()

	if s.consecutiveFast != 0 {
		t.Errorf("consecutiveFast = %d, want 0 after a slow roll", s.consecutiveFast)
	}
	if len(s.obstacles) != 0 {
		t.Error("slow roll on the first tick should not spawn")
	}
}

func TestSpawnIntervals(t *testing.T) {
	tests := []struct {
		name string
		roll float64
		want int // Tick on which the first obstacle appears
	}{
		{"fast", 0.1, 61},
		{"slow", 0.3, 181},
		{"base", 0.9, 101},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := runningSession(&scriptedRand{floats: []float64{tt.roll}})
			for tick := 1; tick <= 200; tick++ {
				s.spawnObstacles()
				if len(s.obstacles) > 0 {
					if tick != tt.want {
						t.Errorf("spawned on tick %d, want %d", tick, tt.want)
					}
					return
				}
			}
			t.Errorf("no spawn within 200 ticks")
		})
	}
}

func TestObstacleHeightRange(t *testing.T) {
	s := runningSession(rand.New(rand.NewSource(7)))
	for range 1000 {
		o := s.newObstacle()
		if o.H < 30 || o.H > 90 {
			t.Fatalf("height %v out of range", o.H)
		}
		if o.Y+o.H != s.cfg.World.FloorY {
			t.Fatalf("obstacle not standing on floor: y=%v h=%v", o.Y, o.H)
		}
		if o.X != s.cfg.World.Width {
			t.Fatalf("spawn x = %v, want right edge", o.X)
		}
	}
}

func TestItemSpawnCadence(t *testing.T) {
	s := runningSession(&scriptedRand{floats: []float64{0.5}, ints: []int{1}})

	for range 500 {
		s.updateItems(5)
	}
	if len(s.items) != 0 {
		t.Fatalf("items = %d after 500 ticks, want 0", len(s.items))
	}

	s.updateItems(5)
	if len(s.items) != 1 {
		t.Fatalf("items = %d after 501 ticks, want 1", len(s.items))
	}

	it := s.items[0]
	if it.Kind != ItemClock {
		t.Errorf("kind = %v, want clock", it.Kind)
	}
	if it.Y < 300 || it.Y > 400 {
		t.Errorf("y = %v out of [300,400]", it.Y)
	}
	if it.Size != 25 {
		t.Errorf("size = %v, want 25", it.Size)
	}
}

func TestItemsLeaveScreen(t *testing.T) {
	s := runningSession(nil)
	s.items = append(s.items, Item{Kind: ItemHeart, X: -21, Y: 350, Size: 25})

	s.updateItems(5)

	if len(s.items) != 0 {
		t.Errorf("items = %d, want 0", len(s.items))
	}
	if s.lives != 3 {
		t.Errorf("off-screen item changed lives to %d", s.lives)
	}
}

func TestBackgroundWraps(t *testing.T) {
	s := runningSession(nil)
	s.bgScroll = 799

	s.scrollBackground(2)

	if math.Abs(s.bgScroll-1) > 1e-9 {
		t.Errorf("bgScroll = %v, want 1", s.bgScroll)
	}
}

func TestSessionStaysInBounds(t *testing.T) {
	s := runningSession(rand.New(rand.NewSource(99)))

	prevScore := 0
	for tick := range 20000 {
		// Jump periodically with varying charge
		if tick%90 == 0 {
			s.actor.pressJump()
		} else if tick%90 == 1+(tick/90)%20 {
			s.actor.releaseJump(s.cfg.Player)
		}

		s.advance()

		if s.lives < 0 || s.lives > s.cfg.Gameplay.MaxLives {
			t.Fatalf("tick %d: lives = %d", tick, s.lives)
		}
		if s.score < prevScore {
			t.Fatalf("tick %d: score decreased %d -> %d", tick, prevScore, s.score)
		}
		prevScore = s.score
		if s.actor.pos.Y() > s.actor.groundY {
			t.Fatalf("tick %d: actor below ground", tick)
		}
		for _, o := range s.obstacles {
			if o.H < 30 || o.H > 90 {
				t.Fatalf("tick %d: obstacle height %v", tick, o.H)
			}
		}
		if s.phase != PhaseRunning {
			break
		}
	}
}
