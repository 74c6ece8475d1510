package homebound

import "github.com/vovakirdan/homebound/internal/core"

// collectItems applies every item the actor overlaps and removes it.
// Pickups apply while invincible.
func (s *Session) collectItems() {
	actor := s.actor.Rect()

	kept := s.items[:0]
	for _, it := range s.items {
		if !actor.Intersects(it.Rect()) {
			kept = append(kept, it)
			continue
		}
		s.applyItem(it.Kind)
	}
	s.items = kept
}

// applyItem runs the effect of a collected item.
func (s *Session) applyItem(kind ItemKind) {
	switch kind {
	case ItemHeart:
		s.lives = min(s.lives+1, s.cfg.Gameplay.MaxLives)
		s.emit(core.EventPickupHeart, s.lives)
	case ItemClock:
		s.slowRemaining = s.cfg.Items.SlowTicks
		s.emit(core.EventPickupClock, s.slowRemaining)
	}
}

// resolveHazards checks the actor against obstacles in spawn order.
// Invincibility skips the whole pass; at most one hit lands per tick.
func (s *Session) resolveHazards() {
	if s.actor.invincible {
		return
	}

	actor := s.actor.Rect()
	for _, o := range s.obstacles {
		if actor.Intersects(o.Rect()) {
			s.hit()
			return
		}
	}
}

// hit costs one life and either ends the run or grants invincibility.
func (s *Session) hit() {
	s.lives--
	s.emit(core.EventHit, s.lives)

	if s.lives <= 0 {
		s.lives = 0
		s.transition(PhaseOver)
		s.emit(core.EventGameOver, s.score)
		return
	}
	s.actor.grantInvincibility(s.cfg.Player.InvincibleTicks)
}
