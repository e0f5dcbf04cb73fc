package system

import (
	"github.com/younwookim/arena/internal/application/boss"
	"github.com/younwookim/arena/internal/domain/entity"
	"github.com/younwookim/arena/internal/infrastructure/config"
)

// CombatSystem owns the actor roster and the coins. It advances every actor
// against the shared player and bullet list and dispatches what they report.
type CombatSystem struct {
	config *config.Config
	arena  entity.Arena
	cues   CueSink

	actors []entity.Actor
	coins  []*entity.Coin
	nextID entity.EntityID

	kills      int
	killMarker int
	shake      int

	// Event callbacks
	OnScreenShake func(ticks int)
	OnKill        func(ev entity.KillEvent)
}

// NewCombatSystem creates a new combat system. A nil sink discards cues.
func NewCombatSystem(cfg *config.Config, arena entity.Arena, cues CueSink) *CombatSystem {
	if cues == nil {
		cues = NopCueSink{}
	}
	return &CombatSystem{
		config: cfg,
		arena:  arena,
		cues:   cues,
		actors: make([]entity.Actor, 0, 32),
		coins:  make([]*entity.Coin, 0, 64),
		nextID: 1,
	}
}

// Reconfigure swaps the tuning used for coins and feedback timers. Live
// actors keep the tuning they were spawned with.
func (s *CombatSystem) Reconfigure(cfg *config.Config) {
	s.config = cfg
}

// NextID hands out the next actor id. Ids are never reused.
func (s *CombatSystem) NextID() entity.EntityID {
	id := s.nextID
	s.nextID++
	return id
}

// Add appends an actor to the roster. It first updates on the next tick.
func (s *CombatSystem) Add(a entity.Actor) {
	s.actors = append(s.actors, a)
}

// Update runs one combat tick: actors in roster order, event dispatch, coin
// pickup and finally the player's damage cooldown
func (s *CombatSystem) Update(player *entity.Player, bullets []*entity.Bullet, rng entity.Rand) {
	if s.killMarker > 0 {
		s.killMarker--
	}
	if s.shake > 0 {
		s.shake--
	}

	tick := &entity.Tick{
		Player:  player,
		Bullets: bullets,
		Arena:   s.arena,
		Rand:    rng,
	}

	// Actors appended during dispatch wait for the next tick
	n := len(s.actors)
	for i := 0; i < n; i++ {
		a := s.actors[i]
		if !a.Body().Alive {
			continue
		}
		s.dispatch(a.Update(tick))
	}

	if player.JustHit {
		player.JustHit = false
		s.startShake()
	}

	s.updateCoins(player)
	player.TickCooldown()
}

func (s *CombatSystem) dispatch(events []entity.Event) {
	for _, ev := range events {
		switch e := ev.(type) {
		case entity.KillEvent:
			s.kills++
			s.killMarker = s.config.Feedback.KillMarker
			if s.OnKill != nil {
				s.OnKill(e)
			}
		case entity.DropEvent:
			if e.Value > 0 {
				s.coins = append(s.coins, entity.NewCoin(e.X, e.Y, e.Value))
			}
		case entity.CueEvent:
			s.cues.Play(e.Cue)
		case entity.PlayerHitEvent:
			// Shake is driven by JustHit so every damage path is covered once
		}
	}
}

func (s *CombatSystem) startShake() {
	s.shake = s.config.Feedback.ScreenShake
	if s.OnScreenShake != nil {
		s.OnScreenShake(s.shake)
	}
}

func (s *CombatSystem) updateCoins(player *entity.Player) {
	px, py := player.Center()
	for _, c := range s.coins {
		if c.Attract(px, py, s.config.Coins.PullSpeed, s.config.Coins.CollectRadius) {
			player.Money += c.Value
			c.Active = false
		}
	}

	alive := s.coins[:0]
	for _, c := range s.coins {
		if c.Active {
			alive = append(alive, c)
		}
	}
	for i := len(alive); i < len(s.coins); i++ {
		s.coins[i] = nil
	}
	s.coins = alive
}

// Reap removes dead actors. It runs after every interaction of the tick.
func (s *CombatSystem) Reap() {
	alive := s.actors[:0]
	for _, a := range s.actors {
		if a.Body().Alive {
			alive = append(alive, a)
		}
	}
	for i := len(alive); i < len(s.actors); i++ {
		s.actors[i] = nil
	}
	s.actors = alive
}

// Clear drops every actor and coin, keeping the id counter and kill count
func (s *CombatSystem) Clear() {
	for i := range s.actors {
		s.actors[i] = nil
	}
	s.actors = s.actors[:0]
	for i := range s.coins {
		s.coins[i] = nil
	}
	s.coins = s.coins[:0]
	s.killMarker = 0
	s.shake = 0
}

// AliveCount returns the number of live actors in the roster
func (s *CombatSystem) AliveCount() int {
	n := 0
	for _, a := range s.actors {
		if a.Body().Alive {
			n++
		}
	}
	return n
}

// Boss returns the boss if one is in the roster
func (s *CombatSystem) Boss() (*boss.Boss, bool) {
	for _, a := range s.actors {
		if b, ok := a.(*boss.Boss); ok {
			return b, true
		}
	}
	return nil, false
}

// Actors returns the roster, dead actors included until reaped
func (s *CombatSystem) Actors() []entity.Actor {
	return s.actors
}

// Coins returns the coins still on the floor
func (s *CombatSystem) Coins() []*entity.Coin {
	return s.coins
}

// Kills returns the number of defeated actors
func (s *CombatSystem) Kills() int {
	return s.kills
}

// KillMarker returns the remaining ticks of the kill marker
func (s *CombatSystem) KillMarker() int {
	return s.killMarker
}

// Shake returns the remaining ticks of screen shake
func (s *CombatSystem) Shake() int {
	return s.shake
}
