package system

import (
	"github.com/younwookim/arena/internal/domain/entity"
	"github.com/younwookim/arena/internal/domain/geom"
	"github.com/younwookim/arena/internal/infrastructure/config"
)

// InputSystem moves the player from one tick of input
type InputSystem struct {
	config config.PlayerConfig
	arena  entity.Arena
}

// NewInputSystem creates a new input system
func NewInputSystem(cfg config.PlayerConfig, arena entity.Arena) *InputSystem {
	return &InputSystem{config: cfg, arena: arena}
}

// InputState is one tick of player input. The playing scene reads it from
// the devices; headless runs and replays build it directly.
type InputState struct {
	Left  bool
	Right bool
	Up    bool
	Down  bool

	DashPressed  bool
	BlockPressed bool
	FirePressed  bool
	FireHeld     bool

	MouseX int
	MouseY int

	// Slot is the number key pressed this tick (1-4), 0 for none
	Slot int

	// Right click for the weapon wheel
	WheelPressed  bool
	WheelReleased bool

	// Confirm starts the next wave, Retry restarts after a defeat
	Confirm bool
	Retry   bool
}

// Moving reports whether any direction key is held
func (in InputState) Moving() bool {
	return in.Left || in.Right || in.Up || in.Down
}

// UpdatePlayer moves the player for one tick: knockback, block, dash, then
// walking. The result is clamped to the arena.
func (s *InputSystem) UpdatePlayer(player *entity.Player, input InputState) {
	if !player.Alive {
		return
	}
	defer s.clamp(player)

	// Knockback overrides every input
	if player.KnockbackTimer > 0 {
		player.X += player.KnockbackDX
		player.Y += player.KnockbackDY
		player.KnockbackDX *= s.config.KnockbackDecay
		player.KnockbackDY *= s.config.KnockbackDecay
		player.KnockbackTimer--
		s.tickBlock(player)
		return
	}

	if input.BlockPressed && !player.Blocking {
		player.Blocking = true
		player.BlockTimer = s.config.BlockDuration
	}
	if player.Blocking {
		s.tickBlock(player)
		return
	}

	s.handleDash(player, input)
	if player.Dashing {
		player.X += player.DashDX * s.config.DashSpeed
		player.Y += player.DashDY * s.config.DashSpeed
		player.DashTimer--
		if player.DashTimer <= 0 {
			player.Dashing = false
		}
		return
	}

	s.handleMovement(player, input)
}

// tickBlock counts down an active block
func (s *InputSystem) tickBlock(player *entity.Player) {
	if !player.Blocking {
		return
	}
	player.BlockTimer--
	if player.BlockTimer <= 0 {
		player.Blocking = false
		player.BlockTimer = 0
	}
}

// handleDash starts a dash along the held direction
func (s *InputSystem) handleDash(player *entity.Player, input InputState) {
	if !input.DashPressed || player.Dashing || !input.Moving() {
		return
	}

	dx, dy := axis(input)
	nx, ny, _, ok := geom.Normalize(dx, dy)
	if !ok {
		return
	}
	player.Dashing = true
	player.DashTimer = s.config.DashDuration
	player.DashDX = nx
	player.DashDY = ny
}

// handleMovement walks at base speed. Diagonals are not normalized.
func (s *InputSystem) handleMovement(player *entity.Player, input InputState) {
	speed := s.config.Speed

	if input.Left {
		player.X -= speed
		player.Facing = entity.FacingLeft
	}
	if input.Right {
		player.X += speed
		player.Facing = entity.FacingRight
	}
	if input.Up {
		player.Y -= speed
	}
	if input.Down {
		player.Y += speed
	}
}

func (s *InputSystem) clamp(player *entity.Player) {
	player.X = geom.Clamp(player.X, 0, s.arena.Width-player.W)
	player.Y = geom.Clamp(player.Y, 0, s.arena.Height-player.H)
}

// axis turns the held keys into a direction; opposite keys let the later one win
func axis(input InputState) (float64, float64) {
	var dx, dy float64
	if input.Up {
		dy = -1
	}
	if input.Down {
		dy = 1
	}
	if input.Left {
		dx = -1
	}
	if input.Right {
		dx = 1
	}
	return dx, dy
}
