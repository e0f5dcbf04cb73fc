package playing

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"github.com/younwookim/arena/internal/application/boss"
	"github.com/younwookim/arena/internal/application/enemy"
	"github.com/younwookim/arena/internal/application/state"
	"github.com/younwookim/arena/internal/domain/entity"
)

// Colors for rendering
var (
	colorBG        = colornames.Midnightblue
	colorFloor     = color.RGBA{30, 30, 60, 255}
	colorPlayer    = colornames.Limegreen
	colorBlocking  = colornames.Lightskyblue
	colorFlash     = color.RGBA{255, 255, 255, 200}
	colorSlime     = colornames.Mediumseagreen
	colorMelee     = colornames.Indianred
	colorTelegraph = colornames.Orange
	colorArcher    = colornames.Peru
	colorArrow     = colornames.Sandybrown
	colorBoss      = colornames.Mediumpurple
	colorEnraged   = colornames.Crimson
	colorBossShot  = colornames.Violet
	colorLaser     = color.RGBA{255, 60, 60, 200}
	colorBullet    = colornames.White
	colorIdleShot  = colornames.Gray
	colorCoin      = colornames.Gold
	colorHeart     = colornames.Red
	colorHeartBG   = color.RGBA{60, 60, 60, 255}
	colorHealthBG  = color.RGBA{60, 60, 60, 255}
	colorHealthFG  = colornames.Limegreen
	colorMarker    = colornames.Yellow
	colorOverlay   = color.RGBA{0, 0, 0, 128}
	colorDefeat    = color.RGBA{100, 0, 0, 180}
)

// view maps arena coordinates to the screen, including screen shake
type view struct {
	sx, sy float64
	ox, oy float64
}

func (v view) pt(x, y float64) (float32, float32) {
	return float32(x*v.sx + v.ox), float32(y*v.sy + v.oy)
}

func (v view) rect(dst *ebiten.Image, x, y, w, h float64, c color.Color) {
	px, py := v.pt(x, y)
	vector.DrawFilledRect(dst, px, py, float32(w*v.sx), float32(h*v.sy), c, false)
}

func (v view) line(dst *ebiten.Image, x0, y0, x1, y1, width float64, c color.Color) {
	ax, ay := v.pt(x0, y0)
	bx, by := v.pt(x1, y1)
	vector.StrokeLine(dst, ax, ay, bx, by, float32(width*v.sx), c, true)
}

func (v view) circle(dst *ebiten.Image, x, y, r float64, c color.Color) {
	px, py := v.pt(x, y)
	vector.DrawFilledCircle(dst, px, py, float32(r*v.sx), c, true)
}

func (p *Playing) view() view {
	a := p.world.Arena()
	v := view{
		sx: float64(p.screenW) / a.Width,
		sy: float64(p.screenH) / a.Height,
	}
	// Deterministic jitter so replays render identically
	if s := p.world.Combat.Shake(); s > 0 {
		t := float64(p.world.Tick())
		v.ox = math.Sin(t*1.7) * float64(s)
		v.oy = math.Cos(t*2.3) * float64(s)
	}
	return v
}

// Draw renders the game screen
func (p *Playing) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)
	v := p.view()

	a := p.world.Arena()
	v.rect(screen, 0, 0, a.Width, a.Height, colorFloor)

	p.drawCoins(screen, v)
	p.drawActors(screen, v)
	p.drawBullets(screen, v)
	p.drawPlayer(screen, v)

	if p.world.Wheel.IsActive() {
		p.drawWheel(screen)
	}

	p.drawHUD(screen)

	switch {
	case p.paused:
		p.drawOverlay(screen, colorOverlay, "PAUSED\n\nESC: resume  Q: quit")
	case p.world.State() == state.StateIntermission:
		p.drawCenterText(screen, fmt.Sprintf("Wave %d cleared\n\nPress ENTER for the next wave", p.world.Wave()))
	case p.world.State() == state.StateDefeat:
		p.drawOverlay(screen, colorDefeat, fmt.Sprintf("DEFEATED on wave %d\n\nPress R to retry", p.world.Wave()))
	case p.world.State() == state.StateVictory:
		p.drawOverlay(screen, colorOverlay, fmt.Sprintf("VICTORY\n\nMoney: %d  Kills: %d", p.world.Player.Money, p.world.Combat.Kills()))
	}
}

func (p *Playing) drawPlayer(screen *ebiten.Image, v view) {
	pl := p.world.Player
	if !pl.Alive {
		return
	}

	c := color.Color(colorPlayer)
	switch {
	case pl.Blocking:
		c = colorBlocking
	case pl.IsInvincible() && (pl.DamageCooldown/8)%2 == 0:
		c = colorFlash
	}
	v.rect(screen, pl.X, pl.Y, pl.W, pl.H, c)

	// Facing notch
	cx, cy := pl.Center()
	dir := 1.0
	if pl.Facing == entity.FacingLeft {
		dir = -1
	}
	v.line(screen, cx, cy, cx+dir*pl.W/2, cy, 3, colornames.Black)
}

func (p *Playing) drawActors(screen *ebiten.Image, v view) {
	for _, a := range p.world.Combat.Actors() {
		body := a.Body()
		if !body.Alive {
			continue
		}

		switch act := a.(type) {
		case *enemy.Slime:
			v.rect(screen, body.X, body.Y, body.W, body.H, colorSlime)
		case *enemy.Melee:
			c := colorMelee
			if act.State == enemy.MeleeTelegraph || act.State == enemy.MeleeAttack {
				c = colorTelegraph
			}
			v.rect(screen, body.X, body.Y, body.W, body.H, c)
		case *enemy.Archer:
			v.rect(screen, body.X, body.Y, body.W, body.H, colorArcher)
			if act.Loaded {
				cx, cy := body.Center()
				v.circle(screen, cx, cy, 6, colorArrow)
			}
			p.drawShots(screen, v, act.Arrows, nil, colorArrow)
		case *boss.Boss:
			p.drawBoss(screen, v, act)
			continue
		}

		if body.HP < body.MaxHP {
			p.drawHealthBar(screen, v, body)
		}
	}
}

func (p *Playing) drawHealthBar(screen *ebiten.Image, v view, body *entity.Body) {
	ratio := float64(body.DisplayHP()) / float64(body.MaxHP)
	v.rect(screen, body.X, body.Y-10, body.W, 5, colorHealthBG)
	v.rect(screen, body.X, body.Y-10, body.W*ratio, 5, colorHealthFG)
}

func (p *Playing) drawBoss(screen *ebiten.Image, v view, b *boss.Boss) {
	body := b.Body()
	c := colorBoss
	if b.Enraged() {
		c = colorEnraged
	}
	v.rect(screen, body.X, body.Y, body.W, body.H, c)

	if lv, ok := b.Lasers(); ok {
		width := p.config.Boss.Lasers.HalfWidth * 2
		for _, l := range lv.Lasers {
			dx, dy := l.Direction()
			v.line(screen,
				lv.CX+dx*lv.Inner, lv.CY+dy*lv.Inner,
				lv.CX+dx*lv.Length, lv.CY+dy*lv.Length,
				width, colorLaser)
		}
	}

	p.drawShots(screen, v, b.Shots, b, colorBossShot)
}

func (p *Playing) drawShots(screen *ebiten.Image, v view, shots []*entity.Shot, owner *boss.Boss, c color.Color) {
	for _, s := range shots {
		if !s.Active || (owner != nil && owner.ShotHidden(s)) {
			continue
		}
		if owner != nil {
			v.circle(screen, s.X, s.Y, 8, c)
			continue
		}
		rot := s.Rotation()
		v.line(screen, s.X, s.Y, s.X-math.Cos(rot)*20, s.Y-math.Sin(rot)*20, 3, c)
	}
}

func (p *Playing) drawBullets(screen *ebiten.Image, v view) {
	active := p.world.Weapons.ActiveSlot()
	for slot, list := range p.world.Weapons.AllBullets() {
		c := colorIdleShot
		if slot == active {
			c = colorBullet
		}
		for _, b := range list {
			if !b.Active {
				continue
			}
			rot := b.Rotation()
			v.line(screen, b.X, b.Y, b.X-math.Cos(rot)*24, b.Y-math.Sin(rot)*24, 3, c)
		}
	}
}

func (p *Playing) drawCoins(screen *ebiten.Image, v view) {
	for _, c := range p.world.Combat.Coins() {
		if c.Active {
			v.circle(screen, c.X, c.Y, 8, colorCoin)
		}
	}
}

func (p *Playing) drawHUD(screen *ebiten.Image) {
	pl := p.world.Player

	// Hearts
	for i := 0; i < pl.MaxHearts; i++ {
		c := colorHeartBG
		if i < pl.Hearts {
			c = colorHeart
		}
		vector.DrawFilledRect(screen, float32(10+i*22), 10, 18, 18, c, false)
	}

	weapon := "none"
	if w, ok := p.world.Weapons.Active(); ok {
		weapon = w.Name
	}
	hud := fmt.Sprintf("Wave %d  Enemies %d  Money %d  Kills %d  Weapon %s",
		p.world.Wave(), p.world.Remaining(), pl.Money, p.world.Combat.Kills(), weapon)
	ebitenutil.DebugPrintAt(screen, hud, 10, 34)
	ebitenutil.DebugPrintAt(screen,
		"WASD: move | Shift: dash | Space: block | LMB: fire | RMB: wheel | 1-4: weapon | ESC: pause",
		10, p.screenH-20)

	if ratio, enraged, ok := p.world.BossBar(); ok {
		barW := float32(p.screenW) * 0.6
		x := (float32(p.screenW) - barW) / 2
		c := colorBoss
		if enraged {
			c = colorEnraged
		}
		vector.DrawFilledRect(screen, x, 20, barW, 16, colorHealthBG, false)
		vector.DrawFilledRect(screen, x, 20, barW*float32(ratio), 16, c, false)
		vector.StrokeRect(screen, x, 20, barW, 16, 2, colornames.White, false)
	}

	if p.world.Banner() > 0 && p.world.State().Fighting() {
		label := fmt.Sprintf("WAVE %d", p.world.Wave())
		if p.world.Wave() == p.world.Spawner.BossWave() {
			label = "BOSS WAVE"
		}
		ebitenutil.DebugPrintAt(screen, label, p.screenW/2-30, p.screenH/4)
	}

	if p.world.Combat.KillMarker() > 0 {
		mx, my := ebiten.CursorPosition()
		x, y := float32(mx), float32(my)
		vector.StrokeLine(screen, x-8, y-8, x+8, y+8, 2, colorMarker, true)
		vector.StrokeLine(screen, x-8, y+8, x+8, y-8, 2, colorMarker, true)
	}
}

// drawWheel draws the weapon wheel in screen space
func (p *Playing) drawWheel(screen *ebiten.Image) {
	wheel := p.world.Wheel
	eased := math.Sin(wheel.Progress() * math.Pi / 2)

	overlay := color.RGBA{0, 0, 0, uint8(128 * eased)}
	vector.DrawFilledRect(screen, 0, 0, float32(p.screenW), float32(p.screenH), overlay, false)

	weapons := p.world.Weapons.Weapons()
	for slot := entity.SlotRight; slot <= entity.SlotDown; slot++ {
		if int(slot) >= len(weapons) {
			break
		}
		x, y := wheel.IconPosition(slot, eased)

		r := float32(22)
		c := color.RGBA{150, 150, 150, uint8(255 * eased)}
		if slot == wheel.Highlighted {
			r = 28
			c = color.RGBA{255, 255, 255, uint8(255 * eased)}
		}
		if int(slot) == p.world.Weapons.ActiveSlot() {
			vector.StrokeCircle(screen, float32(x), float32(y), r+4, 2, colornames.Gold, true)
		}
		vector.DrawFilledCircle(screen, float32(x), float32(y), r, c, true)
		ebitenutil.DebugPrintAt(screen, weapons[slot].Name, int(x)-20, int(y)+int(r)+4)
	}
}

func (p *Playing) drawOverlay(screen *ebiten.Image, c color.Color, text string) {
	vector.DrawFilledRect(screen, 0, 0, float32(p.screenW), float32(p.screenH), c, false)
	p.drawCenterText(screen, text)
}

func (p *Playing) drawCenterText(screen *ebiten.Image, text string) {
	ebitenutil.DebugPrintAt(screen, text, p.screenW/2-90, p.screenH/2-20)
}
