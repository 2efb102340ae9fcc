package render

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/trouvaiilx/arcane-survivors/internal/app"
	"github.com/trouvaiilx/arcane-survivors/internal/component"
	"github.com/trouvaiilx/arcane-survivors/pkg/geom"
)

const gridSpacing = 100.0

// WorldRenderer draws the arena around the player: a scrolling grid, then
// pickups, ground effects, enemies, projectiles, persistent weapons and the
// player on top.
type WorldRenderer struct {
	palette      Palette
	screenWidth  int
	screenHeight int
	camera       geom.Vec2 // world point at the screen center
}

func NewWorldRenderer(palette Palette, screenWidth, screenHeight int) *WorldRenderer {
	return &WorldRenderer{palette: palette, screenWidth: screenWidth, screenHeight: screenHeight}
}

func (r *WorldRenderer) toScreen(p geom.Vec2) (float32, float32) {
	return float32(p.X - r.camera.X + float64(r.screenWidth)/2), float32(p.Y - r.camera.Y + float64(r.screenHeight)/2)
}

func (r *WorldRenderer) visible(p geom.Vec2, radius float64) bool {
	hw, hh := float64(r.screenWidth)/2+radius, float64(r.screenHeight)/2+radius
	return math.Abs(p.X-r.camera.X) <= hw && math.Abs(p.Y-r.camera.Y) <= hh
}

func (r *WorldRenderer) Draw(screen *ebiten.Image, g *app.Game) {
	pl := g.Player()
	if pl != nil {
		r.camera = pl.Pos
	}
	screen.Fill(r.palette.Background)
	r.drawGrid(screen)

	for _, p := range g.ECS.Pickups.All() {
		if p.Collected || !r.visible(p.Pos, p.Radius) {
			continue
		}
		x, y := r.toScreen(p.Pos)
		c := r.palette.Pickup(int(p.Kind))
		if p.Kind == component.PickupPortal {
			vector.StrokeCircle(screen, x, y, float32(p.Radius), 3, c, true)
			continue
		}
		vector.DrawFilledCircle(screen, x, y, float32(p.Radius), c, true)
	}

	for _, p := range g.ECS.Projectiles.All() {
		if !p.Expired && p.Ground() && p.Landed {
			r.drawProjectile(screen, p, r.palette.Pool)
		}
	}

	for _, e := range g.ECS.Enemies.All() {
		if e.Dead || !r.visible(e.Pos, e.Radius) {
			continue
		}
		x, y := r.toScreen(e.Pos)
		c := r.palette.Enemy
		switch {
		case e.Flash > 0:
			c = r.palette.Flash
		case e.IsBoss():
			c = r.palette.Boss
		case e.Elite():
			c = r.palette.Elite
		}
		vector.DrawFilledCircle(screen, x, y, float32(e.Radius), c, true)
		vector.StrokeCircle(screen, x, y, float32(e.Radius), 1, r.palette.Outline, true)
		if e.Elite() && e.MaxHP > 0 {
			w := float32(e.Radius * 2)
			vector.DrawFilledRect(screen, x-w/2, y-float32(e.Radius)-8, w*float32(e.HP/e.MaxHP), 4, r.palette.Elite, false)
		}
	}

	for _, p := range g.ECS.Projectiles.All() {
		if p.Expired || p.Invisible || (p.Ground() && p.Landed) {
			continue
		}
		r.drawProjectile(screen, p, r.palette.Projectile)
	}

	if pl != nil {
		for _, w := range g.ECS.Weapons {
			r.drawPersistent(screen, w, pl.Pos)
		}
		x, y := r.toScreen(pl.Pos)
		c := r.palette.Player
		if pl.Invincible() && int(g.Clock.Elapsed()*10)%2 == 0 {
			c = DarkenColor(c)
		}
		vector.DrawFilledCircle(screen, x, y, float32(pl.Radius), c, true)
		fx, fy := r.toScreen(pl.Pos.Add(pl.Facing.Scale(pl.Radius + 6)))
		vector.StrokeLine(screen, x, y, fx, fy, 2, r.palette.Outline, true)
	}
}

func (r *WorldRenderer) drawGrid(screen *ebiten.Image) {
	left := r.camera.X - float64(r.screenWidth)/2
	top := r.camera.Y - float64(r.screenHeight)/2
	for gx := math.Floor(left/gridSpacing) * gridSpacing; gx < left+float64(r.screenWidth); gx += gridSpacing {
		x := float32(gx - left)
		vector.StrokeLine(screen, x, 0, x, float32(r.screenHeight), 1, r.palette.Grid, false)
	}
	for gy := math.Floor(top/gridSpacing) * gridSpacing; gy < top+float64(r.screenHeight); gy += gridSpacing {
		y := float32(gy - top)
		vector.StrokeLine(screen, 0, y, float32(r.screenWidth), y, 1, r.palette.Grid, false)
	}
}

func (r *WorldRenderer) drawProjectile(screen *ebiten.Image, p *component.Projectile, c color.RGBA) {
	if !r.visible(p.Pos, p.BoundingRadius()) {
		return
	}
	x, y := r.toScreen(p.Pos)
	if p.Shape.Kind == component.ShapeRect {
		w, h := float32(p.Shape.HalfW*2), float32(p.Shape.HalfH*2)
		vector.DrawFilledRect(screen, x-w/2, y-h/2, w, h, c, false)
		return
	}
	vector.DrawFilledCircle(screen, x, y, float32(p.Radius), c, true)
}

func (r *WorldRenderer) drawPersistent(screen *ebiten.Image, w *component.Weapon, origin geom.Vec2) {
	if o := w.Orbit; o != nil && o.Active() {
		for _, pos := range o.Positions(origin) {
			x, y := r.toScreen(pos)
			vector.DrawFilledCircle(screen, x, y, float32(o.HitRadius), r.palette.Orbit, true)
		}
	}
	if b := w.Beam; b != nil && b.Active() {
		x0, y0 := r.toScreen(origin)
		x1, y1 := r.toScreen(origin.Add(b.Dir.Scale(b.Length)))
		vector.StrokeLine(screen, x0, y0, x1, y1, float32(b.HalfWidth*2), r.palette.Beam, true)
	}
}
