package raycast

import (
	"math"
	"testing"

	"github.com/Faultbox/tilecaster/internal/grid"
	rmath "github.com/Faultbox/tilecaster/pkg/math"
)

const tile = 32

// corridorGrid is 11x15 with a 3-wide open corridor on rows 4..6.
func corridorGrid(t *testing.T) *grid.Grid {
	t.Helper()
	g, err := grid.New([]string{
		"###############",
		"###############",
		"###############",
		"###############",
		"#.............#",
		"#.............#",
		"#.............#",
		"###############",
		"###############",
		"###############",
		"###############",
	}, tile)
	if err != nil {
		t.Fatalf("grid.New: %v", err)
	}
	return g
}

func TestFacingOf(t *testing.T) {
	tests := []struct {
		angle float64
		want  Facing
	}{
		{math.Pi / 4, DownRight},
		{3 * math.Pi / 4, DownLeft},
		{5 * math.Pi / 4, UpLeft},
		{7 * math.Pi / 4, UpRight},
		{0, UpRight},
		{math.Pi / 2, DownLeft},
		{math.Pi, UpLeft},
		{3 * math.Pi / 2, UpLeft},
	}
	for _, tt := range tests {
		if got := FacingOf(tt.angle); got != tt.want {
			t.Errorf("FacingOf(%v) = %v, want %v", tt.angle, got, tt.want)
		}
	}
}

func TestFacingSigns(t *testing.T) {
	for _, f := range []Facing{UpRight, UpLeft, DownRight, DownLeft} {
		sx, sy := f.Signs()
		if (sx > 0) != f.Right() {
			t.Errorf("%v: x sign %v disagrees with Right()=%v", f, sx, f.Right())
		}
		if (sy > 0) != f.Down() {
			t.Errorf("%v: y sign %v disagrees with Down()=%v", f, sy, f.Down())
		}
	}
}

func TestCastAlongCorridor(t *testing.T) {
	g := corridorGrid(t)
	c := New(g)

	// Observer on the grid line x=7*tile, on the corridor's center row.
	origin := rmath.Vec2{X: 7 * tile, Y: 5.5 * tile}
	ray := c.Cast(origin, 0)

	if ray.Missed {
		t.Fatal("ray missed")
	}
	if !ray.Vertical {
		t.Error("ray along a row should hit a vertical grid line")
	}
	want := rmath.Vec2{X: 14 * tile, Y: 5.5 * tile}
	if ray.Hit != want {
		t.Errorf("hit = %v, want %v", ray.Hit, want)
	}
	// Open tiles from column 7 through 13.
	if ray.Distance != 7*tile {
		t.Errorf("distance = %v, want %v", ray.Distance, 7*tile)
	}
}

func TestCastWest(t *testing.T) {
	g := corridorGrid(t)
	c := New(g)

	origin := rmath.Vec2{X: 7.5 * tile, Y: 5.5 * tile}
	ray := c.Cast(origin, math.Pi)

	if !ray.Vertical {
		t.Error("ray along a row should hit a vertical grid line")
	}
	if math.Abs(ray.Hit.X-1*tile) > 1e-6 || math.Abs(ray.Hit.Y-5.5*tile) > 1e-6 {
		t.Errorf("hit = %v, want (%v, %v)", ray.Hit, 1*tile, 5.5*tile)
	}
	if math.Abs(ray.Distance-6.5*tile) > 1e-6 {
		t.Errorf("distance = %v, want %v", ray.Distance, 6.5*tile)
	}
}

func TestCastAlongColumn(t *testing.T) {
	g := corridorGrid(t)
	c := New(g)
	origin := rmath.Vec2{X: 7.5 * tile, Y: 5.5 * tile}

	tests := []struct {
		name  string
		angle float64
		wantY float64
	}{
		{"south", math.Pi / 2, 7 * tile},
		{"north", 3 * math.Pi / 2, 4 * tile},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := c.Cast(origin, tt.angle)
			if ray.Vertical {
				t.Error("ray along a column should hit a horizontal grid line")
			}
			if math.Abs(ray.Hit.Y-tt.wantY) > 1e-6 || math.Abs(ray.Hit.X-origin.X) > 1e-6 {
				t.Errorf("hit = %v, want (%v, %v)", ray.Hit, origin.X, tt.wantY)
			}
			if math.Abs(ray.Distance-1.5*tile) > 1e-6 {
				t.Errorf("distance = %v, want %v", ray.Distance, 1.5*tile)
			}
		})
	}
}

func TestCastDiagonal(t *testing.T) {
	g := corridorGrid(t)
	c := New(g)

	// From the middle of cell (5,7) heading down-right at 45 degrees the ray
	// crosses (8*tile, 6*tile) then enters row 7 (wall) at y=7*tile.
	origin := rmath.Vec2{X: 7.5 * tile, Y: 5.5 * tile}
	ray := c.Cast(origin, math.Pi/4)

	if ray.Facing != DownRight {
		t.Errorf("facing = %v, want down-right", ray.Facing)
	}
	want := rmath.Vec2{X: 9 * tile, Y: 7 * tile}
	if math.Abs(ray.Hit.X-want.X) > 1e-6 || math.Abs(ray.Hit.Y-want.Y) > 1e-6 {
		t.Errorf("hit = %v, want %v", ray.Hit, want)
	}
	if math.Abs(ray.Distance-1.5*tile*math.Sqrt2) > 1e-6 {
		t.Errorf("distance = %v, want %v", ray.Distance, 1.5*tile*math.Sqrt2)
	}
}

func TestCastAllQuadrantsStayFinite(t *testing.T) {
	g := grid.Default(tile)
	c := New(g)
	origin := rmath.Vec2{X: 7.3 * tile, Y: 6.5 * tile}

	for i := 0; i < 3600; i++ {
		angle := float64(i) * rmath.TwoPi / 3600
		ray := c.Cast(origin, angle)

		if math.IsNaN(ray.Distance) || math.IsInf(ray.Distance, 0) {
			t.Fatalf("angle %v: distance %v", angle, ray.Distance)
		}
		if ray.Missed {
			t.Fatalf("angle %v: missed inside a walled map", angle)
		}
		if ray.Hit.X < -1e-6 || ray.Hit.X > g.Width()+1e-6 || ray.Hit.Y < -1e-6 || ray.Hit.Y > g.Height()+1e-6 {
			t.Fatalf("angle %v: hit %v outside world", angle, ray.Hit)
		}
		if d := origin.Distance(ray.Hit); math.Abs(d-ray.Distance) > 1e-6 {
			t.Fatalf("angle %v: distance %v disagrees with hit %v", angle, ray.Distance, d)
		}
	}
}

func TestCastHitsNearestWall(t *testing.T) {
	g := grid.Default(tile)
	c := New(g)
	origin := rmath.Vec2{X: 7.3 * tile, Y: 6.5 * tile}

	// Walk along each ray in small steps; no wall may be sampled before the
	// reported hit.
	for i := 0; i < 360; i++ {
		angle := float64(i) * rmath.TwoPi / 360
		ray := c.Cast(origin, angle)
		dir := rmath.FromAngle(angle)
		for s := 0.5; s < ray.Distance-1; s += 0.5 {
			p := origin.Add(dir.Scale(s))
			if g.IsWall(p.X, p.Y) {
				t.Fatalf("angle %v: wall at %v before reported hit %v", angle, p, ray.Hit)
			}
		}
	}
}

type openMap struct{ w, h float64 }

func (m openMap) IsWall(x, y float64) bool { return false }
func (m openMap) TileSize() float64        { return tile }
func (m openMap) Width() float64           { return m.w }
func (m openMap) Height() float64          { return m.h }

func TestCastBothMiss(t *testing.T) {
	m := openMap{w: 10 * tile, h: 5 * tile}
	c := New(m)
	origin := rmath.Vec2{X: 5 * tile, Y: 2.5 * tile}

	ray := c.Cast(origin, 0)
	if !ray.Missed {
		t.Fatal("expected miss on a map without walls")
	}
	if want := math.Hypot(m.w, m.h); ray.Distance != want {
		t.Errorf("distance = %v, want world diagonal %v", ray.Distance, want)
	}
	if math.Abs(ray.Hit.X-m.w) > 1e-9 || math.Abs(ray.Hit.Y-origin.Y) > 1e-9 {
		t.Errorf("hit = %v, want border exit (%v, %v)", ray.Hit, m.w, origin.Y)
	}

	ray = c.Cast(origin, 5*math.Pi/4)
	if !ray.Missed || math.IsNaN(ray.Hit.X) || math.IsNaN(ray.Hit.Y) {
		t.Fatalf("diagonal miss produced %+v", ray)
	}
	if ray.Hit.Y > 1e-9 && ray.Hit.X > 1e-9 {
		t.Errorf("hit %v should lie on the top or left border", ray.Hit)
	}
}

func TestCastFan(t *testing.T) {
	g := grid.Default(tile)
	c := New(g)
	origin := rmath.Vec2{X: 7 * tile, Y: 6.5 * tile}
	fov := math.Pi / 3

	rays := c.CastFan(nil, origin, 0, fov, 60)
	if len(rays) != 60 {
		t.Fatalf("got %d rays, want 60", len(rays))
	}
	first := rmath.NormalizeAngle(-fov / 2)
	if math.Abs(rays[0].Angle-first) > 1e-12 {
		t.Errorf("first angle = %v, want %v", rays[0].Angle, first)
	}
	if math.Abs(rays[30].Angle) > 1e-9 && math.Abs(rays[30].Angle-rmath.TwoPi) > 1e-9 {
		t.Errorf("middle ray angle = %v, want 0", rays[30].Angle)
	}

	// Reuses the buffer.
	again := c.CastFan(rays, origin, 1, fov, 60)
	if &again[0] != &rays[0] {
		t.Error("CastFan reallocated a buffer with enough capacity")
	}
	if got := c.CastFan(rays, origin, 0, fov, 0); len(got) != 0 {
		t.Errorf("CastFan with n=0 returned %d rays", len(got))
	}
}

func TestCastSmallTiles(t *testing.T) {
	// One-cell walls at col 2 and row 0 around the open cell (1,3).
	const small = 0.5
	g, err := grid.New([]string{
		"#####",
		"#.#.#",
		"#####",
	}, small)
	if err != nil {
		t.Fatalf("grid.New: %v", err)
	}
	c := New(g)
	origin := rmath.Vec2{X: 3.5 * small, Y: 1.5 * small}

	tests := []struct {
		name     string
		angle    float64
		hit      rmath.Vec2
		vertical bool
	}{
		{"left", math.Pi, rmath.Vec2{X: 3 * small, Y: 1.5 * small}, true},
		{"up", 3 * math.Pi / 2, rmath.Vec2{X: 3.5 * small, Y: small}, false},
		{"right", 0, rmath.Vec2{X: 4 * small, Y: 1.5 * small}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := c.Cast(origin, tt.angle)
			if ray.Missed {
				t.Fatal("ray missed")
			}
			if math.Abs(ray.Hit.X-tt.hit.X) > 1e-9 || math.Abs(ray.Hit.Y-tt.hit.Y) > 1e-9 {
				t.Errorf("hit = %+v, want %+v", ray.Hit, tt.hit)
			}
			if math.Abs(ray.Distance-small/2) > 1e-9 {
				t.Errorf("distance = %v, want %v", ray.Distance, small/2)
			}
			if ray.Vertical != tt.vertical {
				t.Errorf("vertical = %v, want %v", ray.Vertical, tt.vertical)
			}
		})
	}
}

func TestNudgeStaysInCell(t *testing.T) {
	for _, tile := range []float64{0.1, 0.5, 1, 2, 32} {
		n := nudge(tile)
		if n <= 0 || n >= tile {
			t.Errorf("nudge(%v) = %v, want in (0, tile)", tile, n)
		}
	}
}
