package field

import (
	"image/color"
	"math/rand"

	"github.com/crazy3lf/colorconv"
)

var background = color.NRGBA{R: 10, G: 12, B: 24, A: 255}

// Field owns a collection of particles and keeps its size proportional to
// the surface area. All mutation happens on the host's frame goroutine.
type Field struct {
	cfg       Config
	particles []*Particle
	width     int
	height    int
	pointer   Pointer
	rng       *rand.Rand

	// ShowConnections enables the proximity line pass. Off by default.
	ShowConnections bool
}

// New creates a field sized for the given surface and fills it to the
// configured density.
func New(cfg Config, w, h int, rng *rand.Rand) *Field {
	f := &Field{
		cfg:    cfg,
		width:  w,
		height: h,
		rng:    rng,
	}
	f.adjustCount()
	return f
}

// Step runs one animation frame: clear the surface, then update and draw
// every particle, then optionally the connection pass. The pointer state
// and bounds are read once and passed by value into each update.
func (f *Field) Step(c Canvas) {
	c.Clear(background)
	ptr := f.pointer
	for _, p := range f.particles {
		p.Update(ptr, f.width, f.height, f.cfg.RepulsionRadius, c)
	}
	if f.ShowConnections {
		connect(c, f.particles, f.cfg.ConnectDistance)
	}
}

// SetPointer marks the pointer present at (x, y).
func (f *Field) SetPointer(x, y float64) {
	f.pointer = Pointer{X: x, Y: y, Present: true}
}

// ClearPointer marks the pointer absent.
func (f *Field) ClearPointer() {
	f.pointer = Pointer{}
}

// Resize updates the surface bounds and re-establishes the density
// invariant.
func (f *Field) Resize(w, h int) {
	f.width = w
	f.height = h
	f.adjustCount()
}

// Count reports the current particle count.
func (f *Field) Count() int {
	return len(f.particles)
}

// adjustCount grows or shrinks the collection so that exactly
// width*height/Density particles remain. Growth appends fresh random
// particles; shrinking truncates, dropping the trailing surplus while the
// earlier particles keep their identity.
func (f *Field) adjustCount() {
	target := f.width * f.height / f.cfg.Density
	if target < 0 {
		target = 0
	}
	if target <= len(f.particles) {
		f.particles = f.particles[:target]
		return
	}
	for i := len(f.particles); i < target; i++ {
		f.particles = append(f.particles, f.newParticle())
	}
}

// newParticle generates a particle with uniform random position over the
// surface, velocity components in [-1, 1], size in [1, MaxSize], and a
// random hue whose alpha fades with size so large particles render faint.
func (f *Field) newParticle() *Particle {
	size := 1 + f.rng.Float64()*(f.cfg.MaxSize-1)
	r, g, b, _ := colorconv.HSVToRGB(f.rng.Float64()*360, 0.6+0.4*f.rng.Float64(), 1)
	return &Particle{
		X:    f.rng.Float64() * float64(f.width),
		Y:    f.rng.Float64() * float64(f.height),
		VX:   f.rng.Float64()*2 - 1,
		VY:   f.rng.Float64()*2 - 1,
		Size: size,
		Color: color.NRGBA{
			R: r,
			G: g,
			B: b,
			A: uint8(255 * (1 - size/f.cfg.MaxSize)),
		},
	}
}
