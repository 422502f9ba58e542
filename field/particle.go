package field

import (
	"image/color"
	"math"
)

// Particle is a single drifting particle.
type Particle struct {
	X, Y   float64 // Position
	VX, VY float64 // Velocity, pixels per frame
	Size   float64 // Draw radius
	Color  color.NRGBA
}

// Pointer is the tracked cursor position, or absent when the cursor is
// outside the surface.
type Pointer struct {
	X, Y    float64
	Present bool
}

// Update advances the particle by one frame and draws it. The order
// matters: edge reflection first, then pointer repulsion, then the
// position integration that applies the (possibly flipped) velocity.
func (p *Particle) Update(ptr Pointer, w, h int, repulsion float64, c Canvas) {
	fw, fh := float64(w), float64(h)

	// Bounce off the surface edges. Both axes are tested every frame, so
	// a particle sitting in a corner can flip both components at once.
	if p.X < 0 || p.X > fw {
		p.VX = -p.VX
	}
	if p.Y < 0 || p.Y > fh {
		p.VY = -p.VY
	}

	// Pointer repulsion is a hard teleport: a particle inside the
	// repulsion circle snaps to its edge along the pointer-to-particle
	// angle, clamped back onto the surface.
	if ptr.Present {
		dx := p.X - ptr.X
		dy := p.Y - ptr.Y
		if dx*dx+dy*dy < repulsion*repulsion {
			angle := math.Atan2(dy, dx)
			p.X = clamp(ptr.X+repulsion*math.Cos(angle), 0, fw)
			p.Y = clamp(ptr.Y+repulsion*math.Sin(angle), 0, fh)
		}
	}

	// Unit time step, one frame per tick.
	p.X += p.VX
	p.Y += p.VY

	p.draw(c)
}

func (p *Particle) draw(c Canvas) {
	c.FillCircle(p.X, p.Y, p.Size, p.Color)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
