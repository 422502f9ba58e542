package field

import (
	"math/rand"
	"testing"
)

func testField(w, h int) *Field {
	return New(DefaultConfig(), w, h, rand.New(rand.NewSource(1)))
}

func TestDensityInvariant(t *testing.T) {
	f := testField(800, 600)

	resizes := []struct {
		name string
		w, h int
	}{
		{"Initial", 800, 600},
		{"Grow", 1920, 1080},
		{"Shrink", 400, 300},
		{"Grow again", 1024, 768},
	}

	for _, tt := range resizes {
		t.Run(tt.name, func(t *testing.T) {
			if tt.name != "Initial" {
				f.Resize(tt.w, tt.h)
			}
			want := tt.w * tt.h / DefaultConfig().Density
			if got := f.Count(); got != want {
				t.Errorf("count after %dx%d = %d, want %d", tt.w, tt.h, got, want)
			}
		})
	}
}

func TestShrinkRemovesTrailingParticles(t *testing.T) {
	f := testField(1920, 1080)
	before := make([]*Particle, f.Count())
	copy(before, f.particles)

	f.Resize(400, 300)
	target := 400 * 300 / DefaultConfig().Density
	if f.Count() != target {
		t.Fatalf("count after shrink = %d, want %d", f.Count(), target)
	}
	for i, p := range f.particles {
		if p != before[i] {
			t.Errorf("particle %d was replaced during shrink", i)
		}
	}
}

func TestGrowKeepsExistingParticles(t *testing.T) {
	f := testField(800, 600)
	before := make([]*Particle, f.Count())
	copy(before, f.particles)

	f.Resize(1920, 1080)
	for i, p := range before {
		if f.particles[i] != p {
			t.Errorf("particle %d was replaced during grow", i)
		}
	}
}

func TestAdjustCountIdempotent(t *testing.T) {
	f := testField(800, 600)
	before := make([]*Particle, f.Count())
	copy(before, f.particles)

	f.Resize(800, 600)
	f.Resize(800, 600)

	if f.Count() != len(before) {
		t.Fatalf("count changed from %d to %d with unchanged bounds", len(before), f.Count())
	}
	for i, p := range f.particles {
		if p != before[i] {
			t.Errorf("particle %d was replaced with unchanged bounds", i)
		}
	}
}

func TestDegenerateBounds(t *testing.T) {
	tests := []struct {
		name string
		w, h int
	}{
		{"Zero width", 0, 600},
		{"Zero height", 800, 0},
		{"Negative width", -800, 600},
		{"Tiny surface", 10, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := testField(800, 600)
			f.Resize(tt.w, tt.h)
			want := tt.w * tt.h / DefaultConfig().Density
			if want < 0 {
				want = 0
			}
			if got := f.Count(); got != want {
				t.Errorf("count = %d, want %d", got, want)
			}
		})
	}
}

func TestGeneratedParticlesWellFormed(t *testing.T) {
	cfg := DefaultConfig()
	f := testField(1920, 1080)

	for i, p := range f.particles {
		if p.X < 0 || p.X > 1920 || p.Y < 0 || p.Y > 1080 {
			t.Errorf("particle %d spawned off-surface at (%v, %v)", i, p.X, p.Y)
		}
		if p.VX < -1 || p.VX > 1 || p.VY < -1 || p.VY > 1 {
			t.Errorf("particle %d velocity (%v, %v) outside [-1, 1]", i, p.VX, p.VY)
		}
		if p.Size < 1 || p.Size > cfg.MaxSize {
			t.Errorf("particle %d size %v outside [1, %v]", i, p.Size, cfg.MaxSize)
		}
		wantAlpha := uint8(255 * (1 - p.Size/cfg.MaxSize))
		if p.Color.A != wantAlpha {
			t.Errorf("particle %d alpha = %d, want %d for size %v", i, p.Color.A, wantAlpha, p.Size)
		}
	}
}

func TestStepClearsThenDrawsEveryParticle(t *testing.T) {
	f := testField(800, 600)
	rec := &recorder{}
	f.Step(rec)

	if rec.clears != 1 {
		t.Errorf("expected 1 clear, got %d", rec.clears)
	}
	if len(rec.circles) != f.Count() {
		t.Errorf("drew %d circles, want %d", len(rec.circles), f.Count())
	}
	if len(rec.lines) != 0 {
		t.Errorf("connection pass ran while disabled: %d lines", len(rec.lines))
	}
}

func TestStepKeepsParticlesNearBounds(t *testing.T) {
	const w, h = 800, 600
	f := testField(w, h)
	f.SetPointer(w/2, h/2)

	for frame := 0; frame < 1000; frame++ {
		f.Step(&recorder{})
		for i, p := range f.particles {
			if p.X < -1 || p.X > w+1 || p.Y < -1 || p.Y > h+1 {
				t.Fatalf("particle %d escaped to (%v, %v) on frame %d", i, p.X, p.Y, frame)
			}
		}
	}
}

func TestPointerStateTransitions(t *testing.T) {
	f := testField(800, 600)

	f.SetPointer(120, 240)
	if got := f.pointer; !got.Present || got.X != 120 || got.Y != 240 {
		t.Errorf("pointer after SetPointer = %+v", got)
	}

	f.ClearPointer()
	if f.pointer.Present {
		t.Error("pointer still present after ClearPointer")
	}
}
