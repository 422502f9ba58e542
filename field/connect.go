package field

import (
	"image/color"
	"math"
	"sort"
)

// connect draws a line between every pair of particles closer than maxDist,
// with opacity falling off linearly to zero at the threshold. The scan
// works on a copy sorted by X so that once a pair is too far apart in X
// alone, all later candidates for that particle can be skipped.
func connect(c Canvas, particles []*Particle, maxDist float64) {
	sorted := make([]*Particle, len(particles))
	copy(sorted, particles)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].X < sorted[j].X })

	for i, p := range sorted {
		for _, q := range sorted[i+1:] {
			if q.X-p.X > maxDist {
				break
			}
			dist := math.Hypot(q.X-p.X, q.Y-p.Y)
			if dist >= maxDist {
				continue
			}
			alpha := uint8(255 * (1 - dist/maxDist))
			c.StrokeLine(p.X, p.Y, q.X, q.Y, 1, color.NRGBA{R: 170, G: 190, B: 255, A: alpha})
		}
	}
}
