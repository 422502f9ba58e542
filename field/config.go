package field

// Config holds the field's tunables. All values are positive; the defaults
// match the ones the field was designed around.
type Config struct {
	// Density is the surface area, in square pixels, allotted to each
	// particle. Larger values mean sparser fields.
	Density int
	// ConnectDistance is the maximum distance at which the connection
	// pass links two particles.
	ConnectDistance float64
	// RepulsionRadius is the distance within which a particle is displaced
	// away from the pointer.
	RepulsionRadius float64
	// MaxSize is the largest particle radius the generator produces.
	MaxSize float64
}

// DefaultConfig returns the standard tuning.
func DefaultConfig() Config {
	return Config{
		Density:         25000,
		ConnectDistance: 150,
		RepulsionRadius: 200,
		MaxSize:         10,
	}
}
