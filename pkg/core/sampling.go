package core

import (
	cryptorand "crypto/rand"
	"encoding/binary"
	"math"
	"math/rand"
)

// Sampler provides uniform random values for rendering algorithms.
// Can be swapped out for deterministic testing.
type Sampler interface {
	// Get1D returns a uniform value in [0, 1)
	Get1D() float64
	// Get2D returns two independent uniform values in [0, 1)
	Get2D() (float64, float64)
}

// RandomSampler wraps a standard Go random generator. Each render task owns
// its own instance; instances are never shared between goroutines.
type RandomSampler struct {
	random *rand.Rand
}

// NewRandomSampler creates a sampler from a Go random generator
func NewRandomSampler(random *rand.Rand) *RandomSampler {
	return &RandomSampler{random: random}
}

// NewSeededSampler creates an independent sampler from a seed
func NewSeededSampler(seed int64) *RandomSampler {
	return &RandomSampler{random: rand.New(rand.NewSource(seed))}
}

// Get1D returns a uniform value in [0, 1)
func (r *RandomSampler) Get1D() float64 {
	return r.random.Float64()
}

// Get2D returns two independent uniform values in [0, 1)
func (r *RandomSampler) Get2D() (float64, float64) {
	return r.random.Float64(), r.random.Float64()
}

// EntropySeed draws a seed from the operating system's entropy source.
// Renders that need reproducibility pass an explicit seed instead.
func EntropySeed() int64 {
	var buf [8]byte
	if _, err := cryptorand.Read(buf[:]); err != nil {
		// The entropy source is documented to never fail on supported
		// platforms; a zero seed keeps the render going regardless.
		return 0
	}
	return int64(binary.LittleEndian.Uint64(buf[:]))
}

// OrthonormalBasis builds a right-handed orthonormal frame {u, v, w} with
// w = n. The helper axis is chosen away from n to keep the cross products
// well conditioned.
func OrthonormalBasis(n Vec3) (u, v, w Vec3) {
	w = n
	axis := NewVec3(1, 0, 0)
	if math.Abs(w.X) > 0.1 {
		axis = NewVec3(0, 1, 0)
	}
	u = axis.Cross(w).Normalize()
	v = w.Cross(u)
	return u, v, w
}

// SampleCosineHemisphere maps two uniform values to a cosine-weighted
// direction on the hemisphere around normal. The density of the returned
// direction is cos(θ)/π.
func SampleCosineHemisphere(normal Vec3, u1, u2 float64) Vec3 {
	z := math.Sqrt(u1)
	r := math.Sqrt(1.0 - z*z)
	phi := 2.0 * math.Pi * u2

	x := r * math.Cos(phi)
	y := r * math.Sin(phi)

	u, v, w := OrthonormalBasis(normal)
	return u.Multiply(x).Add(v.Multiply(y)).Add(w.Multiply(z)).Normalize()
}

// SampleUniformSphere maps two uniform values to a uniform direction on the
// unit sphere (z uniform in [-1, 1], azimuth uniform in [0, 2π))
func SampleUniformSphere(u1, u2 float64) Vec3 {
	z := 2.0*u1 - 1.0
	r := math.Sqrt(math.Max(0, 1.0-z*z))
	phi := 2.0 * math.Pi * u2
	return NewVec3(r*math.Cos(phi), r*math.Sin(phi), z)
}

// TentFilter maps a uniform value in [0, 1) to a triangle-filter offset in
// (-1, 1) with its peak at zero, used for sub-pixel jitter
func TentFilter(u float64) float64 {
	r := 2.0 * u
	if r < 1.0 {
		return math.Sqrt(r) - 1.0
	}
	return 1.0 - math.Sqrt(2.0-r)
}
