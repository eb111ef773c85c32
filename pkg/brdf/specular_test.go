package brdf

import (
	"math"
	"testing"

	"github.com/jmblake/go-pathtracer/pkg/core"
)

func TestMirror(t *testing.T) {
	tests := []struct {
		name     string
		normal   core.Vec3
		outgoing core.Vec3
		expected core.Vec3
	}{
		{
			name:     "head-on",
			normal:   core.NewVec3(0, 0, 1),
			outgoing: core.NewVec3(0, 0, 1),
			expected: core.NewVec3(0, 0, 1),
		},
		{
			name:     "45 degrees",
			normal:   core.NewVec3(0, 1, 0),
			outgoing: core.NewVec3(1, 1, 0).Normalize(),
			expected: core.NewVec3(-1, 1, 0).Normalize(),
		},
		{
			name:     "grazing",
			normal:   core.NewVec3(0, 0, 1),
			outgoing: core.NewVec3(0.99, 0, 0.141).Normalize(),
			expected: core.NewVec3(-0.99, 0, 0.141).Normalize(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Mirror(tt.normal, tt.outgoing)
			if got.Subtract(tt.expected).Length() > 1e-12 {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestSpecular_Sample_ReturnsMirrorDirection(t *testing.T) {
	specular := NewSpecular(core.NewVec3(0.999, 0.999, 0.999))
	sampler := core.NewSeededSampler(42)

	normal := core.NewVec3(0, 1, 0)
	outgoing := core.NewVec3(1, 2, -0.5).Normalize()

	incoming, pdf := specular.Sample(normal, outgoing, sampler)

	if incoming != Mirror(normal, outgoing) {
		t.Errorf("Sample should return exactly the mirror direction, got %v", incoming)
	}
	if pdf != 1.0 {
		t.Errorf("Specular pdf should be the nominal 1.0, got %v", pdf)
	}
}

func TestSpecular_Evaluate_AtMirrorDirection(t *testing.T) {
	reflectance := core.NewVec3(0.8, 0.9, 1.0)
	specular := NewSpecular(reflectance)
	sampler := core.NewSeededSampler(42)

	normal := core.NewVec3(0, 0, 1)
	outgoing := core.NewVec3(0.5, 0.2, 1).Normalize()

	incoming, _ := specular.Sample(normal, outgoing, sampler)
	got := specular.Evaluate(normal, outgoing, incoming)

	// Evaluate scales by 1/cos(θ) so the later cosine multiply cancels
	cosTheta := normal.Dot(incoming)
	expected := reflectance.Multiply(1.0 / cosTheta)
	if got.Subtract(expected).Length() > 1e-12 {
		t.Errorf("Expected %v, got %v", expected, got)
	}
}

func TestSpecular_Evaluate_OffMirrorDirection(t *testing.T) {
	specular := NewSpecular(core.NewVec3(0.999, 0.999, 0.999))

	normal := core.NewVec3(0, 0, 1)
	outgoing := core.NewVec3(0, 0, 1)

	offMirror := []core.Vec3{
		core.NewVec3(1, 0, 1).Normalize(),
		core.NewVec3(0, 1, 0.1).Normalize(),
		core.NewVec3(0, 0, -1),
	}

	for _, incoming := range offMirror {
		if got := specular.Evaluate(normal, outgoing, incoming); got != (core.Vec3{}) {
			t.Errorf("Evaluate(%v) should be black, got %v", incoming, got)
		}
	}
}

// The mirror check uses a squared-distance tolerance rather than bit-exact
// equality so rounding between Sample and Evaluate cannot zero out a valid
// path. Directions within the tolerance must evaluate nonzero, directions
// clearly outside it must evaluate to black.
func TestSpecular_Evaluate_ToleranceBounds(t *testing.T) {
	specular := NewSpecular(core.NewVec3(0.9, 0.9, 0.9))

	normal := core.NewVec3(0, 0, 1)
	outgoing := core.NewVec3(0.3, 0, 1).Normalize()
	mirror := Mirror(normal, outgoing)

	// Perturbation well inside the tolerance (1e-7 squared = 1e-14)
	inside := mirror.Add(core.NewVec3(1e-7, 0, 0))
	if got := specular.Evaluate(normal, outgoing, inside); got == (core.Vec3{}) {
		t.Error("Direction within tolerance should evaluate nonzero")
	}

	// Perturbation well outside the tolerance (1e-5 squared = 1e-10)
	outside := mirror.Add(core.NewVec3(1e-5, 0, 0))
	if got := specular.Evaluate(normal, outgoing, outside); got != (core.Vec3{}) {
		t.Errorf("Direction outside tolerance should be black, got %v", got)
	}

	if math.Sqrt(mirrorToleranceSq) >= 1e-5 {
		t.Error("Mirror tolerance should stay far below any real direction separation")
	}
}
