package bodies

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Kind is the role a body plays in the system. It replaces name conventions for telling moons
// from planets.
type Kind int

const (
	Sun Kind = iota
	Planet
	Moon
)

var kindNames = [...]string{Sun: "sun", Planet: "planet", Moon: "moon"}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("kind(%d)", int(k))
	}
	return kindNames[k]
}

// ParseKind converts "sun", "planet" or "moon" to a Kind.
func ParseKind(s string) (Kind, error) {
	for i, n := range kindNames {
		if n == s {
			return Kind(i), nil
		}
	}
	return 0, fmt.Errorf("unknown kind %q", s)
}

// UnmarshalYAML lets registry files spell kinds as words.
func (k *Kind) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseKind(s)
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// MarshalYAML writes the kind as a word.
func (k Kind) MarshalYAML() (interface{}, error) {
	return k.String(), nil
}

// SpinSource selects where a body's self-rotation rate comes from.
type SpinSource string

const (
	// SpinRegistry spins the body at its AngularSpeed.
	SpinRegistry SpinSource = "registry"
	// SpinFixed spins the body at FixedSpin regardless of AngularSpeed.
	SpinFixed SpinSource = "fixed"
)

// DefaultFixedSpin is the rate the outermost bodies have always used.
const DefaultFixedSpin = 0.01

// Body is one celestial body. Orbital radii are the ellipse half-axes on X and Z; for moons they
// are measured from the parent. OrbitalSpeed is in radians per millisecond of wall time,
// AngularSpeed in radians per second.
type Body struct {
	Name         string     `yaml:"name"`
	Kind         Kind       `yaml:"kind"`
	Radius       float32    `yaml:"radius"`
	OrbitX       float32    `yaml:"orbit_x,omitempty"`
	OrbitZ       float32    `yaml:"orbit_z,omitempty"`
	AngularSpeed float32    `yaml:"angular_speed,omitempty"`
	OrbitalSpeed float64    `yaml:"orbital_speed,omitempty"`
	AxialTilt    float32    `yaml:"axial_tilt,omitempty"`
	OrbitTilt    float32    `yaml:"orbit_tilt,omitempty"`
	SpinSource   SpinSource `yaml:"spin_source,omitempty"`
	FixedSpin    float32    `yaml:"fixed_spin,omitempty"`
	BobAmplitude float32    `yaml:"bob_amplitude,omitempty"`
	BobRate      float64    `yaml:"bob_rate,omitempty"`
	Ring         bool       `yaml:"ring,omitempty"`
	Texture      string     `yaml:"texture,omitempty"`
	Color        string     `yaml:"color,omitempty"`
	ParentName   string     `yaml:"parent,omitempty"`
}

// Spin returns the self-rotation rate the animation should use for this body.
func (b *Body) Spin() float32 {
	if b.SpinSource == SpinFixed {
		return b.FixedSpin
	}
	return b.AngularSpeed
}

// BobSpeed is the out-of-plane bob's rate in radians per millisecond. Unset, it follows the
// orbit so the body stays on its tilted ring.
func (b *Body) BobSpeed() float64 {
	if b.BobRate != 0 {
		return b.BobRate
	}
	return b.OrbitalSpeed
}

// Distance is the value shown to users: the orbit's X half-axis.
func (b *Body) Distance() float32 {
	return b.OrbitX
}
