package bodies

import (
	"errors"
	"fmt"

	"github.com/jinzhu/copier"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid registry")

// Registry is the ordered set of bodies the scene is built from. Moons reference their parent by
// name; the registry resolves those links once in Index.
type Registry struct {
	Bodies []*Body `yaml:"bodies"`

	byName map[string]*Body
}

// New returns a registry over bodies, validated and indexed.
func New(bodies []*Body) (*Registry, error) {
	r := &Registry{Bodies: bodies}
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return r, nil
}

// Validate checks names are unique, there is one sun, moons have exactly one planet parent and
// orbiting bodies have positive radii. It also rebuilds the name index.
func (r *Registry) Validate() error {
	r.byName = make(map[string]*Body, len(r.Bodies))
	suns := 0
	for i, b := range r.Bodies {
		if b == nil {
			return fmt.Errorf("%w: body %d is empty", ErrInvalid, i)
		}
		if b.Name == "" {
			return fmt.Errorf("%w: body %d has no name", ErrInvalid, i)
		}
		if _, dup := r.byName[b.Name]; dup {
			return fmt.Errorf("%w: duplicate body %q", ErrInvalid, b.Name)
		}
		r.byName[b.Name] = b
		if b.Radius <= 0 {
			return fmt.Errorf("%w: %s: radius must be positive", ErrInvalid, b.Name)
		}
		switch b.SpinSource {
		case "", SpinRegistry, SpinFixed:
		default:
			return fmt.Errorf("%w: %s: unknown spin source %q", ErrInvalid, b.Name, b.SpinSource)
		}
		if b.Kind == Sun {
			suns++
		}
	}
	if suns != 1 {
		return fmt.Errorf("%w: want exactly one sun, have %d", ErrInvalid, suns)
	}
	for _, b := range r.Bodies {
		switch b.Kind {
		case Sun, Planet:
			if b.ParentName != "" {
				return fmt.Errorf("%w: %s: only moons have a parent", ErrInvalid, b.Name)
			}
		case Moon:
			p, ok := r.byName[b.ParentName]
			if !ok {
				return fmt.Errorf("%w: moon %s: parent %q not found", ErrInvalid, b.Name, b.ParentName)
			}
			if p.Kind != Planet {
				return fmt.Errorf("%w: moon %s: parent %s is a %s", ErrInvalid, b.Name, p.Name, p.Kind)
			}
		default:
			return fmt.Errorf("%w: %s: %s", ErrInvalid, b.Name, b.Kind)
		}
		if b.Kind != Sun && (b.OrbitX <= 0 || b.OrbitZ <= 0) {
			return fmt.Errorf("%w: %s: orbital radii must be positive", ErrInvalid, b.Name)
		}
	}
	return nil
}

// ByName returns the body with the given name.
func (r *Registry) ByName(name string) (*Body, bool) {
	b, ok := r.byName[name]
	return b, ok
}

// Parent returns a moon's planet, or nil for suns and planets.
func (r *Registry) Parent(b *Body) *Body {
	if b.Kind != Moon {
		return nil
	}
	return r.byName[b.ParentName]
}

// Sun returns the central body.
func (r *Registry) Sun() *Body {
	for _, b := range r.Bodies {
		if b.Kind == Sun {
			return b
		}
	}
	return nil
}

// Planets returns planets in registry order.
func (r *Registry) Planets() []*Body {
	return r.ofKind(Planet)
}

// Moons returns moons in registry order.
func (r *Registry) Moons() []*Body {
	return r.ofKind(Moon)
}

// MoonsOf returns the moons orbiting planet.
func (r *Registry) MoonsOf(planet *Body) []*Body {
	var out []*Body
	for _, b := range r.Bodies {
		if b.Kind == Moon && b.ParentName == planet.Name {
			out = append(out, b)
		}
	}
	return out
}

func (r *Registry) ofKind(k Kind) []*Body {
	var out []*Body
	for _, b := range r.Bodies {
		if b.Kind == k {
			out = append(out, b)
		}
	}
	return out
}

// Clone returns a deep copy so separate scenes never share mutable body data.
func (r *Registry) Clone() (*Registry, error) {
	out := &Registry{}
	if err := copier.CopyWithOption(out, r, copier.Option{DeepCopy: true}); err != nil {
		return nil, fmt.Errorf("bodies: clone: %w", err)
	}
	if err := out.Validate(); err != nil {
		return nil, err
	}
	return out, nil
}
