package bodies

import "math"

// Out-of-plane amplitudes for the two outermost bodies. Their rings are tilted to match.
const (
	neptuneBob = 10
	plutoBob   = 30
)

// Default returns the built-in solar system: the sun, nine planets and four moons.
func Default() *Registry {
	planets := []*Body{
		planet("Merkur", 1, 60, 55, 5, 0.0005, "mercury.jpg", "#b5b5b5"),
		planet("Venera", 2, 100, 90, 5, 0.0004, "venus.jpg", "#e8cda2"),
		planet("Zemlja", 3, 150, 150, 5, 0.0003, "earth.jpg", "#2e86ab"),
		planet("Mars", 2.5, 220, 210, 5, 0.00025, "mars.jpg", "#c1440e"),
		planet("Jupiter", 12, 300, 280, 2, 0.0001, "jupiter.jpg", "#d8ca9d"),
		planet("Saturn", 10, 400, 380, 1, 0.00008, "saturn.jpg", "#e3c16f"),
		planet("Uranus", 8, 500, 480, 0.5, 0.00005, "uranus.jpg", "#a6e1e5"),
		planet("Neptun", 7, 600, 590, 0.5, 0.00002, "neptune.jpg", "#4b70dd"),
		planet("Pluton", 4, 700, 680, 0.5, 0.00002, "pluto.jpg", "#c9b49a"),
	}
	for _, p := range planets[7:] {
		p.SpinSource = SpinFixed
		p.FixedSpin = DefaultFixedSpin
	}
	planets[7].BobAmplitude = neptuneBob
	planets[7].OrbitTilt = float32(math.Atan2(neptuneBob, 590))
	planets[8].BobAmplitude = plutoBob
	planets[8].OrbitTilt = float32(math.Atan2(plutoBob, 680))

	all := []*Body{{
		Name:    "Sunce",
		Kind:    Sun,
		Radius:  50,
		Texture: "sun.jpg",
		Color:   "#fdb813",
	}}
	all = append(all, planets...)
	all = append(all,
		moon("Mesec", "Zemlja", 0.27, 10, 0.001, "moon.jpg", "#c8c8c8", true),
		moon("Fobos", "Mars", 0.15, 5, 0.002, "phobos.jpg", "#8c7b6b", false),
		moon("Deimos", "Mars", 0.12, 8, 0.0015, "deimos.jpg", "#a39482", false),
		moon("Titan", "Saturn", 0.4, 20, 0.0008, "titan.jpg", "#d9a441", false),
	)
	r, err := New(all)
	if err != nil {
		panic("bodies: default registry: " + err.Error())
	}
	return r
}

func planet(name string, radius, a, b, spin float32, speed float64, texture, color string) *Body {
	return &Body{
		Name:         name,
		Kind:         Planet,
		Radius:       radius,
		OrbitX:       a,
		OrbitZ:       b,
		AngularSpeed: spin,
		OrbitalSpeed: speed,
		SpinSource:   SpinRegistry,
		Ring:         true,
		Texture:      texture,
		Color:        color,
	}
}

func moon(name, parent string, radius, distance float32, speed float64, texture, color string, ring bool) *Body {
	return &Body{
		Name:         name,
		Kind:         Moon,
		Radius:       radius,
		OrbitX:       distance,
		OrbitZ:       distance,
		AngularSpeed: 1,
		OrbitalSpeed: speed,
		SpinSource:   SpinRegistry,
		Ring:         ring,
		Texture:      texture,
		Color:        color,
		ParentName:   parent,
	}
}
