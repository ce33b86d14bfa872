package phantom

import "fmt"

// WingSection is one spanwise station of a lifting surface.
type WingSection struct {
	Name    string
	YLE     float64 // spanwise leading edge position, m
	ZLE     float64 // vertical leading edge position, m (vertical surfaces)
	Chord   float64 // m
	Twist   float64 // deg, washout negative
	Airfoil string
}

// Wing is a lifting surface defined root to tip.
type Wing struct {
	Name      string
	XLE       float64 // longitudinal position of the root leading edge, m
	Symmetric bool    // mirrored across the centerline
	Vertical  bool    // sections stacked in z instead of y
	Sections  []WingSection
}

// Airplane is the parametric airframe: main wing plus empennage.
type Airplane struct {
	Name  string
	Wings []Wing
}

// Span returns the tip-to-tip span of the surface, in m.
func (w Wing) Span() float64 {
	if len(w.Sections) == 0 {
		return 0
	}
	last := w.Sections[len(w.Sections)-1]
	half := last.YLE
	if w.Vertical {
		half = last.ZLE
	}
	if w.Symmetric {
		return 2 * half
	}
	return half
}

// Area returns the planform area by trapezoidal panels, in m^2.
func (w Wing) Area() float64 {
	var area float64
	for i := 1; i < len(w.Sections); i++ {
		in, out := w.Sections[i-1], w.Sections[i]
		width := out.YLE - in.YLE
		if w.Vertical {
			width = out.ZLE - in.ZLE
		}
		area += 0.5 * (in.Chord + out.Chord) * width
	}
	if w.Symmetric {
		area *= 2
	}
	return area
}

// AspectRatio returns span^2 / area.
func (w Wing) AspectRatio() float64 {
	s := w.Area()
	if s == 0 {
		return 0
	}
	b := w.Span()
	return b * b / s
}

func (w Wing) String() string {
	return fmt.Sprintf("%s: b=%.1fm S=%.1fm^2 AR=%.1f", w.Name, w.Span(), w.Area(), w.AspectRatio())
}

// Outline returns the top-view outline of the starboard half surface as
// (x, y) pairs, leading edge root to tip then trailing edge tip to root.
func (w Wing) Outline() (xs, ys []float64) {
	n := len(w.Sections)
	for _, s := range w.Sections {
		xs = append(xs, w.XLE)
		ys = append(ys, spanCoord(w, s))
	}
	for i := n - 1; i >= 0; i-- {
		s := w.Sections[i]
		xs = append(xs, w.XLE+s.Chord)
		ys = append(ys, spanCoord(w, s))
	}
	// Close the loop.
	xs = append(xs, xs[0])
	ys = append(ys, ys[0])
	return xs, ys
}

func spanCoord(w Wing, s WingSection) float64 {
	if w.Vertical {
		return s.ZLE
	}
	return s.YLE
}

// PhantomAirplane builds the Solar Phantom airframe scaled to the given
// wingspan and aspect ratio. The baseline shape is a three-station tapered
// wing with washout at the tip, plus conventional tail surfaces.
func PhantomAirplane(wingspan, aspectRatio float64) Airplane {
	// Baseline sections are drawn for a 12 m span; scale spans linearly and
	// chords so the requested area b^2/AR is preserved.
	spanScale := wingspan / 12.0
	baseArea := 2 * (0.5*(1.2+1.0)*2.5 + 0.5*(1.0+0.6)*3.5) // baseline planform, m^2
	chordScale := (wingspan * wingspan / aspectRatio) / (baseArea * spanScale)

	main := Wing{
		Name:      "Main Wing",
		XLE:       0,
		Symmetric: true,
		Sections: []WingSection{
			{Name: "Root", YLE: 0, Chord: 1.2 * chordScale, Twist: 0, Airfoil: "naca4412"},
			{Name: "Mid", YLE: 2.5 * spanScale, Chord: 1.0 * chordScale, Twist: 0, Airfoil: "naca4412"},
			{Name: "Tip", YLE: 6.0 * spanScale, Chord: 0.6 * chordScale, Twist: -2, Airfoil: "naca4412"},
		},
	}
	hstab := Wing{
		Name:      "Horizontal Stabilizer",
		XLE:       5.5 * spanScale,
		Symmetric: true,
		Sections: []WingSection{
			{Name: "Root", YLE: 0, Chord: 0.6 * chordScale, Airfoil: "naca0012"},
			{Name: "Tip", YLE: 1.5 * spanScale, Chord: 0.4 * chordScale, Airfoil: "naca0012"},
		},
	}
	vstab := Wing{
		Name:     "Vertical Stabilizer",
		XLE:      5.5 * spanScale,
		Vertical: true,
		Sections: []WingSection{
			{Name: "Root", ZLE: 0, Chord: 0.7 * chordScale, Airfoil: "naca0012"},
			{Name: "Tip", ZLE: 1.0 * spanScale, Chord: 0.4 * chordScale, Airfoil: "naca0012"},
		},
	}
	return Airplane{Name: "Solar Phantom", Wings: []Wing{main, hstab, vstab}}
}

// MainWing returns the first lifting surface.
func (a Airplane) MainWing() Wing {
	return a.Wings[0]
}
