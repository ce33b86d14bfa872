package main

import (
	"flag"
	"fmt"
	"log"

	phantom "github.com/sidthebuilder/Solar-Phantom"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// Renders the top view of the solved airframe.

var (
	designPath string
	outPath    string
	csvPath    string
)

func init() {
	flag.StringVar(&designPath, "design", "design_specs.json", "solved design record")
	flag.StringVar(&outPath, "o", "planform.png", "planform plot output")
	flag.StringVar(&csvPath, "csv", "", "optional planform outline CSV output")
}

func main() {
	flag.Parse()

	spec, err := phantom.LoadDesignSpec(designPath)
	if err != nil {
		log.Printf("%s, falling back to the reference design", err)
		spec = phantom.ReferenceDesign()
	}

	airplane := phantom.PhantomAirplane(spec.Wingspan, spec.AspectRatio)
	fmt.Printf("Drawing %s:\n", airplane.Name)
	for _, w := range airplane.Wings {
		fmt.Printf("  %s\n", w)
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s Planform (b=%.1fm, AR=%.1f)", airplane.Name, spec.Wingspan, spec.AspectRatio)
	p.X.Label.Text = "x (m)"
	p.Y.Label.Text = "y (m)"

	var args []interface{}
	for _, w := range airplane.Wings {
		xs, ys := w.Outline()
		pts := make(plotter.XYs, len(xs))
		for i := range xs {
			// Plot span along the horizontal axis, chordwise vertically.
			pts[i].X = ys[i]
			pts[i].Y = -xs[i]
		}
		args = append(args, w.Name, pts)
		if w.Symmetric {
			mirror := make(plotter.XYs, len(xs))
			for i := range xs {
				mirror[i].X = -ys[i]
				mirror[i].Y = -xs[i]
			}
			args = append(args, w.Name+" (port)", mirror)
		}
	}
	if err := plotutil.AddLines(p, args...); err != nil {
		log.Fatalf("plotting failed: %v", err)
	}
	if err := p.Save(14*vg.Inch, 8*vg.Inch, outPath); err != nil {
		log.Fatalf("saving plot: %v", err)
	}
	fmt.Printf("Planform written to %s\n", outPath)

	if csvPath != "" {
		xs, ys := airplane.MainWing().Outline()
		if err := phantom.WriteSweepCSV(csvPath, "x_m", "y_m", xs, ys); err != nil {
			log.Fatalf("csv: %v", err)
		}
		fmt.Printf("Outline written to %s\n", csvPath)
	}
}
