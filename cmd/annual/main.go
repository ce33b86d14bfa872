package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	phantom "github.com/sidthebuilder/Solar-Phantom"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// Year-round survival sweep: simulates every day of the year for a fixed
// design and reports the operational window.

var (
	designPath string
	latitude   float64
	outPath    string
	csvPath    string
	monteCarlo bool
	mcRuns     int
)

func init() {
	flag.StringVar(&designPath, "design", "design_specs.json", "solved design record")
	flag.Float64Var(&latitude, "lat", 20.0, "operating latitude in degrees")
	flag.StringVar(&outPath, "o", "annual_margin.png", "margin plot output")
	flag.StringVar(&csvPath, "csv", "", "optional margin CSV output")
	flag.BoolVar(&monteCarlo, "mc", false, "run the Monte Carlo robustness study on the worst day")
	flag.IntVar(&mcRuns, "runs", 1000, "Monte Carlo sample count")
}

func main() {
	flag.Parse()

	spec, err := phantom.LoadDesignSpec(designPath)
	if err != nil {
		log.Printf("%s, falling back to the reference design", err)
		spec = phantom.ReferenceDesign()
	}

	spec.Latitude = latitude

	fmt.Println("Running Year-Round Survival Analysis...")
	fmt.Printf("Configuration: %s\n", spec)
	fmt.Println("--------------------------------------------------")
	fmt.Printf("Simulating operation at %.0f degrees Latitude...\n", latitude)

	days := make([]float64, 365)
	margins := make([]float64, 365)
	worstDay, worstMargin := 1, 0.0
	for d := 1; d <= 365; d++ {
		spec.DayOfYear = d
		marginJ := phantom.NewMission(spec).Run().MinMargin()
		days[d-1] = float64(d)
		margins[d-1] = marginJ / 3.6e6 // kWh
		if d == 1 || marginJ < worstMargin {
			worstDay, worstMargin = d, marginJ
		}
	}

	fmt.Println(operationalWindow(days, margins))

	if csvPath != "" {
		if err := phantom.WriteSweepCSV(csvPath, "day_of_year", "margin_kWh", days, margins); err != nil {
			log.Fatalf("csv: %s", err)
		}
	}
	if err := plotMargins(outPath, latitude, days, margins); err != nil {
		log.Fatalf("plot: %s", err)
	}
	fmt.Printf("Margin plot written to %s\n", outPath)

	if monteCarlo {
		spec.DayOfYear = worstDay
		study := phantom.RobustnessStudy{
			Spec: spec,
			Runs: mcRuns,
			Seed: uint64(time.Now().UnixNano()),
		}
		survival, _ := study.Run()
		fmt.Printf("Monte Carlo (day %d, %d runs): %.1f%% of perturbed designs survive the night\n",
			worstDay, mcRuns, 100*survival)
	}
}

// operationalWindow formats the contiguous range of days with positive margin.
func operationalWindow(days, margins []float64) string {
	first, last := -1, -1
	for i, m := range margins {
		if m > 0 {
			if first == -1 {
				first = i
			}
			last = i
		}
	}
	if first == -1 {
		return "Operational Window: NONE (Infeasible Year-Round)"
	}
	dayDate := func(day int) string {
		return time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, day-1).Format("Jan 02")
	}
	return fmt.Sprintf("Operational Window: %s to %s", dayDate(int(days[first])), dayDate(int(days[last])))
}

func plotMargins(path string, lat float64, days, margins []float64) error {
	pts := make(plotter.XYs, len(days))
	zero := make(plotter.XYs, len(days))
	for i := range days {
		pts[i].X = days[i]
		pts[i].Y = margins[i]
		zero[i].X = days[i]
		zero[i].Y = 0
	}
	p := plot.New()
	p.Title.Text = fmt.Sprintf("Year-Round Mission Availability (Lat: %.0fN)", lat)
	p.X.Label.Text = "Day of Year"
	p.Y.Label.Text = "Energy Margin at Sunrise (kWh)"
	if err := plotutil.AddLines(p, "Margin", pts, "Empty", zero); err != nil {
		return err
	}
	return p.Save(10*vg.Inch, 6*vg.Inch, path)
}
