package phantom

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"
)

/* Handles all on-disk artifacts: the solved design record, time-series CSV
exports and the Markdown mission report. */

// Save writes the design record as indented JSON, the handoff artifact
// between the sizer and the analysis tools.
func (d DesignSpec) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "    ")
	return enc.Encode(d)
}

// LoadDesignSpec reads a design record written by Save.
func LoadDesignSpec(path string) (DesignSpec, error) {
	f, err := os.Open(path)
	if err != nil {
		return DesignSpec{}, err
	}
	defer f.Close()
	var d DesignSpec
	if err := json.NewDecoder(f).Decode(&d); err != nil {
		return DesignSpec{}, fmt.Errorf("%s: %s", path, err)
	}
	return d, nil
}

// WriteProfileCSV exports a simulated battery history as
// time(s), energy(J), powerIn(W) rows.
func WriteProfileCSV(path string, p MissionProfile) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	w := csv.NewWriter(f)
	if err := w.Write([]string{"time_s", "energy_J", "power_in_W"}); err != nil {
		return err
	}
	for i := range p.Time {
		row := []string{
			strconv.FormatFloat(p.Time[i], 'f', 1, 64),
			strconv.FormatFloat(p.Energy[i], 'f', 1, 64),
			strconv.FormatFloat(p.PowerIn[i], 'f', 1, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// WriteSweepCSV exports paired sweep results (e.g. day vs margin) as CSV.
func WriteSweepCSV(path, xName, yName string, xs, ys []float64) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	w := csv.NewWriter(f)
	if err := w.Write([]string{xName, yName}); err != nil {
		return err
	}
	for i := range xs {
		row := []string{
			strconv.FormatFloat(xs[i], 'f', 4, 64),
			strconv.FormatFloat(ys[i], 'f', 4, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// WriteReport writes the Markdown mission report for a solved design.
func WriteReport(path string, d DesignSpec) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	fmt.Fprintf(f, "# Solar Phantom Simulation Report\n\n")
	fmt.Fprintf(f, "**Date**: %s\n\n", time.Now().Format("2006-01-02 15:04"))
	fmt.Fprintf(f, "## 1. Mission Parameters\n")
	fmt.Fprintf(f, "- **Target Latitude**: %.0f deg N\n", d.Latitude)
	fmt.Fprintf(f, "- **Payload To Carry**: %.1f kg\n\n", d.PayloadMass)
	fmt.Fprintf(f, "## 2. Optimized Aircraft Design\n")
	fmt.Fprintf(f, "- **Wingspan**: %.2f m\n", d.Wingspan)
	fmt.Fprintf(f, "- **Total Weight**: %.2f kg\n", d.TotalMass)
	fmt.Fprintf(f, "- **Battery Mass**: %.2f kg\n", d.BatteryMass)
	fmt.Fprintf(f, "- **Cruise Speed**: %.2f m/s\n\n", d.Velocity)
	fmt.Fprintf(f, "## 3. Feasibility\n")
	fmt.Fprintf(f, "**VERDICT**: PERPETUAL FLIGHT POSSIBLE\n")
	fmt.Fprintf(f, "The design successfully balances solar collection with power consumption for 24-hour survival.\n")
	return nil
}
