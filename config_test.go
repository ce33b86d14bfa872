package phantom

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadScenario(t *testing.T) {
	dir := t.TempDir()
	body := `[mission]
name = "High Arctic Relay"
payload = 2.5
latitude = 55.0
battery = 450.0
day = 200
`
	path := filepath.Join(dir, "arctic.toml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	s, err := LoadScenario(path)
	if err != nil {
		t.Fatalf("load: %s", err)
	}
	if s.Name != "High Arctic Relay" || s.PayloadMass != 2.5 || s.Latitude != 55 || s.SpecificEnergy != 450 || s.DayOfYear != 200 {
		t.Fatalf("scenario misread: %+v", s)
	}
}

func TestLoadScenarioDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sparse.toml")
	if err := os.WriteFile(path, []byte("[mission]\nlatitude = 35.0\n"), 0644); err != nil {
		t.Fatal(err)
	}
	s, err := LoadScenario(path)
	if err != nil {
		t.Fatalf("load: %s", err)
	}
	def := DefaultScenario()
	if s.Latitude != 35 {
		t.Fatalf("latitude not read: %f", s.Latitude)
	}
	if s.PayloadMass != def.PayloadMass || s.DayOfYear != def.DayOfYear || s.SpecificEnergy != def.SpecificEnergy {
		t.Fatalf("missing keys must keep defaults: %+v", s)
	}
}

func TestLoadScenarioMissing(t *testing.T) {
	if _, err := LoadScenario(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Fatal("expected an error for a missing scenario file")
	}
}

func TestScenarioProblem(t *testing.T) {
	s := Scenario{PayloadMass: 3, Latitude: 10, SpecificEnergy: 300, DayOfYear: 100}
	p := s.Problem()
	if p.PayloadMass != 3 || p.Latitude != 10 || p.SpecificEnergy != 300 || p.DayOfYear != 100 {
		t.Fatalf("problem not built from scenario: %+v", p)
	}
}
