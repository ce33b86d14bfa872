package phantom

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Scenario is a mission definition read from a TOML file. It carries the
// inputs of the sizing problem, not the solved design.
type Scenario struct {
	Name           string
	PayloadMass    float64 // kg
	Latitude       float64 // deg N
	SpecificEnergy float64 // Wh/kg
	DayOfYear      int
}

// DefaultScenario is the reference mission: tropical station keeping on the
// summer solstice with current battery technology.
func DefaultScenario() Scenario {
	return Scenario{
		Name:           "Solar Phantom reference",
		PayloadMass:    5.0,
		Latitude:       20.0,
		SpecificEnergy: 350.0,
		DayOfYear:      172,
	}
}

// LoadScenario reads a scenario TOML file from the current directory (or an
// absolute path). Missing keys fall back to the defaults.
func LoadScenario(name string) (Scenario, error) {
	dir, base := filepath.Split(name)
	base = strings.TrimSuffix(base, ".toml")
	v := viper.New()
	v.SetConfigName(base)
	v.SetConfigType("toml")
	if dir != "" {
		v.AddConfigPath(dir)
	}
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		return Scenario{}, fmt.Errorf("%s.toml: %s", base, err)
	}
	s := DefaultScenario()
	if v.IsSet("mission.name") {
		s.Name = v.GetString("mission.name")
	}
	if v.IsSet("mission.payload") {
		s.PayloadMass = v.GetFloat64("mission.payload")
	}
	if v.IsSet("mission.latitude") {
		s.Latitude = v.GetFloat64("mission.latitude")
	}
	if v.IsSet("mission.battery") {
		s.SpecificEnergy = v.GetFloat64("mission.battery")
	}
	if v.IsSet("mission.day") {
		s.DayOfYear = v.GetInt("mission.day")
	}
	return s, nil
}

// Problem builds the sizing problem this scenario describes.
func (s Scenario) Problem() *SizingProblem {
	p := NewSizingProblem(s.PayloadMass, s.Latitude, s.SpecificEnergy)
	p.DayOfYear = s.DayOfYear
	return p
}
