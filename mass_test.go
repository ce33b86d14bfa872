package phantom

import (
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func TestMassConsistency(t *testing.T) {
	m := Masses(35, 49, 150, 50, 5)
	manual := m.Structure + m.Propulsion + m.Solar + m.MPPT + m.Avionics + m.Battery + m.Payload
	if !scalar.EqualWithinAbs(m.Total(), manual, 1e-9) {
		t.Fatalf("Total() %f != component sum %f", m.Total(), manual)
	}
	if m.MPPT != MPPTMass || m.Avionics != AvionicsMass {
		t.Fatal("fixed equipment masses not carried through")
	}
}

func TestStructuralScaling(t *testing.T) {
	small := Masses(10, 10, 50, 10, 2)
	big := Masses(20, 20, 50, 10, 2)
	// 2^2.45 ~ 5.46: doubling the span more than quintuples the spar mass.
	ratio := big.Structure / small.Structure
	if ratio < 5.4 || ratio > 5.5 {
		t.Fatalf("structural scaling off: ratio %f", ratio)
	}
}

func TestClosureResidual(t *testing.T) {
	m := Masses(20, 20, 200, 50, 5)
	if m.ClosureResidual(200) > 0 {
		t.Fatalf("200 kg budget should close: residual %f", m.ClosureResidual(200))
	}
	if m.ClosureResidual(100) <= 0 {
		t.Fatal("100 kg budget cannot close for a 20 m airframe")
	}
}
