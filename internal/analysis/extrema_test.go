package analysis

import (
	"reflect"
	"testing"
)

func TestFindExtrema_SinglePeakAndTrough(t *testing.T) {
	bars := flatBars(30, 100) // High 100, Low 100 everywhere
	bars[15].High = 110
	bars[10].Low = 90

	set := FindExtrema(&Frame{Bars: bars})
	if !reflect.DeepEqual(set.Resistances, []float64{110}) {
		t.Errorf("resistances = %v, want [110]", set.Resistances)
	}
	if !reflect.DeepEqual(set.Supports, []float64{90}) {
		t.Errorf("supports = %v, want [90]", set.Supports)
	}
}

func TestFindExtrema_FlatSeries(t *testing.T) {
	// Equal neighbors never strictly dominate.
	set := FindExtrema(&Frame{Bars: flatBars(30, 100)})
	if len(set.Resistances) != 0 || len(set.Supports) != 0 {
		t.Errorf("flat series should have no extrema, got %+v", set)
	}
}

func TestFindExtrema_BoundaryExcluded(t *testing.T) {
	bars := flatBars(30, 100)
	bars[0].High = 120
	bars[29].High = 130

	set := FindExtrema(&Frame{Bars: bars})
	if len(set.Resistances) != 0 {
		t.Errorf("first and last bars must not qualify, got %v", set.Resistances)
	}
}

func TestFindExtrema_NearEdgePeakQualifies(t *testing.T) {
	// A peak two bars from the edge only competes against in-range neighbors.
	bars := flatBars(30, 100)
	bars[2].High = 115

	set := FindExtrema(&Frame{Bars: bars})
	if !reflect.DeepEqual(set.Resistances, []float64{115}) {
		t.Errorf("resistances = %v, want [115]", set.Resistances)
	}
}

func TestFindExtrema_SortedAscending(t *testing.T) {
	bars := flatBars(60, 100)
	bars[40].High = 120
	bars[20].High = 130

	set := FindExtrema(&Frame{Bars: bars})
	if !reflect.DeepEqual(set.Resistances, []float64{120, 130}) {
		t.Errorf("resistances = %v, want ascending [120 130]", set.Resistances)
	}
}

func TestFindExtrema_DominanceIsStrict(t *testing.T) {
	bars := flatBars(30, 100)
	bars[14].High = 110
	bars[15].High = 110 // tie within the neighborhood

	set := FindExtrema(&Frame{Bars: bars})
	if len(set.Resistances) != 0 {
		t.Errorf("tied peaks should not qualify, got %v", set.Resistances)
	}
}
