package telemetry

import (
	"testing"
	"time"
)

func TestRecordDebounce(t *testing.T) {
	rec := NewRecorder(time.Second)

	rec.Record("cpu0", 0.0, 10)
	rec.Record("cpu0", 0.5, 20)
	rec.Record("cpu0", 1.2, 30)

	pts := rec.Series("cpu0")
	if len(pts) != 2 {
		t.Fatalf("expected 2 points, got %d", len(pts))
	}
	if pts[0].Value != 10 || pts[1].Value != 30 {
		t.Errorf("expected values [10 30], got [%v %v]", pts[0].Value, pts[1].Value)
	}
	if pts[1].Elapsed != 1.2 {
		t.Errorf("expected second point at 1.2s, got %v", pts[1].Elapsed)
	}
}

func TestRecordFirstSampleAlwaysKept(t *testing.T) {
	rec := NewRecorder(time.Second)

	rec.Record("swap", 42.7, 3)

	pts := rec.Series("swap")
	if len(pts) != 1 {
		t.Fatalf("expected 1 point, got %d", len(pts))
	}
	if pts[0].Elapsed != 42.7 {
		t.Errorf("expected elapsed 42.7, got %v", pts[0].Elapsed)
	}
}

func TestRecordKeysIndependent(t *testing.T) {
	rec := NewRecorder(time.Second)

	rec.Record("cpu0", 0.0, 1)
	rec.Record("cpu1", 0.5, 2)

	if len(rec.Series("cpu0")) != 1 {
		t.Errorf("expected 1 point for cpu0, got %d", len(rec.Series("cpu0")))
	}
	if len(rec.Series("cpu1")) != 1 {
		t.Errorf("expected 1 point for cpu1, got %d", len(rec.Series("cpu1")))
	}
}

func TestValues(t *testing.T) {
	rec := NewRecorder(time.Second)

	rec.Record("ram", 0, 1.5)
	rec.Record("ram", 2, 2.5)
	rec.Record("ram", 4, 3.5)

	values := rec.Values("ram")
	if len(values) != 3 {
		t.Fatalf("expected 3 values, got %d", len(values))
	}
	for i, want := range []float64{1.5, 2.5, 3.5} {
		if values[i] != want {
			t.Errorf("expected value %v at index %d, got %v", want, i, values[i])
		}
	}
}

func TestKeysSorted(t *testing.T) {
	rec := NewRecorder(time.Second)

	rec.Record("swap", 0, 1)
	rec.Record("cpu1", 0, 1)
	rec.Record("cpu0", 0, 1)

	keys := rec.Keys()
	want := []string{"cpu0", "cpu1", "swap"}
	if len(keys) != len(want) {
		t.Fatalf("expected %d keys, got %d", len(want), len(keys))
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Errorf("expected key %s at index %d, got %s", want[i], i, keys[i])
		}
	}
}

func TestUnitScale(t *testing.T) {
	tests := []struct {
		total uint64
		want  float64
	}{
		{16_000_000_000, 16},
		{8_192_000_000, 8},
		{500, 500},
		{0, 0},
		{1000, 1000},
		{1001, 1},
	}

	for _, tt := range tests {
		if got := UnitScale(tt.total); got != tt.want {
			t.Errorf("UnitScale(%d): expected %v, got %v", tt.total, tt.want, got)
		}
	}
}
