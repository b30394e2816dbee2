package weights

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTableCanonical(t *testing.T) {
	ws, err := Table(14)
	if err != nil {
		t.Fatal(err)
	}
	want := []int{140, 140, 140, 125, 105, 90, 75, 60, 45, 30, 20, 15, 10, 5}
	if diff := cmp.Diff(want, ws); diff != "" {
		t.Fatalf("canonical table mismatch (-want +got):\n%s", diff)
	}
	if sum(ws) != 1000 {
		t.Fatalf("canonical table sums to %d, want 1000", sum(ws))
	}
}

func TestTablePrefixAndExtension(t *testing.T) {
	ws, err := Table(8)
	if err != nil {
		t.Fatal(err)
	}
	want := []int{140, 140, 140, 125, 105, 90, 75, 60}
	if diff := cmp.Diff(want, ws); diff != "" {
		t.Fatalf("prefix mismatch (-want +got):\n%s", diff)
	}

	ws, err = Table(20)
	if err != nil {
		t.Fatal(err)
	}
	wantTail := []int{4, 3, 2, 1, 1, 1}
	if diff := cmp.Diff(wantTail, ws[14:]); diff != "" {
		t.Fatalf("extension mismatch (-want +got):\n%s", diff)
	}
	for i, w := range ws {
		if w < 1 {
			t.Fatalf("table entry %d is %d, want >= 1", i, w)
		}
	}

	if _, err := Table(0); err == nil {
		t.Fatal("Table(0) should fail")
	}
}

func TestEqual(t *testing.T) {
	ws, err := ForCount(Equal, 3, 10)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]int{4, 3, 3}, ws); diff != "" {
		t.Fatalf("equal split mismatch (-want +got):\n%s", diff)
	}
}

func TestLinear(t *testing.T) {
	ws, err := ForCount(Linear, 4, 10)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]int{4, 3, 2, 1}, ws); diff != "" {
		t.Fatalf("linear mismatch (-want +got):\n%s", diff)
	}

	ws, err = ForCount(Linear, 5, 1000)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]int{333, 267, 200, 133, 67}, ws); diff != "" {
		t.Fatalf("linear 5x1000 mismatch (-want +got):\n%s", diff)
	}
}

func TestExponential(t *testing.T) {
	ws, err := ForCount(Exponential, 3, 700)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]int{400, 200, 100}, ws); diff != "" {
		t.Fatalf("exponential mismatch (-want +got):\n%s", diff)
	}
}

func TestGeneratorSumInvariants(t *testing.T) {
	totals := []int{1, 7, 10, 100, 999, 1000}
	dists := []Distribution{Equal, Linear, Exponential}
	for _, d := range dists {
		for n := 1; n <= 20; n++ {
			for _, total := range totals {
				ws, err := ForCount(d, n, total)
				if err != nil {
					t.Fatalf("%s n=%d total=%d: %v", d, n, total, err)
				}
				if len(ws) != n {
					t.Fatalf("%s n=%d total=%d: got %d entries", d, n, total, len(ws))
				}
				if got := sum(ws); got != total {
					t.Fatalf("%s n=%d total=%d: sums to %d", d, n, total, got)
				}
				for i, w := range ws {
					if w < 0 {
						t.Fatalf("%s n=%d total=%d: entry %d is negative (%d)", d, n, total, i, w)
					}
				}
			}
		}
	}
}

func TestWorstEntryGetsMost(t *testing.T) {
	for _, d := range []Distribution{FixedTable, Linear, Exponential} {
		ws, err := ForCount(d, 12, 1000)
		if err != nil {
			t.Fatal(err)
		}
		for i := 1; i < len(ws); i++ {
			if ws[i] > ws[i-1] {
				t.Fatalf("%s: entry %d (%d) outweighs entry %d (%d)", d, i, ws[i], i-1, ws[i-1])
			}
		}
	}
}

func TestParse(t *testing.T) {
	cases := map[string]Distribution{
		"fixed-table":         FixedTable,
		"fixed-table-by-size": FixedTable,
		"fixed":               FixedTable,
		"table":               FixedTable,
		"equal":               Equal,
		"linear":              Linear,
		"exponential":         Exponential,
		"custom":              Custom,
	}
	for in, want := range cases {
		got, err := Parse(in)
		if err != nil || got != want {
			t.Fatalf("Parse(%q) = %q, %v; want %q", in, got, err, want)
		}
	}
	if _, err := Parse("bogus"); !errors.Is(err, ErrUnknownDistribution) {
		t.Fatalf("Parse(bogus) = %v, want ErrUnknownDistribution", err)
	}
}

func TestForCountCustomRejected(t *testing.T) {
	if _, err := ForCount(Custom, 4, 1000); err == nil {
		t.Fatal("custom should require explicit values")
	}
}

func sum(ws []int) int {
	total := 0
	for _, w := range ws {
		total += w
	}
	return total
}

func TestValidateAssignment(t *testing.T) {
	if err := ValidateAssignment(nil); err == nil {
		t.Fatal("empty list should fail")
	}
	if err := ValidateAssignment([]int{5, -1}); err == nil {
		t.Fatal("negative weight should fail")
	}
	if err := ValidateAssignment([]int{0, 0}); err == nil {
		t.Fatal("zero total should fail")
	}
	if err := ValidateAssignment([]int{5, 0, 0}); err == nil {
		t.Fatal("two zero-weight entries should fail")
	}
	if err := ValidateAssignment([]int{0}); err != nil {
		t.Fatalf("single zero-weight entry should pass, got %v", err)
	}
	if err := ValidateAssignment([]int{5, 0}); err != nil {
		t.Fatalf("one zero among positives should pass, got %v", err)
	}
	if err := ValidateAssignment([]int{70, 20, 5, 5}); err != nil {
		t.Fatalf("valid list rejected: %v", err)
	}
}
