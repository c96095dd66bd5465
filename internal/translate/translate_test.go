package translate

import (
	"reflect"
	"testing"
)

func TestDate(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{"di 10 jun", "Tue 10 Jun"},
		{"vr 15 aug", "Fri 15 Aug"},
		{"zo 17 aug", "Sun 17 Aug"},
		{"wo 3 mrt", "Wed 3 Mar"},
		{"za 4 okt '25", "Sat 4 Oct '25"},
		{"ma 1 mei", "Mon 1 May"},
		{"10 jun", "10 Jun"},
		{"Sat 14 Sep", "Sat 14 Sep"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := Date(tt.in); got != tt.expected {
				t.Errorf("Date(%q) = %q, expected %q", tt.in, got, tt.expected)
			}
		})
	}
}

func TestDateWholeWordDays(t *testing.T) {
	// "do" and "ma" must not be replaced inside larger words.
	if got := Date("doorlopend 10 jun"); got != "Doorlopend 10 Jun" {
		t.Errorf("substring day token was corrupted: %q", got)
	}
}

func TestDateIdempotent(t *testing.T) {
	once := Date("di 10 jun")
	twice := Date(once)
	if once != twice {
		t.Errorf("translation is not idempotent: %q != %q", once, twice)
	}
}

func TestDates(t *testing.T) {
	in := []string{"di 10 jun", "wo 11 jun", "Check website for dates"}
	out := Dates(in)

	if len(out) != len(in) {
		t.Fatalf("element count changed: %d != %d", len(out), len(in))
	}

	expected := []string{"Tue 10 Jun", "Wed 11 Jun", "Check Website For Dates"}
	if !reflect.DeepEqual(out, expected) {
		t.Errorf("Dates(%v) = %v, expected %v", in, out, expected)
	}
}

func TestDatesNil(t *testing.T) {
	if out := Dates(nil); out != nil {
		t.Errorf("expected nil output for nil input, got %v", out)
	}
}
