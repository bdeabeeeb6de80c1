package sheet

import (
	"errors"
	"testing"

	"google.golang.org/api/googleapi"
)

func TestColumnLetter(t *testing.T) {
	cases := map[int]string{
		1:  "A",
		2:  "B",
		7:  "G",
		26: "Z",
		27: "AA",
		28: "AB",
		52: "AZ",
		53: "BA",
	}
	for col, want := range cases {
		if got := columnLetter(col); got != want {
			t.Fatalf("columnLetter(%d) = %q, want %q", col, got, want)
		}
	}
}

func TestCellRange(t *testing.T) {
	if got := cellRange("Draft_Pool", 5, 7); got != "Draft_Pool!G5" {
		t.Fatalf("cellRange = %q, want Draft_Pool!G5", got)
	}
	if got := cellRange("Draft Pool", 2, 1); got != "'Draft Pool'!A2" {
		t.Fatalf("cellRange with space = %q, want 'Draft Pool'!A2", got)
	}
}

func TestHeaderOffset(t *testing.T) {
	// 0-based data index 0 lives on sheet row 2: one for 1-based
	// addressing, one for the header row.
	if HeaderOffset(0) != 2 || HeaderOffset(3) != 5 {
		t.Fatalf("HeaderOffset mapping broken: %d, %d", HeaderOffset(0), HeaderOffset(3))
	}
}

func TestCellString(t *testing.T) {
	cases := []struct {
		in   interface{}
		want string
	}{
		{"Solar Flare", "Solar Flare"},
		{true, "TRUE"},
		{false, "FALSE"},
		{250.0, "250"},
		{12.5, "12.5"},
		{0.0, "0"},
	}
	for _, tc := range cases {
		if got := cellString(tc.in); got != tc.want {
			t.Fatalf("cellString(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestClassify(t *testing.T) {
	parseErr := &googleapi.Error{Code: 400, Message: "Unable to parse range: Champions!A1:Z"}
	if err := classify(parseErr, "Champions"); !errors.Is(err, ErrTableNotFound) {
		t.Fatalf("range parse failure should map to ErrTableNotFound, got %v", err)
	}

	authErr := &googleapi.Error{Code: 403, Message: "The caller does not have permission"}
	var connErr *ConnectionError
	if err := classify(authErr, "Players"); !errors.As(err, &connErr) {
		t.Fatalf("auth failure should map to ConnectionError, got %v", err)
	}

	if err := classify(errors.New("dial tcp: timeout"), "Players"); !errors.As(err, &connErr) {
		t.Fatalf("transport failure should map to ConnectionError, got %v", err)
	}
}

func TestTransient(t *testing.T) {
	if transient(&googleapi.Error{Code: 400}) {
		t.Fatalf("4xx (except 429) must not retry")
	}
	if !transient(&googleapi.Error{Code: 429}) || !transient(&googleapi.Error{Code: 503}) {
		t.Fatalf("429 and 5xx should retry once")
	}
	if !transient(errors.New("connection reset")) {
		t.Fatalf("raw transport errors should retry once")
	}
}
