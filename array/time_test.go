package array

import (
	"testing"
	"time"
)

func TestDecodeCFTimeStandard(t *testing.T) {
	got, err := DecodeCFTime([]float64{0, 365, 730.5}, "days since 1950-01-01", "standard")
	if err != nil {
		t.Fatalf("DecodeCFTime: %v", err)
	}
	if !got[0].Equal(time.Date(1950, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("t0 = %v", got[0])
	}
	if !got[1].Equal(time.Date(1951, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("t1 = %v", got[1])
	}
	if !got[2].Equal(time.Date(1952, 1, 1, 12, 0, 0, 0, time.UTC)) {
		t.Errorf("t2 = %v", got[2])
	}
}

func TestDecodeCFTimeHours(t *testing.T) {
	got, err := DecodeCFTime([]float64{24}, "hours since 2000-06-01 06:00:00", "")
	if err != nil {
		t.Fatalf("DecodeCFTime: %v", err)
	}
	if !got[0].Equal(time.Date(2000, 6, 2, 6, 0, 0, 0, time.UTC)) {
		t.Errorf("got %v", got[0])
	}
}

func TestDecodeCFTimeNoLeap(t *testing.T) {
	// crossing what would be a leap day in the standard calendar
	got, err := DecodeCFTime([]float64{0, 59, 365}, "days since 2000-01-01", "noleap")
	if err != nil {
		t.Fatalf("DecodeCFTime: %v", err)
	}
	// day 59 of a noleap year is March 1
	if got[1].Month() != time.March || got[1].Day() != 1 {
		t.Errorf("day 59 = %v, want March 1", got[1])
	}
	if got[2].Year() != 2001 || got[2].Month() != time.January || got[2].Day() != 1 {
		t.Errorf("day 365 = %v, want 2001-01-01", got[2])
	}
}

func TestDecodeCFTime360Day(t *testing.T) {
	got, err := DecodeCFTime([]float64{0, 30, 360, 59}, "days since 2000-01-01", "360_day")
	if err != nil {
		t.Fatalf("DecodeCFTime: %v", err)
	}
	if got[1].Month() != time.February || got[1].Day() != 1 {
		t.Errorf("day 30 = %v, want Feb 1", got[1])
	}
	if got[2].Year() != 2001 {
		t.Errorf("day 360 = %v, want year 2001", got[2])
	}
	// Feb 30 clamps to Feb 29 (2000 is a leap year)
	if got[3].Month() != time.February || got[3].Day() != 29 {
		t.Errorf("day 59 = %v, want Feb 29", got[3])
	}
}

func TestParseCFUnitsErrors(t *testing.T) {
	if _, err := DecodeCFTime([]float64{0}, "fortnights since 2000-01-01", ""); err == nil {
		t.Error("expected error for unknown unit")
	}
	if _, err := DecodeCFTime([]float64{0}, "days from 2000-01-01", ""); err == nil {
		t.Error("expected error for missing 'since'")
	}
	if _, err := DecodeCFTime([]float64{0}, "days since someday", ""); err == nil {
		t.Error("expected error for bad epoch")
	}
	if _, err := DecodeCFTime([]float64{0}, "days since 2000-01-01", "julian-ish"); err == nil {
		t.Error("expected error for unknown calendar")
	}
}
