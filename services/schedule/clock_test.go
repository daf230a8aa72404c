package schedule

import "testing"

func TestParseClock(t *testing.T) {
	cases := []struct {
		in   string
		want TimeOfDay
	}{
		{"12:00 AM", 0},
		{"12:00 PM", 720},
		{"9:00 AM", 540},
		{"9:05 pm", 1265},
		{"11:59 PM", 1439},
		{"1:30PM", 810},
		{"  7:15 a.m. ", 435},
	}
	for _, c := range cases {
		got, err := ParseClock(c.in)
		if err != nil {
			t.Fatalf("ParseClock(%q): %v", c.in, err)
		}
		if got != c.want {
			t.Errorf("ParseClock(%q) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestParseClock_Invalid(t *testing.T) {
	for _, in := range []string{"", "9:00", "25:00 AM", "9:75 PM", "13:00 PM", "0:30 AM", "noon"} {
		if _, err := ParseClock(in); err == nil {
			t.Errorf("ParseClock(%q): expected error", in)
		} else if _, ok := err.(FormatError); !ok {
			t.Errorf("ParseClock(%q): expected FormatError, got %T", in, err)
		}
	}
}

func TestClockRoundTrip(t *testing.T) {
	for m := TimeOfDay(0); m < minutesPerDay; m++ {
		back, err := ParseClock(m.FormatClock())
		if err != nil {
			t.Fatalf("round trip of %d: %v", m, err)
		}
		if back != m {
			t.Fatalf("round trip of %d: got %d via %q", m, back, m.FormatClock())
		}
	}
}

func TestFormatClock_Normalizes(t *testing.T) {
	if got := TimeOfDay(1500).FormatClock(); got != "1:00 AM" {
		t.Errorf("FormatClock(1500) = %q, want %q", got, "1:00 AM")
	}
	if got := TimeOfDay(1440).FormatClock(); got != "12:00 AM" {
		t.Errorf("FormatClock(1440) = %q, want %q", got, "12:00 AM")
	}
}

func TestCombineDateAndClock(t *testing.T) {
	at, err := CombineDateAndClock("2024-01-01", "9:30 AM")
	if err != nil {
		t.Fatal(err)
	}
	if at.Hour() != 9 || at.Minute() != 30 || at.Day() != 1 {
		t.Errorf("unexpected instant %s", at)
	}

	if _, err := CombineDateAndClock("01/01/2024", "9:30 AM"); err == nil {
		t.Error("expected error for non-ISO date")
	}
}
