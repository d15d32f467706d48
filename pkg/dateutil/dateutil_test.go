package dateutil

import "testing"

func TestAddDays(t *testing.T) {
	tests := []struct {
		name string
		iso  string
		n    int
		want string
	}{
		{"forward", "2024-01-30", 3, "2024-02-02"},
		{"backward", "2024-03-01", -1, "2024-02-29"},
		{"zero", "2024-06-15", 0, "2024-06-15"},
		{"year boundary", "2023-12-31", 1, "2024-01-01"},
		{"invalid passthrough", "not-a-date", 5, "not-a-date"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AddDays(tt.iso, tt.n); got != tt.want {
				t.Errorf("AddDays(%q, %d) = %q, want %q", tt.iso, tt.n, got, tt.want)
			}
		})
	}
}

func TestDaysBetween(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want int
	}{
		{"same day", "2024-05-10", "2024-05-10", 0},
		{"one day", "2024-05-10", "2024-05-11", 1},
		{"negative", "2024-05-11", "2024-05-10", -1},
		{"across leap day", "2024-02-28", "2024-03-01", 2},
		{"invalid a", "nope", "2024-05-10", 0},
		{"invalid b", "2024-05-10", "nope", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DaysBetween(tt.a, tt.b); got != tt.want {
				t.Errorf("DaysBetween(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestParseISORoundTrip(t *testing.T) {
	tm, err := ParseISO("2024-11-03")
	if err != nil {
		t.Fatalf("ParseISO() error = %v", err)
	}
	if got := FormatISO(tm); got != "2024-11-03" {
		t.Errorf("FormatISO(ParseISO()) = %q, want 2024-11-03", got)
	}
}
