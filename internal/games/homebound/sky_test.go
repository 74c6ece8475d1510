package homebound

import "testing"

func TestTimeOfDay(t *testing.T) {
	tests := []struct {
		name    string
		score   int
		target  int
		cleared bool
		phase   DayPhase
		stars   bool
		clouds  bool
	}{
		{"start", 0, 500, false, DayMorning, false, true},
		{"afternoon", 150, 500, false, DayAfternoon, false, true},
		{"sunset", 449, 500, false, DaySunset, false, false},
		{"evening", 450, 500, false, DayEvening, true, false},
		{"home", 500, 500, true, DayNight, true, false},
		{"endless wraps", 650, 0, false, DayAfternoon, false, true},
		{"scaled target", 300, 1000, false, DayAfternoon, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tod := timeOfDayFor(tt.score, tt.target, tt.cleared)
			if tod.Phase != tt.phase {
				t.Errorf("phase = %v, want %v", tod.Phase, tt.phase)
			}
			if tod.Stars != tt.stars {
				t.Errorf("stars = %v, want %v", tod.Stars, tt.stars)
			}
			if tod.Clouds != tt.clouds {
				t.Errorf("clouds = %v, want %v", tod.Clouds, tt.clouds)
			}
			if tod.Moon != tt.cleared {
				t.Errorf("moon = %v, want %v", tod.Moon, tt.cleared)
			}
		})
	}
}

func TestSkyColours(t *testing.T) {
	if got := timeOfDayFor(0, 500, false).Sky.Hex(); got != "#87ceeb" {
		t.Errorf("day sky = %s, want #87ceeb", got)
	}
	if got := timeOfDayFor(500, 500, true).Sky.Hex(); got != "#2c1810" {
		t.Errorf("night sky = %s, want #2c1810", got)
	}

	// Midway through the afternoon the sky sits between blue and peach
	mid := timeOfDayFor(225, 500, false).Sky
	if mid.R <= skyDay.R || mid.R >= skyPeach.R {
		t.Errorf("afternoon red channel %v not between %v and %v", mid.R, skyDay.R, skyPeach.R)
	}
}
