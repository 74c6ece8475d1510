package homebound

import "github.com/lucasb-eyer/go-colorful"

// DayPhase names the stretch of the journey home.
type DayPhase int

const (
	DayMorning DayPhase = iota
	DayAfternoon
	DaySunset
	DayEvening
	DayNight // Only once home
)

// String returns the HUD label for the phase.
func (d DayPhase) String() string {
	switch d {
	case DayMorning:
		return "Day"
	case DayAfternoon:
		return "Afternoon"
	case DaySunset:
		return "Sunset"
	case DayEvening:
		return "Evening"
	case DayNight:
		return "Night"
	default:
		return "?"
	}
}

// TimeOfDay is the sky state derived from progress toward home.
type TimeOfDay struct {
	Phase  DayPhase
	Sky    colorful.Color
	Stars  bool
	Moon   bool
	Clouds bool
}

// Sky palette keyed to the day phases.
var (
	skyDay   = mustHex("#87CEEB")
	skyPeach = mustHex("#FFB6A3")
	skyPink  = mustHex("#FF6B9D")
	skySlate = mustHex("#4A5568")
	skyNight = mustHex("#2C1810")
)

// cycleScore is the length of one day in endless mode.
const cycleScore = 500

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// timeOfDayFor maps score progress to the sky. Phase boundaries sit at 30%,
// 60% and 90% of the target, clouds vanish at 80%. Without a target the day
// repeats every cycleScore points.
func timeOfDayFor(score, target int, cleared bool) TimeOfDay {
	if cleared {
		return TimeOfDay{Phase: DayNight, Sky: skyNight, Stars: true, Moon: true}
	}

	ref := target
	if ref <= 0 {
		ref = cycleScore
		score %= ref
	}
	progress := float64(score) / float64(ref)

	tod := TimeOfDay{
		Stars:  progress >= 0.9,
		Clouds: progress < 0.8,
	}

	switch {
	case progress < 0.3:
		tod.Phase = DayMorning
		tod.Sky = skyDay
	case progress < 0.6:
		tod.Phase = DayAfternoon
		tod.Sky = skyDay.BlendRgb(skyPeach, (progress-0.3)/0.3)
	case progress < 0.9:
		tod.Phase = DaySunset
		tod.Sky = skyPeach.BlendRgb(skyPink, (progress-0.6)/0.3)
	default:
		tod.Phase = DayEvening
		tod.Sky = skyPink.BlendRgb(skySlate, min((progress-0.9)/0.1, 1))
	}
	return tod
}

// Backdrop returns the current sky colour as a hex string.
func (g *Game) Backdrop() string {
	return g.Snapshot().TimeOfDay.Sky.Clamped().Hex()
}
