// Package content holds the static wellness library: guided exercise
// sessions, daily tips and per-trimester guidance. The data is fixed at
// build time; there is nothing to query or edit.
package content

import (
	"time"
)

// Days are the fixed weekday labels used by the planner, Monday first.
var Days = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

type Exercise struct {
	ID        int    `json:"id"`
	Title     string `json:"title"`
	Category  string `json:"category"`
	Trimester string `json:"trimester"`
	Duration  string `json:"duration"`
	Focus     string `json:"focus"`
	URL       string `json:"url"`
}

// TrimesterGuide describes one trimester: its training focus, month range,
// coaching tips and the seven suggested daily activities (Mon..Sun).
type TrimesterGuide struct {
	Trimester  int      `json:"trimester"`
	Focus      string   `json:"focus"`
	Range      string   `json:"range"`
	Tips       []string `json:"tips"`
	DailyFocus []string `json:"daily_focus"`
}

var WellnessTips = []string{
	"Hydration is key! Aim for 8-10 glasses of water today.",
	"Listen to your body. If a movement feels wrong, stop and rest.",
	"Your posture supports your baby. Keep your shoulders back and down.",
	"Deep breathing calms both you and your little one.",
	"Sleep is productive. Nap if you need to!",
	"You are strong, capable, and doing an amazing job.",
}

var Exercises = []Exercise{
	{ID: 1, Title: "Morning Gentle Flow", Category: "Mobility", Trimester: "1st", Duration: "15 min", Focus: "Nausea Relief", URL: "https://www.youtube.com/embed/s-7lyvblFNI"},
	{ID: 2, Title: "Energy Boost & Strength", Category: "Strength", Trimester: "2nd", Duration: "20 min", Focus: "Posture Support", URL: "https://www.youtube.com/embed/v7AYKMP6rOE"},
	{ID: 3, Title: "Hip Opener Flow", Category: "Mobility", Trimester: "2nd", Duration: "18 min", Focus: "Hip Mobility", URL: "https://www.youtube.com/embed/4pF125F_Y"},
	{ID: 4, Title: "Pelvic Floor Connection", Category: "Strength", Trimester: "3rd", Duration: "10 min", Focus: "Labor Prep", URL: "https://www.youtube.com/embed/0p6YG_l_iM"},
	{ID: 5, Title: "Lower Back Ease", Category: "Relaxation", Trimester: "3rd", Duration: "12 min", Focus: "Pain Relief", URL: "https://www.youtube.com/embed/4pF125F_Y"},
	{ID: 6, Title: "Bedtime Breathing", Category: "Relaxation", Trimester: "1st", Duration: "8 min", Focus: "Relaxation", URL: "https://www.youtube.com/embed/s-7lyvblFNI"},
}

var trimesterGuides = map[int]TrimesterGuide{
	1: {
		Trimester:  1,
		Focus:      "Gentle mobility, back/hip opening, breathing awareness",
		Range:      "Months 1-3",
		Tips:       []string{"Listen to your energy levels", "Hydrate frequently", "Focus on deep belly breathing"},
		DailyFocus: []string{"Rest", "Gentle Walk", "Prenatal Yoga", "Rest", "Stretching", "Walk", "Rest"},
	},
	2: {
		Trimester:  2,
		Focus:      "Posture support, chest/hip flexor stretches, balance",
		Range:      "Months 4-6",
		Tips:       []string{"Engage your core lightly", "Watch your posture", "Incorporate light resistance"},
		DailyFocus: []string{"Strength", "Cardio Walk", "Yoga Flow", "Rest", "Leg Strength", "Long Walk", "Rest"},
	},
	3: {
		Trimester:  3,
		Focus:      "Pelvic mobility, lower-back ease, relaxation",
		Range:      "Months 7-9",
		Tips:       []string{"Focus on pelvic opening", "Practice labor breathing", "Use props for support"},
		DailyFocus: []string{"Pelvic Tilts", "Short Walk", "Labor Prep", "Rest", "Open Hips", "Breathing", "Rest"},
	},
}

// Guide returns the guide for trimester 1-3.
func Guide(trimester int) (TrimesterGuide, bool) {
	g, ok := trimesterGuides[trimester]
	return g, ok
}

// trimesterLabel maps the numeric trimester to the library's tag form.
func trimesterLabel(trimester int) string {
	switch trimester {
	case 1:
		return "1st"
	case 2:
		return "2nd"
	case 3:
		return "3rd"
	default:
		return ""
	}
}

// FilterExercises returns the library entries matching the given filters.
// "All" (or empty) matches everything; an exercise tagged "All" matches
// every trimester filter.
func FilterExercises(trimester, category string) []Exercise {
	out := make([]Exercise, 0, len(Exercises))
	for _, ex := range Exercises {
		matchTrimester := trimester == "" || trimester == "All" || ex.Trimester == trimester || ex.Trimester == "All"
		matchCategory := category == "" || category == "All" || ex.Category == category
		if matchTrimester && matchCategory {
			out = append(out, ex)
		}
	}
	return out
}

// TipOfDay picks the wellness tip for the given date, rotating by weekday.
func TipOfDay(day time.Time) string {
	return WellnessTips[int(day.Weekday())%len(WellnessTips)]
}

// DailyPick selects the recommended session for the date and trimester:
// the exercises relevant to the trimester, indexed by weekday.
func DailyPick(day time.Time, trimester int) Exercise {
	label := trimesterLabel(trimester)
	relevant := make([]Exercise, 0, len(Exercises))
	for _, ex := range Exercises {
		if ex.Trimester == label || ex.Trimester == "All" {
			relevant = append(relevant, ex)
		}
	}
	if len(relevant) == 0 {
		return Exercises[0]
	}
	return relevant[int(day.Weekday())%len(relevant)]
}
