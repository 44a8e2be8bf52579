// models/tutorial.go
package models

// TutorialStep is static reference content for the shove tutorial. It is
// served as-is and never persisted.
type TutorialStep struct {
	Step        int      `json:"step"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Tips        []string `json:"tips"`
	Angle       string   `json:"angle"`
	DurationSec int      `json:"duration_sec"`
	SpeedLabel  string   `json:"speed_label"`
}

// TutorialSteps is the fixed three-step shove tutorial.
var TutorialSteps = []TutorialStep{
	{
		Step:        1,
		Title:       "Stance & Setup",
		Description: "Place your back foot on the tail and front foot near the bolts. Keep shoulders parallel.",
		Tips:        []string{"Bend your knees", "Keep weight centered", "Look where you want the board to go"},
		Angle:       "side",
		DurationSec: 8,
		SpeedLabel:  "1x",
	},
	{
		Step:        2,
		Title:       "Pop & Scoop",
		Description: "Pop the tail and scoop your back foot horizontally to initiate the shove.",
		Tips:        []string{"Scoop, don't kick straight down", "Stay over the board", "Let the board rotate under you"},
		Angle:       "rear",
		DurationSec: 10,
		SpeedLabel:  "0.5x",
	},
	{
		Step:        3,
		Title:       "Catch & Roll Away",
		Description: "Catch the board with your front foot, then set your back foot and roll away clean.",
		Tips:        []string{"Absorb impact", "Level out mid-air", "Commit with both feet"},
		Angle:       "front",
		DurationSec: 7,
		SpeedLabel:  "0.75x",
	},
}
