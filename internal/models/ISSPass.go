package models

import "time"

// ISSPass is one predicted overhead pass of the International Space Station.
type ISSPass struct {
	Risetime        time.Time `json:"risetime"`
	DurationSeconds int       `json:"duration_seconds" example:"600"`
	Magnitude       float64   `json:"magnitude" example:"-3"`
}

// PassList carries the passes and whether they are demo data substituted after an upstream failure.
type PassList struct {
	Coordinate Coordinate `json:"coordinate"`
	Passes     []ISSPass  `json:"passes"`
	Fallback   bool       `json:"fallback"`
	Error      string     `json:"error,omitempty"`
}
