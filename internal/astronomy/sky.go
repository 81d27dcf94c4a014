package astronomy

import (
	"math"
	"strings"

	"stargaze-api/internal/models"
)

const (
	// NakedEyeLimitMagnitude is the faintest star visible without optics under a pristine sky.
	NakedEyeLimitMagnitude = 6.0

	binocularGain = 2.0
	telescopeGain = 5.0

	clearSkyMaxCloudCover    = 30.0
	clearSkyMinVisibilityMet = 10000.0
)

// StarVisibility holds limiting magnitudes for three kinds of observer.
type StarVisibility struct {
	NakedEye   float64 `json:"naked_eye" example:"4"`
	Binoculars float64 `json:"binoculars" example:"6"`
	Telescope  float64 `json:"telescope" example:"9"`
}

// ComputeStarVisibility derives limiting magnitudes from a light pollution level,
// where every two units cost one magnitude.
func ComputeStarVisibility(lightPollution float64) StarVisibility {
	limit := NakedEyeLimitMagnitude - zeroIfNaN(lightPollution)/2

	return StarVisibility{
		NakedEye:   math.Max(0, limit),
		Binoculars: math.Max(0, limit+binocularGain),
		Telescope:  math.Max(0, limit+telescopeGain),
	}
}

// IsClearSky reports whether the sky is clear enough for casual observing.
func IsClearSky(obs models.WeatherObservation) bool {
	return obs.CloudCoverPercent < clearSkyMaxCloudCover && obs.VisibilityMeters > clearSkyMinVisibilityMet
}

// Constellation is an entry of the beginner catalog.
type Constellation struct {
	Name       string `json:"name" example:"Orion"`
	CommonName string `json:"common_name" example:"The Hunter"`
	Stars      int    `json:"stars" example:"7"`
}

// Constellations returns a copy of the catalog.
func Constellations() []Constellation {
	return []Constellation{
		{Name: "Ursa Major", CommonName: "Big Dipper", Stars: 7},
		{Name: "Orion", CommonName: "The Hunter", Stars: 7},
		{Name: "Cassiopeia", CommonName: "The Queen", Stars: 5},
		{Name: "Cygnus", CommonName: "Northern Cross", Stars: 9},
		{Name: "Leo", CommonName: "The Lion", Stars: 9},
	}
}

// LookupConstellation finds a constellation by its name or common name, ignoring case.
func LookupConstellation(name string) (Constellation, bool) {
	name = strings.TrimSpace(name)
	for _, c := range Constellations() {
		if strings.EqualFold(c.Name, name) || strings.EqualFold(c.CommonName, name) {
			return c, true
		}
	}
	return Constellation{}, false
}
