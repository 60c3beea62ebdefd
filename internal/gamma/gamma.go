package gamma

import (
	"math"

	"github.com/rcarver/lux/internal/models"
)

// ToGamma converts a colour temperature in Kelvin to per-channel gamma
// multipliers using the standard black-body approximation. Each channel
// is clamped to [0,1].
func ToGamma(kelvin float64) models.Gamma {

	t := kelvin / 100

	var red float64
	if t <= 66 {
		red = 1.0
	} else {
		red = clamp01(1.29293618606274514 * math.Pow(t-60, -0.1332047592))
	}

	var green float64
	if t <= 66 {
		green = clamp01(0.39008157876901960784*math.Log(t) - 0.631841443788046)
	} else {
		green = clamp01(1.12989086089529411765 * math.Pow(t-60, -0.0755148492))
	}

	var blue float64
	switch {
	case t >= 66:
		blue = 1.0
	case t <= 19:
		blue = 0.0
	default:
		blue = clamp01(0.54320678911019607843*math.Log(t-10) - 1.19625408914)
	}

	return models.Gamma{Red: red, Green: green, Blue: blue}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
