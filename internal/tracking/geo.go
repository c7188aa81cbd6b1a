package tracking

import "math"

const earthRadiusKm = 6371

// Speed above which a fix-to-fix jump is considered a GPS glitch.
const maxPlausibleSpeedKmh = 200

func toRadians(degrees float64) float64 {
	return degrees * (math.Pi / 180)
}

// HaversineKm is the great-circle distance between two coordinates.
func HaversineKm(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := toRadians(lat2 - lat1)
	dLon := toRadians(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(lat1))*math.Cos(toRadians(lat2))*
			math.Sin(dLon/2)*math.Sin(dLon/2)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

// SpeedToKmh converts a sensor speed in m/s to km/h. Unknown or negative
// readings count as standing still.
func SpeedToKmh(speedMs float64) float64 {
	if speedMs < 0 {
		return 0
	}
	return speedMs * 3.6
}

// isDriving reports whether a speed clears the driving threshold.
func isDriving(speedKmh, minSpeedKmh float64) bool {
	return speedKmh >= minSpeedKmh
}

// validFix filters out fixes that would corrupt the distance sum: poor
// accuracy, or a jump from the previous fix that implies an impossible
// speed. A fix with negative accuracy (sensor did not report one) passes
// the accuracy check.
func validFix(fix Fix, prev *Fix, settings Settings) bool {
	if fix.AccuracyM >= 0 && fix.AccuracyM > settings.MaxAccuracyMeters {
		return false
	}

	if prev != nil {
		distanceKm := HaversineKm(prev.Latitude, prev.Longitude, fix.Latitude, fix.Longitude)
		elapsed := fix.Timestamp.Sub(prev.Timestamp).Seconds()
		if elapsed > 0 {
			speedKmh := distanceKm / elapsed * 3600
			if speedKmh > maxPlausibleSpeedKmh {
				return false
			}
		}
	}

	return true
}
