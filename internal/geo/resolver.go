package geo

import "math"

// earthRadiusKm is the mean Earth radius used by the haversine formula.
const earthRadiusKm = 6371.0

// DistanceKm returns the great-circle distance in kilometers between two
// coordinates, computed with the haversine formula.
func DistanceKm(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := toRadians(lat2 - lat1)
	dLon := toRadians(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(lat1))*math.Cos(toRadians(lat2))*
			math.Sin(dLon/2)*math.Sin(dLon/2)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

// FindNearest returns the district whose centroid is closest to the given
// coordinate, along with the distance in kilometers. When two districts are
// exactly equidistant the one earlier in registry order wins; the tie-break
// is deterministic but carries no geographic meaning. ok is false only when
// the registry is empty, which never happens with the embedded table.
func (r *Registry) FindNearest(lat, lon float64) (nearest Region, distanceKm float64, ok bool) {
	minDistance := math.MaxFloat64

	for _, region := range r.regions {
		d := DistanceKm(lat, lon, region.Latitude, region.Longitude)
		if d < minDistance {
			minDistance = d
			nearest = region
			ok = true
		}
	}

	if !ok {
		return Region{}, 0, false
	}
	return nearest, minDistance, true
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
