package geo

import "math"

// EarthRadiusKm - радиус Земли в километрах для формулы гаверсинусов
const EarthRadiusKm = 6371.0

// Haversine вычисляет расстояние по дуге большого круга между двумя точками
// в километрах. Промежуточное значение зажимается в [0,1], чтобы плавающая
// арифметика на антиподальных и приполярных парах не выходила из области
// определения обратной тригонометрии.
func Haversine(lat1, lon1, lat2, lon2 float64) float64 {
	lat1r := lat1 * math.Pi / 180
	lon1r := lon1 * math.Pi / 180
	lat2r := lat2 * math.Pi / 180
	lon2r := lon2 * math.Pi / 180

	dlat := lat2r - lat1r
	dlon := lon2r - lon1r

	sinLat := math.Sin(dlat / 2)
	sinLon := math.Sin(dlon / 2)

	a := sinLat*sinLat + math.Cos(lat1r)*math.Cos(lat2r)*sinLon*sinLon
	if a < 0 {
		a = 0
	}
	if a > 1 {
		a = 1
	}

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return EarthRadiusKm * c
}

// ValidCoordinate проверяет, что широта и долгота в допустимых диапазонах
func ValidCoordinate(lat, lon float64) bool {
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}
