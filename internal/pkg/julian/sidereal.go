package julian

import "math"

// GreenwichSiderealTime среднее звёздное время по Гринвичу в градусах (Мееус 12.4)
func GreenwichSiderealTime(jdUT float64) float64 {
	t := Centuries(jdUT)
	theta := 280.46061837 + 360.98564736629*(jdUT-J2000) + 0.000387933*t*t - t*t*t/38710000
	return Normalize(theta)
}

// LocalSiderealTime местное звёздное время, долгота восточная положительная
func LocalSiderealTime(jdUT, longitude float64) float64 {
	return Normalize(GreenwichSiderealTime(jdUT) + longitude)
}

// MeanObliquity средний наклон эклиптики в градусах (Мееус 22.2)
func MeanObliquity(jdET float64) float64 {
	t := Centuries(jdET)
	seconds := 21.448 - 46.8150*t - 0.00059*t*t + 0.001813*t*t*t
	return 23 + (26+seconds/60)/60
}

// Normalize приводит угол к [0,360)
func Normalize(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	// -0 и 360 после сложения с маленьким отрицательным
	if deg >= 360 {
		deg = 0
	}
	return deg
}
