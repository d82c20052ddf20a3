package astro

import (
	"math"
	"time"
)

// HorizontalToCartesian maps horizontal coordinates onto a sphere of the given
// radius around the observer. The frame is Y-up with Z toward the observer:
// a star due north on the horizon sits at (0, 0, -r), the zenith at (0, r, 0).
func HorizontalToCartesian(h Horizontal, radius float64) Vec3 {
	alt := degToRad(h.AltDeg)
	az := degToRad(h.AzDeg)

	cosAlt := math.Cos(alt)
	return Vec3{
		X: -math.Sin(az) * cosAlt * radius,
		Y: math.Sin(alt) * radius,
		Z: -math.Cos(az) * cosAlt * radius,
	}
}

// StarTo3D converts catalog RA/Dec to an observer-relative position on a
// sphere of the given radius. The second return value reports whether the
// star is above the horizon at the given instant.
func StarTo3D(raDeg, decDeg float64, obs Observer, t time.Time, radius float64) (Vec3, bool) {
	h := EquatorialToHorizontal(Equatorial{RADeg: raDeg, DecDeg: decDeg}, obs, t)
	return HorizontalToCartesian(h, radius), h.AltDeg > 0
}

// SphericalToCartesian converts RA/Dec plus a radial distance to equatorial
// XYZ (X toward the vernal equinox, Z toward the north celestial pole).
func SphericalToCartesian(raDeg, decDeg, dist float64) Vec3 {
	ra := degToRad(raDeg)
	dec := degToRad(decDeg)

	cosDec := math.Cos(dec)
	return Vec3{
		X: dist * cosDec * math.Cos(ra),
		Y: dist * cosDec * math.Sin(ra),
		Z: dist * math.Sin(dec),
	}
}

// CartesianToSpherical inverts SphericalToCartesian, returning RA in [0, 360),
// Dec in [-90, 90] and the radial distance. A zero vector maps to the origin
// direction (0, 0) with zero distance.
func CartesianToSpherical(v Vec3) (raDeg, decDeg, dist float64) {
	dist = v.Norm()
	if dist == 0 {
		return 0, 0, 0
	}

	decDeg = radToDeg(math.Asin(clamp(v.Z/dist, -1, 1)))
	raDeg = normalize360(radToDeg(math.Atan2(v.Y, v.X)))
	return raDeg, decDeg, dist
}
