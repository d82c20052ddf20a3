// Package version provides build and version information.
package version

// Version is the current application version.
const Version = "0.3.0"

// Milestones:
// 0.3.0 - Binary star catalog with single-flight cache, barycentric layouts
// 0.2.0 - Ring feasibility model, rotation/tilt/atmosphere visual properties
// 0.1.0 - Initial release: sky view, system view, headless JSON layout export
