package utils

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

const metersPerMile = 1609.344

// FormatMiles renders a distance in meters as a human-readable miles string
func FormatMiles(distanceMeters float64) string {
	return fmt.Sprintf("%.1f mi", distanceMeters/metersPerMile)
}

// FormatDuration renders a duration in seconds as "Xh Ym" (or "Ym" under an hour)
func FormatDuration(durationSeconds float64) string {
	total := int(durationSeconds / 60)
	hours := total / 60
	minutes := total % 60

	if hours > 0 {
		return fmt.Sprintf("%dh %dm", hours, minutes)
	}
	return fmt.Sprintf("%dm", minutes)
}

// FormatETA renders an arrival time as localized clock time
func FormatETA(eta time.Time) string {
	return eta.Local().Format("3:04 PM")
}

// GoogleMapsURL builds a directions URL from the ordered stop addresses,
// joined with " to " the way the external maps handoff expects.
func GoogleMapsURL(addresses []string) string {
	if len(addresses) == 0 {
		return ""
	}
	query := strings.Join(addresses, " to ")
	return "https://maps.google.com/maps?q=" + url.QueryEscape(query)
}
