// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package decoder

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/vorlif/spreak/localize"

	"github.com/wneessen/nmea-report/internal/vartype"
)

const (
	degreeSign = "º"
	minuteSign = "’"

	latitudeDegreeDigits  = 2
	longitudeDegreeDigits = 3
	decimalPrecision      = 6
)

var (
	modeLabels = map[string]localize.MsgID{
		"A": "automatic",
		"M": "manual",
	}
	fixTypeLabels = map[string]localize.MsgID{
		"1": "none",
		"2": "2D",
		"3": "3D",
	}
)

const (
	statusActive   localize.MsgID = "active"
	statusInactive localize.MsgID = "inactive"
)

// formatTime turns hhmmss[.sss] into h:mm:ss.
func formatTime(val string) string {
	h, m, s, ok := splitTriple(val)
	if !ok {
		return vartype.Placeholder
	}
	return fmt.Sprintf("%d:%02d:%02d", h, m, s)
}

// centuryPivot is the first two-digit year read as 19yy. GPS time starts in 1980.
const centuryPivot = 80

// formatDate turns ddmmyy into d.m.yyyy.
func formatDate(val string) string {
	day, month, year, ok := splitTriple(val)
	if !ok {
		return vartype.Placeholder
	}
	if year >= centuryPivot {
		year += 1900
	} else {
		year += 2000
	}
	return fmt.Sprintf("%d.%d.%d", day, month, year)
}

// splitTriple reads the first six characters of val as three two-digit numbers.
func splitTriple(val string) (int, int, int, bool) {
	if len(val) < 6 {
		return 0, 0, 0, false
	}
	var parts [3]int
	for i := range parts {
		n, err := strconv.Atoi(val[i*2 : i*2+2])
		if err != nil || n < 0 {
			return 0, 0, 0, false
		}
		parts[i] = n
	}
	return parts[0], parts[1], parts[2], true
}

// splitCoordinate splits ddmm.mmmm (or dddmm.mmmm) into degrees and minutes.
func splitCoordinate(val string, degreeDigits int) (int, float64, bool) {
	if len(val) <= degreeDigits {
		return 0, 0, false
	}
	deg, err := strconv.Atoi(val[:degreeDigits])
	if err != nil || deg < 0 {
		return 0, 0, false
	}
	mins, ok := parseNumber(val[degreeDigits:])
	if !ok || mins < 0 {
		return 0, 0, false
	}
	return deg, mins, true
}

// formatCoordinateDMS renders a coordinate as degrees and decimal minutes.
func formatCoordinateDMS(val, hemisphere string, degreeDigits, precision int) string {
	deg, mins, ok := splitCoordinate(val, degreeDigits)
	if !ok {
		return vartype.Placeholder
	}
	return strings.TrimSpace(fmt.Sprintf("%d%s%.*f%s %s", deg, degreeSign, precision, mins, minuteSign,
		hemisphere))
}

// formatCoordinateDecimal renders a coordinate as decimal degrees with the hemisphere letter.
func formatCoordinateDecimal(val, hemisphere string, degreeDigits int) string {
	deg, mins, ok := splitCoordinate(val, degreeDigits)
	if !ok {
		return vartype.Placeholder
	}
	dec := float64(deg) + mins/60
	return strings.TrimSpace(fmt.Sprintf("%.*f %s", decimalPrecision, dec, hemisphere))
}

// formatAngle renders an angle in degrees with the given number of decimals.
func formatAngle(val string, precision int) string {
	angle, ok := parseNumber(val)
	if !ok {
		return vartype.Placeholder
	}
	return fmt.Sprintf("%.*f%s", precision, angle, degreeSign)
}

// formatMagneticVariation renders the variation value with one decimal and its direction.
func formatMagneticVariation(val, direction string) string {
	if val == "" || direction == "" {
		return vartype.Placeholder
	}
	variation, ok := parseNumber(val)
	if !ok {
		return vartype.Placeholder
	}
	return fmt.Sprintf("%.1f%s %s", variation, degreeSign, direction)
}

// compactNumber renders a number with the fewest digits that round-trip, so "022.40"
// becomes "22.4" and "010.0" becomes "10".
func compactNumber(val string) string {
	num, ok := parseNumber(val)
	if !ok {
		return vartype.Placeholder
	}
	return strconv.FormatFloat(num, 'f', -1, 64)
}

// parseNumber parses a finite decimal number.
func parseNumber(val string) (float64, bool) {
	val = strings.TrimSpace(val)
	if val == "" {
		return 0, false
	}
	num, err := strconv.ParseFloat(val, 64)
	if err != nil || math.IsNaN(num) || math.IsInf(num, 0) {
		return 0, false
	}
	return num, true
}
