// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package decoder

import "strconv"

const (
	gsvFirstSatellite = 4
	gsvGroupSize      = 4
)

// GSV: Satellites in View
// Fields:
//
//	1: number of messages in this group
//	2: message number
//	3: satellites in view
//	4..: repeating PRN, elevation, azimuth, SNR
//
// The first message of a group starts a fresh list of visible satellites, following
// messages extend it. A trailing partial group, such as the NMEA 4.1 signal ID, is
// ignored.
func (d *Decoder) decodeGSV(st *FixState, s Sentence) {
	if num, err := strconv.Atoi(s.Field(2)); err == nil && num == 1 {
		st.VisibleSatellites = make([]Satellite, 0, s.Len()/gsvGroupSize)
		set(&st.SatellitesInView, s, 3, compactNumber)
	}

	for i := gsvFirstSatellite; i+gsvGroupSize-1 < s.Len(); i += gsvGroupSize {
		sat := Satellite{
			ID:        s.Field(i),
			Elevation: s.Field(i + 1),
			Azimuth:   s.Field(i + 2),
			SNR:       s.Field(i + 3),
		}
		if sat.ID == "" {
			continue
		}
		st.VisibleSatellites = append(st.VisibleSatellites, sat)
	}
}
