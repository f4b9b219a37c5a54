// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package decoder

// GLL: Geographic Position - Latitude/Longitude
// Fields:
//
//	1: latitude (ddmm.mmmm)
//	2: N/S
//	3: longitude (dddmm.mmmm)
//	4: E/W
//	5: time (hhmmss.sss)
//	6: status (A=active, V=void), optional
func (d *Decoder) decodeGLL(st *FixState, s Sentence) {
	d.coordinate(&st.Latitude, s, 1, latitudeDegreeDigits)
	d.coordinate(&st.Longitude, s, 3, longitudeDegreeDigits)
	set(&st.Time, s, 5, formatTime)
	st.Status.Set(d.status(s.Field(6)))
}
