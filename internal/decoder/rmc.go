// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package decoder

// RMC: Recommended Minimum Navigation Information
// Fields:
//
//	 0: talker+type
//	 1: time (hhmmss.sss)
//	 2: status (A=active, V=void)
//	 3: latitude (ddmm.mmmm)
//	 4: N/S
//	 5: longitude (dddmm.mmmm)
//	 6: E/W
//	 7: speed over ground (knots)
//	 8: course over ground (deg)
//	 9: date (ddmmyy)
//	10: magnetic variation (deg)
//	11: E/W, may carry the "*hh" checksum inline
func (d *Decoder) decodeRMC(st *FixState, s Sentence) {
	set(&st.Time, s, 1, formatTime)
	set(&st.Status, s, 2, d.status)
	d.coordinate(&st.Latitude, s, 3, latitudeDegreeDigits)
	d.coordinate(&st.Longitude, s, 5, longitudeDegreeDigits)
	set(&st.Speed, s, 7, compactNumber)
	set(&st.Course, s, 8, func(val string) string {
		return formatAngle(val, d.coursePrecision)
	})
	set(&st.Date, s, 9, formatDate)
	set(&st.MagneticVariation, s, 10, func(val string) string {
		return formatMagneticVariation(val, s.Field(11))
	})
	st.Checksum.Set(s.Checksum)
}
