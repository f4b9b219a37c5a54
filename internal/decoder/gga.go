// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package decoder

// GGA: Global Positioning System Fix Data
// Fields:
//
//	 6: fix quality (0=invalid)
//	 7: number of satellites in use
//	 8: HDOP
//	 9: altitude (meters)
//	10: units (M)
//	11: geoid separation (meters)
//
// Values are kept as transmitted.
func (d *Decoder) decodeGGA(st *FixState, s Sentence) {
	setRaw(&st.FixQuality, s, 6)
	setRaw(&st.SatellitesInUse, s, 7)
	setRaw(&st.HDOP, s, 8)
	setRaw(&st.Altitude, s, 9)
	setRaw(&st.GeoidSeparation, s, 11)
}
