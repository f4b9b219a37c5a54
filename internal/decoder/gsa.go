// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package decoder

const (
	gsaFirstPRN = 3
	gsaLastPRN  = 14
)

// GSA: GNSS DOP and Active Satellites
// Fields:
//
//	    1: mode (A=automatic, M=manual)
//	    2: fix type (1=none, 2=2D, 3=3D)
//	3..14: PRNs of satellites used in the fix
//	   15: PDOP
//	   16: HDOP
//	   17: VDOP
func (d *Decoder) decodeGSA(st *FixState, s Sentence) {
	if s.Has(1) {
		st.Mode.Set(d.mode(s.Field(1), s.Field(2)))
	}

	used := make([]string, 0, gsaLastPRN-gsaFirstPRN+1)
	for i := gsaFirstPRN; i <= gsaLastPRN && s.Has(i); i++ {
		if prn := s.Field(i); prn != "" {
			used = append(used, prn)
		}
	}
	st.UsedSatellites = used

	setRaw(&st.PDOP, s, 15)
	setRaw(&st.HDOP, s, 16)
	setRaw(&st.VDOP, s, 17)
}
