// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package decoder

import (
	"slices"

	"github.com/wneessen/nmea-report/internal/vartype"
)

// Satellite is a single satellite in view as reported by a GSV sentence.
type Satellite struct {
	ID        string
	Elevation string
	Azimuth   string
	SNR       string
}

// FixState holds the latest formatted value of every field decoded so far. It is not
// a history: each field is overwritten in place by the sentence types that carry it.
type FixState struct {
	// RMC, GLL
	Time      vartype.VarString
	Latitude  vartype.VarString
	Longitude vartype.VarString
	Status    vartype.VarString

	// RMC
	Date              vartype.VarString
	Speed             vartype.VarString
	Course            vartype.VarString
	MagneticVariation vartype.VarString
	Checksum          vartype.VarString

	// GGA
	FixQuality      vartype.VarString
	SatellitesInUse vartype.VarString
	Altitude        vartype.VarString
	GeoidSeparation vartype.VarString

	// GGA, GSA
	HDOP vartype.VarString

	// GSA
	Mode           vartype.VarString
	PDOP           vartype.VarString
	VDOP           vartype.VarString
	UsedSatellites []string

	// GSV
	SatellitesInView  vartype.VarString
	VisibleSatellites []Satellite
}

// NewFixState returns an empty fix state.
func NewFixState() *FixState {
	return &FixState{
		UsedSatellites:    make([]string, 0),
		VisibleSatellites: make([]Satellite, 0),
	}
}

// Clone returns a deep copy of st that can be modified without affecting st.
func (st *FixState) Clone() *FixState {
	clone := *st
	clone.UsedSatellites = slices.Clone(st.UsedSatellites)
	clone.VisibleSatellites = slices.Clone(st.VisibleSatellites)
	return &clone
}
