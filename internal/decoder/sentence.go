// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package decoder

import (
	"errors"
	"strings"

	gonmea "github.com/adrianmo/go-nmea"
)

const (
	TypeRMC = "RMC"
	TypeGGA = "GGA"
	TypeGSA = "GSA"
	TypeGSV = "GSV"
	TypeGLL = "GLL"

	sentenceStart     = '$'
	checksumDelimiter = '*'
	fieldSeparator    = ","
)

var (
	ErrMissingStart     = errors.New("sentence does not start with '$'")
	ErrMissingChecksum  = errors.New("sentence has no '*' checksum delimiter")
	ErrUnknownTalker    = errors.New("unsupported talker ID")
	ErrUnknownSentence  = errors.New("unsupported sentence type")
	ErrChecksumMismatch = errors.New("checksum mismatch")
)

// Sentence is a single framed NMEA sentence split into its fields. Fields[0] holds the
// talker and type prefix, the checksum is kept separately and is not part of any field.
type Sentence struct {
	Raw      string
	Talker   string
	Type     string
	Fields   []string
	Checksum string
}

// parseSentence checks the framing of line and splits it into fields. It does not
// check the talker ID or the sentence type.
func parseSentence(line string) (Sentence, error) {
	if line == "" || line[0] != sentenceStart {
		return Sentence{}, ErrMissingStart
	}
	star := strings.LastIndexByte(line, checksumDelimiter)
	if star == -1 {
		return Sentence{}, ErrMissingChecksum
	}

	sent := Sentence{
		Raw:      line,
		Fields:   strings.Split(line[1:star], fieldSeparator),
		Checksum: strings.TrimSpace(line[star+1:]),
	}
	if len(line) >= 3 {
		sent.Talker = line[1:3]
	}
	if len(line) >= 6 {
		sent.Type = line[3:6]
	}
	return sent, nil
}

// Len returns the number of fields including the prefix field.
func (s Sentence) Len() int {
	return len(s.Fields)
}

// Has reports whether the sentence carries a field at index i.
func (s Sentence) Has(i int) bool {
	return i >= 0 && i < len(s.Fields)
}

// Field returns the trimmed field at index i. Out of range indices yield an empty string.
// Anything from a stray '*' onwards is cut off.
func (s Sentence) Field(i int) string {
	if !s.Has(i) {
		return ""
	}
	value, _ := stripChecksum(s.Fields[i])
	return value
}

// ChecksumValid reports whether the transmitted checksum matches the XOR of the payload.
func (s Sentence) ChecksumValid() bool {
	if len(s.Checksum) < 2 {
		return false
	}
	star := strings.LastIndexByte(s.Raw, checksumDelimiter)
	if star < 1 {
		return false
	}
	return strings.EqualFold(gonmea.Checksum(s.Raw[1:star]), s.Checksum[:2])
}

// stripChecksum splits a field that carries an inline "*hh" suffix into its value and
// the checksum. Fields without a '*' are returned unchanged.
func stripChecksum(field string) (string, string) {
	value, checksum, _ := strings.Cut(field, string(checksumDelimiter))
	return strings.TrimSpace(value), strings.TrimSpace(checksum)
}
