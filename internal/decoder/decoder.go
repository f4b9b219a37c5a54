// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package decoder

import (
	"fmt"
	"strings"

	"github.com/vorlif/spreak"
	"github.com/vorlif/spreak/localize"

	"github.com/wneessen/nmea-report/internal/config"
	"github.com/wneessen/nmea-report/internal/i18n"
	"github.com/wneessen/nmea-report/internal/vartype"
)

// Verdict is the result of validating a single line.
type Verdict int

const (
	Rejected Verdict = iota
	Accepted
)

// MsgID returns the untranslated message for the verdict.
func (v Verdict) MsgID() localize.MsgID {
	if v == Accepted {
		return "accepted"
	}
	return "rejected"
}

func (v Verdict) String() string {
	return v.MsgID()
}

// Outcome describes what happened to a single input line.
type Outcome struct {
	// Line is the input with surrounding whitespace removed.
	Line    string
	Verdict Verdict
	// Sentence is only populated for accepted lines.
	Sentence   Sentence
	ChecksumOK bool
	// Err holds the rejection reason.
	Err error
}

// Accepted reports whether the line was accepted and decoded.
func (o Outcome) Accepted() bool {
	return o.Verdict == Accepted
}

type fieldDecoder func(*Decoder, *FixState, Sentence)

var fieldDecoders = map[string]fieldDecoder{
	TypeRMC: (*Decoder).decodeRMC,
	TypeGGA: (*Decoder).decodeGGA,
	TypeGSA: (*Decoder).decodeGSA,
	TypeGSV: (*Decoder).decodeGSV,
	TypeGLL: (*Decoder).decodeGLL,
}

// Decoder validates lines and dispatches them to the field decoder of their sentence type.
type Decoder struct {
	talkers         map[string]struct{}
	decimalCoords   bool
	minutePrecision int
	coursePrecision int
	verifyChecksum  bool
	localizer       *spreak.Localizer
}

// New returns a Decoder configured from conf. Labels such as the fix mode and status are
// translated with loc, which may be nil.
func New(conf *config.Config, loc *spreak.Localizer) *Decoder {
	talkers := conf.Decoder.Talkers
	if len(talkers) == 0 {
		talkers = config.DefaultTalkers
	}
	dec := &Decoder{
		talkers:         make(map[string]struct{}, len(talkers)),
		decimalCoords:   conf.Decoder.CoordinateFormat == config.CoordinatesDecimal,
		minutePrecision: conf.Decoder.MinutePrecision,
		coursePrecision: conf.Decoder.CoursePrecision,
		verifyChecksum:  conf.Decoder.VerifyChecksum,
		localizer:       loc,
	}
	for _, talker := range talkers {
		dec.talkers[strings.ToUpper(talker)] = struct{}{}
	}
	return dec
}

// Validate checks the framing, talker ID and sentence type of raw without decoding it.
func (d *Decoder) Validate(raw string) Outcome {
	line := strings.TrimSpace(raw)
	out := Outcome{Line: line, Verdict: Rejected}

	sent, err := parseSentence(line)
	if err != nil {
		out.Err = err
		return out
	}
	if _, ok := d.talkers[sent.Talker]; !ok {
		out.Err = fmt.Errorf("%w: %q", ErrUnknownTalker, sent.Talker)
		return out
	}
	if _, ok := fieldDecoders[sent.Type]; !ok {
		out.Err = fmt.Errorf("%w: %q", ErrUnknownSentence, sent.Type)
		return out
	}

	out.ChecksumOK = sent.ChecksumValid()
	if d.verifyChecksum && !out.ChecksumOK {
		out.Err = fmt.Errorf("%w: got %q", ErrChecksumMismatch, sent.Checksum)
		return out
	}

	out.Verdict = Accepted
	out.Sentence = sent
	return out
}

// Decode validates raw and, if it is accepted, merges its fields into st. Rejected lines
// leave st untouched.
func (d *Decoder) Decode(st *FixState, raw string) Outcome {
	out := d.Validate(raw)
	if !out.Accepted() || st == nil {
		return out
	}
	fieldDecoders[out.Sentence.Type](d, st, out.Sentence)
	return out
}

// set stores the formatted field i of s into v. Fields the sentence does not carry
// leave v untouched.
func set(v *vartype.VarString, s Sentence, i int, format func(string) string) {
	if !s.Has(i) {
		return
	}
	v.Set(format(s.Field(i)))
}

// setRaw stores field i of s into v without conversion.
func setRaw(v *vartype.VarString, s Sentence, i int) {
	set(v, s, i, func(val string) string { return val })
}

// coordinate formats the value at field i with the hemisphere at field i+1.
func (d *Decoder) coordinate(v *vartype.VarString, s Sentence, i, degreeDigits int) {
	if !s.Has(i) {
		return
	}
	val, hemisphere := s.Field(i), s.Field(i+1)
	if d.decimalCoords {
		v.Set(formatCoordinateDecimal(val, hemisphere, degreeDigits))
		return
	}
	v.Set(formatCoordinateDMS(val, hemisphere, degreeDigits, d.minutePrecision))
}

func (d *Decoder) status(code string) string {
	if code == "A" {
		return d.tr(statusActive)
	}
	return d.tr(statusInactive)
}

func (d *Decoder) mode(selector, fixType string) string {
	modeLabel, fixLabel := vartype.Placeholder, vartype.Placeholder
	if msg, ok := modeLabels[selector]; ok {
		modeLabel = d.tr(msg)
	}
	if msg, ok := fixTypeLabels[fixType]; ok {
		fixLabel = d.tr(msg)
	}
	return modeLabel + ", " + fixLabel
}

func (d *Decoder) tr(msg localize.MsgID) string {
	return i18n.Get(d.localizer, msg)
}
