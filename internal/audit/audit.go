// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package audit

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/vorlif/spreak"

	"github.com/wneessen/nmea-report/internal/decoder"
	"github.com/wneessen/nmea-report/internal/i18n"
	"github.com/wneessen/nmea-report/internal/logger"
)

// Trail writes one verdict line per decoded input line.
type Trail struct {
	output    io.Writer
	logger    *logger.Logger
	localizer *spreak.Localizer

	accepted uint64
	rejected uint64
}

// New returns a Trail writing to output. Verdicts are translated with loc.
func New(output io.Writer, log *logger.Logger, loc *spreak.Localizer) *Trail {
	return &Trail{
		output:    output,
		logger:    log,
		localizer: loc,
	}
}

// Record writes "{line} -> {verdict}" for out.
func (t *Trail) Record(out decoder.Outcome) error {
	if out.Accepted() {
		t.accepted++
	} else {
		t.rejected++
		if t.logger != nil {
			t.logger.Debug("sentence rejected", slog.String("line", out.Line), logger.Err(out.Err))
		}
	}
	if out.Accepted() && !out.ChecksumOK && t.logger != nil {
		t.logger.Debug("checksum mismatch", slog.String("line", out.Line),
			slog.String("checksum", out.Sentence.Checksum))
	}

	if _, err := fmt.Fprintf(t.output, "%s -> %s\n", out.Line, i18n.Get(t.localizer, out.Verdict.MsgID())); err != nil {
		return fmt.Errorf("failed to write audit line: %w", err)
	}
	return nil
}

// Accepted returns the number of accepted lines recorded so far.
func (t *Trail) Accepted() uint64 {
	return t.accepted
}

// Rejected returns the number of rejected lines recorded so far.
func (t *Trail) Rejected() uint64 {
	return t.rejected
}
