// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package service

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/vorlif/spreak"

	"github.com/wneessen/nmea-report/internal/audit"
	"github.com/wneessen/nmea-report/internal/config"
	"github.com/wneessen/nmea-report/internal/decoder"
	"github.com/wneessen/nmea-report/internal/logger"
	"github.com/wneessen/nmea-report/internal/presenter"
	"github.com/wneessen/nmea-report/internal/publish"
)

const stdStream = "-"

// ErrDecodePanic is recorded for lines whose decoder panicked.
var ErrDecodePanic = errors.New("decoder panicked")

// Publisher receives every rendered report in addition to the output sink.
type Publisher interface {
	Publish(presenter.Report) error
	Close() error
}

type lineDecoder interface {
	Decode(*decoder.FixState, string) decoder.Outcome
}

// Service feeds input lines through the decoder and writes the audit trail and reports.
// It owns the single fix state of a run.
type Service struct {
	config    *config.Config
	decoder   lineDecoder
	localizer *spreak.Localizer
	logger    *logger.Logger
	presenter *presenter.Presenter
	publisher Publisher
	state     *decoder.FixState
}

// New returns a Service for conf. An MQTT publisher is connected if enabled in conf.
func New(conf *config.Config, log *logger.Logger, loc *spreak.Localizer) (*Service, error) {
	pres, err := presenter.New(conf, loc)
	if err != nil {
		return nil, fmt.Errorf("failed to create presenter: %w", err)
	}

	service := &Service{
		config:    conf,
		decoder:   decoder.New(conf, loc),
		localizer: loc,
		logger:    log,
		presenter: pres,
		state:     decoder.NewFixState(),
	}

	if conf.MQTT.Enable {
		pub, err := publish.New(conf)
		if err != nil {
			return nil, fmt.Errorf("failed to create MQTT publisher: %w", err)
		}
		service.publisher = pub
	}
	return service, nil
}

// Run opens the configured input and output, processes every line and releases both
// again, regardless of how processing ended.
func (s *Service) Run(ctx context.Context) error {
	if s.publisher != nil {
		defer func() {
			if err := s.publisher.Close(); err != nil {
				s.logger.Error("failed to close publisher", logger.Err(err))
			}
		}()
	}

	input, err := openInput(s.config.Input.File)
	if err != nil {
		return err
	}
	defer closeStream(s.logger, input)

	output, err := openOutput(s.config.Output.File)
	if err != nil {
		return err
	}
	defer closeStream(s.logger, output)

	return s.Process(ctx, input, output)
}

// Process reads lines from in until EOF or until ctx is cancelled. Audit lines and
// reports are written to out, which is flushed before Process returns.
func (s *Service) Process(ctx context.Context, in io.Reader, out io.Writer) (err error) {
	writer := bufio.NewWriter(out)
	defer func() {
		if flushErr := writer.Flush(); flushErr != nil && err == nil {
			err = fmt.Errorf("failed to flush output: %w", flushErr)
		}
	}()

	trail := audit.New(writer, s.logger, s.localizer)
	reader := bufio.NewReader(in)
	lines := 0
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		line, readErr := reader.ReadString('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			return fmt.Errorf("failed to read input: %w", readErr)
		}
		if line != "" || readErr == nil {
			lines++
			if err = s.processLine(trail, writer, line); err != nil {
				return err
			}
		}
		if errors.Is(readErr, io.EOF) {
			break
		}
	}

	s.logger.Info("finished processing input", slog.Int("lines", lines),
		slog.Uint64("accepted", trail.Accepted()), slog.Uint64("rejected", trail.Rejected()))
	return nil
}

// processLine decodes a single line into the fix state, records the verdict and renders
// the state for accepted lines. The line is decoded into a copy of the state which only
// replaces it once the decoder returns, so a panicking decoder is recorded as a rejection
// and leaves the state untouched.
func (s *Service) processLine(trail *audit.Trail, w io.Writer, line string) (err error) {
	recorded := false
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("recovered from decoder panic", slog.String("line", line), slog.Any("panic", r))
			err = nil
			if !recorded {
				err = trail.Record(decoder.Outcome{
					Line:    strings.TrimSpace(line),
					Verdict: decoder.Rejected,
					Err:     fmt.Errorf("%w: %v", ErrDecodePanic, r),
				})
			}
		}
	}()

	next := s.state.Clone()
	outcome := s.decoder.Decode(next, line)
	recorded = true
	if outcome.Accepted() {
		s.state = next
	}
	if err = trail.Record(outcome); err != nil {
		return err
	}
	if !outcome.Accepted() {
		return nil
	}

	report := s.presenter.BuildReport(s.state)
	if err = s.presenter.RenderReport(w, report); err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}
	if s.publisher != nil {
		if pubErr := s.publisher.Publish(report); pubErr != nil {
			s.logger.Warn("failed to publish report", logger.Err(pubErr))
		}
	}
	return nil
}

func openInput(path string) (io.ReadCloser, error) {
	if path == "" || path == stdStream {
		return io.NopCloser(os.Stdin), nil
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}
	return file, nil
}

func openOutput(path string) (io.WriteCloser, error) {
	if path == "" || path == stdStream {
		return nopWriteCloser{os.Stdout}, nil
	}
	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file: %w", err)
	}
	return file, nil
}

func closeStream(log *logger.Logger, c io.Closer) {
	if err := c.Close(); err != nil {
		log.Error("failed to close stream", logger.Err(err))
	}
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error {
	return nil
}
