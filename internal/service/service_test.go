// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package service

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/wneessen/nmea-report/internal/config"
	"github.com/wneessen/nmea-report/internal/decoder"
	"github.com/wneessen/nmea-report/internal/i18n"
	"github.com/wneessen/nmea-report/internal/logger"
	"github.com/wneessen/nmea-report/internal/presenter"
)

const testDataFile = "../../testdata/gps_data.txt"

func TestNew(t *testing.T) {
	t.Run("new service succeeds", func(t *testing.T) {
		if _, err := testService(t, nil); err != nil {
			t.Fatalf("failed to create service: %s", err)
		}
	})
	t.Run("new service without MQTT has no publisher", func(t *testing.T) {
		serv, err := testService(t, nil)
		if err != nil {
			t.Fatalf("failed to create service: %s", err)
		}
		if serv.publisher != nil {
			t.Error("expected publisher to be nil")
		}
	})
	t.Run("new service with broken template fails", func(t *testing.T) {
		_, err := testService(t, func(conf *config.Config) {
			conf.Output.Format = config.FormatTemplate
			conf.Output.Template = "{{ .Latitude"
		})
		if err == nil {
			t.Error("expected service creation to fail")
		}
	})
}

func TestService_Process(t *testing.T) {
	t.Run("every line produces an audit entry", func(t *testing.T) {
		serv, err := testService(t, nil)
		if err != nil {
			t.Fatalf("failed to create service: %s", err)
		}
		input := testInput(t)
		output := bytes.NewBuffer(nil)
		if err = serv.Process(testContext(t), strings.NewReader(input), output); err != nil {
			t.Fatalf("failed to process input: %s", err)
		}

		for _, line := range strings.Split(strings.TrimSpace(input), "\n") {
			verdict := "accepted"
			if strings.HasPrefix(line, "$GPVTG") || !strings.HasPrefix(line, "$") {
				verdict = "rejected"
			}
			want := line + " -> " + verdict + "\n"
			if !strings.Contains(output.String(), want) {
				t.Errorf("expected output to contain %q", want)
			}
		}
	})
	t.Run("a report follows each accepted line", func(t *testing.T) {
		serv, err := testService(t, nil)
		if err != nil {
			t.Fatalf("failed to create service: %s", err)
		}
		output := bytes.NewBuffer(nil)
		if err = serv.Process(testContext(t), strings.NewReader(testInput(t)), output); err != nil {
			t.Fatalf("failed to process input: %s", err)
		}
		if got := strings.Count(output.String(), "SYSTEM INFORMATION"); got != 6 {
			t.Errorf("expected 6 reports, got %d", got)
		}
	})
	t.Run("rejected lines render no report", func(t *testing.T) {
		serv, err := testService(t, nil)
		if err != nil {
			t.Fatalf("failed to create service: %s", err)
		}
		output := bytes.NewBuffer(nil)
		input := "garbage line\n\n$GPVTG,054.7,T,034.4,M,005.5,N,010.2,K*48\n"
		if err = serv.Process(testContext(t), strings.NewReader(input), output); err != nil {
			t.Fatalf("failed to process input: %s", err)
		}
		want := "garbage line -> rejected\n -> rejected\n$GPVTG,054.7,T,034.4,M,005.5,N,010.2,K*48 -> rejected\n"
		if output.String() != want {
			t.Errorf("expected output %q, got %q", want, output.String())
		}
	})
	t.Run("last line without newline is processed", func(t *testing.T) {
		serv, err := testService(t, nil)
		if err != nil {
			t.Fatalf("failed to create service: %s", err)
		}
		output := bytes.NewBuffer(nil)
		input := "$GPGLL,4916.45,N,12311.12,W,225444,A*31"
		if err = serv.Process(testContext(t), strings.NewReader(input), output); err != nil {
			t.Fatalf("failed to process input: %s", err)
		}
		if !strings.HasPrefix(output.String(), input+" -> accepted\n") {
			t.Errorf("expected line to be accepted, got %q", output.String())
		}
	})
	t.Run("state accumulates across lines", func(t *testing.T) {
		serv, err := testService(t, func(conf *config.Config) {
			conf.Output.Format = config.FormatJSON
		})
		if err != nil {
			t.Fatalf("failed to create service: %s", err)
		}
		if err = serv.Process(testContext(t), strings.NewReader(testInput(t)), io.Discard); err != nil {
			t.Fatalf("failed to process input: %s", err)
		}
		if got := serv.state.Altitude.Value(); got != "545.4" {
			t.Errorf("expected altitude %q, got %q", "545.4", got)
		}
		if got := len(serv.state.VisibleSatellites); got != 8 {
			t.Errorf("expected 8 visible satellites, got %d", got)
		}
		if got := serv.state.Time.Value(); got != "22:54:44" {
			t.Errorf("expected time of last GLL sentence %q, got %q", "22:54:44", got)
		}
	})
	t.Run("panicking decoder does not stop processing", func(t *testing.T) {
		serv, err := testService(t, nil)
		if err != nil {
			t.Fatalf("failed to create service: %s", err)
		}
		logBuf := bytes.NewBuffer(nil)
		serv.logger = logger.NewLogger(slog.LevelDebug, logBuf)
		serv.decoder = &panicDecoder{next: serv.decoder, trigger: "boom"}

		output := bytes.NewBuffer(nil)
		input := "boom\n$GPGLL,4916.45,N,12311.12,W,225444,A*31\n"
		if err = serv.Process(testContext(t), strings.NewReader(input), output); err != nil {
			t.Fatalf("failed to process input: %s", err)
		}
		if !strings.HasPrefix(output.String(), "boom -> rejected\n") {
			t.Errorf("expected panicking line to be rejected, got %q", output.String())
		}
		if !strings.Contains(output.String(), "$GPGLL,4916.45,N,12311.12,W,225444,A*31 -> accepted\n") {
			t.Error("expected following line to be accepted")
		}
		if !strings.Contains(logBuf.String(), "recovered from decoder panic") {
			t.Errorf("expected panic to be logged, got %q", logBuf.String())
		}
	})
	t.Run("panicking decoder leaves the state untouched", func(t *testing.T) {
		serv, err := testService(t, nil)
		if err != nil {
			t.Fatalf("failed to create service: %s", err)
		}
		serv.decoder = &panicDecoder{next: serv.decoder, trigger: "boom"}

		input := "$GPGGA,123519,4807.038,N,01131.000,E,1,08,0.9,545.4,M,46.9,M,,*47\n" +
			"$GPGSV,2,1,08,01,40,083,46,02,17,308,41,12,07,344,39,14,22,228,45*75\nboom\n"
		if err = serv.Process(testContext(t), strings.NewReader(input), io.Discard); err != nil {
			t.Fatalf("failed to process input: %s", err)
		}
		if got := serv.state.Altitude.Value(); got != "545.4" {
			t.Errorf("expected altitude %q, got %q", "545.4", got)
		}
		if got := len(serv.state.VisibleSatellites); got != 4 {
			t.Errorf("expected 4 visible satellites, got %d", got)
		}
	})
	t.Run("cancelled context stops processing", func(t *testing.T) {
		serv, err := testService(t, nil)
		if err != nil {
			t.Fatalf("failed to create service: %s", err)
		}
		ctx, cancel := context.WithCancel(testContext(t))
		cancel()
		output := bytes.NewBuffer(nil)
		err = serv.Process(ctx, strings.NewReader(testInput(t)), output)
		if !errors.Is(err, context.Canceled) {
			t.Errorf("expected context.Canceled, got %v", err)
		}
		if output.Len() != 0 {
			t.Errorf("expected no output, got %q", output.String())
		}
	})
	t.Run("failing reader returns error", func(t *testing.T) {
		serv, err := testService(t, nil)
		if err != nil {
			t.Fatalf("failed to create service: %s", err)
		}
		err = serv.Process(testContext(t), &failReader{}, io.Discard)
		if err == nil {
			t.Fatal("expected processing to fail")
		}
		if !strings.Contains(err.Error(), "failed to read input") {
			t.Errorf("unexpected error: %s", err)
		}
	})
	t.Run("failing writer returns error", func(t *testing.T) {
		serv, err := testService(t, nil)
		if err != nil {
			t.Fatalf("failed to create service: %s", err)
		}
		err = serv.Process(testContext(t), strings.NewReader(testInput(t)), &failWriter{})
		if err == nil {
			t.Error("expected processing to fail")
		}
	})
	t.Run("reports are published", func(t *testing.T) {
		serv, err := testService(t, nil)
		if err != nil {
			t.Fatalf("failed to create service: %s", err)
		}
		pub := &fakePublisher{}
		serv.publisher = pub
		if err = serv.Process(testContext(t), strings.NewReader(testInput(t)), io.Discard); err != nil {
			t.Fatalf("failed to process input: %s", err)
		}
		if len(pub.reports) != 6 {
			t.Fatalf("expected 6 published reports, got %d", len(pub.reports))
		}
		if got := pub.reports[0].Status; got != "active" {
			t.Errorf("expected status %q, got %q", "active", got)
		}
	})
	t.Run("publish failures are logged but not fatal", func(t *testing.T) {
		serv, err := testService(t, nil)
		if err != nil {
			t.Fatalf("failed to create service: %s", err)
		}
		logBuf := bytes.NewBuffer(nil)
		serv.logger = logger.NewLogger(slog.LevelDebug, logBuf)
		serv.publisher = &fakePublisher{err: errors.New("broker gone")}
		if err = serv.Process(testContext(t), strings.NewReader(testInput(t)), io.Discard); err != nil {
			t.Fatalf("failed to process input: %s", err)
		}
		if !strings.Contains(logBuf.String(), "failed to publish report") {
			t.Errorf("expected publish failure to be logged, got %q", logBuf.String())
		}
	})
	t.Run("localized audit trail", func(t *testing.T) {
		serv, err := testService(t, func(conf *config.Config) {
			conf.Locale = "pl"
		})
		if err != nil {
			t.Fatalf("failed to create service: %s", err)
		}
		output := bytes.NewBuffer(nil)
		input := "garbage line\n$GPGLL,4916.45,N,12311.12,W,225444,A*31\n"
		if err = serv.Process(testContext(t), strings.NewReader(input), output); err != nil {
			t.Fatalf("failed to process input: %s", err)
		}
		if !strings.HasPrefix(output.String(), "garbage line -> odrzucona\n") {
			t.Errorf("expected polish rejection, got %q", output.String())
		}
		if !strings.Contains(output.String(), "$GPGLL,4916.45,N,12311.12,W,225444,A*31 -> zaakceptowana\n") {
			t.Errorf("expected polish acceptance, got %q", output.String())
		}
	})
}

func TestService_Run(t *testing.T) {
	t.Run("run reads input file and writes output file", func(t *testing.T) {
		outFile := filepath.Join(t.TempDir(), "report.txt")
		serv, err := testService(t, func(conf *config.Config) {
			conf.Input.File = testDataFile
			conf.Output.File = outFile
		})
		if err != nil {
			t.Fatalf("failed to create service: %s", err)
		}
		pub := &fakePublisher{}
		serv.publisher = pub
		if err = serv.Run(testContext(t)); err != nil {
			t.Fatalf("failed to run service: %s", err)
		}
		data, err := os.ReadFile(outFile)
		if err != nil {
			t.Fatalf("failed to read output file: %s", err)
		}
		if !strings.Contains(string(data), "garbage line -> rejected\n") {
			t.Error("expected output file to contain audit trail")
		}
		if !pub.closed {
			t.Error("expected publisher to be closed")
		}
	})
	t.Run("run with missing input file fails", func(t *testing.T) {
		serv, err := testService(t, func(conf *config.Config) {
			conf.Input.File = filepath.Join(t.TempDir(), "does-not-exist.txt")
		})
		if err != nil {
			t.Fatalf("failed to create service: %s", err)
		}
		if err = serv.Run(testContext(t)); err == nil {
			t.Error("expected run to fail")
		}
	})
	t.Run("run with unwritable output fails", func(t *testing.T) {
		serv, err := testService(t, func(conf *config.Config) {
			conf.Input.File = testDataFile
			conf.Output.File = filepath.Join(t.TempDir(), "missing", "report.txt")
		})
		if err != nil {
			t.Fatalf("failed to create service: %s", err)
		}
		if err = serv.Run(testContext(t)); err == nil {
			t.Error("expected run to fail")
		}
	})
}

func testService(t *testing.T, modify func(*config.Config)) (*Service, error) {
	t.Helper()
	conf, err := config.New()
	if err != nil {
		return nil, err
	}
	conf.Locale = "en"
	if modify != nil {
		modify(conf)
	}
	if err = conf.Validate(); err != nil {
		return nil, err
	}

	lang, err := i18n.New(conf.Locale)
	if err != nil {
		return nil, err
	}
	return New(conf, logger.NewLogger(conf.LogLevel, io.Discard), lang)
}

func testInput(t *testing.T) string {
	t.Helper()
	data, err := os.ReadFile(testDataFile)
	if err != nil {
		t.Fatalf("failed to read test data: %s", err)
	}
	return string(data)
}

type panicDecoder struct {
	next    lineDecoder
	trigger string
}

func (p *panicDecoder) Decode(st *decoder.FixState, line string) decoder.Outcome {
	if strings.TrimSpace(line) == p.trigger {
		st.Altitude.Set("9999")
		st.VisibleSatellites = append(st.VisibleSatellites, decoder.Satellite{ID: "99"})
		panic("unexpected input")
	}
	return p.next.Decode(st, line)
}

type fakePublisher struct {
	reports []presenter.Report
	err     error
	closed  bool
}

func (f *fakePublisher) Publish(report presenter.Report) error {
	if f.err != nil {
		return f.err
	}
	f.reports = append(f.reports, report)
	return nil
}

func (f *fakePublisher) Close() error {
	f.closed = true
	return nil
}

type failReader struct{}

func (failReader) Read([]byte) (int, error) {
	return 0, errors.New("intentionally failing")
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) {
	return 0, errors.New("intentionally failing")
}

// testContext returns a context that is canceled when the test finishes,
// standing in for testing.T.Context on toolchains older than Go 1.24.
func testContext(t testing.TB) context.Context {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	return ctx
}
