// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/kkyr/fig"
)

const (
	configEnv = "NMEAREPORT"

	FormatTable    = "table"
	FormatTemplate = "template"
	FormatJSON     = "json"
	FormatYAML     = "yaml"

	CoordinatesDMS     = "dms"
	CoordinatesDecimal = "decimal"

	DefaultReportTpl = "{{loc \"time\"}}: {{.Time}} {{loc \"date\"}}: {{.Date}}\n" +
		"{{loc \"latitude\"}}: {{.Latitude}} {{loc \"longitude\"}}: {{.Longitude}}\n" +
		"{{loc \"satellites in view\"}}: {{.VisibleCount}}\n"
)

// DefaultTalkers are the talker IDs accepted when none are configured.
var DefaultTalkers = []string{"GP", "GL", "GB"}

// Config represents the application's configuration structure.
type Config struct {
	Locale   string     `fig:"locale"`
	LogLevel slog.Level `fig:"loglevel" default:"0"`

	Input struct {
		// Empty means stdin
		File string `fig:"file"`
	} `fig:"input"`

	Output struct {
		// Empty means stdout
		File string `fig:"file"`
		// Allowed values: table, template, json, yaml
		Format   string `fig:"format" default:"table"`
		Template string `fig:"template"`
	} `fig:"output"`

	Decoder struct {
		Talkers []string `fig:"talkers"`
		// Allowed values: dms, decimal
		CoordinateFormat string `fig:"coordinate_format" default:"dms"`
		// Allowed values: 3, 4
		MinutePrecision int `fig:"minute_precision" default:"3"`
		// Allowed values: 0, 1
		CoursePrecision int  `fig:"course_precision"`
		VerifyChecksum  bool `fig:"verify_checksum"`
	} `fig:"decoder"`

	MQTT struct {
		Enable   bool   `fig:"enable"`
		Broker   string `fig:"broker" default:"tcp://localhost:1883"`
		ClientID string `fig:"client_id" default:"nmea-report"`
		Topic    string `fig:"topic" default:"nmea/fix"`
		// Allowed values: 0, 1, 2
		QoS byte `fig:"qos"`
	} `fig:"mqtt"`
}

func NewFromFile(path, file string) (*Config, error) {
	conf := new(Config)
	_, err := os.Stat(filepath.Join(path, file))
	if err != nil {
		return conf, fmt.Errorf("failed to read Config: %w", err)
	}
	if err = fig.Load(conf, fig.Dirs(path), fig.File(file), fig.UseEnv(configEnv)); err != nil {
		return conf, fmt.Errorf("failed to load Config: %w", err)
	}

	return conf, conf.Validate()
}

func New() (*Config, error) {
	conf := new(Config)
	if err := fig.Load(conf, fig.AllowNoFile(), fig.UseEnv(configEnv)); err != nil {
		return conf, fmt.Errorf("failed to load Config: %w", err)
	}

	return conf, conf.Validate()
}

func (c *Config) Validate() error {
	if c.Locale == "" {
		c.Locale = getLocale()
	}

	switch c.Output.Format {
	case FormatTable, FormatJSON, FormatYAML:
	case FormatTemplate:
		if c.Output.Template == "" {
			c.Output.Template = DefaultReportTpl
		}
	default:
		return fmt.Errorf("invalid output format: %s", c.Output.Format)
	}

	if len(c.Decoder.Talkers) == 0 {
		c.Decoder.Talkers = append([]string(nil), DefaultTalkers...)
	}
	for i, talker := range c.Decoder.Talkers {
		talker = strings.ToUpper(strings.TrimSpace(talker))
		if len(talker) != 2 {
			return fmt.Errorf("invalid talker ID: %q", talker)
		}
		c.Decoder.Talkers[i] = talker
	}
	if c.Decoder.CoordinateFormat != CoordinatesDMS && c.Decoder.CoordinateFormat != CoordinatesDecimal {
		return fmt.Errorf("invalid coordinate format: %s", c.Decoder.CoordinateFormat)
	}
	if c.Decoder.MinutePrecision != 3 && c.Decoder.MinutePrecision != 4 {
		return fmt.Errorf("invalid minute precision: %d", c.Decoder.MinutePrecision)
	}
	if c.Decoder.CoursePrecision != 0 && c.Decoder.CoursePrecision != 1 {
		return fmt.Errorf("invalid course precision: %d", c.Decoder.CoursePrecision)
	}

	if c.MQTT.Enable {
		if c.MQTT.Topic == "" {
			return fmt.Errorf("mqtt topic must not be empty")
		}
		if c.MQTT.QoS > 2 {
			return fmt.Errorf("invalid mqtt qos: %d", c.MQTT.QoS)
		}
	}

	return nil
}

func getLocale() string {
	locale := os.Getenv("LC_MESSAGES")
	if idx := strings.Index(locale, "."); idx != -1 {
		lang := locale[:idx]
		return strings.ReplaceAll(lang, "_", "-")
	}
	return locale
}
