/*
 * Copyright 2025 Carver Automation Corporation.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package logger provides JSON structured logging using zerolog
package logger

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const (
	FormatJSON    = "json"
	FormatConsole = "console"

	outputStdout = "stdout"
	outputStderr = "stderr"
)

var errInvalidFormat = errors.New("invalid log format")

type Config struct {
	Level      string     `json:"level" yaml:"level"`
	Debug      bool       `json:"debug" yaml:"debug"`
	Output     string     `json:"output" yaml:"output"`
	Format     string     `json:"format" yaml:"format"`
	TimeFormat string     `json:"time_format" yaml:"time_format"`
	OTel       OTelConfig `json:"otel" yaml:"otel"`
}

// New builds a Logger. When w is nil the writer is chosen from config.Output.
func New(config *Config, w io.Writer) (Logger, error) {
	l, err := build(config, w)
	if err != nil {
		return nil, err
	}

	return &zlogger{logger: l}, nil
}

// FromZerolog adapts an already configured zerolog.Logger.
func FromZerolog(l zerolog.Logger) Logger {
	return &zlogger{logger: l}
}

func build(config *Config, w io.Writer) (zerolog.Logger, error) {
	if config == nil {
		config = DefaultConfig()
	}

	output := w
	if output == nil {
		output = os.Stderr

		if strings.EqualFold(config.Output, outputStdout) {
			output = os.Stdout
		}
	}

	switch strings.ToLower(config.Format) {
	case "", FormatJSON:
	case FormatConsole:
		output = zerolog.ConsoleWriter{Out: output, TimeFormat: time.Kitchen}
	default:
		return zerolog.Logger{}, fmt.Errorf("%w: %q", errInvalidFormat, config.Format)
	}

	level := zerolog.InfoLevel

	if config.Debug {
		level = zerolog.DebugLevel
	} else if config.Level != "" {
		var err error

		level, err = zerolog.ParseLevel(strings.ToLower(config.Level))
		if err != nil {
			return zerolog.Logger{}, err
		}
	}

	if config.TimeFormat != "" {
		zerolog.TimeFieldFormat = config.TimeFormat
	}

	return zerolog.New(output).
		Level(level).
		With().
		Timestamp().
		Logger(), nil
}
