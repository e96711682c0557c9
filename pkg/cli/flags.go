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

package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
)

// ParseFlags parses args (without the program name). Usage problems come back as
// *ExitError with ExitFailure; -help and -version are reported through the config.
func ParseFlags(args []string, errOut io.Writer) (*CmdConfig, error) {
	cfg := &CmdConfig{}

	fs := flag.NewFlagSet("regreport", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&cfg.ConfigFile, "config", "", "path to a JSON config file")
	fs.StringVar(&cfg.PartitionID, "partition", "", "Alianza partition ID")
	fs.StringVar(&cfg.Endpoint, "endpoint", "", "API base URL")
	fs.StringVar(&cfg.OutputDir, "output-dir", "", "directory for the report")
	fs.BoolVar(&cfg.TUI, "tui", false, "log in through a full-screen form")
	fs.StringVar(&cfg.LogLevel, "log-level", "", "log level")
	fs.BoolVar(&cfg.Debug, "debug", false, "enable debug logging")
	fs.BoolVar(&cfg.ShowVersion, "version", false, "print the version and exit")
	fs.BoolVar(&cfg.Help, "help", false, "show this help message")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			cfg.Help = true

			return cfg, nil
		}

		return nil, usageError(errOut, err)
	}

	if cfg.Help || cfg.ShowVersion {
		return cfg, nil
	}

	switch fs.NArg() {
	case 0:
		return nil, usageError(errOut, errMissingInput)
	case 1:
		cfg.InputFile = strings.TrimSpace(fs.Arg(0))
	default:
		return nil, usageError(errOut, errTooManyArgs)
	}

	if cfg.InputFile == "" {
		return nil, usageError(errOut, errMissingInput)
	}

	return cfg, nil
}

func usageError(errOut io.Writer, err error) error {
	ShowHelp(errOut)

	return &ExitError{
		Code:    ExitFailure,
		Message: fmt.Sprintf("Error: %v", err),
		Err:     err,
	}
}
