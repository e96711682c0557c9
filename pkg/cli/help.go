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
	"fmt"
	"io"
)

// ShowHelp writes the usage message to w.
func ShowHelp(w io.Writer) {
	_, _ = fmt.Fprint(w, `regreport: Alianza device registration report
Usage:
  regreport [options] <inputfile>

The input file is a CSV with the columns accountNumber, macAddress and lineNumber.
The report is written next to it as <name>_REPORT_<YYYYMMDDHHMMSS>.csv.

Options:
  -config string      path to a JSON config file
  -partition string   Alianza partition ID (overrides config and REGREPORT_PARTITION_ID)
  -endpoint string    API base URL (default "https://api.alianza.com/v2")
  -output-dir string  directory for the report (default: the input file's directory)
  -tui                log in through a full-screen form
  -log-level string   log level: trace, debug, info, warn, error
  -debug              enable debug logging
  -version            print the version and exit
  -help               show this help message

Examples:
  # Generate a report
  regreport -partition 1a2b3c devices.csv

  # Use a config file and write reports elsewhere
  regreport -config regreport.json -output-dir reports devices.csv
`)
}
