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

package report

import (
	"path/filepath"
	"strings"
	"time"
)

const timestampLayout = "20060102150405"

type realClock struct{}

func (realClock) Now() time.Time {
	return time.Now()
}

// SystemClock returns the wall clock.
func SystemClock() Clock {
	return realClock{}
}

// OutputPath names the report for input: <dir>/<stem>_REPORT_<YYYYMMDDHHMMSS>.csv, where stem is
// the input's base name up to its first dot and dir is outputDir, or the input's directory
// when outputDir is empty.
func OutputPath(input, outputDir string, now time.Time) string {
	base := filepath.Base(input)
	stem, _, _ := strings.Cut(base, ".")

	dir := outputDir
	if dir == "" {
		dir = filepath.Dir(input)
	}

	return filepath.Join(dir, stem+"_REPORT_"+now.Format(timestampLayout)+".csv")
}
