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

package models

import (
	"encoding/json"
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/carverauto/regreport/pkg/logger"
)

const (
	DefaultEndpoint = "https://api.alianza.com/v2"

	// PlaceholderPartition is what shipped sample configs carry until edited.
	PlaceholderPartition = "REPLACE-WITH-YOUR-ID"
)

// Duration is a time.Duration read from JSON as a Go duration string ("30s", "1m").
// Bare numbers, quoted or not, count as seconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = seconds(value)
		return nil
	case string:
		if n, err := strconv.ParseFloat(strings.TrimSpace(value), 64); err == nil && !math.IsNaN(n) && !math.IsInf(n, 0) {
			*d = seconds(n)
			return nil
		}

		dur, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("%w: %w", errInvalidDuration, err)
		}

		*d = Duration(dur)

		return nil
	default:
		return errInvalidDuration
	}
}

func seconds(n float64) Duration {
	return Duration(time.Duration(n * float64(time.Second)))
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

// ReportConfig is the runtime configuration for a report run.
type ReportConfig struct {
	// Endpoint is the API base URL; resource paths are appended to it.
	Endpoint    string `json:"endpoint"`
	PartitionID string `json:"partition_id"`

	// Timeout bounds each HTTP request. Zero leaves net/http's default (none).
	Timeout            Duration `json:"timeout"`
	InsecureSkipVerify bool     `json:"insecure_skip_verify"`

	// OutputDir overrides the directory the report is written to.
	OutputDir string `json:"output_dir,omitempty"`

	Logging *logger.Config `json:"logging,omitempty"`
}

// DefaultReportConfig returns a config with the public API endpoint and the
// environment-derived logging defaults. PartitionID is left empty.
func DefaultReportConfig() *ReportConfig {
	return &ReportConfig{
		Endpoint: DefaultEndpoint,
		Logging:  logger.DefaultConfig(),
	}
}

// Validate implements config.Validator.
func (c *ReportConfig) Validate() error {
	partition := strings.TrimSpace(c.PartitionID)

	switch partition {
	case "":
		return ErrMissingPartition
	case PlaceholderPartition:
		return ErrPlaceholderPartition
	}

	u, err := url.Parse(strings.TrimSpace(c.Endpoint))
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return fmt.Errorf("%w: %q", ErrInvalidEndpoint, c.Endpoint)
	}

	if c.Timeout < 0 {
		return ErrNegativeTimeout
	}

	return nil
}
