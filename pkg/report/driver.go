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
	"context"
	"errors"
	"fmt"
	"io"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/carverauto/regreport/pkg/logger"
	"github.com/carverauto/regreport/pkg/models"
)

const tracerName = "github.com/carverauto/regreport/pkg/report"

// Driver turns input rows into report rows, one at a time and in input order.
type Driver struct {
	Lookup   Lookup
	Progress Progress
	Logger   logger.Logger
	Tracer   trace.Tracer
}

// Run processes every record of r. A lookup failure never stops the run; reader errors,
// writer errors and cancellation do. Rows written before an early return stay written.
func (d *Driver) Run(ctx context.Context, r RecordReader, w RecordWriter) (*Summary, error) {
	log := d.Logger
	if log == nil {
		log = logger.NewTestLogger()
	}

	tracer := d.Tracer
	if tracer == nil {
		tracer = logger.GetTracer(tracerName)
	}

	summary := NewSummary()

	for {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		in, err := r.Read()
		if errors.Is(err, io.EOF) {
			return summary, nil
		}

		if err != nil {
			return summary, err
		}

		out := d.processRecord(ctx, tracer, in)

		// Rows resolved after cancellation are dropped.
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		// Rows stopped at the account or device stage get no progress line.
		if d.Progress != nil && out.DeviceStatus.FromRegistration() {
			d.Progress.Report(&out)
		}

		if err := w.Write(&out); err != nil {
			return summary, fmt.Errorf("%w: row %d: %w", errWriteFailed, in.Row, err)
		}

		summary.Add(out.DeviceStatus)

		log.Debug().
			Int("row", in.Row).
			Str("account_number", in.AccountNumber).
			Str("mac_address", in.MACAddress).
			Int("line_number", in.LineNumber).
			Str("status", string(out.DeviceStatus)).
			Msg("Row processed")
	}
}

func (d *Driver) processRecord(ctx context.Context, tracer trace.Tracer, in *models.InputRecord) models.OutputRecord {
	ctx, span := tracer.Start(ctx, "report.row", trace.WithAttributes(
		attribute.Int("report.row", in.Row),
		attribute.String("alianza.account_number", in.AccountNumber),
	))
	defer span.End()

	status := d.classify(ctx, in)
	span.SetAttributes(attribute.String("report.device_status", string(status)))

	return models.NewOutputRecord(in, status)
}

func (d *Driver) classify(ctx context.Context, in *models.InputRecord) models.DeviceStatus {
	accountID, ok := d.Lookup.ResolveAccountID(ctx, in.AccountNumber)
	if !ok || accountID == "" {
		return models.StatusAccountNotFound
	}

	deviceID, ok := d.Lookup.ResolveDeviceID(ctx, accountID, in.MACAddress, in.LineNumber)
	if !ok || deviceID == "" {
		return models.StatusDeviceNotFound
	}

	return models.StatusFromRegistration(d.Lookup.RegistrationStatus(ctx, accountID, deviceID))
}

// Summary counts report rows per status.
type Summary struct {
	Total  int
	counts map[models.DeviceStatus]int
}

func NewSummary() *Summary {
	return &Summary{counts: make(map[models.DeviceStatus]int)}
}

func (s *Summary) Add(status models.DeviceStatus) {
	s.Total++
	s.counts[status]++
}

func (s *Summary) Count(status models.DeviceStatus) int {
	return s.counts[status]
}
