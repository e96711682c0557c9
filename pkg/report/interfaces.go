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

// Package report drives the per-row lookup chain and reads and writes the CSV files around it.
package report

import (
	"context"
	"time"

	"github.com/carverauto/regreport/pkg/models"
)

//go:generate mockgen -destination=mock_report.go -package=report github.com/carverauto/regreport/pkg/report Lookup,RecordReader,RecordWriter

// Lookup is the three-stage chain. Implementations never fail; absence is reported
// through the boolean.
type Lookup interface {
	ResolveAccountID(ctx context.Context, accountNumber string) (string, bool)
	ResolveDeviceID(ctx context.Context, accountID, mac string, lineNumber int) (string, bool)
	RegistrationStatus(ctx context.Context, accountID, deviceID string) (registered, ok bool)
}

// RecordReader yields input rows and returns io.EOF after the last one.
type RecordReader interface {
	Read() (*models.InputRecord, error)
}

// RecordWriter appends one report row.
type RecordWriter interface {
	Write(rec *models.OutputRecord) error
}

// Progress receives every finished row.
type Progress interface {
	Report(rec *models.OutputRecord)
}

// ProgressFunc adapts a function to Progress.
type ProgressFunc func(rec *models.OutputRecord)

func (f ProgressFunc) Report(rec *models.OutputRecord) { f(rec) }

// Clock abstracts time for output naming.
type Clock interface {
	Now() time.Time
}
