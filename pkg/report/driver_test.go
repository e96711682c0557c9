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
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.uber.org/mock/gomock"

	"github.com/carverauto/regreport/pkg/logger"
	"github.com/carverauto/regreport/pkg/models"
)

func runDriver(t *testing.T, ctx context.Context, lookup Lookup, input string) (string, []string, *Summary, error) {
	t.Helper()

	reader, err := NewCSVReader(strings.NewReader(input))
	require.NoError(t, err)

	var out bytes.Buffer

	writer, err := NewCSVWriter(&out)
	require.NoError(t, err)

	var progress []string

	d := &Driver{
		Lookup: lookup,
		Progress: ProgressFunc(func(rec *models.OutputRecord) {
			progress = append(progress, rec.AccountNumber+"|"+string(rec.DeviceStatus))
		}),
		Logger: logger.NewTestLogger(),
	}

	summary, err := d.Run(ctx, reader, writer)

	return out.String(), progress, summary, err
}

func TestDriver_ListResponseExample(t *testing.T) {
	ctrl := gomock.NewController(t)
	lookup := NewMockLookup(ctrl)

	gomock.InOrder(
		lookup.EXPECT().ResolveAccountID(gomock.Any(), "1001").Return("acc1", true),
		lookup.EXPECT().ResolveDeviceID(gomock.Any(), "acc1", "AA:BB:CC", 2).Return("d2", true),
		lookup.EXPECT().RegistrationStatus(gomock.Any(), "acc1", "d2").Return(true, true),
	)

	out, progress, summary, err := runDriver(t, context.Background(), lookup,
		"accountNumber,macAddress,lineNumber\n1001,AA:BB:CC,2\n")
	require.NoError(t, err)

	assert.Equal(t, "accountNumber,macAddress,lineNumber,deviceStatus\n1001,AA:BB:CC,2,Registered\n", out)
	assert.Equal(t, []string{"1001|Registered"}, progress)
	assert.Equal(t, 1, summary.Total)
	assert.Equal(t, 1, summary.Count(models.StatusRegistered))
}

func TestDriver_ShortCircuits(t *testing.T) {
	ctrl := gomock.NewController(t)
	lookup := NewMockLookup(ctrl)

	// Row 1: account missing, no further calls.
	lookup.EXPECT().ResolveAccountID(gomock.Any(), "1").Return("", false)

	// Row 2: device missing, no registration call.
	lookup.EXPECT().ResolveAccountID(gomock.Any(), "2").Return("acc2", true)
	lookup.EXPECT().ResolveDeviceID(gomock.Any(), "acc2", "M2", 1).Return("", false)

	// Row 3: registered false.
	lookup.EXPECT().ResolveAccountID(gomock.Any(), "3").Return("acc3", true)
	lookup.EXPECT().ResolveDeviceID(gomock.Any(), "acc3", "M3", 1).Return("d3", true)
	lookup.EXPECT().RegistrationStatus(gomock.Any(), "acc3", "d3").Return(false, true)

	// Row 4: registration lookup failed.
	lookup.EXPECT().ResolveAccountID(gomock.Any(), "4").Return("acc4", true)
	lookup.EXPECT().ResolveDeviceID(gomock.Any(), "acc4", "M4", 2).Return("d4", true)
	lookup.EXPECT().RegistrationStatus(gomock.Any(), "acc4", "d4").Return(false, false)

	// Row 5: empty ids count as absent.
	lookup.EXPECT().ResolveAccountID(gomock.Any(), "5").Return("", true)

	out, progress, summary, err := runDriver(t, context.Background(), lookup, strings.Join([]string{
		"accountNumber,macAddress,lineNumber",
		"1,M1,1",
		"2,M2,1",
		"3,M3,1",
		"4,M4,2",
		"5,M5,1",
		"",
	}, "\n"))
	require.NoError(t, err)

	assert.Equal(t, strings.Join([]string{
		"accountNumber,macAddress,lineNumber,deviceStatus",
		"1,M1,1,Account Not Found",
		"2,M2,1,Device Not Found",
		"3,M3,1,NOT Registered",
		"4,M4,2,NOT Registered",
		"5,M5,1,Account Not Found",
		"",
	}, "\n"), out)

	assert.Equal(t, []string{
		"3|NOT Registered",
		"4|NOT Registered",
	}, progress)

	assert.Equal(t, 5, summary.Total)
	assert.Equal(t, 2, summary.Count(models.StatusAccountNotFound))
	assert.Equal(t, 1, summary.Count(models.StatusDeviceNotFound))
	assert.Equal(t, 2, summary.Count(models.StatusNotRegistered))
	assert.Zero(t, summary.Count(models.StatusRegistered))
}

func TestDriver_MalformedRowStopsRun(t *testing.T) {
	ctrl := gomock.NewController(t)
	lookup := NewMockLookup(ctrl)

	lookup.EXPECT().ResolveAccountID(gomock.Any(), "1").Return("", false)

	out, _, summary, err := runDriver(t, context.Background(), lookup,
		"accountNumber,macAddress,lineNumber\n1,M1,1\n2,M2,two\n3,M3,3\n")

	var rowErr *RowError
	require.ErrorAs(t, err, &rowErr)
	assert.Equal(t, 2, rowErr.Row)
	assert.Equal(t, 3, rowErr.Line)
	require.ErrorIs(t, err, ErrInvalidLineNumber)

	assert.Equal(t, "accountNumber,macAddress,lineNumber,deviceStatus\n1,M1,1,Account Not Found\n", out)
	assert.Equal(t, 1, summary.Total)
}

func TestDriver_WriteFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	lookup := NewMockLookup(ctrl)
	reader := NewMockRecordReader(ctrl)
	writer := NewMockRecordWriter(ctrl)

	diskFull := errors.New("no space left on device")

	reader.EXPECT().Read().Return(&models.InputRecord{AccountNumber: "1", MACAddress: "M", LineNumber: 1, Row: 1}, nil)
	lookup.EXPECT().ResolveAccountID(gomock.Any(), "1").Return("", false)
	writer.EXPECT().Write(gomock.Any()).Return(diskFull)

	_, err := (&Driver{Lookup: lookup}).Run(context.Background(), reader, writer)
	require.ErrorIs(t, err, diskFull)
	require.ErrorIs(t, err, errWriteFailed)
}

func TestDriver_ReaderFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	reader := NewMockRecordReader(ctrl)

	readErr := &RowError{Row: 1, Line: 2, Err: io.ErrUnexpectedEOF}
	reader.EXPECT().Read().Return(nil, readErr)

	summary, err := (&Driver{Lookup: NewMockLookup(ctrl)}).Run(context.Background(), reader, NewMockRecordWriter(ctrl))
	require.ErrorIs(t, err, io.ErrUnexpectedEOF)
	assert.Zero(t, summary.Total)
}

func TestDriver_CancelledMidRow(t *testing.T) {
	ctrl := gomock.NewController(t)
	lookup := NewMockLookup(ctrl)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	lookup.EXPECT().ResolveAccountID(gomock.Any(), "1").Return("acc1", true)
	lookup.EXPECT().ResolveDeviceID(gomock.Any(), "acc1", "M1", 1).Return("d1", true)
	lookup.EXPECT().RegistrationStatus(gomock.Any(), "acc1", "d1").Return(true, true)
	lookup.EXPECT().ResolveAccountID(gomock.Any(), "2").
		DoAndReturn(func(context.Context, string) (string, bool) {
			cancel()
			return "", false
		})

	out, progress, summary, err := runDriver(t, ctx, lookup,
		"accountNumber,macAddress,lineNumber\n1,M1,1\n2,M2,1\n3,M3,1\n")
	require.ErrorIs(t, err, context.Canceled)

	assert.Equal(t, "accountNumber,macAddress,lineNumber,deviceStatus\n1,M1,1,Registered\n", out)
	assert.Equal(t, []string{"1|Registered"}, progress)
	assert.Equal(t, 1, summary.Total)
}

func TestDriver_RowSpans(t *testing.T) {
	ctrl := gomock.NewController(t)
	lookup := NewMockLookup(ctrl)
	reader := NewMockRecordReader(ctrl)
	writer := NewMockRecordWriter(ctrl)

	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))

	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	gomock.InOrder(
		reader.EXPECT().Read().Return(&models.InputRecord{AccountNumber: "1", MACAddress: "M", LineNumber: 1, Row: 1}, nil),
		reader.EXPECT().Read().Return(nil, io.EOF),
	)
	lookup.EXPECT().ResolveAccountID(gomock.Any(), "1").Return("", false)
	writer.EXPECT().Write(gomock.Any()).Return(nil)

	d := &Driver{Lookup: lookup, Tracer: tp.Tracer("test")}

	summary, err := d.Run(context.Background(), reader, writer)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Total)

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "report.row", spans[0].Name())

	attrs := map[string]string{}
	for _, kv := range spans[0].Attributes() {
		attrs[string(kv.Key)] = kv.Value.Emit()
	}

	assert.Equal(t, "Account Not Found", attrs["report.device_status"])
	assert.Equal(t, "1", attrs["report.row"])
}
