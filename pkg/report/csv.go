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
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/carverauto/regreport/pkg/models"
)

const (
	ColumnAccountNumber = "accountNumber"
	ColumnMACAddress    = "macAddress"
	ColumnLineNumber    = "lineNumber"
	ColumnDeviceStatus  = "deviceStatus"

	utf8BOM = "\ufeff"
)

// OutputHeader is the header row of every report.
func OutputHeader() []string {
	return []string{ColumnAccountNumber, ColumnMACAddress, ColumnLineNumber, ColumnDeviceStatus}
}

// CSVReader reads InputRecords from a CSV stream with a header row. Columns are matched by
// name; unknown columns are ignored.
type CSVReader struct {
	r       *csv.Reader
	columns map[string]int
	row     int
}

// NewCSVReader consumes the header and checks that every required column is present.
func NewCSVReader(r io.Reader) (*CSVReader, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.ReuseRecord = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, &RowError{Line: 1, Err: ErrEmptyInput}
	}

	if err != nil {
		return nil, &RowError{Line: 1, Err: err}
	}

	line, _ := cr.FieldPos(0)

	columns := make(map[string]int, len(header))

	for i, name := range header {
		if i == 0 {
			name = strings.TrimPrefix(name, utf8BOM)
		}

		name = strings.TrimSpace(name)
		if _, dup := columns[name]; !dup {
			columns[name] = i
		}
	}

	for _, required := range []string{ColumnAccountNumber, ColumnMACAddress, ColumnLineNumber} {
		if _, ok := columns[required]; !ok {
			return nil, &RowError{Line: line, Err: fmt.Errorf("%w: %s", ErrMissingColumn, required)}
		}
	}

	return &CSVReader{r: cr, columns: columns}, nil
}

// Read returns the next record, or io.EOF once the input is exhausted.
func (c *CSVReader) Read() (*models.InputRecord, error) {
	record, err := c.r.Read()
	if errors.Is(err, io.EOF) {
		return nil, io.EOF
	}

	c.row++

	if err != nil {
		var parseErr *csv.ParseError
		if errors.As(err, &parseErr) {
			return nil, &RowError{Row: c.row, Line: parseErr.Line, Err: err}
		}

		return nil, &RowError{Row: c.row, Err: err}
	}

	line, _ := c.r.FieldPos(0)

	account, err := c.value(record, ColumnAccountNumber, line)
	if err != nil {
		return nil, err
	}

	mac, err := c.value(record, ColumnMACAddress, line)
	if err != nil {
		return nil, err
	}

	rawLine, err := c.value(record, ColumnLineNumber, line)
	if err != nil {
		return nil, err
	}

	lineNumber, err := strconv.Atoi(rawLine)
	if err != nil {
		return nil, &RowError{Row: c.row, Line: line, Err: fmt.Errorf("%w: %q", ErrInvalidLineNumber, rawLine)}
	}

	return &models.InputRecord{
		AccountNumber: account,
		MACAddress:    mac,
		LineNumber:    lineNumber,
		Row:           c.row,
	}, nil
}

func (c *CSVReader) value(record []string, column string, line int) (string, error) {
	idx := c.columns[column]
	if idx >= len(record) {
		return "", &RowError{Row: c.row, Line: line, Err: fmt.Errorf("%w: %s", ErrMissingValue, column)}
	}

	return strings.TrimSpace(record[idx]), nil
}

// CSVWriter writes OutputRecords, flushing after every row so an interrupted run keeps
// what it already wrote.
type CSVWriter struct {
	w *csv.Writer
}

// NewCSVWriter writes the header row immediately.
func NewCSVWriter(w io.Writer) (*CSVWriter, error) {
	cw := &CSVWriter{w: csv.NewWriter(w)}

	if err := cw.writeRow(OutputHeader()); err != nil {
		return nil, err
	}

	return cw, nil
}

func (c *CSVWriter) Write(rec *models.OutputRecord) error {
	return c.writeRow(rec.Fields())
}

func (c *CSVWriter) writeRow(fields []string) error {
	if err := c.w.Write(fields); err != nil {
		return err
	}

	c.w.Flush()

	return c.w.Error()
}
