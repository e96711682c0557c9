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
	"errors"
	"fmt"
)

var (
	ErrMissingColumn     = errors.New("missing required column")
	ErrMissingValue      = errors.New("missing value")
	ErrInvalidLineNumber = errors.New("invalid lineNumber")
	ErrEmptyInput        = errors.New("input has no header row")
	errWriteFailed       = errors.New("failed to write report row")
)

// RowError locates a problem in the input file. Row 0 refers to the header.
type RowError struct {
	Row  int
	Line int
	Err  error
}

func (e *RowError) Error() string {
	if e.Row == 0 {
		return fmt.Sprintf("header (line %d): %v", e.Line, e.Err)
	}

	return fmt.Sprintf("row %d (line %d): %v", e.Row, e.Line, e.Err)
}

func (e *RowError) Unwrap() error {
	return e.Err
}
