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

package alianza

import (
	"errors"
	"fmt"
)

var (
	ErrUnexpectedStatusCode = errors.New("unexpected status code")
	ErrNotFound             = errors.New("resource not found")
	ErrAuthFailed           = errors.New("authentication failed")
	ErrTokenMissing         = errors.New("X-AUTH-TOKEN not found in response")
	ErrUnexpectedShape      = errors.New("unexpected response format")
	ErrMissingID            = errors.New("response carried no id")
	ErrNoMatchingLine       = errors.New("no device with matching line number")
	errDecodeFailed         = errors.New("failed to decode response")
)

const maxErrorBody = 512

// APIError is returned for any non-2xx response. It unwraps to ErrNotFound for 404,
// ErrAuthFailed for a rejected authorization, and ErrUnexpectedStatusCode otherwise.
type APIError struct {
	StatusCode int
	Path       string
	Body       string
	kind       error
}

func newAPIError(statusCode int, path string, body []byte, kind error) *APIError {
	if kind == nil {
		kind = ErrUnexpectedStatusCode
	}

	text := string(body)
	if len(text) > maxErrorBody {
		text = text[:maxErrorBody] + "..."
	}

	return &APIError{
		StatusCode: statusCode,
		Path:       path,
		Body:       text,
		kind:       kind,
	}
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%v: %d, response: %s", e.kind, e.StatusCode, e.Body)
}

func (e *APIError) Unwrap() error {
	return e.kind
}
