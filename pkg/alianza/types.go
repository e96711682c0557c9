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
	"bytes"
	"encoding/json"
	"errors"
	"math"
)

// AuthorizeResponse is the body of a successful POST /authorize.
type AuthorizeResponse struct {
	AuthToken string `json:"authToken"`
}

// ResourceID accepts ids encoded as JSON strings or numbers. null decodes to "".
type ResourceID string

func (r *ResourceID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)

	switch {
	case bytes.Equal(b, []byte("null")):
		*r = ""
		return nil
	case len(b) > 0 && b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}

		*r = ResourceID(s)

		return nil
	default:
		var n json.Number
		if err := json.Unmarshal(b, &n); err != nil {
			return errors.Join(ErrUnexpectedShape, err)
		}

		*r = ResourceID(n.String())

		return nil
	}
}

// Account is the subset of the account resource regreport reads.
type Account struct {
	ID            ResourceID `json:"id"`
	AccountNumber string     `json:"accountNumber,omitempty"`
	Name          string     `json:"name,omitempty"`
}

// Device is one device line under an account.
type Device struct {
	ID         ResourceID      `json:"id"`
	MACAddress string          `json:"macAddress,omitempty"`
	LineNumber json.RawMessage `json:"lineNumber,omitempty"`
}

// Line reports the device's line number when the API sent a JSON number with an
// integral value. Strings, nulls and fractions report ok=false and never match.
func (d *Device) Line() (int, bool) {
	raw := bytes.TrimSpace(d.LineNumber)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return 0, false
	}

	var f float64
	if err := json.Unmarshal(raw, &f); err != nil {
		return 0, false
	}

	if f != math.Trunc(f) || f > math.MaxInt32 || f < math.MinInt32 {
		return 0, false
	}

	return int(f), true
}

// DeviceShape records whether the device endpoint answered with one object or a list.
type DeviceShape int

const (
	ShapeObject DeviceShape = iota
	ShapeList
)

func (s DeviceShape) String() string {
	if s == ShapeList {
		return "list"
	}

	return "object"
}

// DeviceLookup is the decoded answer of the device endpoint.
type DeviceLookup struct {
	Shape   DeviceShape
	Devices []Device
}

// RegistrationStatus is the body of the registrationstatus endpoint.
type RegistrationStatus struct {
	Registered *bool `json:"registered"`
}

// IsRegistered treats an absent field as false.
func (r *RegistrationStatus) IsRegistered() bool {
	return r.Registered != nil && *r.Registered
}

// Outcome classifies a lookup for logging. The report itself only sees found or absent.
type Outcome int

const (
	OutcomeFound Outcome = iota
	OutcomeNotFound
	OutcomeFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeFound:
		return "found"
	case OutcomeNotFound:
		return "not_found"
	default:
		return "failed"
	}
}

// Classify separates genuine absence from transport, server and payload failures.
func Classify(err error) Outcome {
	switch {
	case err == nil:
		return OutcomeFound
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrMissingID), errors.Is(err, ErrNoMatchingLine):
		return OutcomeNotFound
	default:
		return OutcomeFailed
	}
}
