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
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/carverauto/regreport/pkg/logger"
)

// Session binds a Client to the token of one authenticated run.
type Session struct {
	client *Client
	tokens TokenProvider
	logger logger.Logger
}

// NewSession returns a Session that attaches the token from tokens to every request.
func NewSession(client *Client, tokens TokenProvider) *Session {
	return &Session{
		client: client,
		tokens: tokens,
		logger: client.logger.WithComponent("alianza"),
	}
}

func (s *Session) get(ctx context.Context, spanName, path, rawQuery string) ([]byte, error) {
	token, err := s.tokens.GetAccessToken(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get access token: %w", err)
	}

	body, _, err := s.client.do(ctx, spanName, http.MethodGet, path, rawQuery, token, nil)

	return body, err
}

// FetchAccount looks an account up by its external account number.
func (s *Session) FetchAccount(ctx context.Context, accountNumber string) (*Account, error) {
	q := url.Values{}
	q.Set("accountIdType", "AccountNumber")

	body, err := s.get(ctx, "alianza.account.get", s.client.partitionPath("account", accountNumber), q.Encode())
	if err != nil {
		return nil, err
	}

	var account Account
	if err := decode(body, &account); err != nil {
		return nil, err
	}

	return &account, nil
}

// FetchDevices returns the device lines registered for mac under accountID. The endpoint
// answers with either one object or a list; anything else is ErrUnexpectedShape.
func (s *Session) FetchDevices(ctx context.Context, accountID, mac string) (*DeviceLookup, error) {
	body, err := s.get(ctx, "alianza.device.get", s.client.partitionPath("account", accountID, "device", mac), "")
	if err != nil {
		return nil, err
	}

	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("%w: empty body", ErrUnexpectedShape)
	}

	switch trimmed[0] {
	case '{':
		var d Device
		if err := decode(trimmed, &d); err != nil {
			return nil, err
		}

		return &DeviceLookup{Shape: ShapeObject, Devices: []Device{d}}, nil
	case '[':
		var devices []Device
		if err := decode(trimmed, &devices); err != nil {
			return nil, err
		}

		return &DeviceLookup{Shape: ShapeList, Devices: devices}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnexpectedShape, truncate(trimmed))
	}
}

// FetchRegistrationStatus reads the registration state of one device line.
func (s *Session) FetchRegistrationStatus(ctx context.Context, accountID, deviceID string) (*RegistrationStatus, error) {
	path := s.client.partitionPath("account", accountID, "deviceline", deviceID, "registrationstatus")

	body, err := s.get(ctx, "alianza.registration.get", path, "")
	if err != nil {
		return nil, err
	}

	var status RegistrationStatus
	if err := decode(body, &status); err != nil {
		return nil, err
	}

	return &status, nil
}

// ResolveAccountID returns the internal id of accountNumber, or false when the account
// is missing or the lookup failed.
func (s *Session) ResolveAccountID(ctx context.Context, accountNumber string) (string, bool) {
	account, err := s.FetchAccount(ctx, accountNumber)
	if err == nil && account.ID == "" {
		err = ErrMissingID
	}

	if err != nil {
		s.logFailure(err, "account_number", accountNumber, "Failed to retrieve account ID")
		return "", false
	}

	return string(account.ID), true
}

// ResolveDeviceID returns the device id for mac. A single-object answer is taken as is; in a
// list the first entry whose lineNumber equals lineNumber wins.
func (s *Session) ResolveDeviceID(ctx context.Context, accountID, mac string, lineNumber int) (string, bool) {
	lookup, err := s.FetchDevices(ctx, accountID, mac)
	if err != nil {
		s.logFailure(err, "mac_address", mac, "Failed to retrieve device ID")
		return "", false
	}

	id, err := selectDevice(lookup, lineNumber)
	if err != nil {
		if errors.Is(err, ErrNoMatchingLine) {
			s.logger.Warn().
				Str("mac_address", mac).
				Int("line_number", lineNumber).
				Msgf("No device found with line number %d for MAC address %s", lineNumber, mac)
		} else {
			s.logFailure(err, "mac_address", mac, "Failed to retrieve device ID")
		}

		return "", false
	}

	return id, true
}

func selectDevice(lookup *DeviceLookup, lineNumber int) (string, error) {
	if lookup.Shape == ShapeObject {
		if len(lookup.Devices) == 0 || lookup.Devices[0].ID == "" {
			return "", ErrMissingID
		}

		return string(lookup.Devices[0].ID), nil
	}

	for i := range lookup.Devices {
		line, ok := lookup.Devices[i].Line()
		if !ok || line != lineNumber {
			continue
		}

		if lookup.Devices[i].ID == "" {
			return "", ErrMissingID
		}

		return string(lookup.Devices[i].ID), nil
	}

	return "", ErrNoMatchingLine
}

// RegistrationStatus reports whether the device line is registered. ok is false when the
// status could not be read; a missing registered field reads as false.
func (s *Session) RegistrationStatus(ctx context.Context, accountID, deviceID string) (registered, ok bool) {
	status, err := s.FetchRegistrationStatus(ctx, accountID, deviceID)
	if err != nil {
		s.logFailure(err, "device_id", deviceID, "Failed to retrieve registration status")
		return false, false
	}

	return status.IsRegistered(), true
}

func (s *Session) logFailure(err error, key, value, msg string) {
	outcome := Classify(err)

	event := s.logger.Error()
	if outcome == OutcomeNotFound {
		event = s.logger.Warn()
	}

	event.Err(err).Str(key, value).Str("outcome", outcome.String()).Msg(msg)
}

func truncate(b []byte) string {
	if len(b) > maxErrorBody {
		return strconv.Quote(string(b[:maxErrorBody])) + "..."
	}

	return strconv.Quote(string(b))
}
