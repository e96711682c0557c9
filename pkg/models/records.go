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

// Package models holds the records and configuration shared across regreport.
package models

import (
	"fmt"
	"strconv"
)

// DeviceStatus is the classification written to the deviceStatus report column.
type DeviceStatus string

const (
	StatusAccountNotFound DeviceStatus = "Account Not Found"
	StatusDeviceNotFound  DeviceStatus = "Device Not Found"
	StatusRegistered      DeviceStatus = "Registered"
	StatusNotRegistered   DeviceStatus = "NOT Registered"
)

// AllStatuses lists every status in report order.
func AllStatuses() []DeviceStatus {
	return []DeviceStatus{
		StatusAccountNotFound,
		StatusDeviceNotFound,
		StatusRegistered,
		StatusNotRegistered,
	}
}

// StatusFromRegistration maps a registration lookup onto the report status.
// A failed lookup (ok=false) is reported the same as an unregistered line.
func StatusFromRegistration(registered, ok bool) DeviceStatus {
	if ok && registered {
		return StatusRegistered
	}

	return StatusNotRegistered
}

// FromRegistration reports whether the status came out of a registration lookup, that is
// whether the row got past the account and device stages.
func (s DeviceStatus) FromRegistration() bool {
	return s == StatusRegistered || s == StatusNotRegistered
}

// Credentials are held only for the duration of an authorization call.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// String never prints the password.
func (c Credentials) String() string {
	return fmt.Sprintf("Credentials{Username: %q}", c.Username)
}

// InputRecord is one row of the input CSV.
type InputRecord struct {
	AccountNumber string
	MACAddress    string
	LineNumber    int

	// Row is the 1-based data row number, header excluded.
	Row int
}

// OutputRecord is one row of the report.
type OutputRecord struct {
	AccountNumber string
	MACAddress    string
	LineNumber    int
	DeviceStatus  DeviceStatus
}

// NewOutputRecord copies the identifying columns of in and attaches status.
func NewOutputRecord(in *InputRecord, status DeviceStatus) OutputRecord {
	return OutputRecord{
		AccountNumber: in.AccountNumber,
		MACAddress:    in.MACAddress,
		LineNumber:    in.LineNumber,
		DeviceStatus:  status,
	}
}

// Fields returns the CSV columns in header order.
func (o *OutputRecord) Fields() []string {
	return []string{
		o.AccountNumber,
		o.MACAddress,
		strconv.Itoa(o.LineNumber),
		string(o.DeviceStatus),
	}
}
