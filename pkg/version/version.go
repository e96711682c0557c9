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

// Package version carries the build identity of regreport, injected with
//
//	-ldflags "-X github.com/carverauto/regreport/pkg/version.version=v1.2.3 -X github.com/carverauto/regreport/pkg/version.buildID=abc123"
package version

import (
	"fmt"
	"runtime"
)

//nolint:gochecknoglobals // set via ldflags
var (
	version = "dev"
	buildID = "dev"
)

func GetVersion() string {
	return version
}

func GetBuildID() string {
	return buildID
}

// GetFullVersion is what -version prints.
func GetFullVersion() string {
	return fmt.Sprintf("%s (build: %s, %s %s/%s)", version, buildID, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}

// UserAgent identifies regreport to the API, e.g. "regreport/v1.2.3 (linux; amd64)".
func UserAgent() string {
	return fmt.Sprintf("regreport/%s (%s; %s)", version, runtime.GOOS, runtime.GOARCH)
}
