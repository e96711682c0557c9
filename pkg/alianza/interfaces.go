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
	"context"
	"net/http"
)

//go:generate mockgen -destination=mock_alianza.go -package=alianza github.com/carverauto/regreport/pkg/alianza HTTPClient,TokenProvider

// HTTPClient defines the interface for making HTTP requests.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// TokenProvider supplies the session token attached to every lookup.
type TokenProvider interface {
	GetAccessToken(ctx context.Context) (string, error)
}

// StaticToken is a TokenProvider for a token that is already known.
type StaticToken string

func (s StaticToken) GetAccessToken(_ context.Context) (string, error) {
	if s == "" {
		return "", ErrTokenMissing
	}

	return string(s), nil
}
