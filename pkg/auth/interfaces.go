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

// Package auth obtains the session token for a run by prompting for credentials until the
// API accepts them.
package auth

import (
	"context"

	"github.com/carverauto/regreport/pkg/models"
)

//go:generate mockgen -destination=mock_auth.go -package=auth github.com/carverauto/regreport/pkg/auth Prompter,Authorizer

// Prompter collects one set of credentials from the operator.
type Prompter interface {
	Prompt(ctx context.Context) (models.Credentials, error)
}

// Authorizer exchanges credentials for a session token.
type Authorizer interface {
	Authorize(ctx context.Context, creds models.Credentials) (string, error)
}
