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

package auth

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/carverauto/regreport/pkg/alianza"
	"github.com/carverauto/regreport/pkg/logger"
)

const (
	msgLoginSuccessful = "Login successful!"
	msgTokenMissing    = "Error: X-AUTH-TOKEN not found in response."
	msgLoginFailed     = "Login failed. Please try again."
)

// Authenticator runs the login dialogue. There is no attempt limit; only a cancelled
// context or closed input ends it without a token.
type Authenticator struct {
	prompter   Prompter
	authorizer Authorizer
	out        io.Writer
	logger     logger.Logger
}

// NewAuthenticator wires a prompter to an authorizer. Dialogue messages go to out.
func NewAuthenticator(prompter Prompter, authorizer Authorizer, out io.Writer, log logger.Logger) *Authenticator {
	if log == nil {
		log = logger.NewTestLogger()
	}

	return &Authenticator{
		prompter:   prompter,
		authorizer: authorizer,
		out:        out,
		logger:     log.WithComponent("auth"),
	}
}

// Authenticate blocks until a token is issued.
func (a *Authenticator) Authenticate(ctx context.Context) (string, error) {
	for attempt := 1; ; attempt++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		creds, err := a.prompter.Prompt(ctx)
		if err != nil {
			return "", a.promptError(ctx, err)
		}

		token, err := a.authorizer.Authorize(ctx, creds)
		if err == nil {
			a.println(msgLoginSuccessful)
			a.logger.Info().Str("username", creds.Username).Int("attempt", attempt).Msg("Authenticated")

			return token, nil
		}

		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", ctxErr
		}

		a.logger.Warn().Err(err).Str("username", creds.Username).Int("attempt", attempt).Msg("Authorization rejected")

		if errors.Is(err, alianza.ErrTokenMissing) {
			a.println(msgTokenMissing)
		} else {
			a.println(msgLoginFailed)
		}
	}
}

// GetAccessToken lets the authenticator back an alianza.TokenProvider.
func (a *Authenticator) GetAccessToken(ctx context.Context) (string, error) {
	return a.Authenticate(ctx)
}

func (a *Authenticator) promptError(ctx context.Context, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}

	if errors.Is(err, io.EOF) {
		return ErrInputClosed
	}

	return err
}

func (a *Authenticator) println(msg string) {
	_, _ = fmt.Fprintln(a.out, msg)
}
