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
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/carverauto/regreport/pkg/alianza"
	"github.com/carverauto/regreport/pkg/logger"
	"github.com/carverauto/regreport/pkg/models"
)

var testCreds = models.Credentials{Username: "admin", Password: "s3cret"}

func TestAuthenticate_FirstAttempt(t *testing.T) {
	ctrl := gomock.NewController(t)
	prompter := NewMockPrompter(ctrl)
	authorizer := NewMockAuthorizer(ctrl)

	prompter.EXPECT().Prompt(gomock.Any()).Return(testCreds, nil)
	authorizer.EXPECT().Authorize(gomock.Any(), testCreds).Return("tok", nil)

	var out bytes.Buffer

	token, err := NewAuthenticator(prompter, authorizer, &out, logger.NewTestLogger()).Authenticate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "tok", token)
	assert.Equal(t, "Login successful!\n", out.String())
}

func TestAuthenticate_RepromptsUntilAccepted(t *testing.T) {
	ctrl := gomock.NewController(t)
	prompter := NewMockPrompter(ctrl)
	authorizer := NewMockAuthorizer(ctrl)

	rejected := &alianza.APIError{StatusCode: 401}

	gomock.InOrder(
		prompter.EXPECT().Prompt(gomock.Any()).Return(testCreds, nil),
		authorizer.EXPECT().Authorize(gomock.Any(), testCreds).Return("", rejected),
		prompter.EXPECT().Prompt(gomock.Any()).Return(testCreds, nil),
		authorizer.EXPECT().Authorize(gomock.Any(), testCreds).Return("", alianza.ErrTokenMissing),
		prompter.EXPECT().Prompt(gomock.Any()).Return(testCreds, nil),
		authorizer.EXPECT().Authorize(gomock.Any(), testCreds).Return("", errors.New("connection reset")),
		prompter.EXPECT().Prompt(gomock.Any()).Return(testCreds, nil),
		authorizer.EXPECT().Authorize(gomock.Any(), testCreds).Return("tok", nil),
	)

	var out bytes.Buffer

	token, err := NewAuthenticator(prompter, authorizer, &out, nil).Authenticate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "tok", token)
	assert.Equal(t, strings.Join([]string{
		"Login failed. Please try again.",
		"Error: X-AUTH-TOKEN not found in response.",
		"Login failed. Please try again.",
		"Login successful!",
		"",
	}, "\n"), out.String())
}

func TestAuthenticate_InputClosed(t *testing.T) {
	ctrl := gomock.NewController(t)
	prompter := NewMockPrompter(ctrl)
	authorizer := NewMockAuthorizer(ctrl)

	prompter.EXPECT().Prompt(gomock.Any()).Return(models.Credentials{}, io.EOF)

	_, err := NewAuthenticator(prompter, authorizer, io.Discard, nil).Authenticate(context.Background())
	require.ErrorIs(t, err, ErrInputClosed)
}

func TestAuthenticate_Aborted(t *testing.T) {
	ctrl := gomock.NewController(t)
	prompter := NewMockPrompter(ctrl)
	authorizer := NewMockAuthorizer(ctrl)

	prompter.EXPECT().Prompt(gomock.Any()).Return(models.Credentials{}, ErrAborted)

	_, err := NewAuthenticator(prompter, authorizer, io.Discard, nil).Authenticate(context.Background())
	require.ErrorIs(t, err, ErrAborted)
}

func TestAuthenticate_Cancelled(t *testing.T) {
	ctrl := gomock.NewController(t)
	prompter := NewMockPrompter(ctrl)
	authorizer := NewMockAuthorizer(ctrl)

	ctx, cancel := context.WithCancel(context.Background())

	prompter.EXPECT().Prompt(gomock.Any()).Return(testCreds, nil)
	authorizer.EXPECT().Authorize(gomock.Any(), testCreds).
		DoAndReturn(func(context.Context, models.Credentials) (string, error) {
			cancel()
			return "", context.Canceled
		})

	var out bytes.Buffer

	_, err := NewAuthenticator(prompter, authorizer, &out, nil).Authenticate(ctx)
	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, out.String())
}

func TestAuthenticate_CancelledBeforePrompt(t *testing.T) {
	ctrl := gomock.NewController(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewAuthenticator(NewMockPrompter(ctrl), NewMockAuthorizer(ctrl), io.Discard, nil).Authenticate(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

func TestAuthenticator_GetAccessToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	prompter := NewMockPrompter(ctrl)
	authorizer := NewMockAuthorizer(ctrl)

	prompter.EXPECT().Prompt(gomock.Any()).Return(testCreds, nil)
	authorizer.EXPECT().Authorize(gomock.Any(), testCreds).Return("tok", nil)

	var provider alianza.TokenProvider = NewAuthenticator(prompter, authorizer, io.Discard, nil)

	token, err := provider.GetAccessToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "tok", token)
}
