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
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/carverauto/regreport/pkg/models"
)

const authorizePath = "/authorize"

type authorizeRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Authorize exchanges credentials for a session token. Any status other than 200, other
// 2xx codes included, unwraps to ErrAuthFailed; a 200 without a token yields ErrTokenMissing.
func (c *Client) Authorize(ctx context.Context, creds models.Credentials) (string, error) {
	body, status, err := c.do(ctx, "alianza.authorize", http.MethodPost, authorizePath, "", "", authorizeRequest{
		Username: creds.Username,
		Password: creds.Password,
	})
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) {
			apiErr.kind = ErrAuthFailed
			return "", apiErr
		}

		return "", fmt.Errorf("%w: %w", ErrAuthFailed, err)
	}

	if status != http.StatusOK {
		return "", newAPIError(status, authorizePath, body, ErrAuthFailed)
	}

	var resp AuthorizeResponse
	if err := decode(body, &resp); err != nil {
		return "", err
	}

	token := strings.TrimSpace(resp.AuthToken)
	if token == "" {
		return "", ErrTokenMissing
	}

	c.logger.Debug().Str("username", creds.Username).Msg("Authorized session")

	return token, nil
}
