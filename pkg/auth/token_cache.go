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
	"sync"

	"github.com/carverauto/regreport/pkg/alianza"
)

// CachedTokenProvider wraps a TokenProvider and keeps the first token it returns. Session
// tokens live for the whole run, so there is no expiry.
type CachedTokenProvider struct {
	provider alianza.TokenProvider
	mu       sync.Mutex
	token    string
}

// NewCachedTokenProvider creates a new cached token provider
func NewCachedTokenProvider(provider alianza.TokenProvider) *CachedTokenProvider {
	return &CachedTokenProvider{
		provider: provider,
	}
}

// GetAccessToken returns the cached token, acquiring it on first use. A failed
// acquisition is not cached.
func (c *CachedTokenProvider) GetAccessToken(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.token != "" {
		return c.token, nil
	}

	token, err := c.provider.GetAccessToken(ctx)
	if err != nil {
		return "", err
	}

	if token == "" {
		return "", alianza.ErrTokenMissing
	}

	c.token = token

	return token, nil
}

// InvalidateToken clears the cached token
func (c *CachedTokenProvider) InvalidateToken() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.token = ""
}
