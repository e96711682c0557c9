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
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carverauto/regreport/pkg/alianza"
)

type stubTokenProvider struct {
	mu        sync.Mutex
	callCount int
	token     string
	err       error
}

func (s *stubTokenProvider) GetAccessToken(_ context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.callCount++

	return s.token, s.err
}

func (s *stubTokenProvider) calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.callCount
}

func TestCachedTokenProvider(t *testing.T) {
	ctx := context.Background()

	t.Run("acquires once", func(t *testing.T) {
		stub := &stubTokenProvider{token: "tok"}
		cached := NewCachedTokenProvider(stub)

		for range 3 {
			token, err := cached.GetAccessToken(ctx)
			require.NoError(t, err)
			assert.Equal(t, "tok", token)
		}

		assert.Equal(t, 1, stub.calls())
	})

	t.Run("errors are not cached", func(t *testing.T) {
		stub := &stubTokenProvider{err: ErrInputClosed}
		cached := NewCachedTokenProvider(stub)

		_, err := cached.GetAccessToken(ctx)
		require.ErrorIs(t, err, ErrInputClosed)

		stub.mu.Lock()
		stub.err, stub.token = nil, "tok"
		stub.mu.Unlock()

		token, err := cached.GetAccessToken(ctx)
		require.NoError(t, err)
		assert.Equal(t, "tok", token)
		assert.Equal(t, 2, stub.calls())
	})

	t.Run("empty token rejected", func(t *testing.T) {
		cached := NewCachedTokenProvider(&stubTokenProvider{})

		_, err := cached.GetAccessToken(ctx)
		require.True(t, errors.Is(err, alianza.ErrTokenMissing))
	})

	t.Run("invalidate forces reacquire", func(t *testing.T) {
		stub := &stubTokenProvider{token: "tok"}
		cached := NewCachedTokenProvider(stub)

		_, err := cached.GetAccessToken(ctx)
		require.NoError(t, err)

		cached.InvalidateToken()

		_, err = cached.GetAccessToken(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, stub.calls())
	})

	t.Run("concurrent callers share one acquisition", func(t *testing.T) {
		stub := &stubTokenProvider{token: "tok"}
		cached := NewCachedTokenProvider(stub)

		var wg sync.WaitGroup

		for range 10 {
			wg.Add(1)

			go func() {
				defer wg.Done()

				token, err := cached.GetAccessToken(ctx)
				assert.NoError(t, err)
				assert.Equal(t, "tok", token)
			}()
		}

		wg.Wait()
		assert.Equal(t, 1, stub.calls())
	})
}
