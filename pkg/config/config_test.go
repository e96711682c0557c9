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

package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carverauto/regreport/pkg/logger"
	"github.com/carverauto/regreport/pkg/models"
)

func writeConfigFile(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "regreport.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestLoadAndValidate_FileThenEnv(t *testing.T) {
	path := writeConfigFile(t, `{
		"endpoint": "https://sandbox.example.com/v2",
		"partition_id": "from-file",
		"timeout": "10s",
		"logging": {"level": "warn"}
	}`)

	t.Setenv("REGREPORT_PARTITION_ID", "from-env")
	t.Setenv("REGREPORT_LOGGING_LEVEL", "debug")

	cfg := models.DefaultReportConfig()
	loader := NewConfig(logger.NewTestLogger())

	require.NoError(t, loader.LoadAndValidate(context.Background(), path, cfg))

	assert.Equal(t, "https://sandbox.example.com/v2", cfg.Endpoint)
	assert.Equal(t, "from-env", cfg.PartitionID)
	assert.Equal(t, models.Duration(10*time.Second), cfg.Timeout)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadAndValidate_ValidationError(t *testing.T) {
	t.Setenv("REGREPORT_PARTITION_ID", "")

	cfg := models.DefaultReportConfig()
	loader := NewConfig(logger.NewTestLogger())

	err := loader.LoadAndValidate(context.Background(), "", cfg)
	require.ErrorIs(t, err, models.ErrMissingPartition)
}

func TestLoad_MissingFile(t *testing.T) {
	cfg := models.DefaultReportConfig()
	loader := NewConfig(nil)

	err := loader.Load(context.Background(), filepath.Join(t.TempDir(), "nope.json"), cfg)
	require.ErrorIs(t, err, errLoadConfigFailed)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_FileRejectsUnknownKeys(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{name: "misspelt key", body: `{"partition": "p1"}`, want: `unknown field "partition"`},
		{name: "misspelt nested key", body: `{"partition_id": "p1", "logging": {"lvl": "debug"}}`, want: `unknown field "lvl"`},
		{name: "two objects", body: `{"partition_id": "p1"} {"partition_id": "p2"}`, want: errTrailingData.Error()},
		{name: "malformed", body: `{"partition_id": `, want: "failed to decode JSON"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfigFile(t, tt.body)
			cfg := models.DefaultReportConfig()

			err := NewConfig(logger.NewTestLogger()).Load(context.Background(), path, cfg)
			require.ErrorIs(t, err, errLoadConfigFailed)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoad_InvalidPointer(t *testing.T) {
	loader := NewConfig(logger.NewTestLogger())

	var cfg *models.ReportConfig

	require.ErrorIs(t, loader.Load(context.Background(), "", cfg), errInvalidConfigPtr)
}

type envTarget struct {
	Name     string            `json:"name"`
	Enabled  bool              `json:"enabled"`
	Count    int               `json:"count"`
	Tags     []string          `json:"tags"`
	Headers  map[string]string `json:"headers"`
	Wait     models.Duration   `json:"wait"`
	Nested   *envNested        `json:"nested,omitempty"`
	Untagged string
}

type envNested struct {
	Level string `json:"level"`
}

func TestEnvConfigLoader_Kinds(t *testing.T) {
	t.Setenv("T_NAME", "demo")
	t.Setenv("T_ENABLED", "true")
	t.Setenv("T_COUNT", "42")
	t.Setenv("T_TAGS", "a, b ,c")
	t.Setenv("T_HEADERS", `{"k":"v"}`)
	t.Setenv("T_WAIT", "2m")
	t.Setenv("T_NESTED_LEVEL", "error")
	t.Setenv("T_UNTAGGED", "ignored")

	var dst envTarget

	loader := NewEnvConfigLoader(logger.NewTestLogger(), "T_")
	require.NoError(t, loader.Load(context.Background(), "", &dst))

	assert.Equal(t, "demo", dst.Name)
	assert.True(t, dst.Enabled)
	assert.Equal(t, 42, dst.Count)
	assert.Equal(t, []string{"a", "b", "c"}, dst.Tags)
	assert.Equal(t, map[string]string{"k": "v"}, dst.Headers)
	assert.Equal(t, models.Duration(2*time.Minute), dst.Wait)
	require.NotNil(t, dst.Nested)
	assert.Equal(t, "error", dst.Nested.Level)
	assert.Empty(t, dst.Untagged)
}

func TestEnvConfigLoader_BareTimeoutIsSeconds(t *testing.T) {
	t.Setenv("REGREPORT_PARTITION_ID", "p1")
	t.Setenv("REGREPORT_TIMEOUT", "30")

	cfg := models.DefaultReportConfig()

	require.NoError(t, NewConfig(logger.NewTestLogger()).LoadAndValidate(context.Background(), "", cfg))
	assert.Equal(t, models.Duration(30*time.Second), cfg.Timeout)
}

func TestEnvConfigLoader_LeavesNilSectionsAlone(t *testing.T) {
	var dst envTarget

	loader := NewEnvConfigLoader(nil, "UNSET_PREFIX_")
	require.NoError(t, loader.Load(context.Background(), "", &dst))

	assert.Nil(t, dst.Nested)
}

func TestEnvConfigLoader_Errors(t *testing.T) {
	loader := NewEnvConfigLoader(nil, "E_")

	var notStruct int
	require.ErrorIs(t, loader.Load(context.Background(), "", &notStruct), ErrDstMustBePointerToStruct)
	require.ErrorIs(t, loader.Load(context.Background(), "", envTarget{}), ErrDstMustBeNonNilPointer)

	t.Setenv("E_COUNT", "many")

	var dst envTarget
	require.Error(t, loader.Load(context.Background(), "", &dst))
}
