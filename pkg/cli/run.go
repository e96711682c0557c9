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

// Package cli wires configuration, logging, authentication and the report driver into the
// regreport command.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/carverauto/regreport/pkg/alianza"
	"github.com/carverauto/regreport/pkg/auth"
	"github.com/carverauto/regreport/pkg/config"
	"github.com/carverauto/regreport/pkg/logger"
	"github.com/carverauto/regreport/pkg/models"
	"github.com/carverauto/regreport/pkg/report"
	"github.com/carverauto/regreport/pkg/version"
)

const serviceName = "regreport"

// Runner executes one report run. Zero-valued hooks fall back to the real implementations.
type Runner struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	// LogOutput receives structured logs; nil selects the writer named by the logging config.
	LogOutput io.Writer

	HTTPClient alianza.HTTPClient
	Prompter   auth.Prompter
	Clock      report.Clock
}

// Main runs regreport and returns the process exit code.
func Main(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	r := &Runner{Stdin: stdin, Stdout: stdout, Stderr: stderr}

	return r.ExitCode(r.Run(ctx, args))
}

// ExitCode reports err on stderr and maps it to a process exit code.
func (r *Runner) ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}

	var exitErr *ExitError
	if !errors.As(err, &exitErr) {
		exitErr = unexpected(err)
	}

	if exitErr.Message != "" {
		newConsole(r.Stderr).failure(exitErr.Message)
	}

	return exitErr.Code
}

// Run executes the command line args (without the program name).
func (r *Runner) Run(ctx context.Context, args []string) error {
	cmd, err := ParseFlags(args, r.Stderr)
	if err != nil {
		return err
	}

	if cmd.Help {
		ShowHelp(r.Stdout)

		return nil
	}

	if cmd.ShowVersion {
		_, _ = fmt.Fprintf(r.Stdout, "regreport %s\n", version.GetFullVersion())

		return nil
	}

	cfg, err := r.loadConfig(ctx, cmd)
	if err != nil {
		return err
	}

	log, err := logger.New(cfg.Logging, r.LogOutput)
	if err != nil {
		return &ExitError{Code: ExitConfig, Message: fmt.Sprintf("Configuration error: %v", err), Err: err}
	}

	log = log.WithFields(map[string]interface{}{"run_id": uuid.NewString()})

	tp, ctx, rootSpan, err := logger.InitializeTracing(ctx, logger.TracingConfig{
		ServiceName:    serviceName,
		ServiceVersion: version.GetVersion(),
		Debug:          cfg.Logging.Debug,
		Logger:         log,
		OTel:           &cfg.Logging.OTel,
	})
	if err != nil {
		log.Warn().Err(err).Msg("Tracing disabled")
	} else {
		defer func() { _ = tp.Shutdown(context.Background()) }()
		defer rootSpan.End()
	}

	return r.generate(ctx, cmd, cfg, log)
}

// loadConfig layers defaults, the config file, REGREPORT_* variables and flags, in that order.
func (r *Runner) loadConfig(ctx context.Context, cmd *CmdConfig) (*models.ReportConfig, error) {
	cfg := models.DefaultReportConfig()

	// An invalid LOG_FORMAT leaves bootstrap nil and config falls back to its own logger.
	bootstrap, _ := logger.New(logger.DefaultConfig(), r.LogOutput)

	if err := config.NewConfig(bootstrap).Load(ctx, cmd.ConfigFile, cfg); err != nil {
		return nil, &ExitError{Code: ExitConfig, Message: fmt.Sprintf("Configuration error: %v", err), Err: err}
	}

	if cfg.Logging == nil {
		cfg.Logging = logger.DefaultConfig()
	}

	if cmd.PartitionID != "" {
		cfg.PartitionID = cmd.PartitionID
	}

	if cmd.Endpoint != "" {
		cfg.Endpoint = cmd.Endpoint
	}

	if cmd.OutputDir != "" {
		cfg.OutputDir = cmd.OutputDir
	}

	if cmd.LogLevel != "" {
		cfg.Logging.Level = cmd.LogLevel
	}

	if cmd.Debug {
		cfg.Logging.Debug = true
	}

	if err := config.ValidateConfig(cfg); err != nil {
		return nil, &ExitError{Code: ExitConfig, Message: fmt.Sprintf("Configuration error: %v", err), Err: err}
	}

	return cfg, nil
}

func (r *Runner) generate(ctx context.Context, cmd *CmdConfig, cfg *models.ReportConfig, log logger.Logger) error {
	clock := r.Clock
	if clock == nil {
		clock = report.SystemClock()
	}

	inputPath := cmd.InputFile
	outputPath := report.OutputPath(inputPath, cfg.OutputDir, clock.Now())

	in, err := os.Open(inputPath)
	if err != nil {
		return fileError(err, inputPath, outputPath)
	}
	defer func() { _ = in.Close() }()

	reader, err := report.NewCSVReader(in)
	if err != nil {
		return err
	}

	httpClient := r.HTTPClient
	if httpClient == nil {
		httpClient = alianza.NewHTTPClient(time.Duration(cfg.Timeout), cfg.InsecureSkipVerify)
	}

	client := alianza.NewClient(cfg.Endpoint, cfg.PartitionID,
		alianza.WithHTTPClient(httpClient),
		alianza.WithLogger(log),
	)

	tokens := auth.NewCachedTokenProvider(auth.NewAuthenticator(r.prompter(cmd), client, r.Stdout, log))

	// Log in before the report file is created.
	if _, err := tokens.GetAccessToken(ctx); err != nil {
		return authError(err)
	}

	out, err := os.Create(outputPath)
	if err != nil {
		return fileError(err, inputPath, outputPath)
	}

	summary, runErr := r.writeReport(ctx, reader, out, alianza.NewSession(client, tokens), log)

	if err := out.Close(); err != nil && runErr == nil {
		runErr = err
	}

	con := newConsole(r.Stdout)

	if runErr != nil {
		if ctx.Err() != nil {
			con.warn(fmt.Sprintf("Partial report kept: %s (%d rows)", outputPath, summary.Total))

			return interrupted(ctx.Err())
		}

		return runErr
	}

	con.success("Report generated successfully: " + outputPath)
	con.summary(summary)

	log.Info().
		Str("input", inputPath).
		Str("output", outputPath).
		Int("rows", summary.Total).
		Msg("Report complete")

	return nil
}

func (r *Runner) writeReport(ctx context.Context, reader report.RecordReader, out io.Writer,
	session *alianza.Session, log logger.Logger) (*report.Summary, error) {
	writer, err := report.NewCSVWriter(out)
	if err != nil {
		return report.NewSummary(), err
	}

	driver := &report.Driver{
		Lookup:   session,
		Progress: newConsole(r.Stdout),
		Logger:   log.WithComponent("report"),
	}

	return driver.Run(ctx, reader, writer)
}

func (r *Runner) prompter(cmd *CmdConfig) auth.Prompter {
	if r.Prompter != nil {
		return r.Prompter
	}

	if cmd.TUI {
		return auth.NewFormPrompter(r.Stdin, r.Stdout)
	}

	return auth.NewTerminalPrompter(r.Stdin, r.Stdout)
}

func fileError(err error, inputPath, outputPath string) error {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return &ExitError{Code: ExitFailure, Message: fmt.Sprintf("Error: File %s not found.", inputPath), Err: err}
	case errors.Is(err, fs.ErrPermission):
		return &ExitError{
			Code:    ExitFailure,
			Message: fmt.Sprintf("Error: Permission denied for file %s or %s.", inputPath, outputPath),
			Err:     err,
		}
	default:
		return unexpected(err)
	}
}

func authError(err error) error {
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded), errors.Is(err, auth.ErrAborted):
		return interrupted(err)
	case errors.Is(err, auth.ErrInputClosed):
		return &ExitError{Code: ExitFailure, Message: "Error: " + err.Error(), Err: err}
	default:
		return unexpected(err)
	}
}

func interrupted(err error) error {
	return &ExitError{Code: ExitInterrupted, Message: "Interrupted.", Err: err}
}

func unexpected(err error) *ExitError {
	return &ExitError{
		Code:    ExitFailure,
		Message: "An unexpected error occurred: " + strings.TrimSpace(err.Error()),
		Err:     err,
	}
}
