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
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/carverauto/regreport/pkg/models"
)

const (
	usernamePrompt = "Enter your Alianza Admin username: "
	passwordPrompt = "Enter your Alianza Admin password: "
)

// TerminalPrompter asks for credentials on a line-oriented console. When input is a
// terminal the password is read without echo.
type TerminalPrompter struct {
	in       *bufio.Reader
	out      io.Writer
	fd       int
	terminal bool
}

// NewTerminalPrompter reads from in and writes prompts to out.
func NewTerminalPrompter(in io.Reader, out io.Writer) *TerminalPrompter {
	p := &TerminalPrompter{
		in:  bufio.NewReader(in),
		out: out,
	}

	if f, ok := in.(*os.File); ok {
		p.fd = int(f.Fd())
		p.terminal = term.IsTerminal(p.fd)
	}

	return p
}

func (p *TerminalPrompter) Prompt(ctx context.Context) (models.Credentials, error) {
	_, _ = fmt.Fprint(p.out, usernamePrompt)

	username, err := p.readLine(ctx)
	if err != nil {
		return models.Credentials{}, err
	}

	_, _ = fmt.Fprint(p.out, passwordPrompt)

	var password string
	if p.terminal {
		password, err = p.readSecret(ctx)
	} else {
		password, err = p.readLine(ctx)
	}

	if err != nil {
		return models.Credentials{}, err
	}

	return models.Credentials{Username: username, Password: password}, nil
}

func (p *TerminalPrompter) readLine(ctx context.Context) (string, error) {
	type result struct {
		line string
		err  error
	}

	ch := make(chan result, 1)

	go func() {
		line, err := p.in.ReadString('\n')
		if err == io.EOF && line != "" {
			err = nil
		}

		ch <- result{line: strings.TrimRight(line, "\r\n"), err: err}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-ch:
		return r.line, r.err
	}
}

// readSecret disables echo for the duration of the read. The saved terminal state is put
// back on return and as soon as ctx is cancelled, so an interrupt never leaves the
// console silent.
func (p *TerminalPrompter) readSecret(ctx context.Context) (string, error) {
	state, err := term.GetState(p.fd)
	if err != nil {
		return "", fmt.Errorf("failed to read terminal state: %w", err)
	}

	defer func() { _ = term.Restore(p.fd, state) }()

	type result struct {
		secret []byte
		err    error
	}

	ch := make(chan result, 1)

	go func() {
		secret, err := term.ReadPassword(p.fd)
		ch <- result{secret: secret, err: err}
	}()

	select {
	case <-ctx.Done():
		_ = term.Restore(p.fd, state)
		_, _ = fmt.Fprintln(p.out)

		return "", ctx.Err()
	case r := <-ch:
		_, _ = fmt.Fprintln(p.out)

		if r.err != nil {
			return "", r.err
		}

		return string(r.secret), nil
	}
}
