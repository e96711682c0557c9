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
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/carverauto/regreport/pkg/models"
)

// Dracula theme colors.
const (
	draculaForeground = "#F8F8F2"
	draculaCyan       = "#8BE9FD"
	draculaPink       = "#FF79C6"
	draculaRed        = "#FF5555"
	draculaYellow     = "#F1FA8C"
	draculaComment    = "#6272A4"
)

const (
	focusedUsername = 0
	focusedPassword = 1
	inputWidth      = 40
	formPadding     = 2
)

type formStyles struct {
	title, label, help, error, app lipgloss.Style
}

func newFormStyles() formStyles {
	return formStyles{
		title: lipgloss.NewStyle().
			Foreground(lipgloss.Color(draculaPink)).
			Bold(true),
		label: lipgloss.NewStyle().
			Foreground(lipgloss.Color(draculaYellow)),
		help: lipgloss.NewStyle().
			Foreground(lipgloss.Color(draculaComment)),
		error: lipgloss.NewStyle().
			Foreground(lipgloss.Color(draculaRed)).
			Bold(true),
		app: lipgloss.NewStyle().
			Padding(1, formPadding).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(draculaCyan)).
			Foreground(lipgloss.Color(draculaForeground)),
	}
}

func newInput(placeholder string) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Width = inputWidth
	ti.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(draculaCyan))
	ti.TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(draculaForeground))
	ti.PlaceholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(draculaComment))

	return ti
}

type loginModel struct {
	usernameInput textinput.Model
	passwordInput textinput.Model
	focused       int
	submitted     bool
	aborted       bool
	err           error
	styles        formStyles
}

func newLoginModel() *loginModel {
	ui := newInput("admin username")
	ui.Focus()

	pi := newInput("password")
	pi.EchoMode = textinput.EchoPassword
	pi.EchoCharacter = '•'

	return &loginModel{
		usernameInput: ui,
		passwordInput: pi,
		focused:       focusedUsername,
		styles:        newFormStyles(),
	}
}

func (*loginModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *loginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	if m.focused == focusedUsername {
		m.usernameInput, cmd = m.usernameInput.Update(msg)
	} else {
		m.passwordInput, cmd = m.passwordInput.Update(msg)
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		return m.handleKeyMsg(keyMsg, cmd)
	}

	return m, cmd
}

func (m *loginModel) handleKeyMsg(msg tea.KeyMsg, cmd tea.Cmd) (tea.Model, tea.Cmd) {
	//nolint:exhaustive // Default case handles all unlisted keys
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		m.aborted = true

		return m, tea.Quit
	case tea.KeyEnter:
		return m.handleEnter()
	case tea.KeyTab, tea.KeyShiftTab:
		return m, m.toggleFocus()
	default:
		return m, cmd
	}
}

func (m *loginModel) handleEnter() (tea.Model, tea.Cmd) {
	if m.focused == focusedUsername {
		return m, m.toggleFocus()
	}

	if strings.TrimSpace(m.usernameInput.Value()) == "" {
		m.err = errNoUsername

		return m, m.toggleFocus()
	}

	m.err = nil
	m.submitted = true

	return m, tea.Quit
}

func (m *loginModel) toggleFocus() tea.Cmd {
	if m.focused == focusedUsername {
		m.usernameInput.Blur()
		m.focused = focusedPassword

		return m.passwordInput.Focus()
	}

	m.passwordInput.Blur()
	m.focused = focusedUsername

	return m.usernameInput.Focus()
}

func (m *loginModel) credentials() models.Credentials {
	return models.Credentials{
		Username: strings.TrimSpace(m.usernameInput.Value()),
		Password: m.passwordInput.Value(),
	}
}

func (m *loginModel) View() string {
	var content strings.Builder

	content.WriteString(m.styles.title.Render("Alianza Admin Login"))
	content.WriteString("\n\n")
	content.WriteString(lipgloss.JoinVertical(lipgloss.Left, m.styles.label.Render("Username:"), m.usernameInput.View()))
	content.WriteString("\n\n")
	content.WriteString(lipgloss.JoinVertical(lipgloss.Left, m.styles.label.Render("Password:"), m.passwordInput.View()))
	content.WriteString("\n\n")
	content.WriteString(m.styles.help.Render("Enter → next field / log in | Tab → switch field | Ctrl+C/Esc → quit"))

	if m.err != nil {
		content.WriteString("\n\n")
		content.WriteString(m.styles.error.Render(fmt.Sprintf("Error: %v", m.err)))
	}

	return m.styles.app.Align(lipgloss.Left).Render(content.String())
}

// FormPrompter collects credentials through a full-screen form.
type FormPrompter struct {
	in  io.Reader
	out io.Writer
}

// NewFormPrompter renders the form on out and reads keys from in.
func NewFormPrompter(in io.Reader, out io.Writer) *FormPrompter {
	return &FormPrompter{in: in, out: out}
}

func (p *FormPrompter) Prompt(ctx context.Context) (models.Credentials, error) {
	program := tea.NewProgram(newLoginModel(),
		tea.WithContext(ctx),
		tea.WithInput(p.in),
		tea.WithOutput(p.out),
	)

	final, err := program.Run()
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return models.Credentials{}, ctxErr
		}

		if errors.Is(err, tea.ErrProgramKilled) {
			return models.Credentials{}, ErrAborted
		}

		return models.Credentials{}, fmt.Errorf("login form failed: %w", err)
	}

	m, ok := final.(*loginModel)
	if !ok || m.aborted || !m.submitted {
		return models.Credentials{}, ErrAborted
	}

	return m.credentials(), nil
}
