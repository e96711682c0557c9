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

package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/carverauto/regreport/pkg/models"
	"github.com/carverauto/regreport/pkg/report"
)

// Dracula theme colors.
const (
	draculaCyan   = "#8BE9FD"
	draculaGreen  = "#50FA7B"
	draculaOrange = "#FFB86C"
	draculaRed    = "#FF5555"
	draculaYellow = "#F1FA8C"
)

// consoleStyles colors console output. Styles come from a renderer bound to the output
// writer, so redirected output stays plain text.
type consoleStyles struct {
	info, success, warning, error lipgloss.Style
	status                        map[models.DeviceStatus]lipgloss.Style
}

func newConsoleStyles(w io.Writer) consoleStyles {
	r := lipgloss.NewRenderer(w)

	return consoleStyles{
		info: r.NewStyle().
			Foreground(lipgloss.Color(draculaCyan)),
		success: r.NewStyle().
			Foreground(lipgloss.Color(draculaGreen)),
		warning: r.NewStyle().
			Foreground(lipgloss.Color(draculaYellow)),
		error: r.NewStyle().
			Foreground(lipgloss.Color(draculaRed)).
			Bold(true),
		status: map[models.DeviceStatus]lipgloss.Style{
			models.StatusRegistered:      r.NewStyle().Foreground(lipgloss.Color(draculaGreen)),
			models.StatusNotRegistered:   r.NewStyle().Foreground(lipgloss.Color(draculaYellow)),
			models.StatusDeviceNotFound:  r.NewStyle().Foreground(lipgloss.Color(draculaOrange)),
			models.StatusAccountNotFound: r.NewStyle().Foreground(lipgloss.Color(draculaRed)),
		},
	}
}

// console writes the operator-facing lines of a run.
type console struct {
	out    io.Writer
	styles consoleStyles
}

func newConsole(out io.Writer) *console {
	return &console{out: out, styles: newConsoleStyles(out)}
}

// Report implements report.Progress.
func (c *console) Report(rec *models.OutputRecord) {
	status := string(rec.DeviceStatus)
	if style, ok := c.styles.status[rec.DeviceStatus]; ok {
		status = style.Render(status)
	}

	_, _ = fmt.Fprintf(c.out, "Account: %s, MAC: %s, Status: %s\n", rec.AccountNumber, rec.MACAddress, status)
}

func (c *console) success(msg string) {
	_, _ = fmt.Fprintln(c.out, c.styles.success.Render(msg))
}

func (c *console) summary(s *report.Summary) {
	parts := make([]string, 0, len(models.AllStatuses()))
	for _, status := range models.AllStatuses() {
		parts = append(parts, fmt.Sprintf("%s: %d", status, s.Count(status)))
	}

	_, _ = fmt.Fprintln(c.out, c.styles.info.Render(fmt.Sprintf("Rows: %d (%s)", s.Total, strings.Join(parts, ", "))))
}

func (c *console) failure(msg string) {
	_, _ = fmt.Fprintln(c.out, c.styles.error.Render(msg))
}

func (c *console) warn(msg string) {
	_, _ = fmt.Fprintln(c.out, c.styles.warning.Render(msg))
}
