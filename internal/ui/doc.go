// Package ui holds the lipgloss palette for styled command output and the
// bubbletea track picker behind `sp pick`.
package ui
