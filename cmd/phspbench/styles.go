package main

import "github.com/charmbracelet/lipgloss"

var (
	summaryLabelStyle = lipgloss.NewStyle().Bold(true)

	regressionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")). // Red
			Bold(true)

	improvementStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("46")) // Green

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")) // Gray
)
