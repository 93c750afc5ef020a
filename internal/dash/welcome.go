package dash

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const logoMini = `
  ___ _ _ ___  ___ ___(_)_ _  / _|___
 / __| '_/ _ \/ __/ __| | ' \|  _/ _ \
 \__| | | (_) \__ \__ \ | || | || (_) |
  \__|_| \___/|___/___/_|_||_|_| \___/
`

const welcomeIntro = "Welcome to the Crossinfo TUI, the place to get infos about your system at the command-line!"

const welcomeBody = `Press Enter to continue using the program if you're already familiar with it.

Otherwise, read carefully!

This program uses three major interactive elements: Tabs, Paragraphs and Lists

The tabs can be navigated using the left and right arrow keys. They are shown at the top of the screen.

The paragraphs can be scrolled using either the up and down arrow or the scroll wheel.

The lists can be scrolled in the same way paragraphs can be, but they (sometimes) offer an extra element of interactivity: sorting. If you want to sort a list by a certain property, look out for the list header, where different properties are listed. If the list can be sorted after a certain property, there is a pair of square brackets containing a letter next to it. If you press this letter in its small form, the list is sorted after that property in ascending order. If you press the letter in its capital form, the list is sorted in descending order.

To exit the program, press 'q' or Esc.`

func (m Model) viewWelcome() string {
	parts := []string{welcomeIntro}
	// Drop the logo on small terminals so the instructions stay readable.
	if m.height >= 20 {
		parts = append(parts, sectionHeaderStyle.Render(strings.Trim(logoMini, "\n")))
	}
	parts = append(parts, welcomeBody)

	text := lipgloss.NewStyle().
		Width(min(m.width-4, 100)).
		Align(lipgloss.Center).
		Render(strings.Join(parts, "\n\n"))

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
		popupStyle.Render(text))
}
