package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/solverbuddy/internal/game"
	"github.com/lox/solverbuddy/poker"
)

// styles for the table view
var (
	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1).
			Bold(true)

	redCardStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true)

	blackCardStyle = lipgloss.NewStyle().
			Bold(true)

	activeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#04B575")).
			Bold(true)

	foldedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))

	potStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true)

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))
)

// renderCards colours hearts and diamonds red
func renderCards(cards []poker.Card) string {
	if len(cards) == 0 {
		return infoStyle.Render("--")
	}
	parts := make([]string, len(cards))
	for i, c := range cards {
		style := blackCardStyle
		if c.Suit == poker.Hearts || c.Suit == poker.Diamonds {
			style = redCardStyle
		}
		parts[i] = style.Render(c.String())
	}
	return strings.Join(parts, " ")
}

// renderTable draws the hand from the acting seat's point of view
func renderTable(g *game.Game) string {
	state := g.State(g.Pointer())

	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("%s  blinds %d/%d", state.Stage, g.SmallBlind(), g.BigBlind())))
	b.WriteString("  ")
	b.WriteString(potStyle.Render(fmt.Sprintf("pot %d", state.Pot)))
	b.WriteString("\n")
	b.WriteString("board " + renderCards(state.PublicCards) + "\n")

	heroPos, hasHero := g.HeroPosition()
	raised := g.Round().Raised()
	for i, p := range g.Players() {
		marker := "  "
		if i == state.CurrentPlayer && !g.HandOver() {
			marker = "> "
		}
		name := p.Position.String()
		if hasHero && p.Position == heroPos {
			name += "*"
		}
		line := fmt.Sprintf("%s%-5s stack %5d  in %4d  street %4d  %-6s %s",
			marker, name, p.RemainedChips(), p.InChips(), raised[i], p.Status(), renderCards(p.Hand()))
		if hole := p.Hand(); len(hole) == 2 {
			line += fmt.Sprintf("  %s %s", poker.HoleCardNotation(hole[0], hole[1]),
				infoStyle.Render(string(poker.CategorizeHoleCards(hole[0], hole[1]))))
		}

		switch {
		case p.Status() == game.Folded:
			line = foldedStyle.Render(line)
		case marker == "> ":
			line = activeStyle.Render(line)
		}
		b.WriteString(line + "\n")
	}
	return b.String()
}

// renderLegal lists the legal actions with their shorthands
func renderLegal(actions []game.Action) string {
	parts := make([]string, len(actions))
	for i, a := range actions {
		parts[i] = fmt.Sprintf("%s(%s)", a, strings.ToLower(game.Shorthand(a)))
	}
	return strings.Join(parts, " ")
}
