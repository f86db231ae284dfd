// Package summary renders a fetched profile for the terminal.
package summary

import (
	"fmt"
	"strings"
	"summit/pkg/domain"

	"github.com/charmbracelet/lipgloss"
	liptable "github.com/charmbracelet/lipgloss/table"
	"github.com/shopspring/decimal"
)

const unknownTotal = "n/a"

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("230")) //nolint: gochecknoglobals
	subtitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))            //nolint: gochecknoglobals
	headerStyle   = lipgloss.NewStyle().Padding(0, 1).Bold(true)                     //nolint: gochecknoglobals
	cellStyle     = lipgloss.NewStyle().Padding(0, 1)                                //nolint: gochecknoglobals
)

// Total sums the transaction amounts. ok is false when any amount cannot be
// parsed.
func Total(p domain.Profile) (total decimal.Decimal, ok bool) {
	for _, tx := range p.Transactions() {
		v, err := tx.Value()
		if err != nil {
			return decimal.Decimal{}, false
		}
		total = total.Add(v)
	}

	return total, true
}

// Render draws the profile: a welcome title, the card identifier, one table
// row per transaction in server order and a total.
func Render(p domain.Profile) string {
	rows := make([][]string, 0, p.Len())
	for i, tx := range p.Transactions() {
		rows = append(rows, []string{fmt.Sprintf("%d", i+1), tx.Merchant, tx.Amount})
	}

	total := unknownTotal
	if sum, ok := Total(p); ok {
		total = formatAmount(sum)
	}

	t := liptable.New().
		Headers("#", "Merchant", "Amount").
		Rows(rows...).
		Border(lipgloss.RoundedBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			style := cellStyle
			if row == liptable.HeaderRow {
				style = headerStyle
			}
			if col == 2 {
				return style.Align(lipgloss.Right)
			}

			return style
		})

	var b strings.Builder
	b.WriteString(titleStyle.Render("Welcome, " + p.Name))
	b.WriteString("\n")
	b.WriteString(subtitleStyle.Render("Card ending in " + p.CardLastFour))
	b.WriteString("\n")
	if p.Len() == 0 {
		b.WriteString("No transactions.\n")
	} else {
		b.WriteString(t.String())
		b.WriteString("\n")
	}
	b.WriteString(fmt.Sprintf("%d transactions, total %s\n", p.Len(), total))

	return b.String()
}

func formatAmount(d decimal.Decimal) string {
	if d.IsNegative() {
		return "-$" + d.Neg().StringFixed(2)
	}

	return "$" + d.StringFixed(2)
}
