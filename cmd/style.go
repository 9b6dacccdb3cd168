package main

import (
	"io"
	"strconv"
	"strings"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"github.com/luca-patrignani/pokerhand/domain/hand"
)

func printBanner(w io.Writer) {
	banner, err := pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("Poker", pterm.FgRed.ToStyle()),
		putils.LettersFromStringWithStyle("Hand", pterm.FgDarkGray.ToStyle()),
	).Srender()
	if err != nil {
		return
	}
	pterm.Fprintln(w, banner)
}

func prettyCards(h *hand.Hand) string {
	cards := h.Cards()
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = c.Pretty()
	}
	return strings.Join(parts, " - ")
}

// handDetails renders the cards and the evaluator's view of the hand in a box.
func handDetails(h *hand.Hand) (string, error) {
	score, err := h.Strength()
	if err != nil {
		return "", err
	}
	desc, err := h.Describe()
	if err != nil {
		return "", err
	}
	pbox := pterm.DefaultBox.WithHorizontalPadding(4).WithTopPadding(1).WithBottomPadding(1)
	return pbox.WithTitle(pterm.LightYellow("|"+strings.ToUpper(h.Category().String())+"|")).WithTitleTopCenter().Sprintf(
		"%s\nStrength: %d\nEvaluator: %s", prettyCards(h), score, desc,
	), nil
}

func dealTable(hands []*hand.Hand, withStrength bool) (string, error) {
	header := []string{"#", "Cards", "Category"}
	if withStrength {
		header = append(header, "Strength")
	}
	data := pterm.TableData{header}
	for i, h := range hands {
		row := []string{strconv.Itoa(i + 1), prettyCards(h), h.Classify()}
		if withStrength {
			score, err := h.Strength()
			if err != nil {
				return "", err
			}
			row = append(row, strconv.Itoa(int(score)))
		}
		data = append(data, row)
	}
	return pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
}
