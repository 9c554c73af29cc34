// ABOUTME: Score tiers and terminal colours for reports.
// ABOUTME: One threshold scheme is shared by daily and trend views.
package report

import (
	"strconv"
	"strings"

	"github.com/fatih/color"
)

// Tier classifies a score for styling.
type Tier int

const (
	TierAttention Tier = iota
	TierBorderline
	TierGood
)

func (t Tier) String() string {
	switch t {
	case TierGood:
		return "good"
	case TierBorderline:
		return "borderline"
	default:
		return "attention"
	}
}

// Score thresholds; each is the inclusive lower bound of its tier.
const (
	GoodThreshold       = 85
	BorderlineThreshold = 70
)

// ScoreTier maps a 0-100 score to its tier.
func ScoreTier(score int) Tier {
	switch {
	case score >= GoodThreshold:
		return TierGood
	case score >= BorderlineThreshold:
		return TierBorderline
	default:
		return TierAttention
	}
}

// StressTier maps a daily stress summary to a tier. ok is false for
// values that should be shown unstyled.
func StressTier(summary string) (tier Tier, ok bool) {
	switch summary {
	case "restored":
		return TierGood, true
	case "normal":
		return TierBorderline, true
	case "stressful":
		return TierAttention, true
	}
	return TierAttention, false
}

// Palette holds the colours used by a Renderer.
type Palette struct {
	Good       *color.Color
	Borderline *color.Color
	Attention  *color.Color
	Faint      *color.Color
}

// NewPalette returns fresh colours that follow color.NoColor.
func NewPalette() Palette {
	return Palette{
		Good:       color.New(color.FgGreen),
		Borderline: color.New(color.FgYellow),
		Attention:  color.New(color.FgRed),
		Faint:      color.New(color.Faint),
	}
}

// Force pins colour output on or off regardless of the terminal.
func (p Palette) Force(enabled bool) Palette {
	for _, c := range []*color.Color{p.Good, p.Borderline, p.Attention, p.Faint} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

// Tier returns the colour for a tier.
func (p Palette) Tier(t Tier) *color.Color {
	switch t {
	case TierGood:
		return p.Good
	case TierBorderline:
		return p.Borderline
	default:
		return p.Attention
	}
}

// Score colours a score by its tier.
func (p Palette) Score(score int) string {
	return p.Tier(ScoreTier(score)).Sprint(score)
}

// OptionalScore colours a score or shows a faint placeholder.
func (p Palette) OptionalScore(score *int) string {
	if score == nil {
		return p.Faint.Sprint(Placeholder)
	}
	return p.Score(*score)
}

// ScoreCell right-aligns a score in width columns. Padding is added before
// colouring so ANSI codes do not break alignment.
func (p Palette) ScoreCell(score *int, width int) string {
	text := Placeholder
	c := p.Faint
	if score != nil {
		text = strconv.Itoa(*score)
		c = p.Tier(ScoreTier(*score))
	}
	pad := ""
	if width > len(text) {
		pad = strings.Repeat(" ", width-len(text))
	}
	return pad + c.Sprint(text)
}
