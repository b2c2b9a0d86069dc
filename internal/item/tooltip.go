package item

import (
	"strconv"

	"github.com/gdamore/tcell/v2"

	"github.com/osse101/PaperAPI_Go/internal/textcolor"
)

// DrawTooltip paints a stack's tooltip at (x, y): the name in its display colour,
// then the rarity label in gray. It returns the number of rows used.
func DrawTooltip(screen tcell.Screen, x, y int, stack Stack) int {
	name := stack.DisplayName()
	if stack.Amount > 1 {
		name += " x" + strconv.Itoa(stack.Amount)
	}

	nameStyle := tcell.StyleDefault.Foreground(stack.DisplayNameColor().TCell())
	if stack.Enchanted {
		nameStyle = nameStyle.Italic(true)
	}
	labelStyle := tcell.StyleDefault.Foreground(textcolor.Gray.TCell())

	drawText(screen, x+TooltipPadding, y, nameStyle, name)
	drawText(screen, x+TooltipPadding, y+1, labelStyle, stack.EffectiveRarity().DisplayName())
	return 2
}

func drawText(screen tcell.Screen, x, y int, style tcell.Style, text string) {
	col := x
	for _, r := range text {
		screen.SetContent(col, y, r, nil, style)
		col++
	}
}
