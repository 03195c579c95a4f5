package components

import (
	"charm.land/lipgloss/v2"

	"github.com/ivelina/tendril/internal/companion"
	"github.com/ivelina/tendril/internal/ui/theme"
)

const plantIdle = ` ❀
╲│╱
 │
┌┴─┐
│▒▒│
└──┘`

const plantCheer = `✧ ❀ ✧
 ╲│╱
  │
 ┌┴─┐
 │▒▒│
 └──┘`

const plantWorried = ` ❀
 │╱
 │
┌┴─┐
│▒▒│
└──┘`

const plantUpset = `
 ╭❀
 │
┌┴─┐
│▒▒│
└──┘`

const plantSleepy = `   z
 ❀z
╲│
 │
┌┴─┐
│▒▒│
└──┘`

// RenderCompanion returns the plant companion art for the given animation.
func RenderCompanion(anim companion.Animation) string {
	art := plantIdle
	fg := theme.Primary

	switch anim {
	case companion.AnimationCheer:
		art = plantCheer
		fg = theme.Accent
	case companion.AnimationWorried:
		art = plantWorried
		fg = theme.Warning
	case companion.AnimationUpset:
		art = plantUpset
		fg = theme.Error
	case companion.AnimationSleepy:
		art = plantSleepy
		fg = theme.TextDim
	}

	return lipgloss.NewStyle().
		Foreground(fg).
		Render(art)
}
