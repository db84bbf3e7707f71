package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// revealFrameInterval is the delay between reveal animation frames.
const revealFrameInterval = 150 * time.Millisecond

// revealFrames is the coffee-cup animation shown while the charm is being
// revealed: the steam builds until the cup "tips" into the charm card.
var revealFrames = []string{
	`


   ╭────╮
   │    │─╮
   │    │ │
   ╰────╯─╯
  ════════ `,
	`

     (
   ╭────╮
   │    │─╮
   │    │ │
   ╰────╯─╯
  ════════ `,
	`
     )
     (
   ╭────╮
   │    │─╮
   │    │ │
   ╰────╯─╯
  ════════ `,
	`
    ( )
    ) (
   ╭────╮
   │    │─╮
   │    │ │
   ╰────╯─╯
  ════════ `,
	`
   ( ) )
   ) ( (
   ╭────╮
   │ ✦  │─╮
   │    │ │
   ╰────╯─╯
  ════════ `,
	`
  ( ) ( )
  ) ( ) (
   ╭────╮
   │ ✦✦ │─╮
   │ ✦  │ │
   ╰────╯─╯
  ════════ `,
}

// revealTickMsg advances the reveal animation by one frame.
type revealTickMsg struct{}

// revealTick schedules the next animation frame.
func revealTick() tea.Cmd {
	return tea.Tick(revealFrameInterval, func(time.Time) tea.Msg {
		return revealTickMsg{}
	})
}
