package viz

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// LetterStagger is the delay between two letters flipping.
const LetterStagger = 25 * time.Millisecond

type nameTickMsg struct {
	id  int
	tag int
}

// NameTransition swaps the full name for the handle one letter at a time.
// Letters left of the cursor already show the target text.
type NameTransition struct {
	full, handle string
	showHandle   bool
	revealed     int
	id, tag      int
	styles       *Styles
}

func NewNameTransition(full, handle string, styles *Styles) NameTransition {
	n := NameTransition{full: full, handle: handle, id: nextID(), styles: styles}
	n.revealed = n.width()
	return n
}

func (n NameTransition) width() int {
	a, b := len([]rune(n.full)), len([]rune(n.handle))
	if a > b {
		return a
	}
	return b
}

// Toggle starts the swap toward the other text.
func (n NameTransition) Toggle() (NameTransition, tea.Cmd) {
	n.showHandle = !n.showHandle
	n.revealed = 0
	n.tag++
	return n, n.tick()
}

func (n NameTransition) ShowingHandle() bool { return n.showHandle }

// Done reports whether every letter shows the target text.
func (n NameTransition) Done() bool { return n.revealed >= n.width() }

func (n NameTransition) Update(msg tea.Msg) (NameTransition, tea.Cmd) {
	m, ok := msg.(nameTickMsg)
	if !ok || m.id != n.id || m.tag != n.tag || n.Done() {
		return n, nil
	}
	n.revealed++
	if n.Done() {
		return n, nil
	}
	return n, n.tick()
}

func (n NameTransition) tick() tea.Cmd {
	id, tag := n.id, n.tag
	return tea.Tick(LetterStagger, func(time.Time) tea.Msg {
		return nameTickMsg{id: id, tag: tag}
	})
}

// Text is the mix of both strings at the current point of the swap.
func (n NameTransition) Text() string {
	from, to := []rune(n.full), []rune(n.handle)
	if !n.showHandle {
		from, to = to, from
	}
	out := make([]rune, n.width())
	for i := range out {
		src := from
		if i < n.revealed {
			src = to
		}
		if i < len(src) {
			out[i] = src[i]
		} else {
			out[i] = ' '
		}
	}
	return strings.TrimRight(string(out), " ")
}

func (n NameTransition) View() string {
	return n.styles.Header.Render(n.Text())
}
