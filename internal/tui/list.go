package tui

import (
	"strings"

	"github.com/klabast/wb-services/squeezers-site/internal/news"
)

// ClearInput typed at an edit prompt removes the field.
const ClearInput = "-"

// List is the in-memory news list being edited and its cursor. Changes only
// reach the news file on an explicit save.
type List struct {
	Items []news.Item
	Index int
}

func (l *List) clamp() {
	if l.Index >= len(l.Items) {
		l.Index = len(l.Items) - 1
	}
	if l.Index < 0 {
		l.Index = 0
	}
}

// Selected returns the item under the cursor.
func (l *List) Selected() (news.Item, bool) {
	if len(l.Items) == 0 {
		return news.Item{}, false
	}
	l.clamp()
	return l.Items[l.Index], true
}

func (l *List) Up() {
	l.Index--
	l.clamp()
}

func (l *List) Down() {
	l.Index++
	l.clamp()
}

// Add appends it and selects it.
func (l *List) Add(it news.Item) {
	l.Items = append(l.Items, it)
	l.Index = len(l.Items) - 1
}

// Replace overwrites the selected item.
func (l *List) Replace(it news.Item) {
	if len(l.Items) == 0 {
		return
	}
	l.clamp()
	l.Items[l.Index] = it
}

// Delete removes the selected item and selects the one above it.
func (l *List) Delete() {
	if len(l.Items) == 0 {
		return
	}
	l.clamp()
	l.Items = append(l.Items[:l.Index], l.Items[l.Index+1:]...)
	l.Index--
	l.clamp()
}

// MoveUp swaps the selected item with its predecessor, keeping it selected.
func (l *List) MoveUp() {
	if len(l.Items) == 0 || l.Index <= 0 {
		return
	}
	l.Items[l.Index-1], l.Items[l.Index] = l.Items[l.Index], l.Items[l.Index-1]
	l.Index--
}

// MoveDown swaps the selected item with its successor, keeping it selected.
func (l *List) MoveDown() {
	if len(l.Items) == 0 || l.Index >= len(l.Items)-1 {
		return
	}
	l.Items[l.Index+1], l.Items[l.Index] = l.Items[l.Index], l.Items[l.Index+1]
	l.Index++
}

// ApplyInput updates one field from an edit prompt: empty input keeps the
// current value, ClearInput clears it, anything else replaces it.
func ApplyInput(it *news.Item, key, input string) {
	input = strings.TrimSpace(input)
	switch input {
	case "":
	case ClearInput:
		it.Set(key, "")
	default:
		it.Set(key, input)
	}
}
