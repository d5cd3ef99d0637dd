package component

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rovshanmuradov/tinystock/internal/ui/style"
)

// NavItem is one entry of the navigation bar.
type NavItem struct {
	Key   string
	Title string
}

// StatusHeader shows the app title, the signed-in user and the page navigation
type StatusHeader struct {
	user   string
	items  []NavItem
	active int
	width  int
	style  style.HeaderStyles
}

// NewStatusHeader creates a new status header component
func NewStatusHeader(items []NavItem) *StatusHeader {
	return &StatusHeader{
		items:  items,
		active: -1,
		style:  style.NewHeaderStyles(style.DefaultPalette()),
	}
}

// SetUser updates the signed-in user's email.
func (sh *StatusHeader) SetUser(email string) {
	sh.user = email
}

// SetActive marks the navigation item at index as current.
func (sh *StatusHeader) SetActive(index int) {
	sh.active = index
}

// SetWidth sets the component width for responsive layout
func (sh *StatusHeader) SetWidth(width int) {
	sh.width = width
}

// View renders the status header
func (sh *StatusHeader) View() string {
	top := sh.style.Title.Render("TinyStock")
	if sh.user != "" {
		top += "  " + sh.style.User.Render("Logged in as "+sh.user)
	}

	nav := make([]string, len(sh.items))
	for i, item := range sh.items {
		label := item.Title
		if item.Key != "" {
			label = item.Key + " " + label
		}
		if i == sh.active {
			nav[i] = sh.style.NavActive.Render(label)
		} else {
			nav[i] = sh.style.NavItem.Render(label)
		}
	}

	content := top
	if len(nav) > 0 {
		content = lipgloss.JoinVertical(lipgloss.Left, top, strings.Join(nav, " "))
	}

	container := sh.style.Container
	if sh.width > 4 {
		container = container.Width(sh.width - 4)
	}
	return container.Render(content)
}
