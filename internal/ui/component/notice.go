package component

import "github.com/rovshanmuradov/tinystock/internal/ui/style"

// NoticeKind selects how a notice is coloured.
type NoticeKind int

const (
	NoticeNone NoticeKind = iota
	NoticeInfo
	NoticeSuccess
	NoticeWarning
	NoticeError
)

// Notice is a one-line status message shown under a page's controls.
type Notice struct {
	Kind NoticeKind
	Text string
}

// Info, Success, Warning and Error build notices of the matching kind.
func Info(text string) Notice    { return Notice{Kind: NoticeInfo, Text: text} }
func Success(text string) Notice { return Notice{Kind: NoticeSuccess, Text: text} }
func Warning(text string) Notice { return Notice{Kind: NoticeWarning, Text: text} }
func Error(text string) Notice   { return Notice{Kind: NoticeError, Text: text} }

// Empty reports whether there is nothing to show.
func (n Notice) Empty() bool {
	return n.Kind == NoticeNone || n.Text == ""
}

// View renders the notice
func (n Notice) View() string {
	switch n.Kind {
	case NoticeInfo:
		return style.InfoStyle.Render(n.Text)
	case NoticeSuccess:
		return style.SuccessStyle.Render("✓ " + n.Text)
	case NoticeWarning:
		return style.WarningStyle.Render(n.Text)
	case NoticeError:
		return style.ErrorStyle.Render("✗ " + n.Text)
	default:
		return ""
	}
}
