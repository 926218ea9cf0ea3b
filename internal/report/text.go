package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	ltree "github.com/charmbracelet/lipgloss/tree"

	"github.com/vk/nodetree/internal/node"
	"github.com/vk/nodetree/internal/tree"
)

var (
	nameStyle    = lipgloss.NewStyle().Bold(true)
	idStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	branchStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("63"))
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
	bulletStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	kindStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
)

// Label formats a node for text output as "name (id)".
func Label(n node.Node) string {
	return fmt.Sprintf("%s %s", nameStyle.Render(n.Name), idStyle.Render("("+n.ID+")"))
}

// RenderText draws the ordered tree with box-drawing branches. An empty
// forest renders as a short notice.
func RenderText(roots []*node.TreeNode) string {
	if len(roots) == 0 {
		return successStyle.Render("The tree is empty")
	}
	t := ltree.New().
		Enumerator(ltree.RoundedEnumerator).
		EnumeratorStyle(branchStyle)
	for _, r := range roots {
		t.Child(textNode(r))
	}
	return t.String()
}

func textNode(n *node.TreeNode) any {
	if len(n.Children) == 0 {
		return Label(n.Node)
	}
	t := ltree.Root(Label(n.Node)).
		Enumerator(ltree.RoundedEnumerator).
		EnumeratorStyle(branchStyle)
	for _, c := range n.Children {
		t.Child(textNode(c))
	}
	return t
}

// RenderFailures draws failures as a bulleted list under a header.
func RenderFailures(failures []tree.Failure) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("The tree could not be built:"))
	for _, f := range failures {
		b.WriteString("\n")
		b.WriteString(bulletStyle.Render("  • "))
		b.WriteString(Message(f))
		b.WriteString(" ")
		b.WriteString(kindStyle.Render("[" + f.Kind().String() + "]"))
	}
	return b.String()
}

// WriteText writes RenderText(roots) followed by a newline.
func WriteText(w io.Writer, roots []*node.TreeNode) error {
	_, err := fmt.Fprintln(w, RenderText(roots))
	return err
}

// WriteFailuresText writes RenderFailures(failures) followed by a newline.
func WriteFailuresText(w io.Writer, failures []tree.Failure) error {
	_, err := fmt.Fprintln(w, RenderFailures(failures))
	return err
}
