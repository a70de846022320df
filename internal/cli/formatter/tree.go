package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// TreeItem represents a single menu entry in a tree display.
type TreeItem struct {
	Label    string
	Path     string
	SortID   int // position within the sibling group; 0 means don't display
	Level    int
	IsLast   bool
	Archived bool
}

const (
	treeBranch = "├─ "
	treeCorner = "└─ "
	treePipe   = "│  "
)

// RenderMenuTree renders menu entries as an indented tree using box-drawing
// characters for connectors. Archived entries are dimmed and marked, and
// path badges are right-aligned past the widest row.
func RenderMenuTree(items []TreeItem) string {
	if len(items) == 0 {
		return ""
	}

	type lineInfo struct {
		content string // prefix + position + label (styled)
		badge   string // styled path badge or ""
	}

	lines := make([]lineInfo, len(items))
	maxContentWidth := 0

	// Pass 1: build each line's content and track max visible width.
	for idx, item := range items {
		var prefix string
		if item.Level > 0 {
			for i := 1; i < item.Level; i++ {
				prefix += treePipe
			}
			if item.IsLast {
				prefix += treeCorner
			} else {
				prefix += treeBranch
			}
		}

		label := item.Label
		if item.Archived {
			label = Dim(label) + " " + ArchivedMark()
		}
		if item.SortID > 0 {
			label = StyleDim.Render(fmt.Sprintf("%d. ", item.SortID)) + label
		}

		content := prefix + label
		lines[idx].content = content

		if item.Path != "" {
			lines[idx].badge = StyleBlue.Render(fmt.Sprintf("[ %s ]", item.Path))
		}

		if w := lipgloss.Width(content); w > maxContentWidth {
			maxContentWidth = w
		}
	}

	// Pass 2: render with right-aligned badges.
	var b strings.Builder
	for _, li := range lines {
		if li.badge != "" {
			pad := maxContentWidth - lipgloss.Width(li.content)
			if pad < 0 {
				pad = 0
			}
			b.WriteString(li.content + strings.Repeat(" ", pad) + "  " + li.badge + "\n")
		} else {
			b.WriteString(li.content + "\n")
		}
	}

	return b.String()
}

// HierarchyGroup is one (section, state) leaf of a domain's hierarchy,
// flattened and ready for display.
type HierarchyGroup struct {
	Section string
	State   string
	Items   []TreeItem
}

// RenderHierarchy renders a domain's grouped menu entries, one headed tree
// per (section, state) leaf.
func RenderHierarchy(groups []HierarchyGroup) string {
	var b strings.Builder
	for i, g := range groups {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(Header(g.Section + " / " + g.State))
		b.WriteString("\n")
		b.WriteString(RenderMenuTree(g.Items))
	}
	return b.String()
}
