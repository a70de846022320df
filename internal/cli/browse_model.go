package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/navmenu-io/navmenu/internal/cli/formatter"
	"github.com/navmenu-io/navmenu/internal/domain"
	"github.com/navmenu-io/navmenu/internal/service"
)

// browseRow is one rendered line of the browse view: either a (section,
// state) header or a menu item at some depth.
type browseRow struct {
	isHeader bool
	header   string
	item     *domain.MenuItem
	depth    int
}

// browseLoadedMsg signals that the hierarchy has been (re)loaded.
type browseLoadedMsg struct {
	rows []browseRow
	err  error
}

type browseKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	MoveUp   key.Binding
	MoveDown key.Binding
	Archive  key.Binding
	Refresh  key.Binding
	Quit     key.Binding
}

func defaultBrowseKeyMap() browseKeyMap {
	return browseKeyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("j", "down")),
		MoveUp:   key.NewBinding(key.WithKeys("K"), key.WithHelp("K", "move up")),
		MoveDown: key.NewBinding(key.WithKeys("J"), key.WithHelp("J", "move down")),
		Archive:  key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "archive/restore")),
		Refresh:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		Quit:     key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// browseModel is an interactive viewer over one domain's hierarchy. J and K
// reposition the selected item within its sibling group through the same
// move operation the CLI uses, so both groups stay densely numbered.
type browseModel struct {
	svc             service.MenuService
	domain          domain.MenuDomain
	includeArchived bool

	rows    []browseRow
	cursor  int
	loading bool
	err     error
	keys    browseKeyMap
}

func newBrowseModel(svc service.MenuService, d domain.MenuDomain, includeArchived bool) *browseModel {
	return &browseModel{
		svc:             svc,
		domain:          d,
		includeArchived: includeArchived,
		loading:         true,
		keys:            defaultBrowseKeyMap(),
	}
}

func (m *browseModel) Init() tea.Cmd {
	return m.load()
}

func (m *browseModel) load() tea.Cmd {
	svc, d, includeArchived := m.svc, m.domain, m.includeArchived
	return func() tea.Msg {
		h, err := svc.BuildHierarchy(context.Background(), d, includeArchived)
		if err != nil {
			return browseLoadedMsg{err: err}
		}
		return browseLoadedMsg{rows: buildBrowseRows(h)}
	}
}

// buildBrowseRows flattens a hierarchy into display rows: one header per
// (section, state) leaf, items nested depth-first by parentage beneath it.
func buildBrowseRows(h domain.Hierarchy) []browseRow {
	var rows []browseRow
	for _, sec := range domain.Sections {
		states, ok := h[sec]
		if !ok {
			continue
		}
		for _, st := range domain.DisplayStates {
			items := states[st]
			if len(items) == 0 {
				continue
			}
			rows = append(rows, browseRow{
				isHeader: true,
				header:   fmt.Sprintf("%s / %s", sec, st),
			})

			present := make(map[string]bool, len(items))
			for _, it := range items {
				present[it.ID] = true
			}
			children := make(map[string][]*domain.MenuItem)
			var roots []*domain.MenuItem
			for _, it := range items {
				if it.ParentID != nil && present[*it.ParentID] {
					children[*it.ParentID] = append(children[*it.ParentID], it)
				} else {
					roots = append(roots, it)
				}
			}

			var walk func(nodes []*domain.MenuItem, depth int)
			walk = func(nodes []*domain.MenuItem, depth int) {
				for _, it := range nodes {
					rows = append(rows, browseRow{item: it, depth: depth})
					walk(children[it.ID], depth+1)
				}
			}
			walk(roots, 0)
		}
	}
	return rows
}

func (m *browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case browseLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.rows = msg.rows
		m.cursor = m.nearestItemRow(m.cursor)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			m.cursor = m.prevItemRow(m.cursor)
		case key.Matches(msg, m.keys.Down):
			m.cursor = m.nextItemRow(m.cursor)
		case key.Matches(msg, m.keys.MoveUp):
			if it := m.selected(); it != nil {
				return m, m.moveSelected(it, it.SortID-1)
			}
		case key.Matches(msg, m.keys.MoveDown):
			if it := m.selected(); it != nil {
				return m, m.moveSelected(it, it.SortID+1)
			}
		case key.Matches(msg, m.keys.Archive):
			if it := m.selected(); it != nil {
				return m, m.toggleArchived(it)
			}
		case key.Matches(msg, m.keys.Refresh):
			m.loading = true
			return m, m.load()
		}
	}
	return m, nil
}

func (m *browseModel) selected() *domain.MenuItem {
	if m.cursor >= 0 && m.cursor < len(m.rows) && !m.rows[m.cursor].isHeader {
		return m.rows[m.cursor].item
	}
	return nil
}

// moveSelected repositions the item within its current group. Positions
// saturate, so nudging past either end is a no-op.
func (m *browseModel) moveSelected(it *domain.MenuItem, position int) tea.Cmd {
	svc := m.svc
	load := m.load()
	return func() tea.Msg {
		if _, err := svc.Move(context.Background(), it.ID, position, it.ParentID); err != nil {
			return browseLoadedMsg{err: err}
		}
		return load()
	}
}

func (m *browseModel) toggleArchived(it *domain.MenuItem) tea.Cmd {
	svc := m.svc
	load := m.load()
	return func() tea.Msg {
		var err error
		if it.Archived {
			_, err = svc.Unarchive(context.Background(), it.ID)
		} else {
			_, err = svc.Archive(context.Background(), it.ID)
		}
		if err != nil {
			return browseLoadedMsg{err: err}
		}
		return load()
	}
}

// nearestItemRow returns the first selectable row at or after from, falling
// back to the last selectable row.
func (m *browseModel) nearestItemRow(from int) int {
	if from < 0 {
		from = 0
	}
	for i := from; i < len(m.rows); i++ {
		if !m.rows[i].isHeader {
			return i
		}
	}
	for i := len(m.rows) - 1; i >= 0; i-- {
		if !m.rows[i].isHeader {
			return i
		}
	}
	return 0
}

func (m *browseModel) nextItemRow(from int) int {
	for i := from + 1; i < len(m.rows); i++ {
		if !m.rows[i].isHeader {
			return i
		}
	}
	return from
}

func (m *browseModel) prevItemRow(from int) int {
	for i := from - 1; i >= 0; i-- {
		if !m.rows[i].isHeader {
			return i
		}
	}
	return from
}

func (m *browseModel) View() string {
	var b strings.Builder
	b.WriteString("\n  " + formatter.DomainBadge(m.domain) + " " + formatter.Dim("menu") + "\n\n")

	switch {
	case m.loading:
		b.WriteString("  " + formatter.Dim("Loading menu...") + "\n")
	case m.err != nil:
		b.WriteString("  " + formatter.StyleRed.Render("Error: "+m.err.Error()) + "\n")
	case len(m.rows) == 0:
		b.WriteString("  " + formatter.Dim("No items.") + "\n")
	default:
		for i, row := range m.rows {
			if row.isHeader {
				if i > 0 {
					b.WriteString("\n")
				}
				b.WriteString("  " + formatter.StyleHeader.Render(strings.ToUpper(row.header)) + "\n")
				continue
			}

			cursor := "  "
			if i == m.cursor {
				cursor = formatter.StyleGreen.Render("▸ ")
			}

			it := row.item
			label := it.Label
			if it.Archived {
				label = formatter.Dim(label) + " " + formatter.ArchivedMark()
			}
			b.WriteString(fmt.Sprintf("  %s%s%s%s %s\n",
				cursor,
				strings.Repeat("  ", row.depth),
				formatter.Dim(fmt.Sprintf("%d. ", it.SortID)),
				label,
				formatter.Dim(it.Path),
			))
		}
	}

	b.WriteString("\n  " + formatter.Dim("j/k move cursor · J/K reposition · a archive · r refresh · q quit") + "\n")
	return b.String()
}
