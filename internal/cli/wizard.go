package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/navmenu-io/navmenu/internal/cli/formatter"
	"github.com/navmenu-io/navmenu/internal/domain"
)

// navmenuHuhTheme returns a custom huh theme using the existing Gruvbox palette.
func navmenuHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

func validateRequired(name string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", name)
		}
		return nil
	}
}

func validateOptionalInt(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	if _, err := strconv.Atoi(strings.TrimSpace(s)); err != nil {
		return fmt.Errorf("must be a whole number")
	}
	return nil
}

// runItemWizard collects a new item's fields interactively, prefilled from
// whatever flags were already given. It mutates m in place.
func runItemWizard(m *domain.MenuItem) error {
	domainOpts := make([]huh.Option[domain.MenuDomain], 0, len(domain.MenuDomains))
	for _, d := range domain.MenuDomains {
		domainOpts = append(domainOpts, huh.NewOption(string(d), d))
	}
	sectionOpts := make([]huh.Option[domain.Section], 0, len(domain.Sections))
	for _, s := range domain.Sections {
		sectionOpts = append(sectionOpts, huh.NewOption(string(s), s))
	}
	stateOpts := make([]huh.Option[domain.DisplayState], 0, len(domain.DisplayStates))
	for _, s := range domain.DisplayStates {
		stateOpts = append(stateOpts, huh.NewOption(string(s), s))
	}

	var tooltip, icon, position string
	if m.Tooltip != nil {
		tooltip = *m.Tooltip
	}
	if m.Icon != nil {
		icon = *m.Icon
	}
	if m.SortID > 0 {
		position = strconv.Itoa(m.SortID)
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[domain.MenuDomain]().
				Title("Domain").
				Options(domainOpts...).
				Value(&m.Domain),
			huh.NewSelect[domain.Section]().
				Title("Section").
				Options(sectionOpts...).
				Value(&m.Section),
			huh.NewSelect[domain.DisplayState]().
				Title("Display State").
				Options(stateOpts...).
				Value(&m.State),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Label").
				Placeholder("New Arrivals").
				Value(&m.Label).
				Validate(validateRequired("label")),
			huh.NewInput().
				Title("Path").
				Placeholder("/shop/new").
				Value(&m.Path).
				Validate(validateRequired("path")),
			huh.NewInput().
				Title("Tooltip (blank for none)").
				Value(&tooltip),
			huh.NewInput().
				Title("Icon (blank for none)").
				Value(&icon),
			huh.NewInput().
				Title("Position (blank appends)").
				Placeholder("1").
				Value(&position).
				Validate(validateOptionalInt),
		),
	).WithTheme(navmenuHuhTheme()).WithShowHelp(false)

	if err := form.Run(); err != nil {
		return err
	}

	if tooltip = strings.TrimSpace(tooltip); tooltip != "" {
		m.Tooltip = &tooltip
	} else {
		m.Tooltip = nil
	}
	if icon = strings.TrimSpace(icon); icon != "" {
		m.Icon = &icon
	} else {
		m.Icon = nil
	}
	if position = strings.TrimSpace(position); position != "" {
		m.SortID, _ = strconv.Atoi(position)
	} else {
		m.SortID = 0
	}

	return nil
}
