package cli

import (
	"fmt"
	"strings"

	"github.com/navmenu-io/navmenu/internal/domain"
	"github.com/spf13/pflag"
)

// domainFlag is a pflag.Value that only accepts known menu domains.
type domainFlag struct {
	value domain.MenuDomain
}

var _ pflag.Value = (*domainFlag)(nil)

func (f *domainFlag) String() string { return string(f.value) }
func (f *domainFlag) Type() string   { return "domain" }

func (f *domainFlag) Set(s string) error {
	d, ok := domain.ParseMenuDomain(s)
	if !ok {
		return fmt.Errorf("invalid domain %q (one of %s)", s, joinDomains())
	}
	f.value = d
	return nil
}

// sectionFlag is a pflag.Value that only accepts known sections.
type sectionFlag struct {
	value domain.Section
	set   bool
}

var _ pflag.Value = (*sectionFlag)(nil)

func (f *sectionFlag) String() string { return string(f.value) }
func (f *sectionFlag) Type() string   { return "section" }

func (f *sectionFlag) Set(s string) error {
	sec, ok := domain.ParseSection(s)
	if !ok {
		return fmt.Errorf("invalid section %q (one of %s)", s, joinSections())
	}
	f.value = sec
	f.set = true
	return nil
}

// stateFlag is a pflag.Value that only accepts known display states.
type stateFlag struct {
	value domain.DisplayState
	set   bool
}

var _ pflag.Value = (*stateFlag)(nil)

func (f *stateFlag) String() string { return string(f.value) }
func (f *stateFlag) Type() string   { return "state" }

func (f *stateFlag) Set(s string) error {
	st, ok := domain.ParseDisplayState(s)
	if !ok {
		return fmt.Errorf("invalid state %q (one of %s)", s, joinStates())
	}
	f.value = st
	f.set = true
	return nil
}

func joinDomains() string {
	names := make([]string, len(domain.MenuDomains))
	for i, d := range domain.MenuDomains {
		names[i] = string(d)
	}
	return strings.Join(names, "|")
}

func joinSections() string {
	names := make([]string, len(domain.Sections))
	for i, s := range domain.Sections {
		names[i] = string(s)
	}
	return strings.Join(names, "|")
}

func joinStates() string {
	names := make([]string, len(domain.DisplayStates))
	for i, s := range domain.DisplayStates {
		names[i] = string(s)
	}
	return strings.Join(names, "|")
}
