package domain

// MenuDomain identifies which surface of the product a menu belongs to.
type MenuDomain string

const (
	DomainStorefront MenuDomain = "storefront"
	DomainBackoffice MenuDomain = "backoffice"
	DomainHelp       MenuDomain = "help"
)

// MenuDomains is the closed set of valid menu domains.
var MenuDomains = []MenuDomain{DomainStorefront, DomainBackoffice, DomainHelp}

// Section is the structural subtype of a menu within its domain.
type Section string

const (
	SectionHeader     Section = "header"
	SectionFooter     Section = "footer"
	SectionSidebar    Section = "sidebar"
	SectionContextual Section = "contextual"
)

// Sections is the closed set of valid menu sections.
var Sections = []Section{SectionHeader, SectionFooter, SectionSidebar, SectionContextual}

// DisplayState is the publication state of a menu item.
type DisplayState string

const (
	StateDraft   DisplayState = "draft"
	StateLive    DisplayState = "live"
	StateRetired DisplayState = "retired"
)

// DisplayStates is the closed set of valid display states.
var DisplayStates = []DisplayState{StateDraft, StateLive, StateRetired}

// ParseMenuDomain validates s against the closed domain set.
func ParseMenuDomain(s string) (MenuDomain, bool) {
	for _, d := range MenuDomains {
		if string(d) == s {
			return d, true
		}
	}
	return "", false
}

// ParseSection validates s against the closed section set.
func ParseSection(s string) (Section, bool) {
	for _, sec := range Sections {
		if string(sec) == s {
			return sec, true
		}
	}
	return "", false
}

// ParseDisplayState validates s against the closed state set.
func ParseDisplayState(s string) (DisplayState, bool) {
	for _, st := range DisplayStates {
		if string(st) == s {
			return st, true
		}
	}
	return "", false
}
