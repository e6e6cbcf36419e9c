package material

import (
	"strconv"
	"strings"
)

// Tab is one panel of the exam detail viewer.
type Tab string

const (
	TabOverview    Tab = "overview"
	TabEligibility Tab = "eligibility"
	TabPattern     Tab = "pattern"
	TabDates       Tab = "dates"
	TabResources   Tab = "resources"
	TabFAQs        Tab = "faqs"
	TabCommunity   Tab = "community"
)

var tabOrder = []Tab{TabOverview, TabEligibility, TabPattern, TabDates, TabResources, TabFAQs, TabCommunity}

// Tabs returns the panels in display order.
func Tabs() []Tab {
	out := make([]Tab, len(tabOrder))
	copy(out, tabOrder)
	return out
}

// ParseTab accepts a tab name or its zero-based index. Anything else selects overview.
func ParseTab(v string) Tab {
	v = strings.ToLower(strings.TrimSpace(v))
	if i, err := strconv.Atoi(v); err == nil {
		if i >= 0 && i < len(tabOrder) {
			return tabOrder[i]
		}
		return TabOverview
	}
	for _, t := range tabOrder {
		if string(t) == v {
			return t
		}
	}
	return TabOverview
}

// Index is the zero-based position of t.
func (t Tab) Index() int {
	for i, o := range tabOrder {
		if o == t {
			return i
		}
	}
	return 0
}

// Label is the tab caption.
func (t Tab) Label() string {
	switch t {
	case TabOverview:
		return "Overview"
	case TabEligibility:
		return "Eligibility"
	case TabPattern:
		return "Pattern"
	case TabDates:
		return "Important Dates"
	case TabResources:
		return "Resources"
	case TabFAQs:
		return "FAQs"
	case TabCommunity:
		return "Community"
	default:
		return string(t)
	}
}

// NotSpecified is shown in place of empty fields.
const NotSpecified = "Not specified"

// OrNotSpecified returns v, or NotSpecified when v is blank.
func OrNotSpecified(v string) string {
	if strings.TrimSpace(v) == "" {
		return NotSpecified
	}
	return v
}
