package render

import (
	"sort"

	"readiness/internal/domain"
)

type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

func (p Priority) rank() int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	}
	return 2
}

// ActionItem is one remediation step derived from a check.
type ActionItem struct {
	CheckID  string
	Priority Priority
	Score    int
	Text     string
}

// ActionItems ranks checks into remediation steps: failing checks first, then
// warnings, then passing checks that are not yet perfect. Within a tier the
// lowest score comes first; ties keep the order of the checks.
func ActionItems(checks []domain.CheckResult) []ActionItem {
	items := make([]ActionItem, 0, len(checks))
	for _, c := range checks {
		var p Priority
		switch {
		case c.Status == domain.CheckFail:
			p = PriorityHigh
		case c.Status == domain.CheckWarning:
			p = PriorityMedium
		case c.Score < 100:
			p = PriorityLow
		default:
			continue
		}
		items = append(items, ActionItem{
			CheckID:  c.ID,
			Priority: p,
			Score:    c.Score,
			Text:     c.Label + ": " + c.Recommendation,
		})
	}
	sort.SliceStable(items, func(i, j int) bool {
		if ri, rj := items[i].Priority.rank(), items[j].Priority.rank(); ri != rj {
			return ri < rj
		}
		return items[i].Score < items[j].Score
	})
	return items
}

// Grade is the banner word for an overall score.
func Grade(score int) string {
	switch {
	case score >= 90:
		return "Excellent"
	case score >= 80:
		return "Good"
	case score >= 70:
		return "Fair"
	case score >= 50:
		return "Needs Work"
	}
	return "Critical"
}

// Summary is the executive summary paragraph for a score.
func Summary(score int, site string) string {
	switch {
	case score >= 80:
		return site + " is well-optimized for AI discovery. Your site follows best practices for semantic structure, metadata, and machine readability. Focus on the recommendations below to reach excellence."
	case score >= 60:
		return site + " has a solid foundation but needs improvements. AI agents can find your site, but may struggle to understand your content fully. Address the high-priority items below."
	case score >= 40:
		return site + " needs significant work to be AI-ready. Current issues may prevent AI agents from properly understanding and recommending your content. Follow the action plan below."
	}
	return site + " has critical AI readiness issues. AI agents may not be able to properly discover or understand your content. Immediate action is required on the items below."
}

type rgb struct{ r, g, b int }

var (
	colorBlack  = rgb{0x0D, 0x0D, 0x0D}
	colorGray   = rgb{0x52, 0x52, 0x52}
	colorMuted  = rgb{0xA3, 0xA3, 0xA3}
	colorPanel  = rgb{0xF5, 0xF5, 0xF5}
	colorBorder = rgb{0xE5, 0xE5, 0xE5}
	colorGreen  = rgb{0x22, 0xC5, 0x5E}
	colorYellow = rgb{0xEA, 0xB3, 0x08}
	colorRed    = rgb{0xEF, 0x44, 0x44}
)

func scoreColor(score int) rgb {
	switch {
	case score >= 80:
		return colorGreen
	case score >= 50:
		return colorYellow
	}
	return colorRed
}

func priorityColor(p Priority) rgb {
	switch p {
	case PriorityHigh:
		return colorRed
	case PriorityMedium:
		return colorYellow
	}
	return colorGreen
}
