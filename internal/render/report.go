// Package render lays out the paid readiness report as a three page PDF:
// summary, per-check detail and the full action plan.
package render

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"

	"readiness/internal/domain"
	"readiness/internal/ports"
)

const (
	topActions = 5
	font       = "Helvetica"
	badgeImage = "score-badge"
	margin     = 20.0
)

// PDF renders reports. The same analysis, email and generatedAt always yield
// the same bytes.
type PDF struct {
	Brand        string
	SupportEmail string
}

var _ ports.Renderer = (*PDF)(nil)

func New(brand, supportEmail string) *PDF {
	return &PDF{Brand: brand, SupportEmail: supportEmail}
}

func (r *PDF) Render(a domain.Analysis, email string, generatedAt time.Time) ([]byte, error) {
	badge, err := scoreBadge(a.OverallScore)
	if err != nil {
		return nil, fmt.Errorf("render badge: %w", err)
	}

	site := a.SiteDomain()
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetCreationDate(generatedAt)
	pdf.SetModificationDate(generatedAt)
	pdf.SetCatalogSort(true)
	pdf.SetMargins(margin, margin, margin)
	pdf.SetAutoPageBreak(true, 30)
	pdf.AliasNbPages("")

	d := &doc{pdf: pdf, tr: pdf.UnicodeTranslatorFromDescriptor("")}
	pdf.SetTitle(d.tr("AI Readiness Report - "+site), false)
	pdf.SetAuthor(d.tr(r.Brand), false)
	pdf.SetFooterFunc(func() { d.footer(email, a.URL) })
	pdf.RegisterImageOptionsReader(badgeImage, fpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(badge))

	items := ActionItems(a.Checks)
	r.summaryPage(d, a, site, items, generatedAt)
	r.metricsPage(d, a)
	r.actionPlanPage(d, items)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *PDF) summaryPage(d *doc, a domain.Analysis, site string, items []ActionItem, generatedAt time.Time) {
	pdf := d.pdf
	pdf.AddPage()

	d.text(colorBlack, "B", 18)
	pdf.CellFormat(0, 9, "AI Readiness Report", "", 1, "L", false, 0, "")
	d.text(colorGray, "", 10)
	pdf.CellFormat(0, 6, d.tr("Powered by "+r.Brand), "", 1, "L", false, 0, "")
	d.rule(colorBlack)
	pdf.Ln(8)

	d.text(colorBlack, "B", 24)
	pdf.CellFormat(0, 11, "Website Analysis", "", 1, "L", false, 0, "")
	d.text(colorGray, "", 14)
	pdf.CellFormat(0, 8, d.tr(site), "", 1, "L", false, 0, "")
	d.text(colorMuted, "", 10)
	pdf.CellFormat(0, 6, "Generated on "+generatedAt.UTC().Format("January 2, 2006"), "", 1, "L", false, 0, "")
	pdf.Ln(6)

	top := pdf.GetY()
	d.fill(colorPanel)
	pdf.Rect(margin, top, 170, 40, "F")
	pdf.ImageOptions(badgeImage, margin+6, top+5, 30, 30, false, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")
	pdf.SetXY(margin+44, top+10)
	d.text(colorBlack, "B", 16)
	pdf.CellFormat(0, 8, Grade(a.OverallScore)+" AI Readiness", "", 2, "L", false, 0, "")
	d.text(colorGray, "", 11)
	pdf.CellFormat(0, 7, fmt.Sprintf("%d of %d checks passed", passed(a.Checks), len(a.Checks)), "", 1, "L", false, 0, "")
	pdf.SetXY(margin, top+48)

	d.section("Executive Summary")
	d.panel(Summary(a.OverallScore, site))
	pdf.Ln(6)

	d.section("Top Priority Actions")
	for i, item := range items {
		if i == topActions {
			break
		}
		d.action(i+1, item)
	}
}

func (r *PDF) metricsPage(d *doc, a domain.Analysis) {
	pdf := d.pdf
	pdf.AddPage()
	d.section("Detailed Metrics")

	for _, c := range a.Checks {
		y := pdf.GetY()
		d.text(colorBlack, "B", 12)
		pdf.CellFormat(140, 7, d.tr(c.Label), "", 0, "L", false, 0, "")
		d.text(scoreColor(c.Score), "B", 12)
		pdf.CellFormat(0, 7, fmt.Sprintf("%d%%", c.Score), "", 1, "R", false, 0, "")
		if c.Details != "" {
			d.text(colorGray, "", 10)
			pdf.MultiCell(0, 5, d.tr(c.Details), "", "L", false)
		}
		if c.Recommendation != "" {
			pdf.Ln(1)
			d.text(colorBlack, "", 10)
			d.fill(colorPanel)
			pdf.MultiCell(0, 6, d.tr("Recommendation: "+c.Recommendation), "", "L", true)
		}
		pdf.Ln(3)
		if pdf.GetY() > y {
			d.rule(colorBorder)
		}
		pdf.Ln(4)
	}
}

func (r *PDF) actionPlanPage(d *doc, items []ActionItem) {
	pdf := d.pdf
	pdf.AddPage()
	d.section("Complete Action Plan")
	d.text(colorGray, "", 10)
	pdf.MultiCell(0, 5, "Below is your prioritized list of improvements. Work through these in order for maximum impact on your AI readiness score.", "", "L", false)
	pdf.Ln(5)

	for i, item := range items {
		d.action(i+1, item)
	}
	if len(items) == 0 {
		d.panel("Congratulations! Your site passed all checks. Continue monitoring your AI readiness as you make updates to your site.")
	}
	pdf.Ln(8)

	d.section("Next Steps")
	d.panel(strings.Join([]string{
		"1. Start with the HIGH priority items - these have the biggest impact.",
		"2. Re-run your analysis after making changes to track your progress.",
		"3. Share this report with your development team for implementation.",
		"4. Questions? Contact us at " + r.SupportEmail,
	}, "\n\n"))
}

func passed(checks []domain.CheckResult) int {
	n := 0
	for _, c := range checks {
		if c.Status == domain.CheckPass {
			n++
		}
	}
	return n
}

// doc bundles the pdf with its cp1252 translator and small drawing helpers.
type doc struct {
	pdf *fpdf.Fpdf
	tr  func(string) string
}

func (d *doc) text(c rgb, style string, size float64) {
	d.pdf.SetFont(font, style, size)
	d.pdf.SetTextColor(c.r, c.g, c.b)
}

func (d *doc) fill(c rgb) { d.pdf.SetFillColor(c.r, c.g, c.b) }

func (d *doc) rule(c rgb) {
	d.pdf.SetDrawColor(c.r, c.g, c.b)
	y := d.pdf.GetY() + 1
	d.pdf.Line(margin, y, 210-margin, y)
	d.pdf.SetY(y + 1)
}

func (d *doc) section(title string) {
	d.text(colorBlack, "B", 14)
	d.pdf.CellFormat(0, 9, title, "", 1, "L", false, 0, "")
	d.pdf.Ln(2)
}

func (d *doc) panel(body string) {
	d.text(colorGray, "", 10)
	d.fill(colorPanel)
	d.pdf.MultiCell(0, 6, d.tr(body), "", "L", true)
}

func (d *doc) action(n int, item ActionItem) {
	pdf := d.pdf
	d.text(colorBlack, "B", 10)
	pdf.CellFormat(8, 6, fmt.Sprintf("%d.", n), "", 0, "L", false, 0, "")
	tag := "[" + strings.ToUpper(string(item.Priority)) + "]"
	d.text(priorityColor(item.Priority), "B", 10)
	pdf.CellFormat(pdf.GetStringWidth(tag)+2, 6, tag, "", 0, "L", false, 0, "")
	d.text(colorGray, "", 10)
	pdf.MultiCell(0, 6, d.tr(item.Text), "", "L", false)
	pdf.Ln(1)
}

func (d *doc) footer(email, url string) {
	pdf := d.pdf
	pdf.SetY(-22)
	d.rule(colorBorder)
	d.text(colorMuted, "", 8)
	pdf.CellFormat(0, 4, d.tr("Prepared for "+email), "", 1, "L", false, 0, "")
	pdf.CellFormat(140, 4, d.tr(url), "", 0, "L", false, 0, "")
	pdf.CellFormat(0, 4, fmt.Sprintf("%d / {nb}", pdf.PageNo()), "", 0, "R", false, 0, "")
}
