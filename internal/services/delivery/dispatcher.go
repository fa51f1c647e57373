// Package delivery stores rendered reports and emails them to the buyer.
package delivery

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"readiness/internal/ports"
)

const pdfContentType = "application/pdf"

var reportEmail = template.Must(template.New("report").Parse(`<div style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; max-width: 600px; margin: 0 auto; padding: 40px 20px;">
  <h1 style="color: #0D0D0D; font-size: 24px; margin-bottom: 16px;">Your AI Readiness Report is Ready</h1>
  <p style="color: #525252; font-size: 16px; line-height: 1.6;">Thank you for your purchase! Attached is your detailed AI readiness report for <strong>{{.Domain}}</strong>.</p>
  <div style="background: #F5F5F5; padding: 24px; border-radius: 8px; margin-bottom: 24px; text-align: center;">
    <div style="font-size: 48px; font-weight: bold; color: #0D0D0D;">{{.OverallScore}}<span style="font-size: 20px; color: #525252;">/100</span></div>
    <div style="color: #525252; font-size: 14px; margin-top: 8px;">Overall AI Readiness Score</div>
  </div>
  <p style="color: #525252; font-size: 16px;">Your report includes:</p>
  <ul style="color: #525252; font-size: 16px; line-height: 1.8; padding-left: 20px;">
    <li>Executive summary for stakeholders</li>
    <li>Detailed analysis of all {{.CheckCount}} metrics</li>
    <li>Prioritized action plan with specific fixes</li>
    <li>Recommendations tailored to your site</li>
  </ul>
  {{with .PdfURL}}<p style="color: #525252; font-size: 14px;">You can also <a href="{{.}}" style="color: #0D0D0D;">download your report here</a>.</p>{{end}}
  <hr style="border: none; border-top: 1px solid #E5E5E5; margin: 32px 0;" />
  <p style="color: #A3A3A3; font-size: 12px; line-height: 1.6;">Questions about your report? Reply to this email or contact us at {{.Support}}.<br /><br />{{.Brand}}</p>
</div>`))

type emailView struct {
	Domain       string
	OverallScore int
	CheckCount   int
	PdfURL       string
	Support      string
	Brand        string
}

// Dispatcher implements ports.Delivery on top of an object store and a mailer.
type Dispatcher struct {
	store   ports.ObjectStore
	mailer  ports.Mailer
	brand   string
	support string
}

var _ ports.Delivery = (*Dispatcher)(nil)

func NewDispatcher(store ports.ObjectStore, mailer ports.Mailer, brand, support string) *Dispatcher {
	return &Dispatcher{store: store, mailer: mailer, brand: brand, support: support}
}

func (d *Dispatcher) Store(ctx context.Context, key string, document []byte) (string, error) {
	return d.store.Put(ctx, key, pdfContentType, document)
}

func (d *Dispatcher) SendReport(ctx context.Context, e ports.ReportEmail) error {
	view := emailView{
		Domain:       e.Domain,
		OverallScore: e.OverallScore,
		CheckCount:   e.CheckCount,
		Support:      d.support,
		Brand:        d.brand,
	}
	if e.PdfURL != nil {
		view.PdfURL = *e.PdfURL
	}
	var html bytes.Buffer
	if err := reportEmail.Execute(&html, view); err != nil {
		return fmt.Errorf("render report email: %w", err)
	}

	text := fmt.Sprintf("Your AI readiness report for %s is attached.\nOverall score: %d/100.\n", e.Domain, e.OverallScore)
	if view.PdfURL != "" {
		text += "Download: " + view.PdfURL + "\n"
	}

	return d.mailer.Send(ctx, ports.EmailMessage{
		To:      e.To,
		Subject: "Your AI Readiness Report for " + e.Domain,
		HTML:    html.String(),
		Text:    text,
		Attachments: []ports.Attachment{
			{Filename: e.Filename, ContentType: pdfContentType, Content: e.Document},
		},
	})
}
