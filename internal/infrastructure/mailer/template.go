package mailer

import (
	"bytes"
	htmltemplate "html/template"
	texttemplate "text/template"
	"time"
)

// ReminderEmail is the data rendered into a reminder notification.
type ReminderEmail struct {
	Title        string
	Message      string
	Quote        string
	Category     string
	ScheduledFor time.Time
}

const htmlBody = `<!DOCTYPE html>
<html>
<body style="font-family: sans-serif; max-width: 560px; margin: 0 auto;">
  <h2 style="color: #c0392b;">{{.Title}}</h2>
  <p style="font-size: 18px;">{{.Message}}</p>
  {{if .Quote}}<blockquote style="color: #555; border-left: 3px solid #ccc; padding-left: 12px;">{{.Quote}}</blockquote>{{end}}
  <p style="color: #888; font-size: 12px;">Category: {{.Category}} &middot; Scheduled for {{.ScheduledFor.Format "Mon, 02 Jan 2006 15:04 MST"}}</p>
</body>
</html>
`

const textBody = `{{.Title}}

{{.Message}}
{{if .Quote}}
"{{.Quote}}"
{{end}}
Category: {{.Category}}
Scheduled for {{.ScheduledFor.Format "Mon, 02 Jan 2006 15:04 MST"}}
`

var (
	htmlTmpl = htmltemplate.Must(htmltemplate.New("reminder.html").Parse(htmlBody))
	textTmpl = texttemplate.Must(texttemplate.New("reminder.txt").Parse(textBody))
)

// RenderReminder returns the subject, HTML body and plain-text body for data.
func RenderReminder(data ReminderEmail) (subject, html, text string, err error) {
	var hb, tb bytes.Buffer
	if err := htmlTmpl.Execute(&hb, data); err != nil {
		return "", "", "", err
	}
	if err := textTmpl.Execute(&tb, data); err != nil {
		return "", "", "", err
	}
	return "Reminder: " + data.Title, hb.String(), tb.String(), nil
}
