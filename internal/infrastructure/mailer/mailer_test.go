package mailer

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"rudereminder/internal/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"
)

func TestSendBuildsMultipartMessage(t *testing.T) {
	m := New(Config{From: "bot@example.com"}, logger.NewNop())
	assert.False(t, m.Enabled())
	assert.Error(t, m.Send("me@example.com", "s", "<p>h</p>", "t"))

	var sent []*gomail.Message
	m.send = func(msgs ...*gomail.Message) error {
		sent = append(sent, msgs...)
		return nil
	}
	require.NoError(t, m.Send("me@example.com", "Reminder: gym", "<p>go</p>", "go"))
	require.Len(t, sent, 1)
	assert.Equal(t, []string{"me@example.com"}, sent[0].GetHeader("To"))
	assert.Equal(t, []string{"bot@example.com"}, sent[0].GetHeader("From"))

	var raw bytes.Buffer
	_, err := sent[0].WriteTo(&raw)
	require.NoError(t, err)
	assert.Contains(t, raw.String(), "text/plain")
	assert.Contains(t, raw.String(), "text/html")
}

func TestSendWrapsTransportError(t *testing.T) {
	m := New(Config{Host: "smtp.invalid", Port: 25}, logger.NewNop())
	assert.True(t, m.Enabled())
	m.send = func(...*gomail.Message) error { return errors.New("connection refused") }
	err := m.Send("me@example.com", "s", "h", "t")
	assert.ErrorContains(t, err, "connection refused")
}

func TestRenderReminder(t *testing.T) {
	subject, html, text, err := RenderReminder(ReminderEmail{
		Title:        "finish <report>",
		Message:      "Do it now.",
		Quote:        "Done is better than perfect.",
		Category:     "work",
		ScheduledFor: time.Date(2026, 5, 4, 9, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.Equal(t, "Reminder: finish <report>", subject)
	assert.Contains(t, html, "finish &lt;report&gt;")
	assert.Contains(t, html, "Done is better than perfect.")
	assert.Contains(t, text, "finish <report>")
	assert.Contains(t, text, "Mon, 04 May 2026 09:00 UTC")
}
