package service

import (
	"context"
	"testing"

	"rudereminder/internal/application/dto"
	"rudereminder/internal/domain/constant"
	"rudereminder/internal/domain/entity"
	"rudereminder/internal/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type dispatcherHarness struct {
	svc       *dispatcherService
	runner    *fakeRunner
	reminders *fakeReminderRepo
	users     *fakeUserRepo
	hub       *fakeBroadcaster
	mail      *fakeMailer
	publisher *fakePublisher
	ai        *fakeAI
	followUps *followUpService
}

func newDispatcherHarness(t *testing.T, users ...*entity.User) *dispatcherHarness {
	t.Helper()
	h := &dispatcherHarness{
		runner:    newFakeRunner(testNow),
		reminders: newFakeReminderRepo(),
		users:     newFakeUserRepo(users...),
		hub:       &fakeBroadcaster{},
		mail:      &fakeMailer{enabled: true},
		publisher: &fakePublisher{},
		ai:        &fakeAI{},
	}
	tier := NewTierService(h.users, logger.NewNop()).(*tierService)
	tier.now = h.runner.Now
	h.followUps = NewFollowUpService(h.runner, h.reminders, h.hub, logger.NewNop()).(*followUpService)
	h.followUps.now = h.runner.Now
	h.svc = NewDispatcherService(DispatcherDeps{
		UserRepo:     h.users,
		ReminderRepo: h.reminders,
		Tier:         tier,
		AI:           h.ai,
		Broadcaster:  h.hub,
		Mailer:       h.mail,
		Publisher:    h.publisher,
		FollowUps:    h.followUps,
	}, logger.NewNop()).(*dispatcherService)
	h.svc.now = h.runner.Now
	return h
}

func TestFireDeliversOnlyChannelsEnabledOnBoth(t *testing.T) {
	user := entity.NewUser("user-1", "runner@example.com") // browser on, email off
	h := newDispatcherHarness(t, user)
	r := testReminder("r-1", testNow)
	r.EmailNotification = true
	h.reminders.put(r)

	require.NoError(t, h.svc.Fire(context.Background(), r))

	notifications := h.hub.ofType(dto.EventNotification)
	require.Len(t, notifications, 1)
	payload := notifications[0].Payload.(dto.NotificationPayload)
	assert.Equal(t, "r-1", payload.ReminderID)
	assert.Equal(t, "user-1", payload.UserID)
	assert.NotEmpty(t, payload.CurrentResponse)
	assert.Len(t, payload.Remarks, 2)

	assert.Zero(t, h.mail.count())
	assert.Empty(t, h.hub.ofType(dto.EventVoiceNotification))
	assert.Len(t, h.hub.ofType(dto.EventReminderFired), 1)

	stored := h.reminders.get("r-1")
	require.NotNil(t, stored.LastFiredAt)
	assert.Equal(t, testNow, *stored.LastFiredAt)
	assert.Equal(t, payload.CurrentResponse, stored.RudeMessage)

	require.Len(t, h.publisher.events, 1)
	assert.Equal(t, []string{channelBrowser}, h.publisher.events[0].Channels)
	assert.Equal(t, 3, h.followUps.Pending("r-1"))
}

func TestFireSendsEmailAndVoice(t *testing.T) {
	user := entity.NewUser("user-1", "runner@example.com")
	user.EmailNotifications = true
	user.VoiceNotifications = true
	h := newDispatcherHarness(t, user)
	r := testReminder("r-1", testNow)
	r.EmailNotification = true
	r.VoiceNotification = true
	r.VoiceCharacter = constant.VoiceDrillSergeant
	h.reminders.put(r)

	require.NoError(t, h.svc.Fire(context.Background(), r))

	require.Equal(t, 1, h.mail.count())
	assert.Equal(t, "runner@example.com", h.mail.sent[0].To)
	assert.Equal(t, "Reminder: Go for a run", h.mail.sent[0].Subject)

	voice := h.hub.ofType(dto.EventVoiceNotification)
	require.Len(t, voice, 1)
	vp := voice[0].Payload.(dto.VoicePayload)
	assert.Equal(t, r.VoiceCharacter, vp.VoiceCharacter)
	assert.NotEmpty(t, vp.Text)
	assert.ElementsMatch(t, []string{channelBrowser, channelVoice, channelEmail}, h.publisher.events[0].Channels)
}

func TestFireWithMissingUserIsSilent(t *testing.T) {
	h := newDispatcherHarness(t)
	r := testReminder("r-1", testNow)
	h.reminders.put(r)

	require.NoError(t, h.svc.Fire(context.Background(), r))
	assert.Empty(t, h.hub.events)
	assert.Nil(t, h.reminders.get("r-1").LastFiredAt)
	assert.Zero(t, h.followUps.Pending("r-1"))
}

func TestFirePremiumFallsBackWhenAIFails(t *testing.T) {
	user := entity.NewUser("user-1", "")
	user.IsWhitelisted = true
	h := newDispatcherHarness(t, user)
	h.ai.fail = true
	r := testReminder("r-1", testNow)
	h.reminders.put(r)

	require.NoError(t, h.svc.Fire(context.Background(), r))
	assert.Equal(t, 1, h.ai.calls)

	notifications := h.hub.ofType(dto.EventNotification)
	require.Len(t, notifications, 1)
	assert.NotEmpty(t, notifications[0].Payload.(dto.NotificationPayload).CurrentResponse)
}

func TestFirePremiumUsesAI(t *testing.T) {
	user := entity.NewUser("user-1", "")
	user.IsWhitelisted = true
	h := newDispatcherHarness(t, user)
	h.ai.responses = []string{"Run. Now.", "  ", "Shoes on, excuses off."}
	r := testReminder("r-1", testNow)
	h.reminders.put(r)

	require.NoError(t, h.svc.Fire(context.Background(), r))

	payload := h.hub.ofType(dto.EventNotification)[0].Payload.(dto.NotificationPayload)
	assert.Equal(t, "Run. Now.", payload.CurrentResponse)
	assert.Equal(t, []string{"Run. Now.", "Shoes on, excuses off."}, payload.Responses)
}

func TestFireFreeUserNeverCallsAI(t *testing.T) {
	h := newDispatcherHarness(t, entity.NewUser("user-1", ""))
	r := testReminder("r-1", testNow)
	h.reminders.put(r)

	require.NoError(t, h.svc.Fire(context.Background(), r))
	assert.Zero(t, h.ai.calls)
	assert.Len(t, h.hub.ofType(dto.EventNotification), 1)
}
