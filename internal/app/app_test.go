package app

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/akyairhashvil/meditimer/internal/audio"
	"github.com/akyairhashvil/meditimer/internal/config"
	"github.com/akyairhashvil/meditimer/internal/database"
	"github.com/akyairhashvil/meditimer/internal/mocks"
	"github.com/akyairhashvil/meditimer/internal/models"
	"github.com/akyairhashvil/meditimer/internal/session"
	"github.com/golang/mock/gomock"
)

var morning = time.Date(2026, 10, 19, 7, 0, 0, 0, time.UTC)

func testConfig(sound string) config.Config {
	cfg := config.Default()
	cfg.Reminder.Timezone = "UTC"
	cfg.Audio.DefaultSound = sound
	cfg.Session.DefaultMinutes = 1
	return cfg
}

func setupStore(t *testing.T) *database.Database {
	t.Helper()
	db, err := database.Open(context.Background(), filepath.Join(t.TempDir(), "app.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

type recorder struct {
	notices []models.Notice
}

func (r *recorder) presenter(ctrl *gomock.Controller) *mocks.MockPresenter {
	p := mocks.NewMockPresenter(ctrl)
	p.EXPECT().Notify(gomock.Any()).Do(func(n models.Notice) {
		r.notices = append(r.notices, n)
	}).AnyTimes()
	return p
}

func (r *recorder) kinds() []models.NoticeKind {
	out := make([]models.NoticeKind, 0, len(r.notices))
	for _, n := range r.notices {
		out = append(out, n.Kind)
	}
	return out
}

func runToCompletion(t *testing.T, ctx context.Context, a *App, now time.Time) {
	t.Helper()
	for i := 0; i < 60; i++ {
		res := a.Tick(ctx, now)
		if res.Completed {
			if i != 59 {
				t.Fatalf("completed early at tick %d", i)
			}
			return
		}
	}
	t.Fatalf("session did not complete")
}

func TestCompletionRecordsStatsAndAchievements(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()
	db := setupStore(t)
	rec := &recorder{}
	a := New(testConfig("silence"), db, mocks.NewMockPlayer(ctrl), nil, rec.presenter(ctrl))
	a.WithClock(func() time.Time { return morning })
	if err := a.Init(ctx); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	if !a.Start(ctx) {
		t.Fatalf("expected Start to begin a session")
	}
	runToCompletion(t, ctx, a, morning)

	st := a.Status()
	if st.Session.State != session.Idle {
		t.Fatalf("expected idle after completion, got %v", st.Session.State)
	}
	if st.Stats.TotalMinutes != 1 || st.Stats.CompletedSessions != 1 || st.Stats.Streak != 1 || st.Stats.MorningMeditations != 1 {
		t.Fatalf("unexpected stats %+v", st.Stats)
	}
	if !st.Achievements.Unlocked(models.AchievementFirstSession) {
		t.Fatalf("expected first session achievement")
	}
	kinds := rec.kinds()
	if len(kinds) != 2 || kinds[0] != models.NoticeCompleted || kinds[1] != models.NoticeAchievement {
		t.Fatalf("unexpected notices %v", kinds)
	}

	stored, err := db.LoadStats(ctx)
	if err != nil || stored.TotalMinutes != 1 || !stored.HasDay("2026-10-19") {
		t.Fatalf("expected persisted stats, got %+v err=%v", stored, err)
	}

	// A second session the same day unlocks nothing new.
	a.Start(ctx)
	runToCompletion(t, ctx, a, morning.Add(time.Hour))
	if got := rec.kinds(); len(got) != 3 || got[2] != models.NoticeCompleted {
		t.Fatalf("unexpected notices after second session %v", got)
	}
	if st := a.Status(); st.Stats.Streak != 1 || st.Stats.TotalMinutes != 2 {
		t.Fatalf("unexpected stats after second session %+v", st.Stats)
	}
}

func TestDoubleStartIsIgnored(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()
	a := New(testConfig("silence"), setupStore(t), mocks.NewMockPlayer(ctrl), nil, mocks.NewMockPresenter(ctrl))

	if !a.Start(ctx) {
		t.Fatalf("expected first Start to succeed")
	}
	a.Tick(ctx, morning)
	id := a.Status().Session.ID
	if a.Start(ctx) {
		t.Fatalf("expected second Start to be ignored")
	}
	st := a.Status().Session
	if st.ID != id || st.Remaining != 59 {
		t.Fatalf("second Start changed the session: %+v", st)
	}
}

func TestAudioFailureKeepsSessionRunning(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()
	loop := mocks.NewMockPlayer(ctrl)
	rec := &recorder{}
	a := New(testConfig("rain"), setupStore(t), loop, nil, rec.presenter(ctrl))

	loop.EXPECT().Play(ctx, "rain.mp3", true, config.DefaultVolume).Return(&audio.PlaybackError{Asset: "rain.mp3", Err: errors.New("no device")})
	if !a.Start(ctx) {
		t.Fatalf("expected session to start despite audio failure")
	}
	st := a.Status()
	if st.Session.State != session.Running || st.Playing {
		t.Fatalf("expected running session without audio, got %+v", st)
	}
	if kinds := rec.kinds(); len(kinds) != 1 || kinds[0] != models.NoticeError {
		t.Fatalf("expected one error notice, got %v", kinds)
	}
	if res := a.Tick(ctx, morning); res.Remaining != 59 {
		t.Fatalf("expected countdown to continue, got %d", res.Remaining)
	}
}

func TestPauseResumeControlsAudio(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()
	loop := mocks.NewMockPlayer(ctrl)
	a := New(testConfig("forest"), setupStore(t), loop, nil, mocks.NewMockPresenter(ctrl))

	gomock.InOrder(
		loop.EXPECT().Play(ctx, "forest.mp3", true, config.DefaultVolume).Return(nil),
		loop.EXPECT().Stop().Return(nil),
		loop.EXPECT().Play(ctx, "forest.mp3", true, config.DefaultVolume).Return(nil),
		loop.EXPECT().Stop().Return(nil),
	)
	a.Start(ctx)
	a.Tick(ctx, morning)
	if !a.Pause() {
		t.Fatalf("expected Pause to succeed")
	}
	if res := a.Tick(ctx, morning); res.Remaining != 59 {
		t.Fatalf("tick while paused changed remaining to %d", res.Remaining)
	}
	if !a.Resume(ctx) {
		t.Fatalf("expected Resume to succeed")
	}
	if !a.Stop() {
		t.Fatalf("expected Stop to succeed")
	}
	if a.Stop() {
		t.Fatalf("expected second Stop to be a no-op")
	}
}

func TestStopDoesNotRecord(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()
	a := New(testConfig("silence"), setupStore(t), mocks.NewMockPlayer(ctrl), nil, mocks.NewMockPresenter(ctrl))

	a.Start(ctx)
	for i := 0; i < 30; i++ {
		a.Tick(ctx, morning)
	}
	a.Stop()
	st := a.Status()
	if st.Stats.CompletedSessions != 0 || st.Session.Remaining != 0 || st.Session.Fraction != 0 {
		t.Fatalf("unexpected state after stop %+v", st)
	}
	if res := a.Tick(ctx, morning); res.Completed || res.Remaining != 0 {
		t.Fatalf("tick after stop should be a no-op, got %+v", res)
	}
}

func TestSelectDurationIgnoredWhileActive(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()
	a := New(testConfig("silence"), setupStore(t), mocks.NewMockPlayer(ctrl), nil, mocks.NewMockPresenter(ctrl))

	if a.Status().Touched {
		t.Fatalf("expected untouched selection at startup")
	}
	if !a.SelectDuration(90) || a.Status().Minutes != config.MaxMinutes {
		t.Fatalf("expected selection clamped to %d", config.MaxMinutes)
	}
	if !a.SelectDuration(-3) || a.Status().Minutes != config.MinMinutes {
		t.Fatalf("expected selection clamped to %d", config.MinMinutes)
	}
	a.Start(ctx)
	if a.SelectDuration(10) {
		t.Fatalf("expected selection to be ignored during a session")
	}
}

func TestInitRecoversCorruptStats(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()
	store := mocks.NewMockStatsStore(ctrl)

	store.EXPECT().LoadStats(ctx).Return(models.DefaultStats(), &database.ParseError{Key: config.KeyStats, Err: errors.New("bad json")})
	store.EXPECT().SaveStats(ctx, gomock.Any()).Return(nil)
	store.EXPECT().LoadAchievements(ctx).Return(models.Achievements{models.AchievementFirstSession: true}, nil)
	store.EXPECT().LoadReminder(ctx).Return(models.DefaultReminder(), nil)

	a := New(testConfig("silence"), store, mocks.NewMockPlayer(ctrl), nil, mocks.NewMockPresenter(ctrl))
	if err := a.Init(ctx); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	st := a.Status()
	if st.Stats.TotalMinutes != 0 || !st.Achievements.Unlocked(models.AchievementFirstSession) {
		t.Fatalf("unexpected state after recovery %+v", st)
	}
}

func TestInitPropagatesStoreFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()
	store := mocks.NewMockStatsStore(ctrl)
	boom := errors.New("disk gone")
	store.EXPECT().LoadStats(ctx).Return(models.DefaultStats(), boom)

	a := New(testConfig("silence"), store, mocks.NewMockPlayer(ctrl), nil, mocks.NewMockPresenter(ctrl))
	if err := a.Init(ctx); !errors.Is(err, boom) {
		t.Fatalf("expected store error, got %v", err)
	}
}

func TestReminderFiresOncePerDay(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()
	rec := &recorder{}
	a := New(testConfig("silence"), setupStore(t), mocks.NewMockPlayer(ctrl), nil, rec.presenter(ctrl))

	if err := a.SetReminder(ctx, models.Reminder{Hour: 25}); err == nil {
		t.Fatalf("expected invalid reminder to be rejected")
	}
	if err := a.SetReminder(ctx, models.Reminder{Hour: 8, Minute: 30, Enabled: true}); err != nil {
		t.Fatalf("SetReminder failed: %v", err)
	}
	day := time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)
	if a.CheckReminder(day.Add(8 * time.Hour)) {
		t.Fatalf("reminder fired early")
	}
	if !a.CheckReminder(day.Add(8*time.Hour + 30*time.Minute)) {
		t.Fatalf("expected reminder at 08:30")
	}
	if a.CheckReminder(day.Add(20 * time.Hour)) {
		t.Fatalf("reminder fired twice in one day")
	}
	if !a.CheckReminder(day.Add(24*time.Hour + 9*time.Hour)) {
		t.Fatalf("expected reminder the next day")
	}
	if kinds := rec.kinds(); len(kinds) != 2 || kinds[0] != models.NoticeReminder {
		t.Fatalf("unexpected notices %v", kinds)
	}
}

func TestBreathingCuesDuringSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()
	cues := mocks.NewMockPlayer(ctrl)
	a := New(testConfig("silence"), setupStore(t), mocks.NewMockPlayer(ctrl), cues, mocks.NewMockPresenter(ctrl))

	if err := a.StartBreathing(ctx, "nope"); err == nil {
		t.Fatalf("expected unknown technique to be rejected")
	}
	if err := a.StartBreathing(ctx, "4-7-8"); err != nil {
		t.Fatalf("StartBreathing failed: %v", err)
	}

	cues.EXPECT().Play(ctx, audio.Inhale.Asset(), false, config.DefaultVolume).Return(nil)
	a.Start(ctx)
	if got := a.Status().Prompt; got != "Inhale (4)" {
		t.Fatalf("expected inhale prompt, got %q", got)
	}

	cues.EXPECT().Play(ctx, audio.Hold.Asset(), false, config.DefaultVolume).Return(nil)
	for i := 0; i < 5; i++ {
		a.Tick(ctx, morning)
	}
	if got := a.Status().Prompt; got != "Hold (7)" {
		t.Fatalf("expected hold prompt, got %q", got)
	}

	cues.EXPECT().Stop().Return(nil)
	a.StopBreathing()
	if a.Status().Prompt != "" {
		t.Fatalf("expected no prompt after stopping breathing")
	}
	cues.EXPECT().Stop().Return(nil)
	a.Stop()
}

func TestOrientationControlsAngle(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()
	a := New(testConfig("silence"), setupStore(t), mocks.NewMockPlayer(ctrl), nil, mocks.NewMockPresenter(ctrl))

	a.Start(ctx)
	for i := 0; i < 15; i++ {
		a.Tick(ctx, morning)
	}
	if got := a.Status().Angle; got != 90 {
		t.Fatalf("expected fill angle 90, got %v", got)
	}
	a.SetOrientation(session.Drain)
	if got := a.Status().Angle; got != 270 {
		t.Fatalf("expected drain angle 270, got %v", got)
	}
	if a.ToggleOrientation() != session.Fill {
		t.Fatalf("expected toggle back to fill")
	}
}

func TestSoundChosenMidSessionStartsPlaying(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()
	loop := mocks.NewMockPlayer(ctrl)
	a := New(testConfig("silence"), setupStore(t), loop, nil, mocks.NewMockPresenter(ctrl))

	a.Start(ctx)
	loop.EXPECT().Play(ctx, "rain.mp3", true, config.DefaultVolume).Return(nil)
	if err := a.SelectSound(ctx, "rain"); err != nil {
		t.Fatalf("SelectSound failed: %v", err)
	}
	if st := a.Status(); st.Sound != audio.Rain || !st.Playing {
		t.Fatalf("expected rain playing, got %+v", st)
	}
	loop.EXPECT().Stop().Return(nil)
	a.Stop()
}

func TestSoundCycleThroughSilenceResumesPlaying(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()
	loop := mocks.NewMockPlayer(ctrl)
	a := New(testConfig("ocean"), setupStore(t), loop, nil, mocks.NewMockPresenter(ctrl))

	gomock.InOrder(
		loop.EXPECT().Play(ctx, "ocean.mp3", true, config.DefaultVolume).Return(nil),
		loop.EXPECT().Stop().Return(nil),
		loop.EXPECT().Play(ctx, "rain.mp3", true, config.DefaultVolume).Return(nil),
	)
	a.Start(ctx)
	if err := a.SelectSound(ctx, "silence"); err != nil {
		t.Fatalf("SelectSound failed: %v", err)
	}
	if a.Status().Playing {
		t.Fatalf("expected no loop on silence")
	}
	if err := a.SelectSound(ctx, "rain"); err != nil {
		t.Fatalf("SelectSound failed: %v", err)
	}
	if st := a.Status(); st.Sound != audio.Rain || !st.Playing {
		t.Fatalf("expected rain playing, got %+v", st)
	}
}

func TestSoundChosenWhileIdleWaitsForStart(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()
	loop := mocks.NewMockPlayer(ctrl)
	a := New(testConfig("silence"), setupStore(t), loop, nil, mocks.NewMockPresenter(ctrl))

	if err := a.SelectSound(ctx, "forest"); err != nil {
		t.Fatalf("SelectSound failed: %v", err)
	}
	if a.Status().Playing {
		t.Fatalf("expected nothing playing before Start")
	}
}

func TestStreakLapsesAfterMidnight(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()
	db := setupStore(t)
	a := New(testConfig("silence"), db, mocks.NewMockPlayer(ctrl), nil, mocks.NewMockPresenter(ctrl))
	now := morning
	a.WithClock(func() time.Time { return now })
	if err := a.Init(ctx); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	a.Start(ctx)
	runToCompletion(t, ctx, a, morning)
	if got := a.Status().Stats.Streak; got != 1 {
		t.Fatalf("expected streak 1, got %d", got)
	}

	// a full day without practice: yesterday no longer counts
	now = morning.AddDate(0, 0, 2)
	a.CheckReminder(now)
	if got := a.Status().Stats.Streak; got != 0 {
		t.Fatalf("expected streak to lapse, got %d", got)
	}
	if err := a.Teardown(ctx); err != nil {
		t.Fatalf("Teardown failed: %v", err)
	}
	stored, err := db.LoadStats(ctx)
	if err != nil || stored.Streak != 0 {
		t.Fatalf("expected lapsed streak persisted, got %+v err=%v", stored, err)
	}
}
