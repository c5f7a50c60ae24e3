package service

import (
	"errors"
	"io"
	"testing"
	"time"

	"oncall-roster/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMailer struct {
	sent    []*Message
	failFor map[string]bool
}

func (m *fakeMailer) Send(msg *Message) error {
	if m.failFor[msg.To] {
		return errors.New("smtp unavailable")
	}
	m.sent = append(m.sent, msg)
	return nil
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func testPeriod() *entity.DutyPeriod {
	return &entity.DutyPeriod{
		ID:        uuid.New(),
		Label:     "2026-Q2",
		StartDate: time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, time.June, 30, 0, 0, 0, 0, time.UTC),
	}
}

func testAssignment(physicianID uuid.UUID, date time.Time, kind entity.SlotKind) entity.Assignment {
	return entity.Assignment{
		PhysicianID: physicianID,
		SlotID:      uuid.New(),
		Score:       entity.DefaultAssignmentScore,
		Slot: entity.Slot{
			ID:      uuid.New(),
			Date:    date,
			Kind:    kind,
			StartAt: date.Add(20 * time.Hour),
			EndAt:   date.Add(24 * time.Hour),
		},
	}
}

func TestNotifyPhysicians_SendsOnePerPhysician(t *testing.T) {
	alice := entity.User{ID: uuid.New(), Email: "alice@clinic.test", FullName: "Alice"}
	bob := entity.User{ID: uuid.New(), Email: "bob@clinic.test", FullName: "Bob"}

	day := time.Date(2026, time.April, 6, 0, 0, 0, 0, time.UTC)
	assignments := []entity.Assignment{
		testAssignment(alice.ID, day, entity.KindWeekdayNight),
		testAssignment(alice.ID, day.AddDate(0, 0, 1), entity.KindWeekdayNight),
		testAssignment(bob.ID, day.AddDate(0, 0, 2), entity.KindWeekdayNight),
	}

	mailer := &fakeMailer{}
	notifier := NewRosterNotifier(quietLogger(), mailer)

	sent, failed := notifier.NotifyPhysicians(testPeriod(), assignments, []entity.User{alice, bob})

	assert.Equal(t, 2, sent)
	assert.Equal(t, 0, failed)
	require.Len(t, mailer.sent, 2)
	assert.Equal(t, "alice@clinic.test", mailer.sent[0].To)
	assert.Contains(t, mailer.sent[0].Text, "Alice")
	assert.Contains(t, mailer.sent[0].Subject, "2026-Q2")
}

func TestNotifyPhysicians_CountsFailuresWithoutAborting(t *testing.T) {
	alice := entity.User{ID: uuid.New(), Email: "alice@clinic.test", FullName: "Alice"}
	bob := entity.User{ID: uuid.New(), Email: "bob@clinic.test", FullName: "Bob"}

	day := time.Date(2026, time.April, 6, 0, 0, 0, 0, time.UTC)
	assignments := []entity.Assignment{
		testAssignment(alice.ID, day, entity.KindWeekdayNight),
		testAssignment(bob.ID, day.AddDate(0, 0, 1), entity.KindWeekdayNight),
	}

	mailer := &fakeMailer{failFor: map[string]bool{"alice@clinic.test": true}}
	notifier := NewRosterNotifier(quietLogger(), mailer)

	sent, failed := notifier.NotifyPhysicians(testPeriod(), assignments, []entity.User{alice, bob})

	assert.Equal(t, 1, sent)
	assert.Equal(t, 1, failed)
	require.Len(t, mailer.sent, 1)
	assert.Equal(t, "bob@clinic.test", mailer.sent[0].To)
}

func TestNotifyPhysicians_SkipsPhysicianWithoutAssignments(t *testing.T) {
	alice := entity.User{ID: uuid.New(), Email: "alice@clinic.test", FullName: "Alice"}
	idle := entity.User{ID: uuid.New(), Email: "idle@clinic.test", FullName: "Idle"}

	day := time.Date(2026, time.April, 6, 0, 0, 0, 0, time.UTC)
	assignments := []entity.Assignment{
		testAssignment(alice.ID, day, entity.KindWeekdayNight),
	}

	mailer := &fakeMailer{}
	notifier := NewRosterNotifier(quietLogger(), mailer)

	sent, failed := notifier.NotifyPhysicians(testPeriod(), assignments, []entity.User{alice, idle})

	assert.Equal(t, 1, sent)
	assert.Equal(t, 0, failed)
}
