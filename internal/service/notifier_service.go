package service

import (
	"fmt"
	"html"
	"strings"

	"oncall-roster/internal/domain/entity"

	"github.com/sirupsen/logrus"
)

// RosterNotifier emails each physician their committed assignments
// for a period. Send failures are counted, never propagated: a failed
// email must not undo or block a committed roster.
type RosterNotifier interface {
	NotifyPhysicians(period *entity.DutyPeriod, assignments []entity.Assignment, physicians []entity.User) (sent int, failed int)
}

type rosterNotifier struct {
	log    *logrus.Logger
	mailer Mailer
}

func NewRosterNotifier(log *logrus.Logger, mailer Mailer) RosterNotifier {
	return &rosterNotifier{
		log:    log,
		mailer: mailer,
	}
}

func (n *rosterNotifier) NotifyPhysicians(period *entity.DutyPeriod, assignments []entity.Assignment, physicians []entity.User) (int, int) {
	byPhysician := make(map[string][]entity.Assignment)
	for i := range assignments {
		key := assignments[i].PhysicianID.String()
		byPhysician[key] = append(byPhysician[key], assignments[i])
	}

	sent, failed := 0, 0
	for i := range physicians {
		physician := physicians[i]
		own := byPhysician[physician.ID.String()]
		if len(own) == 0 {
			continue
		}

		msg := n.buildMessage(period, &physician, own)
		if err := n.mailer.Send(msg); err != nil {
			n.log.Warnf("Failed to send roster mail to %s: %+v", physician.Email, err)
			failed++
			continue
		}
		sent++
	}

	return sent, failed
}

func (n *rosterNotifier) buildMessage(period *entity.DutyPeriod, physician *entity.User, assignments []entity.Assignment) *Message {
	var text strings.Builder
	var htmlRows strings.Builder

	fmt.Fprintf(&text, "Hello %s,\n\nYour on-call duties for %s:\n\n", physician.FullName, period.Label)
	for i := range assignments {
		slot := assignments[i].Slot
		fmt.Fprintf(&text, "- %s  %s (%s - %s)\n",
			slot.Date.Format("Mon 02 Jan 2006"),
			slot.Kind,
			slot.StartAt.Format("15:04"),
			slot.EndAt.Format("15:04"),
		)
		fmt.Fprintf(&htmlRows, "<tr><td>%s</td><td>%s</td><td>%s - %s</td></tr>",
			html.EscapeString(slot.Date.Format("Mon 02 Jan 2006")),
			html.EscapeString(string(slot.Kind)),
			slot.StartAt.Format("15:04"),
			slot.EndAt.Format("15:04"),
		)
	}
	text.WriteString("\nPlease contact the roster admin for swaps.\n")

	htmlBody := fmt.Sprintf(
		"<p>Hello %s,</p><p>Your on-call duties for <strong>%s</strong>:</p><table border=\"1\" cellpadding=\"4\">%s</table><p>Please contact the roster admin for swaps.</p>",
		html.EscapeString(physician.FullName),
		html.EscapeString(period.Label),
		htmlRows.String(),
	)

	return &Message{
		To:      physician.Email,
		Subject: fmt.Sprintf("On-call roster %s", period.Label),
		HTML:    htmlBody,
		Text:    text.String(),
	}
}
