package live

import (
	"context"
	"log/slog"
	"time"

	"github.com/footycomp/tipping-system/services"
)

const (
	MessageRoundUpdated = "ROUND_UPDATED"
	MessageTipsSaved    = "TIPS_SAVED"

	refreshTimeout = 5 * time.Second
)

// Notifier implements services.LiveNotifier: after a committed change it
// recomputes the affected round's standings and broadcasts them to that
// round's room. Broadcast failures are logged, never surfaced to the caller;
// the write already succeeded.
type Notifier struct {
	hub     *Hub
	reports services.ReportService
	logger  *slog.Logger
}

func NewNotifier(hub *Hub, reports services.ReportService, logger *slog.Logger) *Notifier {
	return &Notifier{
		hub:     hub,
		reports: reports,
		logger:  logger,
	}
}

func (n *Notifier) NotifyRoundUpdated(roundID int) {
	n.push(MessageRoundUpdated, roundID)
}

func (n *Notifier) NotifyTipsSaved(roundID int) {
	n.push(MessageTipsSaved, roundID)
}

func (n *Notifier) push(messageType string, roundID int) {
	ctx, cancel := context.WithTimeout(context.Background(), refreshTimeout)
	defer cancel()

	payload, err := n.reports.RoundLeaderboard(ctx, roundID)
	if err != nil {
		n.logger.Error("failed to refresh round standings for broadcast",
			slog.Int("round_id", roundID), slog.Any("error", err))
		payload = nil
	}

	room := RoomForRound(roundID)
	n.hub.BroadcastToRoom(room, Message{
		Type:    messageType,
		RoomID:  room,
		Payload: payload,
	})
}
