package booking

import (
	"context"
	"fmt"

	domain "github.com/BruksfildServices01/booking-scheduler/internal/domain/booking"
)

type History struct {
	repo domain.Store
}

func NewHistory(repo domain.Store) *History {
	return &History{repo: repo}
}

// Execute lists the matching clients and resolves each one's schedule date.
// A client pointing at a deleted schedule fails the whole call with
// NotFoundError instead of being skipped.
func (uc *History) Execute(ctx context.Context, filter domain.ClientFilter) ([]domain.HistoryRecord, error) {
	clients, err := uc.repo.ListClients(ctx, filter)
	if err != nil {
		return nil, err
	}

	out := make([]domain.HistoryRecord, 0, len(clients))
	for _, c := range clients {
		s, err := uc.repo.GetSchedule(ctx, c.ScheduleID)
		if err != nil {
			return nil, fmt.Errorf("history for client %d: %w", c.ID, err)
		}

		out = append(out, domain.HistoryRecord{
			Client: c,
			Date:   s.Date,
		})
	}

	return out, nil
}
