package booking

import (
	"time"

	"github.com/BruksfildServices01/booking-scheduler/internal/models"
)

// HistoryRecord is a client joined with the date of its schedule slot.
type HistoryRecord struct {
	Client models.Client
	Date   time.Time
}
