package jobs

import (
	"context"
	"time"

	"swipestay-backend/internal/logger"
)

// CompleteFinishedStays marks confirmed reservations as completed once the
// checkout day has passed. Admins can still complete individual stays
// earlier through the status override.
func (jr *JobRunner) CompleteFinishedStays() {
	jr.runWithRecovery("CompleteFinishedStays", func() {
		ctx := context.Background()

		query := `
			UPDATE reservations
			SET status = 'completed',
			    updated_at = now()
			WHERE status = 'confirmed'
			  AND end_date < $1
			RETURNING id, reservation_number, property_id, end_date
		`

		rows, err := jr.db.QueryContext(ctx, query, time.Now().Format("2006-01-02"))
		if err != nil {
			logger.Error("Failed to complete finished stays", "error", err)
			return
		}
		defer rows.Close()

		count := 0
		for rows.Next() {
			var (
				id         int32
				reference  string
				propertyID int32
				endDate    time.Time
			)
			if err := rows.Scan(&id, &reference, &propertyID, &endDate); err != nil {
				logger.Error("Failed to scan completed reservation", "error", err)
				continue
			}
			count++
			logger.Debug("Marked reservation as completed",
				"reservation_id", id,
				"reference", reference,
				"property_id", propertyID,
				"end_date", endDate.Format("2006-01-02"))
		}

		if err := rows.Err(); err != nil {
			logger.Error("Error iterating completed reservations", "error", err)
			return
		}

		logger.Info("Marked reservations as completed", "count", count)
	})
}
