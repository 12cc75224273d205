package jobs

import (
	"context"

	"surfjobs-backend/internal/domain"
)

// ApplicationReport counts stored applications per status, logs the totals and
// exports them to the status gauge.
func (jr *JobRunner) ApplicationReport() {
	jr.runWithRecovery("ApplicationReport", jr.applicationReport)
}

func (jr *JobRunner) applicationReport(ctx context.Context) error {
	counts, err := jr.applications.CountByStatus(ctx)
	if err != nil {
		return err
	}

	var total int64
	args := make([]any, 0, 2*len(domain.ApplicationStatuses)+2)
	for _, status := range domain.ApplicationStatuses {
		n := counts[status]
		total += n
		args = append(args, string(status), n)
		if jr.gauge != nil {
			jr.gauge.SetApplicationsByStatus(string(status), n)
		}
	}
	args = append(args, "total", total)
	jr.log.Info("Application report", args...)
	return nil
}
