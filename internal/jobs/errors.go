package jobs

import "fmt"

// NotFoundError indicates the requested job id does not exist.
type NotFoundError struct {
	JobID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("job not found: %s", e.JobID)
}
