package validation

import (
	"errors"
	"fmt"

	"trafficapi/internal/domain"
)

// Range errors wrap domain.ErrInvalidRange so callers can treat them as one kind.
var (
	ErrInvalidDateFormat = fmt.Errorf("%w: invalid date format", domain.ErrInvalidRange)
	ErrStartAfterEnd     = fmt.Errorf("%w: start_date is after end_date", domain.ErrInvalidRange)
	ErrRangeTooLarge     = fmt.Errorf("%w: date range too large", domain.ErrInvalidRange)
	ErrTooManyMetrics    = errors.New("too many metrics requested")
)
