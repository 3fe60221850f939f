package health

import "context"

// DBPinger checks store availability.
type DBPinger interface {
	Ping(ctx context.Context) error
}

// DatasetChecker verifies the posting dataset is readable.
type DatasetChecker interface {
	HealthCheck(ctx context.Context) error
}
