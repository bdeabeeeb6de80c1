package queue_publisher

import (
	"context"

	q "github.com/iliyamo/box-office-league/internal/queue"
)

// EventPublisher adapts the package-level publish functions to the
// engine.Publisher interface so the engine can take its event sink as an
// injected dependency (and tests can substitute a fake).
type EventPublisher struct{}

func (EventPublisher) PublishPurchaseCompleted(ctx context.Context, event q.PurchaseCompletedEvent) error {
	return PublishPurchaseCompleted(ctx, event)
}

func (EventPublisher) PublishPartialTransaction(ctx context.Context, alert q.PartialTransactionAlert) error {
	return PublishPartialTransaction(ctx, alert)
}
