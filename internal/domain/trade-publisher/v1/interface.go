package tradepublisherv1

import "context"

// TradePublisher defines the interface for publishing executed trades.
//
//go:generate mockgen -source interface.go -destination=mock/interface_mock.go -package=tradepublisherv1_mock
type TradePublisher interface {
	// PublishTrade publishes a trade event to the trade topic.
	PublishTrade(ctx context.Context, event *TradeEvent) error
}
