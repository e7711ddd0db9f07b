package events

import (
	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill-redisstream/pkg/redisstream"
	"github.com/ThreeDotsLabs/watermill/components/cqrs"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/redis/go-redis/v9"
)

var marshaler = cqrs.JSONMarshaler{
	GenerateName: cqrs.StructName,
}

// SubscriberConstructor builds a subscriber for the given consumer group.
// Injecting it keeps the processor transport-agnostic: the in-process
// gochannel Pub/Sub and Redis Streams both fit.
type SubscriberConstructor func(consumerGroup string) (message.Subscriber, error)

func NewEventProcessorConfig(
	subscriberConstructor SubscriberConstructor,
	logger watermill.LoggerAdapter,
) cqrs.EventGroupProcessorConfig {
	return cqrs.EventGroupProcessorConfig{
		GenerateSubscribeTopic: func(params cqrs.EventGroupProcessorGenerateSubscribeTopicParams) (string, error) {
			return "events", nil
		},
		SubscriberConstructor: func(params cqrs.EventGroupProcessorSubscriberConstructorParams) (message.Subscriber, error) {
			return subscriberConstructor("svc-bookings." + params.EventGroupName)
		},
		Marshaler: marshaler,
		Logger:    logger,
	}
}

func NewRedisSubscriberConstructor(
	rdb *redis.Client,
	logger watermill.LoggerAdapter,
) SubscriberConstructor {
	return func(consumerGroup string) (message.Subscriber, error) {
		return redisstream.NewSubscriber(redisstream.SubscriberConfig{
			Client:        rdb,
			ConsumerGroup: consumerGroup,
		}, logger)
	}
}
