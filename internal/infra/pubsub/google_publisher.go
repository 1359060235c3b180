package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/antoniopd1/mercado-local-mex/config"
	"github.com/antoniopd1/mercado-local-mex/internal/domain/service"
	"github.com/antoniopd1/mercado-local-mex/internal/errors"
	"github.com/antoniopd1/mercado-local-mex/internal/infra/resilience"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
)

const (
	publisherBreakerName  = "pubsub-claims-sync"
	defaultPublishTimeout = 5 * time.Second
)

// googlePubSubPublisher implements EventPublisher using Google Cloud Pub/Sub.
// Publishes run behind a breaker so an outage fails requests fast instead of
// stalling them on the retry queue.
type googlePubSubPublisher struct {
	client    *pubsub.Client
	publisher *pubsub.Publisher
	breaker   *resilience.Breaker
	logger    *slog.Logger
}

// NewGooglePubSubPublisher creates a new Google Pub/Sub publisher for the claims-sync topic
func NewGooglePubSubPublisher(ctx context.Context, cfg *config.PubSubConfig, logger *slog.Logger) (service.EventPublisher, error) {
	projectID, topicID := cfg.ProjectID, cfg.TopicID

	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	// Check if topic exists using TopicAdminClient
	topicPath := fmt.Sprintf("projects/%s/topics/%s", projectID, topicID)
	_, err = client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{
		Topic: topicPath,
	})
	if err != nil {
		client.Close()

		return nil, errors.Wrapf(err, "failed to get topic %s", topicID)
	}

	publisher := client.Publisher(topicID)
	publisher.EnableMessageOrdering = true

	logger.Info("Google Pub/Sub publisher initialized",
		slog.String("project_id", projectID),
		slog.String("topic_id", topicID),
	)

	timeout := cfg.PublishTimeout
	if timeout <= 0 {
		timeout = defaultPublishTimeout
	}

	return &googlePubSubPublisher{
		client:    client,
		publisher: publisher,
		breaker:   resilience.NewBreaker(publisherBreakerName, cfg.Breaker, timeout, logger, nil),
		logger:    logger,
	}, nil
}

// PublishClaimsSyncEvent publishes a claims resync request to Google Pub/Sub
func (p *googlePubSubPublisher) PublishClaimsSyncEvent(ctx context.Context, event *service.ClaimsSyncEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	// Ordering by user keeps retries for one user in sequence
	msg := &pubsub.Message{
		Data:        data,
		Attributes:  claimsSyncAttributes(event),
		OrderingKey: event.UserID,
	}

	serverID, err := resilience.Do(ctx, p.breaker, func(ctx context.Context) (string, error) {
		return p.publisher.Publish(ctx, msg).Get(ctx)
	})
	if err != nil {
		// A failed ordered publish pauses the key until resumed
		p.publisher.ResumePublish(event.UserID)

		return errors.Wrapf(err, "failed to publish claims sync for user %s", event.UserID)
	}

	p.logger.InfoContext(ctx, "[GooglePubSub] Claims sync event published",
		slog.String("user_id", event.UserID),
		slog.String("server_id", serverID),
	)

	return nil
}

// Close releases Pub/Sub client resources
func (p *googlePubSubPublisher) Close() error {
	if p.publisher != nil {
		p.publisher.Stop()
	}
	if p.client != nil {
		return errors.WithStack(p.client.Close())
	}

	return nil
}
