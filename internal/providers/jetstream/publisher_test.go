package jetstream

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	natsjs "github.com/nats-io/nats.go/jetstream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artblock/gallery-reconciler/internal/adapter"
	"github.com/artblock/gallery-reconciler/internal/domain"
	"github.com/artblock/gallery-reconciler/internal/mocks"
)

func newTestPublisher(t *testing.T) (*mocks.MockJetStream, *mocks.MockNatsConn, *publisher) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	js := mocks.NewMockJetStream(ctrl)
	nc := mocks.NewMockNatsConn(ctrl)

	return js, nc, &publisher{
		nc:         nc,
		js:         js,
		streamName: "GALLERY_EVENTS",
		json:       adapter.NewJSON(),
	}
}

func TestPublishGalleryMessage(t *testing.T) {
	js, _, pub := newTestPublisher(t)
	ctx := context.Background()

	msg := &domain.GalleryMessage{
		Kind:           domain.MessageRevenueApplied,
		GalleryAddress: "0x1111111111111111111111111111111111111111",
		Amount:         "2500",
		TxHash:         "0xabc",
		Timestamp:      time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC),
	}

	js.EXPECT().
		Publish(ctx, "galleries.revenue_applied", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, data []byte, _ ...natsjs.PublishOpt) (*natsjs.PubAck, error) {
			var decoded domain.GalleryMessage
			require.NoError(t, json.Unmarshal(data, &decoded))
			assert.Equal(t, msg.GalleryAddress, decoded.GalleryAddress)
			assert.Equal(t, msg.Amount, decoded.Amount)
			return &natsjs.PubAck{Stream: "GALLERY_EVENTS"}, nil
		})

	require.NoError(t, pub.PublishGalleryMessage(ctx, msg))
}

func TestPublishGalleryMessageSubjectPerKind(t *testing.T) {
	js, _, pub := newTestPublisher(t)
	ctx := context.Background()

	kinds := map[domain.GalleryMessageKind]string{
		domain.MessageGalleryCreated:  "galleries.created",
		domain.MessageStatusChanged:   "galleries.status_changed",
		domain.MessageClaimSubmitted:  "galleries.claim_submitted",
		domain.MessageAnomalyDetected: "galleries.anomaly_detected",
	}

	for kind, subject := range kinds {
		js.EXPECT().
			Publish(ctx, subject, gomock.Any()).
			Return(&natsjs.PubAck{}, nil)

		err := pub.PublishGalleryMessage(ctx, &domain.GalleryMessage{Kind: kind})
		require.NoError(t, err, "kind %s", kind)
	}
}

func TestPublishGalleryMessagePublishError(t *testing.T) {
	js, _, pub := newTestPublisher(t)
	ctx := context.Background()

	js.EXPECT().
		Publish(ctx, gomock.Any(), gomock.Any()).
		Return(nil, errors.New("stream unavailable"))

	err := pub.PublishGalleryMessage(ctx, &domain.GalleryMessage{Kind: domain.MessageGalleryCreated})
	assert.ErrorContains(t, err, "failed to publish message")
}

func TestClose(t *testing.T) {
	_, nc, pub := newTestPublisher(t)

	nc.EXPECT().Close()
	pub.Close()
}
