package messaging

import (
	"context"

	"github.com/artblock/gallery-reconciler/internal/domain"
)

// Publisher defines the interface for publishing gallery messages to the
// message broker
//
//go:generate mockgen -source=publisher.go -destination=../mocks/publisher.go -package=mocks -mock_names=Publisher=MockPublisher
type Publisher interface {
	// PublishGalleryMessage publishes a gallery message to the broker
	PublishGalleryMessage(ctx context.Context, msg *domain.GalleryMessage) error
	// Close closes the connection
	Close()
}
