package export

import (
	"context"
	"fmt"
	"time"

	"chefpay/internal/catalog"
	"chefpay/internal/logging"
	"chefpay/internal/menu"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Uploader stores an object and returns where it can be fetched from.
type Uploader interface {
	Upload(ctx context.Context, key string, body []byte, contentType string) (string, error)
}

type Published struct {
	Key string `json:"key"`
	URL string `json:"url"`
}

type Publisher struct {
	uploader Uploader
	now      func() time.Time
	logger   zerolog.Logger
}

func NewPublisher(uploader Uploader) *Publisher {
	return &Publisher{
		uploader: uploader,
		now:      time.Now,
		logger:   logging.Component("export"),
	}
}

// Publish renders the assignment and uploads it under a unique key.
func (p *Publisher) Publish(ctx context.Context, a *menu.Assignment, items []catalog.MenuItem) (*Published, error) {
	at := p.now()

	body, err := Render(a, items, at)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("menu-exports/%d/%s/%s", a.TenantID(), uuid.NewString(), Filename(a.TenantID(), at))

	url, err := p.uploader.Upload(ctx, key, body, ContentType)
	if err != nil {
		return nil, err
	}

	p.logger.Info().
		Int("canteen_id", a.TenantID()).
		Str("key", key).
		Int("bytes", len(body)).
		Msg("menu export published")

	return &Published{Key: key, URL: url}, nil
}
