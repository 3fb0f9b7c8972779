package pms

import (
	"context"
	"net/http"

	"premierlodge/models"
	"premierlodge/services/apiclient"
)

func (c *Client) ListEventHalls(ctx context.Context) (models.Envelope[[]models.EventHall], error) {
	return apiclient.Do[[]models.EventHall](ctx, c.api, http.MethodGet, "/halls", nil, nil)
}

func (c *Client) CreateEventHall(ctx context.Context, hall models.EventHall) (models.Envelope[models.EventHall], error) {
	return apiclient.Do[models.EventHall](ctx, c.api, http.MethodPost, "/halls", hall, nil)
}

func (c *Client) UpdateEventHall(ctx context.Context, id string, hall models.EventHall) (models.Envelope[models.EventHall], error) {
	return apiclient.Do[models.EventHall](ctx, c.api, http.MethodPut, "/halls/"+id, hall, nil)
}

func (c *Client) DeleteEventHall(ctx context.Context, id string) (models.Envelope[Empty], error) {
	return apiclient.Do[Empty](ctx, c.api, http.MethodDelete, "/halls/"+id, nil, nil)
}
