package pms

import (
	"context"
	"net/http"

	"premierlodge/models"
	"premierlodge/services/apiclient"
)

func (c *Client) ListGuests(ctx context.Context) (models.Envelope[[]models.Guest], error) {
	return apiclient.Do[[]models.Guest](ctx, c.api, http.MethodGet, "/guests", nil, nil)
}

func (c *Client) GetGuest(ctx context.Context, id string) (models.Envelope[models.Guest], error) {
	return apiclient.Do[models.Guest](ctx, c.api, http.MethodGet, "/guests/"+id, nil, nil)
}

func (c *Client) UpdateGuestAccommodation(ctx context.Context, id, accommodation string) (models.Envelope[models.Guest], error) {
	return apiclient.Do[models.Guest](ctx, c.api, http.MethodPatch, "/guests/"+id, models.GuestUpdate{Accommodation: accommodation}, nil)
}
