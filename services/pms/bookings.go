package pms

import (
	"context"
	"net/http"

	"premierlodge/models"
	"premierlodge/services/apiclient"
)

func (c *Client) ListBookings(ctx context.Context) (models.Envelope[[]models.Booking], error) {
	return apiclient.Do[[]models.Booking](ctx, c.api, http.MethodGet, "/bookings", nil, nil)
}

func (c *Client) CreateBooking(ctx context.Context, payload models.BookingPayload) (models.Envelope[models.Booking], error) {
	return apiclient.Do[models.Booking](ctx, c.api, http.MethodPost, "/bookings", payload, nil)
}

func (c *Client) CreateReservation(ctx context.Context, payload models.BookingPayload) (models.Envelope[models.Booking], error) {
	return apiclient.Do[models.Booking](ctx, c.api, http.MethodPost, "/reservations", payload, nil)
}
