package pms

import (
	"context"
	"net/http"

	"premierlodge/models"
	"premierlodge/services/apiclient"
)

func (c *Client) ListLaundryOrders(ctx context.Context) (models.Envelope[[]models.LaundryOrder], error) {
	return apiclient.Do[[]models.LaundryOrder](ctx, c.api, http.MethodGet, "/laundry", nil, nil)
}

func (c *Client) CreateLaundryOrder(ctx context.Context, order models.LaundryOrder) (models.Envelope[models.LaundryOrder], error) {
	return apiclient.Do[models.LaundryOrder](ctx, c.api, http.MethodPost, "/laundry", order, nil)
}

func (c *Client) UpdateLaundryOrder(ctx context.Context, id string, order models.LaundryOrder) (models.Envelope[models.LaundryOrder], error) {
	return apiclient.Do[models.LaundryOrder](ctx, c.api, http.MethodPut, "/laundry/"+id, order, nil)
}

func (c *Client) DeleteLaundryOrder(ctx context.Context, id string) (models.Envelope[Empty], error) {
	return apiclient.Do[Empty](ctx, c.api, http.MethodDelete, "/laundry/"+id, nil, nil)
}
