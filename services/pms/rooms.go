package pms

import (
	"context"
	"net/http"

	"premierlodge/models"
	"premierlodge/services/apiclient"
)

func (c *Client) ListRooms(ctx context.Context) (models.Envelope[[]models.Room], error) {
	return apiclient.Do[[]models.Room](ctx, c.api, http.MethodGet, "/rooms", nil, nil)
}

func (c *Client) GetRoom(ctx context.Context, id string) (models.Envelope[models.Room], error) {
	return apiclient.Do[models.Room](ctx, c.api, http.MethodGet, "/rooms/"+id, nil, nil)
}

func (c *Client) CreateRoom(ctx context.Context, room models.Room) (models.Envelope[models.Room], error) {
	return apiclient.Do[models.Room](ctx, c.api, http.MethodPost, "/rooms", room, nil)
}

func (c *Client) UpdateRoom(ctx context.Context, id string, room models.Room) (models.Envelope[models.Room], error) {
	return apiclient.Do[models.Room](ctx, c.api, http.MethodPut, "/rooms/"+id, room, nil)
}

func (c *Client) DeleteRoom(ctx context.Context, id string) (models.Envelope[Empty], error) {
	return apiclient.Do[Empty](ctx, c.api, http.MethodDelete, "/rooms/"+id, nil, nil)
}
