// Package pms holds the typed pass-through wrappers for the upstream
// property-management system. Every function is a one-line dispatch to the
// transport client; no business logic lives here.
package pms

import "premierlodge/services/apiclient"

type Client struct {
	api *apiclient.Client
}

func NewClient(api *apiclient.Client) *Client {
	return &Client{api: api}
}

// Empty is the data shape of endpoints that return no payload.
type Empty struct{}
