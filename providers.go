package repox

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// Providers lists the providers under an aggregator with their metadata.
func (c *Client) Providers(ctx context.Context, aggregatorID string) ([]Provider, error) {
	var list struct {
		Providers []Provider `xml:"provider"`
	}
	q := url.Values{"aggregatorId": {aggregatorID}}
	if err := c.getXML(ctx, "/providers?"+q.Encode(), &list); err != nil {
		return nil, err
	}
	return list.Providers, nil
}

// ProviderIDs lists only the identifiers of the providers under an
// aggregator.
func (c *Client) ProviderIDs(ctx context.Context, aggregatorID string) ([]string, error) {
	providers, err := c.Providers(ctx, aggregatorID)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(providers))
	for _, p := range providers {
		ids = append(ids, p.ID)
	}
	return ids, nil
}

// Provider fetches a single provider by id.
func (c *Client) Provider(ctx context.Context, id string) (*Provider, error) {
	var p Provider
	if err := c.getXML(ctx, "/providers/"+url.PathEscape(id), &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// CreateProvider creates a provider under the given aggregator.
func (c *Client) CreateProvider(ctx context.Context, aggregatorID string, p Provider) error {
	q := url.Values{"aggregatorId": {aggregatorID}}
	return c.sendXML(ctx, http.MethodPost, "/providers?"+q.Encode(), &p)
}

// UpdateProvider updates the provider with the given id. Empty fields of
// p keep the values currently stored on the instance.
func (c *Client) UpdateProvider(ctx context.Context, id string, p Provider) error {
	old, err := c.Provider(ctx, id)
	if err != nil {
		return fmt.Errorf("fetch current provider: %w", err)
	}
	if p.Name == "" {
		p.Name = old.Name
	}
	if p.Country == "" {
		p.Country = old.Country
	}
	if p.CountryCode == "" {
		p.CountryCode = old.CountryCode
	}
	if p.Description == "" {
		p.Description = old.Description
	}
	if p.NameCode == "" {
		p.NameCode = old.NameCode
	}
	if p.Homepage == "" {
		p.Homepage = old.Homepage
	}
	if p.ProviderType == "" {
		p.ProviderType = old.ProviderType
	}
	if p.Email == "" {
		p.Email = old.Email
	}
	p.ID = id
	return c.sendXML(ctx, http.MethodPut, "/providers/"+url.PathEscape(id), &p)
}

// MoveProvider reassigns an existing provider to another aggregator. The
// service wants the full provider body alongside the new aggregator id,
// so the current metadata is fetched and sent back unchanged.
func (c *Client) MoveProvider(ctx context.Context, providerID, newAggregatorID string) error {
	p, err := c.Provider(ctx, providerID)
	if err != nil {
		return fmt.Errorf("fetch current provider: %w", err)
	}
	q := url.Values{"newAggregatorId": {newAggregatorID}}
	return c.sendXML(ctx, http.MethodPut, "/providers/"+url.PathEscape(providerID)+"?"+q.Encode(), p)
}

// DeleteProvider deletes a provider by id.
func (c *Client) DeleteProvider(ctx context.Context, id string) error {
	return c.sendXML(ctx, http.MethodDelete, "/providers/"+url.PathEscape(id), nil)
}
