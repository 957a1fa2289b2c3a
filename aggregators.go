package repox

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// Aggregators lists every aggregator on the instance with its metadata.
func (c *Client) Aggregators(ctx context.Context) ([]Aggregator, error) {
	var list struct {
		Aggregators []Aggregator `xml:"aggregator"`
	}
	if err := c.getXML(ctx, "/aggregators", &list); err != nil {
		return nil, err
	}
	return list.Aggregators, nil
}

// AggregatorIDs lists only the identifiers of every aggregator.
func (c *Client) AggregatorIDs(ctx context.Context) ([]string, error) {
	aggregators, err := c.Aggregators(ctx)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(aggregators))
	for _, a := range aggregators {
		ids = append(ids, a.ID)
	}
	return ids, nil
}

// Aggregator fetches a single aggregator by id.
func (c *Client) Aggregator(ctx context.Context, id string) (*Aggregator, error) {
	var a Aggregator
	if err := c.getXML(ctx, "/aggregators/"+url.PathEscape(id), &a); err != nil {
		return nil, err
	}
	return &a, nil
}

// AggregatorOptions lists the option set of the aggregator endpoints.
func (c *Client) AggregatorOptions(ctx context.Context) ([]ServiceOption, error) {
	return c.options(ctx, "/aggregators/options")
}

// CreateAggregator creates a new aggregator. An empty NameCode defaults
// to the aggregator id.
func (c *Client) CreateAggregator(ctx context.Context, a Aggregator) error {
	if a.NameCode == "" {
		a.NameCode = a.ID
	}
	return c.sendXML(ctx, http.MethodPost, "/aggregators", &a)
}

// UpdateAggregator updates the aggregator with the given id. Empty
// fields of a keep the values currently stored on the instance.
func (c *Client) UpdateAggregator(ctx context.Context, id string, a Aggregator) error {
	old, err := c.Aggregator(ctx, id)
	if err != nil {
		return fmt.Errorf("fetch current aggregator: %w", err)
	}
	if a.Name == "" {
		a.Name = old.Name
	}
	if a.NameCode == "" {
		a.NameCode = old.NameCode
	}
	if a.Homepage == "" {
		a.Homepage = old.Homepage
	}
	a.ID = id
	return c.sendXML(ctx, http.MethodPut, "/aggregators/"+url.PathEscape(id), &a)
}

// DeleteAggregator deletes an aggregator by id.
func (c *Client) DeleteAggregator(ctx context.Context, id string) error {
	return c.sendXML(ctx, http.MethodDelete, "/aggregators/"+url.PathEscape(id), nil)
}
