package repox

import "context"

// Statistics fetches instance-wide statistics: aggregator, provider and
// data source counts, plus record totals broken down by metadata format
// and country.
func (c *Client) Statistics(ctx context.Context) (*Statistics, error) {
	var s Statistics
	if err := c.getXML(ctx, "/statistics", &s); err != nil {
		return nil, err
	}
	return &s, nil
}
