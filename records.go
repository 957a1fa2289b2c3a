package repox

import (
	"context"
	"net/http"
	"net/url"
	"strings"
)

// Record returns the stored metadata of a single record as raw XML. The
// record id is the OAI identifier from the record header. Deleted OAI
// records have no metadata and surface as an error from the service.
func (c *Client) Record(ctx context.Context, recordID string) (string, error) {
	q := url.Values{"recordId": {recordID}}
	var resp struct {
		Result struct {
			Raw string `xml:",innerxml"`
		} `xml:"result"`
	}
	if err := c.getXML(ctx, "/records?"+q.Encode(), &resp); err != nil {
		return "", err
	}
	return strings.TrimSpace(resp.Result.Raw), nil
}

// AddRecord stores an XML record in a dataset under the given record id.
func (c *Client) AddRecord(ctx context.Context, datasetID, recordID, record string) error {
	q := url.Values{"datasetId": {datasetID}, "recordId": {recordID}}
	_, err := c.do(ctx, http.MethodPost, "/records?"+q.Encode(), strings.NewReader(record))
	return err
}

// DeleteRecord marks a record as deleted. The service exposes this as a
// GET with a type parameter rather than an HTTP DELETE.
func (c *Client) DeleteRecord(ctx context.Context, recordID string) error {
	q := url.Values{"recordId": {recordID}, "type": {"delete"}}
	_, err := c.do(ctx, http.MethodGet, "/records?"+q.Encode(), nil)
	return err
}

// RecordOptions lists the option set of the record endpoints.
func (c *Client) RecordOptions(ctx context.Context) ([]ServiceOption, error) {
	return c.options(ctx, "/records/options")
}

// MappingOptions lists the option set of the mapping endpoints.
func (c *Client) MappingOptions(ctx context.Context) ([]ServiceOption, error) {
	return c.options(ctx, "/mappings/options")
}

// Mapping fetches a schema mapping by id.
func (c *Client) Mapping(ctx context.Context, mappingID string) (*Mapping, error) {
	var m Mapping
	if err := c.getXML(ctx, "/mappings/"+url.PathEscape(mappingID), &m); err != nil {
		return nil, err
	}
	return &m, nil
}
