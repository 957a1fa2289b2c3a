package repox

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// Datasets lists the datasets under a provider with their metadata.
func (c *Client) Datasets(ctx context.Context, providerID string) ([]Dataset, error) {
	var list struct {
		Datasets []Dataset `xml:"dataset"`
	}
	q := url.Values{"providerId": {providerID}}
	if err := c.getXML(ctx, "/datasets?"+q.Encode(), &list); err != nil {
		return nil, err
	}
	return list.Datasets, nil
}

// DatasetIDs lists only the identifiers of the datasets under a
// provider. A dataset is identified by its data source id.
func (c *Client) DatasetIDs(ctx context.Context, providerID string) ([]string, error) {
	datasets, err := c.Datasets(ctx, providerID)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(datasets))
	for _, d := range datasets {
		ids = append(ids, d.DataSource.ID)
	}
	return ids, nil
}

// Dataset fetches a single dataset by id.
func (c *Client) Dataset(ctx context.Context, id string) (*Dataset, error) {
	var d Dataset
	if err := c.getXML(ctx, "/datasets/"+url.PathEscape(id), &d); err != nil {
		return nil, err
	}
	return &d, nil
}

// LastIngestDate returns when the dataset was last ingested, as reported
// by the service ("MM/DD/YYYY HH:MM:SS" for harvested sets).
func (c *Client) LastIngestDate(ctx context.Context, id string) (string, error) {
	return c.result(ctx, "/datasets/"+url.PathEscape(id)+"/date")
}

// RecordCount returns the total number of records in a dataset.
func (c *Client) RecordCount(ctx context.Context, id string) (int, error) {
	s, err := c.result(ctx, "/datasets/"+url.PathEscape(id)+"/count")
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("parse record count %q: %w", s, err)
	}
	return n, nil
}

// CreateDataset creates a dataset under the given provider.
func (c *Client) CreateDataset(ctx context.Context, providerID string, d Dataset) error {
	q := url.Values{"providerId": {providerID}}
	return c.sendXML(ctx, http.MethodPost, "/datasets?"+q.Encode(), &d)
}

// CopyDataset creates a copy of an existing dataset under the same
// provider, with newID as its data source id.
func (c *Client) CopyDataset(ctx context.Context, id, newID string) error {
	q := url.Values{"newDatasetId": {newID}}
	return c.sendXML(ctx, http.MethodPost, "/datasets/"+url.PathEscape(id)+"?"+q.Encode(), nil)
}

// ExportDataset asks the service to export the dataset's records to its
// configured export directory. Use UpdateOAIDataset to change ExportDir
// first if needed.
func (c *Client) ExportDataset(ctx context.Context, id string) error {
	return c.sendXML(ctx, http.MethodPost, "/datasets/"+url.PathEscape(id)+"/export", nil)
}

// DeleteDataset deletes a dataset by id.
func (c *Client) DeleteDataset(ctx context.Context, id string) error {
	return c.sendXML(ctx, http.MethodDelete, "/datasets/"+url.PathEscape(id), nil)
}

// OAIDatasetUpdate carries the fields of an OAI dataset that can be
// changed with UpdateOAIDataset. Zero values leave the stored value
// untouched.
type OAIDatasetUpdate struct {
	Name           string
	NameCode       string
	Description    string
	ExportDir      string
	MetadataFormat string
	OAISourceURL   string
	OAISet         string
	IsSample       *bool
}

// UpdateOAIDataset updates an OAI dataset in place. Setting
// MetadataFormat to a known format also rewrites the schema and
// namespace from the format table; unknown formats change only the
// format field.
func (c *Client) UpdateOAIDataset(ctx context.Context, id string, upd OAIDatasetUpdate) error {
	old, err := c.Dataset(ctx, id)
	if err != nil {
		return fmt.Errorf("fetch current dataset: %w", err)
	}
	ds := &old.DataSource
	if upd.Description != "" {
		ds.Description = upd.Description
	}
	if upd.ExportDir != "" {
		ds.ExportDir = upd.ExportDir
	}
	if upd.OAISourceURL != "" {
		ds.OAISourceURL = upd.OAISourceURL
	}
	if upd.OAISet != "" {
		ds.OAISet = upd.OAISet
	}
	if upd.IsSample != nil {
		ds.IsSample = *upd.IsSample
	}
	if upd.MetadataFormat != "" {
		ds.MetadataFormat = upd.MetadataFormat
		if format, ok := LookupMetadataFormat(upd.MetadataFormat); ok {
			ds.Schema = format.Schema
			ds.Namespace = format.Namespace
		}
	}
	if upd.Name != "" {
		old.Name = upd.Name
	}
	if upd.NameCode != "" {
		old.NameCode = upd.NameCode
	}
	return c.sendXML(ctx, http.MethodPut, "/datasets/"+url.PathEscape(id), old)
}
