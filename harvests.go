package repox

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// ScheduledHarvests lists the scheduled harvests of a dataset.
func (c *Client) ScheduledHarvests(ctx context.Context, datasetID string) ([]ScheduledTask, error) {
	var list struct {
		Tasks []ScheduledTask `xml:"task"`
	}
	path := "/datasets/" + url.PathEscape(datasetID) + "/harvest/schedules"
	if err := c.getXML(ctx, path, &list); err != nil {
		return nil, err
	}
	return list.Tasks, nil
}

// HarvestStatus returns the status of the last or current harvest of a
// dataset (RUNNING, OK, CANCELED, ERROR, ...).
func (c *Client) HarvestStatus(ctx context.Context, datasetID string) (string, error) {
	return c.result(ctx, "/datasets/"+url.PathEscape(datasetID)+"/harvest/status")
}

// LastHarvestLog returns the log of the last harvest of a dataset as raw
// text.
func (c *Client) LastHarvestLog(ctx context.Context, datasetID string) (string, error) {
	return c.result(ctx, "/datasets/"+url.PathEscape(datasetID)+"/harvest/log")
}

// RunningHarvests returns the service's message about currently running
// harvests, verbatim.
func (c *Client) RunningHarvests(ctx context.Context) (string, error) {
	data, err := c.do(ctx, http.MethodGet, "/datasets/harvest", nil)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// StartHarvest starts a one-off harvest of a dataset. With sample set,
// only a subset of records is harvested.
func (c *Client) StartHarvest(ctx context.Context, datasetID string, sample bool) error {
	harvestType := "full"
	if sample {
		harvestType = "sample"
	}
	q := url.Values{"type": {harvestType}}
	path := "/datasets/" + url.PathEscape(datasetID) + "/harvest/start?" + q.Encode()
	return c.sendXML(ctx, http.MethodPost, path, nil)
}

// ScheduleHarvest registers a recurring or one-off harvest for a
// dataset. The service performs the actual scheduling; this only posts
// the configuration.
func (c *Client) ScheduleHarvest(ctx context.Context, datasetID string, task ScheduledTask, incremental bool) error {
	q := url.Values{"incremental": {strconv.FormatBool(incremental)}}
	path := "/datasets/" + url.PathEscape(datasetID) + "/harvest/schedule?" + q.Encode()
	return c.sendXML(ctx, http.MethodPost, path, &task)
}

// HarvestOptions lists the option set of the harvest endpoints.
func (c *Client) HarvestOptions(ctx context.Context) ([]ServiceOption, error) {
	return c.options(ctx, "/datasets/harvest/options")
}

// CancelHarvest cancels the running harvest of a dataset, if any.
func (c *Client) CancelHarvest(ctx context.Context, datasetID string) error {
	return c.sendXML(ctx, http.MethodDelete, "/datasets/"+url.PathEscape(datasetID)+"/harvest/cancel", nil)
}

// DeleteScheduledHarvest removes a scheduled harvest task from a
// dataset.
func (c *Client) DeleteScheduledHarvest(ctx context.Context, datasetID, taskID string) error {
	path := "/datasets/" + url.PathEscape(datasetID) + "/harvest/schedules/" + url.PathEscape(taskID)
	return c.sendXML(ctx, http.MethodDelete, path, nil)
}
