package repox

import (
	"context"
	"encoding/xml"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduledHarvests(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/repox/rest/datasets/nr/harvest/schedules", r.URL.Path)
		io.WriteString(w, `<harvestSchedules>
			<task>
				<id>nr_3</id>
				<time>2019-01-15 02:00</time>
				<frequency>WEEKLY</frequency>
			</task>
			<task>
				<id>nr_4</id>
				<time>2019-02-01 04:30</time>
				<frequency>XMONTHLY</frequency>
				<xmonths>3</xmonths>
			</task>
		</harvestSchedules>`)
	}))

	tasks, err := client.ScheduledHarvests(context.Background(), "nr")
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Equal(t, "nr_3", tasks[0].ID)
	assert.Equal(t, "WEEKLY", tasks[0].Frequency)
	assert.Equal(t, 3, tasks[1].XMonths)
}

func TestHarvestStatus(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/repox/rest/datasets/nr/harvest/status", r.URL.Path)
		io.WriteString(w, `<response><result>RUNNING</result></response>`)
	}))

	status, err := client.HarvestStatus(context.Background(), "nr")
	require.NoError(t, err)
	assert.Equal(t, "RUNNING", status)
}

func TestLastHarvestLog(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/repox/rest/datasets/nr/harvest/log", r.URL.Path)
		io.WriteString(w, `<response><result>/vhosts/repoxdata/logs/nr.log</result></response>`)
	}))

	logPath, err := client.LastHarvestLog(context.Background(), "nr")
	require.NoError(t, err)
	assert.Equal(t, "/vhosts/repoxdata/logs/nr.log", logPath)
}

func TestRunningHarvests(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/repox/rest/datasets/harvest", r.URL.Path)
		io.WriteString(w, "No running harvests.")
	}))

	msg, err := client.RunningHarvests(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "No running harvests.", msg)
}

func TestStartHarvest(t *testing.T) {
	tests := []struct {
		name     string
		sample   bool
		wantType string
	}{
		{"full", false, "full"},
		{"sample", true, "sample"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotType string
			client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				require.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, "/repox/rest/datasets/nr/harvest/start", r.URL.Path)
				gotType = r.URL.Query().Get("type")
			}))

			err := client.StartHarvest(context.Background(), "nr", tt.sample)
			require.NoError(t, err)
			assert.Equal(t, tt.wantType, gotType)
		})
	}
}

func TestScheduleHarvest(t *testing.T) {
	var gotIncremental string
	var got ScheduledTask
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/repox/rest/datasets/nr/harvest/schedule", r.URL.Path)
		gotIncremental = r.URL.Query().Get("incremental")
		body, _ := io.ReadAll(r.Body)
		require.NoError(t, xml.Unmarshal(body, &got))
		w.WriteHeader(http.StatusCreated)
	}))

	err := client.ScheduleHarvest(context.Background(), "nr", ScheduledTask{
		Time:      "2019-03-01 02:00",
		Frequency: "DAILY",
	}, true)
	require.NoError(t, err)
	assert.Equal(t, "true", gotIncremental)
	assert.Equal(t, "DAILY", got.Frequency)
	assert.Equal(t, "2019-03-01 02:00", got.Time)
}

func TestHarvestOptions(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/repox/rest/datasets/harvest/options", r.URL.Path)
		io.WriteString(w, `<options>
			<option description="[POST] Starts a harvest."><syntax>/datasets/{datasetId}/harvest/start</syntax></option>
		</options>`)
	}))

	options, err := client.HarvestOptions(context.Background())
	require.NoError(t, err)
	require.Len(t, options, 1)
	assert.Equal(t, "/datasets/{datasetId}/harvest/start", options[0].Syntax)
}

func TestCancelHarvest(t *testing.T) {
	var gotMethod, gotPath string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
	}))

	err := client.CancelHarvest(context.Background(), "nr")
	require.NoError(t, err)
	assert.Equal(t, http.MethodDelete, gotMethod)
	assert.Equal(t, "/repox/rest/datasets/nr/harvest/cancel", gotPath)
}

func TestDeleteScheduledHarvest(t *testing.T) {
	var gotMethod, gotPath string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
	}))

	err := client.DeleteScheduledHarvest(context.Background(), "nr", "nr_3")
	require.NoError(t, err)
	assert.Equal(t, http.MethodDelete, gotMethod)
	assert.Equal(t, "/repox/rest/datasets/nr/harvest/schedules/nr_3", gotPath)
}
