package repox

import (
	"context"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordReturnsInnerXML(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/repox/rest/records", r.URL.Path)
		assert.Equal(t, "oai:nr:12345", r.URL.Query().Get("recordId"))
		io.WriteString(w, `<response><result>
			<oai_dc:dc xmlns:oai_dc="http://www.openarchives.org/OAI/2.0/oai_dc/">
				<dc:title xmlns:dc="http://purl.org/dc/elements/1.1/">A Title</dc:title>
			</oai_dc:dc>
		</result></response>`)
	}))

	record, err := client.Record(context.Background(), "oai:nr:12345")
	require.NoError(t, err)
	assert.Contains(t, record, "<oai_dc:dc")
	assert.Contains(t, record, "A Title")
}

func TestAddRecordPostsRawXML(t *testing.T) {
	var gotBody string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "nr", r.URL.Query().Get("datasetId"))
		assert.Equal(t, "oai:nr:999", r.URL.Query().Get("recordId"))
		assert.Equal(t, "application/xml", r.Header.Get("Content-Type"))
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
		w.WriteHeader(http.StatusCreated)
	}))

	record := `<record><title>New Record</title></record>`
	err := client.AddRecord(context.Background(), "nr", "oai:nr:999", record)
	require.NoError(t, err)
	assert.Equal(t, record, gotBody)
}

func TestDeleteRecordUsesTypeParameter(t *testing.T) {
	var gotMethod, gotType string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotType = r.URL.Query().Get("type")
	}))

	err := client.DeleteRecord(context.Background(), "oai:nr:12345")
	require.NoError(t, err)
	assert.Equal(t, http.MethodGet, gotMethod)
	assert.Equal(t, "delete", gotType)
}

func TestMappingOptions(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/repox/rest/mappings/options", r.URL.Path)
		io.WriteString(w, `<options>
			<option description="[GET] Gets a mapping."><syntax>/mappings/{mappingId}</syntax></option>
		</options>`)
	}))

	options, err := client.MappingOptions(context.Background())
	require.NoError(t, err)
	require.Len(t, options, 1)
	assert.Equal(t, "/mappings/{mappingId}", options[0].Syntax)
}

func TestRecordOptions(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/repox/rest/records/options", r.URL.Path)
		io.WriteString(w, `<options>
			<option description="[GET] Gets a record."><syntax>/records</syntax></option>
		</options>`)
	}))

	options, err := client.RecordOptions(context.Background())
	require.NoError(t, err)
	require.Len(t, options, 1)
}

func TestMapping(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/repox/rest/mappings/UTKMODSrepaired", r.URL.Path)
		io.WriteString(w, `<mapping>
			<id>UTKMODSrepaired</id>
			<description>UTK MODS modified for DLTN MODS</description>
			<sourceSchemaId>oai_mods</sourceSchemaId>
			<destinationSchemaId>MODS</destinationSchemaId>
			<stylesheet>utkmodstomods.xsl</stylesheet>
			<sourceSchemaVersion>3.5</sourceSchemaVersion>
			<versionTwo>true</versionTwo>
		</mapping>`)
	}))

	m, err := client.Mapping(context.Background(), "UTKMODSrepaired")
	require.NoError(t, err)
	assert.Equal(t, "UTKMODSrepaired", m.ID)
	assert.Equal(t, "oai_mods", m.SourceSchemaID)
	assert.Equal(t, "MODS", m.DestinationSchemaID)
	assert.Equal(t, "utkmodstomods.xsl", m.Stylesheet)
	assert.True(t, m.VersionTwo)
}
