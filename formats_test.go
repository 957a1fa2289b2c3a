package repox

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupMetadataFormat(t *testing.T) {
	format, ok := LookupMetadataFormat("oai_dc")
	require.True(t, ok)
	assert.Equal(t, "http://www.openarchives.org/OAI/2.0/oai_dc.xsd", format.Schema)
	assert.Equal(t, "http://www.openarchives.org/OAI/2.0/", format.Namespace)
}

func TestLookupMetadataFormatCaseInsensitive(t *testing.T) {
	upper, ok := LookupMetadataFormat("MarcXchange")
	require.True(t, ok)
	lower, ok2 := LookupMetadataFormat("marcxchange")
	require.True(t, ok2)
	assert.Equal(t, lower, upper)
	assert.Equal(t, "info:lc/xmlns/marcxchange-v1", upper.Namespace)
}

func TestLookupMetadataFormatUnknown(t *testing.T) {
	format, ok := LookupMetadataFormat("no_such_format")
	assert.False(t, ok)
	assert.Zero(t, format)
}
