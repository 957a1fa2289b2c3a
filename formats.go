package repox

import "strings"

// MetadataFormat is the schema and namespace registered for a known
// metadata format.
type MetadataFormat struct {
	Schema    string
	Namespace string
}

var metadataFormats = map[string]MetadataFormat{
	"edm": {
		Schema:    "http://www.europeana.eu/schemas/edm/EDM.xsd",
		Namespace: "http://www.europeana.eu/schemas/edm/",
	},
	"ese": {
		Schema:    "http://www.europeana.eu/schemas/ese/ESE-V3.4.xsd",
		Namespace: "http://www.europeana.eu/schemas/ese/",
	},
	"iso2709": {
		Schema:    "info:lc/xmlns/marcxchange-v1.xsd",
		Namespace: "info:lc/xmlns/marcxchange-v1",
	},
	"lido": {
		Schema:    "http://www.lido-schema.org/schema/v1.0/lido-v1.0.xsd",
		Namespace: "http://www.lido-schema.org",
	},
	"marcxchange": {
		Schema:    "info:lc/xmlns/marcxchange-v1.xsd",
		Namespace: "info:lc/xmlns/marcxchange-v1",
	},
	"mods": {
		Schema:    "http://www.loc.gov/standards/mods/v3/mods-3-5.xsd",
		Namespace: "http://www.loc.gov/mods/v3",
	},
	"nlm-ai": {
		Schema:    "ncbi-mathml2/mathml2.xsd",
		Namespace: "http://www.w3.org/1998/Math/MathML",
	},
	"nlm-book": {
		Schema:    "ncbi-mathml2/mathml2.xsd",
		Namespace: "http://www.w3.org/1998/Math/MathML",
	},
	"oai_dc": {
		Schema:    "http://www.openarchives.org/OAI/2.0/oai_dc.xsd",
		Namespace: "http://www.openarchives.org/OAI/2.0/",
	},
	"oai_qdc": {
		Schema:    "http://worldcat.org/xmlschemas/qdc/1.0/qdc-1.0.xsd",
		Namespace: "http://worldcat.org/xmlschemas/qdc-1.0",
	},
	"tel": {
		Schema:    "http://www.europeana.eu/schemas/ese/ESE-V3.4.xsd",
		Namespace: "http://krait.kb.nl/coop/tel/handbook/telterms.html",
	},
}

// LookupMetadataFormat returns the schema and namespace registered for a
// metadata format. Lookup is case-insensitive; ok is false for formats
// the service has no registration for.
func LookupMetadataFormat(format string) (MetadataFormat, bool) {
	f, ok := metadataFormats[strings.ToLower(format)]
	return f, ok
}
