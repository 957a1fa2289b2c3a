package repox

import "encoding/xml"

// Aggregator is a top-level organizational unit in a REPOX instance.
type Aggregator struct {
	XMLName  xml.Name `xml:"aggregator"`
	ID       string   `xml:"id"`
	Name     string   `xml:"name"`
	NameCode string   `xml:"nameCode"`
	Homepage string   `xml:"homepage"`
}

// Provider is an institution under an aggregator that supplies datasets.
type Provider struct {
	XMLName      xml.Name `xml:"provider"`
	ID           string   `xml:"id"`
	Name         string   `xml:"name"`
	Country      string   `xml:"country"`
	CountryCode  string   `xml:"countryCode"`
	Description  string   `xml:"description"`
	NameCode     string   `xml:"nameCode"`
	Homepage     string   `xml:"homepage"`
	ProviderType string   `xml:"providerType"` // LIBRARY, MUSEUM, ARCHIVE, ...
	Email        string   `xml:"email"`
}

// Dataset is a harvestable collection of records under a provider. The
// service models it as a container around a data source.
type Dataset struct {
	XMLName       xml.Name   `xml:"dataset"`
	ContainerType string     `xml:"containerType"`
	Name          string     `xml:"name"`
	NameCode      string     `xml:"nameCode"`
	DataSource    DataSource `xml:"dataSource"`
}

// DataSource carries the type-specific configuration of a dataset.
// OAI and folder fields are mutually exclusive in practice; the service
// omits whichever do not apply.
type DataSource struct {
	ID             string `xml:"id"`
	DataSetType    string `xml:"dataSetType"` // OAI, DIR or Z3950
	Schema         string `xml:"schema"`
	Namespace      string `xml:"namespace"`
	Description    string `xml:"description"`
	MetadataFormat string `xml:"metadataFormat"`
	IsSample       bool   `xml:"isSample"`
	ExportDir      string `xml:"exportDir"`
	MarcFormat     string `xml:"marcFormat,omitempty"`

	// OAI sources
	OAISourceURL string `xml:"oaiSourceURL,omitempty"`
	OAISet       string `xml:"oaiSet,omitempty"`

	// Folder sources
	SourcesDirPath string `xml:"sourcesDirPath,omitempty"`
	RecordXPath    string `xml:"recordXPath,omitempty"`
	ISOVariant     string `xml:"isoVariant,omitempty"`

	RecordIDPolicy   RecordIDPolicy    `xml:"recordIdPolicy"`
	RetrieveStrategy *RetrieveStrategy `xml:"retrieveStrategy,omitempty"`
}

// RecordIDPolicy says how record identifiers are assigned. Exactly one
// child element is present on the wire.
type RecordIDPolicy struct {
	IDProvided  *struct{} `xml:"IdProvided,omitempty"`
	IDGenerated *struct{} `xml:"IdGenerated,omitempty"`
	IDExtracted *struct{} `xml:"IdExtracted,omitempty"`
}

// RetrieveStrategy says how a folder source obtains its files.
type RetrieveStrategy struct {
	Folder *struct{} `xml:"FOLDER,omitempty"`
	FTP    *struct{} `xml:"FTP,omitempty"`
	HTTP   *struct{} `xml:"HTTP,omitempty"`
}

// ServiceOption is one entry of an option-set listing (aggregator,
// mapping or record options).
type ServiceOption struct {
	Description string `xml:"description,attr"`
	Syntax      string `xml:"syntax"`
}

// ScheduledTask is a scheduled harvest for a dataset.
type ScheduledTask struct {
	XMLName   xml.Name `xml:"task"`
	ID        string   `xml:"id"`
	Time      string   `xml:"time"`      // first run, "YYYY-MM-DD HH:MM"
	Frequency string   `xml:"frequency"` // ONCE, DAILY, WEEKLY or XMONTHLY
	XMonths   int      `xml:"xmonths,omitempty"`
}

// Mapping is a schema crosswalk registered on the instance.
type Mapping struct {
	XMLName             xml.Name `xml:"mapping"`
	ID                  string   `xml:"id"`
	Description         string   `xml:"description"`
	SourceSchemaID      string   `xml:"sourceSchemaId"`
	DestinationSchemaID string   `xml:"destinationSchemaId"`
	Stylesheet          string   `xml:"stylesheet"`
	SourceSchemaVersion string   `xml:"sourceSchemaVersion"`
	VersionTwo          bool     `xml:"versionTwo"`
}

// Statistics summarizes a whole REPOX instance.
type Statistics struct {
	XMLName                xml.Name         `xml:"repox-statistics"`
	GenerationDate         string           `xml:"generationDate,attr"`
	DataSourcesIDExtracted int              `xml:"dataSourcesIdExtracted"`
	DataSourcesIDGenerated int              `xml:"dataSourcesIdGenerated"`
	DataSourcesIDProvided  int              `xml:"dataSourcesIdProvided"`
	Aggregators            int              `xml:"aggregators"`
	DataProviders          int              `xml:"dataProviders"`
	DataSourcesOAI         int              `xml:"dataSourcesOai"`
	DataSourcesZ3950       int              `xml:"dataSourcesZ3950"`
	DataSourcesDirectory   int              `xml:"dataSourcesDirectoryImporter"`
	MetadataFormats        []FormatRecords  `xml:"dataSourcesMetadataFormats>dataSourcesMetadataFormat"`
	RecordsAvgDataSource   float64          `xml:"recordsAvgDataSource"`
	RecordsAvgDataProvider float64          `xml:"recordsAvgDataProvider"`
	CountryRecords         []CountryRecords `xml:"countriesRecords>countryRecords"`
	RecordsTotal           int              `xml:"recordsTotal"`
}

// FormatRecords is the per-metadata-format record count in Statistics.
type FormatRecords struct {
	MetadataFormat string `xml:"metadataFormat"`
	DataSources    int    `xml:"dataSources"`
	Records        int    `xml:"records"`
}

// CountryRecords is the per-country record count in Statistics.
type CountryRecords struct {
	Country string `xml:"country,attr"`
	Records int    `xml:"records"`
}
