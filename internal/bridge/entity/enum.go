package entity

// FileFormat identifies the parsing strategy for an uploaded file.
type FileFormat string

const (
	FormatCSV  FileFormat = "CSV"
	FormatJSON FileFormat = "JSON"
	FormatYAML FileFormat = "YAML"
	FormatXLSX FileFormat = "XLSX"
	FormatXML  FileFormat = "XML"
)
