package model

type ScanType string

const (
	ScanIndex  ScanType = "INDEX"
	ScanSector ScanType = "SECTOR"
)

type ExportFormat string

const (
	ExportCSV  ExportFormat = "csv"
	ExportJSON ExportFormat = "json"
	ExportTXT  ExportFormat = "txt"
)
