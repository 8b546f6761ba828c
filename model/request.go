package model

// ScanRequest is the payload from the dashboard. Zero-valued tuning fields
// fall back to the configured defaults before validation.
type ScanRequest struct {
	ScanType        string   `json:"scanType" example:"INDEX" enums:"INDEX,SECTOR"`
	Files           []string `json:"files" example:"nifty50.csv"`
	SwingLeft       int      `json:"swingLeft" example:"2"`
	SwingRight      int      `json:"swingRight" example:"2"`
	MinDepthPercent float64  `json:"minDepthPercent" example:"0.05"`
	LookbackBars    int      `json:"lookbackBars" example:"50"`
	Days            int      `json:"days" example:"10"`
}
