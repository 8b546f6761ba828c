package validator

import (
	"github.com/Oudwins/zog"

	"scanner/model"
)

// ScanRequestShape validates scan parameters. Runs after config defaults
// were applied, so every tuning field must hold a usable value.
var ScanRequestShape = zog.Struct(zog.Shape{
	"ScanType":        zog.String().OneOf([]string{string(model.ScanIndex), string(model.ScanSector)}).Required(),
	"Files":           zog.Slice(zog.String()).Min(1).Required(),
	"SwingLeft":       zog.Int().GTE(1).Required(),
	"SwingRight":      zog.Int().GTE(1).Required(),
	"MinDepthPercent": zog.Float64().GT(0).Required(),
	"LookbackBars":    zog.Int().GTE(1).Required(),
	"Days":            zog.Int().GTE(1).LTE(30).Required(),
})

// FirstIssue flattens an issue map into a single message for the response
// envelope.
func FirstIssue(issues zog.ZogIssueMap) string {
	for _, list := range issues {
		for _, issue := range list {
			if issue != nil && issue.Message != "" {
				return issue.Message
			}
		}
	}
	return "invalid request"
}
