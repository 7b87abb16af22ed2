package driver

import (
	"encoding/json"
	"fmt"

	"github.com/hodevin/decaf/internal/diag"
	"github.com/hodevin/decaf/internal/observ"
	"github.com/hodevin/decaf/internal/source"
)

type timingPayload struct {
	Kind    string               `json:"kind"`
	Path    string               `json:"path,omitempty"`
	TotalMS float64              `json:"total_ms"`
	Phases  []observ.PhaseReport `json:"phases"`
}

// appendTimingDiagnostic records payload as an SevInfo diagnostic so
// --timings surfaces phase breakdowns through the same Pretty/scope-tree
// output path as every other finding, instead of a side channel.
func appendTimingDiagnostic(bag *diag.Bag, payload timingPayload) {
	if bag == nil {
		return
	}
	if payload.Kind == "" {
		payload.Kind = "pipeline"
	}
	msg := fmt.Sprintf("timings (%s): total %.2f ms", payload.Kind, payload.TotalMS)
	if payload.Path != "" {
		msg = fmt.Sprintf("%s — %s", msg, payload.Path)
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return
	}

	entry := diag.Diagnostic{
		Severity: diag.SevInfo,
		Code:     diag.ObsTimings,
		Message:  msg,
		Notes:    []diag.Note{{Pos: source.NoPosition, Msg: string(data)}},
	}
	bag.Add(entry)
}
