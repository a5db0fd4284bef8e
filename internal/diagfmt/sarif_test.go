package diagfmt

import (
	"bytes"
	"encoding/json"
	"testing"

	"rolint/internal/diag"
)

func TestSarifDocument(t *testing.T) {
	fs, bag := uiBag(t, "src/ui.lua")
	meta := SarifRunMeta{
		ToolName:       "rolint",
		ToolVersion:    "1.2.3",
		InvocationArgs: []string{"check", "src"},
		PathMode:       PathModeAuto,
		Rules:          []SarifRule{{ID: "roblox_incorrect_roact_usage", Description: "checks createElement"}},
	}
	var buf bytes.Buffer
	if err := Sarif(&buf, bag, fs, meta); err != nil {
		t.Fatal(err)
	}

	var doc sarifLog
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if doc.Version != "2.1.0" || len(doc.Runs) != 1 {
		t.Fatalf("version = %q, runs = %d", doc.Version, len(doc.Runs))
	}
	run := doc.Runs[0]
	if run.Tool.Driver.Name != "rolint" || len(run.Tool.Driver.Rules) != 1 {
		t.Errorf("driver = %+v", run.Tool.Driver)
	}
	if len(run.Results) != 1 {
		t.Fatalf("results = %d", len(run.Results))
	}
	res := run.Results[0]
	if res.RuleID != "roblox_incorrect_roact_usage" || res.Level != "error" || res.RuleIndex == nil || *res.RuleIndex != 0 {
		t.Errorf("result = %+v", res)
	}
	region := res.Locations[0].PhysicalLocation.Region
	if region.StartLine != 2 || region.StartColumn != 2 || region.ByteLength != 4 {
		t.Errorf("region = %+v", region)
	}
	if uri := res.Locations[0].PhysicalLocation.ArtifactLocation.URI; uri != "src/ui.lua" {
		t.Errorf("uri = %q", uri)
	}
}

func TestSarifEmptyRun(t *testing.T) {
	fs, bag := uiBag(t, "ui.lua")
	bag.Filter(func(diag.Diagnostic) bool { return false })
	var buf bytes.Buffer
	if err := Sarif(&buf, bag, fs, SarifRunMeta{ToolName: "rolint"}); err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(buf.Bytes(), []byte(`"results": []`)) {
		t.Errorf("results must be an empty array:\n%s", buf.String())
	}
}
