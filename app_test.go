package main

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunDemoScene(t *testing.T) {
	scenePath := filepath.Join(t.TempDir(), "demo.scene")
	var out bytes.Buffer
	if err := run(castOptions{demoPath: scenePath}, &out); err != nil {
		t.Fatal(err)
	}

	out.Reset()
	options := castOptions{scenePath: scenePath, origin: "0,0,0", direction: "1,0,0", maxDist: 100, strategy: "sorted", asJSON: true}
	if err := run(options, &out); err != nil {
		t.Fatal(err)
	}
	var report castReport
	if err := json.Unmarshal(out.Bytes(), &report); err != nil {
		t.Fatal(err)
	}
	if !report.Hit || report.Object != "crate" || report.Distance != 4.5 || report.Penetration != 1 {
		t.Errorf("report = %+v", report)
	}
	if report.Out == nil || *report.Out != [3]float64{5.5, 0, 0} {
		t.Errorf("out = %v", report.Out)
	}

	out.Reset()
	options.skip = "crate,pillar"
	options.asJSON = false
	if err := run(options, &out); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out.String(), "no hit, ray ends at (100, 0, 0)") {
		t.Errorf("output = %q", out.String())
	}
}

func TestRunRejectsBadInput(t *testing.T) {
	scenePath := filepath.Join(t.TempDir(), "demo.scene")
	if err := run(castOptions{demoPath: scenePath}, &bytes.Buffer{}); err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		name    string
		options castOptions
	}{
		{"no scene", castOptions{origin: "0", direction: "1,0,0", strategy: "list"}},
		{"bad origin", castOptions{scenePath: scenePath, origin: "x", direction: "1,0,0", strategy: "list"}},
		{"bad direction", castOptions{scenePath: scenePath, origin: "0", direction: "1,0", strategy: "list"}},
		{"bad strategy", castOptions{scenePath: scenePath, origin: "0", direction: "1,0,0", strategy: "bvh"}},
		{"missing file", castOptions{scenePath: scenePath + ".nope", origin: "0", direction: "1,0,0", strategy: "list"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := run(tt.options, &bytes.Buffer{}); err == nil {
				t.Error("expected an error")
			}
		})
	}
}
