package cli

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"strings"
	"testing"

	"github.com/matzehuels/cargo-dupdeps/pkg/cargo"
	"github.com/matzehuels/cargo-dupdeps/pkg/dupes"
	"github.com/matzehuels/cargo-dupdeps/pkg/pipeline"
	"github.com/matzehuels/cargo-dupdeps/pkg/usage"
)

func sampleReport() *pipeline.Report {
	return &pipeline.Report{
		Graph: &cargo.Graph{
			Root: "app",
			Packages: []cargo.Package{
				{Name: "app", Version: "0.1.0", Edition: "2021", Targets: []cargo.Target{
					{Name: "app", Kind: []string{"bin"}, CrateTypes: []string{"bin"}},
				}},
				{Name: "serde_json", Version: "1.0.128", Edition: "2021"},
			},
		},
		Sets: &dupes.Result{
			RootDeps:   dupes.NewSet("serde", "left-pad", "rand"),
			OtherDeps:  dupes.NewSet("serde", "left-pad", "rand", "itoa"),
			Duplicates: dupes.NewSet("serde", "left-pad", "rand"),
		},
		Findings: []usage.Finding{
			{Name: "left-pad", Identifier: "left_pad", Verdict: usage.MaybeUnused},
			{Name: "rand", Identifier: "rand", Verdict: usage.Unknown, Err: stderrors.New("rg: not found")},
			{Name: "serde", Identifier: "serde", Verdict: usage.Used, Evidence: "serde::"},
		},
	}
}

func TestWriteTextOrder(t *testing.T) {
	var buf bytes.Buffer
	if err := writeReport(&buf, sampleReport(), formatText); err != nil {
		t.Fatal(err)
	}
	out := buf.String()

	sections := []string{"Packages (2)", "Other deps (4)", "Root deps (3)", "Duplicates (3)", "Maybe unused (1)", "Could not check 1"}
	last := -1
	for _, s := range sections {
		i := strings.Index(out, s)
		if i < 0 {
			t.Fatalf("missing section %q in:\n%s", s, out)
		}
		if i < last {
			t.Errorf("section %q out of order", s)
		}
		last = i
	}

	for _, want := range []string{
		"app 0.1.0",
		"edition 2021",
		"target app kind=[bin] crate_types=[bin]",
		"itoa  left-pad  rand  serde",
		"rand: rg: not found",
		"renamed imports",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestWriteTextEmptySets(t *testing.T) {
	report := &pipeline.Report{
		Graph: &cargo.Graph{Root: "app", Packages: []cargo.Package{{Name: "app"}}},
		Sets: &dupes.Result{
			RootDeps:   dupes.NewSet(),
			OtherDeps:  dupes.NewSet(),
			Duplicates: dupes.NewSet(),
		},
		Findings: []usage.Finding{},
	}

	var buf bytes.Buffer
	if err := writeReport(&buf, report, formatText); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "Duplicates (0)") || !strings.Contains(out, "Maybe unused (0)") {
		t.Errorf("empty sets not reported:\n%s", out)
	}
	if strings.Contains(out, "Could not check") {
		t.Error("unknown section printed with no failures")
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := writeReport(&buf, sampleReport(), formatJSON); err != nil {
		t.Fatal(err)
	}

	var got jsonReport
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, buf.String())
	}
	if got.Root != "app" || got.Packages != 2 {
		t.Errorf("root = %q, packages = %d", got.Root, got.Packages)
	}
	if strings.Join(got.Duplicates, ",") != "left-pad,rand,serde" {
		t.Errorf("duplicates = %v", got.Duplicates)
	}
	if strings.Join(got.MaybeUnused, ",") != "left-pad" {
		t.Errorf("maybe_unused = %v", got.MaybeUnused)
	}
	if len(got.Findings) != 3 || got.Findings[1].Verdict != "unknown" || got.Findings[1].Error == "" {
		t.Errorf("findings = %+v", got.Findings)
	}
}

func TestWriteReportUnknownFormat(t *testing.T) {
	if err := writeReport(&bytes.Buffer{}, sampleReport(), "yaml"); err == nil {
		t.Error("expected error for unknown format")
	}
}
