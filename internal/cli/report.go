package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/matzehuels/cargo-dupdeps/pkg/pipeline"
)

const (
	formatText = "text"
	formatJSON = "json"
)

// heuristicNote is printed under every text report.
const heuristicNote = "Verdicts come from a text search for `use <crate>` and `<crate>::`. " +
	"Comments, string literals and renamed imports are not told apart from real use."

// writeReport renders report in the requested format.
func writeReport(w io.Writer, report *pipeline.Report, format string) error {
	switch format {
	case formatJSON:
		return writeJSON(w, report)
	case formatText, "":
		writeText(w, report)
		return nil
	default:
		return fmt.Errorf("unknown format %q (available: %s, %s)", format, formatText, formatJSON)
	}
}

// writeText prints the package listing and the four name sets, in that
// order, followed by any candidates whose probes failed.
func writeText(w io.Writer, report *pipeline.Report) {
	printHeading(w, "Packages", len(report.Graph.Packages))
	for _, p := range report.Graph.Packages {
		fmt.Fprintf(w, "  %s %s %s\n", StyleValue.Render(p.Name), p.Version, StyleDim.Render("edition "+p.Edition))
		for _, t := range p.Targets {
			printDetail(w, "  target %s kind=%s crate_types=%s", t.Name, tags(t.Kind), tags(t.CrateTypes))
		}
	}
	printNewline(w)

	sets := report.Sets
	printNames(w, "Other deps", sets.OtherDeps.Sorted())
	printNames(w, "Root deps", sets.RootDeps.Sorted())
	printNames(w, "Duplicates", sets.Duplicates.Sorted())
	printNewline(w)

	maybeUnused := report.MaybeUnused()
	if len(maybeUnused) == 0 {
		printSuccess(w, "No duplicate dependencies look unused")
	} else {
		printWarning(w, "%d duplicate dependencies may be unused", len(maybeUnused))
	}
	printNames(w, "Maybe unused", maybeUnused)

	if unknown := report.Unknown(); len(unknown) > 0 {
		printNewline(w)
		printError(w, "Could not check %d dependencies", len(unknown))
		for _, f := range unknown {
			printDetail(w, "%s: %v", f.Name, f.Err)
		}
	}

	printNewline(w)
	fmt.Fprintln(w, StyleDim.Render(heuristicNote))
}

type jsonFinding struct {
	Name       string `json:"name"`
	Identifier string `json:"identifier"`
	Verdict    string `json:"verdict"`
	Evidence   string `json:"evidence,omitempty"`
	Error      string `json:"error,omitempty"`
}

type jsonReport struct {
	Root        string        `json:"root"`
	Packages    int           `json:"packages"`
	OtherDeps   []string      `json:"other_deps"`
	RootDeps    []string      `json:"root_deps"`
	Duplicates  []string      `json:"duplicates"`
	MaybeUnused []string      `json:"maybe_unused"`
	Findings    []jsonFinding `json:"findings"`
}

func writeJSON(w io.Writer, report *pipeline.Report) error {
	out := jsonReport{
		Root:        report.Graph.Root,
		Packages:    len(report.Graph.Packages),
		OtherDeps:   nonNil(report.Sets.OtherDeps.Sorted()),
		RootDeps:    nonNil(report.Sets.RootDeps.Sorted()),
		Duplicates:  nonNil(report.Sets.Duplicates.Sorted()),
		MaybeUnused: report.MaybeUnused(),
		Findings:    make([]jsonFinding, 0, len(report.Findings)),
	}
	for _, f := range report.Findings {
		jf := jsonFinding{
			Name:       f.Name,
			Identifier: f.Identifier,
			Verdict:    f.Verdict.String(),
			Evidence:   f.Evidence,
		}
		if f.Err != nil {
			jf.Error = f.Err.Error()
		}
		out.Findings = append(out.Findings, jf)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
