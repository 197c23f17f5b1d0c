// Package display provides output formatting for workerctl.
//
// This package handles user-facing output: the startup banner and the
// provisioning summary in tabular or JSON form. Table output uses
// text/tabwriter for alignment; JSON output is indented and written to
// stdout for scripting.
package display

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"

	"github.com/0xLogan-x/allora-worker/internal/provision"
)

var bannerStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#42E7FF")).
	Bold(true)

// Banner prints the workerctl startup banner with version information.
func Banner(version string) {
	fmt.Println()
	fmt.Println(bannerStyle.Render(" workerctl") + fmt.Sprintf(" v%s - Allora worker provisioning", version))
	fmt.Println()
}

// Summary prints the provisioning summary in the requested format.
func Summary(s *provision.Summary, format string) error {
	if format == "json" {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(s); err != nil {
			return fmt.Errorf("failed to encode summary: %w", err)
		}
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	defer w.Flush()

	fmt.Fprintln(w, "FIELD\tVALUE")
	fmt.Fprintf(w, "Worker index\t%s\n", s.Index)
	fmt.Fprintf(w, "Service\t%s\n", s.ServiceName)
	fmt.Fprintf(w, "Data directory\t%s\n", s.DataDir)
	fmt.Fprintf(w, "Compose manifest\t%s\n", s.ComposeFile)
	fmt.Fprintf(w, "Worker config\t%s\t%s\n", s.ConfigFile, createdNote(s.ConfigCreated))
	fmt.Fprintf(w, "Environment file\t%s\t%s\n", s.EnvFile, createdNote(s.EnvCreated))

	workers := append([]string(nil), s.WorkerServices...)
	sort.Strings(workers)
	fmt.Fprintf(w, "Stack workers\t%s\n", strings.Join(workers, ", "))

	status := "generated (not launched)"
	if s.Launched {
		status = "launched"
		if s.Healthy {
			status = "launched (inference healthy)"
		}
	}
	fmt.Fprintf(w, "Status\t%s\n", status)

	return nil
}

func createdNote(created bool) string {
	if created {
		return "(created)"
	}
	return "(reused)"
}
