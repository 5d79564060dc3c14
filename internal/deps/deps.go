package deps

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// Requirement defines an external tool cratedig relies on.
type Requirement struct {
	Name        string
	Command     string
	Description string
	Optional    bool
}

// Status reports the availability of a dependency.
type Status struct {
	Name        string
	Command     string
	Description string
	Optional    bool
	Available   bool
	Version     string
	Detail      string
}

// Requirements returns the external tools a scan needs, honoring the
// configured ffprobe binary.
func Requirements(ffprobeBinary string) []Requirement {
	binary := strings.TrimSpace(ffprobeBinary)
	if binary == "" {
		binary = "ffprobe"
	}
	return []Requirement{
		{
			Name:        "ffprobe",
			Command:     binary,
			Description: "Media inspection (duration, resolution, codecs, bitrate)",
		},
	}
}

// Check evaluates the provided requirements and reports availability. Found
// binaries carry their resolved path and the first line of `-version`
// output.
func Check(ctx context.Context, requirements []Requirement) []Status {
	results := make([]Status, 0, len(requirements))
	for _, req := range requirements {
		results = append(results, checkOne(ctx, req))
	}
	return results
}

func checkOne(ctx context.Context, req Requirement) Status {
	status := Status{
		Name:        req.Name,
		Command:     strings.TrimSpace(req.Command),
		Description: strings.TrimSpace(req.Description),
		Optional:    req.Optional,
	}
	if status.Command == "" {
		status.Detail = "no command configured"
		return status
	}
	resolved, err := exec.LookPath(status.Command)
	if err != nil {
		status.Detail = fmt.Sprintf("%q not found on PATH", status.Command)
		return status
	}
	status.Available = true
	status.Command = resolved
	status.Version = probeVersion(ctx, resolved)
	return status
}

// MissingRequired reports whether any non-optional dependency is
// unavailable.
func MissingRequired(statuses []Status) bool {
	for _, status := range statuses {
		if !status.Optional && !status.Available {
			return true
		}
	}
	return false
}

func probeVersion(ctx context.Context, command string) string {
	out, err := exec.CommandContext(ctx, command, "-version").Output()
	if err != nil {
		return ""
	}
	line, _, _ := strings.Cut(string(out), "\n")
	return strings.TrimSpace(line)
}
