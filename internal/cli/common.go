// Package cli provides shared helpers for the Tarn command line tools:
// version reporting, compatibility checks, and diagnostic rendering.
package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"

	"github.com/Masterminds/semver/v3"
	"github.com/fatih/color"
)

// Version information for all CLI tools.
const (
	Version   = "0.1.0"
	BuildDate = "2026-08-23"
	CommitSHA = "unknown" // Set during build
)

// VersionInfo contains version and build information.
type VersionInfo struct {
	Version   string `json:"version"`
	BuildDate string `json:"build_date"`
	CommitSHA string `json:"commit_sha"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
	Arch      string `json:"arch"`
}

// GetVersionInfo returns structured version information.
func GetVersionInfo() *VersionInfo {
	return &VersionInfo{
		Version:   Version,
		BuildDate: BuildDate,
		CommitSHA: CommitSHA,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS,
		Arch:      runtime.GOARCH,
	}
}

// PrintVersion prints version information in a consistent format.
func PrintVersion(toolName string, jsonOutput bool) {
	info := GetVersionInfo()

	if jsonOutput {
		data, err := json.MarshalIndent(map[string]interface{}{
			"tool":         toolName,
			"version_info": info,
		}, "", "  ")
		if err == nil {
			fmt.Println(string(data))
			return
		}
		fmt.Fprintf(os.Stderr, "Error: failed to marshal version info: %v\n", err)
	}

	fmt.Printf("%s v%s\n", toolName, info.Version)
	fmt.Printf("Build Date: %s\n", info.BuildDate)
	if info.CommitSHA != "unknown" && info.CommitSHA != "" {
		fmt.Printf("Commit: %s\n", info.CommitSHA)
	}
	fmt.Printf("Go Version: %s\n", info.GoVersion)
	fmt.Printf("Platform: %s/%s\n", info.Platform, info.Arch)
}

// CheckVersionConstraint verifies that the tool version satisfies a
// semver constraint such as ">= 0.1.0". Scripts pin a constraint via
// --require-version so they fail early against an incompatible tool.
func CheckVersionConstraint(constraint string) error {
	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return fmt.Errorf("invalid version constraint %q: %w", constraint, err)
	}
	v, err := semver.NewVersion(Version)
	if err != nil {
		return fmt.Errorf("invalid tool version %q: %w", Version, err)
	}
	if !c.Check(v) {
		return fmt.Errorf("tool version %s does not satisfy constraint %q", Version, constraint)
	}
	return nil
}

// DisableColor turns off colored diagnostic output.
func DisableColor() {
	color.NoColor = true
}

var errorHeading = color.New(color.FgRed, color.Bold)

// PrintError renders a diagnostic to stderr with a colored heading.
func PrintError(err error) {
	fmt.Fprintf(os.Stderr, "%s %v\n", errorHeading.Sprint("error:"), err)
}

// ExitWithError prints an error message and exits with code 1.
func ExitWithError(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "%s %s\n", errorHeading.Sprint("error:"), fmt.Sprintf(format, args...))
	os.Exit(1)
}
