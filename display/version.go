package display

import (
	"fmt"
	"runtime/debug"

	"github.com/jaywonder20/fastcore/errors"
)

// BuildVersion returns a formatted version string for the named tool. When
// version is empty it falls back to the module version recorded in build
// metadata.
func BuildVersion(name, version string) string {
	if version == "" {
		inferred, err := inferVersion()
		if err != nil {
			return "No version specified"
		}
		version = inferred
	}

	if name != "" {
		name = name + " "
	}
	return fmt.Sprintf("%sv%s", name, version)
}

// inferVersion attempts to infer the user's module version from build info.
func inferVersion() (string, error) {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "", errors.NewParseError("unable to read build info")
	}

	if info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version, nil
	}

	return "", errors.NewParseError("no version info found in build metadata")
}
