// Package config holds the small set of runtime constants and the YAML
// settings file shared by the CLI, the REPL and the session persistence
// layer (spec.md §1 "Non-goals" excludes a full module/project system, but
// the ambient configuration surface itself is still carried — see
// funvibe/funxy's internal/config/constants.go for the idiom this follows).
package config

// Version is the current stepwise version, set at build time via
// -ldflags "-X .../internal/config.Version=...".
var Version = "0.1.0-dev"

const SourceFileExt = ".swe"

// SourceFileExtensions are all recognized source file extensions.
var SourceFileExtensions = []string{".swe", ".step"}

// TrimSourceExt removes any recognized source extension from a filename,
// returning the original string if none match.
func TrimSourceExt(name string) string {
	for _, ext := range SourceFileExtensions {
		if len(name) >= len(ext) && name[len(name)-len(ext):] == ext {
			return name[:len(name)-len(ext)]
		}
	}
	return name
}

// HasSourceExt reports whether path ends with a recognized source
// extension.
func HasSourceExt(path string) bool {
	for _, ext := range SourceFileExtensions {
		if len(path) >= len(ext) && path[len(path)-len(ext):] == ext {
			return true
		}
	}
	return false
}

// IsTestMode indicates the program is running under the snapshot test
// harness. It defaults to false; no code in this module sets or reads it.
var IsTestMode = false

// DefaultMaxSteps is the default of the run subcommand's --max-steps flag:
// the number of EvalAll passes it makes before giving up (spec.md §4.4
// "EvalAll" has no built-in bound of its own). The bound counts passes, so
// it does not interrupt a single EvalAll call that never returns.
const DefaultMaxSteps = 100000

// CanonicalAlphabetStart is the index Canonicalize begins minting
// display names from; 0 yields "a", matching typesystem.Alphabet.
// Canonicalize starts at 0 itself and does not read this constant.
const CanonicalAlphabetStart = 0
