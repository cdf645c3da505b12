// flags.go defines constants for all CLI flag names.
//
// Naming convention: Flag<PascalCaseName> where name matches the kebab-case
// CLI flag (e.g., "dry-run" -> FlagDryRun).

package extension

// Flag name constants for CLI commands.
const (
	FlagDryRun  = "dry-run" // Preview without making changes
	FlagLiteral = "literal" // Match tags literally rather than as patterns
	FlagLocal   = "local"   // Use local config scope
	FlagName    = "name"    // Glob filter on paths relative to the search root
	FlagPaths   = "paths"   // Only print matching paths
)
