package cli

// ANSI color codes for terminal output.
const (
	ColorReset  = "\033[0m"
	ColorRed    = "\033[31m"
	ColorGreen  = "\033[32m"
	ColorYellow = "\033[33m"
)

// Colors controls whether FormatStatus emits ANSI codes.
var Colors = true

// FormatStatus returns a colored status string.
func FormatStatus(status string) string {
	if !Colors {
		return status
	}
	switch status {
	case "valid", "accepted":
		return ColorGreen + status + ColorReset
	case "invalid", "rejected":
		return ColorRed + status + ColorReset
	case "empty":
		return ColorYellow + status + ColorReset
	default:
		return status
	}
}
