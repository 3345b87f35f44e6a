package featureflags

var (
	// DecodedStringSignals collects hex, base64, url and IP address signals
	// from strings recovered by probes, such as decoded hex literals.
	DecodedStringSignals = new("DecodedStringSignals", true)

	// SuspiciousLiteralWarnings raises a suspicious-literal warning for long
	// string literals that look like packed data.
	SuspiciousLiteralWarnings = new("SuspiciousLiteralWarnings", true)

	// EscapedStringSignals records string literals written mostly with
	// escape sequences.
	EscapedStringSignals = new("EscapedStringSignals", true)
)
