package staticanalysis

// EscapedString holds a string literal that contains a lot of character escaping.
// This may indicate obfuscation.
type EscapedString struct {
	Value           string `json:"value"`
	Raw             string `json:"raw"`
	LevenshteinDist int    `json:"levenshtein_dist"`
}

// StringSignals collects substrings of interest found in analysed strings.
type StringSignals struct {
	HexStrings     []string        `json:"hex_strings,omitempty"`
	Base64Strings  []string        `json:"base64_strings,omitempty"`
	URLs           []string        `json:"urls,omitempty"`
	IPAddresses    []string        `json:"ip_addresses,omitempty"`
	EscapedStrings []EscapedString `json:"escaped_strings,omitempty"`
}
