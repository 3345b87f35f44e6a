package detections

import (
	"fmt"
	"net"
	"regexp"
)

// digits0_255 matches decimal numbers from 0-255
var digits0_255 = regexp.MustCompile(`(?:25[0-5]|(?:2[0-4]|1[0-9]|[1-9]|)[0-9])`)

var ipv4Regexp = regexp.MustCompile(fmt.Sprintf(`\b%s(?:\.%s){3}\b`, digits0_255, digits0_255))

// ipv6Candidate is deliberately loose; candidates are checked with net.ParseIP.
var ipv6Candidate = regexp.MustCompile(`(?:[[:xdigit:]]{0,4}:){2,7}[[:xdigit:]]{0,4}`)

var hostChars = `[\p{L}\p{N}\p{S}_-]`

// urlRegexp matches http(s), ws(s) and ftp urls with a dotted host, or an IPv4 or bracketed IPv6 host.
var urlRegexp = regexp.MustCompile(fmt.Sprintf(
	`(?i:https?|wss?|ftp)://(?:%s+(?:\.%s+)*\.\p{L}+|%s|\[[[:xdigit:]:.]+\])(?::\d+)?(?:/\S*)?(?:\?\S*)?`,
	hostChars, hostChars, ipv4Regexp))

// FindURLs returns all urls found in s.
func FindURLs(s string) []string {
	return urlRegexp.FindAllString(s, -1)
}

// FindIPAddresses returns all IPv4 and IPv6 addresses found in s.
func FindIPAddresses(s string) []string {
	addresses := ipv4Regexp.FindAllString(s, -1)
	for _, candidate := range ipv6Candidate.FindAllString(s, -1) {
		if ip := net.ParseIP(candidate); ip != nil && ip.To4() == nil {
			addresses = append(addresses, candidate)
		}
	}
	return addresses
}
