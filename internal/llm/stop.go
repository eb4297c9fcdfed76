// ABOUTME: Stop-sequence truncation helper
// ABOUTME: Cuts generated text at the earliest occurrence of any stop marker
package llm

import "strings"

// TruncateAtStop returns text cut at the earliest occurrence of any stop
// sequence. Markers that never occur are ignored; no markers means no cut.
func TruncateAtStop(text string, stops []string) string {
	earliest := len(text)
	for _, stop := range stops {
		if stop == "" {
			continue
		}
		if idx := strings.Index(text, stop); idx != -1 && idx < earliest {
			earliest = idx
		}
	}
	return text[:earliest]
}
