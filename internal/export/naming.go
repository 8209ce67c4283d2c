package export

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"

	"steamclip/internal/clips"
)

// ManifestName is the DASH manifest Steam writes inside every recording.
const ManifestName = "session.mpd"

var nameSanitizer = strings.NewReplacer(
	"/", "-",
	"\\", "-",
	":", "-",
	"*", "-",
	"?", "-",
	"\"", "-",
	"<", "-",
	">", "-",
	"|", "-",
)

// SanitizeName converts a Steam app name into a filename-safe form: NFC
// normalized, control runes dropped, reserved path characters replaced, and
// surrounding spaces and dots trimmed.
func SanitizeName(name string) string {
	cleaned := norm.NFC.String(name)
	cleaned = strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7f {
			return -1
		}
		return r
	}, cleaned)
	cleaned = nameSanitizer.Replace(cleaned)
	return strings.Trim(cleaned, " .")
}

// OutputFileName builds the export name <game>-<date>-<time>.mp4, falling
// back to the numeric app id when the name sanitizes to nothing.
func OutputFileName(appName string, record clips.Record) string {
	base := SanitizeName(appName)
	if base == "" {
		base = strconv.FormatUint(uint64(record.AppID), 10)
	}
	return fmt.Sprintf("%s-%s-%s.mp4", base, record.Date, record.Time)
}
