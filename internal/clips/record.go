// Package clips discovers Steam game-recording clip folders and models the
// naming grammar they follow.
package clips

import (
	"sort"
	"strconv"
	"strings"
	"time"
)

const (
	clipPrefix      = "fg_"
	containerPrefix = "clip_"

	dateDigits = 8
	timeDigits = 6
)

// Record describes one discovered clip folder.
type Record struct {
	// Dir is the clip folder path as assembled during the scan.
	Dir string
	// AppID is the owning game's numeric identifier.
	AppID uint32
	// Date and Time carry the digit groups from the folder name verbatim
	// (YYYYMMDD and HHMMSS). They are not validated as calendar values.
	Date string
	Time string
}

// StartTime interprets the record's digit groups as a UTC instant. Folder
// names with impossible calendar values fail here rather than at parse
// time, so discovery stays purely lexical.
func (r Record) StartTime() (time.Time, error) {
	return time.Parse("20060102150405", r.Date+r.Time)
}

// ParseClipName matches folder names of the form fg_<appid>_<date>_<time>.
// The appid must be a nonzero base-10 value that fits in 32 bits; the date
// and time groups must be exactly 8 and 6 digits. Anything else is not a
// clip folder.
func ParseClipName(name string) (appID uint32, date, timeOfDay string, ok bool) {
	id, date, timeOfDay, ok := splitGrammar(name, clipPrefix)
	if !ok {
		return 0, "", "", false
	}
	parsed, err := strconv.ParseUint(id, 10, 32)
	if err != nil || parsed == 0 {
		return 0, "", "", false
	}
	return uint32(parsed), date, timeOfDay, true
}

// IsContainerName matches the outer per-recording folder grammar
// clip_<digits>_<date>_<time>. The leading digit run is not range-checked.
func IsContainerName(name string) bool {
	_, _, _, ok := splitGrammar(name, containerPrefix)
	return ok
}

// splitGrammar tokenizes <prefix><digits>_<8 digits>_<6 digits> with no
// trailing characters. It is anchored at both ends.
func splitGrammar(name, prefix string) (id, date, timeOfDay string, ok bool) {
	rest, found := strings.CutPrefix(name, prefix)
	if !found {
		return "", "", "", false
	}
	id, rest, found = strings.Cut(rest, "_")
	if !found || !allDigits(id) || id == "" {
		return "", "", "", false
	}
	date, timeOfDay, found = strings.Cut(rest, "_")
	if !found {
		return "", "", "", false
	}
	if len(date) != dateDigits || !allDigits(date) {
		return "", "", "", false
	}
	if len(timeOfDay) != timeDigits || !allDigits(timeOfDay) {
		return "", "", "", false
	}
	return id, date, timeOfDay, true
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// Filter keeps only records whose AppID appears in ids. An empty ids
// slice keeps everything.
func Filter(records []Record, ids []uint32) []Record {
	if len(ids) == 0 {
		return records
	}
	allowed := make(map[uint32]struct{}, len(ids))
	for _, id := range ids {
		allowed[id] = struct{}{}
	}
	kept := records[:0]
	for _, rec := range records {
		if _, ok := allowed[rec.AppID]; ok {
			kept = append(kept, rec)
		}
	}
	return kept
}

// SortByDir orders records by folder path so runs over the same tree are
// deterministic regardless of directory read order.
func SortByDir(records []Record) {
	sort.Slice(records, func(i, j int) bool {
		return records[i].Dir < records[j].Dir
	})
}
