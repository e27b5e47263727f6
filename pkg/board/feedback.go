package board

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Feedback carries per-item failure annotations extracted from a
// rejection comment. Indices are 1-based item numbers.
type Feedback struct {
	Narration  []int
	SFX        []int
	Assets     []int
	Videos     []int
	Composites []int
}

// Empty reports whether no annotations were found.
func (f *Feedback) Empty() bool {
	return len(f.Narration) == 0 && len(f.SFX) == 0 &&
		len(f.Assets) == 0 && len(f.Videos) == 0 && len(f.Composites) == 0
}

// clauseRe matches one annotation clause. Grammar, case-insensitive:
//
//	feedback = clause (";" clause)*
//	clause   = "bad" kind ":" int ("," int)*
//	kind     = "narration" | "sfx" | "asset(s)" | "video(s)" | "composite(s)"
//
// Example: "Bad narration: 5,12; Bad SFX: 7,9,15". Text outside this
// grammar is ignored, so reviewers can mix prose with annotations.
var clauseRe = regexp.MustCompile(`(?i)\bbad\s+(narrations?|sfx|assets?|videos?|composites?)\s*:\s*([0-9]+(?:\s*,\s*[0-9]+)*)`)

// ParseFeedback extracts failure annotations from rejection text.
func ParseFeedback(text string) (*Feedback, error) {
	fb := &Feedback{}
	for _, clause := range strings.Split(text, ";") {
		m := clauseRe.FindStringSubmatch(clause)
		if m == nil {
			continue
		}
		indices, err := parseIndices(m[2])
		if err != nil {
			return nil, err
		}
		switch strings.TrimSuffix(strings.ToLower(m[1]), "s") {
		case "narration":
			fb.Narration = append(fb.Narration, indices...)
		case "sfx":
			fb.SFX = append(fb.SFX, indices...)
		case "asset":
			fb.Assets = append(fb.Assets, indices...)
		case "video":
			fb.Videos = append(fb.Videos, indices...)
		case "composite":
			fb.Composites = append(fb.Composites, indices...)
		}
	}
	return fb, nil
}

func parseIndices(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("bad item number %q: %w", p, err)
		}
		if n < 1 {
			return nil, fmt.Errorf("item numbers are 1-based, got %d", n)
		}
		out = append(out, n)
	}
	return out, nil
}
