package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// SplitWBSID returns the numeric segments of a hierarchical WBS identifier
// like "1.2.10". Malformed segments are mapped to 0 rather than rejected,
// so identifiers from legacy data still get a stable sort position.
// An empty identifier yields a single 0 segment.
func SplitWBSID(wbsID string) []int {
	if wbsID == "" {
		return []int{0}
	}
	parts := strings.Split(wbsID, ".")
	segs := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			n = 0
		}
		segs[i] = n
	}
	return segs
}

// CompareWBSID orders two WBS identifiers by segment-wise numeric comparison,
// padding missing trailing segments with 0: "1.2" < "1.10" < "2".
// Returns -1, 0 or 1. The result is a strict total order over identifiers
// that split to distinct segment sequences, making it safe as a sort key.
func CompareWBSID(a, b string) int {
	sa, sb := SplitWBSID(a), SplitWBSID(b)
	n := len(sa)
	if len(sb) > n {
		n = len(sb)
	}
	for i := 0; i < n; i++ {
		var va, vb int
		if i < len(sa) {
			va = sa[i]
		}
		if i < len(sb) {
			vb = sb[i]
		}
		if va != vb {
			if va < vb {
				return -1
			}
			return 1
		}
	}
	return 0
}

// ValidateWBSID checks that every dot-separated segment of wbsID parses as a
// positive integer. This is the creation-time gate; comparison stays lenient.
func ValidateWBSID(wbsID string) error {
	if wbsID == "" {
		return NewError(KindInvalidIdentifier, "task", wbsID, "WBS id is required")
	}
	for _, part := range strings.Split(wbsID, ".") {
		n, err := strconv.Atoi(part)
		if err != nil || n < 1 {
			return NewError(KindInvalidIdentifier, "task", wbsID,
				fmt.Sprintf("segment %q must be a positive integer", part))
		}
	}
	return nil
}

// ParentWBSID returns the longest proper dot-prefix of wbsID, or "" for a
// top-level identifier.
func ParentWBSID(wbsID string) string {
	idx := strings.LastIndex(wbsID, ".")
	if idx < 0 {
		return ""
	}
	return wbsID[:idx]
}

// WBSDepth returns the number of segments in wbsID.
func WBSDepth(wbsID string) int {
	if wbsID == "" {
		return 0
	}
	return strings.Count(wbsID, ".") + 1
}
