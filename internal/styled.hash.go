package internal

import (
	"hash/fnv"
	"regexp"
	"strconv"
	"strings"
)

// labelPattern matches "label: name;" declarations used to make generated
// class names readable.
var labelPattern = regexp.MustCompile(`label\s*:\s*([^\s;{}]+)\s*(;|$)`)

// Hash returns the FNV-1a 32-bit hash of s in base 36
func Hash(s string) string {
	h := fnv.New32a()
	_, _ = h.Write([]byte(s))
	return strconv.FormatUint(uint64(h.Sum32()), HashBase)
}

// ExtractLabels removes label declarations from source and returns the
// stripped source together with the labels in order of appearance.
func ExtractLabels(source string) (string, []string) {
	matches := labelPattern.FindAllStringSubmatch(source, -1)
	if len(matches) == 0 {
		return source, nil
	}
	labels := make([]string, 0, len(matches))
	for _, m := range matches {
		labels = append(labels, m[1])
	}
	return strings.TrimSpace(labelPattern.ReplaceAllString(source, StringValueEmpty)), labels
}
