package pramana

import (
	"bytes"
	"fmt"
	"math"
	"sort"
)

// CreateKeyValuePairs formats a map for log output, optionally with sorted
// keys so repeated runs produce identical reports.
func CreateKeyValuePairs(m map[string]interface{}, sorted bool) string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	if sorted {
		sort.Strings(keys)
	}
	b := new(bytes.Buffer)
	fmt.Fprint(b, "\n{\n")
	for _, key := range keys {
		fmt.Fprint(b, " ", key, ": ", m[key], ",\n")
	}
	fmt.Fprint(b, "}\n")
	return b.String()
}

func round(num float64) int {
	return int(num + math.Copysign(0.5, num))
}

// ToFixed rounds num to the given number of decimal places.
func ToFixed(num float64, precision int) float64 {
	output := math.Pow(10, float64(precision))
	return float64(round(num*output)) / output
}
