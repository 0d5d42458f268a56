package diag

import (
	"fmt"
	"sort"
	"strconv"
	"sync"
)

// The registry maps published codes back to their descriptions so the
// CLI can explain any code a user pastes from a diagnostic or a
// documentation URL. Families register themselves at init time.

var (
	registryMu sync.RWMutex
	registry   = make(map[string]map[int]string) // prefix -> index -> description
)

// RegisterFamily records the descriptions of an error family's variants
// under its prefix. Registering the same prefix twice panics: prefixes
// are part of the public code space and must be claimed exactly once.
func RegisterFamily(prefix string, descriptions map[int]string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	if _, exists := registry[prefix]; exists {
		panic(fmt.Sprintf("diag: error family %q registered twice", prefix))
	}
	family := make(map[int]string, len(descriptions))
	for index, desc := range descriptions {
		family[index] = desc
	}
	registry[prefix] = family
}

// Describe resolves a published code like "RI0001" to its description.
func Describe(code string) (string, bool) {
	prefix, index, ok := splitCode(code)
	if !ok {
		return "", false
	}
	registryMu.RLock()
	defer registryMu.RUnlock()
	family, ok := registry[prefix]
	if !ok {
		return "", false
	}
	desc, ok := family[index]
	return desc, ok
}

// Codes returns every registered code in sorted order.
func Codes() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	out := make([]string, 0)
	for prefix, family := range registry {
		for index := range family {
			out = append(out, fmt.Sprintf("%s%0*d", prefix, CodeDigits, index))
		}
	}
	sort.Strings(out)
	return out
}

// splitCode separates a code into its alphabetic prefix and numeric
// index. The index part must be exactly CodeDigits digits.
func splitCode(code string) (prefix string, index int, ok bool) {
	cut := len(code) - CodeDigits
	if cut < 1 {
		return "", 0, false
	}
	prefix, digits := code[:cut], code[cut:]
	for _, r := range prefix {
		if r < 'A' || r > 'Z' {
			return "", 0, false
		}
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return "", 0, false
		}
	}
	index, err := strconv.Atoi(digits)
	if err != nil {
		return "", 0, false
	}
	return prefix, index, true
}
