package utils

import (
	"strings"
	"testing"
)

func TestGenerateShareCode(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		code, err := GenerateShareCode()
		if err != nil {
			t.Fatalf("GenerateShareCode: %v", err)
		}
		if len(code) != ShareCodeLength {
			t.Fatalf("len = %d, want %d", len(code), ShareCodeLength)
		}
		for _, c := range code {
			if !strings.ContainsRune(codeCharset, c) {
				t.Fatalf("code %q contains %q outside charset", code, c)
			}
		}
		if seen[code] {
			t.Fatalf("duplicate code %q in 100 draws", code)
		}
		seen[code] = true
	}
}
