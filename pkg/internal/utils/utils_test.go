package utils_test

import (
	"testing"

	"github.com/neuroline/eegstream/pkg/internal/utils"
)

func TestGenerateUniqueHashLength(t *testing.T) {
	hash := utils.GenerateUniqueHash()
	if len(hash) != 64 {
		t.Errorf("expected a 64-character hex hash, got %d characters", len(hash))
	}
}

func TestGenerateUniqueHashUniqueness(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		hash := utils.GenerateUniqueHash()
		if _, ok := seen[hash]; ok {
			t.Fatalf("duplicate hash generated: %s", hash)
		}
		seen[hash] = struct{}{}
	}
}
