package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalArchitecture(t *testing.T) {
	tests := []struct {
		pkgPath string
		want    string
		ok      bool
	}{
		{"github.com/teranos/graphkit/ir/amd64", "AMD64", true},
		{"github.com/teranos/graphkit/ir/aarch64", "aarch64", true},
		{"github.com/teranos/graphkit/ir/riscv64", "riscv64", true},
		{"aarch64", "aarch64", true},
		{"github.com/teranos/graphkit/ir", "", false},
		{"github.com/teranos/graphkit/amd64/ir", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.pkgPath, func(t *testing.T) {
			got, ok := CanonicalArchitecture(tt.pkgPath)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
