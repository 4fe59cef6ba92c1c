package backend

import (
	"strings"
	"testing"
)

const spirvMagic = 0x07230203

func TestShaderSource(t *testing.T) {
	if ShaderSource(MaterialFill) != FillShaderWGSL {
		t.Error("fill material should use the fill shader")
	}
	if ShaderSource(MaterialText) != TextShaderWGSL {
		t.Error("text material should use the text shader")
	}
}

func TestCompileShaders(t *testing.T) {
	s, err := CompileShaders()
	if err != nil {
		errStr := err.Error()
		if strings.Contains(errStr, "not yet implemented") || strings.Contains(errStr, "not supported") {
			t.Skipf("Skipping: naga feature not yet implemented: %v", err)
		}
		t.Fatalf("CompileShaders() error = %v", err)
	}

	for name, words := range map[string][]uint32{"fill": s.Fill, "text": s.Text} {
		if len(words) == 0 {
			t.Errorf("%s: SPIR-V output is empty", name)
			continue
		}
		if words[0] != spirvMagic {
			t.Errorf("%s: SPIR-V magic = %#x, want %#x", name, words[0], spirvMagic)
		}
	}
}
