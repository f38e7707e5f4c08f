package shaders

import (
	"strings"
	"testing"
)

func TestSourcesEmbedded(t *testing.T) {
	for name, src := range map[string]string{
		"vertex":   SimpleVertexShader,
		"fragment": SimpleFragmentShader,
	} {
		if !strings.HasPrefix(src, "#version 410 core") {
			t.Errorf("%s shader missing version header", name)
		}
	}

	for _, ident := range []string{"Position", "SourceColor", "Projection", "ModelView"} {
		if !strings.Contains(SimpleVertexShader, ident) {
			t.Errorf("vertex shader does not declare %s", ident)
		}
	}
}
