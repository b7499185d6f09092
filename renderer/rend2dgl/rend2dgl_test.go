package rend2dgl

import (
	"bytes"
	"testing"

	"github.com/albertgoncalves/pathrs/geom"
	"github.com/albertgoncalves/pathrs/shaders"
)

// An empty batch must return before touching any device state, so this is
// safe on a zero-value renderer with no GL context.
func TestDrawQuadsEmptyBatchIsNoOp(t *testing.T) {

	r := &QuadRenderer{}
	tr := geom.NewTransform()

	if err := r.DrawQuads(nil, &tr); err != nil {
		t.Fatalf("empty batch returned %v", err)
	}
	if err := r.DrawQuads([]geom.Instance{}, &tr); err != nil {
		t.Fatalf("zero-length batch returned %v", err)
	}
}

func TestPackQuadVertices(t *testing.T) {

	packed := packQuadVertices()

	if len(packed) != len(geom.QuadVertices)*2 {
		t.Fatalf("packed %d floats, want %d", len(packed), len(geom.QuadVertices)*2)
	}

	for i, v := range geom.QuadVertices {
		if packed[i*2] != v.Data[0] || packed[i*2+1] != v.Data[1] {
			t.Fatalf("corner %d packed as (%f, %f), want (%f, %f)",
				i, packed[i*2], packed[i*2+1], v.Data[0], v.Data[1])
		}
	}
}

func TestEmbeddedShaderHasBothStages(t *testing.T) {

	stages, err := shaders.SplitCombinedShaderSrc(quadShaderSrc)
	if err != nil {
		t.Fatalf("embedded shader failed to split: %v", err)
	}

	var haveVert, haveFrag bool
	for _, s := range stages {
		switch s.Type {
		case shaders.ShaderType_Vertex:
			haveVert = true

			// The attribute interface the instance layout is built against.
			for _, attr := range []string{"position", "translate", "scale", "color", "projection", "view"} {
				if !bytes.Contains(s.Src, []byte(attr)) {
					t.Fatalf("vertex stage is missing %q", attr)
				}
			}

		case shaders.ShaderType_Fragment:
			haveFrag = true
			if !bytes.Contains(s.Src, []byte("color_vert")) {
				t.Fatal("fragment stage does not read color_vert")
			}
		}
	}

	if !haveVert || !haveFrag {
		t.Fatalf("vertex=%v fragment=%v, want both", haveVert, haveFrag)
	}
}
