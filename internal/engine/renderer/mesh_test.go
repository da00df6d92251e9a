package renderer

import (
	"reflect"
	"strings"
	"testing"
)

var posColor = Layout{
	{Location: 0, Components: 3},
	{Location: 1, Components: 3},
}

func TestLayout(t *testing.T) {
	if got := posColor.Floats(); got != 6 {
		t.Errorf("expected 6 floats per vertex, got %d", got)
	}
	if got := posColor.Stride(); got != 24 {
		t.Errorf("expected stride 24, got %d", got)
	}
	if got := posColor.Offsets(); !reflect.DeepEqual(got, []int{0, 12}) {
		t.Errorf("expected offsets [0 12], got %v", got)
	}
}

func TestValidate(t *testing.T) {
	pos := Layout{{Location: 0, Components: 3}}
	quad := []float32{
		0.5, 0.5, 0, 0.5, -0.5, 0,
		-0.5, -0.5, 0, -0.5, 0.5, 0,
	}

	tests := []struct {
		name      string
		vertices  []float32
		indices   []uint32
		layout    Layout
		wantCount int
		wantErr   string
	}{
		{name: "indexed quad", vertices: quad, indices: []uint32{0, 1, 3, 1, 2, 3}, layout: pos, wantCount: 4},
		{name: "no indices", vertices: quad[:9], layout: pos, wantCount: 3},
		{name: "empty layout", vertices: quad, layout: nil, wantErr: "empty vertex layout"},
		{name: "no vertices", layout: pos, wantErr: "no vertices"},
		{name: "ragged", vertices: quad[:7], layout: pos, wantErr: "not a multiple"},
		{name: "index out of range", vertices: quad, indices: []uint32{0, 4}, layout: pos, wantErr: "out of range"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			count, err := validate(tt.vertices, tt.indices, tt.layout)
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("expected error containing %q, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if count != tt.wantCount {
				t.Errorf("expected %d vertices, got %d", tt.wantCount, count)
			}
		})
	}
}
