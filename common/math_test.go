package common

import (
	"testing"

	"github.com/chewxy/math32"
)

func matrixNear(t *testing.T, got, want []float32, tolerance float32, name string) {
	t.Helper()
	for i := range want {
		if math32.Abs(got[i]-want[i]) > tolerance {
			t.Fatalf("%s[%d] = %v, want %v", name, i, got[i], want[i])
		}
	}
}

func TestIdentity(t *testing.T) {
	m := []float32{
		2, 3, 4, 5,
		6, 7, 8, 9,
		1, 2, 3, 4,
		5, 6, 7, 8,
	}
	Identity(m)

	want := []float32{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
	matrixNear(t, m, want, 0, "identity")
}

func TestPerspectiveDepthRange(t *testing.T) {
	out := make([]float32, 16)
	Perspective(out, 1.5707964, 1, 1, 101)

	// A point on the near plane maps to clip z/w = 0, a point on the far
	// plane to 1.
	nearZ := out[10]*-1 + out[14]
	nearW := out[11] * -1
	if math32.Abs(nearZ/nearW) > 1e-6 {
		t.Fatalf("near plane depth = %v, want 0", nearZ/nearW)
	}

	farZ := out[10]*-101 + out[14]
	farW := out[11] * -101
	if math32.Abs(farZ/farW-1) > 1e-6 {
		t.Fatalf("far plane depth = %v, want 1", farZ/farW)
	}
}

func TestPerspectiveAspectScalesHorizontal(t *testing.T) {
	out := make([]float32, 16)
	Perspective(out, 1.5707964, 2, 0.1, 100)

	// f = 1/tan(fov/2) = 1 for a 90 degree field of view.
	if math32.Abs(out[0]-0.5) > 1e-6 {
		t.Fatalf("out[0] = %v, want 0.5", out[0])
	}
	if math32.Abs(out[5]-1) > 1e-6 {
		t.Fatalf("out[5] = %v, want 1", out[5])
	}
	if out[11] != -1 || out[15] != 0 {
		t.Fatalf("out[11] = %v, out[15] = %v, want -1 and 0", out[11], out[15])
	}
}

func TestBuildModelMatrixTranslationOnly(t *testing.T) {
	out := make([]float32, 16)
	BuildModelMatrix(out, 3, -2, 7, 0, 0, 0, 1, 1, 1)

	want := []float32{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		3, -2, 7, 1,
	}
	matrixNear(t, out, want, 1e-6, "model matrix")
}

func TestBuildModelMatrixScale(t *testing.T) {
	out := make([]float32, 16)
	BuildModelMatrix(out, 0, 0, 0, 0, 0, 0, 2, 3, 4)

	if out[0] != 2 || out[5] != 3 || out[10] != 4 {
		t.Fatalf("diagonal = %v %v %v, want 2 3 4", out[0], out[5], out[10])
	}
}

func TestBuildModelMatrixYawRotatesAboutY(t *testing.T) {
	out := make([]float32, 16)
	BuildModelMatrix(out, 0, 0, 0, 0, math32.Pi/2, 0, 1, 1, 1)

	// A 90 degree yaw sends local +X to world -Z.
	if math32.Abs(out[0]) > 1e-6 || math32.Abs(out[2]+1) > 1e-6 {
		t.Fatalf("rotated X axis = (%v, %v, %v), want (0, 0, -1)", out[0], out[1], out[2])
	}
}
