package render

import (
	"errors"
	"math"
	"testing"

	"github.com/taigrr/asciicube/pkg/math3d"
)

func TestProjectCenter(t *testing.T) {
	p := NewProjector(60, 30, 10)

	got, err := p.Project(math3d.V3(0, 0, 0))
	if err != nil {
		t.Fatalf("Project: %v", err)
	}
	if got != math3d.V2(30, 15) {
		t.Errorf("origin projects to %v, want (30, 15)", got)
	}
	if p.Center() != got {
		t.Errorf("Center() = %v, want %v", p.Center(), got)
	}
}

func TestProjectAroundShiftedCenter(t *testing.T) {
	p := NewProjector(60, 30, 10)
	p.OffsetX, p.OffsetY = 3, -2

	if c := p.Center(); c != math3d.V2(33, 13) {
		t.Fatalf("Center() = %v, want (33, 13)", c)
	}
	got, err := p.Project(math3d.V3(0.5, 0.5, 0))
	if err != nil {
		t.Fatalf("Project: %v", err)
	}
	if want := math3d.V2(33+15, 13-7.5); got != want {
		t.Errorf("Project = %v, want %v", got, want)
	}
}

func TestProjectCubeCorners(t *testing.T) {
	p := NewProjector(60, 30, 10)
	tests := []struct {
		name string
		in   math3d.Vec3
		x, y float64
	}{
		// factor = 10 / 9.5
		{"near bottom left", math3d.V3(-0.5, -0.5, -0.5), 30 - 15*10/9.5, 15 + 7.5*10/9.5},
		{"near top right", math3d.V3(0.5, 0.5, -0.5), 30 + 15*10/9.5, 15 - 7.5*10/9.5},
		// factor = 10 / 10.5
		{"far bottom left", math3d.V3(-0.5, -0.5, 0.5), 30 - 15*10/10.5, 15 + 7.5*10/10.5},
		{"far top right", math3d.V3(0.5, 0.5, 0.5), 30 + 15*10/10.5, 15 - 7.5*10/10.5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := p.Project(tc.in)
			if err != nil {
				t.Fatalf("Project: %v", err)
			}
			if math.Abs(got.X-tc.x) > 1e-9 || math.Abs(got.Y-tc.y) > 1e-9 {
				t.Errorf("Project(%v) = %v, want (%v, %v)", tc.in, got, tc.x, tc.y)
			}
		})
	}
}

func TestProjectNearerIsLarger(t *testing.T) {
	p := NewProjector(60, 30, 10)
	near, _ := p.Project(math3d.V3(0.5, 0, -0.5))
	far, _ := p.Project(math3d.V3(0.5, 0, 0.5))
	if near.X <= far.X {
		t.Errorf("near x %v should be further from center than far x %v", near.X, far.X)
	}
}

func TestProjectOffset(t *testing.T) {
	p := NewProjector(60, 30, 10)
	p.OffsetX = 4
	p.OffsetY = -2

	got, err := p.Project(math3d.V3(0, 0, 3))
	if err != nil {
		t.Fatalf("Project: %v", err)
	}
	if got != math3d.V2(34, 13) {
		t.Errorf("Project = %v, want (34, 13)", got)
	}
}

func TestProjectDegenerate(t *testing.T) {
	tests := []struct {
		name string
		zoom float64
		in   math3d.Vec3
	}{
		{"zero denominator", 10, math3d.V3(1, 1, -10)},
		{"below threshold", 0.5, math3d.V3(0, 0, -0.5+1e-9)},
		{"zero zoom at z=0", 0, math3d.V3(0.2, 0.3, 0)},
		{"nan", 10, math3d.V3(0, 0, math.NaN())},
		{"infinite x", 10, math3d.V3(math.Inf(1), 0, 0)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := NewProjector(60, 30, tc.zoom)
			_, err := p.Project(tc.in)
			if !errors.Is(err, ErrDegenerateProjection) {
				t.Errorf("err = %v, want ErrDegenerateProjection", err)
			}
		})
	}
}

func TestProjectBehindViewerStaysFinite(t *testing.T) {
	p := NewProjector(60, 30, 10)
	got, err := p.Project(math3d.V3(1, 1, -20))
	if err != nil {
		t.Fatalf("Project: %v", err)
	}
	if !got.IsFinite() {
		t.Errorf("Project = %v, want finite", got)
	}
}
