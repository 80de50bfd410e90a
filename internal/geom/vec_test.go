package geom

import (
	"encoding/json"
	"testing"
)

func TestClampIdempotent(t *testing.T) {
	b := Boundary{Min: Vec3{X: -300, Y: -300}, Max: Vec3{X: 300, Y: 300}}
	points := []Vec3{
		{X: 0, Y: 0},
		{X: 301, Y: 0},
		{X: -1000, Y: 1000},
		{X: 299.5, Y: -300.25},
		{X: 300, Y: 300, Z: 5},
	}
	for _, p := range points {
		once := b.Clamp(p)
		twice := b.Clamp(once)
		if once != twice {
			t.Fatalf("Clamp not idempotent for %+v: once=%+v twice=%+v", p, once, twice)
		}
		if once.X < b.Min.X || once.X > b.Max.X || once.Y < b.Min.Y || once.Y > b.Max.Y {
			t.Fatalf("Clamp(%+v) = %+v lies outside %+v", p, once, b)
		}
	}
}

func TestClampPerAxis(t *testing.T) {
	b := Boundary{Min: Vec3{X: -10, Y: -5}, Max: Vec3{X: 10, Y: 5}}
	tests := []struct {
		name string
		in   Vec3
		want Vec3
	}{
		{name: "inside", in: Vec3{X: 3, Y: -2}, want: Vec3{X: 3, Y: -2}},
		{name: "past max x only", in: Vec3{X: 11, Y: 4}, want: Vec3{X: 10, Y: 4}},
		{name: "below min y only", in: Vec3{X: -3, Y: -9}, want: Vec3{X: -3, Y: -5}},
		{name: "corner", in: Vec3{X: -20, Y: 20}, want: Vec3{X: -10, Y: 5}},
		{name: "z untouched", in: Vec3{X: 0, Y: 0, Z: 7}, want: Vec3{X: 0, Y: 0, Z: 7}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := b.Clamp(tc.in); got != tc.want {
				t.Fatalf("Clamp(%+v) = %+v, want %+v", tc.in, got, tc.want)
			}
		})
	}
}

func TestVec3UnmarshalForms(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    Vec3
		wantErr bool
	}{
		{name: "array", raw: `[1, 2.5, -3]`, want: Vec3{X: 1, Y: 2.5, Z: -3}},
		{name: "object", raw: `{"x": 4, "y": 5, "z": 6}`, want: Vec3{X: 4, Y: 5, Z: 6}},
		{name: "object partial", raw: `{"x": 4}`, want: Vec3{X: 4}},
		{name: "short array", raw: `[1, 2]`, wantErr: true},
		{name: "garbage", raw: `"up"`, wantErr: true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var v Vec3
			err := json.Unmarshal([]byte(tc.raw), &v)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error for %s, got %+v", tc.raw, v)
				}
				return
			}
			if err != nil {
				t.Fatalf("unmarshal %s: %v", tc.raw, err)
			}
			if v != tc.want {
				t.Fatalf("got %+v, want %+v", v, tc.want)
			}
		})
	}
}

func TestAddScale(t *testing.T) {
	got := Vec3{X: 1, Y: 2}.Add(Vec3{X: 0, Y: -1}.Scale(5))
	want := Vec3{X: 1, Y: -3}
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}
