package sketchpath_test

import (
	"fmt"

	"honnef.co/go/sketchpath"
)

func ExampleRetarget() {
	// A bone moves two units along x over the animation.
	reference := sketchpath.Polyline{
		sketchpath.Pt3(0, 0, 0),
		sketchpath.Pt3(2, 0, 0),
	}
	// The user drew a shorter stroke, one unit closer to the camera.
	sketch := sketchpath.Polyline{
		sketchpath.Pt3(0, 0, 1),
		sketchpath.Pt3(0.5, 0, 1),
		sketchpath.Pt3(1, 0, 1),
	}
	eye := sketchpath.Pt3(0, 0, 5)

	out, err := sketchpath.Retarget(reference, sketch, eye)
	if err != nil {
		panic(err)
	}
	for _, p := range out {
		fmt.Printf("(%.3f, %.3f, %.3f)\n", p.X, p.Y, p.Z)
	}
	// Output:
	// (0.000, 0.000, 0.000)
	// (0.631, 0.000, -0.046)
	// (1.294, 0.000, -0.176)
}

func ExampleSampleAt() {
	path := sketchpath.Polyline{
		sketchpath.Pt3(0, 0, 0),
		sketchpath.Pt3(3, 0, 0),
		sketchpath.Pt3(3, 1, 0),
	}
	idx := sketchpath.BuildArclenIndex(path)
	fmt.Println(idx.Lengths, idx.Total)
	fmt.Println(sketchpath.SampleAt(path, idx, 0.5))
	fmt.Println(sketchpath.SampleAt(path, idx, 0.875))
	// Output:
	// [0 3 4] 4
	// (2, 0, 0)
	// (3, 0.5, 0)
}
