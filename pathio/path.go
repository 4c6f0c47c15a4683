package pathio

import (
	"fmt"
	"io"
	"math"

	"honnef.co/go/sketchpath"
	"honnef.co/go/sketchpath/motion"
)

type pathFile struct {
	Start  int          `json:"start,omitempty" yaml:"start,omitempty"`
	Points [][3]float64 `json:"points" yaml:"points,flow"`
}

func finite(v [3]float64) bool {
	for _, c := range v {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}

// DecodePath reads a motion path in format f. Files without a start frame
// start at frame 0.
func DecodePath(r io.Reader, f Format) (motion.MotionPath, error) {
	var pf pathFile
	if err := decode(r, f, &pf); err != nil {
		return motion.MotionPath{}, err
	}
	return pf.path()
}

func (pf pathFile) path() (motion.MotionPath, error) {
	pts := make(sketchpath.Polyline, len(pf.Points))
	for i, p := range pf.Points {
		if !finite(p) {
			return motion.MotionPath{}, fmt.Errorf("point %d: %w", i, sketchpath.ErrNonFinite)
		}
		pts[i] = sketchpath.Pt3(p[0], p[1], p[2])
	}
	return motion.MotionPath{Start: pf.Start, Points: pts}, nil
}

func newPathFile(mp motion.MotionPath) (pathFile, error) {
	pf := pathFile{
		Start:  mp.Start,
		Points: make([][3]float64, len(mp.Points)),
	}
	for i, p := range mp.Points {
		if !p.IsFinite() {
			return pathFile{}, fmt.Errorf("point %d: %w", i, sketchpath.ErrNonFinite)
		}
		x, y, z := p.Splat()
		pf.Points[i] = [3]float64{x, y, z}
	}
	return pf, nil
}

// EncodePath writes mp in format f.
func EncodePath(w io.Writer, f Format, mp motion.MotionPath) error {
	pf, err := newPathFile(mp)
	if err != nil {
		return err
	}
	return encode(w, f, pf)
}

// ReadPath reads the motion path stored in path.
func ReadPath(path string) (motion.MotionPath, error) {
	var pf pathFile
	if err := readFile(path, &pf); err != nil {
		return motion.MotionPath{}, err
	}
	mp, err := pf.path()
	if err != nil {
		return motion.MotionPath{}, fmt.Errorf("%s: %w", path, err)
	}
	return mp, nil
}

// ReadPolyline reads the points stored in path, ignoring any start frame.
func ReadPolyline(path string) (sketchpath.Polyline, error) {
	mp, err := ReadPath(path)
	return mp.Points, err
}

// WritePath writes mp to path.
func WritePath(path string, mp motion.MotionPath) error {
	pf, err := newPathFile(mp)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return writeFile(path, pf)
}

// WritePolyline writes pl to path without a start frame.
func WritePolyline(path string, pl sketchpath.Polyline) error {
	return WritePath(path, motion.MotionPath{Points: pl})
}
