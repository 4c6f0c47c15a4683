package pathio

import (
	"fmt"
	"io"

	"honnef.co/go/sketchpath"
	"honnef.co/go/sketchpath/config"
	"honnef.co/go/sketchpath/motion"
)

// Rotations in armature files are Euler angles in degrees, applied about x,
// then y, then z.

type transformFile struct {
	Location [3]float64  `json:"location" yaml:"location,flow"`
	Rotation [3]float64  `json:"rotation" yaml:"rotation,flow"`
	Scale    *[3]float64 `json:"scale,omitempty" yaml:"scale,flow,omitempty"`
}

type keyFile struct {
	Frame    int        `json:"frame" yaml:"frame"`
	Location [3]float64 `json:"location" yaml:"location,flow"`
	Rotation [3]float64 `json:"rotation" yaml:"rotation,flow"`
}

type boneFile struct {
	Name   string     `json:"name" yaml:"name"`
	Parent string     `json:"parent,omitempty" yaml:"parent,omitempty"`
	Head   [3]float64 `json:"head" yaml:"head,flow"`
	Keys   []keyFile  `json:"keys,omitempty" yaml:"keys,omitempty"`
}

type armatureFile struct {
	World transformFile `json:"world" yaml:"world"`
	Bones []boneFile    `json:"bones" yaml:"bones"`
}

func vec(v [3]float64) sketchpath.Vec3 {
	return sketchpath.Vec(v[0], v[1], v[2])
}

func (tf transformFile) affine() (sketchpath.Affine3, error) {
	scale := [3]float64{1, 1, 1}
	if tf.Scale != nil {
		scale = *tf.Scale
	}
	for _, v := range [][3]float64{tf.Location, tf.Rotation, scale} {
		if !finite(v) {
			return sketchpath.Affine3{}, sketchpath.ErrNonFinite
		}
	}
	aff := sketchpath.Scale3(scale[0], scale[1], scale[2]).
		ThenRotate(config.Euler(tf.Rotation[0], tf.Rotation[1], tf.Rotation[2])).
		ThenTranslate(vec(tf.Location))
	if aff.Determinant() == 0 {
		return sketchpath.Affine3{}, fmt.Errorf("scale %v is singular", scale)
	}
	return aff, nil
}

func (af armatureFile) armature() (*motion.Armature, error) {
	world, err := af.World.affine()
	if err != nil {
		return nil, fmt.Errorf("world: %w", err)
	}
	arm := &motion.Armature{World: world}
	for _, bf := range af.Bones {
		if bf.Name == "" {
			return nil, fmt.Errorf("bone %d has no name", len(arm.Bones))
		}
		if !finite(bf.Head) {
			return nil, fmt.Errorf("bone %q: head: %w", bf.Name, sketchpath.ErrNonFinite)
		}
		b := &motion.Bone{
			Name:   bf.Name,
			Parent: bf.Parent,
			Head:   vec(bf.Head),
		}
		for _, kf := range bf.Keys {
			if !finite(kf.Location) || !finite(kf.Rotation) {
				return nil, fmt.Errorf("bone %q: key at frame %d: %w", bf.Name, kf.Frame, sketchpath.ErrNonFinite)
			}
			b.Track.Keys = append(b.Track.Keys, motion.Key{
				Frame:    kf.Frame,
				Location: vec(kf.Location),
				Rotation: config.Euler(kf.Rotation[0], kf.Rotation[1], kf.Rotation[2]),
			})
		}
		b.Track.Sort()
		arm.Bones = append(arm.Bones, b)
	}
	if err := arm.Validate(); err != nil {
		return nil, err
	}
	return arm, nil
}

// DecodeArmature reads an armature description in format f.
func DecodeArmature(r io.Reader, f Format) (*motion.Armature, error) {
	var af armatureFile
	if err := decode(r, f, &af); err != nil {
		return nil, err
	}
	return af.armature()
}

// ReadArmature reads the armature description stored in path.
func ReadArmature(path string) (*motion.Armature, error) {
	var af armatureFile
	if err := readFile(path, &af); err != nil {
		return nil, err
	}
	arm, err := af.armature()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return arm, nil
}
