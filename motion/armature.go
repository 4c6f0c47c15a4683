package motion

import (
	"errors"
	"fmt"

	"honnef.co/go/sketchpath"
)

var (
	// ErrUnknownBone is returned when a bone name does not exist in an
	// armature.
	ErrUnknownBone = errors.New("motion: unknown bone")
	// ErrCycle is returned when bones are their own ancestors.
	ErrCycle = errors.New("motion: bone hierarchy contains a cycle")
)

// Bone is a keyframed node of an armature's hierarchy.
type Bone struct {
	Name string
	// Parent names the parent bone. Root bones have no parent.
	Parent string
	// Head is the bone's rest position in its parent's space.
	Head sketchpath.Vec3
	// Track animates the bone relative to its rest position.
	Track Track
}

// Local returns the bone's transform relative to its parent at frame.
func (b *Bone) Local(frame float64) sketchpath.Affine3 {
	loc, rot := b.Track.Eval(frame)
	return sketchpath.Rotate3(rot).WithTranslation(b.Head.Add(loc))
}

// Armature is a hierarchy of bones placed in the world by an object
// transform.
type Armature struct {
	World sketchpath.Affine3
	Bones []*Bone
}

// Bone returns the bone called name.
func (a *Armature) Bone(name string) (*Bone, bool) {
	for _, b := range a.Bones {
		if b.Name == name {
			return b, true
		}
	}
	return nil, false
}

// PoseMatrix returns the world-space transform of the bone called name at
// frame: the armature's world transform followed by every ancestor's local
// transform, outermost first.
func (a *Armature) PoseMatrix(name string, frame float64) (sketchpath.Affine3, error) {
	chain, err := a.chain(name)
	if err != nil {
		return sketchpath.Affine3{}, err
	}
	m := a.World
	for i := len(chain) - 1; i >= 0; i-- {
		m = m.Mul(chain[i].Local(frame))
	}
	return m, nil
}

// chain returns the bone called name followed by its ancestors.
func (a *Armature) chain(name string) ([]*Bone, error) {
	var out []*Bone
	seen := map[string]bool{}
	for name != "" {
		if seen[name] {
			return nil, fmt.Errorf("bone %q: %w", name, ErrCycle)
		}
		seen[name] = true
		b, ok := a.Bone(name)
		if !ok {
			return nil, fmt.Errorf("bone %q: %w", name, ErrUnknownBone)
		}
		out = append(out, b)
		name = b.Parent
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("bone %q: %w", name, ErrUnknownBone)
	}
	return out, nil
}

// Validate checks that every bone's ancestry resolves.
func (a *Armature) Validate() error {
	for _, b := range a.Bones {
		if _, err := a.chain(b.Name); err != nil {
			return err
		}
	}
	return nil
}
