// Package motion produces reference paths from animated armatures.
//
// A reference path is the world-space trajectory of one bone, sampled once per
// frame over a [FrameRange]. [Sampler] evaluates an [Armature]'s keyframed
// bones to produce it; [MotionPath] caches the result together with the frame
// it starts at, so that a sub-range can be displayed or retargeted against
// without evaluating the armature again.
//
// Both implement [ReferenceSource], the capability retargeting depends on.
package motion
