package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"honnef.co/go/sketchpath"
	"honnef.co/go/sketchpath/config"
	"honnef.co/go/sketchpath/motion"
	"honnef.co/go/sketchpath/pathio"
	"honnef.co/go/sketchpath/render"
	"honnef.co/go/sketchpath/session"
)

func (a *app) sampleCmd() *cobra.Command {
	var bone string
	var start, end int
	cmd := &cobra.Command{
		Use:   "sample ARMATURE OUTPUT",
		Short: "Sample a bone's world positions into a reference path",
		Long: `Sample evaluates the world position of a bone at every frame of the
scene and writes the resulting motion path. The armature and the output are
JSON or YAML files, chosen by extension.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			arm, err := pathio.ReadArmature(args[0])
			if err != nil {
				return err
			}
			r := a.cfg.Scene.Range()
			if cmd.Flags().Changed("start") {
				r.Start = start
			}
			if cmd.Flags().Changed("end") {
				r.End = end
			}
			if bone == "" {
				bone = a.cfg.Scene.Bone
			}
			src := &motion.Sampler{Armature: arm, Bone: bone, Logger: a.log}
			mp, err := motion.Cache(src, r)
			if err != nil {
				return err
			}
			if err := pathio.WritePath(args[1], mp); err != nil {
				return err
			}
			a.status("sampled %q over frames %s: %d points, length %.4g", bone, r, len(mp.Points), mp.Points.Length())
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVarP(&bone, "bone", "b", "", "bone to sample (default from configuration)")
	f.IntVar(&start, "start", 0, "first frame (default from configuration)")
	f.IntVar(&end, "end", 0, "last frame (default from configuration)")
	return cmd
}

func (a *app) retargetCmd() *cobra.Command {
	var full bool
	cmd := &cobra.Command{
		Use:   "retarget REFERENCE SKETCH OUTPUT",
		Short: "Retarget a sketched stroke onto a reference path",
		Long: `Retarget moves every point of the sketched stroke along its line of sight
through the configured view, to the depth of the reference path at the same
fraction of arc length.

Unless --full is given, only the part of the reference path shown by the
timeline around the current frame is used.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			mp, err := pathio.ReadPath(args[0])
			if err != nil {
				return err
			}
			sketch, err := pathio.ReadPolyline(args[1])
			if err != nil {
				return err
			}
			var ref sketchpath.Polyline
			if full {
				ref = mp.Points
			} else {
				tl := a.timeline(mp.Range())
				a.log.Debug("timeline", "frames", tl.View().String(), "current", tl.Current)
				if ref, err = a.reference(mp, tl); err != nil {
					return err
				}
			}
			v := a.cfg.View.View()
			out, err := sketchpath.RetargetWith(ref, sketch, v.Reprojector())
			if err != nil {
				return err
			}
			if err := pathio.WritePolyline(args[2], out); err != nil {
				return err
			}
			a.log.Info("retargeted", "points", len(out), "reference_points", len(ref))
			a.status("retargeted %d points onto %d reference points", len(out), len(ref))
			return nil
		},
	}
	cmd.Flags().BoolVar(&full, "full", false, "use the whole reference path")
	return cmd
}

func (a *app) replayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "replay ARMATURE EVENTS OUTPUT",
		Short: "Replay recorded input events and write the finished stroke",
		Long: `Replay drives a sketching session with recorded input events: pointer
presses, moves and releases, frame changes and wheel steps. When the stroke is
finalized it is retargeted onto the configured bone's motion path around the
current frame, and the result is written to OUTPUT.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			arm, err := pathio.ReadArmature(args[0])
			if err != nil {
				return err
			}
			events, err := pathio.ReadEvents(args[1])
			if err != nil {
				return err
			}
			src := &motion.Sampler{Armature: arm, Bone: a.cfg.Scene.Bone, Logger: a.log}
			mp, err := motion.Cache(src, a.cfg.Scene.Range())
			if err != nil {
				return err
			}
			s := session.New(a.timeline(mp.Range()), a.log)
			env := session.Env{
				View: a.cfg.View.View(),
				Reference: func() (sketchpath.Polyline, error) {
					return a.reference(mp, s.Timeline)
				},
			}
			if err := s.Run(events, env); err != nil {
				return err
			}
			if s.State() != session.Finalized {
				return fmt.Errorf("stroke ended %s, not finalized", s.State())
			}
			pts := s.Points()
			if err := pathio.WritePolyline(args[2], pts); err != nil {
				return err
			}
			a.status("replayed %d events: stroke of %d points", len(events), len(pts))
			return nil
		},
	}
	return cmd
}

func (a *app) previewCmd() *cobra.Command {
	var reference, sketch, result string
	cmd := &cobra.Command{
		Use:   "preview OUTPUT.png",
		Short: "Render paths as seen through the configured view",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pc := a.cfg.Preview
			var layers []render.Layer
			for _, in := range []struct {
				path, color string
			}{
				{reference, pc.Reference},
				{sketch, pc.Sketch},
				{result, pc.Result},
			} {
				if in.path == "" {
					continue
				}
				pl, err := pathio.ReadPolyline(in.path)
				if err != nil {
					return err
				}
				c, err := config.ParseColor(in.color)
				if err != nil {
					return err
				}
				layers = append(layers, render.Layer{Path: pl, Color: c, Width: pc.LineWidth})
			}
			if len(layers) == 0 {
				return fmt.Errorf("nothing to draw: give at least one of --reference, --sketch and --result")
			}
			bg, err := config.ParseColor(pc.Background)
			if err != nil {
				return err
			}
			p := render.Preview{View: a.cfg.View.View(), Background: bg}
			if err := render.WritePNG(args[0], p.Draw(layers...)); err != nil {
				return err
			}
			a.status("wrote %dx%d preview with %d layers", p.View.Width, p.View.Height, len(layers))
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&reference, "reference", "", "reference path `file`")
	f.StringVar(&sketch, "sketch", "", "sketched stroke `file`")
	f.StringVar(&result, "result", "", "retargeted stroke `file`")
	return cmd
}

func (a *app) initConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init-config FILE",
		Short: "Write the default configuration",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Default().Save(args[0]); err != nil {
				return err
			}
			a.status("wrote default configuration to %s", args[0])
			return nil
		},
	}
}
