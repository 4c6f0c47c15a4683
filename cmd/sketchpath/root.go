package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"honnef.co/go/sketchpath"
	"honnef.co/go/sketchpath/config"
	"honnef.co/go/sketchpath/motion"
	"honnef.co/go/sketchpath/session"
)

// LevelFromFlags returns the log level selected by the verbosity flags. They
// are evaluated in the order vv, v, q, so -vv wins over -q.
func LevelFromFlags(vv, v, q bool) slog.Level {
	switch {
	case vv:
		return slog.LevelDebug
	case v:
		return slog.LevelInfo
	case q:
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

type app struct {
	configPath  string
	verbose     bool
	veryVerbose bool
	quiet       bool

	cfg config.Config
	log *slog.Logger
	out *termenv.Output
	err io.Writer
}

// run executes the command line args and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	root := newRootCmd(stdout, stderr)
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		out := termenv.NewOutput(stderr)
		fmt.Fprintln(stderr, out.String("error:").Foreground(out.Color("1")).Bold(), err)
		return 1
	}
	return 0
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{
		out: termenv.NewOutput(stdout),
		err: stderr,
	}
	root := &cobra.Command{
		Use:           "sketchpath",
		Short:         "Retarget sketched strokes onto animated reference paths",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	pf := root.PersistentFlags()
	pf.StringVarP(&a.configPath, "config", "c", "", "TOML configuration `file`")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "log progress")
	pf.BoolVar(&a.veryVerbose, "vv", false, "log debug output")
	pf.BoolVarP(&a.quiet, "quiet", "q", false, "only log errors")

	root.AddCommand(
		a.sampleCmd(),
		a.retargetCmd(),
		a.replayCmd(),
		a.previewCmd(),
		a.initConfigCmd(),
	)

	return root
}

func (a *app) setup() error {
	level := LevelFromFlags(a.veryVerbose, a.verbose, a.quiet)
	a.log = slog.New(slog.NewTextHandler(a.err, &slog.HandlerOptions{Level: level}))
	if a.configPath == "" {
		a.cfg = config.Default()
		return nil
	}
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.log.Debug("loaded configuration", "path", a.configPath)
	return nil
}

// status prints a progress line unless -q was given.
func (a *app) status(format string, args ...any) {
	if a.quiet {
		return
	}
	mark := a.out.String("✓").Foreground(a.out.Color("2")).Bold()
	fmt.Fprintf(a.out, "%s %s\n", mark, fmt.Sprintf(format, args...))
}

// timeline returns the timeline over r set up from the configuration.
func (a *app) timeline(r motion.FrameRange) *session.Timeline {
	tl := session.NewTimeline(r, a.cfg.Timeline.Width)
	tl.SetCurrent(r.Clamp(a.cfg.Timeline.Current))
	return tl
}

// reference returns the part of mp shown by the timeline, resampled if the
// configuration asks for it.
func (a *app) reference(mp motion.MotionPath, tl *session.Timeline) (sketchpath.Polyline, error) {
	pts, err := mp.SampleReference(tl.View())
	if err != nil {
		return nil, err
	}
	if n := a.cfg.Scene.Resample; n > 0 {
		a.log.Debug("resampling reference", "from", len(pts), "to", n)
		return sketchpath.Resample(pts, n)
	}
	return pts, nil
}
