package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/beevik/etree"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"gargoton.petite-maison-orange.fr/eric/pmorange/config"
	"gargoton.petite-maison-orange.fr/eric/pmorange/doubleslider"
	"gargoton.petite-maison-orange.fr/eric/pmorange/filter"
	"gargoton.petite-maison-orange.fr/eric/pmorange/pmolog"
	"gargoton.petite-maison-orange.fr/eric/pmorange/region"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Fatal(err)
	}
}

type cli struct {
	configFile string
	debug      bool
	trace      bool

	cfg  *config.Config
	hook *pmolog.RingHook
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	root := &cobra.Command{
		Use:   "pmorange",
		Short: "pmorange: a dual-handle range selection",
		Long: `pmorange drives a dual-handle range selection configured by the
"slider" section of the config file. Moves are given as lower=<v> or
upper=<v>. When setup_on_start is false the control is left unset and
every move is refused.`,
		SilenceUsage:      true,
		PersistentPreRunE: c.setup,
	}

	fs := root.PersistentFlags()
	fs.StringVar(&c.configFile, "config", "", "Path to config file")
	fs.BoolVar(&c.debug, "debug", false, "Log every resolution pass")
	fs.BoolVar(&c.trace, "trace", false, "Print the buffered log after the command")

	root.AddCommand(
		c.runCmd(),
		c.describeCmd(),
		c.loopCmd(),
		c.filterCmd(),
	)
	return root
}

func (c *cli) setup(cmd *cobra.Command, args []string) error {
	level := log.InfoLevel
	if c.debug {
		level = log.DebugLevel
	}
	c.hook = pmolog.Install(level, pmolog.DefaultBufferSize)
	log.SetOutput(cmd.ErrOrStderr())

	cfg, err := config.LoadConfig(c.configFile)
	if err != nil {
		return err
	}
	c.cfg = cfg
	return nil
}

func (c *cli) settings() (doubleslider.Settings, error) {
	s, err := c.cfg.Slider()
	if err != nil {
		return s, err
	}
	return s, doubleslider.Validate(s)
}

func (c *cli) printTrace(w io.Writer) {
	if !c.trace || c.hook == nil {
		return
	}
	for _, line := range c.hook.Lines() {
		fmt.Fprintln(w, line)
	}
}

func (c *cli) runCmd() *cobra.Command {
	var events bool

	cmd := &cobra.Command{
		Use:   "run [lower=<v>|upper=<v>]...",
		Short: "Apply moves to the configured control and print every notification",
		RunE: func(cmd *cobra.Command, args []string) error {
			moves, err := parseMoves(args)
			if err != nil {
				return err
			}
			s, err := c.settings()
			if err != nil {
				return err
			}
			ctl, err := newControl(c.cfg)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			ctl.ds.OnValueChanged(func(lo, hi float64) {
				fmt.Fprintf(out, "min=%v max=%v fill=%s\n", lo, hi, ctl.area)
				if events {
					fmt.Fprintln(out, xmlString(ctl.ds.GenerateEvent()))
				}
			})
			if err := ctl.apply(s); err != nil {
				return err
			}

			for _, m := range moves {
				fmt.Fprintf(out, "# %s\n", describeMove(m))
				if err := ctl.drag(m); err != nil {
					fmt.Fprintf(out, "# refused: %v\n", err)
				}
			}
			c.printTrace(cmd.ErrOrStderr())
			return nil
		},
	}
	cmd.Flags().BoolVar(&events, "events", false, "Also print each notification as an XML property set")
	return cmd
}

func (c *cli) describeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "describe [lower=<v>|upper=<v>]...",
		Short: "Print the XML description of the configured control",
		RunE: func(cmd *cobra.Command, args []string) error {
			moves, err := parseMoves(args)
			if err != nil {
				return err
			}
			s, err := c.settings()
			if err != nil {
				return err
			}
			ctl, err := newControl(c.cfg)
			if err != nil {
				return err
			}
			if err := ctl.apply(s); err != nil {
				return err
			}
			ctl.dragAll(moves)

			xml, err := ctl.ds.Describe()
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), xml)
			c.printTrace(cmd.ErrOrStderr())
			return nil
		},
	}
}

func (c *cli) loopCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "loop <audio file> [lower=<v>|upper=<v>]...",
		Short: "Select a loop region, in seconds, inside an audio file",
		Long: "Select a loop region, in seconds, inside an audio file.\nSupported extensions: " +
			strings.Join(region.Extensions(), " "),
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			moves, err := parseMoves(args[1:])
			if err != nil {
				return err
			}
			s, err := c.settings()
			if err != nil {
				return err
			}

			source, format, err := region.Open(args[0])
			if err != nil {
				return err
			}
			defer source.Close()

			loop := region.NewLoop(source, format)
			ctl, err := newControl(c.cfg)
			if err != nil {
				return err
			}
			ctl.ds.OnValueChanged(loop.Update)

			// the audio file sets the domain
			duration := loop.Duration().Seconds()
			s.MinValue, s.MaxValue = 0, duration
			s.InitialMinValue, s.InitialMaxValue = 0, duration
			if err := ctl.apply(s); err != nil {
				return err
			}
			ctl.dragAll(moves)

			start, end := loop.Bounds()
			fmt.Fprintf(cmd.OutOrStdout(), "loop %.3fs-%.3fs frames [%d, %d) of %d at %d Hz\n",
				ctl.ds.MinValue(), ctl.ds.MaxValue(), start, end, source.Len(), format.SampleRate)
			c.printTrace(cmd.ErrOrStderr())
			return nil
		},
	}
}

func (c *cli) filterCmd() *cobra.Command {
	var places int32

	cmd := &cobra.Command{
		Use:   "filter [lower=<v>|upper=<v>]...",
		Short: "Print the decimal amount filter selected by the control",
		RunE: func(cmd *cobra.Command, args []string) error {
			moves, err := parseMoves(args)
			if err != nil {
				return err
			}
			s, err := c.settings()
			if err != nil {
				return err
			}
			ctl, err := newControl(c.cfg)
			if err != nil {
				return err
			}

			amount := filter.NewAmount(places)
			ctl.ds.OnValueChanged(amount.Update)
			if err := ctl.apply(s); err != nil {
				return err
			}
			ctl.dragAll(moves)

			fmt.Fprintln(cmd.OutOrStdout(), amount.Range())
			c.printTrace(cmd.ErrOrStderr())
			return nil
		},
	}
	cmd.Flags().Int32Var(&places, "places", 2, "Decimal places of the bounds")
	return cmd
}

func describeMove(m move) string {
	if m.lower {
		return fmt.Sprintf("lower <- %v", m.value)
	}
	return fmt.Sprintf("upper <- %v", m.value)
}

func xmlString(elem *etree.Element) string {
	doc := etree.NewDocument()
	doc.SetRoot(elem)
	s, err := doc.WriteToString()
	if err != nil {
		return ""
	}
	return strings.TrimSpace(s)
}
