package main

import (
	"fmt"
	"image/png"
	"os"

	"github.com/spf13/cobra"

	"github.com/edward-ap/indicatorbar/internal/indicator"
	"github.com/edward-ap/indicatorbar/internal/render"
)

type snapshotOptions struct {
	out           string
	width, height int
	min, max      int64
	step          int64
	value         int64
	policy        string
	dragging      bool
	disabled      bool
	fontSize      float64
}

func snapshotCmd() *cobra.Command {
	opts := snapshotOptions{
		out:    "indicatorbar.png",
		width:  360,
		height: 96,
		min:    indicator.DefaultMin,
		max:    indicator.DefaultMax,
		step:   indicator.DefaultStep,
		value:  50,
		policy: indicator.HideWhileDragging.String(),
	}
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Render the control to a PNG without a window",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := runSnapshot(opts); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), opts.out)
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVarP(&opts.out, "out", "o", opts.out, "output PNG path")
	f.IntVar(&opts.width, "width", opts.width, "image width in pixels")
	f.IntVar(&opts.height, "height", opts.height, "image height in pixels")
	f.Int64Var(&opts.min, "min", opts.min, "range minimum")
	f.Int64Var(&opts.max, "max", opts.max, "range maximum")
	f.Int64Var(&opts.step, "step", opts.step, "range step")
	f.Int64Var(&opts.value, "value", opts.value, "value to show")
	f.StringVar(&opts.policy, "policy", opts.policy, "bubble policy: hideWhileDragging or alwaysShow")
	f.BoolVar(&opts.dragging, "dragging", false, "draw the control mid-drag")
	f.BoolVar(&opts.disabled, "disabled", false, "draw the control disabled")
	f.Float64Var(&opts.fontSize, "font-size", 0, "label size in pixels (default height/5)")
	return cmd
}

// snapshotFrame drives a controller into the requested state and returns what
// the renderer should draw.
func snapshotFrame(opts snapshotOptions, r *render.Raster) (indicator.Frame, error) {
	if opts.width <= 0 || opts.height <= 0 {
		return indicator.Frame{}, fmt.Errorf("invalid size %dx%d", opts.width, opts.height)
	}
	c := indicator.NewController()
	if err := c.Configure(opts.min, opts.max, opts.step); err != nil {
		return indicator.Frame{}, err
	}
	if err := c.SetValue(opts.value); err != nil {
		return indicator.Frame{}, err
	}
	p, err := indicator.ParseDisplayPolicy(opts.policy)
	if err != nil {
		return indicator.Frame{}, err
	}
	c.SetDisplayPolicy(p)
	c.Resize(float64(opts.width), r.HandleHalfWidth(c.Frame(), float64(opts.height)))
	c.SetEnabled(!opts.disabled)
	if opts.dragging {
		c.PointerMove(0, c.X())
	}
	return c.Frame(), nil
}

func runSnapshot(opts snapshotOptions) error {
	size := opts.fontSize
	if size <= 0 {
		size = float64(opts.height) / 5
	}
	r := render.NewRaster(size)
	f, err := snapshotFrame(opts, r)
	if err != nil {
		return err
	}
	out, err := os.Create(opts.out)
	if err != nil {
		return err
	}
	if err := png.Encode(out, r.Render(f, opts.width, opts.height)); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
