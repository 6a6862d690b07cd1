package cli

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/behollister/quadtree"
	"github.com/behollister/quadtree/render"
)

// ball is one simulated entity. The tree only sees its circle; identity and
// velocity live here.
type ball struct {
	id     uuid.UUID
	circle *quadtree.Circle
	vx, vy float64
}

// step returns the ball's next circle, reflecting the velocity off the
// bounds first when the move would leave them.
func (b *ball) step(bounds quadtree.Region) *quadtree.Circle {
	r := b.circle.Radius()
	x := b.circle.X() + b.vx
	if x-r < bounds.XMin || x+r >= bounds.XMax {
		b.vx = -b.vx
		x = b.circle.X() + b.vx
	}
	y := b.circle.Y() + b.vy
	if y-r < bounds.YMin || y+r >= bounds.YMax {
		b.vy = -b.vy
		y = b.circle.Y() + b.vy
	}
	return quadtree.NewCircle(x, y, r)
}

func (c *CLI) collideCommand() *cobra.Command {
	var cfgPath, framePath, dotPath string

	cmd := &cobra.Command{
		Use:   "collide",
		Short: "Run a headless bouncing-ball collision simulation",
		Long: `Collide inserts a set of random balls into a quadtree and sweeps a probe
circle across the region, logging how many balls the probe touches each
tick. Balls move by removal and reinsertion, the way the tree expects
callers to update positions.`,
		Example: `  # Defaults: 200 balls, 300 ticks
  quadtree-demo collide

  # Custom parameters plus a BMP snapshot of the final tree
  quadtree-demo collide --config demo.toml --frame tree.bmp`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig(cfgPath)
			if err != nil {
				return err
			}
			return c.runCollide(cfg, framePath, dotPath)
		},
	}

	cmd.Flags().StringVar(&cfgPath, "config", "", "TOML config file overriding the defaults")
	cmd.Flags().StringVar(&framePath, "frame", "", "write a BMP frame of the final tree")
	cmd.Flags().StringVar(&dotPath, "dot", "", "write a DOT diagram of the final tree")

	return cmd
}

func (c *CLI) runCollide(cfg Config, framePath, dotPath string) error {
	bounds := quadtree.Region{
		XMin: cfg.Region.XMin,
		YMin: cfg.Region.YMin,
		XMax: cfg.Region.XMax,
		YMax: cfg.Region.YMax,
	}
	tree, err := quadtree.New(bounds)
	if err != nil {
		return err
	}
	rng := rand.New(rand.NewSource(cfg.Collide.Seed))

	balls := make([]*ball, 0, cfg.Collide.Balls)
	for len(balls) < cfg.Collide.Balls {
		b := &ball{
			id:     uuid.New(),
			circle: randomCircle(rng, bounds, cfg.Collide.MaxRadius),
			vx:     (rng.Float64()*2 - 1) * cfg.Collide.Speed,
			vy:     (rng.Float64()*2 - 1) * cfg.Collide.Speed,
		}
		if !tree.Add(b.circle) {
			continue
		}
		balls = append(balls, b)
	}
	c.Logger.WithFields(log.Fields{
		"balls":  len(balls),
		"region": tree.Region(),
	}).Info("simulation ready")

	start := time.Now()
	totalHits := 0
	maxHits := 0
	for tick := 0; tick < cfg.Collide.Ticks; tick++ {
		for _, b := range balls {
			next := b.step(bounds)
			if !tree.Remove(b.circle) {
				// can only happen if a caller mutated a stored circle
				c.Logger.WithField("ball", b.id).Warn("ball missing from the tree")
				continue
			}
			if !tree.Add(next) {
				tree.Add(b.circle)
				continue
			}
			b.circle = next
		}

		probe := sweepProbe(bounds, cfg.Collide.ProbeRadius, tick, cfg.Collide.Ticks)
		hits := tree.CollideAll(probe)
		totalHits += len(hits)
		if len(hits) > maxHits {
			maxHits = len(hits)
		}
		c.Logger.WithFields(log.Fields{
			"tick":  tick,
			"probe": probe,
			"hits":  len(hits),
		}).Debug("tick complete")
	}

	c.Logger.WithFields(log.Fields{
		"ticks":      cfg.Collide.Ticks,
		"elapsed":    time.Since(start),
		"total_hits": totalHits,
		"max_hits":   maxHits,
		"nodes":      len(tree.Nodes()),
		"stored":     tree.Len(),
	}).Info("simulation finished")

	if framePath != "" {
		frame := render.NewFrame(tree.Region())
		frame.DrawTree(tree)
		if err := frame.WriteFile(framePath); err != nil {
			return err
		}
		c.Logger.WithField("path", framePath).Info("frame written")
	}
	if dotPath != "" {
		dot := render.ToDOT(tree, render.Options{})
		if err := os.WriteFile(dotPath, []byte(dot), 0o644); err != nil {
			return fmt.Errorf("write diagram: %w", err)
		}
		c.Logger.WithField("path", dotPath).Info("diagram written")
	}
	return nil
}

// randomCircle returns a circle fully inside bounds with a radius in
// [1, maxRadius].
func randomCircle(rng *rand.Rand, bounds quadtree.Region, maxRadius float64) *quadtree.Circle {
	r := 1 + rng.Float64()*(maxRadius-1)
	x := bounds.XMin + r + rng.Float64()*(bounds.Width()-2*r)
	y := bounds.YMin + r + rng.Float64()*(bounds.Height()-2*r)
	return quadtree.NewCircle(x, y, r)
}

// sweepProbe moves the probe along the region diagonal over the run.
func sweepProbe(bounds quadtree.Region, radius float64, tick, ticks int) *quadtree.Circle {
	t := float64(tick) / float64(ticks)
	return quadtree.NewCircle(
		bounds.XMin+t*bounds.Width(),
		bounds.YMin+t*bounds.Height(),
		radius,
	)
}
