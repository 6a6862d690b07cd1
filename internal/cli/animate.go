package cli

import (
	"fmt"
	"image/color"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/behollister/quadtree"
	"github.com/behollister/quadtree/render"
)

var (
	styleHelp   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("36"))
	styleStatus = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	styleHits   = lipgloss.NewStyle().Foreground(lipgloss.Color("167"))
)

// Frame colors for the trail canvas, mapped to glyphs in View.
var (
	trailColor = color.RGBA{0, 0, 255, 255}
	hitColor   = color.RGBA{255, 0, 255, 255}
)

func (c *CLI) animateCommand() *cobra.Command {
	var cfgPath string

	cmd := &cobra.Command{
		Use:   "animate",
		Short: "Draw a mouse trail tracked by a quadtree",
		Long: `Animate opens a full-screen terminal canvas. Mouse motion leaves a trail
of circles joined by lines; each circle is mirrored into a quadtree and
circles touching the cursor probe are highlighted. The oldest circle
leaves the tree once the trail is full.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig(cfgPath)
			if err != nil {
				return err
			}
			p := tea.NewProgram(newAnimateModel(cfg.Animate), tea.WithAltScreen(), tea.WithMouseAllMotion())
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("run animation: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&cfgPath, "config", "", "TOML config file overriding the defaults")

	return cmd
}

// animateModel is the bubbletea model for the mouse-trail animation. The
// tree covers the canvas and is rebuilt on every resize.
type animateModel struct {
	cfg     AnimateConfig
	tree    *quadtree.Tree
	trail   *render.Trail
	circles []*quadtree.Circle
	cursor  quadtree.Point
	width   int
	height  int
	overlay bool
	hits    map[*quadtree.Circle]bool
}

func newAnimateModel(cfg AnimateConfig) animateModel {
	return animateModel{
		cfg:   cfg,
		trail: render.NewTrail(cfg.TrailLength),
		hits:  map[*quadtree.Circle]bool{},
	}
}

func (m animateModel) Init() tea.Cmd {
	return nil
}

// canvasHeight leaves two rows for the status and help lines.
func (m animateModel) canvasHeight() int {
	h := m.height - 2
	if h < 0 {
		h = 0
	}
	return h
}

// rebuild recreates the tree for the current canvas size, keeping every
// circle that still fits.
func (m animateModel) rebuild() animateModel {
	w, h := m.width, m.canvasHeight()
	if w < 2 || h < 2 {
		m.tree = nil
		return m
	}
	tree, err := quadtree.New(quadtree.Region{XMin: 0, YMin: 0, XMax: float64(w), YMax: float64(h)})
	if err != nil {
		m.tree = nil
		return m
	}
	kept := m.circles[:0]
	for _, c := range m.circles {
		if tree.Add(c) {
			kept = append(kept, c)
		}
	}
	m.circles = kept
	m.tree = tree
	m.hits = m.collisions()
	return m
}

func (m animateModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "t":
			m.overlay = !m.overlay
		case "c":
			m.circles = nil
			m.trail = render.NewTrail(m.cfg.TrailLength)
			m = m.rebuild()
		}
	case tea.MouseMsg:
		if msg.Action != tea.MouseActionMotion && msg.Action != tea.MouseActionPress {
			break
		}
		if m.tree == nil || msg.X < 0 || msg.Y < 0 || msg.X >= m.width || msg.Y >= m.canvasHeight() {
			break
		}
		p := quadtree.Point{X: float64(msg.X), Y: float64(msg.Y)}
		m.cursor = p
		c := quadtree.NewCircle(p.X, p.Y, m.cfg.DotRadius)
		if m.tree.Add(c) {
			m.trail.Push(p)
			m.circles = append(m.circles, c)
			for len(m.circles) > m.cfg.TrailLength {
				old := m.circles[0]
				m.circles = m.circles[1:]
				m.tree.Remove(old)
			}
		}
		m.hits = m.collisions()
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m = m.rebuild()
	}
	return m, nil
}

// collisions returns the stored circles the cursor probe touches.
func (m animateModel) collisions() map[*quadtree.Circle]bool {
	hits := map[*quadtree.Circle]bool{}
	if m.tree == nil {
		return hits
	}
	probe := quadtree.NewCircle(m.cursor.X, m.cursor.Y, m.cfg.ProbeRadius)
	m.tree.Collide(probe, func(c *quadtree.Circle) bool {
		hits[c] = true
		return true
	})
	return hits
}

func (m animateModel) View() string {
	if m.tree == nil {
		return "waiting for terminal size..."
	}

	f := render.NewFrame(m.tree.Region())
	if m.overlay {
		m.tree.Walk(func(n *quadtree.Node) bool {
			f.DrawRegion(n.Region(), render.RegionColor)
			return true
		})
	}
	f.DrawTrail(m.trail, trailColor)
	for _, c := range m.circles {
		col := color.Color(render.CircleColor)
		if m.hits[c] {
			col = hitColor
		}
		f.DrawCircle(c, col)
	}

	img := f.Image()
	var b strings.Builder
	for y := 0; y < m.canvasHeight(); y++ {
		for x := 0; x < m.width; x++ {
			if int(m.cursor.X) == x && int(m.cursor.Y) == y {
				b.WriteByte('@')
				continue
			}
			switch img.RGBAAt(x, y) {
			case render.RegionColor:
				b.WriteByte('+')
			case trailColor:
				b.WriteByte('.')
			case render.CircleColor:
				b.WriteByte('o')
			case hitColor:
				b.WriteByte('x')
			default:
				b.WriteByte(' ')
			}
		}
		b.WriteByte('\n')
	}

	hitsStr := fmt.Sprintf("hits %d", len(m.hits))
	if len(m.hits) > 0 {
		hitsStr = styleHits.Render(hitsStr)
	}
	status := fmt.Sprintf("cursor (%.0f,%.0f) %v  stored %d  trail %.0f  ",
		m.cursor.X, m.cursor.Y, m.tree.Region().Quadrant(m.cursor), m.tree.Len(), m.trail.Length())
	b.WriteString(styleStatus.Render(status) + hitsStr)
	b.WriteByte('\n')
	b.WriteString(styleHelp.Render("move the mouse to draw") +
		styleStatus.Render("  t: tree overlay  c: clear  q: quit"))
	return b.String()
}
