package mapgen

import (
	"fmt"
	"math"
	"math/rand"

	opensimplex "github.com/ojrac/opensimplex-go"
	"github.com/rs/zerolog"

	"github.com/savanna-tactics/boardcore/internal/game/core"
)

// LayoutConfig holds configuration for layout generation
type LayoutConfig struct {
	Width  int
	Height int
	Seed   int64 // 0 picks a random seed
	// Elevation below VoidThreshold (0..1) becomes a void cell.
	VoidThreshold float64
	Octaves       int
	Frequency     float64
}

// DefaultLayoutConfig returns a configuration that produces one island with
// a few lakes, roughly the shape of the shipped map.
func DefaultLayoutConfig(w, h int) LayoutConfig {
	return LayoutConfig{
		Width:         w,
		Height:        h,
		Seed:          0,
		VoidThreshold: 0.3,
		Octaves:       3,
		Frequency:     0.15,
	}
}

// Validate checks the configuration before any noise is sampled.
func (c LayoutConfig) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("layout dimensions must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.VoidThreshold < 0 || c.VoidThreshold >= 1 {
		return fmt.Errorf("void threshold must be in [0,1), got %v", c.VoidThreshold)
	}
	if c.Octaves < 1 {
		return fmt.Errorf("octaves must be at least 1, got %d", c.Octaves)
	}
	if c.Frequency <= 0 {
		return fmt.Errorf("frequency must be positive, got %v", c.Frequency)
	}
	return nil
}

// Layout is a generated map in the same row order NewBoardFromLayout expects
// (top row first), plus the cell the headquarters should stand on.
type Layout struct {
	Rows [][]int
	HQ   core.Coordinate
	Seed int64
}

// Generator builds layouts from two simplex noise fields: elevation decides
// void cells, richness decides resource tiers.
type Generator struct {
	config    LayoutConfig
	seed      int64
	elevation opensimplex.Noise
	richness  opensimplex.Noise
	logger    zerolog.Logger
}

// NewGenerator creates a new layout generator
func NewGenerator(config LayoutConfig, logger zerolog.Logger) *Generator {
	seed := config.Seed
	if seed == 0 {
		seed = rand.Int63()
	}
	return &Generator{
		config:    config,
		seed:      seed,
		elevation: opensimplex.NewNormalized(seed),
		richness:  opensimplex.NewNormalized(seed + 1),
		logger:    logger.With().Str("component", "mapgen").Int64("seed", seed).Logger(),
	}
}

// Generate produces a layout whose passable cells all connect to the HQ cell.
func (g *Generator) Generate() (*Layout, error) {
	if err := g.config.Validate(); err != nil {
		return nil, err
	}
	w, h := g.config.Width, g.config.Height
	hq := core.Coordinate{X: w / 2, Y: h / 2}

	rows := make([][]int, h)
	for i := range rows {
		rows[i] = make([]int, w)
	}

	for y := 0; y < h; y++ {
		row := rows[h-1-y]
		for x := 0; x < w; x++ {
			if g.elevationAt(x, y) < g.config.VoidThreshold {
				row[x] = core.VoidResource
				continue
			}
			row[x] = g.resourceTier(x, y)
		}
	}

	if rows[h-1-hq.Y][hq.X] == core.VoidResource {
		rows[h-1-hq.Y][hq.X] = 1
	}

	removed, err := pruneUnreachable(rows, hq)
	if err != nil {
		return nil, err
	}

	g.logger.Info().
		Int("width", w).
		Int("height", h).
		Int("islands_removed", removed).
		Msg("Generated layout")
	return &Layout{Rows: rows, HQ: hq, Seed: g.seed}, nil
}

// elevationAt is noise shaped to fall off towards the map edge.
func (g *Generator) elevationAt(x, y int) float64 {
	elev := octaveNoise(g.elevation, float64(x), float64(y), g.config.Octaves, g.config.Frequency, 0.5)

	cx, cy := float64(g.config.Width-1)/2, float64(g.config.Height-1)/2
	dx := (float64(x) - cx) / math.Max(cx, 1)
	dy := (float64(y) - cy) / math.Max(cy, 1)
	falloff := 1.0 - math.Pow(math.Sqrt(dx*dx+dy*dy)/math.Sqrt2, 3)
	if falloff < 0 {
		falloff = 0
	}
	return elev * (0.5 + 0.5*falloff) * 1.4
}

func (g *Generator) resourceTier(x, y int) int {
	r := octaveNoise(g.richness, float64(x), float64(y), 2, g.config.Frequency*2, 0.5)
	switch {
	case r < 0.55:
		return 1
	case r < 0.7:
		return 2
	case r < 0.82:
		return 3
	default:
		return 4
	}
}

// pruneUnreachable turns every passable cell the HQ cannot reach into void,
// using the board's own distance field so the two never disagree.
func pruneUnreachable(rows [][]int, hq core.Coordinate) (int, error) {
	board, err := core.NewBoardFromLayout(rows, zerolog.Nop())
	if err != nil {
		return 0, err
	}
	if _, err := board.ComputeDistanceField(hq); err != nil {
		return 0, err
	}

	removed := 0
	for idx := range board.C {
		cell := &board.C[idx]
		if cell.IsVoid() || cell.IsReached() {
			continue
		}
		x, y := board.XY(idx)
		rows[board.H-1-y][x] = core.VoidResource
		removed++
	}
	return removed, nil
}

// octaveNoise generates fractal noise by layering multiple frequencies.
func octaveNoise(noise opensimplex.Noise, x, y float64, octaves int, frequency, persistence float64) float64 {
	total := 0.0
	amplitude := 1.0
	maxVal := 0.0

	for i := 0; i < octaves; i++ {
		total += noise.Eval2(x*frequency, y*frequency) * amplitude
		maxVal += amplitude
		amplitude *= persistence
		frequency *= 2
	}

	return total / maxVal
}
