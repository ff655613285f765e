package terrain

import (
	"fmt"

	"mini-voxel/internal/config"
	"mini-voxel/internal/world"

	"github.com/aquilax/go-perlin"
	"github.com/go-gl/mathgl/mgl32"
)

// Generator populates a fresh world with its starting cells.
type Generator interface {
	Generate(w *world.World)
}

// New selects a generator from the world configuration.
func New(cfg config.WorldConfig) (Generator, error) {
	switch cfg.Generator {
	case "flat":
		return &Flat{Size: cfg.GroundSize}, nil
	case "heightmap":
		return &Heightmap{Size: cfg.GroundSize, Seed: cfg.Seed, MaxHeight: cfg.MaxHeight}, nil
	default:
		return nil, fmt.Errorf("unknown terrain generator %q", cfg.Generator)
	}
}

// Flat lays a Size x Size grid of ground cells at y=0, one per integer
// (x, z) pair. This is the startup world of the demos.
type Flat struct {
	Size int
}

func (g *Flat) Generate(w *world.World) {
	for x := 0; x < g.Size; x++ {
		for z := 0; z < g.Size; z++ {
			w.Spawn(mgl32.Vec3{float32(x), 0, float32(z)})
		}
	}
}

// Heightmap raises Perlin-noise columns above the ground layer. Column
// height is deterministic per seed, in [0, MaxHeight].
type Heightmap struct {
	Size      int
	Seed      int64
	MaxHeight int
}

const (
	noiseAlpha   = 2.0
	noiseBeta    = 2.0
	noiseOctaves = 3
	noiseScale   = 0.15
)

func (g *Heightmap) Generate(w *world.World) {
	noise := perlin.NewPerlin(noiseAlpha, noiseBeta, noiseOctaves, g.Seed)

	for x := 0; x < g.Size; x++ {
		for z := 0; z < g.Size; z++ {
			// Noise2D returns [-1,1]; normalize to [0,1].
			n := (noise.Noise2D(float64(x)*noiseScale, float64(z)*noiseScale) + 1.0) / 2.0
			h := int(n * float64(g.MaxHeight))

			for y := 0; y <= h; y++ {
				w.Spawn(mgl32.Vec3{float32(x), float32(y), float32(z)})
			}
		}
	}
}
