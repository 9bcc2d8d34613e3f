package app

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"lattice-ca/internal/core"
	"lattice-ca/internal/lattice"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Sim        string
	Rows       int
	Cols       int
	Border     string
	Init       string
	Population bool
	Seed       int64
	Density    float64
	Manual     bool

	Generations int
	Output      string
	Autosave    string
	SaveDir     string

	Scale int
	TPS   int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Sim:         "life",
		Rows:        20,
		Cols:        20,
		Border:      lattice.OpenCold.String(),
		Seed:        42,
		Generations: 1,
		SaveDir:     ".",
		Scale:       8,
		TPS:         10,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *pflag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "automaton to run (life or elementary)")
	fs.IntVar(&c.Rows, "rows", c.Rows, "grid rows")
	fs.IntVar(&c.Cols, "cols", c.Cols, "grid columns")
	fs.IntVarP(&c.Cols, "size", "n", c.Cols, "line length for the elementary automaton (alias of --cols)")
	fs.StringVarP(&c.Border, "border", "b", c.Border, "boundary: none, cold|open0, hot|open1, periodic")
	fs.StringVarP(&c.Init, "init", "i", c.Init, "initial configuration file")
	fs.BoolVarP(&c.Population, "population", "p", c.Population, "show only the live-cell count after each generation")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for random initial configurations")
	fs.Float64Var(&c.Density, "density", c.Density, "fill the grid randomly with this live-cell density (0 disables)")
	fs.BoolVarP(&c.Manual, "manual", "m", c.Manual, "enter live cells by hand before the first generation")
	fs.StringVar(&c.Autosave, "autosave", c.Autosave, "save the grid to this file when the program exits")
	fs.StringVar(&c.SaveDir, "save-dir", c.SaveDir, "directory for snapshots saved without a name")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier for the viewer")
	fs.IntVar(&c.TPS, "tps", c.TPS, "generations per second for play mode and the viewer")
}

// Boundary parses the configured border.
func (c *Config) Boundary() (lattice.Boundary, error) {
	return lattice.ParseBoundary(c.Border)
}

// Validate reports the first problem with the configuration.
func (c *Config) Validate() error {
	if _, ok := core.Sims()[c.Sim]; !ok {
		return fmt.Errorf("unknown sim %q (have %v)", c.Sim, core.Names())
	}
	if _, err := c.Boundary(); err != nil {
		return err
	}
	if c.Init == "" && (c.Rows <= 0 || c.Cols <= 0) {
		return fmt.Errorf("grid size %dx%d must be positive", c.Rows, c.Cols)
	}
	if c.Density < 0 || c.Density > 1 {
		return fmt.Errorf("density %v outside [0,1]", c.Density)
	}
	if c.Generations < 0 {
		return fmt.Errorf("generations %d must not be negative", c.Generations)
	}
	return nil
}

// SimConfig converts the configuration into the key/value form sim
// factories accept. A zero density is left out so the sim keeps its own
// reseeding default.
func (c *Config) SimConfig() map[string]string {
	m := map[string]string{
		"rows":   strconv.Itoa(c.Rows),
		"cols":   strconv.Itoa(c.Cols),
		"border": c.Border,
	}
	if c.Density > 0 {
		m["density"] = strconv.FormatFloat(c.Density, 'f', -1, 64)
	}
	return m
}

// Environment variables read by LoadEnv.
const (
	EnvSim        = "LATTICE_SIM"
	EnvRows       = "LATTICE_ROWS"
	EnvCols       = "LATTICE_COLS"
	EnvBorder     = "LATTICE_BORDER"
	EnvInit       = "LATTICE_INIT"
	EnvPopulation = "LATTICE_POPULATION"
	EnvSeed       = "LATTICE_SEED"
	EnvDensity    = "LATTICE_DENSITY"
	EnvSaveDir    = "LATTICE_SAVE_DIR"
	EnvAutosave   = "LATTICE_AUTOSAVE"
	EnvTPS        = "LATTICE_TPS"
)

// LoadEnv overlays defaults from a dotenv file and then from the process
// environment, which wins. A missing file is not an error. Call it before
// Bind so flags still override both.
func (c *Config) LoadEnv(path string) error {
	vars := map[string]string{}
	if path != "" {
		fileVars, err := godotenv.Read(path)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("read %s: %w", path, err)
		}
		for k, v := range fileVars {
			vars[k] = v
		}
	}
	for _, k := range []string{
		EnvSim, EnvRows, EnvCols, EnvBorder, EnvInit, EnvPopulation,
		EnvSeed, EnvDensity, EnvSaveDir, EnvAutosave, EnvTPS,
	} {
		if v, ok := os.LookupEnv(k); ok {
			vars[k] = v
		}
	}
	return c.applyEnv(vars)
}

func (c *Config) applyEnv(vars map[string]string) error {
	str := func(key string, dst *string) {
		if v, ok := vars[key]; ok && v != "" {
			*dst = v
		}
	}
	var errs []error
	num := func(key string, dst *int) {
		if v, ok := vars[key]; ok && v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", key, err))
				return
			}
			*dst = n
		}
	}

	str(EnvSim, &c.Sim)
	str(EnvBorder, &c.Border)
	str(EnvInit, &c.Init)
	str(EnvSaveDir, &c.SaveDir)
	str(EnvAutosave, &c.Autosave)
	num(EnvRows, &c.Rows)
	num(EnvCols, &c.Cols)
	num(EnvTPS, &c.TPS)
	if v, ok := vars[EnvPopulation]; ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", EnvPopulation, err))
		} else {
			c.Population = b
		}
	}
	if v, ok := vars[EnvSeed]; ok && v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", EnvSeed, err))
		} else {
			c.Seed = n
		}
	}
	if v, ok := vars[EnvDensity]; ok && v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", EnvDensity, err))
		} else {
			c.Density = f
		}
	}
	return errors.Join(errs...)
}
