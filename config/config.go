// config.go --  This file is part of goHF project.
// Mirzaeva Irina, 2023
//
//	goHF is distributed in the hope that it will be useful,
//	but WITHOUT ANY WARRANTY; without even the implied warranty
//	of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
//	See the GNU General Public License for more details.
//
//	You should have received a copy of the GNU General Public License
//	along with this program.  If not, see http://www.gnu.org/licenses/
//
// ------------------------------------------------

// Package config reads goHF calculation files.
//
//	integrals: ./h2o_sto3g
//	charge: 0
//	units: bohr
//	solver: cholesky
//	scf:
//	  max_steps: 100
//	  tol_energy: 1.0e-10
//	  tol_density: 1.0e-8
//	output: h2o.out
//	plot: h2o_scf.png
//	dump: ./h2o_results
//
// Relative paths are taken relative to the calculation file.
package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/MirzaevaIV/goHF/integrals"
	"github.com/MirzaevaIV/goHF/scf"
)

type SCF struct {
	MaxSteps   int     `yaml:"max_steps" validate:"gt=0"`
	TolEnergy  float64 `yaml:"tol_energy" validate:"gt=0"`
	TolDensity float64 `yaml:"tol_density" validate:"gt=0"`
}

type Config struct {
	Integrals string `yaml:"integrals" validate:"required"`
	Charge    int    `yaml:"charge"`
	Units     string `yaml:"units" validate:"oneof=bohr angstrom"`
	Solver    string `yaml:"solver" validate:"oneof=cholesky lowdin"`
	SCF       SCF    `yaml:"scf"`

	Output string `yaml:"output"`
	Plot   string `yaml:"plot"`
	Dump   string `yaml:"dump"`

	// Text of the calculation file as read by Load.
	Source []byte `yaml:"-"`
}

func Default() Config {
	opts := scf.DefaultOptions()
	return Config{
		Units:  "bohr",
		Solver: string(opts.Solver),
		SCF: SCF{
			MaxSteps:   opts.MaxSteps,
			TolEnergy:  opts.TolEnergy,
			TolDensity: opts.TolDensity,
		},
	}
}

// Load reads and validates the calculation file fname. Keys missing from
// the file keep their Default values. Without an output key the report
// goes to fname with its extension replaced by "out".
func Load(fname string) (*Config, error) {
	data, err := os.ReadFile(fname)
	if err != nil {
		return nil, err
	}
	cfg, err := Parse(data, filepath.Dir(fname))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	if cfg.Output == "" {
		cfg.Output = strings.TrimSuffix(fname, filepath.Ext(fname)) + ".out"
	}
	cfg.Source = data
	return cfg, nil
}

// Parse decodes a calculation file, resolves relative paths against
// baseDir and validates the result.
func Parse(data []byte, baseDir string) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return nil, err
	}
	cfg.Units = strings.ToLower(cfg.Units)
	cfg.Solver = strings.ToLower(cfg.Solver)

	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(&cfg); err != nil {
		return nil, err
	}

	for _, p := range []*string{&cfg.Integrals, &cfg.Output, &cfg.Plot, &cfg.Dump} {
		if *p != "" && !filepath.IsAbs(*p) {
			*p = filepath.Join(baseDir, *p)
		}
	}
	return &cfg, nil
}

func (c *Config) Options() scf.Options {
	return scf.Options{
		MaxSteps:   c.SCF.MaxSteps,
		TolEnergy:  c.SCF.TolEnergy,
		TolDensity: c.SCF.TolDensity,
		Solver:     scf.Solver(c.Solver),
	}
}

func (c *Config) IntegralOptions() integrals.Options {
	return integrals.Options{
		Charge:   c.Charge,
		Angstrom: c.Units == "angstrom",
	}
}
