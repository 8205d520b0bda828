// system.go --  This file is part of goHF project.
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

// Package integrals loads precomputed integrals and the molecular
// geometry from a directory of text files:
//
//	geom.dat  atom count, then "Z x y z" per atom (Z may be a symbol)
//	s.dat     overlap,             "i j value"
//	t.dat     kinetic energy,      "i j value"
//	v.dat     nuclear attraction,  "i j value"
//	eri.dat   electron repulsion,  "i j k l value"
//
// Indices are 1-based and only symmetry-unique elements are required.
// Any file may instead be gzip (.gz) or zstd (.zst) compressed.
package integrals

import (
	"fmt"
	"math"

	"github.com/MirzaevaIV/goHF/rhf"
	"gonum.org/v1/gonum/mat"
)

type Atom struct {
	Z      float64
	Coords [3]float64 //bohr
}

type Options struct {
	Charge int
	//Geometry in angstrom instead of bohr
	Angstrom bool
}

// System is a molecule together with its integrals. It implements both
// rhf.Molecule and rhf.Integrals.
type System struct {
	Atoms  []Atom
	Charge int
	S, T, V *mat.SymDense
	Vee     *rhf.ERI
}

var (
	_ rhf.Molecule  = (*System)(nil)
	_ rhf.Integrals = (*System)(nil)
)

// Load reads the geometry and integral files found in dir.
func Load(dir string, opts Options) (*System, error) {
	fnames := make(map[string]string)
	for _, base := range []string{"geom.dat", "s.dat", "t.dat", "v.dat", "eri.dat"} {
		fname, err := find(dir, base)
		if err != nil {
			return nil, err
		}
		fnames[base] = fname
	}

	sys := &System{Charge: opts.Charge}
	var err error
	if sys.Atoms, err = ReadGeometry(fnames["geom.dat"], opts.Angstrom); err != nil {
		return nil, err
	}
	if sys.S, err = ReadOneElectron(fnames["s.dat"]); err != nil {
		return nil, err
	}
	n := sys.S.SymmetricDim()
	if sys.T, err = ReadOneElectron(fnames["t.dat"]); err != nil {
		return nil, err
	}
	if sys.V, err = ReadOneElectron(fnames["v.dat"]); err != nil {
		return nil, err
	}
	for name, m := range map[string]*mat.SymDense{"t.dat": sys.T, "v.dat": sys.V} {
		if m.SymmetricDim() != n {
			return nil, fmt.Errorf("%s has dimension %d, s.dat %d: %w", name, m.SymmetricDim(), n, rhf.ErrDimensionMismatch)
		}
	}
	if sys.Vee, err = ReadTwoElectron(fnames["eri.dat"], n); err != nil {
		return nil, err
	}
	return sys, nil
}

func (s *System) BasisDimension() int {
	return s.S.SymmetricDim()
}

// ElectronCount is the sum of the nuclear charges minus the molecular
// charge. ReadGeometry only accepts whole charges; a fractional Z set by
// hand is rounded to the nearest integer.
func (s *System) ElectronCount() int {
	res := 0
	for _, a := range s.Atoms {
		res += int(math.Round(a.Z))
	}
	return res - s.Charge
}

func (s *System) AtomicCoordinates() [][3]float64 {
	res := make([][3]float64, len(s.Atoms))
	for i, a := range s.Atoms {
		res[i] = a.Coords
	}
	return res
}

func (s *System) AtomicCharges() []float64 {
	res := make([]float64, len(s.Atoms))
	for i, a := range s.Atoms {
		res[i] = a.Z
	}
	return res
}

func (s *System) Overlap() mat.Symmetric           { return s.S }
func (s *System) Kinetic() mat.Symmetric           { return s.T }
func (s *System) NuclearAttraction() mat.Symmetric { return s.V }
func (s *System) ElectronRepulsion() *rhf.ERI      { return s.Vee }
