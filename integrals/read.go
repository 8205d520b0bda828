// read.go --  This file is part of goHF project.
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
package integrals

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/MirzaevaIV/goHF/rhf"
	"gonum.org/v1/gonum/mat"
)

var ErrFormat = errors.New("integrals: malformed file")

func formatError(fname string, line int, msg string) error {
	return fmt.Errorf("%s:%d: %s: %w", fname, line, msg, ErrFormat)
}

// ReadGeometry reads an atom count followed by exactly that many atom
// lines: an integer nuclear charge or element symbol and three Cartesian
// coordinates.
// Coordinates are converted to bohr when angstrom is set.
func ReadGeometry(fname string, angstrom bool) ([]Atom, error) {
	lines, numbers, err := readLines(fname)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, formatError(fname, 1, "empty geometry")
	}
	natm, err := strconv.Atoi(strings.Fields(lines[0])[0])
	if err != nil || natm < 1 {
		return nil, formatError(fname, numbers[0], "bad atom count")
	}
	if len(lines)-1 != natm {
		return nil, formatError(fname, numbers[len(numbers)-1], fmt.Sprintf("%d atoms declared, %d found", natm, len(lines)-1))
	}

	atoms := make([]Atom, natm)
	for i := range atoms {
		words := strings.Fields(lines[i+1])
		if len(words) < 4 {
			return nil, formatError(fname, numbers[i+1], "incorrect format of coordinates")
		}
		z, err := strconv.ParseFloat(words[0], 64)
		if err != nil {
			z = float64(AtomicNumber(words[0]))
			if z == 0 {
				return nil, formatError(fname, numbers[i+1], "unknown element "+words[0])
			}
		}
		// Nuclear charges are whole, non-negative numbers.
		if math.IsNaN(z) || math.IsInf(z, 0) || z < 0 || z != math.Trunc(z) {
			return nil, formatError(fname, numbers[i+1], "bad nuclear charge "+words[0])
		}
		atoms[i].Z = z
		for k := 0; k < 3; k++ {
			x, err := strconv.ParseFloat(words[k+1], 64)
			if err != nil {
				return nil, formatError(fname, numbers[i+1], err.Error())
			}
			if angstrom {
				x /= aB
			}
			atoms[i].Coords[k] = x
		}
	}
	return atoms, nil
}

type entry struct {
	idx [4]int
	val float64
}

// readIndexed parses lines of nidx 1-based indices followed by a value.
func readIndexed(fname string, nidx int) ([]entry, int, error) {
	lines, numbers, err := readLines(fname)
	if err != nil {
		return nil, 0, err
	}
	n := 0
	res := make([]entry, 0, len(lines))
	for i, line := range lines {
		words := strings.Fields(line)
		if len(words) != nidx+1 {
			return nil, 0, formatError(fname, numbers[i], fmt.Sprintf("want %d indices and a value", nidx))
		}
		var e entry
		for k := 0; k < nidx; k++ {
			idx, err := strconv.Atoi(words[k])
			if err != nil || idx < 1 {
				return nil, 0, formatError(fname, numbers[i], "bad index "+words[k])
			}
			e.idx[k] = idx - 1
			n = max(n, idx)
		}
		e.val, err = strconv.ParseFloat(words[nidx], 64)
		if err != nil {
			return nil, 0, formatError(fname, numbers[i], err.Error())
		}
		res = append(res, e)
	}
	if n == 0 {
		return nil, 0, formatError(fname, 1, "no integrals")
	}
	return res, n, nil
}

// ReadOneElectron reads "i j value" lines of a symmetric matrix. Only one
// of (i,j) and (j,i) needs to be present. The dimension is the largest
// index found.
func ReadOneElectron(fname string) (*mat.SymDense, error) {
	entries, n, err := readIndexed(fname, 2)
	if err != nil {
		return nil, err
	}
	res := mat.NewSymDense(n, nil)
	for _, e := range entries {
		res.SetSym(e.idx[0], e.idx[1], e.val)
	}
	return res, nil
}

// ReadTwoElectron reads "i j k l value" lines of (ij|kl) integrals for a
// basis of n functions. Each line fills all eight permutationally
// equivalent elements; integrals not listed are zero.
func ReadTwoElectron(fname string, n int) (*rhf.ERI, error) {
	entries, m, err := readIndexed(fname, 4)
	if err != nil {
		return nil, err
	}
	if m > n {
		return nil, fmt.Errorf("%s: index %d exceeds basis dimension %d: %w", fname, m, n, rhf.ErrDimensionMismatch)
	}
	eri := rhf.NewERI(n, nil)
	for _, e := range entries {
		eri.SetPermutations(e.idx[0], e.idx[1], e.idx[2], e.idx[3], e.val)
	}
	return eri, nil
}
