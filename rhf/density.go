// density.go --  This file is part of goHF project.
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
package rhf

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Occupied returns the number of doubly occupied orbitals for nelec
// electrons.
func Occupied(nelec int) (int, error) {
	if nelec < 0 || nelec%2 != 0 {
		return 0, fmt.Errorf("%d electrons: %w", nelec, ErrOddElectronCount)
	}
	return nelec / 2, nil
}

// DensityMatrix forms D[μ,ν] = 2 Σ_{i<nOcc} C[μ,i] C[ν,i] from the MO
// coefficients (one orbital per column).
func DensityMatrix(c mat.Matrix, nOcc int) (*mat.SymDense, error) {
	nBasis, nMO := c.Dims()
	if nOcc < 0 || nOcc > nMO {
		return nil, fmt.Errorf("%d occupied orbitals out of %d: %w", nOcc, nMO, ErrDimensionMismatch)
	}
	if nBasis == 0 {
		return nil, ErrZeroBasis
	}
	occ := 2.0
	D := mat.NewSymDense(nBasis, nil)
	for i := 0; i < nBasis; i++ {
		for j := i; j < nBasis; j++ {
			sum := 0.0
			for oo := 0; oo < nOcc; oo++ {
				sum += c.At(i, oo) * c.At(j, oo)
			}
			D.SetSym(i, j, occ*sum)
		}
	}
	return D, nil
}
