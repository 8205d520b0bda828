// errors.go --  This file is part of goHF project.
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
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

var (
	ErrDimensionMismatch = errors.New("rhf: dimension mismatch")
	ErrSingularOverlap   = errors.New("rhf: overlap matrix is not positive definite")
	ErrZeroBasis         = errors.New("rhf: empty basis")
	ErrOddElectronCount  = errors.New("rhf: odd number of electrons for closed shell")
	ErrEigen             = errors.New("rhf: eigendecomposition failed")
)

func checkSquare(name string, m mat.Matrix, n int) error {
	r, c := m.Dims()
	if r != n || c != n {
		return fmt.Errorf("%s is %dx%d, basis dimension %d: %w", name, r, c, n, ErrDimensionMismatch)
	}
	return nil
}
