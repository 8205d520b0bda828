// roothaan.go --  This file is part of goHF project.
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
	"math"

	"gonum.org/v1/gonum/mat"
)

// SolveRoothaan solves the generalized symmetric eigenproblem FC = SCε.
//
// S is factorized as UᵀU (Cholesky), the standard problem
// U⁻ᵀ F U⁻¹ y = ε y is diagonalized and C = U⁻¹ Y. Eigenvalues are
// returned in ascending order, the columns of C are the matching
// S-orthonormal eigenvectors. The sign of each column is arbitrary.
func SolveRoothaan(f mat.Matrix, s mat.Symmetric) ([]float64, *mat.Dense, error) {
	if err := checkRoothaan(f, s); err != nil {
		return nil, nil, err
	}

	var chol mat.Cholesky
	if ok := chol.Factorize(s); !ok {
		return nil, nil, ErrSingularOverlap
	}
	var u, uInv mat.TriDense
	chol.UTo(&u)
	if err := uInv.InverseTri(&u); err != nil {
		return nil, nil, fmt.Errorf("%v: %w", err, ErrSingularOverlap)
	}

	var a mat.Dense
	a.Product(uInv.T(), f, &uInv)
	return diagonalize(&a, &uInv)
}

// SolveRoothaanLowdin solves FC = SCε through the symmetric
// orthogonalization X = S^(-1/2): X F X y = ε y, C = X Y.
func SolveRoothaanLowdin(f mat.Matrix, s mat.Symmetric) ([]float64, *mat.Dense, error) {
	if err := checkRoothaan(f, s); err != nil {
		return nil, nil, err
	}
	x, err := InverseSqrt(s)
	if err != nil {
		return nil, nil, err
	}
	var a mat.Dense
	a.Product(x, f, x)
	return diagonalize(&a, x)
}

// InverseSqrt returns S^(-1/2) of a symmetric positive-definite matrix.
func InverseSqrt(s mat.Symmetric) (*mat.SymDense, error) {
	n := s.SymmetricDim()
	var eigsym mat.EigenSym
	if ok := eigsym.Factorize(s, true); !ok {
		return nil, fmt.Errorf("overlap: %w", ErrEigen)
	}
	vals := eigsym.Values(nil)
	invSqrt := make([]float64, n)
	for i, v := range vals {
		if v <= 0 {
			return nil, fmt.Errorf("overlap eigenvalue %g: %w", v, ErrSingularOverlap)
		}
		invSqrt[i] = 1 / math.Sqrt(v)
	}
	var ev, x mat.Dense
	eigsym.VectorsTo(&ev)
	x.Product(&ev, mat.NewDiagDense(n, invSqrt), ev.T())
	return symmetrize(&x), nil
}

func checkRoothaan(f mat.Matrix, s mat.Symmetric) error {
	n := s.SymmetricDim()
	if n == 0 {
		return ErrZeroBasis
	}
	return checkSquare("Fock matrix", f, n)
}

// diagonalize finds the eigenpairs of the transformed Fock matrix a and
// back-transforms the eigenvectors with x.
func diagonalize(a *mat.Dense, x mat.Matrix) ([]float64, *mat.Dense, error) {
	var eigsym mat.EigenSym
	if ok := eigsym.Factorize(symmetrize(a), true); !ok {
		return nil, nil, fmt.Errorf("transformed Fock matrix: %w", ErrEigen)
	}
	var ev mat.Dense
	eigsym.VectorsTo(&ev)

	var c mat.Dense
	c.Mul(x, &ev)
	return eigsym.Values(nil), &c, nil
}

// symmetrize returns (A + Aᵀ)/2, removing the rounding asymmetry left by
// the similarity transforms.
func symmetrize(a mat.Matrix) *mat.SymDense {
	n, _ := a.Dims()
	sym := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			sym.SetSym(i, j, 0.5*(a.At(i, j)+a.At(j, i)))
		}
	}
	return sym
}
