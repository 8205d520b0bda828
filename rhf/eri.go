// eri.go --  This file is part of goHF project.
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

import "math"

// ERI is a dense tensor of two-electron repulsion integrals (ij|kl) in
// chemists' notation. Elements are stored row-major in i, j, k, l.
type ERI struct {
	n    int
	data []float64
}

// NewERI creates an n×n×n×n tensor. If data is nil a zero tensor is
// allocated, otherwise data is used as backing storage and must have
// n^4 elements. NewERI panics on a zero dimension or a wrong data length,
// the same way mat.NewDense does.
func NewERI(n int, data []float64) *ERI {
	if n <= 0 {
		panic(ErrZeroBasis)
	}
	size := n * n * n * n
	if data == nil {
		data = make([]float64, size)
	}
	if len(data) != size {
		panic(ErrDimensionMismatch)
	}
	return &ERI{n: n, data: data}
}

func (e *ERI) Dim() int {
	return e.n
}

func (e *ERI) index(i, j, k, l int) int {
	return ((i*e.n+j)*e.n+k)*e.n + l
}

// Indices is the inverse of the storage layout: it returns the four AO
// indices of the idx-th stored element.
func (e *ERI) Indices(idx int) (int, int, int, int) {
	n := e.n
	i := idx / (n * n * n)
	idx = idx % (n * n * n)
	j := idx / (n * n)
	idx = idx % (n * n)
	k := idx / n
	l := idx % n
	return i, j, k, l
}

func (e *ERI) At(i, j, k, l int) float64 {
	return e.data[e.index(i, j, k, l)]
}

func (e *ERI) Set(i, j, k, l int, v float64) {
	e.data[e.index(i, j, k, l)] = v
}

// SetPermutations stores v at (ij|kl) and at the seven positions related
// to it by the permutational symmetry of real integrals.
func (e *ERI) SetPermutations(i, j, k, l int, v float64) {
	e.Set(i, j, k, l, v)
	e.Set(j, i, k, l, v)
	e.Set(i, j, l, k, v)
	e.Set(j, i, l, k, v)
	e.Set(k, l, i, j, v)
	e.Set(l, k, i, j, v)
	e.Set(k, l, j, i, v)
	e.Set(l, k, j, i, v)
}

// IsSymmetric reports whether every element agrees with its permutations
// within tol.
func (e *ERI) IsSymmetric(tol float64) bool {
	for idx, v := range e.data {
		i, j, k, l := e.Indices(idx)
		for _, w := range [...]float64{
			e.At(j, i, k, l), e.At(i, j, l, k), e.At(k, l, i, j),
		} {
			if math.Abs(v-w) > tol {
				return false
			}
		}
	}
	return true
}
