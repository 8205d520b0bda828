// fock.go --  This file is part of goHF project.
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

import "gonum.org/v1/gonum/mat"

// contract returns the Coulomb and exchange matrices
//
//	J[μ,ν] = Σ_λσ D[λ,σ] (μν|λσ)
//	K[μ,ν] = Σ_λσ D[λ,σ] (μλ|σν)
//
// Every one of the N² elements is summed explicitly. A matrix that is not
// requested is returned as nil and costs nothing.
func contract(eri *ERI, d mat.Matrix, coulomb, exchange bool) (*mat.Dense, *mat.Dense, error) {
	n := eri.Dim()
	if err := checkSquare("density matrix", d, n); err != nil {
		return nil, nil, err
	}
	dens := mat.DenseCopyOf(d).RawMatrix()
	var J, K *mat.Dense
	if coulomb {
		J = mat.NewDense(n, n, nil)
	}
	if exchange {
		K = mat.NewDense(n, n, nil)
	}
	for mu := 0; mu < n; mu++ {
		for nu := 0; nu < n; nu++ {
			var jsum, ksum float64
			for lam := 0; lam < n; lam++ {
				row := dens.Data[lam*dens.Stride : lam*dens.Stride+n]
				for sig, dls := range row {
					if coulomb {
						jsum += dls * eri.At(mu, nu, lam, sig)
					}
					if exchange {
						ksum += dls * eri.At(mu, lam, sig, nu)
					}
				}
			}
			if coulomb {
				J.Set(mu, nu, jsum)
			}
			if exchange {
				K.Set(mu, nu, ksum)
			}
		}
	}
	return J, K, nil
}

func Coulomb(eri *ERI, d mat.Matrix) (*mat.Dense, error) {
	J, _, err := contract(eri, d, true, false)
	return J, err
}

func Exchange(eri *ERI, d mat.Matrix) (*mat.Dense, error) {
	_, K, err := contract(eri, d, false, true)
	return K, err
}

// TwoElectron returns the closed-shell two-electron part of the Fock
// matrix, G = J - K/2.
func TwoElectron(eri *ERI, d mat.Matrix) (*mat.Dense, error) {
	J, K, err := contract(eri, d, true, true)
	if err != nil {
		return nil, err
	}
	G := mat.NewDense(eri.Dim(), eri.Dim(), nil)
	G.Scale(-0.5, K)
	G.Add(J, G)
	return G, nil
}

// FockMatrix returns F = H + J - K/2 for the density d. All N² elements
// are computed, so the symmetry of F follows from the symmetry of the
// inputs rather than being imposed.
func FockMatrix(h mat.Matrix, eri *ERI, d mat.Matrix) (*mat.Dense, error) {
	if err := checkSquare("core Hamiltonian", h, eri.Dim()); err != nil {
		return nil, err
	}
	G, err := TwoElectron(eri, d)
	if err != nil {
		return nil, err
	}
	F := mat.NewDense(eri.Dim(), eri.Dim(), nil)
	F.Add(h, G)
	return F, nil
}
