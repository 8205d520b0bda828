// scf.go --  This file is part of goHF project.
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

// Package scf iterates the restricted Hartree-Fock equations to self
// consistency, starting from the core Hamiltonian guess.
package scf

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/MirzaevaIV/goHF/rhf"
)

var ErrNotConverged = errors.New("scf: not converged")

type Solver string

const (
	Cholesky Solver = "cholesky"
	Lowdin   Solver = "lowdin"
)

type Options struct {
	MaxSteps int
	//Convergence thresholds on |E(i) - E(i-1)| and on the RMS change of
	//the density matrix. Both must be met.
	TolEnergy  float64
	TolDensity float64
	Solver     Solver
}

func DefaultOptions() Options {
	return Options{
		MaxSteps:   100,
		TolEnergy:  1e-10,
		TolDensity: 1e-8,
		Solver:     Cholesky,
	}
}

type Step struct {
	Iteration int
	Energy    float64
	DeltaE    float64
	DeltaD    float64
}

// Result holds the last iterate. Energy and Fock belong to the density
// that built them; MO energies, coefficients and Density come from
// diagonalizing that Fock matrix.
type Result struct {
	Converged  bool
	Energy     float64
	Nuclear    float64
	Occupied   int
	Hcore      *mat.SymDense
	Fock       *mat.Dense
	MOEnergies []float64
	MOCoeffs   *mat.Dense
	Density    *mat.SymDense
	History    []Step
}

func (o Options) solver() (func(mat.Matrix, mat.Symmetric) ([]float64, *mat.Dense, error), error) {
	switch o.Solver {
	case Cholesky, "":
		return rhf.SolveRoothaan, nil
	case Lowdin:
		return rhf.SolveRoothaanLowdin, nil
	}
	return nil, fmt.Errorf("scf: unknown solver %q", o.Solver)
}

// densityRMS is the root mean square of the elementwise change between
// two density matrices.
func densityRMS(prev, next *mat.SymDense) float64 {
	n := prev.SymmetricDim()
	sq := make([]float64, 0, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			d := next.At(i, j) - prev.At(i, j)
			sq = append(sq, d*d)
		}
	}
	return math.Sqrt(stat.Mean(sq, nil))
}

// Run performs the SCF procedure: build F from the current density,
// evaluate the energy, solve the Roothaan equations and form the new
// density, until both thresholds are met or MaxSteps is reached. In the
// latter case the last iterate is returned along with ErrNotConverged.
// A nil logger discards iteration records.
func Run(ctx context.Context, mol rhf.Molecule, ints rhf.Integrals, opts Options, logger *slog.Logger) (*Result, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if opts.MaxSteps < 1 {
		return nil, fmt.Errorf("scf: max steps %d", opts.MaxSteps)
	}
	solve, err := opts.solver()
	if err != nil {
		return nil, err
	}

	nOcc, err := rhf.Occupied(mol.ElectronCount())
	if err != nil {
		return nil, err
	}
	n := mol.BasisDimension()
	S := ints.Overlap()
	eri := ints.ElectronRepulsion()
	if S.SymmetricDim() != n || eri.Dim() != n {
		return nil, fmt.Errorf("basis dimension %d, overlap %d, ERI %d: %w", n, S.SymmetricDim(), eri.Dim(), rhf.ErrDimensionMismatch)
	}
	if nOcc > n {
		return nil, fmt.Errorf("%d occupied orbitals in %d basis functions: %w", nOcc, n, rhf.ErrDimensionMismatch)
	}

	res := &Result{Occupied: nOcc}
	if res.Nuclear, err = rhf.NucNuc(mol); err != nil {
		return nil, err
	}
	if res.Hcore, err = rhf.CoreHamiltonian(ints.Kinetic(), ints.NuclearAttraction()); err != nil {
		return nil, err
	}
	D, err := rhf.InitialDensity(n)
	if err != nil {
		return nil, err
	}
	logger.Info("scf start", "nao", n, "occupied", nOcc, "enuc", res.Nuclear, "solver", string(opts.Solver))

	ePrev := 0.0
	for i := 0; i < opts.MaxSteps; i++ {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		F, err := rhf.FockMatrix(res.Hcore, eri, D)
		if err != nil {
			return res, err
		}
		E, err := rhf.TotalEnergy(F, res.Hcore, D, res.Nuclear)
		if err != nil {
			return res, err
		}
		eps, C, err := solve(F, S)
		if err != nil {
			return res, fmt.Errorf("iteration %d: %w", i+1, err)
		}
		Dnew, err := rhf.DensityMatrix(C, nOcc)
		if err != nil {
			return res, err
		}

		step := Step{Iteration: i + 1, Energy: E, DeltaE: E - ePrev, DeltaD: densityRMS(D, Dnew)}
		res.History = append(res.History, step)
		res.Energy, res.Fock, res.MOEnergies, res.MOCoeffs, res.Density = E, F, eps, C, Dnew
		logger.Info("scf iteration", "iter", step.Iteration, "energy", E, "dE", step.DeltaE, "dRMS", step.DeltaD)

		if i > 0 && math.Abs(step.DeltaE) < opts.TolEnergy && step.DeltaD < opts.TolDensity {
			res.Converged = true
			logger.Info("scf converged", "iterations", step.Iteration, "energy", E)
			return res, nil
		}
		ePrev = E
		D = Dnew
	}

	logger.Warn("scf not converged", "iterations", opts.MaxSteps, "energy", res.Energy)
	return res, fmt.Errorf("%w after %d steps", ErrNotConverged, opts.MaxSteps)
}
