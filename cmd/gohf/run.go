// run.go --  This file is part of goHF project.
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
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MirzaevaIV/goHF/config"
	"github.com/MirzaevaIV/goHF/integrals"
	"github.com/MirzaevaIV/goHF/report"
	"github.com/MirzaevaIV/goHF/rhf"
	"github.com/MirzaevaIV/goHF/scf"
)

func runCalc(cmd *cobra.Command, args []string) error {
	inpFname := args[0]
	cfg, err := config.Load(inpFname)
	if err != nil {
		return err
	}
	verbose, _ := cmd.Flags().GetBool("verbose")
	mem, _ := cmd.Flags().GetBool("mem")

	level := slog.LevelWarn
	if verbose {
		level = slog.LevelInfo
	}
	file, logger, err := initLog(cfg.Output, level)
	if err != nil {
		return err
	}
	defer file.Close()
	fmt.Fprintln(cmd.OutOrStdout(), "Output file: ", cfg.Output)

	InfoLogger.Println("Starting goHF...")
	appInfo()

	OutputLogger.Println("Input file content:")
	printOutputDelimiter()
	for _, l := range strings.Split(strings.TrimRight(string(cfg.Source), "\n"), "\n") {
		OutputLogger.Println(l)
	}
	printOutputDelimiter()

	sys, err := integrals.Load(cfg.Integrals, cfg.IntegralOptions())
	if err != nil {
		ErrorLogger.Println("Cannot load integrals: ", err)
		return err
	}
	OutputLogger.Printf("Integrals read from %s\n", cfg.Integrals)
	OutputLogger.Printf("Basis functions: %d, electrons: %d, charge: %d\n",
		sys.BasisDimension(), sys.ElectronCount(), sys.Charge)
	OutputLogger.Println("Geometry, bohr:")
	for _, a := range sys.Atoms {
		OutputLogger.Printf("%4s %16.10f %16.10f %16.10f\n",
			integrals.Symbol(int(a.Z)), a.Coords[0], a.Coords[1], a.Coords[2])
	}
	printOutputDelimiter()

	res, err := scf.Run(cmd.Context(), sys, sys, cfg.Options(), logger)
	if err != nil && !errors.Is(err, scf.ErrNotConverged) {
		ErrorLogger.Println("SCF failed: ", err)
		return err
	}
	report.Iterations(output(), res.History)
	printOutputDelimiter()
	if !res.Converged {
		WarningLogger.Printf("SCF not converged in %d iterations.", len(res.History))
	}

	report.Orbitals(output(), res.MOEnergies, res.Occupied)
	printOutputDelimiter()
	if verbose {
		OutputLogger.Println("Final Fock matrix:")
		OutputLogger.Print(report.FormatMatrix(res.Fock))
		OutputLogger.Println("Final density matrix:")
		OutputLogger.Print(report.FormatMatrix(res.Density))
		printOutputDelimiter()
	}
	OutputLogger.Println("Nuclei Repulsion Energy: ", res.Nuclear, " a.u.")
	elec := res.Energy - res.Nuclear
	OutputLogger.Println("Electronic energy: ", elec, " a.u.")
	OutputLogger.Println("Final total energy = ", res.Energy, " a.u.")
	printOutputDelimiter()
	fmt.Fprintln(cmd.OutOrStdout(), "Final total energy = ", res.Energy, " a.u.")

	if cfg.Plot != "" {
		if perr := report.PlotConvergence(cfg.Plot, res.History); perr != nil {
			WarningLogger.Println("Cannot plot SCF convergence: ", perr)
		} else {
			InfoLogger.Println("SCF convergence plot written to ", cfg.Plot)
		}
	}
	if cfg.Dump != "" {
		if derr := report.Dump(cfg.Dump, res); derr != nil {
			ErrorLogger.Println("Cannot dump matrices: ", derr)
			return derr
		}
		InfoLogger.Println("Matrices written to ", cfg.Dump)
	}
	if mem {
		report.MemStats(output())
	}

	InfoLogger.Println("Exiting goHF...")
	return err
}

func runEnuc(cmd *cobra.Command, args []string) error {
	angstrom, _ := cmd.Flags().GetBool("angstrom")
	atoms, err := integrals.ReadGeometry(args[0], angstrom)
	if err != nil {
		return err
	}
	coords := make([][3]float64, len(atoms))
	charges := make([]float64, len(atoms))
	for i, a := range atoms {
		coords[i] = a.Coords
		charges[i] = a.Z
	}
	enuc, err := rhf.NuclearRepulsion(coords, charges)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Nuclei Repulsion Energy: %.12f a.u.\n", enuc)
	return nil
}
