// main.go --  This file is part of goHF project.
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

// Command gohf runs restricted Hartree-Fock calculations on precomputed
// integrals.
//
//	gohf run water.yaml
//	gohf enuc --angstrom geom.dat
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "gohf",
		Short: "Restricted Hartree-Fock SCF on precomputed integrals",
		Long: `goHF reads overlap, kinetic, nuclear attraction and electron repulsion
integrals of a closed-shell molecule and iterates the Roothaan equations
to self consistency.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	runCmd := &cobra.Command{
		Use:   "run [calc.yaml]",
		Short: "Run an SCF calculation described by a YAML file",
		Args:  cobra.ExactArgs(1),
		RunE:  runCalc,
	}
	runCmd.Flags().BoolP("verbose", "v", false, "log every SCF iteration to the output file")
	runCmd.Flags().Bool("mem", false, "report memory usage at exit")

	enucCmd := &cobra.Command{
		Use:   "enuc [geom.dat]",
		Short: "Print the nuclear repulsion energy of a geometry file",
		Args:  cobra.ExactArgs(1),
		RunE:  runEnuc,
	}
	enucCmd.Flags().Bool("angstrom", false, "coordinates are in angstrom")

	rootCmd.AddCommand(runCmd, enucCmd)
	return rootCmd
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "gohf:", err)
		stop()
		os.Exit(1)
	}
}
