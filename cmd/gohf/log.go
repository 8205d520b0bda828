// log.go --  This file is part of goHF project.
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
	"io"
	"log"
	"log/slog"
	"os"

	"github.com/MirzaevaIV/goHF/report"
)

var (
	WarningLogger *log.Logger
	InfoLogger    *log.Logger
	ErrorLogger   *log.Logger
	OutputLogger  *log.Logger
)

// initLog points all output loggers at fname and returns the open file
// along with a structured logger writing to the same file.
func initLog(fname string, level slog.Level) (*os.File, *slog.Logger, error) {
	file, err := os.OpenFile(fname, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, nil, err
	}

	InfoLogger = log.New(file, "INFO: ", log.Ldate|log.Ltime)
	WarningLogger = log.New(file, "WARNING: ", log.Ldate|log.Ltime)
	ErrorLogger = log.New(file, "ERROR: ", log.Ldate|log.Ltime|log.Lshortfile)
	OutputLogger = log.New(file, "", 0)

	logger := slog.New(slog.NewTextHandler(file, &slog.HandlerOptions{Level: level}))
	return file, logger, nil
}

func appInfo() {
	report.Banner(OutputLogger.Writer())
}

func printOutputDelimiter() {
	OutputLogger.Println(report.Delimiter())
}

func output() io.Writer {
	return OutputLogger.Writer()
}
