package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime/debug"

	"github.com/gostonefire/coursehashmap"
	"github.com/gostonefire/coursehashmap/catalogerr"
	"github.com/gostonefire/coursehashmap/internal/render"
	"github.com/spf13/cobra"
)

// Version is filled when building with ldflags, but *not* when installing via "go install".
var Version string

// newRootCmd - Returns the coursecatalog command with every subcommand registered
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "coursecatalog [file]",
		Short: "An interactive course planner.",
		Long: "Loads a comma separated course file into a course catalog and lets you list the courses, look up a " +
			"single course or remove courses from an interactive menu. Without a file argument the file name is " +
			"asked for.",
		Args:          cobra.MaximumNArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE:          runPlanner,
	}

	rootCmd.Flags().Bool("version", false, "report version of this executable")
	addPersistentFlags(rootCmd)
	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return withExitCode(err, ExitUsage)
	})

	rootCmd.AddCommand(newListCmd(), newShowCmd(), newStatCmd())

	return rootCmd
}

// Execute - Runs the command line with the process arguments and exits with a non-zero code on failure.
// This is called by main.main().
func Execute() {
	exitOnErr(Run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr), os.Stderr)
}

// Run - Runs the command line with the given arguments and streams
//   - args are the command line arguments without the program name
//   - in is where the interactive planner reads answers from
//   - out receives all regular output
//   - errOut receives log entries
//
// It returns:
//   - err is nil on success, use ExitCode to get the process exit code of a failure
func Run(args []string, in io.Reader, out io.Writer, errOut io.Writer) (err error) {
	rootCmd := newRootCmd()
	rootCmd.SetArgs(args)
	rootCmd.SetIn(in)
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)

	return rootCmd.Execute()
}

func runPlanner(cmd *cobra.Command, args []string) (err error) {
	if showVersion, _ := cmd.Flags().GetBool("version"); showVersion {
		printVersion(cmd.OutOrStdout())
		return
	}

	if err = configureLogging(cmd); err != nil {
		return withExitCode(err, ExitUsage)
	}

	catalogConf, err := buildConf(cmd)
	if err != nil {
		return withExitCode(err, ExitUsage)
	}

	presenter := render.NewPresenter(cmd.OutOrStdout(), outIsTerminal(cmd))
	answers := bufio.NewScanner(cmd.InOrStdin())

	var path string
	if len(args) == 1 {
		path = args[0]
	} else {
		path, err = askFileName(presenter, answers, inIsTerminal(cmd))
		if err != nil {
			return withExitCode(err, ExitUsage)
		}
	}

	if err = checkSource(path); err != nil {
		return sourceNotFound(presenter, err)
	}

	catalog, _, err := coursehashmap.NewCatalog(catalogConf)
	if err != nil {
		return withExitCode(err, ExitUsage)
	}

	menu := newPlanner(catalog, presenter, answers, path)

	return menu.run()
}

// askFileName - Prompts for the input file name, an empty answer prompts again when reading from a terminal
func askFileName(presenter *render.Presenter, answers *bufio.Scanner, interactive bool) (path string, err error) {
	for {
		if err = presenter.Prompt("Please enter the input file name: "); err != nil {
			return
		}

		var ok bool
		path, ok, err = readAnswer(answers)
		if err != nil {
			return
		}
		if !ok {
			err = fmt.Errorf("no input file name given")
			return
		}
		if path != "" {
			return
		}
		if !interactive {
			err = fmt.Errorf("no input file name given")
			return
		}
	}
}

// checkSource - Verifies that path can be opened for reading
func checkSource(path string) (err error) {
	f, err := os.Open(path)
	if err != nil {
		err = catalogerr.SourceNotFound{Path: path, Err: err}
		return
	}

	return f.Close()
}

// sourceNotFound - Explains that the input file could not be opened and returns an error ending the process
func sourceNotFound(presenter *render.Presenter, err error) error {
	var notFound catalogerr.SourceNotFound
	path := ""
	if errors.As(err, &notFound) {
		path = notFound.Path
	}

	_ = presenter.Message("Input file not found %s", path)
	_ = presenter.Notice("Please provide valid input file. Exiting!")

	return reportedExit(err, ExitDefault)
}

func printVersion(out io.Writer) {
	fmt.Fprint(out, "coursecatalog ")
	if Version != "" {
		fmt.Fprintf(out, "%s", Version)
	} else if info, ok := debug.ReadBuildInfo(); ok {
		fmt.Fprintf(out, "%s", info.Main.Version)
	} else {
		fmt.Fprintf(out, "(unknown version)")
	}
	fmt.Fprintln(out)
}
