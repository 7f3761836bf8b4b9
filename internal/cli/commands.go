package cli

import (
	"errors"

	"github.com/gostonefire/coursehashmap"
	"github.com/gostonefire/coursehashmap/catalogerr"
	"github.com/gostonefire/coursehashmap/internal/render"
	"github.com/spf13/cobra"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list file",
		Short: "Print every course in the file ordered by course id.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			catalog, presenter, err := loadCatalog(cmd, args[0])
			if err != nil {
				return
			}

			courses, err := catalog.List()
			if err != nil {
				return
			}

			return presenter.CourseList(courses)
		},
	}
}

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show file id...",
		Short: "Print the given courses with their prerequisites.",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			catalog, presenter, err := loadCatalog(cmd, args[0])
			if err != nil {
				return
			}

			var course coursehashmap.Course
			for _, id := range args[1:] {
				course, err = catalog.Search(id)
				if errors.Is(err, catalogerr.NoRecordFound{}) {
					if err = presenter.NotFound(id); err != nil {
						return
					}
					continue
				}
				if err != nil {
					return
				}
				if err = presenter.Course(course); err != nil {
					return
				}
			}

			return
		},
	}
}

func newStatCmd() *cobra.Command {
	statCmd := &cobra.Command{
		Use:   "stat file",
		Short: "Print how the courses in the file spread over the table buckets.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			distribution, err := cmd.Flags().GetBool("distribution")
			if err != nil {
				return withExitCode(err, ExitUsage)
			}

			catalog, presenter, err := loadCatalog(cmd, args[0])
			if err != nil {
				return
			}

			stat, err := catalog.Stat(distribution)
			if err != nil {
				return
			}

			if err = presenter.Stat(catalog.Info(), stat); err != nil {
				return
			}
			if distribution {
				err = presenter.Distribution(stat.BucketDistribution)
			}

			return
		},
	}

	statCmd.Flags().Bool("distribution", false, "also print the number of courses in every used bucket")

	return statCmd
}

// loadCatalog - Creates a catalog configured from the flags and loads the file at path into it
func loadCatalog(cmd *cobra.Command, path string) (catalog *coursehashmap.Catalog, presenter *render.Presenter, err error) {
	if err = configureLogging(cmd); err != nil {
		err = withExitCode(err, ExitUsage)
		return
	}

	catalogConf, err := buildConf(cmd)
	if err != nil {
		err = withExitCode(err, ExitUsage)
		return
	}

	presenter = render.NewPresenter(cmd.OutOrStdout(), outIsTerminal(cmd))

	catalog, _, err = coursehashmap.NewCatalog(catalogConf)
	if err != nil {
		err = withExitCode(err, ExitUsage)
		return
	}

	_, err = catalog.LoadFile(path)
	if errors.Is(err, catalogerr.SourceNotFound{}) {
		err = sourceNotFound(presenter, err)
		return
	}

	return
}
