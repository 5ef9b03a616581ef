package main

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/course-kit/coursekit/internal/config"
	"github.com/course-kit/coursekit/internal/database"
	"github.com/course-kit/coursekit/internal/logging"
	"github.com/course-kit/coursekit/internal/usecase"
)

var (
	courseFlag  string
	verboseFlag bool
)

var rootCmd = &cobra.Command{
	Use:     "coursekit",
	Short:   "coursekit - an assignment archive for programming courses",
	Long:    "coursekit keeps a filesystem archive of course assignments in sync with a SQLite index for fast filtered search.",
	Version: version,
}

func init() {
	// A .env next to the working directory may carry COURSEKIT_COURSE.
	_ = godotenv.Load()

	rootCmd.PersistentFlags().StringVar(&courseFlag, "course", "", "Course root directory (default: COURSEKIT_COURSE or working directory)")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(newAddCmd())
	rootCmd.AddCommand(newUpdateCmd())
	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newShowCmd())
	rootCmd.AddCommand(newDeleteCmd())
	rootCmd.AddCommand(newImportCmd())
	rootCmd.AddCommand(newTagsCmd())
	rootCmd.AddCommand(newModuleCmd())
	rootCmd.AddCommand(newReconcileCmd())
	rootCmd.AddCommand(newInfoCmd())
	rootCmd.AddCommand(newMCPCmd())
}

// openStore resolves the course root and opens its database and store. The
// returned cleanup must be called when the command is done.
func openStore() (*usecase.Store, string, func(), error) {
	courseRoot, err := config.ResolveCourseRoot(courseFlag)
	if err != nil {
		return nil, "", nil, err
	}

	dbCtx, err := database.Open(courseRoot)
	if err != nil {
		return nil, "", nil, err
	}

	logger := logging.New(verboseFlag)
	cleanup := func() {
		_ = logger.Sync()
		_ = database.Close(dbCtx)
	}
	return usecase.NewStore(courseRoot, dbCtx, logger), courseRoot, cleanup, nil
}

func newLogger() *zap.Logger {
	return logging.New(verboseFlag)
}
