package main

import (
	"os"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/fieldrobotics/cvsetup/internal"
)

func buildRootCommand() *cobra.Command {
	//nolint:exhaustruct // Minimal Command initialization with required fields only
	cmd := &cobra.Command{
		Use:   "cvsetup",
		Short: "Provision a Linux machine with a pinned OpenCV source build",
		Long: `A provisioning CLI that installs the OpenCV computer-vision library and
its build dependencies on a Linux machine, the way the reference install
script does it: package-manager calls, a pinned source download, a fixed
set of build-configuration flags, and a system-wide install.

The defaults reproduce the reference OpenCV 3.4.2 build exactly; a YAML
config file (cvsetup.yaml) overrides the package lists, the version pin,
and the build flags.

Typical usage:
  cvsetup plan              Show every step without executing anything
  cvsetup provision         Run the full pipeline (run as root)
  cvsetup packages          Install the build dependencies only
  cvsetup build             Download and build the pinned source only`,
		RunE: func(command *cobra.Command, _ []string) error {
			return command.Help()
		},
	}

	// Global persistent flags
	cmd.PersistentFlags().StringP("config", "c", "",
		"Path to config file (default: auto-detect, falling back to built-in defaults)")
	cmd.PersistentFlags().Bool("dry-run", false,
		"Show what would be done without making changes")
	cmd.PersistentFlags().BoolP("verbose", "v", false,
		"Enable verbose output")
	cmd.PersistentFlags().Bool("force", false,
		"Rebuild even when the installed library already satisfies the version pin")
	cmd.PersistentFlags().Bool("skip-upgrade", false,
		"Skip the full package upgrade step")
	cmd.PersistentFlags().IntP("jobs", "j", 0,
		"Build parallelism (default: configured value)")
	cmd.PersistentFlags().String("workdir", "",
		"Directory for source download and build (default: home directory)")

	return cmd
}

func addSubcommands(rootCmd *cobra.Command, appContext *internal.AppInternal) {
	for _, controller := range appContext.GetControllers() {
		bind := controller.GetBind()
		ctrl := controller // capture for closure
		//nolint:exhaustruct // Minimal Command initialization with required fields only
		subCmd := &cobra.Command{
			Use:   bind.Use,
			Short: bind.Short,
			Long:  bind.Long,
			RunE: func(command *cobra.Command, arguments []string) error {
				return ctrl.Execute(command, arguments)
			},
		}

		rootCmd.AddCommand(subCmd)
	}
}

func main() {
	//nolint:exhaustruct // Minimal TextFormatter initialization with required fields only
	logger.SetFormatter(&logger.TextFormatter{
		ForceColors:   true,
		FullTimestamp: true,
	})
	if os.Getenv("DEBUG") == "true" {
		logger.SetLevel(logger.DebugLevel)
	}

	cobraRoot := buildRootCommand()

	// Inject controllers via DIG and attach them as subcommands
	appContext := injectAppContext()
	addSubcommands(cobraRoot, appContext)

	if err := cobraRoot.Execute(); err != nil {
		logger.Fatalf("Error executing 'cvsetup': %s", err)
	}
}
