package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/nitro-tools/create-nitro-project/pkg/models"
	"github.com/nitro-tools/create-nitro-project/pkg/version"
)

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create-nitro-project",
		Short: "Scaffold a production-grade React Native Nitro Module",
		Long: `create-nitro-project generates a React Native Nitro Module workspace:
a library package with Kotlin or C++ on Android and Swift or C++ on iOS,
a nested example app and an initial git commit.

Examples:
  create-nitro-project                              Ask every question interactively
  create-nitro-project -n camera-kit --android cpp  Ask only what is missing
  create-nitro-project --preset nitro.yaml --non-interactive`,
		Args:         cobra.NoArgs,
		Version:      version.GetVersion(),
		SilenceUsage: true,
		PreRunE:      validateCreateFlags,
		RunE:         runCreate,
	}
	cmd.SetVersionTemplate(fmt.Sprintf("create-nitro-project %s\n", version.GetFullVersion()))

	f := cmd.Flags()
	f.StringP("name", "n", "", "Project name")
	f.String("android", "", "Android language ("+joinValues(models.ValidAndroidLanguages(), "/")+")")
	f.String("ios", "", "iOS language ("+joinValues(models.ValidIOSLanguages(), "/")+")")
	f.StringSlice("addon", nil, "Additional addons ("+joinValues(models.ValidPlatforms(), ", ")+"); repeatable or comma separated")
	f.String("example", "", "Example app configuration ("+joinValues(models.ValidExampleConfigs(), "/")+")")
	f.String("author", "", "Author name")
	f.String("author-url", "", "GitHub username or URL")
	f.String("repo-url", "", "Repository URL")
	f.String("description", "", "Package description")
	f.String("nitro-version", "", "react-native-nitro-modules version range")
	f.String("dir", "", "Parent directory of the new project (default: current directory)")
	f.String("preset", "", "YAML file with pre-answered questions")
	f.Bool("non-interactive", false, "Never prompt; use flags, preset and defaults")
	f.Bool("skip-git", false, "Do not create a git repository")
	f.Bool("verbose", false, "Write debug logs to stderr")

	return cmd
}

// Execute runs the root command. An interrupt cancels the running
// generation through the command context.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}
