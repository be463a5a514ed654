// Package cli provides the command line interface.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/temirov/tabcopy/internal/config"
	"github.com/temirov/tabcopy/internal/copier"
	"github.com/temirov/tabcopy/internal/documents"
	"github.com/temirov/tabcopy/internal/services/clipboard"
	"github.com/temirov/tabcopy/internal/session"
	"github.com/temirov/tabcopy/internal/utils"
	"github.com/temirov/tabcopy/internal/workspace"
)

const (
	versionFlagName      = "version"
	verboseFlagName      = "verbose"
	verboseFlagShorthand = "v"
	sessionFlagName      = "session"
	sessionFlagShorthand = "s"
	configFlagName       = "config"
	versionTemplate      = "tabcopy version: %s\n"
	rootUse              = "tabcopy"
	rootShortDescription = "tabcopy command line interface"
	rootLongDescription  = `tabcopy copies open editor tabs to the clipboard as Markdown.
The active tab and every tab to its right in the active group are rendered as fenced code blocks,
ready to paste into an AI assistant. Use --version to print the application version.`
	copyUse              = "copy"
	copyAlias            = "c"
	copyShortDescription = "copy the active tab and the tabs to its right (" + copyAlias + ")"
	copyLongDescription  = `Read the editor session snapshot and copy the active tab and every tab to its right.
Diff tabs contribute their modified side, unsaved buffers are copied as shown in the editor,
and tabs that do not show text are skipped.`
	copyUsageExample = `  # Copy using the snapshot in the working directory
  tabcopy copy

  # Read the snapshot from standard input
  editor-export-tabs | tabcopy copy --session -`

	versionFlagDescription = "display application version"
	verboseFlagDescription = "log skipped resources and copy statistics"
	sessionFlagDescription = "session snapshot path, or - for standard input"
	configFlagDescription  = "configuration file path"

	errorConfigurationFormat = "load configuration: %w"
	errorSessionFormat       = "load session: %w"
	errorLoggerFormat        = "initialize logger: %w"
)

// applicationDependencies holds the collaborators that differ between production and tests.
type applicationDependencies struct {
	clipboard     clipboard.Copier
	store         documents.Store
	loggerFactory func(verbose bool) (*zap.Logger, error)
}

func defaultDependencies() applicationDependencies {
	return applicationDependencies{
		clipboard:     clipboard.NewService(),
		store:         documents.NewFileStore(),
		loggerFactory: utils.NewApplicationLogger,
	}
}

// Execute runs the tabcopy application.
func Execute() error {
	rootCommand := createRootCommand(defaultDependencies())
	return rootCommand.Execute()
}

// createRootCommand builds the root Cobra command.
func createRootCommand(dependencies applicationDependencies) *cobra.Command {
	var showVersion bool
	var verbose bool

	rootCommand := &cobra.Command{
		Use:          rootUse,
		Short:        rootShortDescription,
		Long:         rootLongDescription,
		SilenceUsage: true,
		RunE: func(command *cobra.Command, arguments []string) error {
			return command.Help()
		},
		PersistentPreRun: func(command *cobra.Command, arguments []string) {
			if showVersion {
				fmt.Fprintf(command.OutOrStdout(), versionTemplate, utils.GetApplicationVersion())
				os.Exit(0)
			}
		},
	}
	rootCommand.PersistentFlags().BoolVar(&showVersion, versionFlagName, false, versionFlagDescription)
	rootCommand.PersistentFlags().BoolVarP(&verbose, verboseFlagName, verboseFlagShorthand, false, verboseFlagDescription)
	rootCommand.AddCommand(createCopyCommand(dependencies, &verbose))
	rootCommand.InitDefaultHelpCmd()
	rootCommand.InitDefaultCompletionCmd()
	return rootCommand
}

// copyOptions stores the values of the copy command's flags.
type copyOptions struct {
	sessionPath string
	configPath  string
}

// addCopyFlags registers the copy command's flags.
func addCopyFlags(flagSet *pflag.FlagSet, options *copyOptions) {
	flagSet.StringVarP(&options.sessionPath, sessionFlagName, sessionFlagShorthand, "", sessionFlagDescription)
	flagSet.StringVar(&options.configPath, configFlagName, "", configFlagDescription)
}

// createCopyCommand returns the copy subcommand.
func createCopyCommand(dependencies applicationDependencies, verbose *bool) *cobra.Command {
	var options copyOptions

	copyCommand := &cobra.Command{
		Use:     copyUse,
		Aliases: []string{copyAlias},
		Short:   copyShortDescription,
		Long:    copyLongDescription,
		Example: copyUsageExample,
		Args:    cobra.NoArgs,
		RunE: func(command *cobra.Command, arguments []string) error {
			logger, loggerError := dependencies.loggerFactory(*verbose)
			if loggerError != nil {
				return fmt.Errorf(errorLoggerFormat, loggerError)
			}
			defer func() {
				_ = logger.Sync()
			}()
			_, runError := runCopy(command, dependencies, options, logger)
			return runError
		},
	}

	addCopyFlags(copyCommand.Flags(), &options)
	return copyCommand
}

// runCopy wires the session snapshot, configuration and collaborators and performs one copy.
func runCopy(command *cobra.Command, dependencies applicationDependencies, options copyOptions, logger *zap.Logger) (copier.Result, error) {
	configuration, configurationError := config.LoadApplicationConfiguration(config.LoadOptions{ExplicitFilePath: options.configPath})
	if configurationError != nil {
		return copier.Result{}, fmt.Errorf(errorConfigurationFormat, configurationError)
	}
	sessionPath := configuration.Session
	if options.sessionPath != "" {
		sessionPath = options.sessionPath
	}

	snapshot, sessionError := loadSnapshot(command, sessionPath)
	if sessionError != nil {
		return copier.Result{}, fmt.Errorf(errorSessionFormat, sessionError)
	}

	workspaceRoots := workspace.NewRoots(append(snapshot.WorkspaceRoots(), configuration.Workspace.Roots...))
	logger.Debug("session loaded", zap.String("session", sessionPath), zap.Strings("workspaceRoots", workspaceRoots.Folders()))

	service, serviceError := copier.NewService(copier.Dependencies{
		Groups:    snapshot,
		Loader:    documents.NewLoader(snapshot, dependencies.store, logger),
		Workspace: workspaceRoots,
		Clipboard: dependencies.clipboard,
		Notifier:  copier.NewLoggerNotifier(logger),
		Logger:    logger,
	})
	if serviceError != nil {
		return copier.Result{}, serviceError
	}
	return service.CopyTabs(command.Context())
}

func loadSnapshot(command *cobra.Command, sessionPath string) (*session.Snapshot, error) {
	if sessionPath != utils.StandardInputPath {
		return session.Load(sessionPath)
	}
	workingDirectory, workingDirectoryError := os.Getwd()
	if workingDirectoryError != nil {
		return nil, fmt.Errorf("determine working directory: %w", workingDirectoryError)
	}
	return session.Decode(command.InOrStdin(), workingDirectory)
}
