package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/diskbench/shellext/command"
	"github.com/diskbench/shellext/config"
	"github.com/diskbench/shellext/log"
	"github.com/diskbench/shellext/selection"

	"github.com/spf13/cobra"
)

var (
	version = "1.0.0"

	verboseFlag bool
	toolFlag    string
	machineFlag bool

	rootCmd = &cobra.Command{
		Use:   "diskbenchext",
		Short: "Host harness for the DiskBench Explorer command",
		Long: `diskbenchext plays the file-manager host against the DiskBench
context-menu command: it queries identity and state and drives the
invocation path, against the same configuration stores the real host reads.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verboseFlag {
				log.SetOutput(os.Stderr)
			} else {
				log.Initialize()
			}
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			log.Close()
		},
	}

	stateCmd = &cobra.Command{
		Use:   "state [path]...",
		Short: "Report the menu state for a selection",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newCommand()
			if err != nil {
				return err
			}
			defer c.Release()

			var sel selection.Selection
			if len(args) > 0 {
				sel = selection.Items(args)
			}
			fmt.Println(c.State(sel, true))
			return nil
		},
	}

	invokeCmd = &cobra.Command{
		Use:   "invoke <path>",
		Short: "Invoke the command on a selection, launching the benchmark tool",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newCommand()
			if err != nil {
				return err
			}
			defer c.Release()

			result, err := c.Invoke(selection.Items(args))
			if err != nil {
				if errors.Is(err, config.ErrNotConfigured) {
					return fmt.Errorf("%w (run 'diskbenchext configure --tool <path>')", err)
				}
				return err
			}

			switch result {
			case command.InvokeLaunched:
				fmt.Println("launched")
			case command.InvokeNotHandled:
				fmt.Println("not handled: selection is not a drive root")
			}
			return nil
		},
	}

	iconCmd = &cobra.Command{
		Use:   "icon",
		Short: "Print the icon reference the command reports",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newCommand()
			if err != nil {
				return err
			}
			defer c.Release()

			icon, ok := c.Icon()
			if !ok {
				fmt.Println("no icon")
				return nil
			}
			fmt.Println(icon)
			return nil
		},
	}

	infoCmd = &cobra.Command{
		Use:   "info",
		Short: "Print the command's fixed identity",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newCommand()
			if err != nil {
				return err
			}
			defer c.Release()

			fmt.Printf("Title:     %s\n", c.Title())
			fmt.Printf("ToolTip:   %s\n", c.ToolTip())
			fmt.Printf("Canonical: {%s}\n", c.CanonicalName())
			fmt.Printf("Flags:     %#x\n", uint32(c.Flags()))
			return nil
		},
	}

	configureCmd = &cobra.Command{
		Use:   "configure",
		Short: "Write the benchmark tool path into the file store",
		Long: `Writes the tool path the command resolves at invoke time. This is a
development stand-in for the installer; on Windows the real installer writes
the registry instead.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			scope := config.ScopeUser
			if machineFlag {
				scope = config.ScopeMachine
			}

			store := &config.FileStore{}
			if err := store.SetToolPath(scope, toolFlag); err != nil {
				return fmt.Errorf("failed to write %s scope: %w", scope, err)
			}
			fmt.Printf("tool path set in %s scope: %s\n", scope, toolFlag)
			return nil
		},
	}

	logpathCmd = &cobra.Command{
		Use:   "logpath",
		Short: "Print the diagnostic log location",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := log.Path()
			if err != nil {
				return fmt.Errorf("failed to locate log file: %w", err)
			}
			fmt.Println(path)
			return nil
		},
	}

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version number of diskbenchext",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("diskbenchext version %s\n", version)
		},
	}
)

// newCommand goes through the same class-object path a host would: factory
// lookup, instance creation, capability query.
func newCommand() (*command.Command, error) {
	obj, err := command.GetClassObject(command.CLSIDDiskBenchCommand, command.IIDClassFactory)
	if err != nil {
		return nil, err
	}
	factory := obj.(*command.ClassFactory)
	defer factory.Release()

	v, err := factory.CreateInstance(nil, command.IIDExplorerCommand)
	if err != nil {
		return nil, err
	}
	return v.(*command.Command), nil
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false,
		"Log to stderr instead of the diagnostic log file")

	configureCmd.Flags().StringVar(&toolFlag, "tool", "", "Absolute path of the DiskBench executable")
	configureCmd.Flags().BoolVar(&machineFlag, "machine", false, "Write the machine scope instead of the user scope")
	if err := configureCmd.MarkFlagRequired("tool"); err != nil {
		panic(err)
	}

	rootCmd.AddCommand(stateCmd)
	rootCmd.AddCommand(invokeCmd)
	rootCmd.AddCommand(iconCmd)
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(configureCmd)
	rootCmd.AddCommand(logpathCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
