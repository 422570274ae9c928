package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"igstats/pkg/auth"
	"igstats/pkg/ui"
)

var setKeyValue string

// authCmd represents the auth command
var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage the HikerAPI access key",
	Long: `Manage the stored HikerAPI access key.

The key is stored using:
  - System keychain (when available)
  - Encrypted file with PBKDF2 key derivation
  - Environment variables (read only)

Never share your access key or config files!`,
}

// setKeyCmd represents the auth set-key command
var setKeyCmd = &cobra.Command{
	Use:   "set-key",
	Short: "Store the HikerAPI access key securely",
	Long: `Store the HikerAPI access key in the system keychain or encrypted file.

Without --key you are prompted for the key, which is hidden as you type.
When stdin is not a terminal the key is read from its first line.`,
	Example: `  # Interactive
  igstats auth set-key

  # From a pipe
  echo "$HIKERAPI_KEY" | igstats auth set-key`,
	Args: cobra.NoArgs,
	Run:  runSetKey,
}

// showKeyCmd represents the auth show command
var showKeyCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the stored key (masked)",
	Args:  cobra.NoArgs,
	Run:   runShowKey,
}

// clearKeyCmd represents the auth clear command
var clearKeyCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove the stored key",
	Args:  cobra.NoArgs,
	Run:   runClearKey,
}

func init() {
	rootCmd.AddCommand(authCmd)
	authCmd.AddCommand(setKeyCmd)
	authCmd.AddCommand(showKeyCmd)
	authCmd.AddCommand(clearKeyCmd)

	setKeyCmd.Flags().StringVar(&setKeyValue, "key", "", "access key to store (prompted when omitted)")
}

func runSetKey(cmd *cobra.Command, args []string) {
	manager, err := auth.NewManager()
	if err != nil {
		exitWithError("Failed to initialize credential manager", err)
	}

	key := setKeyValue
	if key == "" {
		fmt.Fprint(ui.Out, "HikerAPI access key: ")
		key, err = readPassword(os.Stdin)
		if err != nil {
			exitWithError("Failed to read access key", err)
		}
	}

	store, err := manager.SetKey(key)
	if err != nil {
		exitWithError("Failed to store access key", err)
	}

	ui.PrintSuccess("Access key stored")
	ui.PrintInfo("Store", store)
	fmt.Fprintln(ui.Out, "\nLook up a profile with:")
	fmt.Fprintln(ui.Out, "  $ igstats lookup <handle>")
}

func runShowKey(cmd *cobra.Command, args []string) {
	manager, err := auth.NewManager()
	if err != nil {
		exitWithError("Failed to initialize credential manager", err)
	}

	cred, store, err := manager.Retrieve(auth.DefaultName)
	if err != nil {
		ui.PrintWarning("No stored access key", "use 'igstats auth set-key' to add one")
		return
	}

	sanitized := auth.Sanitize(cred)
	ui.PrintInfo("Key", sanitized.APIKey)
	ui.PrintInfo("Store", store)
	if !sanitized.LastModified.IsZero() {
		ui.PrintInfo("Last Modified", sanitized.LastModified.Format("2006-01-02 15:04:05"))
	}
}

func runClearKey(cmd *cobra.Command, args []string) {
	manager, err := auth.NewManager()
	if err != nil {
		exitWithError("Failed to initialize credential manager", err)
	}

	if err := manager.Delete(auth.DefaultName); err != nil {
		if errors.Is(err, auth.ErrCredentialsNotFound) {
			ui.PrintWarning("No stored access key")
			return
		}
		exitWithError("Failed to remove access key", err)
	}
	ui.PrintSuccess("Access key removed")
}

// readPassword reads a secret without echo when stdin is a terminal,
// otherwise it reads the first line of r
func readPassword(r io.Reader) (string, error) {
	if r == os.Stdin && term.IsTerminal(int(syscall.Stdin)) {
		password, err := term.ReadPassword(int(syscall.Stdin))
		fmt.Fprintln(ui.Out)
		if err == nil {
			return strings.TrimSpace(string(password)), nil
		}
	}

	reader := bufio.NewReader(r)
	input, err := reader.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && input != "") {
		return "", err
	}
	return strings.TrimSpace(input), nil
}
