package cli

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage content API credentials",
	Long: `Configure the client credentials used to authenticate against the
content API's token endpoint. Credentials are stored in the config file.

Examples:
  # Set credentials interactively
  docket auth set

  # Set credentials non-interactively
  docket auth set --client-id "xxx" --client-secret "yyy" \
    --token-url "https://auth.example.com/oauth/token"

  # Show the configured credentials
  docket auth show`,
}

var authSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Set client credentials for the content API",
	Long: `Set the token endpoint URL and client credentials.

Run without flags for an interactive prompt; the client secret is read
without echo. With all flags provided, no prompts are shown.`,
	RunE: runAuthSet,
}

var authShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the configured credentials",
	RunE:  runAuthShow,
}

// Flags for auth set.
var (
	authSetClientID     string
	authSetClientSecret string
	authSetTokenURL     string
)

func init() {
	authSetCmd.Flags().StringVar(
		&authSetClientID, "client-id", "", "OAuth client ID")
	authSetCmd.Flags().StringVar(
		&authSetClientSecret, "client-secret", "", "OAuth client secret")
	authSetCmd.Flags().StringVar(
		&authSetTokenURL, "token-url", "", "Token endpoint URL")

	authCmd.AddCommand(authSetCmd)
	authCmd.AddCommand(authShowCmd)
	rootCmd.AddCommand(authCmd)
}

func runAuthSet(cmd *cobra.Command, _ []string) error {
	// Check if we have enough flags for non-interactive mode
	nonInteractive := authSetClientID != "" && authSetClientSecret != "" && authSetTokenURL != ""
	if nonInteractive {
		return saveCredentials(cmd, authSetTokenURL, authSetClientID, authSetClientSecret)
	}

	// Interactive mode
	reader := bufio.NewReader(os.Stdin)

	tokenURL := authSetTokenURL
	if tokenURL == "" {
		if cfg.Auth.TokenURL != "" {
			cmd.Printf("Token URL [%s]: ", cfg.Auth.TokenURL)
		} else {
			cmd.Print("Token URL: ")
		}
		input := readLine(reader)
		if input != "" {
			tokenURL = input
		} else {
			tokenURL = cfg.Auth.TokenURL
		}
		if tokenURL == "" {
			return errors.New("token URL is required")
		}
	}

	clientID := authSetClientID
	if clientID == "" {
		cmd.Print("Client ID: ")
		clientID = readLine(reader)
		if clientID == "" {
			return errors.New("client ID is required")
		}
	}

	clientSecret := authSetClientSecret
	if clientSecret == "" {
		cmd.Print("Client Secret: ")
		clientSecret = readPassword()
		cmd.Println()
		if clientSecret == "" {
			return errors.New("client secret is required")
		}
	}

	return saveCredentials(cmd, tokenURL, clientID, clientSecret)
}

// saveCredentials writes the credentials into the config file.
func saveCredentials(cmd *cobra.Command, tokenURL, clientID, clientSecret string) error {
	cfg.Auth.TokenURL = tokenURL
	cfg.Auth.ClientID = clientID
	cfg.Auth.ClientSecret = clientSecret

	if err := cfg.Save(cfgPath); err != nil {
		return fmt.Errorf("failed to save credentials: %w", err)
	}

	cmd.Printf("Credentials saved to %s\n", cfgPath)
	return nil
}

func runAuthShow(cmd *cobra.Command, _ []string) error {
	if cfg.Auth.ClientID == "" {
		cmd.Println("No credentials configured.")
		cmd.Println("Set them with: docket auth set")
		return nil
	}

	cmd.Printf("Token URL: %s\n", cfg.Auth.TokenURL)
	cmd.Printf("Client ID: %s\n", cfg.Auth.ClientID)
	cmd.Printf("Client Secret: %s\n", maskSecret(cfg.Auth.ClientSecret))
	return nil
}

// Helper functions.

//nolint:errcheck // CLI helper, error ignored for UX
func readLine(reader *bufio.Reader) string {
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

//nolint:errcheck // CLI helper, error ignored for UX
func readPassword() string {
	// Try to read password without echo
	if term.IsTerminal(int(os.Stdin.Fd())) {
		password, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err == nil {
			return string(password)
		}
	}
	// Fallback to regular input
	reader := bufio.NewReader(os.Stdin)
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

func maskSecret(secret string) string {
	if len(secret) <= 8 {
		return "****"
	}
	return secret[:4] + "..." + secret[len(secret)-4:]
}
