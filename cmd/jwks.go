package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"meettoken/internal/configs"
	"meettoken/internal/pkg/logx"
)

// jwksCmd prints the public key set for the configured signing key.
var jwksCmd = &cobra.Command{
	Use:   "jwks",
	Short: "Print the JSON Web Key Set of the signing key",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := configs.LoadConfig()
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}

		logx.InitGlobalLogger(true)

		s, err := newSigner(cmd.Context(), cfg)
		if err != nil {
			return err
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(s.jwks)
	},
}
