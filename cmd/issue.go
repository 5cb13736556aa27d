package main

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"meettoken/internal/app/issuer"
	"meettoken/internal/configs"
	"meettoken/internal/pkg/logx"
)

var (
	issueRoom      string
	issueName      string
	issueEmail     string
	issueAvatar    string
	issueModerator bool
	issueJSON      bool
)

// issueCmd mints one token with the service configuration and prints it to stdout.
var issueCmd = &cobra.Command{
	Use:   "issue",
	Short: "Issue a meeting token from the command line",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := configs.LoadConfig()
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}

		// console output on stderr keeps stdout for the token
		logx.InitGlobalLogger(true)

		s, err := newSigner(cmd.Context(), cfg)
		if err != nil {
			return err
		}

		issued, err := s.issuer.Issue(cmd.Context(), issuer.TokenRequest{
			RoomName:    issueRoom,
			UserName:    issueName,
			UserEmail:   issueEmail,
			Avatar:      issueAvatar,
			IsModerator: issueModerator,
		})
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if !issueJSON {
			_, err = fmt.Fprintln(out, issued.Token)
			return err
		}

		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(map[string]any{
			"token":     issued.Token,
			"appId":     issued.AppID,
			"roomName":  issued.RoomName,
			"room":      issued.Room,
			"userId":    issued.UserID,
			"notBefore": issued.NotBefore.UTC().Format(time.RFC3339),
			"expiresAt": issued.ExpiresAt.UTC().Format(time.RFC3339),
		})
	},
}

func init() {
	issueCmd.Flags().StringVar(&issueRoom, "room", "", "Meeting room name")
	issueCmd.Flags().StringVar(&issueName, "name", "", "Display name of the participant")
	issueCmd.Flags().StringVar(&issueEmail, "email", "", "Email of the participant")
	issueCmd.Flags().StringVar(&issueAvatar, "avatar", "", "Avatar URL of the participant")
	issueCmd.Flags().BoolVar(&issueModerator, "moderator", false, "Grant moderator rights")
	issueCmd.Flags().BoolVar(&issueJSON, "json", false, "Print token metadata as JSON")

	_ = issueCmd.MarkFlagRequired("room")
	_ = issueCmd.MarkFlagRequired("name")
}
