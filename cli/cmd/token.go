/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"roomhub/server/auth"
	"roomhub/server/codec"
	"roomhub/server/domain"
)

var (
	tokenUID  int
	tokenName string
	tokenRole string
	tokenTTL  time.Duration
)

// tokenCmd mints a development token the server's /ws endpoint accepts. In a
// real deployment the identity provider issues these.
var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Mint a development access token",
	RunE: func(cmd *cobra.Command, args []string) error {
		role, err := domain.ParseRole(tokenRole)
		if err != nil {
			return err
		}
		ids, err := codec.New(hashSalt, hashMinLength)
		if err != nil {
			return err
		}
		publicID, err := ids.Encode(tokenUID)
		if err != nil {
			return err
		}
		token, err := auth.New(jwtSecret).Sign(auth.Identity{
			UserID: publicID,
			Name:   tokenName,
			Role:   role,
		}, tokenTTL)
		if err != nil {
			return err
		}
		fmt.Fprintln(os.Stdout, token)
		return nil
	},
}

func init() {
	tokenCmd.Flags().IntVar(&tokenUID, "uid", 0, "internal user id")
	tokenCmd.Flags().StringVar(&tokenName, "name", "", "display name")
	tokenCmd.Flags().StringVar(&tokenRole, "role", "user", "role: guest, user or admin")
	tokenCmd.Flags().DurationVar(&tokenTTL, "ttl", 24*time.Hour, "token lifetime")
	_ = tokenCmd.MarkFlagRequired("name")
	rootCmd.AddCommand(tokenCmd)
}
