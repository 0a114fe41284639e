/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"time"

	"github.com/spf13/cobra"
	"nhooyr.io/websocket"

	"roomhub/server/adaptor"
)

// rmCmd asks the server to delete a room. The server stays silent when the
// requester is not allowed or the room does not exist.
var rmCmd = &cobra.Command{
	Use:   "rm [room public id]",
	Short: "Delete a room you own",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		ws, err := dial(ctx)
		if err != nil {
			return err
		}
		defer ws.Close(websocket.StatusNormalClosure, "")

		if err := send(ctx, ws, adaptor.ClientFrame{Type: "delete", Room: args[0]}); err != nil {
			return err
		}
		// Give the server a moment to process before closing the socket.
		time.Sleep(200 * time.Millisecond)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(rmCmd)
}
