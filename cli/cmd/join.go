/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"nhooyr.io/websocket"

	"roomhub/server/adaptor"
)

// joinCmd connects to the server, joins a room and runs an interactive chat
// session: incoming notices print to stdout, stdin lines are sent as chat
// messages. EOF (Ctrl-D) leaves the room and exits.
var joinCmd = &cobra.Command{
	Use:   "join [room public id]",
	Short: "Join a room and chat interactively",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		room := args[0]
		ctx := cmd.Context()

		ws, err := dial(ctx)
		if err != nil {
			return err
		}
		defer ws.Close(websocket.StatusNormalClosure, "")

		if err := send(ctx, ws, adaptor.ClientFrame{Type: "join", Room: room}); err != nil {
			return err
		}

		go printLoop(ctx, ws)

		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			text := strings.TrimSpace(scanner.Text())
			if text == "" {
				continue
			}
			if err := send(ctx, ws, adaptor.ClientFrame{Type: "chat", Room: room, Text: text}); err != nil {
				return err
			}
		}

		return send(ctx, ws, adaptor.ClientFrame{Type: "leave", Room: room})
	},
}

func dial(ctx context.Context) (*websocket.Conn, error) {
	header := http.Header{}
	header.Set("Authorization", "Bearer "+accessToken)
	ws, _, err := websocket.Dial(ctx, serverAddr, &websocket.DialOptions{HTTPHeader: header})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", serverAddr, err)
	}
	return ws, nil
}

func send(ctx context.Context, ws *websocket.Conn, frame adaptor.ClientFrame) error {
	data, err := json.Marshal(frame)
	if err != nil {
		return err
	}
	return ws.Write(ctx, websocket.MessageText, data)
}

func printLoop(ctx context.Context, ws *websocket.Conn) {
	for {
		_, data, err := ws.Read(ctx)
		if err != nil {
			return
		}
		var frame adaptor.ServerFrame
		if err := json.Unmarshal(data, &frame); err != nil {
			continue
		}
		switch frame.Type {
		case "message":
			fmt.Printf("%s: %s\n", frame.Name, frame.Text)
		default:
			fmt.Printf("* %s\n", frame.Text)
		}
	}
}

func init() {
	rootCmd.AddCommand(joinCmd)
}
