/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"database/sql"
	"fmt"
	"os"

	_ "github.com/mattn/go-sqlite3"
	"github.com/spf13/cobra"

	"roomhub/server/codec"
	"roomhub/server/repository"
)

var (
	mkroomDB        string
	mkroomOwner     int
	mkroomPermanent bool
)

// mkroomCmd seeds a room directly into the server database and prints its
// public id. Rooms must exist before anyone can join them.
var mkroomCmd = &cobra.Command{
	Use:   "mkroom [name]",
	Short: "Create a room and print its public id",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := sql.Open("sqlite3", mkroomDB)
		if err != nil {
			return fmt.Errorf("failed to open db: %w", err)
		}
		defer db.Close()
		if err := repository.Migrate(db); err != nil {
			return err
		}

		repo := repository.NewRepository(db)
		roomID, err := repo.CreateRoom(args[0], mkroomOwner, mkroomPermanent)
		if err != nil {
			return err
		}

		ids, err := codec.New(hashSalt, hashMinLength)
		if err != nil {
			return err
		}
		publicID, err := ids.Encode(roomID)
		if err != nil {
			return err
		}
		fmt.Fprintln(os.Stdout, publicID)
		return nil
	},
}

func init() {
	mkroomCmd.Flags().StringVar(&mkroomDB, "db", "./roomhub.db", "path to the server database")
	mkroomCmd.Flags().IntVar(&mkroomOwner, "owner", 0, "internal user id of the owner")
	mkroomCmd.Flags().BoolVar(&mkroomPermanent, "permanent", false, "room survives the owner leaving")
	_ = mkroomCmd.MarkFlagRequired("owner")
	rootCmd.AddCommand(mkroomCmd)
}
