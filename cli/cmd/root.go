/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile       string
	serverAddr    string
	accessToken   string
	jwtSecret     string
	hashSalt      string
	hashMinLength int
)

const (
	serverAddrKey    = "server_addr"
	accessTokenKey   = "access_token"
	jwtSecretKey     = "jwt_secret"
	hashSaltKey      = "hash_salt"
	hashMinLengthKey = "hash_min_length"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "roomhub",
	Short: "Client for the roomhub chat server",
	Long: `roomhub is a client for the roomhub group-chat server.
It can mint development tokens, create rooms, join a room for an
interactive chat session, and delete rooms you own.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.roomhub.yaml)")
	rootCmd.PersistentFlags().StringVar(&serverAddr, "server", "", "server websocket address (e.g. ws://localhost:8080/ws)")
	rootCmd.PersistentFlags().StringVar(&accessToken, "token", "", "access token")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)
		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".roomhub")
	}

	viper.SetDefault(serverAddrKey, "ws://localhost:8080/ws")
	viper.SetDefault(jwtSecretKey, "dev-secret-change")
	viper.SetDefault(hashSaltKey, "dev-salt-change")
	viper.SetDefault(hashMinLengthKey, 8)

	viper.SetEnvPrefix("ROOMHUB")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}

	if serverAddr == "" {
		serverAddr = viper.GetString(serverAddrKey)
	}
	if accessToken == "" {
		accessToken = viper.GetString(accessTokenKey)
	}
	jwtSecret = viper.GetString(jwtSecretKey)
	hashSalt = viper.GetString(hashSaltKey)
	hashMinLength = viper.GetInt(hashMinLengthKey)
}
