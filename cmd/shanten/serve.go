package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/taeho-gwon/mahjong-shanten/internal/appconfig"
	"github.com/taeho-gwon/mahjong-shanten/internal/logx"
	"github.com/taeho-gwon/mahjong-shanten/internal/service"
)

var serveConfigFile string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the analysis service (nats worker + websocket endpoint + metrics)",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := appconfig.Load(serveConfigFile); err != nil {
			return err
		}
		logx.Init(appconfig.Conf.AppName, appconfig.Conf.Log.Level)
		return service.Run(context.Background(), appconfig.Conf)
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveConfigFile, "config", "", "configuration file")
	_ = serveCmd.MarkFlagRequired("config")
	rootCmd.AddCommand(serveCmd)
}
