package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ghosttube-playmedia/adapters"
	"ghosttube-playmedia/application"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"
)

const (
	exitCodeUsage      = 1
	exitCodeConnect    = 1
	exitCodeAckTimeout = 2
)

var Flags = []cli.Flag{
	FlagLogLevel,
	FlagLogWriter,
	FlagBroker,
	FlagPort,
	FlagClientID,
	FlagUsername,
	FlagPassword,
	FlagRetain,
	FlagQoS,
	FlagPlain,
	FlagTransport,
	FlagWSPath,
	FlagTimeout,
}

func main() {
	var logger zerolog.Logger

	app := cli.App{
		Name:      "ghosttube-playmedia",
		Usage:     "send a playmedia MQTT command to a GhostTube media player",
		ArgsUsage: "<device> <video-id>",
		Version:   "v0.0.1",
		Flags:     Flags,
		Before: func(ctx *cli.Context) error {
			var logWriter io.Writer
			if ctx.String(FlagLogWriter.Name) == "console" {
				logWriter = zerolog.ConsoleWriter{
					Out:        os.Stderr,
					TimeFormat: time.RFC3339Nano,
				}
			} else if ctx.String(FlagLogWriter.Name) == "json" {
				logWriter = os.Stderr
			}

			logger = zerolog.New(logWriter).With().Timestamp().
				Str("service", "ghosttube-playmedia").
				Str("module", "main").
				Logger()

			level, err := zerolog.ParseLevel(ctx.String(FlagLogLevel.Name))
			if err != nil {
				return err
			}

			zerolog.SetGlobalLevel(level)

			return nil
		},
		Action: func(ctx *cli.Context) error {
			if ctx.NArg() != 2 {
				cli.ShowAppHelp(ctx)
				return cli.Exit("expected exactly two arguments: <device> <video-id>", exitCodeUsage)
			}
			device := ctx.Args().Get(0)
			videoID := ctx.Args().Get(1)

			qos := ctx.Int(FlagQoS.Name)
			if qos < 0 || qos > 2 {
				return cli.Exit(fmt.Sprintf("invalid qos: %d, must be one of: [0, 1, 2]", qos), exitCodeUsage)
			}

			transport := ctx.String(FlagTransport.Name)
			if transport != adapters.TransportTCP && transport != adapters.TransportWebsockets {
				return cli.Exit(fmt.Sprintf("invalid transport: %q, must be one of: [tcp, websockets]", transport), exitCodeUsage)
			}

			appCtx, cancel := context.WithCancel(logger.WithContext(context.Background()))
			go func() {
				c := make(chan os.Signal, 1)
				signal.Notify(c, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

				<-c

				logger.Warn().Msg("interrupt signal received")
				cancel()
			}()

			mqttClient := adapters.NewMQTTClient(adapters.MQTTClientParams{
				ClientID:       ctx.String(FlagClientID.Name),
				Username:       ctx.String(FlagUsername.Name),
				Password:       ctx.String(FlagPassword.Name),
				Broker:         ctx.String(FlagBroker.Name),
				Port:           ctx.Int(FlagPort.Name),
				Transport:      transport,
				WSPath:         ctx.String(FlagWSPath.Name),
				PublishTimeout: ctx.Duration(FlagTimeout.Name),
				Log:            logger.With().Str("module", "mqtt-client").Logger(),
			})

			playMediaService, err := application.NewPlayMediaService(application.PlayMediaServiceParams{
				MQTTClient:  mqttClient,
				Device:      device,
				VideoID:     videoID,
				QoS:         byte(qos),
				Retain:      ctx.Bool(FlagRetain.Name),
				JSONPayload: !ctx.Bool(FlagPlain.Name),
				Log:         logger.With().Str("module", "playmedia-service").Logger(),
			})
			if err != nil {
				return err
			}

			err = playMediaService.Run(appCtx)
			switch {
			case err == nil:
				return nil
			case errors.Is(err, application.ErrConnect):
				logger.Err(err).Msg("connection failed")
				return cli.Exit("connection failed", exitCodeConnect)
			case errors.Is(err, adapters.ErrMQTTPublishTimeout):
				logger.Err(err).Msg("publish timed out")
				return cli.Exit("publish timed out", exitCodeAckTimeout)
			default:
				return err
			}
		},
	}

	if err := app.Run(os.Args); err != nil {
		logger.Err(err).Msg("command failed")
		os.Exit(1)
	}
}
