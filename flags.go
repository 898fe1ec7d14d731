package main

import (
	"time"

	"github.com/urfave/cli/v2"
)

var FlagLogLevel = &cli.StringFlag{
	Name:     "log-level",
	EnvVars:  []string{"LOG_LEVEL"},
	Value:    "info",
	Required: false,
}

var FlagLogWriter = &cli.StringFlag{
	Name:     "log-writer",
	Usage:    "one of: [console, json]",
	EnvVars:  []string{"LOG_WRITER"},
	Value:    "console",
	Required: false,
}

var FlagBroker = &cli.StringFlag{
	Name:     "broker",
	Usage:    "MQTT broker host",
	EnvVars:  []string{"MQTT_BROKER"},
	Value:    "192.168.86.29",
	Required: false,
}

var FlagPort = &cli.IntFlag{
	Name:     "port",
	Usage:    "MQTT broker port",
	EnvVars:  []string{"MQTT_PORT"},
	Value:    8083,
	Required: false,
}

var FlagClientID = &cli.StringFlag{
	Name:     "client-id",
	EnvVars:  []string{"MQTT_CLIENT_ID"},
	Value:    "ghosttube-playmedia",
	Required: false,
}

var FlagUsername = &cli.StringFlag{
	Name:     "username",
	Usage:    "optional username for the broker",
	EnvVars:  []string{"MQTT_USERNAME"},
	Required: false,
}

var FlagPassword = &cli.StringFlag{
	Name:     "password",
	Usage:    "optional password for the broker, ignored without --username",
	EnvVars:  []string{"MQTT_PASSWORD"},
	Required: false,
}

var FlagRetain = &cli.BoolFlag{
	Name:     "retain",
	Usage:    "retain the playmedia command on the broker",
	Required: false,
}

var FlagQoS = &cli.IntFlag{
	Name:     "qos",
	Usage:    "quality of service level, one of: [0, 1, 2]",
	Value:    1,
	Required: false,
}

var FlagPlain = &cli.BoolFlag{
	Name:     "plain",
	Usage:    "send the raw video ID instead of a JSON payload",
	Required: false,
}

var FlagTransport = &cli.StringFlag{
	Name:     "transport",
	Usage:    "one of: [tcp, websockets]",
	EnvVars:  []string{"MQTT_TRANSPORT"},
	Value:    "websockets",
	Required: false,
}

var FlagWSPath = &cli.StringFlag{
	Name:     "ws-path",
	Usage:    "websocket path when using the websockets transport",
	EnvVars:  []string{"MQTT_WS_PATH"},
	Value:    "/",
	Required: false,
}

var FlagTimeout = &cli.DurationFlag{
	Name:     "timeout",
	Usage:    "how long to wait for publish acknowledgement",
	Value:    5 * time.Second,
	Required: false,
}
