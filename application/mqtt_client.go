package application

import (
	"context"
	"time"
)

type MQTTStatus struct {
	MessageCount      uint64
	LastTimePublished time.Time
	Connected         bool
}

type MQTTClient interface {
	Publish(ctx context.Context, topic string, qos byte, retained bool, payload []byte) error

	Connect() error
	Disconnect()
	IsConnected() bool
	Status() MQTTStatus
}
