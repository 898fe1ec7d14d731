package adapters

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"ghosttube-playmedia/application"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/rs/zerolog"
)

const (
	MQTTDefaultConnectTimeout = 30 * time.Second
	MQTTDefaultPublishTimeout = 5 * time.Second

	// Matches the keepalive the GhostTube broker setup expects.
	mqttKeepAlive = 20 * time.Second

	mqttDisconnectQuiesce = 250 // milliseconds, paho's unit
)

const (
	TransportTCP        = "tcp"
	TransportWebsockets = "websockets"
)

var (
	ErrMQTTNotConnected   = fmt.Errorf("not connected")
	ErrMQTTConnectTimeout = fmt.Errorf("connect timeout")
	ErrMQTTPublishTimeout = fmt.Errorf("publish timeout")
)

type MQTTClientParams struct {
	ClientID string
	Username string
	Password string

	Broker    string
	Port      int
	Transport string
	WSPath    string

	ConnectTimeout time.Duration
	PublishTimeout time.Duration

	NewClientFunc func(options *mqtt.ClientOptions) mqtt.Client

	Log zerolog.Logger
}

func (m *MQTTClientParams) EnsureDefaults() {
	if m.Transport == "" {
		m.Transport = TransportTCP
	}

	if m.WSPath == "" {
		m.WSPath = "/"
	}

	if m.ConnectTimeout == 0 {
		m.ConnectTimeout = MQTTDefaultConnectTimeout
	}

	if m.PublishTimeout == 0 {
		m.PublishTimeout = MQTTDefaultPublishTimeout
	}

	if m.NewClientFunc == nil {
		m.NewClientFunc = mqtt.NewClient
	}
}

// BrokerURL renders the broker address for paho; the URL scheme selects
// the transport.
func (m *MQTTClientParams) BrokerURL() string {
	if m.Transport == TransportWebsockets {
		return fmt.Sprintf("ws://%s:%d%s", m.Broker, m.Port, m.WSPath)
	}
	return fmt.Sprintf("tcp://%s:%d", m.Broker, m.Port)
}

type MQTTClient struct {
	params MQTTClientParams

	client mqtt.Client

	connected          uint64
	msgCount           uint64
	msgCountUpdateTime atomic.Pointer[time.Time]

	log zerolog.Logger
}

func NewMQTTClient(params MQTTClientParams) *MQTTClient {
	params.EnsureDefaults()

	m := &MQTTClient{params: params, log: params.Log}
	m.client = m.newMqttClient()

	t := time.Unix(0, 0)
	m.msgCountUpdateTime.Store(&t)

	return m
}

func (m *MQTTClient) Connect() error {
	if atomic.LoadUint64(&m.connected) == 1 {
		return nil
	}

	m.log.Info().Str("broker", m.params.BrokerURL()).Msg("connecting")

	tc := time.NewTimer(m.params.ConnectTimeout)
	defer tc.Stop()

	token := m.client.Connect()
	select {
	case <-tc.C:
		return ErrMQTTConnectTimeout
	case <-token.Done():
		if token.Error() != nil {
			return token.Error()
		}
	}

	atomic.StoreUint64(&m.connected, 1)
	return nil
}

func (m *MQTTClient) Disconnect() {
	m.client.Disconnect(mqttDisconnectQuiesce)
	atomic.StoreUint64(&m.connected, 0)
}

func (m *MQTTClient) IsConnected() bool {
	return atomic.LoadUint64(&m.connected) == 1
}

func (m *MQTTClient) Status() application.MQTTStatus {
	return application.MQTTStatus{
		MessageCount:      atomic.LoadUint64(&m.msgCount),
		LastTimePublished: *m.msgCountUpdateTime.Load(),
		Connected:         m.IsConnected(),
	}
}

// Publish sends one message and waits until the delivery token resolves.
// A QoS 0 token resolves as soon as the packet is written out, there is no
// broker acknowledgement at that level.
func (m *MQTTClient) Publish(ctx context.Context, topic string, qos byte, retained bool, payload []byte) error {
	if !m.IsConnected() {
		return ErrMQTTNotConnected
	}

	tc := time.NewTimer(m.params.PublishTimeout)
	defer tc.Stop()

	token := m.client.Publish(topic, qos, retained, payload)
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-tc.C:
		return ErrMQTTPublishTimeout
	case <-token.Done():
		if token.Error() != nil {
			return token.Error()
		}
	}

	t := time.Now()
	m.msgCountUpdateTime.Store(&t)
	atomic.AddUint64(&m.msgCount, 1)
	return nil
}

func (m *MQTTClient) OnConnect(client mqtt.Client) {
	m.log.Info().Msgf("connected")
	atomic.StoreUint64(&m.connected, 1)
}

func (m *MQTTClient) OnConnectionLost(client mqtt.Client, err error) {
	m.log.Info().Msgf("connection lost: %v", err)
	atomic.StoreUint64(&m.connected, 0)
}

func (m *MQTTClient) newMqttClient() mqtt.Client {
	opts := mqtt.NewClientOptions()

	opts.AddBroker(m.params.BrokerURL())
	opts.SetClientID(m.params.ClientID)
	if m.params.Username != "" {
		opts.SetUsername(m.params.Username)
		opts.SetPassword(m.params.Password)
	}
	opts.SetKeepAlive(mqttKeepAlive)

	opts.OnConnect = m.OnConnect
	opts.OnConnectionLost = m.OnConnectionLost

	return m.params.NewClientFunc(opts)
}

var _ application.MQTTClient = &MQTTClient{}
