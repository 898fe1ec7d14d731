package application

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type MockMQTTClient struct {
	mock.Mock
}

func (m *MockMQTTClient) Publish(ctx context.Context, topic string, qos byte, retained bool, payload []byte) error {
	args := m.Called(ctx, topic, qos, retained, payload)

	var err error
	if errInt := args.Get(0); errInt != nil {
		err = errInt.(error)
	}
	return err
}

func (m *MockMQTTClient) Connect() error {
	args := m.Called()

	var err error
	if errInt := args.Get(0); errInt != nil {
		err = errInt.(error)
	}
	return err
}

func (m *MockMQTTClient) Disconnect() {
	m.Called()
}

func (m *MockMQTTClient) IsConnected() bool {
	return m.Called().Bool(0)
}

func (m *MockMQTTClient) Status() MQTTStatus {
	return m.Called().Get(0).(MQTTStatus)
}

var _ MQTTClient = &MockMQTTClient{}
