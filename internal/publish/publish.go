// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package publish

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/wneessen/nmea-report/internal/config"
	"github.com/wneessen/nmea-report/internal/presenter"
)

const (
	publishTimeout    = time.Second * 5
	disconnectQuiesce = 250
)

var ErrTimeout = errors.New("mqtt operation timed out")

// MQTT publishes report snapshots as retained JSON messages.
type MQTT struct {
	client mqtt.Client
	topic  string
	qos    byte
}

// New connects to the broker configured in conf.
func New(conf *config.Config) (*MQTT, error) {
	opts := mqtt.NewClientOptions().
		AddBroker(conf.MQTT.Broker).
		SetClientID(conf.MQTT.ClientID).
		SetConnectTimeout(publishTimeout).
		SetAutoReconnect(true)

	client := mqtt.NewClient(opts)
	token := client.Connect()
	if !token.WaitTimeout(publishTimeout) {
		return nil, fmt.Errorf("failed to connect to MQTT broker %s: %w", conf.MQTT.Broker, ErrTimeout)
	}
	if err := token.Error(); err != nil {
		return nil, fmt.Errorf("failed to connect to MQTT broker %s: %w", conf.MQTT.Broker, err)
	}
	return NewWithClient(client, conf.MQTT.Topic, conf.MQTT.QoS), nil
}

// NewWithClient wraps an already connected client.
func NewWithClient(client mqtt.Client, topic string, qos byte) *MQTT {
	return &MQTT{
		client: client,
		topic:  topic,
		qos:    qos,
	}
}

// Publish sends report to the configured topic and waits for the broker to acknowledge it.
func (m *MQTT) Publish(report presenter.Report) error {
	payload, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}

	token := m.client.Publish(m.topic, m.qos, true, payload)
	if !token.WaitTimeout(publishTimeout) {
		return fmt.Errorf("failed to publish report to %s: %w", m.topic, ErrTimeout)
	}
	if err = token.Error(); err != nil {
		return fmt.Errorf("failed to publish report to %s: %w", m.topic, err)
	}
	return nil
}

// Close disconnects from the broker.
func (m *MQTT) Close() error {
	m.client.Disconnect(disconnectQuiesce)
	return nil
}
