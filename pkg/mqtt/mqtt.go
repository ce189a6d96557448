// Package mqtt bridges the bot to an operations MQTT broker. Configuration
// changes are published as events and operators can query the bot over a
// request/response topic pair.
package mqtt

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/PancyStudios/PancyGuardGo/pkg/logger"
	"github.com/google/uuid"

	mqtt "github.com/eclipse/paho.mqtt.golang"
)

// MqttRequest represents an MQTT request message
type MqttRequest struct {
	CorrelationID string      `json:"correlationId"`
	Payload       interface{} `json:"payload,omitempty"`
}

// MqttResponse represents an MQTT response message
type MqttResponse struct {
	CorrelationID string      `json:"correlationId"`
	Data          interface{} `json:"data"`
	Error         string      `json:"error,omitempty"`
}

// ConfigChange is the event published whenever a guild's configuration is
// saved through a confirmed command flow
type ConfigChange struct {
	GuildID string    `json:"guildId"`
	At      time.Time `json:"at"`
}

// MqttCommunicator handles MQTT communication
type MqttCommunicator struct {
	client           mqtt.Client
	responseHandlers map[string]func(MqttResponse)
	mu               sync.RWMutex
	clientID         string
	environment      string
}

var (
	communicator *MqttCommunicator
	once         sync.Once
)

// Init initializes the global MQTT communicator
func Init(host, port, username, password, clientID, environment string) *MqttCommunicator {
	once.Do(func() {
		communicator = NewMqttCommunicator(host, port, username, password, clientID, environment)
	})
	return communicator
}

// Get returns the global MQTT communicator
func Get() *MqttCommunicator {
	return communicator
}

// NewMqttCommunicator creates a new MQTT communicator
func NewMqttCommunicator(host, port, username, password, clientID, environment string) *MqttCommunicator {
	mc := &MqttCommunicator{
		responseHandlers: make(map[string]func(MqttResponse)),
		clientID:         clientID,
		environment:      environment,
	}

	uniqueID := fmt.Sprintf("%s_%s", clientID, uuid.New().String())

	opts := mqtt.NewClientOptions().
		AddBroker(fmt.Sprintf("tcp://%s:%s", host, port)).
		SetClientID(uniqueID).
		SetUsername(username).
		SetPassword(password).
		SetAutoReconnect(true).
		SetConnectRetry(true).
		SetConnectRetryInterval(5 * time.Second).
		SetOnConnectHandler(func(c mqtt.Client) {
			logger.Success(fmt.Sprintf("Connected to MQTT broker as %s", clientID), "MQTT")
		}).
		SetConnectionLostHandler(func(c mqtt.Client, err error) {
			logger.Error(fmt.Sprintf("MQTT connection lost: %v", err), "MQTT")
		})

	mc.client = mqtt.NewClient(opts)

	token := mc.client.Connect()
	if token.Wait() && token.Error() != nil {
		logger.Error(fmt.Sprintf("MQTT connection error: %v", token.Error()), "MQTT")
	}

	return mc
}

// Destroy closes the MQTT connection
func (mc *MqttCommunicator) Destroy() {
	if mc.client != nil && mc.client.IsConnected() {
		mc.client.Disconnect(250)
		logger.System("MQTT connection closed.", "MQTT")
	} else {
		logger.Warn("MQTT client was not connected, nothing to close.", "MQTT")
	}
}

// IsConnected returns true if connected to the broker
func (mc *MqttCommunicator) IsConnected() bool {
	return mc.client != nil && mc.client.IsConnected()
}

// Publish sends a message to a topic
func (mc *MqttCommunicator) Publish(topic string, payload interface{}) error {
	jsonData, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	token := mc.client.Publish(topic, 0, false, jsonData)
	token.Wait()
	return token.Error()
}

// PublishConfigChange announces a saved guild configuration on the
// environment's config topic. Failures are logged, not surfaced: the ops
// feed is advisory and must never fail a user's command.
func (mc *MqttCommunicator) PublishConfigChange(guildID string) {
	topic := fmt.Sprintf("pancyguard/%s/config", mc.environment)
	event := ConfigChange{GuildID: guildID, At: time.Now()}
	if err := mc.Publish(topic, event); err != nil {
		logger.Warn(fmt.Sprintf("Failed to publish config change for guild %s: %v", guildID, err), "MQTT")
	}
}

// Request sends a request and waits for a response
func (mc *MqttCommunicator) Request(topic string, payload interface{}, timeout time.Duration) (interface{}, error) {
	correlationID := uuid.New().String()
	requestTopic := fmt.Sprintf("pancyguard/request/%s", topic)
	responseTopic := fmt.Sprintf("pancyguard/response/%s/%s", topic, correlationID)

	responseChan := make(chan MqttResponse, 1)
	errChan := make(chan error, 1)

	mc.mu.Lock()
	mc.responseHandlers[correlationID] = func(response MqttResponse) {
		responseChan <- response
	}
	mc.mu.Unlock()

	defer func() {
		mc.mu.Lock()
		delete(mc.responseHandlers, correlationID)
		mc.mu.Unlock()
		mc.client.Unsubscribe(responseTopic)
	}()

	token := mc.client.Subscribe(responseTopic, 0, func(c mqtt.Client, msg mqtt.Message) {
		var response MqttResponse
		if err := json.Unmarshal(msg.Payload(), &response); err != nil {
			errChan <- err
			return
		}

		mc.mu.RLock()
		handler, exists := mc.responseHandlers[response.CorrelationID]
		mc.mu.RUnlock()

		if exists {
			handler(response)
		}
	})

	if token.Wait() && token.Error() != nil {
		return nil, token.Error()
	}

	request := MqttRequest{
		CorrelationID: correlationID,
		Payload:       payload,
	}

	if err := mc.Publish(requestTopic, request); err != nil {
		return nil, err
	}

	select {
	case response := <-responseChan:
		if response.Error != "" {
			return nil, fmt.Errorf("%s", response.Error)
		}
		return response.Data, nil
	case err := <-errChan:
		return nil, err
	case <-time.After(timeout):
		return nil, fmt.Errorf("request to '%s' timed out", topic)
	}
}

// RequestHandler is a function type for handling MQTT requests
type RequestHandler func(payload map[string]interface{}) (interface{}, error)

// On registers a handler for a request topic
func (mc *MqttCommunicator) On(requestTopic string, callback RequestHandler) {
	topic := fmt.Sprintf("pancyguard/request/%s", requestTopic)

	token := mc.client.Subscribe(topic, 0, func(c mqtt.Client, msg mqtt.Message) {
		var request MqttRequest
		if err := json.Unmarshal(msg.Payload(), &request); err != nil {
			logger.Error(fmt.Sprintf("Error parsing MQTT request: %v", err), "MQTT")
			return
		}

		receivedTopic := msg.Topic()
		actualTopic := strings.TrimPrefix(receivedTopic, "pancyguard/request/")
		responseTopic := fmt.Sprintf("pancyguard/response/%s/%s", actualTopic, request.CorrelationID)

		var response MqttResponse

		payloadMap := make(map[string]interface{})
		if request.Payload != nil {
			if pm, ok := request.Payload.(map[string]interface{}); ok {
				payloadMap = pm
			}
		}
		payloadMap["_topic"] = actualTopic

		data, err := callback(payloadMap)
		if err != nil {
			response = MqttResponse{
				CorrelationID: request.CorrelationID,
				Data:          nil,
				Error:         err.Error(),
			}
		} else {
			response = MqttResponse{
				CorrelationID: request.CorrelationID,
				Data:          data,
			}
		}

		mc.Publish(responseTopic, response)
	})

	if token.Wait() && token.Error() != nil {
		logger.Error(fmt.Sprintf("Error subscribing to topic %s: %v", topic, token.Error()), "MQTT")
	}
}

// Subscribe subscribes to a topic with a message handler
func (mc *MqttCommunicator) Subscribe(topic string, handler func(topic string, payload []byte)) error {
	token := mc.client.Subscribe(topic, 0, func(c mqtt.Client, msg mqtt.Message) {
		handler(msg.Topic(), msg.Payload())
	})
	token.Wait()
	return token.Error()
}

// Unsubscribe unsubscribes from a topic
func (mc *MqttCommunicator) Unsubscribe(topic string) error {
	token := mc.client.Unsubscribe(topic)
	token.Wait()
	return token.Error()
}
