package sbsingestor

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"os"
	"sync"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	config "gitlab.com/smartbusstop1/sbs.telemetry_server/src/production/SBS.Config"
	"gitlab.com/smartbusstop1/sbs.telemetry_server/src/production/SBS.IngestorService/client"
	logger "gitlab.com/smartbusstop1/sbs.telemetry_server/src/production/SBS.Logger"
)

// Ingestor bridges stations that publish readings over MQTT into the HTTP
// ingestion pipeline. Messages are queued and forwarded one by one so the
// throttle and latest-status semantics stay identical to a direct POST.
type Ingestor struct {
	cfg        config.MQTTConfig
	apiClient  *client.APIClient
	mqttClient mqtt.Client
	msgCh      chan []byte
	wg         sync.WaitGroup
	logger     *logger.Logger
}

func New(cfg config.MQTTConfig, apiClient *client.APIClient, log *logger.Logger) *Ingestor {
	return &Ingestor{
		cfg:       cfg,
		apiClient: apiClient,
		msgCh:     make(chan []byte, 4096),
		logger:    log.WithComponent("mqtt-ingestor"),
	}
}

func (i *Ingestor) Start(ctx context.Context) error {
	opts := mqtt.NewClientOptions().
		AddBroker(i.cfg.BrokerURL()).
		SetClientID(i.cfg.ClientID).
		SetOrderMatters(false).
		SetKeepAlive(i.cfg.KeepAlive).
		SetPingTimeout(i.cfg.PingTimeout).
		SetAutoReconnect(true).
		SetConnectRetry(true).
		SetConnectRetryInterval(5 * time.Second).
		SetCleanSession(false)

	if i.cfg.BrokerUser != "" {
		opts.SetUsername(i.cfg.BrokerUser)
		opts.SetPassword(i.cfg.BrokerPass)
	}

	if i.cfg.UseTLS {
		tlsCfg, err := i.tlsConfig(i.cfg.CACertPath)
		if err != nil {
			return err
		}
		opts.SetTLSConfig(tlsCfg)
	}

	opts.OnConnectionLost = func(_ mqtt.Client, err error) {
		i.logger.Logger.Error().Err(err).Msg("MQTT connection lost")
	}
	opts.OnConnect = func(c mqtt.Client) {
		topic := i.cfg.Topic
		if i.cfg.SharedGroup != "" {
			topic = fmt.Sprintf("$share/%s/%s", i.cfg.SharedGroup, i.cfg.Topic)
		}
		i.logger.Logger.Info().Str("topic", topic).Msg("MQTT connected, subscribing to topic")
		if token := c.Subscribe(topic, 1, i.onMessage); token.Wait() && token.Error() != nil {
			i.logger.Logger.Error().Err(token.Error()).Str("topic", topic).Msg("Failed to subscribe to MQTT topic")
		}
	}

	i.mqttClient = mqtt.NewClient(opts)
	if tk := i.mqttClient.Connect(); tk.Wait() && tk.Error() != nil {
		return tk.Error()
	}

	// forwarder loop
	i.wg.Add(1)
	go func() {
		defer i.wg.Done()
		i.forwardLoop(ctx)
	}()

	return nil
}

func (i *Ingestor) Stop() {
	if i.mqttClient != nil && i.mqttClient.IsConnected() {
		i.mqttClient.Disconnect(500)
	}
	close(i.msgCh)
	i.wg.Wait()
}

func (i *Ingestor) onMessage(_ mqtt.Client, m mqtt.Message) {
	i.logger.Logger.Debug().Str("topic", m.Topic()).Str("payload", string(m.Payload())).Msg("Received MQTT message")

	// Copy before queuing: paho reuses the message buffer.
	payload := make([]byte, len(m.Payload()))
	copy(payload, m.Payload())

	select {
	case i.msgCh <- payload:
	default:
		i.logger.Warn("Message queue full, dropping reading")
	}
}

func (i *Ingestor) forwardLoop(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case payload, ok := <-i.msgCh:
			if !ok {
				return
			}
			if err := i.apiClient.SubmitReading(ctx, payload); err != nil {
				i.logger.Logger.Error().Err(err).Msg("Failed to submit reading to API service")
			}
		}
	}
}

func (i *Ingestor) tlsConfig(caFile string) (*tls.Config, error) {
	cfg := &tls.Config{MinVersion: tls.VersionTLS12}
	if caFile == "" {
		return cfg, nil
	}
	ca, err := os.ReadFile(caFile)
	if err != nil {
		return nil, err
	}
	cp := x509.NewCertPool()
	if !cp.AppendCertsFromPEM(ca) {
		return nil, fmt.Errorf("bad CA file")
	}
	cfg.RootCAs = cp
	return cfg, nil
}
