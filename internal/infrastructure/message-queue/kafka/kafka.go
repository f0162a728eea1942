package kafka

import (
	"context"

	"github.com/questweb/user-service/config"
	"github.com/rs/zerolog/log"
	"github.com/segmentio/kafka-go"
)

var KafkaConn *kafka.Conn

// CreateKafkaProducer dials the broker leader for the configured topic.
// Returns nil when no broker is configured; event publication is then
// skipped entirely.
func CreateKafkaProducer(config *config.Config) *kafka.Conn {
	if config.KafkaConfig.BrokerAddress == "" {
		log.Info().Str("component", "CreateKafkaProducer").Msg("no broker configured, events disabled")
		return nil
	}

	conn, err := kafka.DialLeader(context.Background(), "tcp", config.KafkaConfig.BrokerAddress, config.KafkaConfig.BrokerTopic, config.KafkaConfig.BrokerPartition)
	if err != nil {
		panic(err)
	}

	KafkaConn = conn
	return KafkaConn
}
