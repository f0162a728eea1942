package main

import (
	"log"

	"github.com/questweb/user-service/config"
	"github.com/questweb/user-service/internal/app"

	postgresDriver "github.com/questweb/user-service/internal/infrastructure/database/postgres"
	kafkaDriver "github.com/questweb/user-service/internal/infrastructure/message-queue/kafka"
)

func main() {
	config := config.CreateNewConfig()
	db, err := postgresDriver.GetDBInstance(config.PostgreSQLConfig.DBUsername, config.PostgreSQLConfig.DBPassword, config.PostgreSQLConfig.DBHost, config.PostgreSQLConfig.DBPort, config.PostgreSQLConfig.DBName)
	if err != nil {
		log.Fatalf("Failed to connect to the database: %v", err)
	}

	kafkaConn := kafkaDriver.CreateKafkaProducer(config)

	server := app.App{
		DB:        db,
		Config:    config,
		KafkaConn: kafkaConn,
	}

	server.Start()
}
