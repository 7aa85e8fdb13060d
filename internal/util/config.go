package util

import (
	"errors"
	"fmt"
	_ "github.com/joho/godotenv/autoload"
	"log"
	"os"
)

type configValue struct {
	envVarName   string
	required     bool
	errorMessage string
	defaultValue string
	Value        string
}

type Config struct {
	Database    configValue
	Token       configValue
	ListenAddr  configValue
	SeqUrl      configValue
	SeqToken    configValue
	Environment configValue
}

func NewConfig() *Config {
	const databaseName = "MOTHERDUCK_DATABASE"
	const tokenName = "MOTHERDUCK_TOKEN"
	const listenAddrName = "LISTEN_ADDR"
	const seqUrlName = "SEQ_URL"
	const seqTokenName = "SEQ_TOKEN"
	const environmentName = "ENVIRONMENT"

	return &Config{
		Database: configValue{
			envVarName:   databaseName,
			required:     false,
			defaultValue: "test_cso_g",
			errorMessage: fmt.Sprintf("make sure that environment variable %s holds a MotherDuck database name or md: uri", databaseName),
		},
		Token: configValue{
			envVarName: tokenName,
			required:   false,
		},
		ListenAddr: configValue{
			envVarName:   listenAddrName,
			required:     false,
			defaultValue: ":8080",
		},
		SeqUrl: configValue{
			envVarName: seqUrlName,
			required:   false,
		},
		SeqToken: configValue{
			envVarName: seqTokenName,
			required:   false,
		},
		Environment: configValue{
			envVarName:   environmentName,
			required:     false,
			defaultValue: "development",
		},
	}
}

var config *Config

func GetConfig() *Config {
	if config == nil {
		return load()
	}

	return config
}

func load() *Config {
	config := NewConfig()

	if err := populateEnv(&config.Database); err != nil {
		log.Fatal(err)
	}
	if err := populateEnv(&config.Token); err != nil {
		log.Fatal(err)
	}
	if err := populateEnv(&config.ListenAddr); err != nil {
		log.Fatal(err)
	}
	if err := populateEnv(&config.SeqUrl); err != nil {
		log.Fatal(err)
	}
	if err := populateEnv(&config.SeqToken); err != nil {
		log.Fatal(err)
	}
	if err := populateEnv(&config.Environment); err != nil {
		log.Fatal(err)
	}

	return config
}

func populateEnv(m *configValue) (err error) {
	v := os.Getenv(m.envVarName)

	if v == "" && m.required {
		if m.errorMessage != "" {
			return errors.New(m.errorMessage)
		}

		return fmt.Errorf("environment variable %s is not set", m.envVarName)
	}

	if v == "" && m.defaultValue != "" {
		v = m.defaultValue
	}

	m.Value = v
	return nil
}
