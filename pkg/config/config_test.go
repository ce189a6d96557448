package config

import (
	"os"
	"testing"
)

func TestLoad(t *testing.T) {
	// Set up test environment variables
	os.Setenv("botToken", "test-token")
	os.Setenv("prefix", "?")
	os.Setenv("apiUrl", "http://api.test/v1")
	os.Setenv("enviroment", "test")
	defer func() {
		os.Unsetenv("botToken")
		os.Unsetenv("prefix")
		os.Unsetenv("apiUrl")
		os.Unsetenv("enviroment")
	}()

	// Reset global config
	resetForTesting()

	config, err := Load()
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}

	if config.BotToken != "test-token" {
		t.Errorf("BotToken = %v, want %v", config.BotToken, "test-token")
	}

	if config.Prefix != "?" {
		t.Errorf("Prefix = %v, want %v", config.Prefix, "?")
	}

	if config.APIURL != "http://api.test/v1" {
		t.Errorf("APIURL = %v, want %v", config.APIURL, "http://api.test/v1")
	}

	if config.Environment != "test" {
		t.Errorf("Environment = %v, want %v", config.Environment, "test")
	}
}

func TestDefaults(t *testing.T) {
	os.Unsetenv("prefix")
	os.Unsetenv("mongodbUrl")

	resetForTesting()

	config := Get()

	if config.Prefix != "!" {
		t.Errorf("Prefix = %v, want %v", config.Prefix, "!")
	}

	if config.MongoDBURL != "mongodb://localhost:27017" {
		t.Errorf("MongoDBURL = %v, want %v", config.MongoDBURL, "mongodb://localhost:27017")
	}
}

func TestGetEnv(t *testing.T) {
	os.Setenv("TEST_VAR", "test-value")
	defer os.Unsetenv("TEST_VAR")

	if got := getEnv("TEST_VAR", "default"); got != "test-value" {
		t.Errorf("getEnv() = %v, want %v", got, "test-value")
	}

	if got := getEnv("NON_EXISTENT_VAR", "default"); got != "default" {
		t.Errorf("getEnv() = %v, want %v", got, "default")
	}
}
