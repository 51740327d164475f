package main

import (
	"strings"
	"testing"
)

func TestValidateSettingKey(t *testing.T) {
	for _, key := range cliSettingKeys {
		if err := validateSettingKey(key); err != nil {
			t.Fatalf("key %q should be valid: %v", key, err)
		}
	}

	err := validateSettingKey("poll-interval")
	if err == nil {
		t.Fatal("expected error for unknown key")
	}
	if !strings.Contains(err.Error(), "address") {
		t.Fatalf("error should list the valid keys, got %v", err)
	}
}
