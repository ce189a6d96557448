package config

import (
	"errors"
	"testing"
)

func TestRegisterWebhookOrCleanUpSuccess(t *testing.T) {
	deleted := 0
	err := registerWebhookOrCleanUp("wh-1",
		func() error { return nil },
		func() error { deleted++; return nil },
	)

	if err != nil {
		t.Errorf("err = %v, want nil", err)
	}
	if deleted != 0 {
		t.Errorf("deletions = %d, want 0 (successful registration must not delete)", deleted)
	}
}

func TestRegisterWebhookOrCleanUpDeletesOnFailure(t *testing.T) {
	regErr := errors.New("guild already has a webhook")
	deleted := 0
	err := registerWebhookOrCleanUp("wh-1",
		func() error { return regErr },
		func() error { deleted++; return nil },
	)

	if err != regErr {
		t.Errorf("err = %v, want the registration error", err)
	}
	if deleted != 1 {
		t.Errorf("deletions = %d, want 1 (failed registration must delete the webhook)", deleted)
	}
}

func TestRegisterWebhookOrCleanUpReturnsRegistrationErrorWhenDeleteFails(t *testing.T) {
	regErr := errors.New("registration rejected")
	err := registerWebhookOrCleanUp("wh-1",
		func() error { return regErr },
		func() error { return errors.New("delete failed too") },
	)

	if err != regErr {
		t.Errorf("err = %v, want the registration error even when cleanup fails", err)
	}
}
