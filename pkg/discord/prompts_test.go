package discord

import (
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
)

func TestIsAffirmative(t *testing.T) {
	tests := []struct {
		content string
		want    bool
	}{
		{"y", true},
		{"yes", true},
		{"Y", true},
		{"YES", true},
		{"  yes  ", true},
		{"n", false},
		{"no", false},
		{"yeah", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsAffirmative(tt.content); got != tt.want {
			t.Errorf("IsAffirmative(%q) = %v, want %v", tt.content, got, tt.want)
		}
	}
}

func TestWaitForReplyTimesOut(t *testing.T) {
	replies := make(chan *discordgo.Message, 1)

	reply, ok := waitForReply(replies, 10*time.Millisecond)
	if ok || reply != nil {
		t.Errorf("waitForReply on silence = (%v, %v), want (nil, false)", reply, ok)
	}
}

func TestWaitForReplyDeliversAnswer(t *testing.T) {
	replies := make(chan *discordgo.Message, 1)
	replies <- &discordgo.Message{Content: "yes"}

	reply, ok := waitForReply(replies, time.Second)
	if !ok || reply == nil || reply.Content != "yes" {
		t.Errorf("waitForReply with pending reply = (%v, %v), want the reply", reply, ok)
	}
}

func TestInterpretConfirmationTimeoutEqualsNo(t *testing.T) {
	timedOut := interpretConfirmation(nil, false)
	explicitNo := interpretConfirmation(&discordgo.Message{Content: "no"}, true)

	if timedOut != false {
		t.Error("interpretConfirmation(timeout) = true, want false")
	}
	if timedOut != explicitNo {
		t.Errorf("timeout decision = %v, explicit no decision = %v, want identical", timedOut, explicitNo)
	}
}

func TestInterpretConfirmationAffirmative(t *testing.T) {
	if !interpretConfirmation(&discordgo.Message{Content: "Yes"}, true) {
		t.Error("interpretConfirmation(yes) = false, want true")
	}
}
