package config

import (
	"context"
	"errors"
	"fmt"

	"github.com/PancyStudios/PancyGuardGo/pkg/discord"
	"github.com/PancyStudios/PancyGuardGo/pkg/logger"
	"github.com/PancyStudios/PancyGuardGo/pkg/modapi"
	"github.com/PancyStudios/PancyGuardGo/pkg/models"
	"github.com/bwmarrin/discordgo"
)

// createCreateWebhookCommand creates the createwebhook command
func createCreateWebhookCommand() *discord.Command {
	return discord.NewCommand(
		"createwebhook",
		"Create a webhook in a channel to receive moderation notifications",
		"config",
		createWebhookHandler,
	).WithUsage("createwebhook (channel, defaults to the current one)").
		WithExamples("createwebhook #notifications", "createwebhook").
		WithPermissions(models.CapWebhooks)
}

func createWebhookHandler(ctx *discord.CommandContext) error {
	channel := ctx.Channel()
	if len(ctx.Args) > 0 {
		channel = ctx.ResolveChannel(ctx.Args[0])
		if channel == nil {
			return ctx.Reply(fmt.Sprintf("⚠️ `%s` is not a channel in this server", ctx.Args[0]))
		}
	}
	if channel == nil || channel.Type != discordgo.ChannelTypeGuildText {
		return ctx.Reply("Please specify a text channel")
	}

	if !ctx.GetConfirmationMessage(fmt.Sprintf("Are you sure you want to create a webhook in <#%s>?", channel.ID)) {
		return ctx.Reply("⚠️ Webhook creation cancelled")
	}

	webhook, err := ctx.Session.WebhookCreate(channel.ID, "PancyGuard Notifier", "")
	if err != nil {
		return err
	}

	registration := models.Webhook{
		ID:      webhook.ID,
		Token:   webhook.Token,
		GuildID: ctx.Message.GuildID,
	}
	err = registerWebhookOrCleanUp(
		webhook.ID,
		func() error {
			return ctx.Client.API.Info.AddWebhook(context.Background(), ctx.GuildConfig.APIKey, registration)
		},
		func() error {
			return ctx.Session.WebhookDelete(webhook.ID)
		},
	)
	if err != nil {
		var authErr *modapi.AuthError
		if errors.As(err, &authErr) {
			return err
		}
		return ctx.Reply("⚠️ You already have a webhook in this guild")
	}

	return ctx.Reply("✅ Webhook created successfully! A testing message from the moderation API should be sent")
}

// registerWebhookOrCleanUp registers the just-created channel webhook with
// the remote API. When registration fails the webhook is deleted again so
// a failed attempt never leaves an orphaned webhook behind; the
// registration error is returned either way.
func registerWebhookOrCleanUp(webhookID string, register func() error, deleteWebhook func() error) error {
	err := register()
	if err == nil {
		return nil
	}

	if delErr := deleteWebhook(); delErr != nil {
		logger.Warn("Failed to delete orphaned webhook "+webhookID+": "+delErr.Error(), "CreateWebhook")
	}
	return err
}
