package bot

import (
	"fmt"

	"eurojackpot/bot/features/ticket"
	"eurojackpot/generator"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// applicationCommands lists every slash command the bot serves
func applicationCommands() []*discordgo.ApplicationCommand {
	choices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(generator.Strategies))
	for _, strategy := range generator.Strategies {
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{
			Name:  strategy.Label,
			Value: string(strategy.ID),
		})
	}

	return []*discordgo.ApplicationCommand{
		{
			Name:        ticket.CommandName,
			Description: "Suggest a EuroJackpot ticket (for fun, no better odds)",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "strategy",
					Description: "Pick a strategy instead of a random one",
					Required:    false,
					Choices:     choices,
				},
			},
		},
	}
}

// registerCommands replaces the bot's slash commands with the current set
func (b *Bot) registerCommands() error {
	commands := applicationCommands()

	registered, err := b.session.ApplicationCommandBulkOverwrite(b.session.State.User.ID, b.config.GuildID, commands)
	if err != nil {
		return fmt.Errorf("cannot register commands: %w", err)
	}

	log.WithFields(log.Fields{
		"count":   len(registered),
		"guildID": b.config.GuildID,
	}).Info("Registered slash commands")
	return nil
}
