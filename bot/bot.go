package bot

import (
	"fmt"
	"strings"

	"eurojackpot/bot/common"
	"eurojackpot/bot/features/ticket"
	"eurojackpot/service"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// Config holds bot configuration
type Config struct {
	Token   string
	GuildID string // commands are registered globally when empty
}

type Bot struct {
	config        Config
	session       *discordgo.Session
	ticketFeature *ticket.Feature
}

// New connects to Discord and registers the slash commands
func New(config Config, ticketService service.TicketService) (*Bot, error) {
	dg, err := discordgo.New("Bot " + config.Token)
	if err != nil {
		return nil, fmt.Errorf("error creating discord session: %w", err)
	}
	dg.Identify.Intents = discordgo.IntentsGuilds

	bot := &Bot{
		config:        config,
		session:       dg,
		ticketFeature: ticket.NewFeature(ticketService),
	}

	dg.AddHandler(bot.handleReady)
	dg.AddHandler(bot.handleCommands)
	dg.AddHandler(bot.handleInteractions)

	if err := dg.Open(); err != nil {
		return nil, fmt.Errorf("error opening connection: %w", err)
	}

	if err := bot.registerCommands(); err != nil {
		dg.Close()
		return nil, fmt.Errorf("error registering commands: %w", err)
	}

	return bot, nil
}

func (b *Bot) Close() error {
	return b.session.Close()
}

func (b *Bot) handleReady(s *discordgo.Session, r *discordgo.Ready) {
	log.WithFields(log.Fields{
		"user":   r.User.Username,
		"guilds": len(r.Guilds),
	}).Info("Discord bot connected")
}

// handleCommands routes slash commands to their features
func (b *Bot) handleCommands(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	switch i.ApplicationCommandData().Name {
	case ticket.CommandName:
		b.ticketFeature.HandleCommand(s, i)
	}
}

// handleInteractions routes component interactions by custom ID prefix
func (b *Bot) handleInteractions(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionMessageComponent {
		return
	}

	customID := i.MessageComponentData().CustomID
	switch {
	case strings.HasPrefix(customID, ticket.CustomIDPrefix):
		b.ticketFeature.HandleInteraction(s, i)
	default:
		log.WithField("customID", customID).Warn("Unhandled component interaction")
		common.RespondWithError(s, i, "This button is no longer supported.")
	}
}
