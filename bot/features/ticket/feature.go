package ticket

import (
	"context"
	"errors"
	"time"

	"eurojackpot/bot/common"
	"eurojackpot/models"
	"eurojackpot/service"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

const (
	// CommandName is the slash command that generates a ticket
	CommandName = "eurojackpot"

	strategyOption  = "strategy"
	generateTimeout = 5 * time.Second
)

// Feature handles the ticket command and its Generate button
type Feature struct {
	ticketService service.TicketService
}

// NewFeature creates a new ticket feature instance
func NewFeature(ticketService service.TicketService) *Feature {
	return &Feature{ticketService: ticketService}
}

// HandleCommand answers /eurojackpot with a fresh ticket
func (f *Feature) HandleCommand(s common.Responder, i *discordgo.InteractionCreate) {
	ctx, cancel := context.WithTimeout(context.Background(), generateTimeout)
	defer cancel()

	var strategyID models.StrategyID
	for _, option := range i.ApplicationCommandData().Options {
		if option.Name == strategyOption && option.Type == discordgo.ApplicationCommandOptionString {
			strategyID = models.StrategyID(option.StringValue())
		}
	}

	ticket, err := f.generate(ctx, strategyID)
	if err != nil {
		f.respondWithGenerateError(s, i, err)
		return
	}

	if err := common.RespondWithEmbed(s, i, BuildTicketEmbed(ticket), CreateTicketComponents(), false); err != nil {
		log.WithError(err).Error("Failed to send ticket")
	}
}

// HandleInteraction handles ticket button interactions
func (f *Feature) HandleInteraction(s common.Responder, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionMessageComponent {
		log.Warnf("Unknown interaction type in ticket feature: %v", i.Type)
		return
	}

	switch i.MessageComponentData().CustomID {
	case GenerateButtonID:
		f.handleGenerateButton(s, i)
	default:
		common.RespondWithError(s, i, "Unknown ticket interaction")
	}
}

// handleGenerateButton replaces the ticket in place with a fresh one
func (f *Feature) handleGenerateButton(s common.Responder, i *discordgo.InteractionCreate) {
	ctx, cancel := context.WithTimeout(context.Background(), generateTimeout)
	defer cancel()

	ticket, err := f.generate(ctx, "")
	if err != nil {
		f.respondWithGenerateError(s, i, err)
		return
	}

	if err := common.UpdateWithEmbed(s, i, BuildTicketEmbed(ticket), CreateTicketComponents()); err != nil {
		log.WithError(err).Error("Failed to update ticket")
	}
}

func (f *Feature) generate(ctx context.Context, strategyID models.StrategyID) (*models.GeneratedTicket, error) {
	if strategyID != "" {
		return f.ticketService.GenerateTicketWithStrategy(ctx, strategyID)
	}
	return f.ticketService.GenerateTicket(ctx)
}

func (f *Feature) respondWithGenerateError(s common.Responder, i *discordgo.InteractionCreate, err error) {
	if errors.Is(err, service.ErrUnknownStrategy) {
		common.RespondWithError(s, i, "Unknown strategy.")
		return
	}

	log.WithFields(log.Fields{
		"user":  common.InteractionUserID(i),
		"error": err,
	}).Error("Failed to generate ticket")
	common.RespondWithError(s, i, "Unable to generate a ticket right now. Please try again.")
}
