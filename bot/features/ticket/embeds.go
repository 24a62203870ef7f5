package ticket

import (
	"time"

	"eurojackpot/bot/common"
	"eurojackpot/models"

	"github.com/bwmarrin/discordgo"
)

// BuildTicketEmbed renders a generated ticket
func BuildTicketEmbed(ticket *models.GeneratedTicket) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "🎟️ EuroJackpot Ticket",
		Description: "*" + ticket.Disclaimer + "*",
		Color:       common.ColorPrimary,
		Timestamp:   time.Now().Format(time.RFC3339),
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:   "Main numbers",
				Value:  common.FormatNumbers(ticket.Numbers),
				Inline: true,
			},
			{
				Name:   "Euro numbers",
				Value:  common.FormatNumbers(ticket.StarNumbers),
				Inline: true,
			},
			{
				Name:  "Strategy",
				Value: ticket.Strategy,
			},
			{
				Name:  "Why these numbers",
				Value: ticket.Rationale,
			},
		},
		Footer: &discordgo.MessageEmbedFooter{
			Text: ticket.Closing,
		},
	}
}
