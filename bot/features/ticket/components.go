package ticket

import (
	"github.com/bwmarrin/discordgo"
)

// Ticket components use the ej_ custom ID prefix
const (
	CustomIDPrefix   = "ej_"
	GenerateButtonID = CustomIDPrefix + "generate"
)

// CreateTicketComponents builds the action row shown under a ticket
func CreateTicketComponents() []discordgo.MessageComponent {
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					Label:    "Generate",
					Style:    discordgo.PrimaryButton,
					CustomID: GenerateButtonID,
					Emoji:    &discordgo.ComponentEmoji{Name: "🎲"},
				},
			},
		},
	}
}
