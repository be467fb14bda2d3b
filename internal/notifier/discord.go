package notifier

import (
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"
	"github.com/eventbook/event-booking-api/internal/models"
)

type Notifier interface {
	NotifyRegistration(event models.Event, registration models.Registration) error
}

type DiscordNotifier struct {
	session   *discordgo.Session
	channelID string
}

func NewDiscordNotifier(session *discordgo.Session, channelID string) *DiscordNotifier {
	return &DiscordNotifier{
		session:   session,
		channelID: channelID,
	}
}

func (n *DiscordNotifier) NotifyRegistration(event models.Event, registration models.Registration) error {
	if n.session == nil {
		return fmt.Errorf("discord session is nil")
	}
	if n.channelID == "" {
		return fmt.Errorf("discord channel ID is empty")
	}

	ticketStr := ""
	if registration.Tickets > 1 {
		ticketStr = fmt.Sprintf("\n**Tickets:** %d", registration.Tickets)
	}

	message := fmt.Sprintf("🎟️ **New Registration**\n**Event:** %s (%s, %s)\n**Attendee:** %s <%s>%s",
		event.Title,
		event.DateTime.Format("2006-01-02 15:04"),
		event.Location,
		registration.Name,
		registration.Email,
		ticketStr,
	)

	_, err := n.session.ChannelMessageSend(n.channelID, message)
	if err != nil {
		log.Printf("Failed to send discord message: %v", err)
		return err
	}

	return nil
}
